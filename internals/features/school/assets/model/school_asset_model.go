// file: internals/features/school/assets/model/school_asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// school_assets = identitas sekolah untuk tampilan receipt
// (nama, logo, tanda tangan kepala sekolah). File fisiknya hidup di
// storage eksternal; di sini cuma URL.
type SchoolAsset struct {
	SchoolAssetID       uuid.UUID `gorm:"column:school_asset_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_asset_id"`
	SchoolAssetSchoolID uuid.UUID `gorm:"column:school_asset_school_id;type:uuid;not null;uniqueIndex" json:"school_asset_school_id"`

	SchoolAssetName         string  `gorm:"column:school_asset_name;type:varchar(160);not null" json:"school_asset_name"`
	SchoolAssetLogoURL      *string `gorm:"column:school_asset_logo_url;type:text" json:"school_asset_logo_url,omitempty"`
	SchoolAssetSignatureURL *string `gorm:"column:school_asset_signature_url;type:text" json:"school_asset_signature_url,omitempty"`

	// Kontak/alamat bebas bentuk untuk kop receipt
	SchoolAssetMeta datatypes.JSON `gorm:"column:school_asset_meta;type:jsonb" json:"school_asset_meta,omitempty"`

	SchoolAssetCreatedAt time.Time      `gorm:"column:school_asset_created_at;type:timestamptz;not null;autoCreateTime" json:"school_asset_created_at"`
	SchoolAssetUpdatedAt time.Time      `gorm:"column:school_asset_updated_at;type:timestamptz;not null;autoUpdateTime" json:"school_asset_updated_at"`
	SchoolAssetDeletedAt gorm.DeletedAt `gorm:"column:school_asset_deleted_at;type:timestamptz;index" json:"-"`
}

func (SchoolAsset) TableName() string { return "school_assets" }
