// file: internals/features/finance/feecatalog/model/fee_catalog_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/*
fee_catalog_entries = katalog kewajiban per (class, section, fee_type).
Satu (class, section) boleh punya banyak fee_type dengan nominal berbeda.
Sumber kebenaran untuk "berapa yang seharusnya dibayar".
*/

type FeeCatalogEntry struct {
	// PK
	FeeCatalogID uuid.UUID `gorm:"column:fee_catalog_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_catalog_id"`

	// Tenant
	FeeCatalogSchoolID uuid.UUID `gorm:"column:fee_catalog_school_id;type:uuid;not null;index:idx_fee_catalog_tenant,priority:1" json:"fee_catalog_school_id"`

	// Target kelas
	FeeCatalogClassName string `gorm:"column:fee_catalog_class_name;type:varchar(40);not null;index:idx_fee_catalog_tenant,priority:2" json:"fee_catalog_class_name"`
	FeeCatalogSection   string `gorm:"column:fee_catalog_section;type:varchar(20);not null;index:idx_fee_catalog_tenant,priority:3" json:"fee_catalog_section"`

	// Jenis + nominal
	FeeCatalogFeeType string          `gorm:"column:fee_catalog_fee_type;type:varchar(60);not null;index" json:"fee_catalog_fee_type"`
	FeeCatalogAmount  decimal.Decimal `gorm:"column:fee_catalog_amount;type:numeric(12,2);not null" json:"fee_catalog_amount"`

	FeeCatalogDueDate     *time.Time `gorm:"column:fee_catalog_due_date;type:date" json:"fee_catalog_due_date,omitempty"`
	FeeCatalogDescription *string    `gorm:"column:fee_catalog_description;type:text" json:"fee_catalog_description,omitempty"`

	// Timestamps
	FeeCatalogCreatedAt time.Time      `gorm:"column:fee_catalog_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_catalog_created_at"`
	FeeCatalogUpdatedAt time.Time      `gorm:"column:fee_catalog_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_catalog_updated_at"`
	FeeCatalogDeletedAt gorm.DeletedAt `gorm:"column:fee_catalog_deleted_at;type:timestamptz;index" json:"-"`
}

func (FeeCatalogEntry) TableName() string { return "fee_catalog_entries" }
