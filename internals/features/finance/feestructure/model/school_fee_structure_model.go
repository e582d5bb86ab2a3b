// file: internals/features/finance/feestructure/model/school_fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
school_fee_structures = kebijakan cicilan & denda per kelas per tahun ajaran.
Data referensi deskriptif: dibaca engine, tidak pernah dimutasi olehnya.
*/

type SchoolFeeStructure struct {
	FeeStructureID       uuid.UUID `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`
	FeeStructureSchoolID uuid.UUID `gorm:"column:fee_structure_school_id;type:uuid;not null;index:idx_fee_structure_tenant,priority:1" json:"fee_structure_school_id"`

	FeeStructureClassName    string `gorm:"column:fee_structure_class_name;type:varchar(40);not null;index:idx_fee_structure_tenant,priority:2" json:"fee_structure_class_name"`
	FeeStructureAcademicYear string `gorm:"column:fee_structure_academic_year;type:varchar(20);not null;index" json:"fee_structure_academic_year"`

	// Cicilan
	FeeStructureInstallmentCount int    `gorm:"column:fee_structure_installment_count;not null;default:1" json:"fee_structure_installment_count"`
	FeeStructureFrequency        string `gorm:"column:fee_structure_frequency;type:varchar(20);not null;default:'monthly'" json:"fee_structure_frequency"`

	// Nominal pokok
	FeeStructureTuitionAmount   decimal.Decimal `gorm:"column:fee_structure_tuition_amount;type:numeric(12,2);not null" json:"fee_structure_tuition_amount"`
	FeeStructureAdmissionAmount decimal.Decimal `gorm:"column:fee_structure_admission_amount;type:numeric(12,2);not null" json:"fee_structure_admission_amount"`

	// Kebijakan telat
	FeeStructureLateFeeAmount decimal.Decimal `gorm:"column:fee_structure_late_fee_amount;type:numeric(12,2);not null" json:"fee_structure_late_fee_amount"`
	FeeStructureGraceDays     int             `gorm:"column:fee_structure_grace_days;not null;default:0" json:"fee_structure_grace_days"`

	// Rincian jadwal cicilan bebas bentuk (label + due date per termin)
	FeeStructureSchedule datatypes.JSON `gorm:"column:fee_structure_schedule;type:jsonb" json:"fee_structure_schedule,omitempty"`

	FeeStructureNote *string `gorm:"column:fee_structure_note;type:text" json:"fee_structure_note,omitempty"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;type:timestamptz;not null;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;type:timestamptz;not null;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;type:timestamptz;index" json:"-"`
}

func (SchoolFeeStructure) TableName() string { return "school_fee_structures" }
