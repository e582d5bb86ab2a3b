// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
student_refs = direktori siswa milik subsistem admisi.
Fee engine hanya butuh identitas + (class, section) untuk menentukan
katalog mana yang berlaku; field lain murni display di receipt.
*/

type StudentRef struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index" json:"student_school_id"`

	StudentName            string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentClassName       string `gorm:"column:student_class_name;type:varchar(40);not null;index" json:"student_class_name"`
	StudentSection         string `gorm:"column:student_section;type:varchar(20);not null" json:"student_section"`
	StudentAdmissionNumber string `gorm:"column:student_admission_number;type:varchar(40);not null;index" json:"student_admission_number"`

	StudentFatherName *string `gorm:"column:student_father_name;type:varchar(120)" json:"student_father_name,omitempty"`
	StudentMotherName *string `gorm:"column:student_mother_name;type:varchar(120)" json:"student_mother_name,omitempty"`
	StudentPhone      *string `gorm:"column:student_phone;type:varchar(10)" json:"student_phone,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"-"`
}

func (StudentRef) TableName() string { return "student_refs" }
