// file: internals/features/finance/feestructure/dto/school_fee_structure_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/finance/feestructure/model"
)

type FeeStructureCreateRequest struct {
	ClassName    string `json:"class_name" validate:"required"`
	AcademicYear string `json:"academic_year" validate:"required"`

	InstallmentCount int    `json:"installment_count" validate:"omitempty,min=1,max=12"`
	Frequency        string `json:"frequency" validate:"omitempty,oneof=monthly quarterly half_yearly yearly"`

	TuitionAmount   decimal.Decimal `json:"tuition_amount"`
	AdmissionAmount decimal.Decimal `json:"admission_amount"`
	LateFeeAmount   decimal.Decimal `json:"late_fee_amount"`
	GraceDays       int             `json:"grace_days" validate:"omitempty,min=0,max=90"`

	Schedule datatypes.JSON `json:"schedule,omitempty"`
	Note     *string        `json:"note,omitempty"`
}

type FeeStructureUpdateRequest struct {
	ClassName    *string `json:"class_name,omitempty"`
	AcademicYear *string `json:"academic_year,omitempty"`

	InstallmentCount *int    `json:"installment_count,omitempty" validate:"omitempty,min=1,max=12"`
	Frequency        *string `json:"frequency,omitempty" validate:"omitempty,oneof=monthly quarterly half_yearly yearly"`

	TuitionAmount   *decimal.Decimal `json:"tuition_amount,omitempty"`
	AdmissionAmount *decimal.Decimal `json:"admission_amount,omitempty"`
	LateFeeAmount   *decimal.Decimal `json:"late_fee_amount,omitempty"`
	GraceDays       *int             `json:"grace_days,omitempty" validate:"omitempty,min=0,max=90"`

	Schedule datatypes.JSON `json:"schedule,omitempty"`
	Note     *string        `json:"note,omitempty"`
}

type FeeStructureResponse struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id"`
	SchoolID       uuid.UUID `json:"school_id"`

	ClassName    string `json:"class_name"`
	AcademicYear string `json:"academic_year"`

	InstallmentCount int    `json:"installment_count"`
	Frequency        string `json:"frequency"`

	TuitionAmount   decimal.Decimal `json:"tuition_amount"`
	AdmissionAmount decimal.Decimal `json:"admission_amount"`
	LateFeeAmount   decimal.Decimal `json:"late_fee_amount"`
	GraceDays       int             `json:"grace_days"`

	Schedule datatypes.JSON `json:"schedule,omitempty"`
	Note     *string        `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFeeStructureResponse(m model.SchoolFeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:   m.FeeStructureID,
		SchoolID:         m.FeeStructureSchoolID,
		ClassName:        m.FeeStructureClassName,
		AcademicYear:     m.FeeStructureAcademicYear,
		InstallmentCount: m.FeeStructureInstallmentCount,
		Frequency:        m.FeeStructureFrequency,
		TuitionAmount:    m.FeeStructureTuitionAmount,
		AdmissionAmount:  m.FeeStructureAdmissionAmount,
		LateFeeAmount:    m.FeeStructureLateFeeAmount,
		GraceDays:        m.FeeStructureGraceDays,
		Schedule:         m.FeeStructureSchedule,
		Note:             m.FeeStructureNote,
		CreatedAt:        m.FeeStructureCreatedAt,
		UpdatedAt:        m.FeeStructureUpdatedAt,
	}
}

func ToFeeStructureResponses(ms []model.SchoolFeeStructure) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeStructureResponse(m))
	}
	return out
}

func CreateRequestToModel(r FeeStructureCreateRequest, schoolID uuid.UUID) model.SchoolFeeStructure {
	m := model.SchoolFeeStructure{
		FeeStructureSchoolID:        schoolID,
		FeeStructureClassName:       strings.TrimSpace(r.ClassName),
		FeeStructureAcademicYear:    strings.TrimSpace(r.AcademicYear),
		FeeStructureInstallmentCount: r.InstallmentCount,
		FeeStructureFrequency:       strings.TrimSpace(r.Frequency),
		FeeStructureTuitionAmount:   r.TuitionAmount,
		FeeStructureAdmissionAmount: r.AdmissionAmount,
		FeeStructureLateFeeAmount:   r.LateFeeAmount,
		FeeStructureGraceDays:       r.GraceDays,
		FeeStructureSchedule:        r.Schedule,
		FeeStructureNote:            r.Note,
	}
	if m.FeeStructureInstallmentCount <= 0 {
		m.FeeStructureInstallmentCount = 1
	}
	if m.FeeStructureFrequency == "" {
		m.FeeStructureFrequency = "monthly"
	}
	return m
}

func ApplyUpdate(m *model.SchoolFeeStructure, r FeeStructureUpdateRequest) {
	if r.ClassName != nil {
		m.FeeStructureClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.AcademicYear != nil {
		m.FeeStructureAcademicYear = strings.TrimSpace(*r.AcademicYear)
	}
	if r.InstallmentCount != nil {
		m.FeeStructureInstallmentCount = *r.InstallmentCount
	}
	if r.Frequency != nil {
		m.FeeStructureFrequency = strings.TrimSpace(*r.Frequency)
	}
	if r.TuitionAmount != nil {
		m.FeeStructureTuitionAmount = *r.TuitionAmount
	}
	if r.AdmissionAmount != nil {
		m.FeeStructureAdmissionAmount = *r.AdmissionAmount
	}
	if r.LateFeeAmount != nil {
		m.FeeStructureLateFeeAmount = *r.LateFeeAmount
	}
	if r.GraceDays != nil {
		m.FeeStructureGraceDays = *r.GraceDays
	}
	if len(r.Schedule) > 0 {
		m.FeeStructureSchedule = r.Schedule
	}
	if r.Note != nil {
		m.FeeStructureNote = r.Note
	}
}
