// file: internals/features/finance/feecatalog/dto/fee_catalog_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/feecatalog/model"
)

/* =======================================================
   CREATE / UPDATE

   Payload lama sempat memakai nama field alternatif:
   class_/class untuk kelas, sectionclass/section untuk section.
   Dinormalisasi SEKALI di sini (UnmarshalJSON), bukan di tiap call site.
======================================================= */

type FeeCatalogCreateRequest struct {
	ClassName string `json:"class_name" validate:"required"`
	Section   string `json:"section" validate:"required"`

	FeeType string          `json:"fee_type" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	Description *string    `json:"description,omitempty"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (r *FeeCatalogCreateRequest) UnmarshalJSON(b []byte) error {
	type plain FeeCatalogCreateRequest
	aux := struct {
		*plain
		Class        string `json:"class"`
		ClassLegacy  string `json:"class_"`
		SectionClass string `json:"sectionclass"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.ClassName = firstNonEmpty(r.ClassName, aux.Class, aux.ClassLegacy)
	r.Section = firstNonEmpty(r.Section, aux.SectionClass)
	return nil
}

type FeeCatalogUpdateRequest struct {
	ClassName *string `json:"class_name,omitempty"`
	Section   *string `json:"section,omitempty"`

	FeeType *string          `json:"fee_type,omitempty"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	Description *string    `json:"description,omitempty"`
}

/* =======================================================
   RESPONSE + MAPPERS
======================================================= */

type FeeCatalogResponse struct {
	FeeCatalogID uuid.UUID `json:"fee_catalog_id"`
	SchoolID     uuid.UUID `json:"school_id"`

	ClassName string `json:"class_name"`
	Section   string `json:"section"`

	FeeType string          `json:"fee_type"`
	Amount  decimal.Decimal `json:"amount"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	Description *string    `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToFeeCatalogResponse(m model.FeeCatalogEntry) FeeCatalogResponse {
	return FeeCatalogResponse{
		FeeCatalogID: m.FeeCatalogID,
		SchoolID:     m.FeeCatalogSchoolID,
		ClassName:    m.FeeCatalogClassName,
		Section:      m.FeeCatalogSection,
		FeeType:      m.FeeCatalogFeeType,
		Amount:       m.FeeCatalogAmount,
		DueDate:      m.FeeCatalogDueDate,
		Description:  m.FeeCatalogDescription,
		CreatedAt:    m.FeeCatalogCreatedAt,
		UpdatedAt:    m.FeeCatalogUpdatedAt,
	}
}

func ToFeeCatalogResponses(ms []model.FeeCatalogEntry) []FeeCatalogResponse {
	out := make([]FeeCatalogResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeCatalogResponse(m))
	}
	return out
}

func CreateRequestToModel(r FeeCatalogCreateRequest, schoolID uuid.UUID) model.FeeCatalogEntry {
	return model.FeeCatalogEntry{
		FeeCatalogSchoolID:    schoolID,
		FeeCatalogClassName:   strings.TrimSpace(r.ClassName),
		FeeCatalogSection:     strings.TrimSpace(r.Section),
		FeeCatalogFeeType:     strings.TrimSpace(r.FeeType),
		FeeCatalogAmount:      r.Amount,
		FeeCatalogDueDate:     r.DueDate,
		FeeCatalogDescription: r.Description,
	}
}

// ApplyUpdate menerapkan field non-nil dari request ke model.
func ApplyUpdate(m *model.FeeCatalogEntry, r FeeCatalogUpdateRequest) {
	if r.ClassName != nil {
		m.FeeCatalogClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.Section != nil {
		m.FeeCatalogSection = strings.TrimSpace(*r.Section)
	}
	if r.FeeType != nil {
		m.FeeCatalogFeeType = strings.TrimSpace(*r.FeeType)
	}
	if r.Amount != nil {
		m.FeeCatalogAmount = *r.Amount
	}
	if r.DueDate != nil {
		m.FeeCatalogDueDate = r.DueDate
	}
	if r.Description != nil {
		m.FeeCatalogDescription = r.Description
	}
}
