// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

/*
Payload dari subsistem admisi juga pernah memakai nama field alternatif
(class_/class, sectionclass/section) — dinormalisasi sekali di sini.
*/

type StudentCreateRequest struct {
	Name            string `json:"name" validate:"required"`
	ClassName       string `json:"class_name" validate:"required"`
	Section         string `json:"section" validate:"required"`
	AdmissionNumber string `json:"admission_number" validate:"required"`

	FatherName *string `json:"father_name,omitempty"`
	MotherName *string `json:"mother_name,omitempty"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func (r *StudentCreateRequest) UnmarshalJSON(b []byte) error {
	type plain StudentCreateRequest
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

type StudentResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	SchoolID  uuid.UUID `json:"school_id"`

	Name            string `json:"name"`
	ClassName       string `json:"class_name"`
	Section         string `json:"section"`
	AdmissionNumber string `json:"admission_number"`

	FatherName *string `json:"father_name,omitempty"`
	MotherName *string `json:"mother_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func ToStudentResponse(m model.StudentRef) StudentResponse {
	return StudentResponse{
		StudentID:       m.StudentID,
		SchoolID:        m.StudentSchoolID,
		Name:            m.StudentName,
		ClassName:       m.StudentClassName,
		Section:         m.StudentSection,
		AdmissionNumber: m.StudentAdmissionNumber,
		FatherName:      m.StudentFatherName,
		MotherName:      m.StudentMotherName,
		Phone:           m.StudentPhone,
		CreatedAt:       m.StudentCreatedAt,
	}
}

func ToStudentResponses(ms []model.StudentRef) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func CreateRequestToModel(r StudentCreateRequest, schoolID uuid.UUID) model.StudentRef {
	return model.StudentRef{
		StudentSchoolID:        schoolID,
		StudentName:            strings.TrimSpace(r.Name),
		StudentClassName:       strings.TrimSpace(r.ClassName),
		StudentSection:         strings.TrimSpace(r.Section),
		StudentAdmissionNumber: strings.TrimSpace(r.AdmissionNumber),
		StudentFatherName:      r.FatherName,
		StudentMotherName:      r.MotherName,
		StudentPhone:           r.Phone,
	}
}
