// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentHandler struct {
	DB *gorm.DB
}

var validate = validator.New()

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := strings.TrimSpace(c.Params("school_id")); s != "" {
		return uuid.Parse(s)
	}
	return helper.GetSchoolIDFromToken(c)
}

// POST /:school_id/students
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in dto.StudentCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := dto.CreateRequestToModel(in, schoolID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create student")
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// GET /:school_id/students/:id
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.StudentRef
	if err := h.DB.First(&m,
		"student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load student")
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// GET /:school_id/students?class=&section=&q=
func (h *StudentHandler) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.StudentRef{}).
		Where("student_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("LOWER(TRIM(student_class_name)) = LOWER(?)", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("LOWER(TRIM(student_section)) = LOWER(?)", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("(student_name ILIKE ? OR student_admission_number ILIKE ?)",
			"%"+v+"%", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count students")
	}

	var rows []model.StudentRef
	qq := q.Order("student_created_at DESC")
	if !p.All {
		qq = qq.Limit(p.PerPage).Offset(p.Offset())
	}
	if err := qq.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list students")
	}

	return helper.JsonList(c, "ok", dto.ToStudentResponses(rows), helper.BuildPagination(p, total, len(rows)))
}
