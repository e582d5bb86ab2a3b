// file: internals/features/finance/feestructure/controller/school_fee_structure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feestructure/dto"
	"schoolku_backend/internals/features/finance/feestructure/model"
	helper "schoolku_backend/internals/helpers"
)

type FeeStructureHandler struct {
	DB *gorm.DB
}

var validate = validator.New()

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := strings.TrimSpace(c.Params("school_id")); s != "" {
		return uuid.Parse(s)
	}
	return helper.GetSchoolIDFromToken(c)
}

// POST /:school_id/fee-structures
func (h *FeeStructureHandler) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in dto.FeeStructureCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.TuitionAmount.IsNegative() || in.AdmissionAmount.IsNegative() || in.LateFeeAmount.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "amounts must not be negative")
	}

	m := dto.CreateRequestToModel(in, schoolID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create fee structure")
	}
	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

// PATCH /:school_id/fee-structures/:id
func (h *FeeStructureHandler) Update(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeStructureUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SchoolFeeStructure
	if err := h.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load fee structure")
	}

	dto.ApplyUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update fee structure")
	}
	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(m))
}

// GET /:school_id/fee-structures?class=&academic_year=
func (h *FeeStructureHandler) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.SchoolFeeStructure{}).
		Where("fee_structure_school_id = ?", schoolID)
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("LOWER(TRIM(fee_structure_class_name)) = LOWER(?)", v)
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fee_structure_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count fee structures")
	}

	var rows []model.SchoolFeeStructure
	qq := q.Order("fee_structure_created_at DESC")
	if !p.All {
		qq = qq.Limit(p.PerPage).Offset(p.Offset())
	}
	if err := qq.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list fee structures")
	}

	return helper.JsonList(c, "ok", dto.ToFeeStructureResponses(rows), helper.BuildPagination(p, total, len(rows)))
}

// DELETE /:school_id/fee-structures/:id
func (h *FeeStructureHandler) Delete(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where("fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).
		Delete(&model.SchoolFeeStructure{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete fee structure")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
	}
	return helper.JsonDeleted(c, "fee structure deleted", fiber.Map{"fee_structure_id": id})
}
