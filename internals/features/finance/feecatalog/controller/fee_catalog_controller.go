// file: internals/features/finance/feecatalog/controller/fee_catalog_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feecatalog/dto"
	"schoolku_backend/internals/features/finance/feecatalog/model"
	"schoolku_backend/internals/features/finance/feecatalog/service"
	helper "schoolku_backend/internals/helpers"
)

type FeeCatalogHandler struct {
	DB *gorm.DB
}

var validate = validator.New()

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := strings.TrimSpace(c.Params("school_id")); s != "" {
		return uuid.Parse(s)
	}
	return helper.GetSchoolIDFromToken(c)
}

// POST /:school_id/fee-catalog
func (h *FeeCatalogHandler) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in dto.FeeCatalogCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.Amount.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must not be negative")
	}

	m := dto.CreateRequestToModel(in, schoolID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create fee catalog entry")
	}
	return helper.JsonCreated(c, "fee catalog entry created", dto.ToFeeCatalogResponse(m))
}

// PATCH /:school_id/fee-catalog/:id
func (h *FeeCatalogHandler) Update(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeCatalogUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must not be negative")
	}

	var m model.FeeCatalogEntry
	if err := h.DB.First(&m,
		"fee_catalog_id = ? AND fee_catalog_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee catalog entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load fee catalog entry")
	}

	// school_id tidak boleh pindah lewat update
	dto.ApplyUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update fee catalog entry")
	}
	return helper.JsonUpdated(c, "fee catalog entry updated", dto.ToFeeCatalogResponse(m))
}

// GET /:school_id/fee-catalog
// Query: class, section, fee_type, page, per_page, sort_by, order
func (h *FeeCatalogHandler) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.FeeCatalogEntry{}).
		Where("fee_catalog_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("LOWER(TRIM(fee_catalog_class_name)) = LOWER(?)", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("LOWER(TRIM(fee_catalog_section)) = LOWER(?)", v)
	}
	if v := strings.TrimSpace(c.Query("fee_type")); v != "" {
		q = q.Where("LOWER(TRIM(fee_catalog_fee_type)) = LOWER(?)", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count fee catalog")
	}

	allowed := map[string]string{
		"created_at": "fee_catalog_created_at",
		"amount":     "fee_catalog_amount",
		"fee_type":   "fee_catalog_fee_type",
		"class":      "fee_catalog_class_name",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}

	var rows []model.FeeCatalogEntry
	qq := q.Order(fmt.Sprintf("%s %s", col, dir))
	if !p.All {
		qq = qq.Limit(p.PerPage).Offset(p.Offset())
	}
	if err := qq.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list fee catalog")
	}

	return helper.JsonList(c, "ok", dto.ToFeeCatalogResponses(rows), helper.BuildPagination(p, total, len(rows)))
}

// DELETE /:school_id/fee-catalog/:id
func (h *FeeCatalogHandler) Delete(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where("fee_catalog_id = ? AND fee_catalog_school_id = ?", id, schoolID).
		Delete(&model.FeeCatalogEntry{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete fee catalog entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee catalog entry not found")
	}
	return helper.JsonDeleted(c, "fee catalog entry deleted", fiber.Map{"fee_catalog_id": id})
}

// GET /:school_id/fee-catalog/available-fee-types?class=&section=
// Siswa tanpa katalog yang cocok ⇒ daftar kosong (UI tidak menawarkan apa-apa).
func (h *FeeCatalogHandler) AvailableFeeTypes(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	class := c.Query("class")
	section := c.Query("section")

	var rows []model.FeeCatalogEntry
	if err := h.DB.
		Where("fee_catalog_school_id = ?", schoolID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to fetch fee catalog")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"fee_types": service.AvailableFeeTypes(class, section, rows),
	})
}

// GET /:school_id/fee-catalog/amount?class=&section=&fee_types=a,b
// Pilihan kosong ⇒ 0.
func (h *FeeCatalogHandler) AmountForSelection(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	class := c.Query("class")
	section := c.Query("section")

	var selected []string
	if raw := strings.TrimSpace(c.Query("fee_types")); raw != "" {
		selected = strings.Split(raw, ",")
	}

	var rows []model.FeeCatalogEntry
	if err := h.DB.
		Where("fee_catalog_school_id = ?", schoolID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to fetch fee catalog")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"amount": service.AmountForSelection(class, section, selected, rows),
	})
}
