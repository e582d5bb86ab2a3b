// file: internals/features/school/assets/controller/school_asset_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/assets/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolAssetHandler struct {
	DB *gorm.DB
}

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := strings.TrimSpace(c.Params("school_id")); s != "" {
		return uuid.Parse(s)
	}
	return helper.GetSchoolIDFromToken(c)
}

// GET /:school_id/assets
func (h *SchoolAssetHandler) Get(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var m model.SchoolAsset
	if err := h.DB.First(&m, "school_asset_school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school assets not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load school assets")
	}
	return helper.JsonOK(c, "ok", m)
}

type upsertAssetRequest struct {
	Name         string         `json:"name"`
	LogoURL      *string        `json:"logo_url,omitempty"`
	SignatureURL *string        `json:"signature_url,omitempty"`
	Meta         datatypes.JSON `json:"meta,omitempty"`
}

// PUT /:school_id/assets — satu row per school, upsert.
func (h *SchoolAssetHandler) Upsert(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in upsertAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(in.Name) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "name is required")
	}

	m := model.SchoolAsset{
		SchoolAssetSchoolID:     schoolID,
		SchoolAssetName:         strings.TrimSpace(in.Name),
		SchoolAssetLogoURL:      in.LogoURL,
		SchoolAssetSignatureURL: in.SignatureURL,
		SchoolAssetMeta:         in.Meta,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "school_asset_school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"school_asset_name",
			"school_asset_logo_url",
			"school_asset_signature_url",
			"school_asset_meta",
		}),
	}).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save school assets")
	}
	return helper.JsonUpdated(c, "school assets saved", m)
}
