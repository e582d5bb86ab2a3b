// file: internals/features/finance/feecollection/controller/fee_collection_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	catalogmodel "schoolku_backend/internals/features/finance/feecatalog/model"
	"schoolku_backend/internals/features/finance/feecollection/dto"
	"schoolku_backend/internals/features/finance/feecollection/model"
	"schoolku_backend/internals/features/finance/feecollection/service"
	assetmodel "schoolku_backend/internals/features/school/assets/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type FeeCollectionHandler struct {
	DB *gorm.DB
}

var validate = validator.New()

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := strings.TrimSpace(c.Params("school_id")); s != "" {
		return uuid.Parse(s)
	}
	return helper.GetSchoolIDFromToken(c)
}

func (h *FeeCollectionHandler) fetchCatalog(schoolID uuid.UUID) ([]catalogmodel.FeeCatalogEntry, error) {
	var rows []catalogmodel.FeeCatalogEntry
	err := h.DB.Where("fee_catalog_school_id = ?", schoolID).Find(&rows).Error
	return rows, err
}

func (h *FeeCollectionHandler) loadEntry(schoolID, id uuid.UUID) (model.LedgerEntry, error) {
	var m model.LedgerEntry
	err := h.DB.First(&m,
		"ledger_entry_id = ? AND ledger_entry_school_id = ?", id, schoolID).Error
	return m, err
}

/* =======================================================
   RECEIPT NUMBER — dibuat saat form create DIBUKA.
   GET /:school_id/fee-collections/receipt-number
======================================================= */

func (h *FeeCollectionHandler) ReceiptNumber(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"receipt_number": service.GenerateReceiptNumber(time.Now()),
	})
}

/* =======================================================
   CREATE
   POST /:school_id/fee-collections
======================================================= */

func (h *FeeCollectionHandler) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in dto.FeeCollectionCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if in.PaidAmount.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "paid amount must not be negative")
	}
	if !service.ValidReceiptNumber(in.ReceiptNumber) {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid receipt number format")
	}

	// Precondition: student harus resolvable.
	var student studentmodel.StudentRef
	if err := h.DB.First(&student,
		"student_id = ? AND student_school_id = ?", in.StudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "student not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to resolve student")
	}

	catalog, err := h.fetchCatalog(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to fetch fee catalog")
	}

	// Rule A lalu Rule B dalam satu pass.
	sess := service.CollectionSession{
		StudentClass:     student.StudentClassName,
		StudentSection:   student.StudentSection,
		SelectedFeeTypes: model.NewFeeTypeSet(in.FeeTypes...),
		PaidAmount:       in.PaidAmount,
	}
	sess.Recompute(catalog)

	entry := model.LedgerEntry{
		LedgerEntrySchoolID:      schoolID,
		LedgerEntryStudentID:     student.StudentID,
		LedgerEntryClassName:     student.StudentClassName,
		LedgerEntrySection:       student.StudentSection,
		LedgerEntryFeeTypes:      sess.SelectedFeeTypes,
		LedgerEntryAmount:        sess.Amount,
		LedgerEntryPaidAmount:    sess.PaidAmount,
		LedgerEntryPendingAmount: sess.PendingAmount,
		LedgerEntryPaymentMode:   model.PaymentMode(in.PaymentMode),
		LedgerEntryPaidDate:      in.PaidDate,
		LedgerEntryReceiptNumber: in.ReceiptNumber,
		LedgerEntryDescription:   in.Description,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to record fee collection")
	}

	// Sekalian kirim receipt view untuk halaman konfirmasi/print.
	assets := h.lookupAssets(schoolID)
	return helper.JsonCreated(c, "fee collection recorded", fiber.Map{
		"entry":   dto.ToFeeCollectionResponse(entry),
		"receipt": service.BuildReceiptView(entry, &student, assets, configs.DefaultCurrency),
	})
}

/* =======================================================
   EDIT — settle_pending | add_fee
   PATCH /:school_id/fee-collections/:id
======================================================= */

func (h *FeeCollectionHandler) Edit(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.FeeCollectionEditRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	entry, err := h.loadEntry(schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee collection not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load fee collection")
	}

	catalog, err := h.fetchCatalog(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to fetch fee catalog")
	}

	res, err := service.ApplyEdit(&entry, service.EditRequest{
		Intent:         service.EditIntent(in.Intent),
		AdditionalPaid: in.PaidAmount,
		FeeTypes:       in.FeeTypes,
	}, catalog)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Edit MENGGANTI totals pada row yang sama; tidak append row baru.
	if err := h.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update fee collection")
	}

	return helper.JsonUpdated(c, "fee collection updated", fiber.Map{
		"entry":                dto.ToFeeCollectionResponse(entry),
		"previous_paid_amount": res.PreviousPaidAmount,
	})
}

/* =======================================================
   EDIT CONTEXT — rekonstruksi state sebelum form edit tampil.
   GET /:school_id/fee-collections/:id/edit-context
======================================================= */

func (h *FeeCollectionHandler) EditContext(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	target, err := h.loadEntry(schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee collection not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load fee collection")
	}

	var ledger []model.LedgerEntry
	if err := h.DB.
		Where("ledger_entry_school_id = ? AND ledger_entry_student_id = ?",
			schoolID, target.LedgerEntryStudentID).
		Find(&ledger).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load student ledger")
	}

	sess := service.ReconstructSession(target, ledger)
	return helper.JsonOK(c, "ok", dto.EditContextResponse{
		LedgerEntryID:      target.LedgerEntryID,
		FeeTypes:           sess.SelectedFeeTypes,
		Amount:             sess.Amount,
		PreviousPaidAmount: sess.PaidAmount,
		PendingAmount:      sess.PendingAmount,
	})
}

/* =======================================================
   LIST / DELETE
======================================================= */

// GET /:school_id/fee-collections
// Query: student_id, class, from, to (YYYY-MM-DD), page, per_page
func (h *FeeCollectionHandler) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	p := helper.ParseFiber(c, "paid_date", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.LedgerEntry{}).
		Where("ledger_entry_school_id = ?", schoolID)

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("ledger_entry_student_id = ?", sid)
	}
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("LOWER(TRIM(ledger_entry_class_name)) = LOWER(?)", v)
	}
	if from, ok := parseDateQuery(c, "from"); ok {
		q = q.Where("ledger_entry_paid_date >= ?", from)
	}
	if to, ok := parseDateQuery(c, "to"); ok {
		q = q.Where("ledger_entry_paid_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count fee collections")
	}

	allowed := map[string]string{
		"paid_date":  "ledger_entry_paid_date",
		"created_at": "ledger_entry_created_at",
		"amount":     "ledger_entry_amount",
		"pending":    "ledger_entry_pending_amount",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["paid_date"]
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}

	var rows []model.LedgerEntry
	qq := q.Order(fmt.Sprintf("%s %s", col, dir))
	if !p.All {
		qq = qq.Limit(p.PerPage).Offset(p.Offset())
	}
	if err := qq.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list fee collections")
	}

	return helper.JsonList(c, "ok", dto.ToFeeCollectionResponses(rows), helper.BuildPagination(p, total, len(rows)))
}

// DELETE /:school_id/fee-collections/:id
func (h *FeeCollectionHandler) Delete(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where("ledger_entry_id = ? AND ledger_entry_school_id = ?", id, schoolID).
		Delete(&model.LedgerEntry{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete fee collection")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee collection not found")
	}
	return helper.JsonDeleted(c, "fee collection deleted", fiber.Map{"ledger_entry_id": id})
}

/* =======================================================
   RECEIPT VIEW
   GET /:school_id/fee-collections/:id/receipt
======================================================= */

func (h *FeeCollectionHandler) Receipt(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	entry, err := h.loadEntry(schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee collection not found")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load fee collection")
	}

	// Lookup siswa & aset boleh gagal; formatter degrade ke fallback teks.
	var student *studentmodel.StudentRef
	var s studentmodel.StudentRef
	if err := h.DB.First(&s, "student_id = ?", entry.LedgerEntryStudentID).Error; err == nil {
		student = &s
	}
	assets := h.lookupAssets(schoolID)

	return helper.JsonOK(c, "ok", service.BuildReceiptView(entry, student, assets, configs.DefaultCurrency))
}

func (h *FeeCollectionHandler) lookupAssets(schoolID uuid.UUID) *assetmodel.SchoolAsset {
	var a assetmodel.SchoolAsset
	if err := h.DB.First(&a, "school_asset_school_id = ?", schoolID).Error; err != nil {
		return nil
	}
	return &a
}

/* =======================================================
   SUMMARY
   GET /:school_id/fee-collections/summary?from=&to=&class=
======================================================= */

func (h *FeeCollectionHandler) Summary(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var from, to time.Time
	if v, ok := parseDateQuery(c, "from"); ok {
		from = v
	}
	if v, ok := parseDateQuery(c, "to"); ok {
		to = v
	}
	class := c.Query("class")

	var rows []model.LedgerEntry
	if err := h.DB.
		Where("ledger_entry_school_id = ?", schoolID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to load ledger")
	}

	// Total dihitung dari set yang lolos filter, bukan seluruh ledger.
	return helper.JsonOK(c, "ok", service.Summarize(rows, from, to, class))
}

func parseDateQuery(c *fiber.Ctx, key string) (time.Time, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
