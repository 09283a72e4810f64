package routes

import (
	"errors"

	"jalwa-site-server/models"
	"jalwa-site-server/storage"
	"jalwa-site-server/utils"

	"github.com/kataras/iris/v12"
)

// AdminListVerifications - GET /api/admin/account-verifications
func (h *VerificationHandler) AdminListVerifications(ctx iris.Context) {
	verifications, err := h.Store.GetAllAccountVerifications()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.JSONData(ctx, verifications)
}

// AdminListVerificationsByStatus - GET /api/admin/account-verifications/status/{status}
func (h *VerificationHandler) AdminListVerificationsByStatus(ctx iris.Context) {
	status := ctx.Params().Get("status")

	verifications, err := h.Store.GetAccountVerificationsByStatus(status)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidStatus) {
			utils.JSONMessage(ctx, iris.StatusBadRequest, "Invalid status. Must be one of: pending, approved, rejected")
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.JSONData(ctx, verifications)
}

type UpdateVerificationInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Notes  string `json:"notes"`
}

// AdminUpdateVerification - POST /api/admin/account-verifications/{id}
// Sets any status on any record; this is an admin override, not a guarded
// workflow step. Omitted notes keep the record's prior note.
func (h *VerificationHandler) AdminUpdateVerification(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONMessage(ctx, iris.StatusBadRequest, "Invalid verification id")
		return
	}

	var input UpdateVerificationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	h.applyStatus(ctx, id, input.Status, input.Notes)
}

// AdminApproveVerification - POST /api/admin/account-verification/{id}/approve
func (h *VerificationHandler) AdminApproveVerification(ctx iris.Context) {
	h.applyShortcut(ctx, models.StatusApproved)
}

// AdminRejectVerification - POST /api/admin/account-verification/{id}/reject
func (h *VerificationHandler) AdminRejectVerification(ctx iris.Context) {
	h.applyShortcut(ctx, models.StatusRejected)
}

type verificationNotesInput struct {
	Notes string `json:"notes"`
}

func (h *VerificationHandler) applyShortcut(ctx iris.Context, status string) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONMessage(ctx, iris.StatusBadRequest, "Invalid verification id")
		return
	}

	// Body is optional on the shortcut routes.
	var input verificationNotesInput
	if ctx.Request().ContentLength > 0 {
		if err := ctx.ReadJSON(&input); err != nil {
			utils.HandleValidationErrors(err, ctx)
			return
		}
	}

	h.applyStatus(ctx, id, status, input.Notes)
}

func (h *VerificationHandler) applyStatus(ctx iris.Context, id uint, status, notes string) {
	updated, err := h.Store.UpdateAccountVerificationStatus(id, status, notes)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			utils.JSONMessage(ctx, iris.StatusNotFound, "Account verification not found")
		case errors.Is(err, storage.ErrInvalidStatus):
			utils.JSONMessage(ctx, iris.StatusBadRequest, "Invalid status. Must be one of: pending, approved, rejected")
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"message": "Account verification " + status,
		"data":    updated,
	})
}
