package routes

import (
	"errors"

	"jalwa-site-server/storage"
	"jalwa-site-server/utils"

	"github.com/kataras/iris/v12"
)

// GetGiftCode - GET /api/gift-code (public)
func (h *VerificationHandler) GetGiftCode(ctx iris.Context) {
	code, err := h.Store.GetGiftCode()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.JSONData(ctx, iris.Map{"giftCode": code})
}

type GiftCodeInput struct {
	GiftCode string `json:"giftCode" validate:"required,min=1,max=100"`
}

// UpdateGiftCode - POST /api/admin/gift-code
func (h *VerificationHandler) UpdateGiftCode(ctx iris.Context) {
	var input GiftCodeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.JSONMessage(ctx, iris.StatusBadRequest, "Missing or invalid giftCode (1-100 characters required)")
		return
	}

	code, err := h.Store.UpdateGiftCode(input.GiftCode)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidGiftCode) {
			utils.JSONMessage(ctx, iris.StatusBadRequest, "Missing or invalid giftCode (1-100 characters required)")
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.JSONData(ctx, iris.Map{"giftCode": code})
}
