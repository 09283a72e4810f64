package routes

import (
	"jalwa-site-server/storage"
	"jalwa-site-server/utils"

	"github.com/kataras/iris/v12"
)

// VerificationHandler serves both the public verification surface and the
// admin moderation surface against an injected store.
type VerificationHandler struct {
	Store storage.Store
}

func NewVerificationHandler(store storage.Store) *VerificationHandler {
	return &VerificationHandler{Store: store}
}

type VerifyAccountInput struct {
	JalwaUserID string `json:"jalwaUserId" validate:"required,min=1,max=50"`
}

// VerifyAccount - POST /api/verify-account
// Idempotent: an already-known ID reports its stored status, a new one is
// created pending or, for allow-listed IDs, approved on the spot.
func (h *VerificationHandler) VerifyAccount(ctx iris.Context) {
	var input VerifyAccountInput
	if err := ctx.ReadJSON(&input); err != nil {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"success":    false,
			"message":    "Missing or invalid jalwaUserId (1-50 characters required)",
			"isVerified": false,
		})
		return
	}

	result, err := h.Store.VerifyAccount(input.JalwaUserID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"success":    true,
		"message":    result.Message,
		"isVerified": result.IsVerified,
		"status":     result.Status,
		"userId":     result.UserID,
	})
}
