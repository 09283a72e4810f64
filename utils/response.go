package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Every response carries a success discriminator; failures add a
// human-readable message, successes add data.

func JSONData(ctx iris.Context, data interface{}) {
	ctx.JSON(iris.Map{"success": true, "data": data})
}

func JSONMessage(ctx iris.Context, status int, message string) {
	ctx.StopWithJSON(status, iris.Map{"success": false, "message": message})
}

func CreateInternalServerError(ctx iris.Context) {
	JSONMessage(ctx, iris.StatusInternalServerError, "Internal server error")
}

// HandleValidationErrors shapes ReadJSON failures into a 400 envelope,
// naming the first offending field when the validator produced the error.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		JSONMessage(ctx, iris.StatusBadRequest, "Invalid field: "+errs[0].Field())
		return
	}
	JSONMessage(ctx, iris.StatusBadRequest, "Invalid request body")
}
