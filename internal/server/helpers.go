package server

import (
	"net/http"

	"translateapi/internal/core"

	"github.com/gin-gonic/gin"
)

// respondWithError maps a gateway error onto the external taxonomy:
// validation kinds become 422, model load failures 503, execution failures
// 500 with the "Translation Error" category, and anything unclassified a
// generic 500 with the cause logged but never returned.
func respondWithError(c *gin.Context, logger core.Logger, err error) {
	kind := core.KindOf(err)

	status := http.StatusInternalServerError
	detail := core.MessageOf(err)

	switch {
	case kind.IsValidation():
		status = http.StatusUnprocessableEntity
	case kind == core.ErrModelLoadFailed:
		status = http.StatusServiceUnavailable
	case kind == core.ErrTranslationExecutionFailed:
		status = http.StatusInternalServerError
	default:
		logger.Error("Unhandled error at gateway boundary: %v", err)
		detail = "internal server error"
	}

	c.JSON(status, core.ErrorResponse{
		Error:  kind.Category(),
		Detail: detail,
	})
}

// respondWithBadRequest reports a malformed (undecodable) request body.
func respondWithBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, core.ErrorResponse{
		Error:  "Validation Error",
		Detail: detail,
	})
}
