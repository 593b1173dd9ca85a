package response

import (
	"errors"
	"net/http"

	"fonebridge/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the client-facing failure envelope. Proxy endpoints
// forward the remote node's body verbatim on success, so the only
// shape this package owns is the error one.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. *apperror.AppError values map to
// their HTTP status and safe message; anything else becomes a
// generic 500. Internal detail never crosses this boundary.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
