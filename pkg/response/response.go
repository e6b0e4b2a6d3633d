package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a success body wrapping data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error's message. data carries field-level
// details when the caller has them.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}
	c.JSON(http.StatusBadRequest, newErrResp(ErrCodeBadRequest, err.Error(), data))
}

// InternalError sends 500 with a generic message. The error itself is never
// echoed to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, newErrResp(InternalServerErrorCode, DefaultErrorMessage, nil))
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, newErrResp(http.StatusUnauthorized, "Unauthorized", nil))
}

// Forbidden sends 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, newErrResp(http.StatusForbidden, "Forbidden", nil))
}

func newErrResp(code int, message string, data any) Resp {
	return Resp{
		ErrorCode: code,
		Message:   message,
		Data:      data,
	}
}
