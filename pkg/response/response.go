package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"relay-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their code and map
// to 400; validation errors map to 400 with field details; anything else
// is an internal error.
func Error(c *gin.Context, err error) {
	switch e := err.(type) {
	case *errors.HTTPError:
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: e.Code,
			Message:   e.Message,
		})
	case validator.ValidationErrors:
		fields := make([]string, 0, len(e))
		for _, fe := range e {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: CodeBadRequest,
			Message:   "Invalid request",
			Errors:    fields,
		})
	default:
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: CodeInternal,
			Message:   "Internal server error",
		})
	}
}

// ErrorWithMap translates domain errors through the mapping before writing.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	if mapped, ok := mapping[err]; ok {
		Error(c, mapped)
		return
	}
	Error(c, err)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: CodeNotFound,
		Message:   "Not found",
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: CodeUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}
