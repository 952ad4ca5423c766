package httpserver

import (
	"errors"
	"net/http"

	"github.com/akyairhashvil/lighttrack/internal/database"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	CodeOK            = 0
	CodeBadRequest    = 1
	CodeNotFound      = 404
	CodeInternalError = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{ErrorCode: CodeOK, Message: MessageSuccess, Data: data})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{ErrorCode: CodeBadRequest, Message: err.Error()})
}

func notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{ErrorCode: CodeNotFound, Message: err.Error()})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{ErrorCode: CodeInternalError, Message: DefaultErrorMessage})
}

// fail maps store errors onto responses. Validation sentinels become 400,
// missing rows 404, everything else 500 with the cause only in the log.
func (srv *Server) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, database.ErrInvalidInterval),
		errors.Is(err, database.ErrInvalidRange),
		errors.Is(err, database.ErrInvalidPayload):
		badRequest(c, err)
	case errors.Is(err, database.ErrNotFound):
		notFound(c, err)
	default:
		srv.l.Error("request failed",
			zap.String("op", op),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		internalError(c)
	}
}
