package handlers

import (
	"net/http"

	"github.com/fiscalia/fiscalia-api/libs/go/db"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices bundles the dependencies shared by all handlers.
type CommonServices struct {
	Queries db.Querier
	Logger  *zap.Logger
}

// NewCommonServices creates the shared handler dependencies.
func NewCommonServices(queries db.Querier, logger *zap.Logger) *CommonServices {
	if logger == nil {
		logger = zap.L()
	}
	return &CommonServices{
		Queries: queries,
		Logger:  logger,
	}
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondInternalError(c *gin.Context, logger *zap.Logger, message string, err error) {
	logger.Error(message, zap.Error(err))
	respondError(c, http.StatusInternalServerError, message)
}
