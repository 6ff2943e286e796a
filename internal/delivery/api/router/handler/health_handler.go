package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// Check reports 503 when the database cannot be reached.
func (h *HealthHandler) Check(c echo.Context) error {
	status := h.healthUC.Check(c.Request().Context())

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}

	return response.Success(c, code, status)
}
