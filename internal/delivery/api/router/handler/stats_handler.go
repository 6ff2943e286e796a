package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
}

type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{statsUC: params.StatsUC}
}

// Get returns the caller's reading statistics snapshot.
func (h *StatsHandler) Get(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.statsUC.Snapshot(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
