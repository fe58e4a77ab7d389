package handler

import (
	"net/http"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/dto"

	"github.com/labstack/echo/v4"
)

// RootResponse is the liveness message body.
// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message" example:"AI Virtual Tutor backend is running"`
}

// HealthResponse reports service health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RootHandler answers the bare liveness probe.
// @Summary     Liveness message
// @Tags        health
// @Produce     json
// @Success     200 {object} RootResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, RootResponse{Message: "AI Virtual Tutor backend is running"})
	}
}

// HealthHandler reports readiness, including a database ping.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
