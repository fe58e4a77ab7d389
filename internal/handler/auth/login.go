package auth

import (
	"net/http"
	"strings"
	"time"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/dto"
	"virtual-tutor/internal/service"
	"virtual-tutor/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the credential body.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// LoginHandler verifies email/password and returns a signed access token.
// @Summary     Log in
// @Description Verifies credentials and issues a bearer token valid for 24 hours.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "credentials"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := store.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		authUser, err := service.AuthenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, err := service.IssueAccessToken(*authUser, 24*time.Hour)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
	}
}
