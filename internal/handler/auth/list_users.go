package auth

import (
	"net/http"
	"time"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/dto"
	"virtual-tutor/internal/store"

	"github.com/labstack/echo/v4"
)

// UserResponse is the admin-facing user projection. It deliberately carries
// no password hash field.
// swagger:model UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// ListUsersHandler returns every registered user. Admin only.
// @Summary     List users
// @Tags        auth
// @Produce     json
// @Success     200 {array} UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list users"})
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				IsAdmin:   u.IsAdmin,
				CreatedAt: u.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
