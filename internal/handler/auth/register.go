package auth

import (
	"errors"
	"net/http"
	"strings"

	"virtual-tutor/internal/database"
	"virtual-tutor/internal/dto"
	"virtual-tutor/internal/model"
	"virtual-tutor/internal/service"
	"virtual-tutor/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// uniqueViolation is the Postgres error code for a unique constraint hit,
// covering the insert race the pre-check cannot.
const uniqueViolation = "23505"

// RegisterRequest is the registration body.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Name     string `json:"name" validate:"required,max=100" example:"Alice"`
}

// RegisterResponse echoes the public projection of the created user. The
// password hash never appears here.
// swagger:model RegisterResponse
type RegisterResponse struct {
	Message string `json:"message" example:"user registered successfully"`
	ID      int    `json:"id" example:"1"`
	Email   string `json:"email" example:"alice@example.com"`
}

// RegisterHandler creates a new user account.
// @Summary     Register a new user
// @Description Creates a user from email, password and name. Email is lowercased; a duplicate email is rejected.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "registration data"
// @Success     201 {object} RegisterResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		ctx := c.Request().Context()
		if _, err := store.GetUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email already registered"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		created, err := store.CreateUser(ctx, db, user)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		return c.JSON(http.StatusCreated, RegisterResponse{
			Message: "user registered successfully",
			ID:      created.ID,
			Email:   created.Email,
		})
	}
}
