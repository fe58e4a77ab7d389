package history

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"virtual-tutor/internal/cache"
	"virtual-tutor/internal/database"
	"virtual-tutor/internal/dto"
	"virtual-tutor/internal/middleware"
	"virtual-tutor/internal/model"
	"virtual-tutor/internal/store"

	"github.com/labstack/echo/v4"
)

const listCacheTTL = 5 * time.Minute

func listCacheKey(userID int) string {
	return fmt.Sprintf("history:list:%d", userID)
}

// CreateRequest is the history event body. Payload accepts any JSON value.
// swagger:model history.CreateRequest
type CreateRequest struct {
	Type    string         `json:"type" validate:"required,max=50" example:"login"`
	Payload model.Document `json:"payload" validate:"required"`
}

// Response is one stored history event.
// swagger:model history.Response
type Response struct {
	ID        int             `json:"id" example:"1"`
	Type      string          `json:"type" example:"login"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(h model.History) Response {
	return Response{
		ID:        h.ID,
		Type:      h.Type,
		Payload:   json.RawMessage(h.Payload),
		CreatedAt: h.CreatedAt,
	}
}

// CreateHandler appends one event to the caller's history.
// @Summary     Record a history event
// @Description Stores an arbitrary typed JSON payload for the authenticated user.
// @Tags        history
// @Accept      json
// @Produce     json
// @Param       request body CreateRequest true "event"
// @Success     201 {object} Response
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /history/ [post]
func CreateHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if req.Payload.IsZero() {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "payload is required"})
		}

		claims := middleware.Claims(c)
		ctx := c.Request().Context()

		h := &model.History{
			UserID:  claims.UserID,
			Type:    req.Type,
			Payload: req.Payload.String(),
		}
		created, err := store.CreateHistory(ctx, db, h)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to record history"})
		}

		// The cached listing is stale now.
		rdb.Del(ctx, listCacheKey(claims.UserID))

		return c.JSON(http.StatusCreated, toResponse(*created))
	}
}

// ListHandler returns the caller's events, newest first.
// @Summary     List history events
// @Tags        history
// @Produce     json
// @Success     200 {array} Response
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /history/ [get]
func ListHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		ctx := c.Request().Context()
		key := listCacheKey(claims.UserID)

		if cached, err := rdb.Get(ctx, key).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		items, err := store.ListHistoryByUser(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list history"})
		}

		resp := make([]Response, 0, len(items))
		for _, h := range items {
			resp = append(resp, toResponse(h))
		}

		if body, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, key, string(body), listCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
