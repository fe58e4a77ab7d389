package performance

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
	return fmt.Sprintf("performance:list:%d", userID)
}

// CreateRequest is the quiz outcome body. Score must be present; quiz_id and
// meta are optional.
// swagger:model performance.CreateRequest
type CreateRequest struct {
	QuizID *string         `json:"quiz_id" validate:"omitempty,max=100" example:"algebra-1"`
	Score  *int            `json:"score" validate:"required" example:"80"`
	Meta   *model.Document `json:"meta"`
}

// Response is one stored quiz outcome.
// swagger:model performance.Response
type Response struct {
	ID        int             `json:"id" example:"1"`
	QuizID    *string         `json:"quiz_id"`
	Score     int             `json:"score" example:"80"`
	Meta      json.RawMessage `json:"meta"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(p model.Performance) Response {
	resp := Response{
		ID:        p.ID,
		QuizID:    p.QuizID,
		Score:     p.Score,
		CreatedAt: p.CreatedAt,
	}
	if p.Meta != nil {
		resp.Meta = json.RawMessage(*p.Meta)
	}
	return resp
}

// CreateHandler records one quiz outcome for the caller.
// @Summary     Record a quiz outcome
// @Tags        performance
// @Accept      json
// @Produce     json
// @Param       request body CreateRequest true "outcome"
// @Success     201 {object} Response
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /performance/ [post]
func CreateHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		claims := middleware.Claims(c)
		ctx := c.Request().Context()

		p := &model.Performance{
			UserID: claims.UserID,
			QuizID: req.QuizID,
			Score:  *req.Score,
		}
		if req.Meta != nil && !req.Meta.IsZero() {
			meta := req.Meta.String()
			p.Meta = &meta
		}

		created, err := store.CreatePerformance(ctx, db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to record performance"})
		}

		rdb.Del(ctx, listCacheKey(claims.UserID))

		return c.JSON(http.StatusCreated, toResponse(*created))
	}
}

// ListHandler returns the caller's quiz outcomes, newest first.
// @Summary     List quiz outcomes
// @Tags        performance
// @Produce     json
// @Success     200 {array} Response
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /performance/ [get]
func ListHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		ctx := c.Request().Context()
		key := listCacheKey(claims.UserID)

		if cached, err := rdb.Get(ctx, key).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		items, err := store.ListPerformanceByUser(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list performance"})
		}

		resp := make([]Response, 0, len(items))
		for _, p := range items {
			resp = append(resp, toResponse(p))
		}

		if body, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, key, string(body), listCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
