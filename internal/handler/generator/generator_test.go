package generator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"virtual-tutor/internal/middleware"
	"virtual-tutor/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type structValidator struct {
	validate *validator.Validate
}

func (v structValidator) Validate(i any) error { return v.validate.Struct(i) }

func newCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 7})
	return ctx, rec
}

func restoreChat() { chatCompletion = service.ChatCompletion }

func TestChatHandlerNotConfigured(t *testing.T) {
	t.Cleanup(restoreChat)
	called := false
	chatCompletion = func(context.Context, string, []service.ChatMessage) (int, []byte, error) {
		called = true
		return 0, nil, nil
	}

	// the fixed body comes back for any payload, even one the configured
	// path would reject, and validation never runs
	e := echo.New()
	e.Validator = structValidator{validate: validator.New()}
	ctx, rec := newCtx(e, `{}`)
	require.NoError(t, ChatHandler("")(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":"AI API key not configured"}`, rec.Body.String())

	e = echo.New()
	e.Validator = structValidator{validate: validator.New()}
	ctx, rec = newCtx(e, `{"messages":[{"role":"user","content":"hi"}]}`)
	require.NoError(t, ChatHandler("")(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":"AI API key not configured"}`, rec.Body.String())

	// without a key the upstream must never be contacted
	require.False(t, called)
}

func TestChatHandlerProxy(t *testing.T) {
	t.Cleanup(restoreChat)

	// with a key configured an empty conversation fails validation
	e := echo.New()
	e.Validator = structValidator{validate: validator.New()}
	ctx, rec := newCtx(e, `{}`)
	require.NoError(t, ChatHandler("key")(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// upstream response is relayed verbatim, status included
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, `{"messages":[{"role":"user","content":"hi"}]}`)
	var gotKey string
	var gotMsgs []service.ChatMessage
	chatCompletion = func(_ context.Context, apiKey string, msgs []service.ChatMessage) (int, []byte, error) {
		gotKey = apiKey
		gotMsgs = msgs
		return http.StatusTooManyRequests, []byte(`{"error":{"message":"rate limited"}}`), nil
	}
	require.NoError(t, ChatHandler("key-1")(ctx))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "rate limited")
	require.Equal(t, "key-1", gotKey)
	require.Equal(t, []service.ChatMessage{{Role: "user", Content: "hi"}}, gotMsgs)

	// transport failure becomes a gateway error, not a 200 body
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, `{"messages":[{"role":"user","content":"hi"}]}`)
	chatCompletion = func(context.Context, string, []service.ChatMessage) (int, []byte, error) {
		return 0, nil, errors.New("dial timeout")
	}
	require.NoError(t, ChatHandler("key-1")(ctx))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "upstream")
}

func TestFlashcardsHandler(t *testing.T) {
	e := echo.New()

	ctx, rec := newCtx(e, `{"topic":"Algebra"}`)
	require.NoError(t, FlashcardsHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Algebra - concept 1")
	require.Contains(t, rec.Body.String(), "Definition 2")

	// topic defaults
	ctx, rec = newCtx(e, `{}`)
	require.NoError(t, FlashcardsHandler()(ctx))
	require.Contains(t, rec.Body.String(), "General - concept 1")
}

func TestQuizHandler(t *testing.T) {
	e := echo.New()

	ctx, rec := newCtx(e, `{"topic":"Biology"}`)
	require.NoError(t, QuizHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "What is Biology?")
	require.Contains(t, rec.Body.String(), `"answer":0`)
	require.Contains(t, rec.Body.String(), `"id":"1"`)

	ctx, rec = newCtx(e, `{}`)
	require.NoError(t, QuizHandler()(ctx))
	require.Contains(t, rec.Body.String(), "What is General?")
}
