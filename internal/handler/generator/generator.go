package generator

import (
	"fmt"
	"net/http"

	"virtual-tutor/internal/dto"
	"virtual-tutor/internal/metrics"
	"virtual-tutor/internal/service"

	"github.com/labstack/echo/v4"
)

// chatCompletion is a var so tests can stub the upstream call.
var chatCompletion = service.ChatCompletion

// ChatRequest carries the conversation to relay upstream.
// swagger:model generator.ChatRequest
type ChatRequest struct {
	Messages []service.ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// NotConfiguredResponse is returned when no upstream credential is set.
// swagger:model generator.NotConfiguredResponse
type NotConfiguredResponse struct {
	Response string `json:"response" example:"AI API key not configured"`
}

// TopicRequest selects the subject for mock flashcards and quizzes.
// swagger:model generator.TopicRequest
type TopicRequest struct {
	Topic string `json:"topic" example:"Algebra"`
}

// Flashcard is one front/back study card.
// swagger:model generator.Flashcard
type Flashcard struct {
	Front string `json:"front" example:"Algebra - concept 1"`
	Back  string `json:"back" example:"Definition 1"`
}

// QuizItem is one multiple-choice question.
// swagger:model generator.QuizItem
type QuizItem struct {
	ID       string   `json:"id" example:"1"`
	Question string   `json:"question" example:"What is Algebra?"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer" example:"0"`
}

// ChatHandler relays a chat-completion request upstream. Without an API key
// it answers a fixed body and never touches the network. The upstream status
// and body are passed through verbatim; transport failures become 502.
// @Summary     Chat completion proxy
// @Tags        generator
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "conversation"
// @Success     200 {object} NotConfiguredResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     502 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /generator/chat [post]
func ChatHandler(apiKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Without a credential the answer is the same for every body, so
		// nothing is bound or validated and no network call can happen.
		if apiKey == "" {
			return c.JSON(http.StatusOK, NotConfiguredResponse{Response: "AI API key not configured"})
		}

		var req ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		metrics.CompletionRequestsTotal.Inc()
		status, body, err := chatCompletion(c.Request().Context(), apiKey, req.Messages)
		if err != nil {
			return c.JSON(http.StatusBadGateway, dto.HTTPError{Message: "upstream completion request failed"})
		}
		return c.JSONBlob(status, body)
	}
}

// FlashcardsHandler returns fixed mock flashcards for a topic.
// @Summary     Generate flashcards (mock)
// @Tags        generator
// @Accept      json
// @Produce     json
// @Param       request body TopicRequest false "topic"
// @Success     200 {object} map[string][]Flashcard
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /generator/flashcards [post]
func FlashcardsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TopicRequest
		// Topic is optional; a bad body just falls back to the default.
		_ = c.Bind(&req)
		topic := req.Topic
		if topic == "" {
			topic = "General"
		}
		cards := []Flashcard{
			{Front: fmt.Sprintf("%s - concept 1", topic), Back: "Definition 1"},
			{Front: fmt.Sprintf("%s - concept 2", topic), Back: "Definition 2"},
		}
		return c.JSON(http.StatusOK, map[string][]Flashcard{"flashcards": cards})
	}
}

// QuizHandler returns a fixed mock quiz for a topic.
// @Summary     Generate a quiz (mock)
// @Tags        generator
// @Accept      json
// @Produce     json
// @Param       request body TopicRequest false "topic"
// @Success     200 {object} map[string][]QuizItem
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /generator/quiz [post]
func QuizHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TopicRequest
		_ = c.Bind(&req)
		topic := req.Topic
		if topic == "" {
			topic = "General"
		}
		quiz := []QuizItem{
			{
				ID:       "1",
				Question: fmt.Sprintf("What is %s?", topic),
				Options:  []string{"A", "B", "C"},
				Answer:   0,
			},
		}
		return c.JSON(http.StatusOK, map[string][]QuizItem{"quiz": quiz})
	}
}
