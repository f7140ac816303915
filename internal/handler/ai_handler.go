package handler

import (
	"context"
	"errors"
	"net/http"

	"todoapp/internal/ai"
	"todoapp/internal/model"
	"todoapp/internal/monitoring"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoGenerator converts free text into todo fields. Satisfied by
// ai.Service.
type TodoGenerator interface {
	Generate(ctx context.Context, userInput string) (ai.Result, error)
}

var _ TodoGenerator = (*ai.Service)(nil)

type AIHandler struct {
	generator TodoGenerator
	todos     service.TodoService
}

func NewAIHandler(generator TodoGenerator, todos service.TodoService) *AIHandler {
	return &AIHandler{generator: generator, todos: todos}
}

type GenerateTodoRequest struct {
	UserInput string `json:"user_input" binding:"required,max=1000"`
}

type GenerateTodoResponse struct {
	Success      bool           `json:"success"`
	Title        string         `json:"title,omitempty"`
	Description  string         `json:"description,omitempty"`
	Priority     model.Priority `json:"priority"`
	FallbackUsed bool           `json:"fallback_used"`
	ProviderUsed string         `json:"provider_used"`
	Todo         *model.Todo    `json:"todo,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Generate converts natural language input into a todo and persists it
// through the ordinary creation path. Provider failures never surface
// here; the response only flags that the fallback produced the fields.
func (h *AIHandler) Generate(c *gin.Context) {
	var req GenerateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req.UserInput)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyInput) || errors.Is(err, ai.ErrInputTooLong) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate todo"})
		return
	}

	if !result.Success {
		monitoring.ObserveGeneration("failed")
		c.JSON(http.StatusOK, GenerateTodoResponse{
			Success:      false,
			FallbackUsed: result.FallbackUsed,
			ProviderUsed: result.ProviderUsed,
			Error:        result.ErrorMessage,
		})
		return
	}

	monitoring.ObserveGeneration(result.ProviderUsed)

	todo, err := h.todos.Create(c.Request.Context(), service.CreateTodoInput{
		Title:       result.Title,
		Description: result.Description,
		Priority:    result.Priority,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusOK, GenerateTodoResponse{
		Success:      true,
		Title:        result.Title,
		Description:  result.Description,
		Priority:     result.Priority,
		FallbackUsed: result.FallbackUsed,
		ProviderUsed: result.ProviderUsed,
		Todo:         todo,
	})
}
