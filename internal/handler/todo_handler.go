package handler

import (
	"errors"
	"net/http"
	"strconv"

	"todoapp/internal/model"
	"todoapp/internal/repository"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	todos service.TodoService
}

func NewTodoHandler(todos service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// TodoRequest представляет запрос на создание задачи
type TodoRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Priority    *model.Priority `json:"priority" binding:"omitempty,min=0,max=2"`
	Completed   bool            `json:"completed"`
}

// TodoUpdateRequest представляет запрос на частичное обновление задачи
type TodoUpdateRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Priority    *model.Priority `json:"priority" binding:"omitempty,min=0,max=2"`
	Completed   *bool           `json:"completed"`
}

// GetAll возвращает все задачи в порядке создания
func (h *TodoHandler) GetAll(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Create создает новую задачу
func (h *TodoHandler) Create(c *gin.Context) {
	// Парсим запрос
	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}

	todo, err := h.todos.Create(c.Request.Context(), input)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// GetByID получает задачу по ID
func (h *TodoHandler) GetByID(c *gin.Context) {
	// Парсим ID задачи из URL
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	todo, err := h.todos.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todo"})
		}
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Update обновляет переданные поля задачи
func (h *TodoHandler) Update(c *gin.Context) {
	// Парсим ID задачи из URL
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	// Парсим запрос
	var req TodoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), uint(id), service.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, repository.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		}
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete удаляет задачу
func (h *TodoHandler) Delete(c *gin.Context) {
	// Парсим ID задачи из URL
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	if err := h.todos.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// Toggle переключает флаг выполнения задачи
func (h *TodoHandler) Toggle(c *gin.Context) {
	// Парсим ID задачи из URL
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	todo, err := h.todos.Toggle(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle todo"})
		}
		return
	}

	c.JSON(http.StatusOK, todo)
}

// GetByPriority возвращает задачи с указанным приоритетом
func (h *TodoHandler) GetByPriority(c *gin.Context) {
	// Парсим уровень приоритета из URL
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || !model.Priority(level).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	todos, err := h.todos.ListByPriority(c.Request.Context(), model.Priority(level))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetCompleted возвращает выполненные задачи
func (h *TodoHandler) GetCompleted(c *gin.Context) {
	todos, err := h.todos.ListCompleted(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}
