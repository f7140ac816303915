package service

import (
	"context"
	"strings"

	"todoapp/internal/model"
	"todoapp/internal/repository"
)

// TodoStore is the persistence surface the service operates on.
type TodoStore interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetAll(ctx context.Context) ([]model.Todo, error)
	GetByID(ctx context.Context, id uint) (*model.Todo, error)
	GetByPriority(ctx context.Context, priority model.Priority) ([]model.Todo, error)
	GetCompleted(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id uint) error
}

var _ TodoStore = (*repository.TodoRepository)(nil)

// CreateTodoInput carries the caller-supplied fields for a new todo.
type CreateTodoInput struct {
	Title       string
	Description string
	Priority    model.Priority
	Completed   bool
}

// UpdateTodoInput carries a partial update. Nil fields keep their prior values.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Completed   *bool
}

type TodoService interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, input CreateTodoInput) (*model.Todo, error)
	Get(ctx context.Context, id uint) (*model.Todo, error)
	Update(ctx context.Context, id uint, input UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id uint) error
	Toggle(ctx context.Context, id uint) (*model.Todo, error)
	ListByPriority(ctx context.Context, priority model.Priority) ([]model.Todo, error)
	ListCompleted(ctx context.Context) ([]model.Todo, error)
}

type TodoServiceImpl struct {
	repo TodoStore
}

var _ TodoService = (*TodoServiceImpl)(nil)

func NewTodoService(repo TodoStore) *TodoServiceImpl {
	return &TodoServiceImpl{repo: repo}
}

// List returns every todo in insertion order. Never nil on success.
func (s *TodoServiceImpl) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// Create validates the input and persists a new todo. The store assigns
// the id and both timestamps.
func (s *TodoServiceImpl) Create(ctx context.Context, input CreateTodoInput) (*model.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if !input.Priority.Valid() {
		return nil, NewValidationError("priority", "must be 0, 1 or 2")
	}

	todo := &model.Todo{
		Title:       title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoServiceImpl) Get(ctx context.Context, id uint) (*model.Todo, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites only the supplied fields and refreshes updated_at.
// An empty partial still advances updated_at.
func (s *TodoServiceImpl) Update(ctx context.Context, id uint, input UpdateTodoInput) (*model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		todo.Title = title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, NewValidationError("priority", "must be 0, 1 or 2")
		}
		todo.Priority = *input.Priority
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips the completed flag through the normal update path.
func (s *TodoServiceImpl) Toggle(ctx context.Context, id uint) (*model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	completed := !todo.Completed
	return s.Update(ctx, id, UpdateTodoInput{Completed: &completed})
}

func (s *TodoServiceImpl) ListByPriority(ctx context.Context, priority model.Priority) ([]model.Todo, error) {
	if !priority.Valid() {
		return nil, NewValidationError("priority", "must be 0, 1 or 2")
	}
	todos, err := s.repo.GetByPriority(ctx, priority)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

func (s *TodoServiceImpl) ListCompleted(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.repo.GetCompleted(ctx)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}
