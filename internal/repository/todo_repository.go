package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todoapp/internal/model"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create adds a new todo to the database
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetAll retrieves every todo in insertion order
func (r *TodoRepository) GetAll(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	result := r.db.WithContext(ctx).Order("id").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// GetByID retrieves a todo by its ID
func (r *TodoRepository) GetByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	result := r.db.WithContext(ctx).First(&todo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, result.Error
	}
	return &todo, nil
}

// GetByPriority retrieves all todos with the given priority, in insertion order
func (r *TodoRepository) GetByPriority(ctx context.Context, priority model.Priority) ([]model.Todo, error) {
	var todos []model.Todo
	result := r.db.WithContext(ctx).Where("priority = ?", priority).Order("id").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// GetCompleted retrieves all completed todos, in insertion order
func (r *TodoRepository) GetCompleted(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	result := r.db.WithContext(ctx).Where("completed = ?", true).Order("id").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// Update persists the full state of an existing todo
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	result := r.db.WithContext(ctx).Save(todo)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by its ID
func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
