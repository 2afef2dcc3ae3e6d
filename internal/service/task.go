package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/task-list-api/internal/model"
	"github.com/BuzzLyutic/task-list-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Create validates the input before touching storage; a rejected task
// never reaches the repository.
func (s *TaskService) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	if err := validateTitle(in.Title); err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, in)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update. A patch with no fields is accepted and
// only refreshes updated_at.
func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return model.Task{}, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}
