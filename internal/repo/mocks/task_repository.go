// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *TaskRepository) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) Get(ctx context.Context, id int64) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
