package repo

import (
	"context"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

// TaskRepository is the persistence contract for tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
