package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestBuildUpdate(t *testing.T) {
	tests := []struct {
		name      string
		patch     model.TaskPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty patch only touches updated_at",
			patch:     model.TaskPatch{},
			wantQuery: "UPDATE tasks SET updated_at = now() WHERE id = $1 RETURNING " + taskColumns,
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "completed only",
			patch:     model.TaskPatch{Completed: ptr(true)},
			wantQuery: "UPDATE tasks SET completed = $1, updated_at = now() WHERE id = $2 RETURNING " + taskColumns,
			wantArgs:  []any{true, int64(7)},
		},
		{
			name:      "empty description is still written",
			patch:     model.TaskPatch{Description: ptr("")},
			wantQuery: "UPDATE tasks SET description = $1, updated_at = now() WHERE id = $2 RETURNING " + taskColumns,
			wantArgs:  []any{"", int64(7)},
		},
		{
			name: "all fields",
			patch: model.TaskPatch{
				Title:       ptr("New"),
				Description: ptr("desc"),
				Completed:   ptr(false),
			},
			wantQuery: "UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = now() WHERE id = $4 RETURNING " + taskColumns,
			wantArgs:  []any{"New", "desc", false, int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildUpdate(7, tt.patch)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := storageErr("list tasks", cause)

	var se *StorageError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "list tasks", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list tasks: connection refused", err.Error())

	assert.NoError(t, storageErr("list tasks", nil))
}
