package model

import "time"

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTaskInput is the payload accepted by POST /api/tasks.
// A missing or null description is stored as an empty string.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// TaskPatch carries the fields of a partial update. A nil field is left
// untouched; a non-nil field overwrites the stored value, even with "".
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
