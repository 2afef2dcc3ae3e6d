package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-list-api/internal/model"
)

const taskColumns = "id, title, description, completed, created_at, updated_at"

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

// withConn acquires a pooled connection for the duration of fn and
// releases it on every return path.
func (r *TaskRepo) withConn(ctx context.Context, op string, fn func(conn *pgxpool.Conn) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return storageErr(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Release()

	return fn(conn)
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)

	err := r.withConn(ctx, "list tasks", func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			ORDER BY created_at DESC, id DESC
		`)
		if err != nil {
			return storageErr("list tasks", err)
		}
		defer rows.Close()

		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return storageErr("list tasks", err)
			}
			tasks = append(tasks, t)
		}
		return storageErr("list tasks", rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	description := ""
	if in.Description != nil {
		description = *in.Description
	}

	var t model.Task
	err := r.withConn(ctx, "create task", func(conn *pgxpool.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO tasks (title, description)
			VALUES ($1, $2)
			RETURNING `+taskColumns,
			in.Title, description)

		var err error
		t, err = scanTask(row)
		return storageErr("create task", err)
	})
	return t, err
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := r.withConn(ctx, "get task", func(conn *pgxpool.Conn) error {
		row := conn.QueryRow(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			WHERE id = $1
		`, id)

		var err error
		t, err = scanTask(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return storageErr("get task", err)
	})
	return t, err
}

// Update writes only the fields present in patch and always refreshes
// updated_at, even for an empty patch. The existence check and the write
// are a single statement, so a missing id never mutates anything.
func (r *TaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	query, args := buildUpdate(id, patch)

	var t model.Task
	err := r.withConn(ctx, "update task", func(conn *pgxpool.Conn) error {
		var err error
		t, err = scanTask(conn.QueryRow(ctx, query, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return storageErr("update task", err)
	})
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	return r.withConn(ctx, "delete task", func(conn *pgxpool.Conn) error {
		cmd, err := conn.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
		if err != nil {
			return storageErr("delete task", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrorNotFound
		}
		return nil
	})
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	return storageErr("ping", r.pool.Ping(ctx))
}

func buildUpdate(id int64, patch model.TaskPatch) (string, []any) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 4)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), taskColumns,
	)
	return query, args
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
