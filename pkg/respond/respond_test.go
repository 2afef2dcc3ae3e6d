package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	type task struct {
		ID          int64   `json:"id"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}

	tests := []struct {
		name     string
		code     int
		data     any
		wantBody string
	}{
		{
			name:     "single object",
			code:     http.StatusOK,
			data:     task{ID: 1, Title: "Buy milk"},
			wantBody: `{"id":1,"title":"Buy milk","description":null}`,
		},
		{
			name:     "list",
			code:     http.StatusOK,
			data:     []task{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}},
			wantBody: `[{"id":2,"title":"B","description":null},{"id":1,"title":"A","description":null}]`,
		},
		{
			name:     "empty list stays an array",
			code:     http.StatusOK,
			data:     []task{},
			wantBody: `[]`,
		},
		{
			name:     "non-200 status",
			code:     http.StatusServiceUnavailable,
			data:     map[string]string{"error": "not ready"},
			wantBody: `{"error":"not ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

			JSON(w, r, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		code    int
		message string
	}{
		{http.StatusBadRequest, "validation error: title is required"},
		{http.StatusNotFound, "task not found"},
		{http.StatusInternalServerError, "database error: connection refused"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)

			Error(w, r, tt.code, tt.message)

			assert.Equal(t, tt.code, w.Code)

			var got map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, map[string]string{"error": tt.message}, got)
		})
	}
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil)

	Message(w, r, http.StatusOK, "Task deleted successfully")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, w.Body.String())
}
