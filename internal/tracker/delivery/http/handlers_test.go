package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
	"tugasku/internal/tracker"
	trackeruc "tugasku/internal/tracker/usecase"
	"tugasku/pkg/datemath"
	"tugasku/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func setup(t *testing.T) (*gin.Engine, tracker.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	l := &mockLogger{}
	clock := func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	uc := trackeruc.New(l, storage.New(memory.New(0), l), dates, clock)

	ctx := context.Background()
	for _, rec := range []model.Record{
		model.Task{ID: "t1", Title: "PR Fisika", Deadline: "2024-05-02", Priority: model.PriorityHigh},
		model.Task{ID: "t2", Title: "PR Kimia", Deadline: "2024-04-01"},
		model.Schedule{ID: "s1", Subject: "Kimia", Day: "rabu", StartTime: "10:00"},
		model.Note{ID: "n1", Title: "Catatan"},
		model.Note{ID: "n2", Title: "Bawa besok", Content: "- [ ] buku gambar\n- [ ] pensil"},
	} {
		if _, err := uc.Commit(ctx, rec); err != nil {
			t.Fatalf("Commit() error = %v", err)
		}
	}

	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), New(l, uc))
	return engine, uc
}

func call(t *testing.T, engine *gin.Engine, method, path string, body any) (int, response.Resp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, w.Body.String())
	}
	return w.Code, resp
}

func TestRoutes(t *testing.T) {
	tcs := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		check    func(t *testing.T, data map[string]any)
	}{
		{
			name: "list tasks", method: http.MethodGet, path: "/api/v1/tasks", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				if data["total"] != float64(2) || data["filter"] != "all" {
					t.Errorf("data = %#v", data)
				}
			},
		},
		{
			name: "overdue filter", method: http.MethodGet, path: "/api/v1/tasks?filter=overdue", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				tasks := data["tasks"].([]any)
				if len(tasks) != 1 || tasks[0].(map[string]any)["id"] != "t2" {
					t.Errorf("tasks = %#v", tasks)
				}
			},
		},
		{name: "bad filter", method: http.MethodGet, path: "/api/v1/tasks?filter=later", wantCode: http.StatusBadRequest},
		{
			name: "toggle", method: http.MethodPatch, path: "/api/v1/tasks/t1/toggle", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				if data["status"] != "done" {
					t.Errorf("status = %v, want done", data["status"])
				}
			},
		},
		{name: "toggle missing", method: http.MethodPatch, path: "/api/v1/tasks/nope/toggle", wantCode: http.StatusNotFound},
		{name: "delete task", method: http.MethodDelete, path: "/api/v1/tasks/t2", wantCode: http.StatusOK},
		{name: "schedules by day", method: http.MethodGet, path: "/api/v1/schedules?day=rabu", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				if data["total"] != float64(1) {
					t.Errorf("total = %v, want 1", data["total"])
				}
			},
		},
		{name: "bad day", method: http.MethodGet, path: "/api/v1/schedules?day=someday", wantCode: http.StatusBadRequest},
		{name: "delete schedule", method: http.MethodDelete, path: "/api/v1/schedules/s1", wantCode: http.StatusOK},
		{
			name: "list notes with checklist", method: http.MethodGet, path: "/api/v1/notes", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				var withList int
				for _, n := range data["notes"].([]any) {
					if cl, ok := n.(map[string]any)["checklist"].(map[string]any); ok {
						withList++
						if cl["total"] != float64(2) {
							t.Errorf("checklist = %#v, want total 2", cl)
						}
					}
				}
				if withList != 1 {
					t.Errorf("notes with checklist = %d, want 1", withList)
				}
			},
		},
		{
			name: "check note item", method: http.MethodPatch, path: "/api/v1/notes/n2/items", body: checkItemReq{Item: "buku", Checked: true}, wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				cl := data["checklist"].(map[string]any)
				if cl["completed"] != float64(1) {
					t.Errorf("checklist = %#v, want one completed", cl)
				}
			},
		},
		{name: "check unknown item", method: http.MethodPatch, path: "/api/v1/notes/n2/items", body: checkItemReq{Item: "kalkulator"}, wantCode: http.StatusNotFound},
		{name: "check blank item", method: http.MethodPatch, path: "/api/v1/notes/n2/items", body: checkItemReq{}, wantCode: http.StatusBadRequest},
		{name: "delete missing note", method: http.MethodDelete, path: "/api/v1/notes/nope", wantCode: http.StatusNotFound},
		{
			name: "stats", method: http.MethodGet, path: "/api/v1/stats", wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				if data["notes"] != float64(2) {
					t.Errorf("notes = %v, want 2", data["notes"])
				}
			},
		},
		{
			name: "update settings", method: http.MethodPut, path: "/api/v1/settings", body: settingsReq{Theme: "dark"}, wantCode: http.StatusOK,
			check: func(t *testing.T, data map[string]any) {
				if data["theme"] != "dark" {
					t.Errorf("theme = %v", data["theme"])
				}
			},
		},
		{name: "bad theme", method: http.MethodPut, path: "/api/v1/settings", body: settingsReq{Theme: "neon"}, wantCode: http.StatusBadRequest},
	}

	engine, _ := setup(t)
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := call(t, engine, tc.method, tc.path, tc.body)
			if code != tc.wantCode {
				t.Fatalf("code = %d, want %d (%s)", code, tc.wantCode, resp.Message)
			}
			if tc.check != nil {
				data, ok := resp.Data.(map[string]any)
				if !ok {
					t.Fatalf("data = %#v, want object", resp.Data)
				}
				tc.check(t, data)
			}
		})
	}
}

func TestWeeklySchedules(t *testing.T) {
	engine, _ := setup(t)

	code, resp := call(t, engine, http.MethodGet, "/api/v1/schedules/weekly", nil)
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	days, ok := resp.Data.([]any)
	if !ok || len(days) != 6 {
		t.Fatalf("data = %#v, want six days", resp.Data)
	}
	rabu := days[2].(map[string]any)
	if rabu["day"] != "rabu" || len(rabu["schedules"].([]any)) != 1 {
		t.Errorf("rabu = %#v", rabu)
	}
}
