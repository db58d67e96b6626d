package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pkordes/goal-tracker/internal/domain"
	"github.com/pkordes/goal-tracker/internal/handler"
	"github.com/pkordes/goal-tracker/internal/handler/gen"
)

// mockGoalServicer is a test double for handler.GoalServicer.
// Set only the method fields your test needs.
type mockGoalServicer struct {
	list   func(ctx context.Context) ([]domain.Goal, error)
	create func(ctx context.Context, text string) (domain.Goal, error)
	delete func(ctx context.Context, id string) error
}

func (m *mockGoalServicer) List(ctx context.Context) ([]domain.Goal, error) {
	return m.list(ctx)
}
func (m *mockGoalServicer) Create(ctx context.Context, text string) (domain.Goal, error) {
	return m.create(ctx, text)
}
func (m *mockGoalServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

// compile-time check: mockGoalServicer must satisfy handler.GoalServicer.
var _ handler.GoalServicer = (*mockGoalServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the full router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(svc handler.GoalServicer) http.Handler {
	return handler.NewRouter(handler.NewServer(svc, nil, nil), handler.RouterOptions{MaxBodyBytes: 1 << 20})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body gen.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func postGoal(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/goals", jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET / -----------------------------------------------------------------

func TestGetRoot_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running.", decodeMessage(t, rec))
}

// ---- GET /goals ------------------------------------------------------------

func TestListGoals_200(t *testing.T) {
	svc := &mockGoalServicer{
		list: func(_ context.Context) ([]domain.Goal, error) {
			return []domain.Goal{{ID: "1", Text: "Learn Go"}, {ID: "2", Text: "Run 5k"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"goals":[{"id":"1","text":"Learn Go"},{"id":"2","text":"Run 5k"}]}`, rec.Body.String())
}

func TestListGoals_200_EmptyIsArray(t *testing.T) {
	svc := &mockGoalServicer{
		list: func(_ context.Context) ([]domain.Goal, error) { return []domain.Goal{}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"goals":[]}`, rec.Body.String())
}

func TestListGoals_500_StoreError(t *testing.T) {
	svc := &mockGoalServicer{
		list: func(_ context.Context) ([]domain.Goal, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load goals.", decodeMessage(t, rec))
}

// The root cause goes to the log, not to the client.
func TestListGoals_500_LogsCauseWithoutLeaking(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	svc := &mockGoalServicer{
		list: func(_ context.Context) ([]domain.Goal, error) {
			return nil, errors.New("auth failed for user admin")
		},
	}
	h := handler.NewRouter(handler.NewServer(svc, nil, zap.New(core)), handler.RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "admin")
	require.Equal(t, 1, logs.FilterMessage("failed to fetch goals").Len())
	entry := logs.FilterMessage("failed to fetch goals").All()[0]
	assert.Contains(t, entry.ContextMap()["error"], "auth failed for user admin")
	assert.NotEmpty(t, entry.ContextMap()["request_id"])
}

func TestListGoals_500_PanicKeepsEnvelope(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	svc := &mockGoalServicer{
		list: func(_ context.Context) ([]domain.Goal, error) { panic("nil map write") },
	}
	h := handler.NewRouter(handler.NewServer(svc, nil, zap.New(core)), handler.RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotContains(t, rec.Body.String(), "nil map write")
	assert.Equal(t, "Internal server error.", decodeMessage(t, rec))
	assert.Equal(t, 1, logs.FilterMessage("handler panic").Len())
}

// ---- POST /goals -----------------------------------------------------------

func TestCreateGoal_201(t *testing.T) {
	svc := &mockGoalServicer{
		create: func(_ context.Context, text string) (domain.Goal, error) {
			assert.Equal(t, "Learn testing", text)
			return domain.Goal{ID: "65f1a2b3c4d5e6f708192a3b", Text: text}, nil
		},
	}

	rec := postGoal(t, newHTTPHandler(svc), map[string]any{"text": "Learn testing"})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp gen.GoalSavedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Goal saved", resp.Message)
	assert.Equal(t, gen.Goal{Id: "65f1a2b3c4d5e6f708192a3b", Text: "Learn testing"}, resp.Goal)
}

func TestCreateGoal_201_TextNotTrimmed(t *testing.T) {
	svc := &mockGoalServicer{
		create: func(_ context.Context, text string) (domain.Goal, error) {
			return domain.Goal{ID: "x", Text: text}, nil
		},
	}

	rec := postGoal(t, newHTTPHandler(svc), map[string]any{"text": "  spaced out  "})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp gen.GoalSavedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "  spaced out  ", resp.Goal.Text)
}

func TestCreateGoal_422_MissingText(t *testing.T) {
	for name, body := range map[string]any{
		"no text field": map[string]any{},
		"null text":     map[string]any{"text": nil},
		"other field":   map[string]any{"title": "Learn Go"},
	} {
		t.Run(name, func(t *testing.T) {
			// No create func: the service must not be called.
			rec := postGoal(t, newHTTPHandler(&mockGoalServicer{}), body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "Invalid goal text.", decodeMessage(t, rec))
		})
	}
}

func TestCreateGoal_422_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/goals", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockGoalServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateGoal_422_ValidationError(t *testing.T) {
	svc := &mockGoalServicer{
		create: func(_ context.Context, _ string) (domain.Goal, error) {
			return domain.Goal{}, fmt.Errorf("%w: goal text is required", domain.ErrValidation)
		},
	}

	rec := postGoal(t, newHTTPHandler(svc), map[string]any{"text": "   "})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid goal text.", decodeMessage(t, rec))
}

func TestCreateGoal_500_StoreError(t *testing.T) {
	svc := &mockGoalServicer{
		create: func(_ context.Context, _ string) (domain.Goal, error) {
			return domain.Goal{}, errors.New("not primary")
		},
	}

	rec := postGoal(t, newHTTPHandler(svc), map[string]any{"text": "Learn Go"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to save goal.", decodeMessage(t, rec))
}

func TestCreateGoal_400_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(`{"text":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockGoalServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body.", decodeMessage(t, rec))
}

func TestCreateGoal_413_BodyTooLarge(t *testing.T) {
	h := handler.NewRouter(handler.NewServer(&mockGoalServicer{}, nil, nil), handler.RouterOptions{MaxBodyBytes: 16})

	body := `{"text":"` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Request body too large.", decodeMessage(t, rec))
}

// ---- DELETE /goals/{id} ----------------------------------------------------

func TestDeleteGoal_200(t *testing.T) {
	var captured string
	svc := &mockGoalServicer{
		delete: func(_ context.Context, id string) error {
			captured = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/goals/65f1a2b3c4d5e6f708192a3b", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted goal!", decodeMessage(t, rec))
	assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", captured)
}

func TestDeleteGoal_500_InvalidID(t *testing.T) {
	svc := &mockGoalServicer{
		delete: func(_ context.Context, _ string) error {
			return fmt.Errorf("repo.GoalRepo.DeleteByID: %w", domain.ErrInvalidID)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/goals/not-an-id", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete goal.", decodeMessage(t, rec))
}

// ---- CORS on every response ------------------------------------------------

func TestEveryResponse_HasCORSHeaders(t *testing.T) {
	failing := &mockGoalServicer{
		list:   func(_ context.Context) ([]domain.Goal, error) { return nil, errors.New("down") },
		create: func(_ context.Context, _ string) (domain.Goal, error) { return domain.Goal{}, errors.New("down") },
		delete: func(_ context.Context, _ string) error { return errors.New("down") },
	}
	h := newHTTPHandler(failing)

	cases := []struct {
		method, path, body string
		wantStatus         int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/goals", "", http.StatusInternalServerError},
		{http.MethodPost, "/goals", `{}`, http.StatusUnprocessableEntity},
		{http.MethodPost, "/goals", `{"text":"x"}`, http.StatusInternalServerError},
		{http.MethodPost, "/goals", `not json`, http.StatusBadRequest},
		{http.MethodDelete, "/goals/abc", "", http.StatusInternalServerError},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
		{http.MethodOptions, "/goals", "", http.StatusNoContent},
		{http.MethodOptions, "/goals/abc", "", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.method == http.MethodOptions {
				req.Header.Set("Origin", "http://localhost:3000")
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}
