package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/handler/auth"
	service "github.com/bulatminnakhmetov/tsunagu-backend/internal/service/completion"
)

// MockCompletionService is a mock implementation of CompletionService
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) GetCompletion(ctx context.Context, userID int, cohort string) (*service.Completion, error) {
	args := m.Called(ctx, userID, cohort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Completion), args.Error(1)
}

func (m *MockCompletionService) PreviewCompletion(ctx context.Context, userID int, edits service.EditBuffer, cohort string) (*service.Completion, error) {
	args := m.Called(ctx, userID, edits, cohort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Completion), args.Error(1)
}

func (m *MockCompletionService) Checklist(cohort string) ([]scoring.Item, error) {
	args := m.Called(cohort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scoring.Item), args.Error(1)
}

func sampleCompletion() *service.Completion {
	return &service.Completion{
		TraceID: "trace-1",
		Result: scoring.Result{
			Cohort:         scoring.CohortA,
			CompletedCount: 8,
			TotalCount:     14,
			Percentage:     57,
			HasImage:       true,
			Items: []scoring.ItemVerdict{
				{Item: scoring.ItemNickname, Present: true},
				{Item: scoring.ItemHeight, Present: false},
			},
			Missing: []scoring.Item{scoring.ItemHeight},
		},
	}
}

// newRouter wires the handler the way main does, with the user already
// authenticated when userID > 0
func newRouter(h *CompletionHandler, userID int) http.Handler {
	r := chi.NewRouter()
	h.PublicRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if userID > 0 {
					req = req.WithContext(auth.WithUserID(req.Context(), userID))
				}
				next.ServeHTTP(w, req)
			})
		})
		h.Routes(r)
	})
	return r
}

func TestCompletionHandler_GetCompletion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("GetCompletion", mock.Anything, 123, "").Return(sampleCompletion(), nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profiles/me/completion", nil)
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var resp CompletionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "trace-1", resp.TraceID)
		assert.Equal(t, "cohort-A", resp.Cohort)
		assert.Equal(t, 8, resp.CompletedCount)
		assert.Equal(t, 14, resp.TotalCount)
		assert.Equal(t, 57, resp.Percentage)
		assert.True(t, resp.HasImage)
		assert.Equal(t, []ItemResponse{{Item: "nickname", Present: true}, {Item: "height", Present: false}}, resp.Items)
		assert.Equal(t, []string{"height"}, resp.Missing)
		mockService.AssertExpectations(t)
	})

	t.Run("Forced cohort", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("GetCompletion", mock.Anything, 123, "cohort-B").Return(sampleCompletion(), nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profiles/me/completion?cohort=cohort-B", nil)
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		mockService := new(MockCompletionService)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/profiles/me/completion", nil)
		newRouter(NewCompletionHandler(mockService), 0).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Unauthorized")
		mockService.AssertNotCalled(t, "GetCompletion")
	})

	t.Run("Service errors", func(t *testing.T) {
		tests := []struct {
			name         string
			serviceErr   error
			expectedCode int
		}{
			{"Invalid cohort", fmt.Errorf("%w: cohort-C", service.ErrInvalidCohort), http.StatusBadRequest},
			{"Generic error", errors.New("db is down"), http.StatusInternalServerError},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				mockService := new(MockCompletionService)
				mockService.On("GetCompletion", mock.Anything, 123, "").Return(nil, tc.serviceErr)

				rr := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/api/profiles/me/completion", nil)
				newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

				assert.Equal(t, tc.expectedCode, rr.Code)
				assert.NotContains(t, rr.Body.String(), "db is down")
				mockService.AssertExpectations(t)
			})
		}
	})
}

func TestCompletionHandler_PreviewCompletion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("PreviewCompletion", mock.Anything, 123, mock.MatchedBy(func(e service.EditBuffer) bool {
			return e.Nickname != nil && *e.Nickname == "Yuki" &&
				e.Hobbies != nil && len(*e.Hobbies) == 0 &&
				e.Gender == nil && e.Images == nil
		}), "cohort-A").Return(sampleCompletion(), nil)

		body := []byte(`{"nickname":"Yuki","hobbies":[],"cohort":"cohort-A"}`)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/me/completion/preview", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp CompletionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 57, resp.Percentage)
		mockService.AssertExpectations(t)
	})

	t.Run("Null clears saved values", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("PreviewCompletion", mock.Anything, 123, mock.MatchedBy(func(e service.EditBuffer) bool {
			return e.Hobbies != nil && len(*e.Hobbies) == 0 &&
				e.Occupation != nil && *e.Occupation == "" &&
				e.Nickname == nil
		}), "cohort-B").Return(sampleCompletion(), nil)

		body := []byte(`{"hobbies":null,"occupation":null,"cohort":"cohort-B"}`)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/me/completion/preview", bytes.NewReader(body))
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid body", func(t *testing.T) {
		mockService := new(MockCompletionService)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/me/completion/preview", bytes.NewReader([]byte("{")))
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "PreviewCompletion")
	})

	t.Run("Unauthorized", func(t *testing.T) {
		mockService := new(MockCompletionService)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/me/completion/preview", bytes.NewReader([]byte("{}")))
		newRouter(NewCompletionHandler(mockService), 0).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "PreviewCompletion")
	})

	t.Run("Invalid cohort", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("PreviewCompletion", mock.Anything, 123, mock.Anything, "x").
			Return(nil, fmt.Errorf("%w: x", service.ErrInvalidCohort))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/profiles/me/completion/preview", bytes.NewReader([]byte(`{"cohort":"x"}`)))
		newRouter(NewCompletionHandler(mockService), 123).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCompletionHandler_GetChecklist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("Checklist", "cohort-A").Return(scoring.Checklist(scoring.CohortA), nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completion/checklists/cohort-A", nil)
		newRouter(NewCompletionHandler(mockService), 0).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ChecklistResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "cohort-A", resp.Cohort)
		assert.Equal(t, scoring.CohortATotal, resp.Total)
		assert.Len(t, resp.Items, scoring.CohortATotal)
		assert.Equal(t, "nickname", resp.Items[0])
		mockService.AssertExpectations(t)
	})

	t.Run("Unknown cohort", func(t *testing.T) {
		mockService := new(MockCompletionService)
		mockService.On("Checklist", "cohort-Z").Return(nil, fmt.Errorf("%w: cohort-Z", service.ErrInvalidCohort))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completion/checklists/cohort-Z", nil)
		newRouter(NewCompletionHandler(mockService), 0).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}
