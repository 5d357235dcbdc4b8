package topic

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/topic/dto"
	"helpdesk/internal/application/topic/usecases"
	"helpdesk/internal/shared/errors"
)

type mockListActiveTopicsExecutor struct {
	ExecuteFunc func(ctx context.Context) (*usecases.ListActiveTopicsResult, error)
}

func (m *mockListActiveTopicsExecutor) Execute(ctx context.Context) (*usecases.ListActiveTopicsResult, error) {
	return m.ExecuteFunc(ctx)
}

type mockCreateTopicExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTopicCommand) (*dto.TopicDTO, error)
}

func (m *mockCreateTopicExecutor) Execute(ctx context.Context, cmd usecases.CreateTopicCommand) (*dto.TopicDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateTopicExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateTopicCommand) (*dto.TopicDTO, error)
}

func (m *mockUpdateTopicExecutor) Execute(ctx context.Context, cmd usecases.UpdateTopicCommand) (*dto.TopicDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteTopicExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteTopicCommand) error
}

func (m *mockDeleteTopicExecutor) Execute(ctx context.Context, cmd usecases.DeleteTopicCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type handlerMocks struct {
	list   *mockListActiveTopicsExecutor
	create *mockCreateTopicExecutor
	update *mockUpdateTopicExecutor
	delete *mockDeleteTopicExecutor
}

func setupTopicRouter() (*gin.Engine, *handlerMocks) {
	gin.SetMode(gin.TestMode)

	mocks := &handlerMocks{
		list:   &mockListActiveTopicsExecutor{},
		create: &mockCreateTopicExecutor{},
		update: &mockUpdateTopicExecutor{},
		delete: &mockDeleteTopicExecutor{},
	}
	handler := NewTopicHandler(mocks.list, mocks.create, mocks.update, mocks.delete)

	router := gin.New()
	router.GET("/topics", handler.ListTopics)
	router.POST("/topics", handler.CreateTopic)
	router.PATCH("/topics/:id", handler.UpdateTopic)
	router.DELETE("/topics/:id", handler.DeleteTopic)
	return router, mocks
}

func TestTopicHandler_ListTopics(t *testing.T) {
	router, mocks := setupTopicRouter()
	mocks.list.ExecuteFunc = func(ctx context.Context) (*usecases.ListActiveTopicsResult, error) {
		return &usecases.ListActiveTopicsResult{
			Topics: []*dto.TopicDTO{{ID: 1, Name: "Billing", Active: true}},
			Total:  1,
		}, nil
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/topics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Billing")
}

func TestTopicHandler_CreateTopic(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		router, mocks := setupTopicRouter()
		var gotCmd usecases.CreateTopicCommand
		mocks.create.ExecuteFunc = func(ctx context.Context, cmd usecases.CreateTopicCommand) (*dto.TopicDTO, error) {
			gotCmd = cmd
			return &dto.TopicDTO{ID: 1, Name: cmd.Name, Active: true}, nil
		}

		body, _ := json.Marshal(map[string]string{"name": "Billing"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/topics", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Billing", gotCmd.Name)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		router, _ := setupTopicRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/topics", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name surfaces as 409", func(t *testing.T) {
		router, mocks := setupTopicRouter()
		mocks.create.ExecuteFunc = func(ctx context.Context, cmd usecases.CreateTopicCommand) (*dto.TopicDTO, error) {
			return nil, errors.NewConflictError("a topic with this name already exists")
		}

		body, _ := json.Marshal(map[string]string{"name": "Billing"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/topics", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTopicHandler_UpdateTopic(t *testing.T) {
	t.Run("rename and deactivate", func(t *testing.T) {
		router, mocks := setupTopicRouter()
		var gotCmd usecases.UpdateTopicCommand
		mocks.update.ExecuteFunc = func(ctx context.Context, cmd usecases.UpdateTopicCommand) (*dto.TopicDTO, error) {
			gotCmd = cmd
			return &dto.TopicDTO{ID: cmd.TopicID, Name: "Payments", Active: false}, nil
		}

		body, _ := json.Marshal(map[string]interface{}{"name": "Payments", "active": false})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/topics/1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(1), gotCmd.TopicID)
		require.NotNil(t, gotCmd.Name)
		assert.Equal(t, "Payments", *gotCmd.Name)
		require.NotNil(t, gotCmd.Active)
		assert.False(t, *gotCmd.Active)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router, _ := setupTopicRouter()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/topics/abc", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTopicHandler_DeleteTopic(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		router, mocks := setupTopicRouter()
		mocks.delete.ExecuteFunc = func(ctx context.Context, cmd usecases.DeleteTopicCommand) error {
			assert.Equal(t, uint(1), cmd.TopicID)
			return nil
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/topics/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing topic surfaces as 404", func(t *testing.T) {
		router, mocks := setupTopicRouter()
		mocks.delete.ExecuteFunc = func(ctx context.Context, cmd usecases.DeleteTopicCommand) error {
			return errors.NewNotFoundError("topic not found")
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/topics/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
