package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
	"github.com/dfields/schedtrack/internal/testutil"
)

func newTestServer(t *testing.T) (http.Handler, repository.ProjectStore) {
	t.Helper()
	store := repository.NewSQLiteProjectStore(testutil.NewTestDB(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(NewProjectHandler(store), logger).Handler(), store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateAndGet(t *testing.T) {
	h, _ := newTestServer(t)

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	rec := doJSON(t, h, http.MethodPost, "/api/projects", p)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/projects/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Valve Replacement", got.ProjectName)
}

func TestHandler_List(t *testing.T) {
	h, store := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty store lists as an empty array, not null")

	require.NoError(t, store.Create(context.Background(), testutil.NewTestRecord("PM100", "One")))

	rec = doJSON(t, h, http.MethodGet, "/api/projects", nil)
	var list []*domain.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_GetNotFound(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/projects/12345", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BadID(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/projects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateRequiresID(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/projects", &domain.Project{ProjectName: "No ID"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateBumpsVersion(t *testing.T) {
	h, _ := newTestServer(t)

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/api/projects", p).Code)

	changed := p.Clone()
	changed.City = "Fresno"
	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/projects/%d", p.ID), changed)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "Fresno", got.City)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/projects/%d/changes", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var changes []repository.ChangeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changes))
	require.Len(t, changes, 1)
	assert.Equal(t, "city", changes[0].FieldName)
	assert.Equal(t, "", changes[0].OldValue)
	assert.Equal(t, "Fresno", changes[0].NewValue)
}

func TestHandler_UpdateNotFound(t *testing.T) {
	h, _ := newTestServer(t)
	p := testutil.NewTestRecord("PM100", "Ghost")
	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/projects/%d", p.ID), p)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteRemovesRecordAndHistory(t *testing.T) {
	h, _ := newTestServer(t)

	p := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.Equal(t, http.StatusCreated, doJSON(t, h, http.MethodPost, "/api/projects", p).Code)

	rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/projects/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/projects/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/projects/%d/changes", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "changes of a deleted record 404")
}

func TestHandler_Health(t *testing.T) {
	h, _ := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
