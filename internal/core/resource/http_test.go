// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package resource_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/core/resource"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

type widgetServer struct {
	repository *memoryRepository
	service    *widgetService
	router     http.Handler
}

func newWidgetServer(searchable, allowHardDelete bool) *widgetServer {
	repository := newMemoryRepository()
	service := newWidgetService(repository, nil, allowHardDelete)
	return &widgetServer{
		repository: repository,
		service:    service,
		router:     resource.NewHandler(service, searchable).Routes(),
	}
}

func (server *widgetServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func decodeWidget(t *testing.T, raw json.RawMessage) widget {
	t.Helper()
	var record widget
	require.NoError(t, json.Unmarshal(raw, &record))
	return record
}

func decodeWidgets(t *testing.T, raw json.RawMessage) []widget {
	t.Helper()
	var records []widget
	require.NoError(t, json.Unmarshal(raw, &records))
	return records
}

/*
TestHandler_Create covers the create route.
*/
func TestHandler_Create(t *testing.T) {
	server := newWidgetServer(false, false)

	recorder, body := server.do(t, http.MethodPost, "/", `{"name":"Stoner","visible":true}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeWidget(t, body.Data)
	assert.Equal(t, "Stoner", created.Name)
	assert.True(t, created.Visible)

	recorder, body = server.do(t, http.MethodPost, "/", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	recorder, body = server.do(t, http.MethodPost, "/", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid JSON payload", body.Error)
}

/*
TestHandler_ListAndTrash covers the list route in both modes.
*/
func TestHandler_ListAndTrash(t *testing.T) {
	server := newWidgetServer(false, false)
	ctx := context.Background()

	kept, err := server.service.Create(ctx, widgetPayload{Name: "kept"})
	require.NoError(t, err)
	gone, err := server.service.Create(ctx, widgetPayload{Name: "gone"})
	require.NoError(t, err)

	recorder, _ := server.do(t, http.MethodDelete, "/"+gone.ID, "")
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder, body := server.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	active := decodeWidgets(t, body.Data)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	recorder, body = server.do(t, http.MethodGet, "/?deleted=true", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	trashed := decodeWidgets(t, body.Data)
	require.Len(t, trashed, 1)
	assert.Equal(t, gone.ID, trashed[0].ID)

	recorder, body = server.do(t, http.MethodPost, "/"+gone.ID+"/restore", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, decodeWidget(t, body.Data).DeletedAt)
}

/*
TestHandler_EmptyListIsArray renders an empty list as [] rather than null.
*/
func TestHandler_EmptyListIsArray(t *testing.T) {
	server := newWidgetServer(false, false)

	_, body := server.do(t, http.MethodGet, "/", "")
	assert.JSONEq(t, `[]`, string(body.Data))
}

/*
TestHandler_Search forwards q only for searchable resources.
*/
func TestHandler_Search(t *testing.T) {
	searchable := newWidgetServer(true, false)
	_, _ = searchable.do(t, http.MethodGet, "/?q=%20mann%20", "")
	assert.Equal(t, "mann", searchable.repository.lastQuery)

	plain := newWidgetServer(false, false)
	_, _ = plain.do(t, http.MethodGet, "/?q=mann", "")
	assert.Empty(t, plain.repository.lastQuery)
}

/*
TestHandler_Flag requires an explicit value.
*/
func TestHandler_Flag(t *testing.T) {
	server := newWidgetServer(false, false)
	record, err := server.service.Create(context.Background(), widgetPayload{Name: "flag"})
	require.NoError(t, err)

	recorder, body := server.do(t, http.MethodPatch, "/"+record.ID+"/flag", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	recorder, body = server.do(t, http.MethodPatch, "/"+record.ID+"/flag", `{"value":true}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, decodeWidget(t, body.Data).Visible)
}

/*
TestHandler_Reorder writes positions and answers 204.
*/
func TestHandler_Reorder(t *testing.T) {
	server := newWidgetServer(false, false)
	ctx := context.Background()
	first, err := server.service.Create(ctx, widgetPayload{Name: "b"})
	require.NoError(t, err)
	second, err := server.service.Create(ctx, widgetPayload{Name: "a"})
	require.NoError(t, err)

	recorder, _ := server.do(t, http.MethodPut, "/order", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = server.do(t, http.MethodPut, "/order", `{"ids":["`+first.ID+`","`+second.ID+`"]}`)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	active, err := server.service.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, ids(active))
}

/*
TestHandler_Duplicate answers 201 with the copy.
*/
func TestHandler_Duplicate(t *testing.T) {
	server := newWidgetServer(false, false)
	record, err := server.service.Create(context.Background(), widgetPayload{Name: "Original"})
	require.NoError(t, err)

	recorder, body := server.do(t, http.MethodPost, "/"+record.ID+"/copy", "")
	require.Equal(t, http.StatusCreated, recorder.Code)
	copied := decodeWidget(t, body.Data)
	assert.NotEqual(t, record.ID, copied.ID)
	assert.Equal(t, "Original (Kopie)", copied.Name)
}

/*
TestHandler_HardDelete honours ?hard=true only where enabled.
*/
func TestHandler_HardDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("ignored_when_disabled", func(t *testing.T) {
		server := newWidgetServer(false, false)
		record, err := server.service.Create(ctx, widgetPayload{Name: "soft"})
		require.NoError(t, err)

		recorder, _ := server.do(t, http.MethodDelete, "/"+record.ID+"?hard=true", "")
		require.Equal(t, http.StatusNoContent, recorder.Code)

		stored, err := server.service.Get(ctx, record.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.DeletedAt)
	})

	t.Run("removes_when_enabled", func(t *testing.T) {
		server := newWidgetServer(false, true)
		record, err := server.service.Create(ctx, widgetPayload{Name: "hard"})
		require.NoError(t, err)

		recorder, _ := server.do(t, http.MethodDelete, "/"+record.ID+"?hard=true", "")
		require.Equal(t, http.StatusNoContent, recorder.Code)

		recorder, body := server.do(t, http.MethodGet, "/"+record.ID, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "NOT_FOUND", body.Code)
	})
}

/*
TestHandler_NotFound maps unknown and malformed ids to 404.
*/
func TestHandler_NotFound(t *testing.T) {
	server := newWidgetServer(false, false)

	for _, target := range []string{"/0190f5c2-3b7e-7cc1-9a51-2f6d0c8a4b11", "/nope"} {
		recorder, body := server.do(t, http.MethodPut, target, `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code, target)
		assert.Equal(t, "Widget not found", body.Error)
	}
}
