// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/backlist/internal/core/resource"
	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
)

// defaultTimeout bounds a single admin API call.
const defaultTimeout = 15 * time.Second

// tokenMargin renews a session token this long before it expires.
const tokenMargin = time.Minute

// Login exchanges the shared admin password for a session token once and
// hands that token to every remote of a console.
type Login struct {
	client   *http.Client
	endpoint string
	password string
	now      func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewLogin creates a login against adminURL (".../api/admin").
func NewLogin(adminURL, password string, client *http.Client) *Login {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Login{
		client:   client,
		endpoint: strings.TrimRight(adminURL, "/") + "/login",
		password: password,
		now:      time.Now,
	}
}

// Token returns the current session token. It logs in when there is none
// or the current one is about to expire.
func (login *Login) Token(context context.Context) (string, error) {
	login.mu.Lock()
	defer login.mu.Unlock()

	if login.token != "" && login.now().Add(tokenMargin).Before(login.expiresAt) {
		return login.token, nil
	}

	var session struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	body := map[string]string{"password": login.password}
	if err := send(context, login.client, http.MethodPost, login.endpoint, "", body, &session); err != nil {
		return "", err
	}

	login.token, login.expiresAt = session.Token, session.ExpiresAt
	return login.token, nil
}

// Forget drops token so that the next call logs in again.
func (login *Login) Forget(token string) {
	login.mu.Lock()
	defer login.mu.Unlock()

	if login.token == token {
		login.token = ""
	}
}

// HTTPRemote implements [Remote] against the admin API of one resource.
type HTTPRemote[T resource.Entity] struct {
	client   *http.Client
	endpoint string
	login    *Login
}

// NewHTTPRemote creates a remote for endpoint (".../api/admin/books")
// sending the session token of login.
func NewHTTPRemote[T resource.Entity](endpoint string, login *Login, client *http.Client) *HTTPRemote[T] {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPRemote[T]{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		login:    login,
	}
}

// List implements [Remote].
func (remote *HTTPRemote[T]) List(context context.Context, query string) ([]T, error) {
	target := remote.endpoint
	if query != "" {
		target += "?q=" + url.QueryEscape(query)
	}

	var records []T
	err := remote.do(context, http.MethodGet, target, nil, &records)
	return records, err
}

// ListTrashed implements [Remote].
func (remote *HTTPRemote[T]) ListTrashed(context context.Context) ([]T, error) {
	var records []T
	err := remote.do(context, http.MethodGet, remote.endpoint+"?deleted=true", nil, &records)
	return records, err
}

// Create implements [Remote].
func (remote *HTTPRemote[T]) Create(context context.Context, payload map[string]any) (T, error) {
	var record T
	err := remote.do(context, http.MethodPost, remote.endpoint, payload, &record)
	return record, err
}

// Update implements [Remote].
func (remote *HTTPRemote[T]) Update(context context.Context, id string, payload map[string]any) (T, error) {
	var record T
	err := remote.do(context, http.MethodPut, remote.record(id), payload, &record)
	return record, err
}

// Duplicate implements [Remote].
func (remote *HTTPRemote[T]) Duplicate(context context.Context, id string) (T, error) {
	var record T
	err := remote.do(context, http.MethodPost, remote.record(id)+"/copy", nil, &record)
	return record, err
}

// Reorder implements [Remote].
func (remote *HTTPRemote[T]) Reorder(context context.Context, ids []string) error {
	return remote.do(context, http.MethodPut, remote.endpoint+"/order", map[string]any{"ids": ids}, nil)
}

// Restore implements [Remote].
func (remote *HTTPRemote[T]) Restore(context context.Context, id string) (T, error) {
	var record T
	err := remote.do(context, http.MethodPost, remote.record(id)+"/restore", nil, &record)
	return record, err
}

// SetFlag implements [Remote].
func (remote *HTTPRemote[T]) SetFlag(context context.Context, id string, value bool) (T, error) {
	var record T
	err := remote.do(context, http.MethodPatch, remote.record(id)+"/flag", map[string]any{"value": value}, &record)
	return record, err
}

// SoftDelete implements [Remote].
func (remote *HTTPRemote[T]) SoftDelete(context context.Context, id string) error {
	return remote.do(context, http.MethodDelete, remote.record(id), nil, nil)
}

func (remote *HTTPRemote[T]) record(id string) string {
	return remote.endpoint + "/" + url.PathEscape(id)
}

// do sends one authenticated request. A rejected token is renewed once.
func (remote *HTTPRemote[T]) do(context context.Context, method, target string, body, result any) error {
	token, err := remote.login.Token(context)
	if err != nil {
		return err
	}

	err = send(context, remote.client, method, target, token, body, result)
	if !apperr.HasCode(err, apperr.CodeUnauthorized) {
		return err
	}

	remote.login.Forget(token)
	if token, err = remote.login.Token(context); err != nil {
		return err
	}
	return send(context, remote.client, method, target, token, body, result)
}

// send issues one request and decodes the data envelope into result.
// Error envelopes are returned as [*apperr.AppError].
func send(context context.Context, client *http.Client, method, target, token string, body, result any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("console: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(context, method, target, reader)
	if err != nil {
		return fmt.Errorf("console: build request: %w", err)
	}
	if token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.Do(request)
	if err != nil {
		return apperr.StoreUnavailable(fmt.Errorf("console: %s %s: %w", method, target, err))
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeError(response)
	}
	if result == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("console: decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("console: decode data: %w", err)
	}
	return nil
}

func decodeError(response *http.Response) error {
	appError := &apperr.AppError{}
	if err := json.NewDecoder(response.Body).Decode(appError); err != nil || appError.Code == "" {
		appError = &apperr.AppError{
			Code:    apperr.CodeInternal,
			Message: http.StatusText(response.StatusCode),
		}
	}
	appError.HTTPStatus = response.StatusCode
	return appError
}
