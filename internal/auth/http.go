// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/taibuivan/backlist/internal/platform/constants"
	requestutil "github.com/taibuivan/backlist/internal/platform/request"
	"github.com/taibuivan/backlist/internal/platform/respond"
	"github.com/taibuivan/backlist/internal/platform/validate"
)

// Handler implements the admin login and logout endpoints.
type Handler struct {
	service      *Service
	secureCookie bool
}

// NewHandler constructs a [Handler]. secureCookie sets the Secure attribute (production).
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{service: service, secureCookie: secureCookie}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

/*
Login authenticates the operator and establishes a session.

POST /api/admin/login

Request:
  - Body: {"password": string}

Response:
  - 200: {"token", "expires_at"} plus the session cookie
  - 400: VALIDATION_ERROR (password missing)
  - 401: UNAUTHORIZED (wrong password)
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, handler.cookie(session.Token, int(constants.SessionTTL/time.Second)))
	respond.OK(writer, loginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

/*
Logout terminates the current session.

POST /api/admin/logout

Response:
  - 204: cookie cleared
  - 503: STORE_UNAVAILABLE (revocation could not be stored)
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if err := handler.service.Logout(request.Context(), cookie.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	http.SetCookie(writer, handler.cookie("", -1))
	respond.NoContent(writer)
}

func (handler *Handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   maxAge,
		Secure:   handler.secureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
