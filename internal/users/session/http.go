// Copyright (c) 2026 Moim. All rights reserved.

/*
Package session provides the HTTP delivery layer for login and logout.

Both endpoints always answer 200 with a result envelope when the request
itself is processable; authentication outcomes (including failures) live
in the envelope's result code, not in the HTTP status.
*/
package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/constants"
	"github.com/seonokim/moim/internal/platform/ctxutil"
	"github.com/seonokim/moim/internal/platform/respond"
	"github.com/seonokim/moim/internal/platform/validate"
)

// Handler implements the HTTP layer for login state.
type Handler struct {
	sessionService *Service
}

// NewHandler constructs a new session [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{sessionService: service}
}

// RegisterRoutes attaches the login endpoints to a root-level router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
}

// # Session Endpoints

/*
POST /login.

Description: Authenticates a form-encoded 'username'/'password' pair.
On success a fresh session cookie is issued. Credential failures are
soft outcomes (F-1, F-2) inside a 200 envelope; an active session is
turned away with F-3 and left untouched.

Response:
  - 200: Envelope(null): Result code S-1, F-1, F-2, or F-3
  - 400: C-400: Missing form fields
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, apperr.InvalidInput())
		return
	}

	username := request.PostFormValue("username")
	password := request.PostFormValue("password")

	v := &validate.Validator{}
	v.Required("username", username)
	v.Required("password", password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	current := ctxutil.GetCurrentAccount(request.Context())
	outcome, sessionID, err := handler.sessionService.Login(request.Context(), current, username, password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if sessionID != "" {
		http.SetCookie(writer, sessionCookie(sessionID, int(constants.SessionTTL.Seconds())))
	}

	respond.OK(writer, outcome.ResultCode, outcome.Message, nil)
}

/*
POST /logout.

Description: Destroys the caller's session record and clears the cookie.
Logging out while anonymous is a successful no-op (S-1).

Response:
  - 200: Envelope(null): Result code S-2, or S-1 when no session existed
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	current := ctxutil.GetCurrentAccount(request.Context())
	sessionID := ctxutil.GetSessionID(request.Context())

	outcome, err := handler.sessionService.Logout(request.Context(), current, sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if current != nil {
		// Expire the cookie client-side as well.
		http.SetCookie(writer, sessionCookie("", -1))
	}

	respond.OK(writer, outcome.ResultCode, outcome.Message, nil)
}

// sessionCookie builds the session cookie with the fixed security
// attributes: HttpOnly keeps scripts away from the ID, SameSite=Lax
// blocks cross-site POSTs from riding the session.
func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
