// Copyright (c) 2026 Moim. All rights reserved.

package article_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonokim/moim/internal/board/article"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/constants"
	"github.com/seonokim/moim/internal/platform/middleware"
	"github.com/seonokim/moim/internal/platform/respond"
	"github.com/seonokim/moim/internal/platform/sec"
	"github.com/seonokim/moim/internal/users/session"
)

// boardFixture is a routed board with direct access to its session store
// so tests can mint authenticated cookies for arbitrary accounts.
type boardFixture struct {
	router   chi.Router
	sessions *session.MemoryStore
}

// newBoardFixture mounts the article routes behind the real
// authentication middleware, the way the API server does.
func newBoardFixture() *boardFixture {
	service := article.NewService(article.NewMemoryRepository(), slog.New(slog.DiscardHandler))
	handler := article.NewHandler(service)

	sessions := session.NewMemoryStore()

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(session.NewService(nil, sessions, slog.New(slog.DiscardHandler))))
	router.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.MethodNotAllowed())
	})
	router.Mount("/articles", handler.Routes())

	return &boardFixture{router: router, sessions: sessions}
}

// loginAs stores a session for the account and returns its cookie.
func (fixture *boardFixture) loginAs(t *testing.T, accountID int64) *http.Cookie {
	t.Helper()

	sessionID := sec.NewSessionID()
	err := fixture.sessions.Set(context.Background(), sessionID, &sec.CurrentAccount{
		AccountID: accountID,
		Username:  "작성자",
		Nickname:  "작성자",
	}, constants.SessionTTL)
	require.NoError(t, err)

	return &http.Cookie{Name: constants.SessionCookieName, Value: sessionID}
}

// do performs a request against the fixture's router.
func (fixture *boardFixture) do(method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var request *http.Request
	if form != nil {
		request = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		request = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)
	return recorder
}

// postForm builds the standard article write payload.
func postForm(title, content string) url.Values {
	return url.Values{"title": {title}, "content": {content}}
}

/*
TestHTTP_CreateAndRead tests the write-then-read round trip, the envelope
shape, and the JSON field names of the article payload.
*/
func TestHTTP_CreateAndRead(t *testing.T) {
	fixture := newBoardFixture()
	cookie := fixture.loginAs(t, 7)

	created := fixture.do(http.MethodPost, "/articles/new", postForm("첫 글", "내용입니다"), cookie)
	require.Equal(t, http.StatusCreated, created.Code)

	var envelope struct {
		ResultCode string `json:"resultCode"`
		Message    string `json:"message"`
		Body       struct {
			ID         int64  `json:"id"`
			Title      string `json:"title"`
			Content    string `json:"content"`
			AccountID  int64  `json:"accountId"`
			RegDate    string `json:"regDate"`
			UpdateDate string `json:"updateDate"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))

	assert.True(t, strings.HasPrefix(envelope.ResultCode, respond.SuccessPrefix))
	assert.Equal(t, int64(1), envelope.Body.ID)
	assert.Equal(t, int64(7), envelope.Body.AccountID)
	assert.Equal(t, "첫 글", envelope.Body.Title)
	assert.NotEmpty(t, envelope.Body.RegDate)
	assert.Equal(t, envelope.Body.RegDate, envelope.Body.UpdateDate)

	// Reads are public: no cookie needed.
	read := fixture.do(http.MethodGet, "/articles/1", nil, nil)
	assert.Equal(t, http.StatusOK, read.Code)

	list := fixture.do(http.MethodGet, "/articles", nil, nil)
	assert.Equal(t, http.StatusOK, list.Code)
}

/*
TestHTTP_ErrorContract tests the status code and error payload shape for
each failure class, including the never-null errors list.
*/
func TestHTTP_ErrorContract(t *testing.T) {
	fixture := newBoardFixture()
	owner := fixture.loginAs(t, 1)
	intruder := fixture.loginAs(t, 2)

	seeded := fixture.do(http.MethodPost, "/articles/new", postForm("제목", "내용"), owner)
	require.Equal(t, http.StatusCreated, seeded.Code)

	tests := []struct {
		name       string
		method     string
		target     string
		form       url.Values
		cookie     *http.Cookie
		wantStatus int
		wantCode   string
	}{
		{"missing_article", http.MethodGet, "/articles/999", nil, nil, http.StatusNotFound, apperr.CodeArticleNotFound},
		{"type_mismatch_id", http.MethodGet, "/articles/abc", nil, nil, http.StatusBadRequest, apperr.CodeInvalidInput},
		{"anonymous_create", http.MethodPost, "/articles/new", postForm("t", "c"), nil, http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"anonymous_edit", http.MethodPost, "/articles/1/edit", postForm("t", "c"), nil, http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"foreign_edit", http.MethodPost, "/articles/1/edit", postForm("t", "c"), intruder, http.StatusForbidden, apperr.CodeForbidden},
		{"foreign_delete", http.MethodGet, "/articles/1/delete", nil, intruder, http.StatusForbidden, apperr.CodeForbidden},
		{"edit_missing_article", http.MethodPost, "/articles/999/edit", postForm("t", "c"), owner, http.StatusNotFound, apperr.CodeArticleNotFound},
		{"invalid_payload", http.MethodPost, "/articles/new", postForm("", ""), owner, http.StatusBadRequest, apperr.CodeInvalidInput},
		{"wrong_method", http.MethodDelete, "/articles/1", nil, owner, http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := fixture.do(tt.method, tt.target, tt.form, tt.cookie)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var payload struct {
				Message string `json:"message"`
				Code    string `json:"code"`
				Status  int    `json:"status"`
				Errors  []struct {
					Field  string `json:"field"`
					Value  string `json:"value"`
					Reason string `json:"reason"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

			assert.Equal(t, tt.wantCode, payload.Code)
			assert.Equal(t, tt.wantStatus, payload.Status)
			assert.NotEmpty(t, payload.Message)

			// The errors list is always present, never null.
			assert.Contains(t, recorder.Body.String(), `"errors":[`)
		})
	}
}

/*
TestHTTP_OwnerLifecycle tests that the owner can edit and delete, and
that deletion leaves the article unreachable.
*/
func TestHTTP_OwnerLifecycle(t *testing.T) {
	fixture := newBoardFixture()
	owner := fixture.loginAs(t, 1)

	created := fixture.do(http.MethodPost, "/articles/new", postForm("원래 제목", "원래 내용"), owner)
	require.Equal(t, http.StatusCreated, created.Code)

	edited := fixture.do(http.MethodPost, "/articles/1/edit", postForm("바뀐 제목", "바뀐 내용"), owner)
	require.Equal(t, http.StatusOK, edited.Code)
	assert.Contains(t, edited.Body.String(), "바뀐 제목")

	deleted := fixture.do(http.MethodGet, "/articles/1/delete", nil, owner)
	require.Equal(t, http.StatusOK, deleted.Code)

	gone := fixture.do(http.MethodGet, "/articles/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
