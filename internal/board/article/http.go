// Copyright (c) 2026 Moim. All rights reserved.

/*
Package article provides the HTTP delivery layer for the community board.

Reads are public. Writes require an authenticated session, and edits and
deletions additionally require that the caller owns the targeted post.

# Security

The ownership gate runs as route middleware ahead of the edit and delete
handlers, so an attacker probing another account's post is rejected before
any handler logic executes.
*/
package article

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/ctxutil"
	"github.com/seonokim/moim/internal/platform/middleware"
	"github.com/seonokim/moim/internal/platform/respond"
)

// Handler implements the HTTP layer for the community board.
type Handler struct {
	articleService *Service
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{articleService: service}
}

// Routes returns a [chi.Router] configured with the board's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.listArticles)

	// Authoring
	router.Group(func(authenticated chi.Router) {
		authenticated.Use(middleware.RequireLogin)
		authenticated.Post("/new", handler.createArticle)
	})

	router.Route("/{id}", func(single chi.Router) {
		single.Get("/", handler.getArticle)

		// Owner-only mutations
		single.Group(func(owned chi.Router) {
			owned.Use(middleware.RequireLogin, handler.requireOwner)
			owned.Post("/edit", handler.updateArticle)
			owned.Get("/delete", handler.deleteArticle)
		})
	})

	return router
}

// articleID parses the {id} route parameter as an int64.
func articleID(request *http.Request) (int64, error) {
	raw := chi.URLParam(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.InvalidType("id", raw, "a numeric article id")
	}
	return id, nil
}

// requireOwner rejects mutations on posts the caller does not own.
//
// Runs after RequireLogin, so the current account is always present here.
// A missing article surfaces as 404 before ownership is ever evaluated.
func (handler *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id, err := articleID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		article, err := handler.articleService.Get(request.Context(), id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		current := ctxutil.GetCurrentAccount(request.Context())
		if !article.EditableBy(current.AccountID) {
			respond.Error(writer, request, apperr.Forbidden())
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// # Board Endpoints

/*
GET /articles.

Description: Retrieves the whole board in ascending ID order.

Response:
  - 200: Envelope([]Article): Full article list; empty board yields an empty list
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.articleService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", "Article list", articles)
}

/*
GET /articles/{id}.

Description: Retrieves a single article.

Response:
  - 200: Envelope(Article): The requested article
  - 400: C-400: Non-numeric id
  - 404: A-001: No such article
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := articleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.articleService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", fmt.Sprintf("Article %d", id), article)
}

/*
POST /articles/new.

Description: Creates a new article owned by the authenticated account.
Accepts a form-encoded body with 'title' and 'content' fields.

Response:
  - 201: Envelope(Article): The stored article as read back from storage
  - 400: C-400: Missing or oversized fields
  - 401: U-401: No active session
  - 404: A-002: The stored article could not be verified
*/
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, apperr.InvalidInput())
		return
	}

	input := SaveInput{
		Title:   request.PostFormValue("title"),
		Content: request.PostFormValue("content"),
	}

	current := ctxutil.GetCurrentAccount(request.Context())
	article, err := handler.articleService.Create(request.Context(), current.AccountID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "S-1", "Article has been created", article)
}

/*
POST /articles/{id}/edit.

Description: Replaces the title and content of an owned article. The
update timestamp always advances, even on immediate successive edits.

Response:
  - 200: Envelope(Article): The post-edit article state
  - 400: C-400: Missing or oversized fields, or non-numeric id
  - 401: U-401: No active session
  - 403: U-403: Caller does not own the article
  - 404: A-001: No such article
*/
func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := articleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, apperr.InvalidInput())
		return
	}

	input := SaveInput{
		Title:   request.PostFormValue("title"),
		Content: request.PostFormValue("content"),
	}

	article, err := handler.articleService.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", fmt.Sprintf("Article %d has been updated", id), article)
}

/*
GET /articles/{id}/delete.

Description: Permanently removes an owned article.

Response:
  - 200: Envelope(null): Confirmation of removal
  - 400: C-400: Non-numeric id
  - 401: U-401: No active session
  - 403: U-403: Caller does not own the article
  - 404: A-001: No such article
*/
func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := articleID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.articleService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", fmt.Sprintf("Article %d has been deleted", id), nil)
}
