// Copyright (c) 2026 Moim. All rights reserved.

/*
Package account provides the HTTP delivery layer for member registration
and the account directory.

Registration accepts a form-encoded body; directory reads return JSON.
Passwords never appear in any response shape.
*/
package account

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/respond"
)

// Handler implements the HTTP layer for member accounts.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/new", handler.register)
	router.Get("/", handler.listAccounts)
	router.Get("/{id}", handler.getAccount)

	return router
}

// # Account Endpoints

/*
POST /accounts/new.

Description: Registers a new member. Accepts a form-encoded body with
'username', 'password', 'nickname', 'name', 'mobileNumber', and 'email'
fields. Uniqueness violations surface one field error per constraint.

Response:
  - 201: Envelope(Account): The stored account, password omitted
  - 400: C-400: Invalid fields or taken username/email
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		respond.Error(writer, request, apperr.InvalidInput())
		return
	}

	input := RegisterInput{
		Username:     request.PostFormValue("username"),
		Password:     request.PostFormValue("password"),
		Nickname:     request.PostFormValue("nickname"),
		Name:         request.PostFormValue("name"),
		MobileNumber: request.PostFormValue("mobileNumber"),
		Email:        request.PostFormValue("email"),
	}

	created, err := handler.accountService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "S-1", fmt.Sprintf("Welcome, %s", created.Nickname), created)
}

/*
GET /accounts.

Description: Retrieves the member directory in ascending ID order.

Response:
  - 200: Envelope([]Account): All live accounts, passwords omitted
*/
func (handler *Handler) listAccounts(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.accountService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", "Account list", accounts)
}

/*
GET /accounts/{id}.

Description: Retrieves a single member account.

Response:
  - 200: Envelope(Account): The requested account, password omitted
  - 400: C-400: Non-numeric id
  - 404: U-404: No such account
*/
func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.InvalidType("id", raw, "a numeric account id"))
		return
	}

	account, err := handler.accountService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "S-1", fmt.Sprintf("Account %d", id), account)
}
