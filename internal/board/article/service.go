// Copyright (c) 2026 Moim. All rights reserved.

package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/validate"
)

// Content limits enforced at the service boundary.
const (
	MaxTitleLength   = 200
	MaxContentLength = 50000
)

// # Service Layer

// Service orchestrates business logic for board posts.
//
// It owns every timestamp decision: clients never supply creation or
// update instants, and an edit always advances UpdateDate even when the
// wall clock has not moved since the previous write.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// SaveInput carries the client-writable fields of an article.
type SaveInput struct {
	Title   string
	Content string
}

// validate checks the write payload against content rules.
func (input SaveInput) validate() error {
	v := &validate.Validator{}
	v.Required("title", input.Title).MaxLen("title", input.Title, MaxTitleLength)
	v.Required("content", input.Content).MaxLen("content", input.Content, MaxContentLength)
	return v.Err()
}

// # Read Operations

/*
List retrieves the full board in ascending ID order.

Parameters:
  - context: context.Context

Returns:
  - []*Article: All articles; an empty board yields an empty slice, never nil
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]*Article, error) {
	articles, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("article_service_list_failed: %w", err)
	}
	if articles == nil {
		articles = []*Article{}
	}
	return articles, nil
}

/*
Get retrieves a single article by ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Article: The hydrated article
  - error: apperr.ArticleNotFound or storage failures
*/
func (service *Service) Get(context context.Context, id int64) (*Article, error) {
	article, err := service.repository.FindByID(context, id)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("article_service_get_failed: %w", err)
	}
	return article, nil
}

// # Write Operations

/*
Create validates and persists a new article for the given account.

Description: Both timestamps are assigned server-side from a single clock
reading, so RegDate equals UpdateDate on a fresh article. After the insert
the row is read back; if it cannot be loaded the creation is reported as
failed rather than returning unverified state.

Parameters:
  - context: context.Context
  - accountID: int64 (The authenticated author)
  - input: SaveInput

Returns:
  - *Article: The stored article as read back from the repository
  - error: Validation, apperr.ArticleNotCreated, or storage failures
*/
func (service *Service) Create(context context.Context, accountID int64, input SaveInput) (*Article, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	article := &Article{
		Title:      input.Title,
		Content:    input.Content,
		AccountID:  accountID,
		RegDate:    now,
		UpdateDate: now,
	}

	if err := service.repository.Create(context, article); err != nil {
		return nil, fmt.Errorf("article_service_create_failed: %w", err)
	}

	// Verify the write by reading the row back
	created, err := service.repository.FindByID(context, article.ID)
	if err != nil {
		service.logger.Error("article_create_verification_failed",
			slog.Int64("article_id", article.ID),
			slog.String("error", err.Error()))
		return nil, apperr.ArticleNotCreated()
	}

	service.logger.Info("article_created",
		slog.Int64("article_id", created.ID),
		slog.Int64("account_id", accountID))

	return created, nil
}

/*
Update validates and applies an edit to an existing article.

Description: UpdateDate must grow strictly, so when the clock reading does
not exceed the stored UpdateDate the new value is bumped one microsecond
past it. RegDate and AccountID are never touched by an edit.

Parameters:
  - context: context.Context
  - id: int64
  - input: SaveInput

Returns:
  - *Article: The article with its post-edit state
  - error: Validation, apperr.ArticleNotFound, or storage failures
*/
func (service *Service) Update(context context.Context, id int64, input SaveInput) (*Article, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	article, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Content = input.Content
	article.UpdateDate = nextUpdateInstant(article.UpdateDate)

	if err := service.repository.Update(context, article); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("article_service_update_failed: %w", err)
	}

	service.logger.Info("article_updated", slog.Int64("article_id", id))

	return article, nil
}

/*
Delete removes an article permanently.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.ArticleNotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repository.Delete(context, id); err != nil {
		if apperr.IsAppError(err) {
			return err
		}
		return fmt.Errorf("article_service_delete_failed: %w", err)
	}

	service.logger.Info("article_deleted", slog.Int64("article_id", id))

	return nil
}

// nextUpdateInstant returns the current instant, bumped one microsecond
// past the previous update when the clock has not advanced beyond it.
func nextUpdateInstant(previous time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(previous) {
		return previous.Add(time.Microsecond)
	}
	return now
}
