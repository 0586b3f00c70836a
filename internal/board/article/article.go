// Copyright (c) 2026 Moim. All rights reserved.

/*
Package article implements the community board: listing, reading, writing,
editing, and deleting posts.

Every mutation is attributed to the authenticated account that performed it,
and edits and deletions are restricted to the account that wrote the post.

# Architecture

  - Entities: Article.
  - Repository: Repository contract with PostgreSQL and in-memory backends.
  - Service: Business rules (timestamping, ownership, creation verification).
  - HTTP: Form-encoded write endpoints and JSON read endpoints.
*/
package article

import (
	"context"
	"time"
)

// # Domain Entities

// Article represents a single post on the community board.
type Article struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AccountID  int64     `json:"accountId"`  // Owning account; set once at creation
	RegDate    time.Time `json:"regDate"`    // Server-assigned creation instant
	UpdateDate time.Time `json:"updateDate"` // Strictly advances on every edit
}

// EditableBy reports whether the account may modify or delete this article.
// Only the original author qualifies.
func (article *Article) EditableBy(accountID int64) bool {
	return article.AccountID == accountID
}

// # Repository Contract

// Repository defines the persistence contract for board articles.
type Repository interface {
	/*
		List retrieves every article ordered by ascending ID.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Article: All stored articles; empty slice when the board is empty
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Article, error)

	/*
		FindByID retrieves a single article by its numeric ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Article: Loaded article entity
		  - error: apperr.ArticleNotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*Article, error)

	/*
		Create persists a new article and assigns its generated ID.

		Parameters:
		  - context: context.Context
		  - article: *Article (ID populated on success)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, article *Article) error

	/*
		Update rewrites the mutable fields of an existing article.

		Parameters:
		  - context: context.Context
		  - article: *Article (Hydrated entity with changes)

		Returns:
		  - error: apperr.ArticleNotFound or storage failures
	*/
	Update(context context.Context, article *Article) error

	/*
		Delete removes an article permanently.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.ArticleNotFound or storage failures
	*/
	Delete(context context.Context, id int64) error
}
