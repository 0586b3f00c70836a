// Copyright (c) 2026 Moim. All rights reserved.

/*
Package article (Postgres) implements the storage layer for board posts.

# Schema Table Mapping
  - board.article: Post content, ownership, and timestamps.
*/
package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/database/schema"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for board posts.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List retrieves every row from board.article in ascending ID order.

Parameters:
  - context: context.Context

Returns:
  - []*Article: All stored articles; empty slice when none exist
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC`,
		schema.BoardArticle.ID, schema.BoardArticle.Title, schema.BoardArticle.Content,
		schema.BoardArticle.AccountID, schema.BoardArticle.RegDate, schema.BoardArticle.UpdateDate,
		schema.BoardArticle.Table,
		schema.BoardArticle.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_article_repo_list_failed: %w", err)
	}
	defer rows.Close()

	articles := []*Article{}
	for rows.Next() {
		article := &Article{}
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.AccountID,
			&article.RegDate,
			&article.UpdateDate,
		); err != nil {
			return nil, fmt.Errorf("postgres_article_repo_scan_failed: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

/*
FindByID retrieves a single row from board.article.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Article: Hydrated article entity
  - error: apperr.ArticleNotFound or database execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.BoardArticle.ID, schema.BoardArticle.Title, schema.BoardArticle.Content,
		schema.BoardArticle.AccountID, schema.BoardArticle.RegDate, schema.BoardArticle.UpdateDate,
		schema.BoardArticle.Table,
		schema.BoardArticle.ID,
	)

	article := &Article{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.AccountID,
		&article.RegDate,
		&article.UpdateDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ArticleNotFound()
		}
		return nil, fmt.Errorf("postgres_article_repo_find_by_id_failed: %w", err)
	}

	return article, nil
}

/*
Create inserts a new row into board.article and backfills the generated ID.

Parameters:
  - context: context.Context
  - article: *Article

Returns:
  - error: Insert or constraint failures
*/
func (repository *PostgresRepository) Create(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`,
		schema.BoardArticle.Table,
		schema.BoardArticle.Title, schema.BoardArticle.Content, schema.BoardArticle.AccountID,
		schema.BoardArticle.RegDate, schema.BoardArticle.UpdateDate,
		schema.BoardArticle.ID,
	)

	err := repository.pool.QueryRow(context, query,
		article.Title,
		article.Content,
		article.AccountID,
		article.RegDate,
		article.UpdateDate,
	).Scan(&article.ID)

	// If the insert fails, return an error
	if err != nil {
		return fmt.Errorf("postgres_article_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update rewrites the title, content, and update timestamp of an article.

Parameters:
  - context: context.Context
  - article: *Article

Returns:
  - error: apperr.ArticleNotFound when no row matches, or update failures
*/
func (repository *PostgresRepository) Update(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1`,
		schema.BoardArticle.Table,
		schema.BoardArticle.Title, schema.BoardArticle.Content, schema.BoardArticle.UpdateDate,
		schema.BoardArticle.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		article.ID,
		article.Title,
		article.Content,
		article.UpdateDate,
	)

	if err != nil {
		return fmt.Errorf("postgres_article_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ArticleNotFound()
	}

	return nil
}

/*
Delete removes an article row permanently.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.ArticleNotFound when no row matches, or execution failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BoardArticle.Table, schema.BoardArticle.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_article_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ArticleNotFound()
	}

	return nil
}
