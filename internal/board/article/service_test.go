// Copyright (c) 2026 Moim. All rights reserved.

package article_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonokim/moim/internal/board/article"
	"github.com/seonokim/moim/internal/platform/apperr"
)

// newService builds a service over a fresh in-memory store.
func newService() (*article.Service, *article.MemoryRepository) {
	repository := article.NewMemoryRepository()
	service := article.NewService(repository, slog.New(slog.DiscardHandler))
	return service, repository
}

/*
TestService_Create tests article creation, server-side timestamping,
and the read-back verification of the stored row.
*/
func TestService_Create(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, 7, article.SaveInput{
		Title:   "첫 번째 글",
		Content: "게시판에 올리는 첫 글입니다.",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), created.AccountID)
	assert.Equal(t, "첫 번째 글", created.Title)

	// A fresh article carries identical creation and update instants.
	assert.True(t, created.UpdateDate.Equal(created.RegDate))

	// The returned state is what a subsequent read observes.
	loaded, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, loaded.Title)
	assert.True(t, loaded.RegDate.Equal(created.RegDate))
}

/*
TestService_Create_Validation tests rejection of incomplete write payloads.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   article.SaveInput
		field   string
	}{
		{"missing_title", article.SaveInput{Content: "body"}, "title"},
		{"missing_content", article.SaveInput{Title: "head"}, "content"},
		{"blank_title", article.SaveInput{Title: "   ", Content: "body"}, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService()

			_, err := service.Create(context.Background(), 1, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeInvalidInput, ae.Code)
			require.NotEmpty(t, ae.Errors)
			assert.Equal(t, tt.field, ae.Errors[0].Field)
		})
	}
}

// failingReadRepository wraps a repository and fails every read so the
// post-insert verification path can be exercised.
type failingReadRepository struct {
	*article.MemoryRepository
}

func (repository *failingReadRepository) FindByID(context.Context, int64) (*article.Article, error) {
	return nil, errors.New("connection reset")
}

/*
TestService_Create_NotVerified tests that an unverifiable insert is
reported as a creation failure rather than returning unconfirmed state.
*/
func TestService_Create_NotVerified(t *testing.T) {
	repository := &failingReadRepository{article.NewMemoryRepository()}
	service := article.NewService(repository, slog.New(slog.DiscardHandler))

	_, err := service.Create(context.Background(), 1, article.SaveInput{
		Title:   "head",
		Content: "body",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeArticleNotCreated, ae.Code)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_Update tests edit semantics: content replacement, the
strictly-advancing update timestamp, and preservation of creation data.
*/
func TestService_Update(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, 3, article.SaveInput{Title: "old", Content: "old body"})
	require.NoError(t, err)

	first, err := service.Update(ctx, created.ID, article.SaveInput{Title: "new", Content: "new body"})
	require.NoError(t, err)

	assert.Equal(t, "new", first.Title)
	assert.Equal(t, "new body", first.Content)
	assert.True(t, first.RegDate.Equal(created.RegDate))
	assert.Equal(t, created.AccountID, first.AccountID)
	assert.True(t, first.UpdateDate.After(created.UpdateDate))

	// A second immediate edit must still advance the update instant.
	second, err := service.Update(ctx, created.ID, article.SaveInput{Title: "newer", Content: "newer body"})
	require.NoError(t, err)
	assert.True(t, second.UpdateDate.After(first.UpdateDate))
}

/*
TestService_Update_NotFound tests editing a nonexistent article.
*/
func TestService_Update_NotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.Update(context.Background(), 42, article.SaveInput{Title: "t", Content: "c"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeArticleNotFound, ae.Code)
}

/*
TestService_Delete tests removal and subsequent absence of the article.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, article.SaveInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeArticleNotFound, apperr.As(err).Code)

	// Deleting again reports absence, not success.
	err = service.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeArticleNotFound, apperr.As(err).Code)
}

/*
TestService_List tests ordering and the empty-board contract.
*/
func TestService_List(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	// An empty board yields an empty list, never nil.
	articles, err := service.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, articles)
	assert.Empty(t, articles)

	for _, title := range []string{"one", "two", "three"} {
		_, err := service.Create(ctx, 1, article.SaveInput{Title: title, Content: "body"})
		require.NoError(t, err)
	}

	articles, err = service.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "one", articles[0].Title)
	assert.Equal(t, "three", articles[2].Title)
	assert.Less(t, articles[0].ID, articles[1].ID)
}

/*
TestMemoryRepository_Isolation tests that independent store instances
never observe each other's writes.
*/
func TestMemoryRepository_Isolation(t *testing.T) {
	ctx := context.Background()
	first := article.NewMemoryRepository()
	second := article.NewMemoryRepository()

	require.NoError(t, first.Create(ctx, &article.Article{Title: "only in first", Content: "c"}))

	articles, err := second.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
