// Copyright (c) 2026 Moim. All rights reserved.

package article

import (
	"context"
	"sync"

	"github.com/seonokim/moim/internal/platform/apperr"
)

// # In-Memory Repository

// MemoryRepository implements [Repository] with process-local state.
//
// Each instance owns its own storage, so independent instances never
// observe each other's writes. Intended for tests and local development.
type MemoryRepository struct {
	mutex    sync.RWMutex
	articles []*Article
	nextID   int64
}

// NewMemoryRepository creates an empty in-memory article store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// List returns all stored articles in insertion order.
func (repository *MemoryRepository) List(_ context.Context) ([]*Article, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	articles := make([]*Article, 0, len(repository.articles))
	for _, stored := range repository.articles {
		articles = append(articles, cloneArticle(stored))
	}
	return articles, nil
}

// FindByID returns the article with the given ID, or apperr.ArticleNotFound.
func (repository *MemoryRepository) FindByID(_ context.Context, id int64) (*Article, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	for _, stored := range repository.articles {
		if stored.ID == id {
			return cloneArticle(stored), nil
		}
	}
	return nil, apperr.ArticleNotFound()
}

// Create stores a new article and assigns the next sequential ID.
func (repository *MemoryRepository) Create(_ context.Context, article *Article) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	article.ID = repository.nextID
	repository.nextID++
	repository.articles = append(repository.articles, cloneArticle(article))
	return nil
}

// Update replaces the stored state of an existing article.
func (repository *MemoryRepository) Update(_ context.Context, article *Article) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	for index, stored := range repository.articles {
		if stored.ID == article.ID {
			repository.articles[index] = cloneArticle(article)
			return nil
		}
	}
	return apperr.ArticleNotFound()
}

// Delete removes an article from the store.
func (repository *MemoryRepository) Delete(_ context.Context, id int64) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	for index, stored := range repository.articles {
		if stored.ID == id {
			repository.articles = append(repository.articles[:index], repository.articles[index+1:]...)
			return nil
		}
	}
	return apperr.ArticleNotFound()
}

// cloneArticle copies an entity so callers cannot mutate stored state.
func cloneArticle(article *Article) *Article {
	clone := *article
	return &clone
}
