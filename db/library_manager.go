package db

import (
	"context"

	"bookapi/models"
)

// LibraryManager owns the book collection
type LibraryManager interface {
	List(ctx context.Context) []models.Book
	GetById(ctx context.Context, id models.Id) (*models.Book, error)
	Create(ctx context.Context, fields models.BookFields) (*models.Book, error)
	Update(ctx context.Context, id models.Id, fields models.BookFields) (*models.Book, error)
	Delete(ctx context.Context, id models.Id) error
	Stats(ctx context.Context) models.LibraryStats
	BookSearcher
}

// BookSearcher finds books by title and author
type BookSearcher interface {
	Search(ctx context.Context, title, author string) ([]models.Book, error)
}
