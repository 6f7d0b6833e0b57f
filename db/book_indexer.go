//go:generate mockgen -source=book_indexer.go -destination=book_indexer_mock.go -package=db
package db

import (
	"context"

	"bookapi/models"
)

// BookIndexer mirrors collection changes into a secondary index
type BookIndexer interface {
	Index(ctx context.Context, book models.Book) error
	Remove(ctx context.Context, id models.Id) error
}
