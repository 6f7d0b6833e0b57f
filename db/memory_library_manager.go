package db

import (
	"context"
	"strings"
	"sync"

	"bookapi/config/logger"
	"bookapi/models"
)

// MemoryLibraryManager keeps the collection in process memory. Every
// operation runs under a single lock so it appears atomic to its caller.
// Writes are additionally serialized through writeMu, which stays held while
// the change is mirrored, so the indexer sees changes in collection order.
type MemoryLibraryManager struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	books   []models.Book
	ids     IdGenerator
	indexer BookIndexer
	seed    []models.BookFields
	log     logger.Logger
}

type Option func(*MemoryLibraryManager)

// WithSeed replaces the books the collection starts with
func WithSeed(seed []models.BookFields) Option {
	return func(library *MemoryLibraryManager) {
		library.seed = seed
	}
}

// WithIndexer mirrors every successful write into indexer
func WithIndexer(indexer BookIndexer) Option {
	return func(library *MemoryLibraryManager) {
		library.indexer = indexer
	}
}

func NewMemoryLibraryManager(ids IdGenerator, log logger.Logger, opts ...Option) *MemoryLibraryManager {
	library := &MemoryLibraryManager{
		ids:  ids,
		seed: DefaultSeed,
		log:  log,
	}

	for _, opt := range opts {
		opt(library)
	}

	library.books = make([]models.Book, 0, len(library.seed))
	for _, fields := range library.seed {
		library.books = append(library.books, library.newBook(fields))
	}

	return library
}

func (library *MemoryLibraryManager) List(_ context.Context) []models.Book {
	library.mu.RLock()
	defer library.mu.RUnlock()

	books := make([]models.Book, len(library.books))
	copy(books, library.books)

	return books
}

func (library *MemoryLibraryManager) GetById(_ context.Context, id models.Id) (*models.Book, error) {
	library.mu.RLock()
	defer library.mu.RUnlock()

	i := library.indexOf(id)
	if i < 0 {
		return nil, models.ErrBookNotFound
	}

	book := library.books[i]
	return &book, nil
}

// Create checks presence before trimming, so a whitespace-only title or
// author is accepted and stored as an empty string.
func (library *MemoryLibraryManager) Create(ctx context.Context, fields models.BookFields) (*models.Book, error) {
	if isMissing(fields.Title) || isMissing(fields.Author) {
		return nil, models.ErrInvalidBookInput
	}

	library.writeMu.Lock()
	defer library.writeMu.Unlock()

	library.mu.Lock()
	book := library.newBook(fields)
	library.books = append(library.books, book)
	library.mu.Unlock()

	library.log.Debug().Str("id", string(book.Id)).Msg("Book added")
	library.mirror(ctx, book)

	return &book, nil
}

// Update overwrites each supplied field, empty values included.
func (library *MemoryLibraryManager) Update(ctx context.Context, id models.Id, fields models.BookFields) (*models.Book, error) {
	library.writeMu.Lock()
	defer library.writeMu.Unlock()

	library.mu.Lock()

	i := library.indexOf(id)
	if i < 0 {
		library.mu.Unlock()
		return nil, models.ErrBookNotFound
	}

	if fields.Title != nil {
		library.books[i].Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Author != nil {
		library.books[i].Author = strings.TrimSpace(*fields.Author)
	}

	book := library.books[i]
	library.mu.Unlock()

	library.log.Debug().Str("id", string(id)).Msg("Book updated")
	library.mirror(ctx, book)

	return &book, nil
}

func (library *MemoryLibraryManager) Delete(ctx context.Context, id models.Id) error {
	library.writeMu.Lock()
	defer library.writeMu.Unlock()

	library.mu.Lock()

	i := library.indexOf(id)
	if i < 0 {
		library.mu.Unlock()
		return models.ErrBookNotFound
	}

	library.books = append(library.books[:i], library.books[i+1:]...)
	library.mu.Unlock()

	library.log.Debug().Str("id", string(id)).Msg("Book deleted")

	if library.indexer != nil {
		if err := library.indexer.Remove(ctx, id); err != nil {
			library.log.Warn().Err(err).Str("id", string(id)).Msg("Failed to remove book from search index")
		}
	}

	return nil
}

// Search matches each non-empty criterion as a case-insensitive substring
func (library *MemoryLibraryManager) Search(_ context.Context, title, author string) ([]models.Book, error) {
	if title == "" && author == "" {
		return nil, models.ErrEmptySearch
	}

	title = strings.ToLower(title)
	author = strings.ToLower(author)

	library.mu.RLock()
	defer library.mu.RUnlock()

	books := make([]models.Book, 0)
	for _, book := range library.books {
		if title != "" && !strings.Contains(strings.ToLower(book.Title), title) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), author) {
			continue
		}
		books = append(books, book)
	}

	return books, nil
}

func (library *MemoryLibraryManager) Stats(_ context.Context) models.LibraryStats {
	library.mu.RLock()
	defer library.mu.RUnlock()

	authors := make(map[string]struct{}, len(library.books))
	for _, book := range library.books {
		authors[book.Author] = struct{}{}
	}

	return models.LibraryStats{
		NumberOfBooks:   len(library.books),
		NumberOfAuthors: len(authors),
	}
}

func (library *MemoryLibraryManager) newBook(fields models.BookFields) models.Book {
	return models.Book{
		Id:     library.ids.NewId(),
		Title:  strings.TrimSpace(*fields.Title),
		Author: strings.TrimSpace(*fields.Author),
	}
}

// indexOf must be called with the lock held
func (library *MemoryLibraryManager) indexOf(id models.Id) int {
	for i, book := range library.books {
		if book.Id == id {
			return i
		}
	}
	return -1
}

func (library *MemoryLibraryManager) mirror(ctx context.Context, book models.Book) {
	if library.indexer == nil {
		return
	}

	if err := library.indexer.Index(ctx, book); err != nil {
		library.log.Warn().Err(err).Str("id", string(book.Id)).Msg("Failed to index book")
	}
}

func isMissing(value *string) bool {
	return value == nil || *value == ""
}
