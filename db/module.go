package db

import (
	"context"

	"go.uber.org/fx"

	"bookapi/config"
	"bookapi/config/logger"
)

// Module provides the book collection and, when Elasticsearch is
// configured, the search index mirroring it
var Module = fx.Module("db",
	fx.Provide(
		NewUUIDGenerator,
		newSearchIndex,
		newLibrary,
		newBookSearcher,
	),
	fx.Invoke(resetSearchIndex),
)

func newSearchIndex(cfg *config.Config) (*ElasticBookIndex, error) {
	if cfg.Elastic.URL == "" {
		return nil, nil
	}

	client, err := config.NewElasticClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewElasticBookIndex(cfg.Elastic.Index, client), nil
}

func newLibrary(ids IdGenerator, log logger.Logger, index *ElasticBookIndex) LibraryManager {
	log = log.WithComponent("LIBRARY")

	if index == nil {
		return NewMemoryLibraryManager(ids, log)
	}

	return NewMemoryLibraryManager(ids, log, WithIndexer(index))
}

func newBookSearcher(library LibraryManager, index *ElasticBookIndex) BookSearcher {
	if index == nil {
		return library
	}

	return index
}

func resetSearchIndex(lc fx.Lifecycle, library LibraryManager, index *ElasticBookIndex, log logger.Logger) {
	if index == nil {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			books := library.List(ctx)
			if err := index.Reset(ctx, books); err != nil {
				return err
			}

			log.Info().Str("index", index.IndexName).Int("books", len(books)).Msg("Search index rebuilt")

			return nil
		},
	})
}
