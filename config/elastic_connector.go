package config

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

// NewElasticClient creates a client for the configured Elasticsearch node
func NewElasticClient(cfg *Config) (*elastic.Client, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(cfg.Elastic.URL),
		elastic.SetSniff(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrElasticUnavailable, err)
	}

	return client, nil
}
