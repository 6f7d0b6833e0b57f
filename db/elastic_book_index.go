package db

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"

	"bookapi/models"
)

const maxSearchResults = 10000

// ElasticBookIndex mirrors the collection into an Elasticsearch index used
// for full-text search. The in-memory collection stays authoritative.
type ElasticBookIndex struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func NewElasticBookIndex(indexName string, client *elastic.Client) *ElasticBookIndex {
	return &ElasticBookIndex{indexName, client}
}

// Reset drops whatever a previous process left behind and indexes books
func (index *ElasticBookIndex) Reset(ctx context.Context, books []models.Book) error {
	exists, err := index.ElasticClient.IndexExists(index.IndexName).Do(ctx)
	if err != nil {
		return err
	}

	if exists {
		if _, err := index.ElasticClient.DeleteIndex(index.IndexName).Do(ctx); err != nil {
			return err
		}
	}

	if _, err := index.ElasticClient.CreateIndex(index.IndexName).Do(ctx); err != nil {
		return err
	}

	if len(books) == 0 {
		return nil
	}

	bulk := index.ElasticClient.Bulk().Index(index.IndexName).Refresh("true")
	for _, book := range books {
		bulk.Add(elastic.NewBulkIndexRequest().Id(string(book.Id)).Doc(book))
	}

	_, err = bulk.Do(ctx)
	return err
}

func (index *ElasticBookIndex) Index(ctx context.Context, book models.Book) error {
	_, err := index.ElasticClient.
		Index().
		Index(index.IndexName).
		Id(string(book.Id)).
		BodyJson(book).
		Refresh("true").
		Do(ctx)

	return err
}

func (index *ElasticBookIndex) Remove(ctx context.Context, id models.Id) error {
	_, err := index.ElasticClient.
		Delete().
		Index(index.IndexName).
		Id(string(id)).
		Refresh("true").
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil
	}

	return err
}

func (index *ElasticBookIndex) Search(ctx context.Context, title, author string) ([]models.Book, error) {
	if title == "" && author == "" {
		return nil, models.ErrEmptySearch
	}

	boolQuery := elastic.NewBoolQuery()
	if title != "" {
		boolQuery.Must(elastic.NewMatchQuery("title", title))
	}
	if author != "" {
		boolQuery.Must(elastic.NewMatchQuery("author", author))
	}

	result, err := index.ElasticClient.Search().
		Index(index.IndexName).
		Pretty(false).
		Size(maxSearchResults).
		Query(boolQuery).
		Do(ctx)

	if err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var book models.Book
		if err := json.Unmarshal(hit.Source, &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}
