package db

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapi/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type fakeElastic struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(r *http.Request) (int, string)
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{r.Method, r.URL.Path, string(body)})
	f.mu.Unlock()

	status, response := f.respond(r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func newTestElasticIndex(t *testing.T, respond func(r *http.Request) (int, string)) (*ElasticBookIndex, *fakeElastic) {
	fake := &fakeElastic{respond: respond}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := elastic.NewClient(
		elastic.SetURL(server.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	require.NoError(t, err)

	return NewElasticBookIndex("books", client), fake
}

func Test_ElasticBookIndex_Index(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		return http.StatusCreated, `{"_index":"books","_id":"book-1","_version":1,"result":"created"}`
	})

	err := index.Index(context.Background(), models.Book{Id: "book-1", Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, http.MethodPut, fake.requests[0].Method)
	assert.Equal(t, "/books/_doc/book-1", fake.requests[0].Path)
	assert.JSONEq(t, `{"id":"book-1","title":"Dune","author":"Frank Herbert"}`, fake.requests[0].Body)
}

func Test_ElasticBookIndex_Remove(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{"_index":"books","_id":"book-1","_version":2,"result":"deleted"}`
	})

	require.NoError(t, index.Remove(context.Background(), "book-1"))

	require.Len(t, fake.requests, 1)
	assert.Equal(t, http.MethodDelete, fake.requests[0].Method)
	assert.Equal(t, "/books/_doc/book-1", fake.requests[0].Path)
}

func Test_ElasticBookIndex_Remove_NotFound(t *testing.T) {
	index, _ := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		return http.StatusNotFound, `{"_index":"books","_id":"book-1","result":"not_found"}`
	})

	assert.NoError(t, index.Remove(context.Background(), "book-1"))
}

func Test_ElasticBookIndex_Search(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{
			"took": 1,
			"timed_out": false,
			"hits": {
				"total": {"value": 1, "relation": "eq"},
				"hits": [
					{"_index": "books", "_id": "book-2", "_source": {"id": "book-2", "title": "1984", "author": "George Orwell"}}
				]
			}
		}`
	})

	books, err := index.Search(context.Background(), "1984", "orwell")
	require.NoError(t, err)

	assert.Equal(t, []models.Book{{Id: "book-2", Title: "1984", Author: "George Orwell"}}, books)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, "/books/_search", fake.requests[0].Path)
	assert.Contains(t, fake.requests[0].Body, `"title"`)
	assert.Contains(t, fake.requests[0].Body, `"author"`)
}

func Test_ElasticBookIndex_Search_Empty(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{}`
	})

	_, err := index.Search(context.Background(), "", "")
	assert.ErrorIs(t, err, models.ErrEmptySearch)
	assert.Empty(t, fake.requests)
}

func Test_ElasticBookIndex_Reset(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		switch {
		case r.Method == http.MethodHead:
			return http.StatusOK, ``
		case r.Method == http.MethodDelete:
			return http.StatusOK, `{"acknowledged":true}`
		case r.Method == http.MethodPut:
			return http.StatusOK, `{"acknowledged":true,"shards_acknowledged":true,"index":"books"}`
		default:
			return http.StatusOK, `{"took":3,"errors":false,"items":[]}`
		}
	})

	books := []models.Book{
		{Id: "book-1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{Id: "book-2", Title: "1984", Author: "George Orwell"},
	}
	require.NoError(t, index.Reset(context.Background(), books))

	require.Len(t, fake.requests, 4)
	assert.Equal(t, http.MethodHead, fake.requests[0].Method)
	assert.Equal(t, http.MethodDelete, fake.requests[1].Method)
	assert.Equal(t, http.MethodPut, fake.requests[2].Method)
	assert.Equal(t, "/books", fake.requests[2].Path)
	assert.Equal(t, "/books/_bulk", fake.requests[3].Path)
	assert.Contains(t, fake.requests[3].Body, "George Orwell")
}

func Test_ElasticBookIndex_Reset_NoExistingIndex(t *testing.T) {
	index, fake := newTestElasticIndex(t, func(r *http.Request) (int, string) {
		if r.Method == http.MethodHead {
			return http.StatusNotFound, ``
		}
		return http.StatusOK, `{"acknowledged":true,"shards_acknowledged":true,"index":"books"}`
	})

	require.NoError(t, index.Reset(context.Background(), nil))

	require.Len(t, fake.requests, 2)
	assert.Equal(t, http.MethodHead, fake.requests[0].Method)
	assert.Equal(t, http.MethodPut, fake.requests[1].Method)
}
