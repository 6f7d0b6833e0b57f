package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapi/cache"
	"bookapi/config/logger"
	"bookapi/db"
	"bookapi/models"
)

type Handler struct {
	Library  db.LibraryManager
	Searcher db.BookSearcher
	Cache    cache.RequestCacher
	log      logger.Logger
}

func NewHandler(library db.LibraryManager, searcher db.BookSearcher, cacher cache.RequestCacher, log logger.Logger) *Handler {
	return &Handler{
		Library:  library,
		Searcher: searcher,
		Cache:    cacher,
		log:      log.WithComponent("HTTP"),
	}
}

func (h *Handler) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Message: msgListed, Data: h.Library.List(c)})
}

func (h *Handler) GetBookById(c *gin.Context) {
	id := models.Id(c.Param("id"))

	book, err := h.Library.GetById(c, id)
	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, Response{Message: msgNotFound(id)})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Message: msgRetrieved(id), Data: book})
}

func (h *Handler) CreateBook(c *gin.Context) {
	request, err := bindBookRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	book, err := h.Library.Create(c, request.CreateFields())
	if errors.Is(err, models.ErrInvalidBookInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: msgMissingFields})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, Response{Message: msgCreated, Data: book})
}

func (h *Handler) UpdateBookById(c *gin.Context) {
	id := models.Id(c.Param("id"))

	request, err := bindBookRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	book, err := h.Library.Update(c, id, request.UpdateFields())
	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, Response{Message: msgNotFound(id)})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Message: msgUpdated(id), Data: book})
}

func (h *Handler) DeleteBookById(c *gin.Context) {
	id := models.Id(c.Param("id"))

	err := h.Library.Delete(c, id)
	if errors.Is(err, models.ErrBookNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, Response{Message: msgNotDeleted(id)})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Message: msgDeleted(id)})
}

func (h *Handler) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")

	if title == "" && author == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: models.ErrEmptySearch.Error()})
		return
	}

	books, err := h.Searcher.Search(c, title, author)
	if err != nil {
		h.log.Error().Err(err).Msg("Search failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Message: msgSearched, Data: books})
}

func (h *Handler) Store(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Message: msgStoreRetrieved, Data: h.Library.Stats(c)})
}

func (h *Handler) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := h.Cache.Read(username)
	if err != nil {
		h.log.Error().Err(err).Str("username", username).Msg("Failed to read activity")
		c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: fmt.Sprintf(msgActivityFailed, username)})
		return
	}

	activity := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			h.log.Warn().Err(err).Str("username", username).Msg("Skipping unreadable activity entry")
			continue
		}
		activity = append(activity, userRequest)
	}

	c.JSON(http.StatusOK, Response{Message: msgActivity(username), Data: activity})
}

// CacheUserRequest records successful calls in the activity of the user
// named by the username query parameter
func (h *Handler) CacheUserRequest(c *gin.Context) {
	c.Next()

	username, ok := c.GetQuery("username")
	if !ok || username == "" || c.Writer.Status() >= http.StatusBadRequest {
		return
	}

	userRequest := models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		err = h.Cache.Write(username, request)
	}

	// Not failing a request if there's a problem caching it
	if err != nil {
		h.log.Warn().Err(err).Str("username", username).Msg("Failed to cache user request")
	}
}

// bindBookRequest treats an empty body as an empty object
func bindBookRequest(c *gin.Context) (models.BookRequest, error) {
	var request models.BookRequest

	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		return models.BookRequest{}, err
	}

	return request, nil
}
