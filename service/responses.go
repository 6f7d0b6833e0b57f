package service

import (
	"fmt"

	"bookapi/models"
)

// Response is the envelope of every API reply
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	msgListed         = "Successfully retrieved all books"
	msgCreated        = "Book added successfully"
	msgMissingFields  = `Bad Request: Both "title" and "author" are required to add a new book.`
	msgSearched       = "Successfully searched books"
	msgStoreRetrieved = "Successfully retrieved library statistics"
	msgActivityFailed = "Failed to read activity for user '%s'"
)

func msgRetrieved(id models.Id) string {
	return fmt.Sprintf("Successfully retrieved book with ID '%s'", id)
}

func msgUpdated(id models.Id) string {
	return fmt.Sprintf("Book with ID '%s' updated successfully", id)
}

func msgDeleted(id models.Id) string {
	return fmt.Sprintf("Book with ID '%s' deleted successfully.", id)
}

func msgNotFound(id models.Id) string {
	return fmt.Sprintf("Book with ID '%s' not found.", id)
}

func msgNotDeleted(id models.Id) string {
	return fmt.Sprintf("Book with ID '%s' not found. No book was deleted.", id)
}

func msgActivity(username string) string {
	return fmt.Sprintf("Successfully retrieved activity for user '%s'", username)
}
