package db

import "bookapi/models"

// DefaultSeed is the collection every process starts with
var DefaultSeed = []models.BookFields{
	seedBook("The Great Gatsby", "F. Scott Fitzgerald"),
	seedBook("1984", "George Orwell"),
	seedBook("To Kill a Mockingbird", "Harper Lee"),
}

func seedBook(title, author string) models.BookFields {
	return models.BookFields{Title: &title, Author: &author}
}
