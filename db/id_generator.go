package db

import (
	"github.com/google/uuid"

	"bookapi/models"
)

// IdGenerator hands out book ids that are unique for the life of the process
type IdGenerator interface {
	NewId() models.Id
}

type UUIDGenerator struct{}

func NewUUIDGenerator() IdGenerator {
	return UUIDGenerator{}
}

// NewId returns a random RFC 4122 version 4 UUID
func (UUIDGenerator) NewId() models.Id {
	return models.Id(uuid.NewString())
}
