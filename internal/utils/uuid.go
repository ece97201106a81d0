package utils

import "github.com/google/uuid"

// NewUUID returns a time-ordered v7 UUID. If the v7 generator fails it falls
// back to a random v4 UUID.
func NewUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return NewUUID().String()
}
