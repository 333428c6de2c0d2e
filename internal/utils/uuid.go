package utils

import "github.com/google/uuid"

// UUIDGenerator produces record names for locally created records. UUIDv7 is
// preferred for its time-ordered prefix; on the rare generation failure it
// falls back to a random v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
