package utils

import "github.com/google/uuid"

// UUIDGenerator produces globally unique string tokens.
// It prefers time-ordered UUIDv7 and falls back to a random UUIDv4.
type UUIDGenerator struct {
}

// NewUUIDGenerator constructs a [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new unique token.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
