package utils

import "github.com/google/uuid"

// UUIDGenerator yields time-ordered unique identifiers for ciphertext
// records. Version 7 keeps the ciphertext list sorted by creation when ids
// are compared lexicographically.
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
