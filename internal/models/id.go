package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh 24-character hex identifier
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether value is a 24-character hex identifier
func IsValidID(value string) bool {
	return primitive.IsValidObjectID(value)
}

// NormalizeID lowercases and trims an identifier
func NormalizeID(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
