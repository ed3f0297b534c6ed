package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a stored result set
type ID string

// NewID creates a time-ordered identifier (UUID v7, falling back to v4)
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ParseID validates a caller supplied result-set identifier
func ParseID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("result set ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid result set ID %q: %w", s, err)
	}
	return ID(s), nil
}

// SampleID is the key shared by diversity data and sample metadata
type SampleID = string
