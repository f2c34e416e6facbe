package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GeneratePONumber generates a PO number for hand-entered orders that
// arrive without one
func GeneratePONumber() string {
	return "MAN-" + strings.ToUpper(uuid.New().String()[:8])
}
