package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== PNR ====================

// GeneratePNR issues an 8-character uppercase booking reference.
// Derived from a random v4 UUID, so entropy comes from crypto/rand.
// Uniqueness is enforced by the store; callers retry on conflict.
func GeneratePNR() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
