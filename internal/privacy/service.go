// Package privacy handles personal-data hygiene: masking identifiers
// before they reach logs and deleting stored rows on request.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/victorconsulting/diagnosis-engine/internal/database"
)

// PrivacyService handles data anonymization and deletion
type PrivacyService struct {
	db *database.DB
}

// NewService creates a new privacy service
func NewService(db *database.DB) *PrivacyService {
	return &PrivacyService{db: db}
}

// AnonymizeData returns a stable anonymous token for a piece of data
func (ps *PrivacyService) AnonymizeData(data string) string {
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// MaskEmail hides the local part of an address so logs carry enough to
// correlate without exposing the identity. "taro@example.com" becomes
// "t***@example.com".
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// DeleteResponsesByEmail removes all stored responses for an email
// address and returns how many rows were deleted.
func (ps *PrivacyService) DeleteResponsesByEmail(email string) (int64, error) {
	slog.Info("Deleting stored responses on request", "email", MaskEmail(email))

	result, err := ps.db.Exec("DELETE FROM responses WHERE email = ?", email)
	if err != nil {
		return 0, fmt.Errorf("failed to delete responses: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted responses: %w", err)
	}

	return deleted, nil
}
