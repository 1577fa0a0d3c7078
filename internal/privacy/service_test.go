package privacy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorconsulting/diagnosis-engine/internal/database"
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
	"github.com/victorconsulting/diagnosis-engine/internal/report"
)

func testService(t *testing.T) (*PrivacyService, *database.Repository) {
	t.Helper()

	db, err := database.NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(db), database.NewRepository(db)
}

func appendRow(t *testing.T, repo *database.Repository, email string, now time.Time) {
	t.Helper()

	res := diagnosis.DiagnosisResult{
		CategoryScores: []diagnosis.CategoryScore{
			{Category: "Skills", Score: 3},
		},
		OverallAverage: 3.0,
		Signal:         diagnosis.SignalYellow,
		DominantType:   "Expert-Dependency Type",
	}
	row, err := report.New(report.Submission{
		Theme:   "factory",
		Company: "Acme",
		Email:   email,
	}, res, "", now)
	require.NoError(t, err)

	saved, err := repo.AppendResponse(row)
	require.NoError(t, err)
	require.True(t, saved)
}

func TestPrivacyService_DeleteResponsesByEmail(t *testing.T) {
	svc, repo := testService(t)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	appendRow(t, repo, "target@example.com", now)
	appendRow(t, repo, "target@example.com", now.Add(time.Minute))
	appendRow(t, repo, "other@example.com", now)

	deleted, err := svc.DeleteResponsesByEmail("target@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.CountResponses("")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrivacyService_DeleteResponsesByEmail_NoMatches(t *testing.T) {
	svc, _ := testService(t)

	deleted, err := svc.DeleteResponsesByEmail("nobody@example.com")

	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"ordinary address", "taro@example.com", "t***@example.com"},
		{"single-char local part", "a@example.com", "a***@example.com"},
		{"not an address", "not-an-email", "***"},
		{"empty", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.email))
		})
	}
}

func TestAnonymizeData(t *testing.T) {
	svc, _ := testService(t)

	h1 := svc.AnonymizeData("owner@example.com")
	h2 := svc.AnonymizeData("owner@example.com")
	h3 := svc.AnonymizeData("other@example.com")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "@")
}
