package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
	"github.com/victorconsulting/diagnosis-engine/internal/report"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db)
}

func testRow(t *testing.T, email string, now time.Time) report.Row {
	t.Helper()

	res := diagnosis.DiagnosisResult{
		CategoryScores: []diagnosis.CategoryScore{
			{Category: "Skills", Score: 2},
			{Category: "Cost Awareness", Score: 4},
		},
		OverallAverage: 3.0,
		Signal:         diagnosis.SignalYellow,
		DominantType:   "Expert-Dependency Type",
		WeakestCategories: []string{
			"Skills", "Cost Awareness",
		},
	}
	row, err := report.New(report.Submission{
		Theme:   "factory",
		Company: "Acme Industrial",
		Email:   email,
	}, res, "Work on skills transfer.", now)
	require.NoError(t, err)
	return row
}

func TestRepository_AppendResponse(t *testing.T) {
	repo := testRepo(t)
	row := testRow(t, "owner@example.com", time.Now())

	saved, err := repo.AppendResponse(row)

	require.NoError(t, err)
	assert.True(t, saved)

	count, err := repo.CountResponses("")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_AppendResponse_SuppressesDuplicates(t *testing.T) {
	repo := testRepo(t)
	now := time.Now()
	row := testRow(t, "owner@example.com", now)

	saved, err := repo.AppendResponse(row)
	require.NoError(t, err)
	require.True(t, saved)

	// Identical submission inside the same minute bucket collapses.
	saved, err = repo.AppendResponse(row)
	require.NoError(t, err)
	assert.False(t, saved)

	count, err := repo.CountResponses("")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_AppendResponse_DifferentMinuteIsNotDuplicate(t *testing.T) {
	repo := testRepo(t)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	saved, err := repo.AppendResponse(testRow(t, "owner@example.com", now))
	require.NoError(t, err)
	require.True(t, saved)

	saved, err = repo.AppendResponse(testRow(t, "owner@example.com", now.Add(time.Minute)))
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestRepository_ListResponses(t *testing.T) {
	repo := testRepo(t)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	_, err := repo.AppendResponse(testRow(t, "first@example.com", now))
	require.NoError(t, err)
	_, err = repo.AppendResponse(testRow(t, "second@example.com", now))
	require.NoError(t, err)

	responses, err := repo.ListResponses("")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "3.00", responses[0].TotalScore)
	assert.Equal(t, "Expert-Dependency Type", responses[0].TypeLabel)
	assert.Equal(t, "factory", responses[0].Theme)

	// Theme filter
	filtered, err := repo.ListResponses("factory")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	empty, err := repo.ListResponses("cashflow")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_CountResponsesByTheme(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.AppendResponse(testRow(t, "owner@example.com", time.Now()))
	require.NoError(t, err)

	count, err := repo.CountResponses("factory")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountResponses("sales")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRepository_Events(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.LogEvent("ERROR", "failed to persist response", "disk full"))
	require.NoError(t, repo.LogEvent("INFO", "startup", ""))

	events, err := repo.RecentEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	levels := []string{events[0].Level, events[1].Level}
	assert.Contains(t, levels, "ERROR")
	assert.Contains(t, levels, "INFO")
	for _, ev := range events {
		assert.NotEmpty(t, ev.ID)
		assert.NotEmpty(t, ev.Message)
	}
}

func TestRepository_RecentEventsDefaultLimit(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.LogEvent("INFO", "one event", ""))

	events, err := repo.RecentEvents(0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
