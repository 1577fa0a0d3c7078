package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/victorconsulting/diagnosis-engine/internal/report"
)

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// AppendResponse persists a report row unless an identical dedup key was
// already written. Returns false when the row was suppressed as a
// duplicate. The check-then-insert is advisory, not a uniqueness
// constraint; a racing duplicate writes twice, which is acceptable.
func (r *Repository) AppendResponse(row report.Row) (bool, error) {
	countStmt, err := r.db.GetPreparedStatement("count_dedup")
	if err != nil {
		return false, err
	}

	var existing int
	if err := countStmt.QueryRow(row.DedupKey).Scan(&existing); err != nil {
		return false, fmt.Errorf("failed to check dedup key: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	insertStmt, err := r.db.GetPreparedStatement("insert_response")
	if err != nil {
		return false, err
	}

	_, err = insertStmt.Exec(
		uuid.New().String(), row.DedupKey, row.Timestamp, row.Company,
		row.Email, row.CategoryScores, row.TotalScore, row.TypeLabel,
		row.AIComment, row.UTMSource, row.UTMCampaign, row.PDFURL,
		row.AppVersion, row.Status, row.AICommentLen, row.RiskLevel,
		row.EntryCheck, row.ReportDate, row.Theme, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert response: %w", err)
	}

	return true, nil
}

// LogEvent records an operational event
func (r *Repository) LogEvent(level, message, context string) error {
	stmt, err := r.db.GetPreparedStatement("insert_event")
	if err != nil {
		return err
	}

	event := NewEvent(level, message, context)
	if _, err := stmt.Exec(event.ID, event.Level, event.Message, event.Context, event.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// RecentEvents returns the most recent operational events, newest first
func (r *Repository) RecentEvents(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	stmt, err := r.db.GetPreparedStatement("recent_events")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Message, &e.Context, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// ListResponses returns stored responses oldest first, optionally
// filtered by theme. An empty theme lists everything.
func (r *Repository) ListResponses(theme string) ([]Response, error) {
	query := `SELECT id, dedup_key, timestamp, company, email, category_scores,
		total_score, type_label, ai_comment, utm_source, utm_campaign, pdf_url,
		app_version, status, ai_comment_len, risk_level, entry_check,
		report_date, theme, created_at FROM responses`
	args := []interface{}{}
	if theme != "" {
		query += ` WHERE theme = ?`
		args = append(args, theme)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []Response
	for rows.Next() {
		var resp Response
		if err := rows.Scan(
			&resp.ID, &resp.DedupKey, &resp.Timestamp, &resp.Company,
			&resp.Email, &resp.CategoryScores, &resp.TotalScore, &resp.TypeLabel,
			&resp.AIComment, &resp.UTMSource, &resp.UTMCampaign, &resp.PDFURL,
			&resp.AppVersion, &resp.Status, &resp.AICommentLen, &resp.RiskLevel,
			&resp.EntryCheck, &resp.ReportDate, &resp.Theme, &resp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}

	return responses, rows.Err()
}

// CountResponses returns the number of stored responses, optionally
// filtered by theme. An empty theme counts everything.
func (r *Repository) CountResponses(theme string) (int, error) {
	var count int
	var err error
	if theme == "" {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&count)
	} else {
		err = r.db.QueryRow(`SELECT COUNT(*) FROM responses WHERE theme = ?`, theme).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}

	return count, nil
}
