package database

import (
	"time"

	"github.com/google/uuid"
)

// Response is one persisted diagnosis row. String columns mirror the
// flattened report row so exports keep their exact formatting.
type Response struct {
	ID             string    `json:"id" db:"id"`
	DedupKey       string    `json:"-" db:"dedup_key"`
	Timestamp      string    `json:"timestamp" db:"timestamp"`
	Company        string    `json:"company" db:"company"`
	Email          string    `json:"-" db:"email"`
	CategoryScores string    `json:"category_scores" db:"category_scores"`
	TotalScore     string    `json:"total_score" db:"total_score"`
	TypeLabel      string    `json:"type_label" db:"type_label"`
	AIComment      string    `json:"ai_comment,omitempty" db:"ai_comment"`
	UTMSource      string    `json:"utm_source,omitempty" db:"utm_source"`
	UTMCampaign    string    `json:"utm_campaign,omitempty" db:"utm_campaign"`
	PDFURL         string    `json:"pdf_url,omitempty" db:"pdf_url"`
	AppVersion     string    `json:"app_version" db:"app_version"`
	Status         string    `json:"status" db:"status"`
	AICommentLen   string    `json:"ai_comment_len" db:"ai_comment_len"`
	RiskLevel      string    `json:"risk_level" db:"risk_level"`
	EntryCheck     string    `json:"entry_check" db:"entry_check"`
	ReportDate     string    `json:"report_date" db:"report_date"`
	Theme          string    `json:"theme" db:"theme"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Event is an operational event record
type Event struct {
	ID        string    `json:"id" db:"id"`
	Level     string    `json:"level" db:"level"`
	Message   string    `json:"message" db:"message"`
	Context   string    `json:"context,omitempty" db:"context"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewEvent creates a new event with generated ID
func NewEvent(level, message, context string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		Context:   context,
		CreatedAt: time.Now(),
	}
}
