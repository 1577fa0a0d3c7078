// Package report flattens a diagnosis into the row shape the persistence
// layer stores and downstream sheets consume. Field order and formatting
// are part of the contract with existing consumers and must not drift.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

// AppVersion is stamped into every persisted row.
const AppVersion = "engine-v1.0.0"

// JST is the reporting timezone for timestamps, report dates and dedup
// minute buckets.
var JST = time.FixedZone("JST", 9*60*60)

// Header is the exact persisted column order. Consumers address columns by
// position, so this never changes shape, only grows at the end.
var Header = []string{
	"timestamp", "company", "email", "category_scores", "total_score",
	"type_label", "ai_comment", "utm_source", "utm_campaign", "pdf_url",
	"app_version", "status", "ai_comment_len", "risk_level", "entry_check",
	"report_date", "theme",
}

// Row is one flattened diagnosis response.
type Row struct {
	Timestamp      string
	Company        string
	Email          string
	CategoryScores string
	TotalScore     string
	TypeLabel      string
	AIComment      string
	UTMSource      string
	UTMCampaign    string
	PDFURL         string
	AppVersion     string
	Status         string
	AICommentLen   string
	RiskLevel      string
	EntryCheck     string
	ReportDate     string
	Theme          string

	// DedupKey is the advisory duplicate-suppression key; stored alongside
	// the row but not part of the Header contract.
	DedupKey string
}

// Submission carries the caller-supplied fields that pass through to the
// row unchanged. Company and email are validated upstream.
type Submission struct {
	Theme       string
	Company     string
	Email       string
	UTMSource   string
	UTMCampaign string
}

// New assembles a row from a submission and its result. comment may be
// empty when narrative generation failed; that is a non-fatal absence and
// the row status stays ok.
func New(sub Submission, res diagnosis.DiagnosisResult, comment string, now time.Time) (Row, error) {
	now = now.In(JST)
	scoresJSON, err := orderedScoresJSON(res.CategoryScores)
	if err != nil {
		return Row{}, fmt.Errorf("encode category scores: %w", err)
	}
	return Row{
		Timestamp:      now.Format("2006-01-02T15:04:05+09:00"),
		Company:        sub.Company,
		Email:          sub.Email,
		CategoryScores: scoresJSON,
		TotalScore:     fmt.Sprintf("%.2f", res.OverallAverage),
		TypeLabel:      res.DominantType,
		AIComment:      comment,
		UTMSource:      sub.UTMSource,
		UTMCampaign:    sub.UTMCampaign,
		PDFURL:         "",
		AppVersion:     AppVersion,
		Status:         "ok",
		AICommentLen:   fmt.Sprintf("%d", len([]rune(comment))),
		RiskLevel:      RiskLevel(res.OverallAverage),
		EntryCheck:     "OK",
		ReportDate:     now.Format("2006-01-02"),
		Theme:          sub.Theme,
		DedupKey:       DedupKey(sub.Company, sub.Email, res.OverallAverage, res.DominantType, now),
	}, nil
}

// Values returns the row fields in Header order.
func (r Row) Values() []string {
	return []string{
		r.Timestamp, r.Company, r.Email, r.CategoryScores, r.TotalScore,
		r.TypeLabel, r.AIComment, r.UTMSource, r.UTMCampaign, r.PDFURL,
		r.AppVersion, r.Status, r.AICommentLen, r.RiskLevel, r.EntryCheck,
		r.ReportDate, r.Theme,
	}
}

// RiskLevel buckets the overall average into the stored risk label. The
// 2.0/3.5 thresholds are independent of the blue/yellow/red signal
// thresholds and must stay that way; some consumers read only this column.
func RiskLevel(total float64) string {
	switch {
	case total < 2.0:
		return "high risk"
	case total < 3.5:
		return "medium risk"
	default:
		return "low risk"
	}
}

// DedupKey builds the advisory duplicate-suppression key: identical
// submissions within the same minute bucket collapse to one row. Two
// distinct submissions inside one minute with identical computed output
// cannot be told apart.
func DedupKey(company, email string, total float64, typeLabel string, now time.Time) string {
	return fmt.Sprintf("%s|%s|%.2f|%s|%s",
		company, email, total, typeLabel, now.In(JST).Format("2006-01-02 15:04"))
}

// orderedScoresJSON encodes the score table as a JSON object whose keys
// appear in declared category order. encoding/json randomizes map key
// order, so the object is emitted field by field.
func orderedScoresJSON(scores []diagnosis.CategoryScore) (string, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, cs := range scores {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(cs.Category)
		if err != nil {
			return "", err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(cs.Score)
		if err != nil {
			return "", err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.String(), nil
}

// ClampComment normalizes whitespace and caps the narrative comment at
// maxRunes runes, appending an ellipsis when truncated.
func ClampComment(text string, maxRunes int) string {
	t := strings.Join(strings.Fields(text), " ")
	runes := []rune(t)
	if len(runes) <= maxRunes {
		return t
	}
	return string(runes[:maxRunes-1]) + "…"
}
