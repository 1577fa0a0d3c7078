package types

// DiagnoseRequest is the request structure for the diagnose endpoint
type DiagnoseRequest struct {
	Theme       string            `json:"theme" binding:"required"`
	Company     string            `json:"company" binding:"required"`
	Email       string            `json:"email" binding:"required"`
	Answers     map[string]string `json:"answers" binding:"required"`
	UTMSource   string            `json:"utm_source"`
	UTMCampaign string            `json:"utm_campaign"`
}

// CategoryScore is one category average in a diagnose response
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// DiagnoseResponse is the response structure for the diagnose endpoint
type DiagnoseResponse struct {
	Theme          string          `json:"theme"`
	CategoryScores []CategoryScore `json:"category_scores"`
	OverallAverage float64         `json:"overall_average"`
	Signal         string          `json:"signal"`
	TypeLabel      string          `json:"type_label"`
	TypeText       string          `json:"type_text,omitempty"`
	RiskLevel      string          `json:"risk_level"`
	AIComment      string          `json:"ai_comment,omitempty"`
	Saved          bool            `json:"saved"`
}

// ThemeSummary is one entry in the theme catalog listing
type ThemeSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Lead          string `json:"lead"`
	QuestionCount int    `json:"question_count"`
}

// ThemeDetail is the full form definition for one theme
type ThemeDetail struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Lead       string          `json:"lead"`
	Categories []ThemeCategory `json:"categories"`
}

// ThemeCategory is one category block in a theme detail
type ThemeCategory struct {
	Name      string          `json:"name"`
	Questions []ThemeQuestion `json:"questions"`
}

// ThemeQuestion is one renderable question with its ordered options
type ThemeQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}
