package main

import (
	"context"
	"crypto/subtle"
	"encoding/csv"
	"net/http"
	"net/http/pprof"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/victorconsulting/diagnosis-engine/internal/adapters"
	"github.com/victorconsulting/diagnosis-engine/internal/cache"
	"github.com/victorconsulting/diagnosis-engine/internal/database"
	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
	"github.com/victorconsulting/diagnosis-engine/internal/errors"
	"github.com/victorconsulting/diagnosis-engine/internal/middleware"
	"github.com/victorconsulting/diagnosis-engine/internal/monitoring"
	"github.com/victorconsulting/diagnosis-engine/internal/privacy"
	"github.com/victorconsulting/diagnosis-engine/internal/report"
	"github.com/victorconsulting/diagnosis-engine/internal/resilience"
	"github.com/victorconsulting/diagnosis-engine/internal/security"
	"github.com/victorconsulting/diagnosis-engine/internal/themes"
	"github.com/victorconsulting/diagnosis-engine/internal/types"
)

// commentMaxRunes caps the narrative comment length before it is stored
// and returned. Longer generations are clamped with an ellipsis.
const commentMaxRunes = 520

// commentTimeout bounds one full narrative-generation cycle including
// the retry.
const commentTimeout = 25 * time.Second

// serverDeps bundles everything the router needs. Built once in main,
// and by tests with in-memory substitutes.
type serverDeps struct {
	registry    *themes.Registry
	db          *database.DB
	repo        *database.Repository
	privacy     *privacy.PrivacyService
	comments    *adapters.CommentClient
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
	cache       *cache.Cache
	degradation *resilience.DegradationManager
	security    *security.SecurityMiddleware
	rateLimiter *middleware.RateLimiter
	adminToken  string
}

func newRouter(deps *serverDeps) *gin.Engine {
	r := gin.New()

	// Monitoring first so every request is counted, including the ones
	// rejected further down the chain.
	r.Use(monitoring.MonitoringMiddleware(deps.metrics, deps.logger))

	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	r.Use(deps.security.CORSConfig())
	r.Use(deps.security.SecurityHeaders)
	r.Use(deps.security.RequestTimeout)
	r.Use(deps.security.ValidateContentType)

	if deps.rateLimiter != nil {
		r.Use(deps.rateLimiter.Handler())
	}

	// Theme catalog responses are static for the process lifetime, so
	// they are the only thing the response cache covers.
	r.Use(deps.cache.Middleware(deps.metrics))

	r.GET("/health", deps.handleHealth)
	r.GET("/themes", deps.handleListThemes)
	r.GET("/themes/:id", deps.handleGetTheme)
	r.POST("/diagnose", deps.handleDiagnose)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.metrics.GetStats())
	})

	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.cache.Stats())
	})

	r.GET("/pools/database", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "database",
			"stats": deps.db.GetPoolStats(),
		})
	})

	r.GET("/pools/openai", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"pool":  "openai",
			"stats": deps.comments.GetPoolStats(),
		})
	})

	admin := r.Group("/admin", deps.adminAuth)
	admin.GET("/events", deps.handleAdminEvents)
	admin.GET("/export", deps.handleAdminExport)
	admin.DELETE("/responses", deps.handleAdminDeleteResponses)

	// Performance profiling endpoints (development only)
	if os.Getenv("ENABLE_PROFILING") == "true" {
		r.GET("/debug/pprof/*filepath", gin.WrapF(pprof.Index))
		r.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
		r.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
		r.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
		r.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	}

	return r
}

func (deps *serverDeps) handleHealth(c *gin.Context) {
	services := deps.degradation.GetAllServiceHealth()

	healthResponse := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   report.AppVersion,
		"themes":    deps.registry.IDs(),
		"services":  services,
		"metrics":   deps.metrics.GetStats(),
	}

	for _, service := range services {
		if service.Level == resilience.LevelEmergency {
			healthResponse["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, healthResponse)
			return
		}
	}

	c.JSON(http.StatusOK, healthResponse)
}

func (deps *serverDeps) handleListThemes(c *gin.Context) {
	ids := deps.registry.IDs()
	summaries := make([]types.ThemeSummary, 0, len(ids))
	for _, id := range ids {
		theme, err := deps.registry.Load(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, types.ThemeSummary{
			ID:            theme.ID,
			Title:         theme.Title,
			Lead:          theme.Lead,
			QuestionCount: theme.QuestionCount(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"themes": summaries})
}

func (deps *serverDeps) handleGetTheme(c *gin.Context) {
	theme, err := deps.registry.Load(c.Param("id"))
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	detail := types.ThemeDetail{
		ID:    theme.ID,
		Title: theme.Title,
		Lead:  theme.Lead,
	}
	for _, cat := range theme.Categories {
		tc := types.ThemeCategory{Name: cat.Name}
		for _, q := range cat.Questions {
			opts := make([]string, len(q.Options))
			for i, o := range q.Options {
				opts[i] = string(o)
			}
			tc.Questions = append(tc.Questions, types.ThemeQuestion{
				ID:      string(q.ID),
				Prompt:  q.Prompt,
				Options: opts,
			})
		}
		detail.Categories = append(detail.Categories, tc)
	}

	c.JSON(http.StatusOK, detail)
}

func (deps *serverDeps) handleDiagnose(c *gin.Context) {
	start := time.Now()

	var req types.DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.NewValidationError("invalid request body", err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	req.Company = deps.security.SanitizeInput(strings.TrimSpace(req.Company))
	req.Email = strings.TrimSpace(req.Email)

	if err := deps.security.ValidateCompany(req.Company); err != nil {
		appErr := errors.NewValidationError(err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	if err := security.ValidateEmail(req.Email); err != nil {
		appErr := errors.NewValidationError(err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	theme, err := deps.registry.Load(req.Theme)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	answers := make(map[diagnosis.QuestionID]diagnosis.AnswerOption, len(req.Answers))
	for q, a := range req.Answers {
		answers[diagnosis.QuestionID(q)] = diagnosis.AnswerOption(a)
	}

	scores, err := diagnosis.ScoreCategories(answers, theme)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	res, err := diagnosis.Classify(scores, theme)
	if err != nil {
		appErr := errors.ToAppError(err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	comment := deps.generateComment(c.Request.Context(), theme, req.Company, res)

	row, err := report.New(report.Submission{
		Theme:       theme.ID,
		Company:     req.Company,
		Email:       req.Email,
		UTMSource:   req.UTMSource,
		UTMCampaign: req.UTMCampaign,
	}, res, comment, time.Now())
	if err != nil {
		appErr := errors.NewInternalError("failed to assemble report row", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	// Persistence failures degrade to an unsaved but fully scored
	// response; the submitter still gets their result.
	saved, err := deps.repo.AppendResponse(row)
	if err != nil {
		deps.logger.SystemLogger("response_persist_failed", err.Error())
		if logErr := deps.repo.LogEvent("ERROR", "failed to persist response", err.Error()); logErr != nil {
			deps.logger.SystemLogger("event_log_failed", logErr.Error())
		}
		saved = false
	} else if !saved {
		deps.metrics.IncrementDuplicateSkipped()
	}

	deps.metrics.RecordDiagnosis(theme.ID)
	deps.logger.DiagnosisLogger(theme.ID, res.DominantType, res.Signal.String(),
		res.OverallAverage, comment != "", time.Since(start))

	out := types.DiagnoseResponse{
		Theme:          theme.ID,
		CategoryScores: make([]types.CategoryScore, len(res.CategoryScores)),
		OverallAverage: res.OverallAverage,
		Signal:         res.Signal.String(),
		TypeLabel:      res.DominantType,
		TypeText:       theme.TypeText[res.DominantType],
		RiskLevel:      report.RiskLevel(res.OverallAverage),
		AIComment:      comment,
		Saved:          saved,
	}
	for i, cs := range res.CategoryScores {
		out.CategoryScores[i] = types.CategoryScore{Category: cs.Category, Score: cs.Score}
	}

	c.JSON(http.StatusOK, out)
}

// generateComment produces the narrative comment for a result. Any
// failure is swallowed: the diagnosis succeeds without a comment.
func (deps *serverDeps) generateComment(ctx context.Context, theme *diagnosis.ThemeDefinition, company string, res diagnosis.DiagnosisResult) string {
	if !deps.comments.IsConfigured() {
		return ""
	}
	if !deps.degradation.IsServiceAvailable("openai") {
		deps.logger.SystemLogger("comment_generation_skipped", "openai marked unavailable")
		return ""
	}

	prompt := report.BuildPrompt(*theme, company, res)

	callCtx, cancel := context.WithTimeout(ctx, commentTimeout)
	defer cancel()

	start := time.Now()
	var generated string
	err := resilience.RetryWithConfig(callCtx, resilience.CommentRetryConfig(), func() error {
		var genErr error
		generated, genErr = deps.comments.Generate(callCtx, report.SystemPrompt, prompt)
		return genErr
	})

	deps.metrics.RecordCommentAPICall(err == nil)
	deps.degradation.RecordRequest("openai", err == nil)
	deps.logger.ExternalAPILogger("openai", "POST", "/chat/completions", 0, time.Since(start), err == nil)

	if err != nil {
		deps.degradation.RecordError("openai", err)
		deps.logger.SystemLogger("comment_generation_failed", err.Error())
		return ""
	}

	return report.ClampComment(generated, commentMaxRunes)
}

// adminAuth guards the admin surface with a shared bearer token. An
// empty configured token disables the surface entirely.
func (deps *serverDeps) adminAuth(c *gin.Context) {
	presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if deps.adminToken == "" ||
		subtle.ConstantTimeCompare([]byte(presented), []byte(deps.adminToken)) != 1 {
		appErr := errors.NewUnauthorizedError("admin token required")
		errors.LogError(c, appErr)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
		return
	}
	c.Next()
}

func (deps *serverDeps) handleAdminEvents(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	events, err := deps.repo.RecentEvents(limit)
	if err != nil {
		appErr := errors.NewInternalError("failed to load events", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

func (deps *serverDeps) handleAdminExport(c *gin.Context) {
	responses, err := deps.repo.ListResponses(c.Query("theme"))
	if err != nil {
		appErr := errors.NewInternalError("failed to export responses", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="responses.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(report.Header)
	for _, resp := range responses {
		_ = w.Write([]string{
			resp.Timestamp, resp.Company, resp.Email, resp.CategoryScores,
			resp.TotalScore, resp.TypeLabel, resp.AIComment, resp.UTMSource,
			resp.UTMCampaign, resp.PDFURL, resp.AppVersion, resp.Status,
			resp.AICommentLen, resp.RiskLevel, resp.EntryCheck,
			resp.ReportDate, resp.Theme,
		})
	}
	w.Flush()
}

func (deps *serverDeps) handleAdminDeleteResponses(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if err := security.ValidateEmail(email); err != nil {
		appErr := errors.NewValidationError(err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	deleted, err := deps.privacy.DeleteResponsesByEmail(email)
	if err != nil {
		appErr := errors.NewInternalError("failed to delete responses", err)
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "responses deleted",
		"email":   privacy.MaskEmail(email),
		"deleted": deleted,
	})
}
