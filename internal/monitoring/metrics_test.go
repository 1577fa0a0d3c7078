package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementDuplicateSkipped()
	m.IncrementRateLimitBlock()

	stats := m.GetStats()

	assert.Equal(t, int64(2), stats["total_requests"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(1), stats["cache_misses"])
	assert.Equal(t, int64(1), stats["duplicates_skipped"])
	assert.Equal(t, int64(1), stats["rate_limit_blocks"])
	assert.Equal(t, float64(50), stats["error_rate_percent"])
}

func TestMetrics_CommentAPICalls(t *testing.T) {
	m := NewMetrics()

	m.RecordCommentAPICall(true)
	m.RecordCommentAPICall(true)
	m.RecordCommentAPICall(false)

	stats := m.GetStats()

	assert.Equal(t, int64(3), stats["comment_api_calls"])
	assert.Equal(t, int64(1), stats["comment_api_failures"])
}

func TestMetrics_ThemeDistribution(t *testing.T) {
	m := NewMetrics()

	m.RecordDiagnosis("factory")
	m.RecordDiagnosis("factory")
	m.RecordDiagnosis("sales")

	dist := m.GetThemeDistribution()

	assert.Equal(t, int64(2), dist["factory"])
	assert.Equal(t, int64(1), dist["sales"])
}

func TestMetrics_StatusCodeDistribution(t *testing.T) {
	m := NewMetrics()

	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(422)

	dist := m.GetStatusCodeDistribution()

	assert.Equal(t, int64(2), dist[200])
	assert.Equal(t, int64(1), dist[422])
}

func TestMetrics_PercentileResponseTime(t *testing.T) {
	m := NewMetrics()

	for i := 1; i <= 100; i++ {
		m.RecordResponseTime(time.Duration(i) * time.Millisecond)
	}

	p50 := m.GetPercentileResponseTime(50)
	p99 := m.GetPercentileResponseTime(99)

	assert.Greater(t, p99, p50)
	assert.InDelta(t, float64(50*time.Millisecond), float64(p50), float64(5*time.Millisecond))
}

func TestMetrics_PercentileWithNoSamples(t *testing.T) {
	m := NewMetrics()

	assert.Zero(t, m.GetPercentileResponseTime(95))
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.IncrementRequest()
	m.RecordDiagnosis("factory")

	m.Reset()

	stats := m.GetStats()
	require.Equal(t, int64(0), stats["total_requests"])
	assert.Empty(t, m.GetThemeDistribution())
}
