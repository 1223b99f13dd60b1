package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)
	return w.Body.String()
}

func TestNewCollectorRegistersMetrics(t *testing.T) {
	c := NewCollector()

	// Histograms only appear in the scrape after an observation; the gauge
	// is always present.
	c.SetCatalogSize(0)
	body := scrape(t, c)
	assert.Contains(t, body, "catalog_recipes")
}

func TestRecordOptimization(t *testing.T) {
	c := NewCollector()

	c.RecordOptimization("optimize", 150*time.Millisecond, 5)
	c.RecordOptimization("match", 20*time.Millisecond, 12)

	body := scrape(t, c)
	assert.Contains(t, body, `optimization_duration_seconds_count{operation="optimize"} 1`)
	assert.Contains(t, body, `optimization_duration_seconds_count{operation="match"} 1`)
	assert.Contains(t, body, `optimization_result_count_sum{operation="match"} 12`)
}

func TestRecordScore(t *testing.T) {
	c := NewCollector()

	c.RecordScore(83)
	c.RecordScore(42)

	body := scrape(t, c)
	assert.Contains(t, body, "optimization_score_count 2")
	assert.Contains(t, body, "optimization_score_sum 125")
}

func TestSetCatalogSize(t *testing.T) {
	c := NewCollector()

	c.SetCatalogSize(7)
	assert.Contains(t, scrape(t, c), "catalog_recipes 7")

	c.SetCatalogSize(3)
	assert.Contains(t, scrape(t, c), "catalog_recipes 3")
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()

	a.SetCatalogSize(10)
	b.SetCatalogSize(0)

	assert.Contains(t, scrape(t, a), "catalog_recipes 10")
	assert.Contains(t, scrape(t, b), "catalog_recipes 0")
}
