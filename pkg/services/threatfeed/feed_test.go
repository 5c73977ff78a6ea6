package threatfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nvdPayload(vulns ...string) string {
	return fmt.Sprintf(`{"vulnerabilities":[%s]}`, strings.Join(vulns, ","))
}

func vuln(id, description, severity string, score float64) string {
	return fmt.Sprintf(`{
		"cve": {
			"id": %q,
			"published": "2025-08-20T10:00:00.000",
			"descriptions": [{"lang": "en", "value": %q}],
			"metrics": {
				"cvssMetricV31": [{"cvssData": {"baseScore": %g, "baseSeverity": %q}}]
			},
			"references": [{"url": "https://example.com/a", "source": "NVD"}]
		}
	}`, id, description, score, severity)
}

func newTestService(t *testing.T, handler http.HandlerFunc) (Service, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	svc := NewService(Config{BaseURL: server.URL})
	// Retries only slow down the failure-path tests.
	svc.(*service).client.RetryMax = 0
	return svc, &hits
}

func TestRecent_ProcessesCVEs(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("pubStartDate"))
		assert.NotEmpty(t, r.URL.Query().Get("pubEndDate"))
		assert.Equal(t, "50", r.URL.Query().Get("resultsPerPage"))
		fmt.Fprint(w, nvdPayload(
			vuln("CVE-2025-0001", "Remote code execution in parser", "critical", 9.8),
		))
	})

	threats, err := svc.Recent(context.Background(), 7, 50)
	require.NoError(t, err)
	require.Len(t, threats, 1)
	assert.Equal(t, "CVE-2025-0001", threats[0].ID)
	assert.Equal(t, "CRITICAL", threats[0].Severity)
	assert.Equal(t, 9.8, threats[0].CVSSScore)
	require.Len(t, threats[0].References, 1)
}

func TestRecent_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apiKey")
		fmt.Fprint(w, nvdPayload())
	}))
	defer server.Close()

	svc := NewService(Config{BaseURL: server.URL, APIKey: "secret"})
	_, err := svc.Recent(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
}

func TestRecent_CachesForTTL(t *testing.T) {
	svc, hits := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, nvdPayload(vuln("CVE-2025-0001", "x", "LOW", 2.0)))
	})

	ctx := context.Background()
	_, err := svc.Recent(ctx, 7, 10)
	require.NoError(t, err)
	_, err = svc.Recent(ctx, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load(), "second call within TTL must hit the cache")

	// Different parameters are a different cache key.
	_, err = svc.Recent(ctx, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestRecent_CacheExpires(t *testing.T) {
	svc, hits := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, nvdPayload())
	})

	clock := time.Now()
	svc.(*service).now = func() time.Time { return clock }

	ctx := context.Background()
	_, err := svc.Recent(ctx, 7, 10)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	_, err = svc.Recent(ctx, 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestRecent_FallsBackToMockOnServerError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	threats, err := svc.Recent(context.Background(), 7, 3)
	require.NoError(t, err, "fetch failure degrades, it does not propagate")
	require.Len(t, threats, 3)
	assert.Equal(t, "CVE-2024-12345", threats[0].ID)
}

func TestProcessCVE_SeverityFallbackChain(t *testing.T) {
	cve := nvdCVE{
		ID: "CVE-2025-0002",
		Metrics: nvdMetrics{
			CVSSMetricV2: []nvdCVSSMetric{{
				CVSSData:     nvdCVSSData{BaseScore: 7.5},
				BaseSeverity: "High",
			}},
		},
	}

	threat := processCVE(cve)
	assert.Equal(t, 7.5, threat.CVSSScore)
	assert.Equal(t, "HIGH", threat.Severity, "v2 severity lives outside cvssData")

	// v3.1 wins over v2 when both are present.
	cve.Metrics.CVSSMetricV31 = []nvdCVSSMetric{{
		CVSSData: nvdCVSSData{BaseScore: 9.8, BaseSeverity: "CRITICAL"},
	}}
	threat = processCVE(cve)
	assert.Equal(t, 9.8, threat.CVSSScore)
	assert.Equal(t, "CRITICAL", threat.Severity)
}

func TestProcessCVE_NoMetrics(t *testing.T) {
	threat := processCVE(nvdCVE{ID: "CVE-2025-0003"})
	assert.Equal(t, 0.0, threat.CVSSScore)
	assert.Equal(t, "UNKNOWN", threat.Severity)
}

func TestProcessCVE_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 400)
	threat := processCVE(nvdCVE{
		Descriptions: []nvdText{{Lang: "en", Value: long}},
	})
	assert.Equal(t, strings.Repeat("a", 300)+"...", threat.Description)

	short := processCVE(nvdCVE{Descriptions: []nvdText{{Value: "short"}}})
	assert.Equal(t, "short", short.Description)
}

func TestProcessCVE_CapsReferences(t *testing.T) {
	refs := make([]nvdReference, 5)
	for i := range refs {
		refs[i] = nvdReference{URL: fmt.Sprintf("https://example.com/%d", i)}
	}
	threat := processCVE(nvdCVE{References: refs})
	assert.Len(t, threat.References, 3)
}

func TestSeverityDistribution(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, nvdPayload(
			vuln("CVE-1", "a", "CRITICAL", 9.8),
			vuln("CVE-2", "b", "HIGH", 8.0),
			vuln("CVE-3", "c", "HIGH", 7.2),
			vuln("CVE-4", "d", "LOW", 2.1),
		))
	})

	dist, err := svc.SeverityDistribution(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"Critical", "High", "Medium", "Low"}, dist.Labels)
	assert.Equal(t, []int{1, 2, 0, 1}, dist.Counts)
	assert.Equal(t, []float64{25, 50, 0, 25}, dist.Percentages)
	assert.Equal(t, 4, dist.Total)
}

func TestSeverityDistribution_ZeroTotal(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, nvdPayload())
	})

	dist, err := svc.SeverityDistribution(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 0, dist.Total)
	assert.Equal(t, []float64{0, 0, 0, 0}, dist.Percentages, "zero total must not divide")
}

func TestCategoryDistribution(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, nvdPayload(
			vuln("CVE-1", "SQL injection in web form", "HIGH", 8.0),
			vuln("CVE-2", "DNS protocol flaw", "MEDIUM", 5.0),
			vuln("CVE-3", "weak password policy bypass", "MEDIUM", 5.0),
			vuln("CVE-4", "completely unrelated firmware bug", "LOW", 3.0),
		))
	})

	dist, err := svc.CategoryDistribution(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Web Application",
		"Network",
		"Authentication",
		"Privilege Escalation",
		"Code Execution",
		"Data Exposure",
	}, dist.Labels)
	// First match wins; the unmatched CVE is excluded from the labels.
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0}, dist.Counts)
}
