package threatfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL      = "https://services.nvd.nist.gov/rest/json/cves/2.0"
	defaultCacheTTL     = time.Hour
	maxDescriptionRunes = 300
	maxReferences       = 3
	// distributionSample is how many recent CVEs the distribution
	// endpoints aggregate over.
	distributionSample = 200
)

// severityOrder fixes the bucket order of the severity distribution.
var severityOrder = []string{"Critical", "High", "Medium", "Low"}

// categories maps threat-category labels to the description keywords
// that classify a CVE into them. First match wins; unmatched CVEs count
// as "Other" and are excluded from the emitted labels.
var categories = []struct {
	Name     string
	Keywords []string
}{
	{"Web Application", []string{"xss", "sql injection", "csrf", "web", "http"}},
	{"Network", []string{"network", "protocol", "tcp", "udp", "dns"}},
	{"Authentication", []string{"authentication", "password", "credential", "login"}},
	{"Privilege Escalation", []string{"privilege", "escalation", "root", "admin"}},
	{"Code Execution", []string{"remote code execution", "rce", "execute", "arbitrary code"}},
	{"Data Exposure", []string{"information disclosure", "data leak", "exposure", "sensitive"}},
}

// Service fetches and aggregates recent CVE intelligence.
type Service interface {
	Recent(ctx context.Context, days, limit int) ([]domain.Threat, error)
	SeverityDistribution(ctx context.Context, days int) (domain.SeverityDistribution, error)
	CategoryDistribution(ctx context.Context, days int) (domain.CategoryDistribution, error)
}

type Config struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
}

type cacheEntry struct {
	fetched time.Time
	threats []domain.Threat
}

type service struct {
	cfg    Config
	client *retryablehttp.Client

	mu    sync.Mutex
	cache map[string]cacheEntry

	now func() time.Time
}

func NewService(cfg Config) Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &service{
		cfg:    cfg,
		client: client,
		cache:  make(map[string]cacheEntry),
		now:    time.Now,
	}
}

// Recent returns up to limit CVEs published in the last N days, cached
// for the configured TTL. A failed fetch degrades to the built-in mock
// set so the surrounding page keeps rendering.
func (s *service) Recent(ctx context.Context, days, limit int) ([]domain.Threat, error) {
	key := fmt.Sprintf("recent_%d_%d", days, limit)

	s.mu.Lock()
	entry, ok := s.cache[key]
	s.mu.Unlock()
	if ok && s.now().Sub(entry.fetched) < s.cfg.CacheTTL {
		return entry.threats, nil
	}

	threats, err := s.fetch(ctx, days, limit)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("CVE fetch failed, serving built-in threat data")
		return mockThreats(limit), nil
	}

	s.mu.Lock()
	s.cache[key] = cacheEntry{fetched: s.now(), threats: threats}
	s.mu.Unlock()
	return threats, nil
}

func (s *service) fetch(ctx context.Context, days, limit int) ([]domain.Threat, error) {
	end := s.now()
	start := end.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("pubStartDate", start.Format("2006-01-02")+"T00:00:00.000")
	params.Set("pubEndDate", end.Format("2006-01-02")+"T23:59:59.999")
	params.Set("resultsPerPage", strconv.Itoa(limit))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CVE request: %w", err)
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("apiKey", s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("CVE request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CVE request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CVE response: %w", err)
	}

	var parsed nvdResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse CVE response: %w", err)
	}

	vulns := parsed.Vulnerabilities
	if len(vulns) > limit {
		vulns = vulns[:limit]
	}

	threats := make([]domain.Threat, 0, len(vulns))
	for _, v := range vulns {
		threats = append(threats, processCVE(v.CVE))
	}
	return threats, nil
}

func processCVE(cve nvdCVE) domain.Threat {
	description := ""
	if len(cve.Descriptions) > 0 {
		description = truncate(cve.Descriptions[0].Value, maxDescriptionRunes)
	}

	score, severity := cve.Metrics.score()

	refs := cve.References
	if len(refs) > maxReferences {
		refs = refs[:maxReferences]
	}
	references := make([]domain.ThreatReference, 0, len(refs))
	for _, ref := range refs {
		references = append(references, domain.ThreatReference{URL: ref.URL, Source: ref.Source})
	}

	return domain.Threat{
		ID:          cve.ID,
		Description: description,
		CVSSScore:   score,
		Severity:    strings.ToUpper(severity),
		Published:   cve.Published,
		References:  references,
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// SeverityDistribution buckets a large recent sample into the four fixed
// severity levels. Percentages guard a zero total.
func (s *service) SeverityDistribution(ctx context.Context, days int) (domain.SeverityDistribution, error) {
	threats, err := s.Recent(ctx, days, distributionSample)
	if err != nil {
		return domain.SeverityDistribution{}, err
	}

	counts := make(map[string]int)
	for _, t := range threats {
		counts[t.Severity]++
	}

	total := len(threats)
	dist := domain.SeverityDistribution{
		Labels:      append([]string(nil), severityOrder...),
		Counts:      make([]int, 0, len(severityOrder)),
		Percentages: make([]float64, 0, len(severityOrder)),
		Total:       total,
	}
	for _, label := range severityOrder {
		count := counts[strings.ToUpper(label)]
		dist.Counts = append(dist.Counts, count)
		pct := 0.0
		if total > 0 {
			pct = round1(float64(count) / float64(total) * 100)
		}
		dist.Percentages = append(dist.Percentages, pct)
	}
	return dist, nil
}

// CategoryDistribution classifies a recent sample by description
// keywords into the six threat categories.
func (s *service) CategoryDistribution(ctx context.Context, days int) (domain.CategoryDistribution, error) {
	threats, err := s.Recent(ctx, days, distributionSample)
	if err != nil {
		return domain.CategoryDistribution{}, err
	}

	counts := make(map[string]int)
	for _, t := range threats {
		desc := strings.ToLower(t.Description)
		matched := false
		for _, category := range categories {
			for _, keyword := range category.Keywords {
				if strings.Contains(desc, keyword) {
					counts[category.Name]++
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			counts["Other"]++
		}
	}

	dist := domain.CategoryDistribution{
		Labels: make([]string, 0, len(categories)),
		Counts: make([]int, 0, len(categories)),
	}
	for _, category := range categories {
		dist.Labels = append(dist.Labels, category.Name)
		dist.Counts = append(dist.Counts, counts[category.Name])
	}
	return dist, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
