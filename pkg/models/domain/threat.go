package domain

type ThreatReference struct {
	URL    string
	Source string
}

// Threat is one processed CVE record from the upstream feed.
type Threat struct {
	ID          string
	Description string
	CVSSScore   float64
	Severity    string // CRITICAL, HIGH, MEDIUM, LOW, UNKNOWN
	Published   string
	References  []ThreatReference
}

// SeverityDistribution buckets recent threats into the four fixed
// severity levels, positionally aligned with Labels.
type SeverityDistribution struct {
	Labels      []string
	Counts      []int
	Percentages []float64
	Total       int
}

// CategoryDistribution counts recent threats per keyword-matched category.
type CategoryDistribution struct {
	Labels []string
	Counts []int
}
