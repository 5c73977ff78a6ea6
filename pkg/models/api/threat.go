package api

type ThreatReference struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

type Threat struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	CVSSScore   float64           `json:"cvss_score"`
	Severity    string            `json:"severity"`
	Published   string            `json:"published"`
	References  []ThreatReference `json:"references"`
}

type SeverityDistribution struct {
	Labels      []string  `json:"labels"`
	Data        []int     `json:"data"`
	Percentages []float64 `json:"percentages"`
	Total       int       `json:"total"`
}

type CategoryDistribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
