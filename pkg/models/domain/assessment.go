package domain

type Question struct {
	ID     string
	Text   string
	Weight int
}

// AssessmentResponse carries a user's yes/no answers keyed by question ID.
type AssessmentResponse struct {
	Answers     map[string]bool
	Industry    string
	CompanySize string
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type Recommendation struct {
	Category string
	Score    float64
	Priority Priority
	Message  string
}

// RadarData is the posture radar payload: scores and benchmark aligned
// positionally with the category labels.
type RadarData struct {
	Labels    []string
	Scores    []float64
	Benchmark []float64
}

type ScoreReport struct {
	OverallScore    float64
	CategoryScores  map[string]float64
	Radar           RadarData
	Benchmark       map[string]int
	Recommendations []Recommendation
	Grade           string
}
