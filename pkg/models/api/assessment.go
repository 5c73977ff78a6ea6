package api

type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Weight   int    `json:"weight"`
}

type ScoreRequest struct {
	Answers     map[string]bool `json:"answers"`
	Industry    string          `json:"industry"`
	CompanySize string          `json:"company_size"`
}

type Recommendation struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Priority string  `json:"priority"`
	Message  string  `json:"message"`
}

type RadarData struct {
	Labels    []string  `json:"labels"`
	Scores    []float64 `json:"scores"`
	Benchmark []float64 `json:"benchmark"`
}

type ScoreReport struct {
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	RadarData       RadarData          `json:"radar_data"`
	Benchmark       map[string]int     `json:"benchmark"`
	Recommendations []Recommendation   `json:"recommendations"`
	Grade           string             `json:"grade"`
}
