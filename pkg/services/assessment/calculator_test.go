package assessment

import (
	"testing"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allYes() map[string]bool {
	answers := make(map[string]bool)
	for _, qs := range questions {
		for _, q := range qs {
			answers[q.ID] = true
		}
	}
	return answers
}

func TestScore_AllYes(t *testing.T) {
	calc := NewCalculator()

	report := calc.Score(domain.AssessmentResponse{
		Answers:  allYes(),
		Industry: "saas",
	})

	assert.Equal(t, 100.0, report.OverallScore)
	assert.Equal(t, "A", report.Grade)
	for category, score := range report.CategoryScores {
		assert.Equal(t, 100.0, score, "category %s", category)
	}
	for _, rec := range report.Recommendations {
		assert.Equal(t, domain.PriorityLow, rec.Priority)
	}
}

func TestScore_AllNo(t *testing.T) {
	calc := NewCalculator()

	report := calc.Score(domain.AssessmentResponse{Industry: "general"})

	assert.Equal(t, 0.0, report.OverallScore)
	assert.Equal(t, "F", report.Grade)
	for _, rec := range report.Recommendations {
		assert.Equal(t, domain.PriorityHigh, rec.Priority)
	}
}

func TestScore_WeightedCategory(t *testing.T) {
	calc := NewCalculator()

	// access_control weights: ac1=10, ac2=8, ac3=7, ac4=6, total 31.
	// Answering only ac1 earns 10/31 = 32.3%.
	report := calc.Score(domain.AssessmentResponse{
		Answers:  map[string]bool{"ac1": true},
		Industry: "general",
	})

	assert.Equal(t, 32.3, report.CategoryScores["access_control"])
}

func TestScore_FalseAnswerEarnsNothing(t *testing.T) {
	calc := NewCalculator()

	report := calc.Score(domain.AssessmentResponse{
		Answers: map[string]bool{"ac1": false, "ac2": true},
	})

	// ac2 alone earns 8/31 = 25.8%.
	assert.Equal(t, 25.8, report.CategoryScores["access_control"])
}

func TestScore_RadarAlignment(t *testing.T) {
	calc := NewCalculator()

	report := calc.Score(domain.AssessmentResponse{
		Answers:  allYes(),
		Industry: "fintech",
	})

	radar := report.Radar
	assert.Equal(t, []string{
		"Access Control",
		"Data Protection",
		"Network Security",
		"Incident Response",
		"Compliance",
		"Security Awareness",
	}, radar.Labels)
	require.Len(t, radar.Scores, 6)
	require.Len(t, radar.Benchmark, 6)
	assert.Equal(t, 85.0, radar.Benchmark[0], "fintech access_control benchmark")
	assert.Equal(t, 95.0, radar.Benchmark[4], "fintech compliance benchmark")
}

func TestBenchmark_UnknownIndustryFallsBack(t *testing.T) {
	calc := NewCalculator()

	assert.Equal(t, benchmarks["general"], calc.Benchmark("space-mining"))
	assert.Equal(t, benchmarks["fintech"], calc.Benchmark("FinTech"), "lookup is case-insensitive")
}

func TestRecommendations_HighPriorityFirst(t *testing.T) {
	calc := NewCalculator()

	// Full marks in access_control only; the rest score zero.
	answers := map[string]bool{"ac1": true, "ac2": true, "ac3": true, "ac4": true}
	report := calc.Score(domain.AssessmentResponse{Answers: answers})

	require.Len(t, report.Recommendations, 6)
	assert.Equal(t, domain.PriorityHigh, report.Recommendations[0].Priority)
	last := report.Recommendations[len(report.Recommendations)-1]
	assert.Equal(t, domain.PriorityLow, last.Priority)
	assert.Equal(t, "Access Control", last.Category)
}

func TestGrade_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, grade(tt.score), "score %.1f", tt.score)
	}
}
