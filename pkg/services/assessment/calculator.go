package assessment

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
)

// Calculator scores security posture assessments against the built-in
// question set and industry benchmarks. It is stateless and safe for
// concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Questions returns the full assessment, keyed by category.
func (c *Calculator) Questions() map[string][]domain.Question {
	return questions
}

// Benchmark returns the category averages for an industry; unknown
// industries map to the general benchmark.
func (c *Calculator) Benchmark(industry string) map[string]int {
	if b, ok := benchmarks[strings.ToLower(industry)]; ok {
		return b
	}
	return benchmarks["general"]
}

// Score computes category scores, the overall score and grade, the
// benchmark comparison, prioritized recommendations, and the posture
// radar payload for one set of answers.
func (c *Calculator) Score(resp domain.AssessmentResponse) domain.ScoreReport {
	categoryScores := make(map[string]float64, len(questions))
	for category, qs := range questions {
		var totalWeight, earned int
		for _, q := range qs {
			totalWeight += q.Weight
			if resp.Answers[q.ID] {
				earned += q.Weight
			}
		}
		score := 0.0
		if totalWeight > 0 {
			score = round1(float64(earned) / float64(totalWeight) * 100)
		}
		categoryScores[category] = score
	}

	var sum float64
	for _, score := range categoryScores {
		sum += score
	}
	overall := round1(sum / float64(len(categoryScores)))

	benchmark := c.Benchmark(resp.Industry)

	return domain.ScoreReport{
		OverallScore:    overall,
		CategoryScores:  categoryScores,
		Radar:           radarData(categoryScores, benchmark),
		Benchmark:       benchmark,
		Recommendations: recommendations(categoryScores),
		Grade:           grade(overall),
	}
}

// radarData orders category scores and benchmark values along the fixed
// radar axes.
func radarData(scores map[string]float64, benchmark map[string]int) domain.RadarData {
	data := domain.RadarData{
		Labels:    make([]string, 0, len(categoryOrder)),
		Scores:    make([]float64, 0, len(categoryOrder)),
		Benchmark: make([]float64, 0, len(categoryOrder)),
	}
	for _, key := range categoryOrder {
		data.Labels = append(data.Labels, categoryTitles[key])
		data.Scores = append(data.Scores, scores[key])
		data.Benchmark = append(data.Benchmark, float64(benchmark[key]))
	}
	return data
}

func recommendations(scores map[string]float64) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		score := scores[key]
		title := categoryTitles[key]

		var priority domain.Priority
		var message string
		switch {
		case score < 60:
			priority = domain.PriorityHigh
			message = fmt.Sprintf("Critical gaps in %s. Immediate action required.", title)
		case score < 75:
			priority = domain.PriorityMedium
			message = fmt.Sprintf("Improvement needed in %s.", title)
		default:
			priority = domain.PriorityLow
			message = fmt.Sprintf("%s is well-managed. Continue monitoring.", title)
		}

		recs = append(recs, domain.Recommendation{
			Category: title,
			Score:    score,
			Priority: priority,
			Message:  message,
		})
	}

	rank := map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 1,
		domain.PriorityLow:    2,
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return rank[recs[i].Priority] < rank[recs[j].Priority]
	})
	return recs
}

func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
