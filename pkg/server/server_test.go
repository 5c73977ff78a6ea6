package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/risk-digest/risk-digest/pkg/models/api"
	"github.com/risk-digest/risk-digest/pkg/models/domain"
	assessmentsvc "github.com/risk-digest/risk-digest/pkg/services/assessment"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDigestService struct {
	mock.Mock
}

func (m *mockDigestService) Index(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockDigestService) Latest(ctx context.Context) (*domain.Digest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Digest), args.Error(1)
}

func (m *mockDigestService) Get(ctx context.Context, date string) (*domain.Digest, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Digest), args.Error(1)
}

func (m *mockDigestService) History(ctx context.Context, limit int) ([]domain.DigestSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DigestSummary), args.Error(1)
}

func (m *mockDigestService) Activity(ctx context.Context, limit int) ([]domain.DigestActivity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DigestActivity), args.Error(1)
}

type mockThreatFeed struct {
	mock.Mock
}

func (m *mockThreatFeed) Recent(ctx context.Context, days, limit int) ([]domain.Threat, error) {
	args := m.Called(ctx, days, limit)
	return args.Get(0).([]domain.Threat), args.Error(1)
}

func (m *mockThreatFeed) SeverityDistribution(ctx context.Context, days int) (domain.SeverityDistribution, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(domain.SeverityDistribution), args.Error(1)
}

func (m *mockThreatFeed) CategoryDistribution(ctx context.Context, days int) (domain.CategoryDistribution, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(domain.CategoryDistribution), args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) All(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *mockDirectory) ByID(ctx context.Context, id string) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *mockDirectory) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockDirectory) Filter(ctx context.Context, category, search string) ([]domain.Tool, error) {
	args := m.Called(ctx, category, search)
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockDigests := new(mockDigestService)
	mockFeed := new(mockThreatFeed)
	mockTools := new(mockDirectory)

	config := Config{
		Addr: ":8000",
		Dependencies: Dependencies{
			Digests:    mockDigests,
			Assessment: assessmentsvc.NewCalculator(),
			Threats:    mockFeed,
			Tools:      mockTools,
			Logger:     logger,
		},
	}
	router, err := ConfigureRouter(config)
	require.NoError(t, err)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	sample := &domain.Digest{
		Date:     "2025-08-22",
		Headline: "Patch early, patch often",
		Items: []domain.DigestItem{
			{Type: domain.ItemTip, Title: "Rotate credentials", Why: "Stale keys leak", Fix: "Automate rotation"},
		},
	}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func()
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:   "ListDigests",
			method: http.MethodGet,
			path:   "/api/v1/digests",
			setupMocks: func() {
				mockDigests.On("History", mock.Anything, 0).
					Return([]domain.DigestSummary{{Date: "2025-08-22", Headline: "Patch early, patch often"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var summaries []api.DigestSummary
				require.NoError(t, json.Unmarshal(body, &summaries))
				assert.Equal(t, []api.DigestSummary{{Date: "2025-08-22", Headline: "Patch early, patch often"}}, summaries)
			},
		},
		{
			name:   "LatestDigest",
			method: http.MethodGet,
			path:   "/api/v1/digests/latest",
			setupMocks: func() {
				mockDigests.On("Latest", mock.Anything).Return(sample, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var digest api.Digest
				require.NoError(t, json.Unmarshal(body, &digest))
				assert.Equal(t, "2025-08-22", digest.Date)
				require.Len(t, digest.Items, 1)
				assert.Equal(t, "tip", digest.Items[0].Type)
			},
		},
		{
			name:   "DigestNotFound",
			method: http.MethodGet,
			path:   "/api/v1/digests/2020-01-01",
			setupMocks: func() {
				mockDigests.On("Get", mock.Anything, "2020-01-01").
					Return(nil, digeststore.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				var apiErr api.Error
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, "digest not found", apiErr.Error)
			},
		},
		{
			name:           "AssessmentQuestions",
			method:         http.MethodGet,
			path:           "/api/v1/assessment/questions",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var questions map[string][]api.Question
				require.NoError(t, json.Unmarshal(body, &questions))
				assert.Len(t, questions, 6)
				assert.Len(t, questions["access_control"], 4)
			},
		},
		{
			name:           "AssessmentScore",
			method:         http.MethodPost,
			path:           "/api/v1/assessment/score",
			body:           `{"answers": {}, "industry": "fintech"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var report api.ScoreReport
				require.NoError(t, json.Unmarshal(body, &report))
				assert.Equal(t, 0.0, report.OverallScore)
				assert.Equal(t, "F", report.Grade)
				assert.Len(t, report.RadarData.Labels, 6)
			},
		},
		{
			name:           "AssessmentScore_BadBody",
			method:         http.MethodPost,
			path:           "/api/v1/assessment/score",
			body:           `{not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			check:          func(t *testing.T, body []byte) {},
		},
		{
			name:   "RecentThreats",
			method: http.MethodGet,
			path:   "/api/v1/threats/recent?days=7&limit=2",
			setupMocks: func() {
				mockFeed.On("Recent", mock.Anything, 7, 2).
					Return([]domain.Threat{{ID: "CVE-2025-0001", Severity: "HIGH", CVSSScore: 8.1}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var threats []api.Threat
				require.NoError(t, json.Unmarshal(body, &threats))
				require.Len(t, threats, 1)
				assert.Equal(t, "CVE-2025-0001", threats[0].ID)
			},
		},
		{
			name:   "ListTools",
			method: http.MethodGet,
			path:   "/api/v1/tools?category=Web+Testing&search=proxy",
			setupMocks: func() {
				mockTools.On("Filter", mock.Anything, "Web Testing", "proxy").
					Return([]domain.Tool{{ID: "burp", Name: "Burp Suite", Category: "Web Testing"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var tools []api.Tool
				require.NoError(t, json.Unmarshal(body, &tools))
				require.Len(t, tools, 1)
				assert.Equal(t, "burp", tools[0].ID)
			},
		},
		{
			name:   "SeverityChart",
			method: http.MethodGet,
			path:   "/api/v1/charts/severity",
			setupMocks: func() {
				mockFeed.On("SeverityDistribution", mock.Anything, 30).
					Return(domain.SeverityDistribution{
						Labels:      []string{"Critical", "High", "Medium", "Low"},
						Counts:      []int{1, 2, 3, 4},
						Percentages: []float64{10, 20, 30, 40},
						Total:       10,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var desc map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &desc))
				assert.Equal(t, "doughnut", desc["kind"])
			},
		},
		{
			name:   "TimelineChart",
			method: http.MethodGet,
			path:   "/api/v1/charts/timeline",
			setupMocks: func() {
				mockDigests.On("Activity", mock.Anything, 30).
					Return([]domain.DigestActivity{{Date: "2025-08-21", Items: 5}, {Date: "2025-08-22", Items: 7}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var desc map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &desc))
				assert.Equal(t, "line", desc["kind"])
				assert.Equal(t, []interface{}{"2025-08-21", "2025-08-22"}, desc["labels"])
			},
		},
		{
			name:           "Health",
			method:         http.MethodGet,
			path:           "/healthz",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var health api.Health
				require.NoError(t, json.Unmarshal(body, &health))
				assert.Equal(t, "ok", health.Status)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			tc.check(t, body)
		})
	}
}
