package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
)

type Store interface {
	All(ctx context.Context) ([]domain.Tool, error)
}

// fileStore reads the tool directory from a single JSON file. A missing
// file is an empty directory, not an error.
type fileStore struct {
	path string
}

func NewStore(path string) Store {
	return &fileStore{path: path}
}

type capabilitiesRecord struct {
	Scanning      float64 `json:"scanning"`
	ManualTesting float64 `json:"manual_testing"`
	Automation    float64 `json:"automation"`
	Reporting     float64 `json:"reporting"`
	EaseOfUse     float64 `json:"ease_of_use"`
}

type toolRecord struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Description  string             `json:"description"`
	Website      string             `json:"website"`
	Pricing      string             `json:"pricing"`
	Tags         []string           `json:"tags"`
	Capabilities capabilitiesRecord `json:"capabilities"`
}

func (s *fileStore) All(_ context.Context) ([]domain.Tool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Tool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tools file: %w", err)
	}

	var records []toolRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse tools file: %w", err)
	}

	tools := make([]domain.Tool, 0, len(records))
	for _, r := range records {
		tools = append(tools, domain.Tool{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Description: r.Description,
			Website:     r.Website,
			Pricing:     r.Pricing,
			Tags:        r.Tags,
			Capabilities: domain.ToolCapabilities{
				Scanning:      r.Capabilities.Scanning,
				ManualTesting: r.Capabilities.ManualTesting,
				Automation:    r.Capabilities.Automation,
				Reporting:     r.Capabilities.Reporting,
				EaseOfUse:     r.Capabilities.EaseOfUse,
			},
		})
	}
	return tools, nil
}
