package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
	toolstore "github.com/risk-digest/risk-digest/pkg/store/tools"
)

// ErrNotFound is returned when no tool matches the requested ID.
var ErrNotFound = errors.New("tool not found")

// Directory exposes the security tools catalog.
type Directory interface {
	All(ctx context.Context) ([]domain.Tool, error)
	ByID(ctx context.Context, id string) (*domain.Tool, error)
	Categories(ctx context.Context) ([]string, error)
	// Filter narrows the catalog by category ("" or "All" keeps every
	// category) and a case-insensitive search over name, description
	// and tags.
	Filter(ctx context.Context, category, search string) ([]domain.Tool, error)
}

type directory struct {
	store toolstore.Store
}

func NewDirectory(store toolstore.Store) Directory {
	return &directory{store: store}
}

func (d *directory) All(ctx context.Context) ([]domain.Tool, error) {
	return d.store.All(ctx)
}

func (d *directory) ByID(ctx context.Context, id string) (*domain.Tool, error) {
	tools, err := d.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tools: %w", err)
	}
	for _, tool := range tools {
		if tool.ID == id {
			return &tool, nil
		}
	}
	return nil, ErrNotFound
}

func (d *directory) Categories(ctx context.Context) ([]string, error) {
	tools, err := d.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tools: %w", err)
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, tool := range tools {
		if !seen[tool.Category] {
			seen[tool.Category] = true
			categories = append(categories, tool.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (d *directory) Filter(ctx context.Context, category, search string) ([]domain.Tool, error) {
	tools, err := d.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tools: %w", err)
	}

	filtered := make([]domain.Tool, 0, len(tools))
	needle := strings.ToLower(search)
	for _, tool := range tools {
		if category != "" && category != "All" && tool.Category != category {
			continue
		}
		if needle != "" && !matches(tool, needle) {
			continue
		}
		filtered = append(filtered, tool)
	}
	return filtered, nil
}

func matches(tool domain.Tool, needle string) bool {
	if strings.Contains(strings.ToLower(tool.Name), needle) ||
		strings.Contains(strings.ToLower(tool.Description), needle) {
		return true
	}
	for _, tag := range tool.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
