package digest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
)

// ErrNotFound is returned when no digest exists for the requested date.
var ErrNotFound = errors.New("digest not found")

// dateFormat guards the filename derived from the date parameter.
var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Store interface {
	// Index returns all digest dates, newest first.
	Index(ctx context.Context) ([]string, error)
	Get(ctx context.Context, date string) (*domain.Digest, error)
	// Save writes the digest file and prepends its date to the index
	// when not already present.
	Save(ctx context.Context, d domain.Digest) error
	Exists(date string) bool
}

// fileStore keeps one JSON file per digest next to an index.json holding
// the newest-first date list.
type fileStore struct {
	dir string
}

func NewStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create digests directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

type itemRecord struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Why   string `json:"why"`
	Fix   string `json:"fix"`
}

type digestRecord struct {
	Date     string       `json:"date"`
	Headline string       `json:"headline"`
	Items    []itemRecord `json:"digest_items"`
}

func (s *fileStore) indexPath() string {
	return filepath.Join(s.dir, "index.json")
}

func (s *fileStore) digestPath(date string) string {
	return filepath.Join(s.dir, date+".json")
}

func (s *fileStore) Index(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.indexPath())
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read digest index: %w", err)
	}

	var index []string
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse digest index: %w", err)
	}
	return index, nil
}

func (s *fileStore) Get(_ context.Context, date string) (*domain.Digest, error) {
	if !dateFormat.MatchString(date) {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(s.digestPath(date))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read digest %s: %w", date, err)
	}

	var record digestRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse digest %s: %w", date, err)
	}

	d := domain.Digest{
		Date:     record.Date,
		Headline: record.Headline,
		Items:    make([]domain.DigestItem, 0, len(record.Items)),
	}
	for _, item := range record.Items {
		d.Items = append(d.Items, domain.DigestItem{
			Type:  domain.ItemType(item.Type),
			Title: item.Title,
			Why:   item.Why,
			Fix:   item.Fix,
		})
	}
	return &d, nil
}

func (s *fileStore) Save(ctx context.Context, d domain.Digest) error {
	if !dateFormat.MatchString(d.Date) {
		return fmt.Errorf("invalid digest date %q, expected YYYY-MM-DD", d.Date)
	}

	record := digestRecord{
		Date:     d.Date,
		Headline: d.Headline,
		Items:    make([]itemRecord, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		record.Items = append(record.Items, itemRecord{
			Type:  string(item.Type),
			Title: item.Title,
			Why:   item.Why,
			Fix:   item.Fix,
		})
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode digest %s: %w", d.Date, err)
	}
	if err := os.WriteFile(s.digestPath(d.Date), data, 0o644); err != nil {
		return fmt.Errorf("failed to write digest %s: %w", d.Date, err)
	}

	return s.updateIndex(ctx, d.Date)
}

func (s *fileStore) updateIndex(ctx context.Context, date string) error {
	index, err := s.Index(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(index, date) {
		return nil
	}

	index = append([]string{date}, index...)
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode digest index: %w", err)
	}
	if err := os.WriteFile(s.indexPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write digest index: %w", err)
	}
	return nil
}

func (s *fileStore) Exists(date string) bool {
	if !dateFormat.MatchString(date) {
		return false
	}
	_, err := os.Stat(s.digestPath(date))
	return err == nil
}
