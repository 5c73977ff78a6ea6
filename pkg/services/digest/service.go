package digest

import (
	"context"
	"errors"
	"fmt"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
	digeststore "github.com/risk-digest/risk-digest/pkg/store/digest"
)

// Service is the read side of the digest archive consumed by the web
// handlers.
type Service interface {
	Index(ctx context.Context) ([]string, error)
	Latest(ctx context.Context) (*domain.Digest, error)
	Get(ctx context.Context, date string) (*domain.Digest, error)
	// History returns up to limit date/headline summaries, newest first.
	// Unreadable digests are skipped rather than failing the listing.
	History(ctx context.Context, limit int) ([]domain.DigestSummary, error)
	// Activity returns up to limit per-date item counts, oldest first,
	// for the timeline chart.
	Activity(ctx context.Context, limit int) ([]domain.DigestActivity, error)
}

type service struct {
	store digeststore.Store
}

func NewService(store digeststore.Store) Service {
	return &service{store: store}
}

func (s *service) Index(ctx context.Context) ([]string, error) {
	return s.store.Index(ctx)
}

func (s *service) Latest(ctx context.Context) (*domain.Digest, error) {
	index, err := s.store.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list digests: %w", err)
	}
	if len(index) == 0 {
		return nil, digeststore.ErrNotFound
	}
	return s.store.Get(ctx, index[0])
}

func (s *service) Get(ctx context.Context, date string) (*domain.Digest, error) {
	return s.store.Get(ctx, date)
}

func (s *service) History(ctx context.Context, limit int) ([]domain.DigestSummary, error) {
	index, err := s.store.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list digests: %w", err)
	}
	if limit > 0 && len(index) > limit {
		index = index[:limit]
	}

	summaries := make([]domain.DigestSummary, 0, len(index))
	for _, date := range index {
		d, err := s.store.Get(ctx, date)
		if err != nil {
			if errors.Is(err, digeststore.ErrNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, domain.DigestSummary{
			Date:     d.Date,
			Headline: d.Headline,
		})
	}
	return summaries, nil
}

func (s *service) Activity(ctx context.Context, limit int) ([]domain.DigestActivity, error) {
	index, err := s.store.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list digests: %w", err)
	}
	if limit > 0 && len(index) > limit {
		index = index[:limit]
	}

	// Index is newest first; the timeline reads left to right.
	activity := make([]domain.DigestActivity, 0, len(index))
	for i := len(index) - 1; i >= 0; i-- {
		d, err := s.store.Get(ctx, index[i])
		if err != nil {
			if errors.Is(err, digeststore.ErrNotFound) {
				continue
			}
			return nil, err
		}
		activity = append(activity, domain.DigestActivity{
			Date:  d.Date,
			Items: len(d.Items),
		})
	}
	return activity, nil
}
