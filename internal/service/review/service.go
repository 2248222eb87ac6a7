// Package review manages customer reviews and their rating summary.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type reviewRepo interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetByID(ctx context.Context, id int64) (domain.Review, error)
	Create(ctx context.Context, r domain.Review) (domain.Review, error)
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides review operations.
type Service struct {
	reviews reviewRepo
	log     *slog.Logger
}

// NewService creates a new review service.
func NewService(log *slog.Logger, reviews reviewRepo) *Service {
	return &Service{
		reviews: reviews,
		log:     log.With("service", "review"),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("get review: %w", err)
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Review, error) {
	if err := input.Validate(); err != nil {
		return domain.Review{}, err
	}

	r, err := s.reviews.Create(ctx, domain.Review{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Rating:       input.Rating,
		Comment:      strings.TrimSpace(input.Comment),
		ProjectID:    input.ProjectID,
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}

	s.log.InfoContext(ctx, "review created", slog.Int64("review_id", r.ID), slog.Int("rating", r.Rating))
	return r, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Review, error) {
	if err := input.Validate(); err != nil {
		return domain.Review{}, err
	}

	r, err := s.reviews.Update(ctx, input.ID, input.Patch)
	if err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}

	s.log.InfoContext(ctx, "review updated", slog.Int64("review_id", r.ID))
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted", slog.Int64("review_id", id))
	return nil
}

// Summary aggregates the ratings of all reviews.
type Summary struct {
	Count   int
	Average float64 // rounded to one decimal; 0 without reviews
	// Distribution counts reviews per rating; index 0 is rating 1.
	Distribution [domain.MaxRating]int
}

// Summary computes count, average and per-rating distribution.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	reviews, err := s.reviews.GetAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize reviews: %w", err)
	}
	return Summarize(reviews), nil
}

// Summarize is the pure part of Summary. Ratings outside 1..5 count toward
// the average but not the distribution.
func Summarize(reviews []domain.Review) Summary {
	var sum Summary
	if len(reviews) == 0 {
		return sum
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
		if r.Rating >= domain.MinRating && r.Rating <= domain.MaxRating {
			sum.Distribution[r.Rating-domain.MinRating]++
		}
	}
	sum.Count = len(reviews)
	sum.Average = math.Round(float64(total)/float64(len(reviews))*10) / 10
	return sum
}
