package board

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// FilterAll lets every status or category through.
const FilterAll = "all"

// SortOrder selects the ordering of the projection.
type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortMostVotes  SortOrder = "most-votes"
	SortLeastVotes SortOrder = "least-votes"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortMostVotes, SortLeastVotes:
		return true
	}
	return false
}

// Filters narrows and orders the projection. Empty fields mean FilterAll
// and SortNewest.
type Filters struct {
	Status   string    `json:"status"`
	Category string    `json:"category"`
	Sort     SortOrder `json:"sort"`
}

// DefaultFilters shows everything, newest first.
func DefaultFilters() Filters {
	return Filters{Status: FilterAll, Category: FilterAll, Sort: SortNewest}
}

func (f Filters) normalized() Filters {
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.Category == "" {
		f.Category = FilterAll
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}
	return f
}

// Validate checks all fields and collects all errors.
func (f Filters) Validate() error {
	f = f.normalized()
	var errs []domain.FieldError

	if f.Status != FilterAll && !domain.IdeaStatus(f.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", f.Status)})
	}
	if f.Category != FilterAll && !domain.IdeaCategory(f.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", f.Category)})
	}
	if !f.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: fmt.Sprintf("unknown sort %q", f.Sort)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Project derives the display sequence from ideas. Stages always run in the
// order search, status, category, sort. The input is not modified.
func Project(ideas []domain.Idea, term string, f Filters) []domain.Idea {
	f = f.normalized()

	out := slices.Clone(ideas)
	out = keep(out, matchesTerm(term))
	if f.Status != FilterAll {
		out = keep(out, func(i domain.Idea) bool { return string(i.Status) == f.Status })
	}
	if f.Category != FilterAll {
		out = keep(out, func(i domain.Idea) bool { return string(i.Category) == f.Category })
	}
	slices.SortStableFunc(out, comparator(f.Sort))
	return out
}

func keep(ideas []domain.Idea, pred func(domain.Idea) bool) []domain.Idea {
	return slices.DeleteFunc(ideas, func(i domain.Idea) bool { return !pred(i) })
}

// matchesTerm is a case-insensitive substring match on title or description.
func matchesTerm(term string) func(domain.Idea) bool {
	needle := strings.ToLower(term)
	return func(i domain.Idea) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(i.Title), needle) ||
			strings.Contains(strings.ToLower(i.Description), needle)
	}
}

// comparator returns a three-way comparison; equal elements keep their
// collection order under a stable sort.
func comparator(s SortOrder) func(a, b domain.Idea) int {
	switch s {
	case SortOldest:
		return func(a, b domain.Idea) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortMostVotes:
		return func(a, b domain.Idea) int { return cmp.Compare(b.Votes, a.Votes) }
	case SortLeastVotes:
		return func(a, b domain.Idea) int { return cmp.Compare(a.Votes, b.Votes) }
	default:
		return func(a, b domain.Idea) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}
