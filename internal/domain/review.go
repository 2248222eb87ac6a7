package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of the product.
type Review struct {
	ID           int64
	CustomerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	ProjectID    string
}

// ReviewPatch is a partial update of a Review.
type ReviewPatch struct {
	CustomerName Field[string]
	Rating       Field[int]
	Comment      Field[string]
	CreatedAt    Field[time.Time]
	ProjectID    Field[string]
}

func (p ReviewPatch) Apply(r Review) Review {
	r.CustomerName = p.CustomerName.Or(r.CustomerName)
	r.Rating = p.Rating.Or(r.Rating)
	r.Comment = p.Comment.Or(r.Comment)
	r.CreatedAt = NormalizeTime(p.CreatedAt.Or(r.CreatedAt))
	r.ProjectID = p.ProjectID.Or(r.ProjectID)
	return r
}

func (p ReviewPatch) IsEmpty() bool {
	return !p.CustomerName.IsSet() && !p.Rating.IsSet() && !p.Comment.IsSet() &&
		!p.CreatedAt.IsSet() && !p.ProjectID.IsSet()
}
