package domain

import "time"

// Idea is one feedback item on the board.
type Idea struct {
	ID           int64
	Title        string
	Description  string
	Category     IdeaCategory
	Status       IdeaStatus
	Votes        int
	HasVoted     bool
	CommentCount int
	CreatedAt    time.Time
	UserID       string
	ProjectID    string
}

// WithVoteToggled flips the viewer's vote and moves the counter with it.
func (i Idea) WithVoteToggled() Idea {
	if i.HasVoted {
		i.Votes--
		i.HasVoted = false
		if i.Votes < 0 {
			i.Votes = 0
		}
		return i
	}
	i.Votes++
	i.HasVoted = true
	return i
}

// WithDefaults fills the fields a newly created idea starts with.
func (i Idea) WithDefaults(now time.Time) Idea {
	if i.Category == "" {
		i.Category = IdeaCategoryFeature
	}
	if i.Status == "" {
		i.Status = IdeaStatusNotPlanned
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.CreatedAt = NormalizeTime(i.CreatedAt)
	return i
}

// IdeaPatch is a partial update of an Idea.
type IdeaPatch struct {
	Title        Field[string]
	Description  Field[string]
	Category     Field[IdeaCategory]
	Status       Field[IdeaStatus]
	Votes        Field[int]
	HasVoted     Field[bool]
	CommentCount Field[int]
	CreatedAt    Field[time.Time]
	UserID       Field[string]
	ProjectID    Field[string]
}

// IdeaPatchFrom returns a patch that sets every field to the values of i.
func IdeaPatchFrom(i Idea) IdeaPatch {
	return IdeaPatch{
		Title:        SetTo(i.Title),
		Description:  SetTo(i.Description),
		Category:     SetTo(i.Category),
		Status:       SetTo(i.Status),
		Votes:        SetTo(i.Votes),
		HasVoted:     SetTo(i.HasVoted),
		CommentCount: SetTo(i.CommentCount),
		CreatedAt:    SetTo(i.CreatedAt),
		UserID:       SetTo(i.UserID),
		ProjectID:    SetTo(i.ProjectID),
	}
}

// Apply returns i with every set field replaced.
func (p IdeaPatch) Apply(i Idea) Idea {
	i.Title = p.Title.Or(i.Title)
	i.Description = p.Description.Or(i.Description)
	i.Category = p.Category.Or(i.Category)
	i.Status = p.Status.Or(i.Status)
	i.Votes = p.Votes.Or(i.Votes)
	i.HasVoted = p.HasVoted.Or(i.HasVoted)
	i.CommentCount = p.CommentCount.Or(i.CommentCount)
	i.CreatedAt = NormalizeTime(p.CreatedAt.Or(i.CreatedAt))
	i.UserID = p.UserID.Or(i.UserID)
	i.ProjectID = p.ProjectID.Or(i.ProjectID)
	return i
}

// IsEmpty reports whether the patch changes nothing.
func (p IdeaPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.Category.IsSet() &&
		!p.Status.IsSet() && !p.Votes.IsSet() && !p.HasVoted.IsSet() &&
		!p.CommentCount.IsSet() && !p.CreatedAt.IsSet() && !p.UserID.IsSet() &&
		!p.ProjectID.IsSet()
}
