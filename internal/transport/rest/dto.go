package rest

import (
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type ideaJSON struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	Votes        int       `json:"votes"`
	HasVoted     bool      `json:"hasVoted"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UserID       string    `json:"userId,omitempty"`
	ProjectID    string    `json:"projectId,omitempty"`
}

func toIdeaJSON(i domain.Idea) ideaJSON {
	return ideaJSON{
		ID:           i.ID,
		Title:        i.Title,
		Description:  i.Description,
		Category:     string(i.Category),
		Status:       string(i.Status),
		Votes:        i.Votes,
		HasVoted:     i.HasVoted,
		CommentCount: i.CommentCount,
		CreatedAt:    i.CreatedAt,
		UserID:       i.UserID,
		ProjectID:    i.ProjectID,
	}
}

type reviewJSON struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	ProjectID    string    `json:"projectId,omitempty"`
}

func toReviewJSON(r domain.Review) reviewJSON {
	return reviewJSON{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		ProjectID:    r.ProjectID,
	}
}

type changelogJSON struct {
	ID          int64     `json:"id"`
	Version     string    `json:"version"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	ProjectID   string    `json:"projectId,omitempty"`
}

func toChangelogJSON(e domain.ChangelogEntry) changelogJSON {
	return changelogJSON{
		ID:          e.ID,
		Version:     e.Version,
		Title:       e.Title,
		Content:     e.Content,
		PublishedAt: e.PublishedAt,
		ProjectID:   e.ProjectID,
	}
}

type activityJSON struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Headline    string    `json:"headline"`
	Description string    `json:"description,omitempty"`
	IdeaTitle   string    `json:"ideaTitle,omitempty"`
	IdeaStatus  string    `json:"ideaStatus,omitempty"`
	NewStatus   string    `json:"newStatus,omitempty"`
	VoteCount   int       `json:"voteCount,omitempty"`
	Version     string    `json:"version,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toActivityJSON(a domain.Activity) activityJSON {
	return activityJSON{
		ID:          a.ID,
		Type:        string(a.Type),
		Headline:    a.Headline(),
		Description: a.Description,
		IdeaTitle:   a.IdeaTitle,
		IdeaStatus:  string(a.IdeaStatus),
		NewStatus:   string(a.NewStatus),
		VoteCount:   a.VoteCount,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
	}
}

type projectJSON struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Logo         string    `json:"logo"`
	PrimaryColor string    `json:"primaryColor"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toProjectJSON(p domain.Project) projectJSON {
	return projectJSON{
		ID:           p.ID,
		Name:         p.Name,
		Logo:         p.Logo,
		PrimaryColor: p.PrimaryColor,
		UserID:       p.UserID,
		CreatedAt:    p.CreatedAt,
	}
}

// mapSlice converts every element with fn, never returning nil.
func mapSlice[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
