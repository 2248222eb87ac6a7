package memory

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

//go:embed seed/*.json
var seedFS embed.FS

// Seed is the mock data set the repositories start from.
type Seed struct {
	Ideas      []domain.Idea
	Reviews    []domain.Review
	Changelog  []domain.ChangelogEntry
	Activities []domain.Activity
	Projects   []domain.Project
}

// stamp accepts any timestamp form domain.ParseTimestamp understands.
type stamp time.Time

func (s *stamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = stamp{}
		return nil
	}
	t, err := domain.ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*s = stamp(t)
	return nil
}

type seedIdea struct {
	ID           int64  `json:"Id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Votes        int    `json:"votes"`
	HasVoted     bool   `json:"hasVoted"`
	CommentCount int    `json:"commentCount"`
	CreatedAt    stamp  `json:"createdAt"`
	UserID       string `json:"user_id"`
	ProjectID    string `json:"project_id"`
}

type seedReview struct {
	ID           int64  `json:"Id"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    stamp  `json:"createdAt"`
	ProjectID    string `json:"project_id"`
}

type seedChangelog struct {
	ID          int64  `json:"Id"`
	Version     string `json:"version"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt stamp  `json:"publishedAt"`
	ProjectID   string `json:"project_id"`
}

type seedActivity struct {
	ID          int64  `json:"Id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IdeaTitle   string `json:"ideaTitle"`
	IdeaStatus  string `json:"ideaStatus"`
	NewStatus   string `json:"newStatus"`
	VoteCount   int    `json:"voteCount"`
	Version     string `json:"version"`
	CreatedAt   stamp  `json:"createdAt"`
}

type seedProject struct {
	ID           int64  `json:"Id"`
	Name         string `json:"Name"`
	Logo         string `json:"logo"`
	PrimaryColor string `json:"primaryColor"`
	UserID       string `json:"userId"`
	CreatedAt    stamp  `json:"createdAt"`
}

// LoadSeed decodes the embedded mock data.
func LoadSeed() (Seed, error) {
	var (
		s          Seed
		ideas      []seedIdea
		reviews    []seedReview
		changelog  []seedChangelog
		activities []seedActivity
		projects   []seedProject
	)

	files := []struct {
		name string
		dst  any
	}{
		{"seed/ideas.json", &ideas},
		{"seed/reviews.json", &reviews},
		{"seed/changelog.json", &changelog},
		{"seed/activities.json", &activities},
		{"seed/projects.json", &projects},
	}
	for _, f := range files {
		b, err := seedFS.ReadFile(f.name)
		if err != nil {
			return Seed{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return Seed{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	for _, i := range ideas {
		s.Ideas = append(s.Ideas, domain.Idea{
			ID:           i.ID,
			Title:        i.Title,
			Description:  i.Description,
			Category:     domain.IdeaCategory(i.Category),
			Status:       domain.IdeaStatus(i.Status),
			Votes:        i.Votes,
			HasVoted:     i.HasVoted,
			CommentCount: i.CommentCount,
			CreatedAt:    time.Time(i.CreatedAt),
			UserID:       i.UserID,
			ProjectID:    i.ProjectID,
		})
	}
	for _, r := range reviews {
		s.Reviews = append(s.Reviews, domain.Review{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Rating:       r.Rating,
			Comment:      r.Comment,
			CreatedAt:    time.Time(r.CreatedAt),
			ProjectID:    r.ProjectID,
		})
	}
	for _, c := range changelog {
		s.Changelog = append(s.Changelog, domain.ChangelogEntry{
			ID:          c.ID,
			Version:     c.Version,
			Title:       c.Title,
			Content:     c.Content,
			PublishedAt: time.Time(c.PublishedAt),
			ProjectID:   c.ProjectID,
		})
	}
	for _, a := range activities {
		s.Activities = append(s.Activities, domain.Activity{
			ID:          a.ID,
			Type:        domain.ActivityType(a.Type),
			Description: a.Description,
			IdeaTitle:   a.IdeaTitle,
			IdeaStatus:  domain.IdeaStatus(a.IdeaStatus),
			NewStatus:   domain.IdeaStatus(a.NewStatus),
			VoteCount:   a.VoteCount,
			Version:     a.Version,
			CreatedAt:   time.Time(a.CreatedAt),
		})
	}
	for _, p := range projects {
		s.Projects = append(s.Projects, domain.Project{
			ID:           p.ID,
			Name:         p.Name,
			Logo:         p.Logo,
			PrimaryColor: p.PrimaryColor,
			UserID:       p.UserID,
			CreatedAt:    time.Time(p.CreatedAt),
		})
	}
	return s, nil
}
