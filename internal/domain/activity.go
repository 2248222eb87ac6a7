package domain

import (
	"fmt"
	"strings"
	"time"
)

// Activity is one entry of the dashboard feed. The idea and release fields
// are display copies, filled only for the types that mention them.
type Activity struct {
	ID          int64
	Type        ActivityType
	Description string
	IdeaTitle   string
	IdeaStatus  IdeaStatus
	NewStatus   IdeaStatus
	VoteCount   int
	Version     string
	CreatedAt   time.Time
}

// Headline renders the one-line feed text for the activity's type. Unknown
// types fall back to the stored description.
func (a Activity) Headline() string {
	switch a.Type {
	case ActivityIdeaCreated:
		return fmt.Sprintf("New idea %q was submitted", a.IdeaTitle)
	case ActivityIdeaVoted:
		return fmt.Sprintf("%q received %d votes", a.IdeaTitle, a.VoteCount)
	case ActivityIdeaCommented:
		return fmt.Sprintf("New comment on %q", a.IdeaTitle)
	case ActivityStatusChanged:
		return fmt.Sprintf("%q status changed to %s", a.IdeaTitle, strings.ReplaceAll(string(a.NewStatus), "-", " "))
	case ActivityChangelogPublished:
		return fmt.Sprintf("Changelog %s was published", a.Version)
	}
	return a.Description
}

// ActivityPatch is a partial update of an Activity.
type ActivityPatch struct {
	Type        Field[ActivityType]
	Description Field[string]
	IdeaTitle   Field[string]
	IdeaStatus  Field[IdeaStatus]
	NewStatus   Field[IdeaStatus]
	VoteCount   Field[int]
	Version     Field[string]
	CreatedAt   Field[time.Time]
}

func (p ActivityPatch) Apply(a Activity) Activity {
	a.Type = p.Type.Or(a.Type)
	a.Description = p.Description.Or(a.Description)
	a.IdeaTitle = p.IdeaTitle.Or(a.IdeaTitle)
	a.IdeaStatus = p.IdeaStatus.Or(a.IdeaStatus)
	a.NewStatus = p.NewStatus.Or(a.NewStatus)
	a.VoteCount = p.VoteCount.Or(a.VoteCount)
	a.Version = p.Version.Or(a.Version)
	a.CreatedAt = NormalizeTime(p.CreatedAt.Or(a.CreatedAt))
	return a
}

func (p ActivityPatch) IsEmpty() bool {
	return !p.Type.IsSet() && !p.Description.IsSet() && !p.IdeaTitle.IsSet() &&
		!p.IdeaStatus.IsSet() && !p.NewStatus.IsSet() && !p.VoteCount.IsSet() &&
		!p.Version.IsSet() && !p.CreatedAt.IsSet()
}
