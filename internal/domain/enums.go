package domain

// IdeaStatus is the roadmap position of an idea. Any status may follow any other.
type IdeaStatus string

const (
	IdeaStatusNotPlanned IdeaStatus = "not-planned"
	IdeaStatusPlanned    IdeaStatus = "planned"
	IdeaStatusInProgress IdeaStatus = "in-progress"
	IdeaStatusCompleted  IdeaStatus = "completed"
)

// IdeaStatuses lists statuses in roadmap column order.
var IdeaStatuses = []IdeaStatus{
	IdeaStatusNotPlanned,
	IdeaStatusPlanned,
	IdeaStatusInProgress,
	IdeaStatusCompleted,
}

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusNotPlanned, IdeaStatusPlanned, IdeaStatusInProgress, IdeaStatusCompleted:
		return true
	}
	return false
}

// IdeaCategory classifies an idea.
type IdeaCategory string

const (
	IdeaCategoryFeature     IdeaCategory = "feature"
	IdeaCategoryImprovement IdeaCategory = "improvement"
	IdeaCategoryBug         IdeaCategory = "bug"
	IdeaCategoryIntegration IdeaCategory = "integration"
	IdeaCategoryOther       IdeaCategory = "other"
)

func (c IdeaCategory) String() string { return string(c) }

func (c IdeaCategory) IsValid() bool {
	switch c {
	case IdeaCategoryFeature, IdeaCategoryImprovement, IdeaCategoryBug,
		IdeaCategoryIntegration, IdeaCategoryOther:
		return true
	}
	return false
}

// ActivityType identifies what an activity feed item describes.
type ActivityType string

const (
	ActivityIdeaCreated        ActivityType = "idea_created"
	ActivityIdeaVoted          ActivityType = "idea_voted"
	ActivityIdeaCommented      ActivityType = "idea_commented"
	ActivityStatusChanged      ActivityType = "status_changed"
	ActivityChangelogPublished ActivityType = "changelog_published"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityIdeaCreated, ActivityIdeaVoted, ActivityIdeaCommented,
		ActivityStatusChanged, ActivityChangelogPublished:
		return true
	}
	return false
}
