package domain

import "time"

// DefaultReleaseVersion is assigned to changelog entries created without one.
const DefaultReleaseVersion = "1.0.0"

// ChangelogEntry is a published release note.
type ChangelogEntry struct {
	ID          int64
	Version     string
	Title       string
	Content     string
	PublishedAt time.Time
	ProjectID   string
}

// WithDefaults fills version and publish time for a new entry.
func (e ChangelogEntry) WithDefaults(now time.Time) ChangelogEntry {
	if e.Version == "" {
		e.Version = DefaultReleaseVersion
	}
	if e.PublishedAt.IsZero() {
		e.PublishedAt = now
	}
	e.PublishedAt = NormalizeTime(e.PublishedAt)
	return e
}

// ChangelogPatch is a partial update of a ChangelogEntry.
type ChangelogPatch struct {
	Version     Field[string]
	Title       Field[string]
	Content     Field[string]
	PublishedAt Field[time.Time]
	ProjectID   Field[string]
}

func (p ChangelogPatch) Apply(e ChangelogEntry) ChangelogEntry {
	e.Version = p.Version.Or(e.Version)
	e.Title = p.Title.Or(e.Title)
	e.Content = p.Content.Or(e.Content)
	e.PublishedAt = NormalizeTime(p.PublishedAt.Or(e.PublishedAt))
	e.ProjectID = p.ProjectID.Or(e.ProjectID)
	return e
}

func (p ChangelogPatch) IsEmpty() bool {
	return !p.Version.IsSet() && !p.Title.IsSet() && !p.Content.IsSet() &&
		!p.PublishedAt.IsSet() && !p.ProjectID.IsSet()
}
