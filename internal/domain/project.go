package domain

import "time"

// DefaultProjectOwner owns projects created without an explicit user.
const DefaultProjectOwner = "user-1"

// Project is a workspace the feedback belongs to.
type Project struct {
	ID           int64
	Name         string
	Logo         string
	PrimaryColor string
	UserID       string
	CreatedAt    time.Time
}

// ProjectPatch is a partial update of a Project.
type ProjectPatch struct {
	Name         Field[string]
	Logo         Field[string]
	PrimaryColor Field[string]
	UserID       Field[string]
}

func (p ProjectPatch) Apply(pr Project) Project {
	pr.Name = p.Name.Or(pr.Name)
	pr.Logo = p.Logo.Or(pr.Logo)
	pr.PrimaryColor = p.PrimaryColor.Or(pr.PrimaryColor)
	pr.UserID = p.UserID.Or(pr.UserID)
	return pr
}

func (p ProjectPatch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Logo.IsSet() && !p.PrimaryColor.IsSet() && !p.UserID.IsSet()
}
