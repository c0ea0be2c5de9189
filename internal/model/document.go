package model

import "encoding/json"

// ResumeDocument is the aggregate edited in the workspace and persisted by the backend.
// It is a pure domain model: no transport or storage concerns live here.
// ID is empty for an unsaved draft and is assigned by the backend on first create.
type ResumeDocument struct {
	ID           string        `json:"id,omitempty"`
	UserID       string        `json:"user_id,omitempty"`
	VersionName  string        `json:"version_name"`
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Skills       []string      `json:"skills"`
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
	Achievements []Achievement `json:"achievements"`
	Links        []Link        `json:"links"`
	CreatedAt    Timestamp     `json:"created_at"`
	UpdatedAt    Timestamp     `json:"updated_at"`
}

// PersonalInfo holds the header block of a resume.
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type Experience struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"_id,omitempty"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Project struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Period       string `json:"period"`
	Description  string `json:"description"`
	Link         string `json:"link"`
}

type Certificate struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	Date           string `json:"date"`
	CredentialLink string `json:"credentialLink"`
}

type Achievement struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Link is a {platform, url} pair rendered inline in the header.
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// NewDraft returns an empty, normalized draft. When user is not nil the
// name and email are pre-filled from the profile.
func NewDraft(user *User) ResumeDocument {
	var d ResumeDocument
	if user != nil {
		d.PersonalInfo.Name = user.FullName
		d.PersonalInfo.Email = user.Email
	}
	d.Normalize()
	return d
}

// IsSaved reports whether the document carries a backend identity.
func (d ResumeDocument) IsSaved() bool {
	return d.ID != ""
}

// Normalize replaces every nil list with an empty one so downstream
// consumers never have to handle absent sections.
func (d *ResumeDocument) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certificates == nil {
		d.Certificates = []Certificate{}
	}
	if d.Achievements == nil {
		d.Achievements = []Achievement{}
	}
	if d.Links == nil {
		d.Links = []Link{}
	}
}

// Clone returns a deep copy; list fields of the copy never alias the receiver.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = append([]Experience{}, d.Experience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]string{}, d.Skills...)
	out.Projects = append([]Project{}, d.Projects...)
	out.Certificates = append([]Certificate{}, d.Certificates...)
	out.Achievements = append([]Achievement{}, d.Achievements...)
	out.Links = append([]Link{}, d.Links...)
	return out
}

// UnmarshalJSON accepts the identity under either "id" or "_id" and
// normalizes the list fields.
func (d *ResumeDocument) UnmarshalJSON(b []byte) error {
	type plain ResumeDocument
	aux := struct {
		*plain
		MongoID string `json:"_id"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = aux.MongoID
	}
	d.Normalize()
	return nil
}
