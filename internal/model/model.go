package model

import "encoding/json"

// User is the account profile returned by the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// UnmarshalJSON accepts the identity under either "id" or "_id".
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		*plain
		MongoID string `json:"_id"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.MongoID
	}
	return nil
}

// Registration is the sign-up form. ConfirmPassword is checked locally and
// never sent to the backend.
type Registration struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is the login response.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ActivityType classifies an activity log entry.
type ActivityType string

const (
	ActivityCreated    ActivityType = "created"
	ActivityUpdated    ActivityType = "updated"
	ActivityDownloaded ActivityType = "downloaded"
	ActivityOther      ActivityType = "other"
)

// ParseActivityType maps a backend activity_type onto the known set.
// Anything unrecognized, including "deleted", is ActivityOther.
func ParseActivityType(s string) ActivityType {
	switch ActivityType(s) {
	case ActivityCreated, ActivityUpdated, ActivityDownloaded:
		return ActivityType(s)
	default:
		return ActivityOther
	}
}

// ActivityRecord is a read-only activity log entry produced by the backend.
type ActivityRecord struct {
	ID        string       `json:"id"`
	ResumeID  string       `json:"resume_id,omitempty"`
	Type      ActivityType `json:"-"`
	RawType   string       `json:"activity_type"`
	Details   string       `json:"details"`
	Timestamp Timestamp    `json:"created_at"`
}

func (a *ActivityRecord) UnmarshalJSON(b []byte) error {
	type plain ActivityRecord
	if err := json.Unmarshal(b, (*plain)(a)); err != nil {
		return err
	}
	a.Type = ParseActivityType(a.RawType)
	return nil
}
