package domain

import (
	"strings"
	"time"
)

// Signup is what the gate form collects. Nothing is verified beyond presence.
type Signup struct {
	Name  string
	Email string
	Age   string
}

// Validate requires every field to be non-empty. Whitespace counts as input.
func (s Signup) Validate() error {
	if s.Name == "" || s.Email == "" || s.Age == "" {
		return ErrIncompleteSignup
	}
	return nil
}

// Profile is the unlocked dashboard's owner for the rest of the run.
type Profile struct {
	Name      string
	Email     string
	Age       string
	SessionID string
	JoinedAt  time.Time
}

// NewProfile validates the signup and creates a profile from it.
func NewProfile(s Signup) (*Profile, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Profile{
		Name:      s.Name,
		Email:     s.Email,
		Age:       s.Age,
		SessionID: generateID(),
		JoinedAt:  time.Now(),
	}, nil
}

// FirstName is used in the dashboard greeting.
func (p *Profile) FirstName() string {
	if p == nil {
		return ""
	}
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}
