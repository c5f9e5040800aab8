package services

import (
	"log"

	"github.com/xvierd/focusflow/internal/domain"
)

// Gate is the cosmetic sign-up screen in front of the dashboard. It checks
// presence only.
type Gate struct {
	profile *domain.Profile
}

// NewGate creates a locked gate.
func NewGate() *Gate {
	return &Gate{}
}

// Submit unlocks the gate when name, email and age are all non-empty.
// A rejected submit leaves the gate as it was.
func (g *Gate) Submit(name, email, age string) (*domain.Profile, error) {
	profile, err := domain.NewProfile(domain.Signup{Name: name, Email: email, Age: age})
	if err != nil {
		return nil, err
	}
	g.profile = profile
	log.Printf("gate: unlocked session=%s", profile.SessionID)
	return profile, nil
}

// Unlocked reports whether a submit has succeeded since the last logout.
func (g *Gate) Unlocked() bool {
	return g.profile != nil
}

// Profile returns the signed-up profile, or nil while locked.
func (g *Gate) Profile() *domain.Profile {
	return g.profile
}

// Logout locks the gate again.
func (g *Gate) Logout() {
	if g.profile != nil {
		log.Printf("gate: logout session=%s", g.profile.SessionID)
	}
	g.profile = nil
}
