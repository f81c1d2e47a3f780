package card

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultRoleLabel is printed under the name when the profile has no caption.
const DefaultRoleLabel = "Real Estate Agent"

var ErrMissingName = errors.New("card: full name is required")

// AgentCardData is the contact record a card is rendered from.
// Blank optional fields are treated as absent.
type AgentCardData struct {
	FullName  string `json:"full_name"`
	RoleLabel string `json:"role_label"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Address   string `json:"address,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// Normalize trims every field and fills in the default role caption.
func (d AgentCardData) Normalize() AgentCardData {
	out := AgentCardData{
		FullName:  strings.TrimSpace(d.FullName),
		RoleLabel: strings.TrimSpace(d.RoleLabel),
		Phone:     strings.TrimSpace(d.Phone),
		Email:     strings.TrimSpace(d.Email),
		Website:   strings.TrimSpace(d.Website),
		Address:   strings.TrimSpace(d.Address),
		PhotoURL:  strings.TrimSpace(d.PhotoURL),
	}
	if out.RoleLabel == "" {
		out.RoleLabel = DefaultRoleLabel
	}
	return out
}

func (d AgentCardData) Validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return ErrMissingName
	}
	return nil
}

func (d AgentCardData) HasPhoto() bool {
	return strings.TrimSpace(d.PhotoURL) != ""
}

type Side string

const (
	Front Side = "front"
	Back  Side = "back"
)

func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Front, "":
		return Front, nil
	case Back:
		return Back, nil
	}
	return "", fmt.Errorf("card: unknown side %q", s)
}

func (s Side) String() string { return string(s) }
