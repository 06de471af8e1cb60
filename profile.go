package amazonauth

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ProviderName is the default strategy identifier.
const ProviderName = "amazon"

// ProfileName holds the structured name parts of a profile. The current
// Amazon profile API returns only a single display name, so both parts
// stay empty; the fields exist to keep the profile shape uniform across
// strategies.
type ProfileName struct {
	FamilyName string `json:"familyName"`
	GivenName  string `json:"givenName"`
}

// ProfileEmail is a single email entry on a profile.
type ProfileEmail struct {
	Value string `json:"value"`
}

// ProfilePhoto is a single photo entry on a profile.
type ProfilePhoto struct {
	Value string `json:"value"`
}

// Profile is the normalized user profile built from the Amazon profile
// endpoint response. Emails and Photos are never nil.
type Profile struct {
	Provider    string          `json:"provider"`
	ID          string          `json:"id"`
	DisplayName string          `json:"displayName"`
	Name        ProfileName     `json:"name"`
	Emails      []ProfileEmail  `json:"emails"`
	Photos      []ProfilePhoto  `json:"photos"`
	Raw         json.RawMessage `json:"-"`
}

// amazonProfile mirrors the profile endpoint payload. The current API
// returns user_id, name and email; the legacy payload carried its own id
// field, which user_id takes precedence over.
type amazonProfile struct {
	UserID string `json:"user_id"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func normalizeProfile(raw []byte) (*Profile, error) {
	var ap amazonProfile
	if err := json.Unmarshal(raw, &ap); err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode profile: %w", err))
	}

	id := ap.UserID
	if id == "" {
		id = ap.ID
	}

	profile := &Profile{
		Provider:    ProviderName,
		ID:          id,
		DisplayName: ap.Name,
		Emails:      []ProfileEmail{},
		Photos:      []ProfilePhoto{},
		Raw:         json.RawMessage(raw),
	}
	if ap.Email != "" {
		profile.Emails = append(profile.Emails, ProfileEmail{Value: ap.Email})
	}

	return profile, nil
}
