package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID         uuid.UUID       `json:"id"`
	UserID     string          `json:"user_id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone"`
	Location   *string         `json:"location"`
	Bio        *string         `json:"bio"`
	Skills     []string        `json:"skills"`
	Experience json.RawMessage `json:"experience"`
	Education  json.RawMessage `json:"education"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProfileUpsert replaces the editable columns of the row owned by UserID.
// Experience and education are left untouched on conflict.
type ProfileUpsert struct {
	UserID    string
	FullName  string
	Email     string
	Phone     *string
	Location  *string
	Bio       *string
	Skills    []string
	UpdatedAt time.Time
}

type ProfileRepository interface {
	// GetByUserID returns nil, nil when the user has not saved a profile yet.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, p *ProfileUpsert) (*Profile, error)
}

const skillsSeparator = ", "

// JoinSkills renders the skills list for the comma-separated form input.
func JoinSkills(skills []string) string {
	return strings.Join(skills, skillsSeparator)
}

// SplitSkills parses the form input back into a list, trimming each element.
// Empty elements ("React,,Go", trailing commas, blank input) are dropped.
func SplitSkills(input string) []string {
	skills := []string{}
	for _, part := range strings.Split(input, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
