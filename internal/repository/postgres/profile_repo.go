package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"muto-jobboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type profileRepo struct {
	db DBTX
}

func NewProfileRepository(db DBTX) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, full_name, email, phone, location, bio, skills,
	COALESCE(experience, '[]'::jsonb), COALESCE(education, '[]'::jsonb), created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p                     domain.Profile
		skills                []string
		experience, education []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Location, &p.Bio,
		pq.Array(&skills), &experience, &education, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	p.Experience = json.RawMessage(experience)
	p.Education = json.RawMessage(education)
	return &p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Upsert inserts or replaces the editable columns of the user's profile row.
// experience/education are not part of the form and survive an update.
func (r *profileRepo) Upsert(ctx context.Context, in *domain.ProfileUpsert) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, full_name, email, phone, location, bio, skills, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name  = EXCLUDED.full_name,
			email      = EXCLUDED.email,
			phone      = EXCLUDED.phone,
			location   = EXCLUDED.location,
			bio        = EXCLUDED.bio,
			skills     = EXCLUDED.skills,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns

	return scanProfile(r.db.QueryRow(ctx, query,
		in.UserID, in.FullName, in.Email, in.Phone, in.Location, in.Bio,
		pq.Array(in.Skills), in.UpdatedAt,
	))
}
