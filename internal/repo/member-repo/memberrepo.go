package memberrepo

import (
	"context"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CountActiveByClub(ctx context.Context, clubID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM members
        WHERE club_id = $1 AND active
    `
	row := r.db.QueryRow(ctx, query, clubID)
	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("failed to count club members", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindActiveByClub(ctx context.Context, clubID int) ([]domain.Member, error) {
	query := `
        SELECT id, club_id, name, role, gender, birth_date, active, points, created_at
        FROM members
        WHERE club_id = $1 AND active
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		zap.L().Error("can't get club members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		err := rows.Scan(&member.ID, &member.ClubID, &member.Name, &member.Role, &member.Gender,
			&member.BirthDate, &member.Active, &member.Points, &member.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// AddPoints shifts a member's running point balance by delta, which may
// be negative when a grant is reversed.
func (r *Repository) AddPoints(ctx context.Context, memberID, delta int) error {
	query := `
        UPDATE members
        SET points = points + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, memberID)
	if err != nil {
		zap.L().Error("failed to update member points", zap.Error(err))
		return err
	}
	return nil
}
