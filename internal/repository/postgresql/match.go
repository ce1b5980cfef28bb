package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type MatchRepo struct {
	db db.DB
}

func NewMatchRepo(db db.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

const matchColumns = `
    m.id, m.package_id, m.ride_id, m.status, m.price, m.proposed_by_user_id,
    m.created_at, m.updated_at,
    p.title AS package_title, r.start_location, r.end_location`

func (r *MatchRepo) Create(ctx context.Context, match *repository.Match) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO matches (
            id, package_id, ride_id, status, price, proposed_by_user_id,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, match.ID, match.PackageID, match.RideID, match.Status, match.Price,
		match.ProposedByUserID, match.CreatedAt, match.UpdatedAt)
	return err
}

func (r *MatchRepo) GetByID(ctx context.Context, id string) (*repository.Match, error) {
	var match repository.Match
	err := r.db.Get(ctx, &match, `
        SELECT `+matchColumns+`
        FROM matches m
        JOIN packages p ON p.id = m.package_id
        JOIN rides r ON r.id = m.ride_id
        WHERE m.id = $1
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &match, nil
}

func matchListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (p.title ILIKE '%' || $1 || '%'
            OR r.start_location ILIKE '%' || $1 || '%'
            OR r.end_location ILIKE '%' || $1 || '%'
            OR pu.name ILIKE '%' || $1 || '%'
            OR pu.email ILIKE '%' || $1 || '%'
            OR ru.name ILIKE '%' || $1 || '%'
            OR ru.email ILIKE '%' || $1 || '%')`
	}
	if p.Status != "" {
		args = append(args, p.Status)
		where += " AND m.status = $" + itoa(len(args))
	}
	return where, args
}

const matchJoins = `
    FROM matches m
    JOIN packages p ON p.id = m.package_id
    JOIN rides r ON r.id = m.ride_id
    JOIN users pu ON pu.id = p.user_id
    JOIN users ru ON ru.id = r.user_id`

func (r *MatchRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Match, error) {
	where, args := matchListClauses(p)
	query := "SELECT " + matchColumns + matchJoins + " " + where + " ORDER BY m.created_at DESC"

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var matches []*repository.Match
	err := r.db.Select(ctx, &matches, query, args...)
	return matches, err
}

func (r *MatchRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := matchListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*)"+matchJoins+" "+where, args...).Scan(&total)
	return total, err
}

func (r *MatchRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE matches SET status = $1, updated_at = now() WHERE id = $2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *MatchRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, "DELETE FROM matches WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *MatchRepo) DeleteByRideIDTx(ctx context.Context, tx db.Tx, rideID string) error {
	_, err := tx.Exec(ctx, "DELETE FROM matches WHERE ride_id = $1", rideID)
	return err
}

func (r *MatchRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM matches WHERE status = $1", status).Scan(&total)
	return total, err
}

func (r *MatchRepo) GetRecent(ctx context.Context, limit int) ([]*repository.Match, error) {
	var matches []*repository.Match
	err := r.db.Select(ctx, &matches, `
        SELECT `+matchColumns+`
        FROM matches m
        JOIN packages p ON p.id = m.package_id
        JOIN rides r ON r.id = m.ride_id
        ORDER BY m.created_at DESC
        LIMIT $1
    `, limit)
	return matches, err
}
