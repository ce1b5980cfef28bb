package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

const pgUniqueViolation = "23505"

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, email, password, name, first_name, last_name, phone_number,
            address, image, role, is_verified, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, user.ID, user.Email, user.Password, user.Name, user.FirstName, user.LastName,
		user.PhoneNumber, user.Address, user.Image, user.Role, user.IsVerified,
		user.CreatedAt, user.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.ExecQueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func userListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (name ILIKE '%' || $1 || '%'
            OR email ILIKE '%' || $1 || '%'
            OR first_name ILIKE '%' || $1 || '%'
            OR last_name ILIKE '%' || $1 || '%')`
	}
	if p.Role != "" {
		args = append(args, p.Role)
		where += " AND role = $" + itoa(len(args))
	}
	if p.Verified != nil {
		args = append(args, *p.Verified)
		where += " AND is_verified = $" + itoa(len(args))
	}
	return where, args
}

func (r *UserRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.User, error) {
	where, args := userListClauses(p)
	query := "SELECT * FROM users " + where + " ORDER BY created_at DESC"

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var users []*repository.User
	err := r.db.Select(ctx, &users, query, args...)
	return users, err
}

func (r *UserRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := userListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users "+where, args...).Scan(&total)
	return total, err
}

func (r *UserRepo) CountAll(ctx context.Context) (int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total)
	return total, err
}

// Update writes the mutable profile fields. The whitelist is enforced by the
// caller building the user value; role validity is checked at the boundary.
func (r *UserRepo) Update(ctx context.Context, user *repository.User) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET email = $1,
            name = $2,
            first_name = $3,
            last_name = $4,
            phone_number = $5,
            address = $6,
            role = $7,
            is_verified = $8,
            updated_at = $9
        WHERE id = $10
    `, user.Email, user.Name, user.FirstName, user.LastName, user.PhoneNumber,
		user.Address, user.Role, user.IsVerified, user.UpdatedAt, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
