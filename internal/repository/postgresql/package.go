package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type PackageRepo struct {
	db db.DB
}

func NewPackageRepo(db db.DB) *PackageRepo {
	return &PackageRepo{db: db}
}

const packageColumns = `
    p.id, p.user_id, p.title, p.description, p.weight, p.dimensions,
    p.pickup_address, p.delivery_address, p.pickup_lat, p.pickup_lng,
    p.delivery_lat, p.delivery_lng, p.image_url, p.status,
    p.created_at, p.updated_at,
    u.name AS user_name, u.email AS user_email`

func (r *PackageRepo) Create(ctx context.Context, pkg *repository.Package) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO packages (
            id, user_id, title, description, weight, dimensions,
            pickup_address, delivery_address, pickup_lat, pickup_lng,
            delivery_lat, delivery_lng, image_url, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `, pkg.ID, pkg.UserID, pkg.Title, pkg.Description, pkg.Weight, pkg.Dimensions,
		pkg.PickupAddress, pkg.DeliveryAddress, pkg.PickupLat, pkg.PickupLng,
		pkg.DeliveryLat, pkg.DeliveryLng, pkg.ImageURL, pkg.Status,
		pkg.CreatedAt, pkg.UpdatedAt)
	return err
}

func (r *PackageRepo) GetByID(ctx context.Context, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := r.db.Get(ctx, &pkg, `
        SELECT `+packageColumns+`
        FROM packages p
        JOIN users u ON u.id = p.user_id
        WHERE p.id = $1
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func packageListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (p.title ILIKE '%' || $1 || '%'
            OR p.description ILIKE '%' || $1 || '%'
            OR p.pickup_address ILIKE '%' || $1 || '%'
            OR p.delivery_address ILIKE '%' || $1 || '%'
            OR u.name ILIKE '%' || $1 || '%'
            OR u.email ILIKE '%' || $1 || '%')`
	}
	if p.Status != "" {
		args = append(args, p.Status)
		where += " AND p.status = $" + itoa(len(args))
	}
	return where, args
}

func (r *PackageRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Package, error) {
	where, args := packageListClauses(p)
	query := `
        SELECT ` + packageColumns + `
        FROM packages p
        JOIN users u ON u.id = p.user_id
        ` + where + `
        ORDER BY p.created_at DESC`

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, query, args...)
	return pkgs, err
}

func (r *PackageRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := packageListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, `
        SELECT COUNT(*)
        FROM packages p
        JOIN users u ON u.id = p.user_id
        `+where, args...).Scan(&total)
	return total, err
}

func (r *PackageRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE packages SET status = $1, updated_at = now() WHERE id = $2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *PackageRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM packages WHERE status = $1", status).Scan(&total)
	return total, err
}

func (r *PackageRepo) GetRecent(ctx context.Context, limit int) ([]*repository.Package, error) {
	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, `
        SELECT `+packageColumns+`
        FROM packages p
        JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC
        LIMIT $1
    `, limit)
	return pkgs, err
}

func (r *PackageRepo) GetRecentByStatus(ctx context.Context, status string, limit int) ([]*repository.Package, error) {
	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, `
        SELECT `+packageColumns+`
        FROM packages p
        JOIN users u ON u.id = p.user_id
        WHERE p.status = $1
        ORDER BY p.created_at DESC
        LIMIT $2
    `, status, limit)
	return pkgs, err
}
