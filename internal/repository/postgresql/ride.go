package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type RideRepo struct {
	db db.DB
}

func NewRideRepo(db db.DB) *RideRepo {
	return &RideRepo{db: db}
}

const rideColumns = `
    r.id, r.user_id, r.start_location, r.end_location, r.start_lat, r.start_lng,
    r.end_lat, r.end_lng, r.departure_time, r.estimated_arrival_time,
    r.vehicle_type, r.available_seats, r.max_package_weight, r.max_package_size,
    r.price_per_kg, r.price_per_seat, r.notes, r.status, r.created_at, r.updated_at,
    u.name AS user_name, u.email AS user_email`

func (r *RideRepo) Create(ctx context.Context, ride *repository.Ride) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rides (
            id, user_id, start_location, end_location, start_lat, start_lng,
            end_lat, end_lng, departure_time, estimated_arrival_time,
            vehicle_type, available_seats, max_package_weight, max_package_size,
            price_per_kg, price_per_seat, notes, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                  $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
    `, ride.ID, ride.UserID, ride.StartLocation, ride.EndLocation, ride.StartLat,
		ride.StartLng, ride.EndLat, ride.EndLng, ride.DepartureTime,
		ride.EstimatedArrivalTime, ride.VehicleType, ride.AvailableSeats,
		ride.MaxPackageWeight, ride.MaxPackageSize, ride.PricePerKg,
		ride.PricePerSeat, ride.Notes, ride.Status, ride.CreatedAt, ride.UpdatedAt)
	return err
}

func (r *RideRepo) GetByID(ctx context.Context, id string) (*repository.Ride, error) {
	var ride repository.Ride
	err := r.db.Get(ctx, &ride, `
        SELECT `+rideColumns+`
        FROM rides r
        JOIN users u ON u.id = r.user_id
        WHERE r.id = $1
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ride, nil
}

func rideListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (r.start_location ILIKE '%' || $1 || '%'
            OR r.end_location ILIKE '%' || $1 || '%'
            OR r.vehicle_type ILIKE '%' || $1 || '%'
            OR u.name ILIKE '%' || $1 || '%'
            OR u.email ILIKE '%' || $1 || '%')`
	}
	if p.Status != "" {
		args = append(args, p.Status)
		where += " AND r.status = $" + itoa(len(args))
	}
	return where, args
}

// List orders by departure time ascending; rides are browsed as a schedule,
// not a feed.
func (r *RideRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Ride, error) {
	where, args := rideListClauses(p)
	query := `
        SELECT ` + rideColumns + `
        FROM rides r
        JOIN users u ON u.id = r.user_id
        ` + where + `
        ORDER BY r.departure_time ASC, r.id`

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var rides []*repository.Ride
	err := r.db.Select(ctx, &rides, query, args...)
	return rides, err
}

func (r *RideRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := rideListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, `
        SELECT COUNT(*)
        FROM rides r
        JOIN users u ON u.id = r.user_id
        `+where, args...).Scan(&total)
	return total, err
}

func (r *RideRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, "DELETE FROM rides WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *RideRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE rides SET status = $1, updated_at = now() WHERE id = $2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *RideRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM rides WHERE status = $1", status).Scan(&total)
	return total, err
}

func (r *RideRepo) GetRecent(ctx context.Context, limit int) ([]*repository.Ride, error) {
	var rides []*repository.Ride
	err := r.db.Select(ctx, &rides, `
        SELECT `+rideColumns+`
        FROM rides r
        JOIN users u ON u.id = r.user_id
        ORDER BY r.created_at DESC
        LIMIT $1
    `, limit)
	return rides, err
}

// GetAvailable returns AVAILABLE rides soonest-departure first, used to warm
// the ride cache and the dashboard feed.
func (r *RideRepo) GetAvailable(ctx context.Context, limit int) ([]*repository.Ride, error) {
	query := `
        SELECT ` + rideColumns + `
        FROM rides r
        JOIN users u ON u.id = r.user_id
        WHERE r.status = 'AVAILABLE'
        ORDER BY r.departure_time ASC, r.id`
	var args []interface{}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $1"
	}
	var rides []*repository.Ride
	err := r.db.Select(ctx, &rides, query, args...)
	return rides, err
}
