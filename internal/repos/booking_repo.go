package repos

import (
	"fmt"

	"freshfold/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// ---------- Customer dashboard rows ----------
type CustomerBookingRow struct {
	ID             string        `db:"id"`
	ServiceName    string        `db:"service_name"`
	TurnaroundDays int           `db:"turnaround_days"`
	WeightKg       float64       `db:"weight_kg"`
	TotalPrice     float64       `db:"total_price"`
	PickupAddress  string        `db:"pickup_address"`
	PickupDate     string        `db:"pickup_date"`
	Notes          string        `db:"notes"`
	Status         domain.Status `db:"status"`
	CreatedAt      string        `db:"created_at"`
}

// ---------- Admin panel rows ----------
type AdminBookingRow struct {
	ID            string        `db:"id"`
	UserID        string        `db:"user_id"`
	ServiceName   string        `db:"service_name"`
	CustomerName  string        `db:"customer_name"`
	CustomerPhone string        `db:"customer_phone"`
	WeightKg      float64       `db:"weight_kg"`
	TotalPrice    float64       `db:"total_price"`
	PickupAddress string        `db:"pickup_address"`
	PickupDate    string        `db:"pickup_date"`
	Status        domain.Status `db:"status"`
	CreatedAt     string        `db:"created_at"`
}

// Create inserts a new booking. Status is always 'pending' and total_price
// is the snapshot computed at creation; neither is ever recomputed here.
func (r *BookingRepo) Create(b domain.Booking) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings
	    (id, user_id, service_id, weight_kg, total_price, pickup_address, pickup_date, notes, status, created_at)
	  VALUES
	    (?,  ?,       ?,          ?,         ?,           ?,              ?,           NULLIF(?,''), 'pending', CURRENT_TIMESTAMP)
	`, b.ID, b.UserID, b.ServiceID, b.WeightKg, b.TotalPrice, b.PickupAddress, b.PickupDate, b.Notes)
	return err
}

func (r *BookingRepo) Get(id string) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `
	  SELECT id, user_id, service_id, weight_kg, total_price, pickup_address,
	         pickup_date, COALESCE(notes,'') AS notes, status, created_at
	  FROM bookings
	  WHERE id = ?
	`, id)
	return b, err
}

// ListByUser returns the customer's own bookings, newest first.
func (r *BookingRepo) ListByUser(userID string) ([]CustomerBookingRow, error) {
	var out []CustomerBookingRow
	err := r.db.Select(&out, `
	  SELECT b.id, s.name AS service_name, s.turnaround_days,
	         b.weight_kg, b.total_price, b.pickup_address, b.pickup_date,
	         COALESCE(b.notes,'') AS notes, b.status, b.created_at
	  FROM bookings b
	  JOIN services s ON s.id = b.service_id
	  WHERE b.user_id = ?
	  ORDER BY datetime(b.created_at) DESC
	`, userID)
	return out, err
}

// ListAll returns every booking for the admin panel, newest first, with the
// customer profile joined in one query. A missing profile collapses to a
// defined placeholder instead of dropping the row.
func (r *BookingRepo) ListAll(limit int) ([]AdminBookingRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []AdminBookingRow
	err := r.db.Select(&out, `
	  SELECT b.id, b.user_id, s.name AS service_name,
	         COALESCE(p.full_name,'Unknown') AS customer_name,
	         COALESCE(NULLIF(p.phone,''),'N/A') AS customer_phone,
	         b.weight_kg, b.total_price, b.pickup_address, b.pickup_date,
	         b.status, b.created_at
	  FROM bookings b
	  JOIN services s ON s.id = b.service_id
	  LEFT JOIN profiles p ON p.id = b.user_id
	  ORDER BY datetime(b.created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

// UpdateStatus moves a booking from -> to in a single guarded write. The
// WHERE clause keeps the transition atomic: a concurrent update that already
// changed the row leaves nothing to match.
func (r *BookingRepo) UpdateStatus(id string, from, to domain.Status) error {
	res, err := r.db.Exec(`
	  UPDATE bookings SET status = ? WHERE id = ? AND status = ?
	`, to, id, from)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("booking %s is no longer %s", id, from)
	}
	return nil
}
