package domain

type Service struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Type           string  `db:"type"` // WASH_FOLD | WASH_IRON | DRY_CLEAN
	Description    string  `db:"description"`
	PricePerKg     float64 `db:"price_per_kg"`
	MinWeightKg    float64 `db:"min_weight_kg"`
	TurnaroundDays int     `db:"turnaround_days"`
	Active         bool    `db:"is_active"`
	CreatedAt      string  `db:"created_at"`
}

type Booking struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	ServiceID     string  `db:"service_id"`
	WeightKg      float64 `db:"weight_kg"`
	TotalPrice    float64 `db:"total_price"`
	PickupAddress string  `db:"pickup_address"`
	PickupDate    string  `db:"pickup_date"` // YYYY-MM-DD
	Notes         string  `db:"notes"`
	Status        Status  `db:"status"`
	CreatedAt     string  `db:"created_at"`
}
