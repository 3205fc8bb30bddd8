package repos

import (
	"freshfold/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ServiceRepo struct{ db *sqlx.DB }

func NewServiceRepo(db *sqlx.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// ListActive returns active offerings ordered cheapest first.
func (r *ServiceRepo) ListActive() ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.Select(&out, `
	  SELECT
	    id, name, type, COALESCE(description,'') AS description,
	    price_per_kg, min_weight_kg, turnaround_days, is_active,
	    created_at
	  FROM services
	  WHERE is_active = 1
	  ORDER BY price_per_kg ASC
	`)
	return out, err
}

func (r *ServiceRepo) Get(id string) (domain.Service, error) {
	var s domain.Service
	err := r.db.Get(&s, `
	  SELECT
	    id, name, type, COALESCE(description,'') AS description,
	    price_per_kg, min_weight_kg, turnaround_days, is_active,
	    created_at
	  FROM services
	  WHERE id = ?
	`, id)
	return s, err
}
