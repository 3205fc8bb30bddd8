package repos

import (
	"freshfold/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProfileRepo struct{ db *sqlx.DB }

func NewProfileRepo(db *sqlx.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) ByID(userID string) (domain.Profile, error) {
	var p domain.Profile
	err := r.db.Get(&p, `
	  SELECT id, full_name, COALESCE(phone,'') AS phone, COALESCE(address,'') AS address
	  FROM profiles
	  WHERE id = ?
	`, userID)
	return p, err
}

func (r *ProfileRepo) Upsert(p domain.Profile) error {
	_, err := r.db.Exec(`
	  INSERT INTO profiles(id, full_name, phone, address)
	  VALUES(?, ?, ?, ?)
	  ON CONFLICT(id) DO UPDATE SET
	    full_name = excluded.full_name,
	    phone     = excluded.phone,
	    address   = excluded.address
	`, p.ID, p.FullName, p.Phone, p.Address)
	return err
}

// SaveAddress remembers the last pickup address so the next booking form
// starts pre-filled.
func (r *ProfileRepo) SaveAddress(userID, address string) error {
	_, err := r.db.Exec(`UPDATE profiles SET address = ? WHERE id = ?`, address, userID)
	return err
}
