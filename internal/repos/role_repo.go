package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type RoleRepo struct{ db *sqlx.DB }

func NewRoleRepo(db *sqlx.DB) *RoleRepo { return &RoleRepo{db: db} }

// IsAdmin reports whether an 'admin' role row exists for the user. A missing
// row is (false, nil); any other lookup failure is returned so the caller can
// deny access rather than treating the error as "not admin".
func (r *RoleRepo) IsAdmin(userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var one int
	err := r.db.Get(&one, `SELECT 1 FROM user_roles WHERE user_id = ? AND role = 'admin'`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Grant assigns the admin role; used by ops tooling and tests.
func (r *RoleRepo) Grant(userID, role string) error {
	_, err := r.db.Exec(`
	  INSERT INTO user_roles(user_id, role) VALUES(?, ?)
	  ON CONFLICT(user_id, role) DO NOTHING
	`, userID, role)
	return err
}
