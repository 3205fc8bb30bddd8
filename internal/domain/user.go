package domain

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
}

// Profile holds the contact details shown to admins and used to pre-fill
// the pickup address on the booking form. Keyed by the user id.
type Profile struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
}
