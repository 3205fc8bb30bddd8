package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline offerings and demo accounts (idempotent; safe to run every start)
	if err := seedServices(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Laundry service offerings (read-only in the app; managed by ops)
CREATE TABLE IF NOT EXISTS services(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('WASH_FOLD','WASH_IRON','DRY_CLEAN')),
  description TEXT,
  price_per_kg NUMERIC NOT NULL CHECK (price_per_kg >= 0),
  min_weight_kg NUMERIC NOT NULL CHECK (min_weight_kg > 0),
  turnaround_days INTEGER NOT NULL CHECK (turnaround_days >= 1),
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_services_active_price ON services(is_active, price_per_kg);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Contact profile, keyed by user id; pre-fills the pickup address
CREATE TABLE IF NOT EXISTS profiles(
  id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  full_name TEXT NOT NULL,
  phone TEXT,
  address TEXT
);

-- Role assignments; presence of an 'admin' row grants the admin panel
CREATE TABLE IF NOT EXISTS user_roles(
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  role TEXT NOT NULL CHECK (role IN ('admin')),
  PRIMARY KEY(user_id, role)
);

-- Bookings; price is a point-in-time snapshot, rows are never deleted
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id),
  service_id TEXT NOT NULL REFERENCES services(id),
  weight_kg NUMERIC NOT NULL CHECK (weight_kg > 0),
  total_price NUMERIC NOT NULL CHECK (total_price >= 0),
  pickup_address TEXT NOT NULL,
  pickup_date TEXT NOT NULL,
  notes TEXT,
  status TEXT NOT NULL DEFAULT 'pending'
    CHECK (status IN ('pending','processing','completed','cancelled')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bookings_user       ON bookings(user_id);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// seedServices inserts the baseline offerings if they don't already exist.
func seedServices(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM services`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo services")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO services(id,name,type,description,price_per_kg,min_weight_kg,turnaround_days,is_active) VALUES
	  ('wash-fold','Wash & Fold','WASH_FOLD','Everyday laundry washed, dried and neatly folded.',40,2,2,1),
	  ('wash-iron','Wash & Iron','WASH_IRON','Washed and pressed, ready to wear.',60,2,3,1),
	  ('dry-clean','Dry Cleaning','DRY_CLEAN','Gentle care for suits, sarees and delicates.',150,1,4,1),
	  ('express-wash','Express Wash','WASH_FOLD','Same-day turnaround. Currently unavailable.',90,2,1,0)`)

	return tx.Commit()
}

// seedUsers ensures two customers and one admin exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Hash, Phone, Address string
		Admin                                 bool
	}
	mk := func(id, email, name, raw, phone, address string, admin bool) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Hash: string(h), Phone: phone, Address: address, Admin: admin}
	}

	users := []u{
		mk("u-asha", "asha@freshfold.test", "Asha", "Passw0rd!", "+91 98100 11001", "14 Rose Garden Lane, Sector 12, Pune 411001", false),
		mk("u-ravi", "ravi@freshfold.test", "Ravi", "Passw0rd!", "+91 98100 11002", "B-203 Lakeview Apartments, Powai, Mumbai 400076", false),
		mk("u-admin", "admin@freshfold.test", "Admin", "Passw0rd!", "", "", true),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO profiles(id,full_name,phone,address)
			VALUES(?,?,?,?)
			ON CONFLICT(id) DO NOTHING
		`, x.ID, x.Name, x.Phone, x.Address); err != nil {
			return err
		}
		if x.Admin {
			if _, err := tx.Exec(`
				INSERT INTO user_roles(user_id,role)
				VALUES(?,'admin')
				ON CONFLICT(user_id,role) DO NOTHING
			`, x.ID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
