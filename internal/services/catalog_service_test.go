package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"freshfold/internal/repos"
	"freshfold/internal/services"
)

func catalogdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE services(id TEXT PRIMARY KEY, name TEXT, type TEXT, description TEXT,
	  price_per_kg NUMERIC, min_weight_kg NUMERIC, turnaround_days INTEGER,
	  is_active INTEGER, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	INSERT INTO services(id,name,type,description,price_per_kg,min_weight_kg,turnaround_days,is_active) VALUES
	  ('dry-clean','Dry Cleaning','DRY_CLEAN','delicates',150,1,4,1),
	  ('wash-fold','Wash & Fold','WASH_FOLD','everyday',40,2,2,1),
	  ('wash-iron','Wash & Iron','WASH_IRON','pressed',60,2,3,1),
	  ('express-wash','Express Wash','WASH_FOLD','same day',90,2,1,0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestCatalog_ListActive_OrderedByRate(t *testing.T) {
	db := catalogdb(t)
	svc := services.NewCatalogService(repos.NewServiceRepo(db))

	list, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 3, "inactive offering must be excluded")

	assert.Equal(t, []float64{40, 60, 150}, []float64{list[0].PricePerKg, list[1].PricePerKg, list[2].PricePerKg})
	for _, s := range list {
		assert.True(t, s.Active)
		assert.NotEqual(t, "express-wash", s.ID)
	}
}

func TestCatalog_ListActive_Idempotent(t *testing.T) {
	db := catalogdb(t)
	svc := services.NewCatalogService(repos.NewServiceRepo(db))

	first, err := svc.ListActive()
	require.NoError(t, err)
	second, err := svc.ListActive()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
