package queries_test

import (
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/truckloadrepo"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/truckload"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// store is an in-memory SQLite schema shared by a gorm handle for seeding
// and an sqlx handle for the handlers under test.
type store struct {
	gorm *gorm.DB
	sqlx *sqlx.DB
}

func newStore(t *testing.T) store {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return store{gorm: db, sqlx: sqlx.NewDb(sqlDB, "sqlite3")}
}

func (s store) addTruckload(t *testing.T, number string) *truckload.Truckload {
	t.Helper()
	start := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	var n *bol.Number
	if number != "" {
		parsed, err := bol.Parse(number)
		require.NoError(t, err)
		n = &parsed
	}
	status := truckload.Draft
	if n != nil {
		status = truckload.Active
	}

	tl, err := truckload.RestoreTruckload(kernel.NewUUID(), "R. Alvarez", start, start.AddDate(0, 0, 1), "", n, status)
	require.NoError(t, err)
	require.NoError(t, truckloadrepo.NewGormTruckloadRepository(s.gorm).Add(t.Context(), tl))
	return tl
}

func (s store) addOrder(t *testing.T, pickup, delivery string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), pickup, delivery)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(s.gorm).Add(t.Context(), o))
	return o
}

func (s store) addStop(t *testing.T, tl *truckload.Truckload, o *order.Order, typ assignment.Type, seq int) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), tl.ID(), o.ID(), typ, seq, false)
	require.NoError(t, err)
	require.NoError(t, assignmentrepo.NewGormAssignmentRepository(s.gorm).Add(t.Context(), a))
	return a
}
