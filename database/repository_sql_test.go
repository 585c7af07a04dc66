package database_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/service/catalog"
	"ubwiza_rentals/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingPool stands in for the postgres connection: writes are logged and
// report rowsAffected, reads are only ever built in dry-run sessions.
type recordingPool struct {
	mu           sync.Mutex
	log          []string
	rowsAffected int64
}

func (p *recordingPool) record(entry string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.log = append(p.log, entry)
}

func (p *recordingPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (p *recordingPool) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	p.record(query)
	return driver.RowsAffected(p.rowsAffected), nil
}

func (p *recordingPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("queries must run in a dry-run session")
}

func (p *recordingPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (p *recordingPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	p.record("BEGIN")
	return &recordingTx{pool: p}, nil
}

// recordingTx has no BeginTx, matching *sql.Tx.
type recordingTx struct {
	pool *recordingPool
}

func (t *recordingTx) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return t.pool.PrepareContext(ctx, query)
}

func (t *recordingTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return t.pool.ExecContext(ctx, "tx: "+query, args...)
}

func (t *recordingTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return t.pool.QueryContext(ctx, query, args...)
}

func (t *recordingTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.pool.QueryRowContext(ctx, query, args...)
}

func (t *recordingTx) Commit() error {
	t.pool.record("COMMIT")
	return nil
}

func (t *recordingTx) Rollback() error {
	t.pool.record("ROLLBACK")
	return nil
}

type builtQuery struct {
	sql  string
	vars []interface{}
}

func openRecordingDB(t *testing.T) (*gorm.DB, *recordingPool) {
	t.Helper()
	pool := &recordingPool{rowsAffected: 1}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, pool
}

// dryRun returns a session that builds SELECTs without running them, and the
// list the built statements are appended to.
func dryRun(t *testing.T, db *gorm.DB) (*gorm.DB, *[]builtQuery) {
	t.Helper()
	var built []builtQuery
	err := db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		built = append(built, builtQuery{
			sql:  tx.Statement.SQL.String(),
			vars: append([]interface{}(nil), tx.Statement.Vars...),
		})
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return db.Session(&gorm.Session{DryRun: true}), &built
}

func mustDate(t *testing.T, s string) utils.CustomDate {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestFindOverlappingIsHalfOpen(t *testing.T) {
	db, _ := openRecordingDB(t)
	session, built := dryRun(t, db)
	repo := database.NewGormBookingRepo(session)

	checkIn, checkOut := mustDate(t, "2024-01-10"), mustDate(t, "2024-01-15")
	_, err := repo.FindOverlapping(context.Background(), database.OverlapQuery{
		RoomID:        2,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		ConfirmedOnly: true,
		ExcludeID:     9,
		Limit:         1,
	})
	if err != nil {
		t.Fatalf("FindOverlapping: %v", err)
	}
	if len(*built) != 1 {
		t.Fatalf("built %d queries, want 1", len(*built))
	}
	q := (*built)[0]

	for _, fragment := range []string{
		`FROM "bookings"`,
		"room_id = $1",
		"(check_in < $2 AND check_out > $3)",
		"confirmed = $4",
		"id <> $5",
		"ORDER BY check_in ASC",
	} {
		if !strings.Contains(q.sql, fragment) {
			t.Errorf("sql %q lacks %q", q.sql, fragment)
		}
	}
	if len(q.vars) < 5 {
		t.Fatalf("vars = %v", q.vars)
	}
	if got, ok := q.vars[1].(utils.CustomDate); !ok || !got.Equal(checkOut.Time) {
		t.Errorf("check_in is compared against %v, want the requested check-out %s", q.vars[1], checkOut)
	}
	if got, ok := q.vars[2].(utils.CustomDate); !ok || !got.Equal(checkIn.Time) {
		t.Errorf("check_out is compared against %v, want the requested check-in %s", q.vars[2], checkIn)
	}
	if q.vars[3] != true {
		t.Errorf("confirmed var = %v, want true", q.vars[3])
	}
}

func TestListRoomsPriceTierSQL(t *testing.T) {
	tests := []struct {
		tier      string
		fragments []string
		vars      []interface{}
	}{
		{"budget", []string{"price < $1"}, []interface{}{float64(model.BudgetCeiling)}},
		{"medium", []string{"price >= $1", "price <= $2"}, []interface{}{float64(model.BudgetCeiling), float64(model.PremiumFloor)}},
		{"premium", []string{"price > $1"}, []interface{}{float64(model.PremiumFloor)}},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			db, _ := openRecordingDB(t)
			session, built := dryRun(t, db)
			svc := catalog.NewCatalogService(&database.Repositories{Rooms: database.NewGormRoomRepo(session)}, nil)

			if _, err := svc.ListRooms(context.Background(), model.RoomFilter{Price: tt.tier}); err != nil {
				t.Fatalf("ListRooms: %v", err)
			}
			if len(*built) != 1 {
				t.Fatalf("built %d queries, want 1", len(*built))
			}
			q := (*built)[0]
			for _, fragment := range tt.fragments {
				if !strings.Contains(q.sql, fragment) {
					t.Errorf("sql %q lacks %q", q.sql, fragment)
				}
			}
			if len(q.vars) < len(tt.vars) {
				t.Fatalf("vars = %v, want prefix %v", q.vars, tt.vars)
			}
			for i, want := range tt.vars {
				if q.vars[i] != want {
					t.Errorf("var %d = %v, want %v", i, q.vars[i], want)
				}
			}
		})
	}
}

func TestListRoomsFeaturedFirst(t *testing.T) {
	db, _ := openRecordingDB(t)
	session, built := dryRun(t, db)
	repo := database.NewGormRoomRepo(session)

	if _, err := repo.List(context.Background(), database.RoomQuery{Type: "double"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	q := (*built)[0]
	if !strings.Contains(q.sql, "room_type = $1") {
		t.Errorf("sql %q does not filter on room_type", q.sql)
	}
	at := strings.Index(q.sql, "ORDER BY")
	if at < 0 {
		t.Fatalf("sql %q has no ORDER BY", q.sql)
	}
	order := q.sql[at:]
	featured, price, id := strings.Index(order, "is_featured DESC"), strings.Index(order, "price ASC"), strings.Index(order, "id ASC")
	if featured < 0 || price < featured || id < price {
		t.Errorf("order clause %q, want is_featured DESC, price ASC, id ASC", order)
	}
}

func TestDeleteRoomRemovesBookingsInOneTransaction(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
		last         string
	}{
		{"existing room", 1, nil, "COMMIT"},
		{"unknown room", 0, utils.ErrNotFound, "ROLLBACK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, pool := openRecordingDB(t)
			pool.rowsAffected = tt.rowsAffected
			repo := database.NewGormRoomRepo(db)

			err := repo.Delete(context.Background(), 4)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete err = %v, want %v", err, tt.wantErr)
			}
			if len(pool.log) != 4 {
				t.Fatalf("log = %q, want BEGIN, two deletes and %s", pool.log, tt.last)
			}
			if pool.log[0] != "BEGIN" || pool.log[3] != tt.last {
				t.Errorf("transaction = %q", pool.log)
			}
			if !strings.HasPrefix(pool.log[1], `tx: DELETE FROM "bookings"`) || !strings.Contains(pool.log[1], "room_id = $1") {
				t.Errorf("first statement = %q, want the room's bookings deleted", pool.log[1])
			}
			if !strings.HasPrefix(pool.log[2], `tx: DELETE FROM "rooms"`) {
				t.Errorf("second statement = %q, want the room deleted", pool.log[2])
			}
		})
	}
}
