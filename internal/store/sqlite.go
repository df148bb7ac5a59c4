package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"cmms/internal/assets"
	"cmms/internal/logging"

	_ "github.com/mattn/go-sqlite3" // "sqlite3" driver (cgo)
	_ "modernc.org/sqlite"          // "sqlite" driver (pure Go)
)

// SQLiteRepository serves assets from a SQLite database. The dashboard only
// reads; Import is used by the admin command that loads a seed.
type SQLiteRepository struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Counter keys in dashboard_counters.
const (
	counterPendingHigh     = "pending_high"
	counterPendingMedium   = "pending_medium"
	counterPendingLow      = "pending_low"
	counterPreventive      = "preventive_maintenance"
	counterTrendTotal      = "trend_total_assets"
	counterTrendPending    = "trend_pending_work_orders"
	counterTrendPreventive = "trend_preventive_maintenance"
)

// NewSQLiteRepository opens (creating if needed) the database at path using
// the named database/sql driver ("sqlite" or "sqlite3").
func NewSQLiteRepository(driver, path string) (*SQLiteRepository, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewSQLiteRepository")
	defer timer.Stop()

	logging.Store("Opening SQLite asset store at %s (driver %s)", path, driver)

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}

	s := &SQLiteRepository{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *SQLiteRepository) initialize() error {
	assetsTable := `
	CREATE TABLE IF NOT EXISTS assets (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		last_maintenance TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_assets_position ON assets(position);
	`
	countersTable := `
	CREATE TABLE IF NOT EXISTS dashboard_counters (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	for _, stmt := range []string{assetsTable, countersTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// LoadAll returns every asset in import order.
func (s *SQLiteRepository) LoadAll(ctx context.Context) ([]assets.AssetRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, status, last_maintenance FROM assets ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var records []assets.AssetRecord
	for rows.Next() {
		var sa SeedAsset
		if err := rows.Scan(&sa.ID, &sa.Name, &sa.Category, &sa.Status, &sa.LastMaintenance); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		rec, err := sa.Record()
		if err != nil {
			return nil, fmt.Errorf("asset %d: %w", sa.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	logging.StoreDebug("Loaded %d assets from %s", len(records), s.dbPath)
	return records, nil
}

// Stats computes total and health from the assets table and reads the
// remaining figures from dashboard_counters.
func (s *SQLiteRepository) Stats(ctx context.Context) (assets.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats assets.Stats

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM assets GROUP BY status`)
	if err != nil {
		return stats, fmt.Errorf("failed to query status counts: %w", err)
	}
	counts := make(map[assets.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return stats, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[assets.Status(status)] += n
		stats.TotalAssets += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("failed to iterate status counts: %w", err)
	}
	stats.Health = assets.HealthFromCounts(counts, stats.TotalAssets)

	counters, err := s.counters(ctx)
	if err != nil {
		return stats, err
	}
	stats.PendingByPriority = assets.PriorityCounts{
		High:   counterInt(counters, counterPendingHigh),
		Medium: counterInt(counters, counterPendingMedium),
		Low:    counterInt(counters, counterPendingLow),
	}
	stats.PendingWorkOrders = stats.PendingByPriority.Total()
	stats.PreventiveMaintenance = counterInt(counters, counterPreventive)
	stats.Trends = assets.Trends{
		TotalAssets:           counters[counterTrendTotal],
		PendingWorkOrders:     counters[counterTrendPending],
		PreventiveMaintenance: counters[counterTrendPreventive],
	}
	return stats, nil
}

func (s *SQLiteRepository) counters(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM dashboard_counters`)
	if err != nil {
		return nil, fmt.Errorf("failed to query counters: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan counter: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Import replaces the stored assets and counters in one transaction.
func (s *SQLiteRepository) Import(ctx context.Context, records []assets.AssetRecord, stats assets.Stats) (err error) {
	if err := assets.ValidateIDs(records); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM assets`); err != nil {
		return fmt.Errorf("failed to clear assets: %w", err)
	}
	for i, r := range records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assets (id, position, name, category, status, last_maintenance) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Name, r.Category, string(r.Status), r.LastMaintenanceText())
		if err != nil {
			return fmt.Errorf("failed to insert asset %d: %w", r.ID, err)
		}
	}

	counters := map[string]string{
		counterPendingHigh:     strconv.Itoa(stats.PendingByPriority.High),
		counterPendingMedium:   strconv.Itoa(stats.PendingByPriority.Medium),
		counterPendingLow:      strconv.Itoa(stats.PendingByPriority.Low),
		counterPreventive:      strconv.Itoa(stats.PreventiveMaintenance),
		counterTrendTotal:      stats.Trends.TotalAssets,
		counterTrendPending:    stats.Trends.PendingWorkOrders,
		counterTrendPreventive: stats.Trends.PreventiveMaintenance,
	}
	for k, v := range counters {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO dashboard_counters (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v)
		if err != nil {
			return fmt.Errorf("failed to write counter %s: %w", k, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	logging.Store("Imported %d assets into %s", len(records), s.dbPath)
	return nil
}

// Close closes the database.
func (s *SQLiteRepository) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// counterInt reads a numeric counter. Missing keys are 0; unparsable values
// are logged and read as 0.
func counterInt(counters map[string]string, key string) int {
	v, ok := counters[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.StoreDebug("Corrupt counter %s=%q, using 0: %v", key, v, err)
		return 0
	}
	return n
}
