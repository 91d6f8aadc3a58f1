package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		slug TEXT UNIQUE,
		role TEXT NOT NULL,
		bio TEXT,
		avatar_url TEXT,
		timezone TEXT,
		linkedin_url TEXT,
		stripe_account_id TEXT UNIQUE,
		stripe_onboarded BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCoachApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coach_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		focus_areas TEXT NOT NULL DEFAULT '[]',
		calendly_url TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createClientIntakeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE client_intakes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		goals TEXT NOT NULL,
		preferred_topics TEXT DEFAULT '[]',
		budget_hint INTEGER,
		created_at DATETIME
	);`)
}

func createPaymentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		stripe_session_id TEXT UNIQUE NOT NULL,
		amount_minor INTEGER NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		coach_id TEXT,
		client_id TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE webhook_events (
		id TEXT PRIMARY KEY,
		event_id TEXT UNIQUE NOT NULL,
		event_type TEXT NOT NULL,
		processed_at DATETIME
	);`)
}
