package database

import (
	"database/sql"
	"fmt"
)

// schema is idempotent: every statement is guarded with IF NOT EXISTS so it
// can run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	avatar_url    TEXT,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trips (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	description      TEXT,
	destination      TEXT,
	start_date       TIMESTAMPTZ NOT NULL,
	end_date         TIMESTAMPTZ NOT NULL,
	default_currency TEXT NOT NULL DEFAULT 'CLP',
	created_by_id    TEXT NOT NULL REFERENCES users(id),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trip_participants (
	id         TEXT PRIMARY KEY,
	trip_id    TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	user_id    TEXT REFERENCES users(id),
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	role       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (trip_id, user_id)
);

CREATE TABLE IF NOT EXISTS activities (
	id            TEXT PRIMARY KEY,
	trip_id       TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	title         TEXT NOT NULL,
	description   TEXT,
	location      TEXT,
	notes         TEXT,
	activity_date TIMESTAMPTZ,
	activity_time TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS hotels (
	id               TEXT PRIMARY KEY,
	trip_id          TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	name             TEXT NOT NULL,
	link             TEXT,
	check_in_date    TIMESTAMPTZ NOT NULL,
	check_out_date   TIMESTAMPTZ NOT NULL,
	price_per_night  DOUBLE PRECISION,
	total_price      DOUBLE PRECISION,
	number_of_nights INTEGER NOT NULL,
	currency         TEXT NOT NULL,
	notes            TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS expenses (
	id                     TEXT PRIMARY KEY,
	trip_id                TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	created_by_id          TEXT NOT NULL REFERENCES users(id),
	paid_by_participant_id TEXT NOT NULL REFERENCES trip_participants(id),
	description            TEXT NOT NULL,
	amount                 DOUBLE PRECISION NOT NULL,
	currency               TEXT NOT NULL,
	expense_date           TIMESTAMPTZ NOT NULL,
	split_type             TEXT NOT NULL,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS expense_shares (
	id             TEXT PRIMARY KEY,
	expense_id     TEXT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
	participant_id TEXT NOT NULL REFERENCES trip_participants(id),
	amount         DOUBLE PRECISION NOT NULL,
	UNIQUE (expense_id, participant_id)
);

CREATE TABLE IF NOT EXISTS payments (
	id                  TEXT PRIMARY KEY,
	trip_id             TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	from_participant_id TEXT NOT NULL REFERENCES trip_participants(id),
	to_participant_id   TEXT NOT NULL REFERENCES trip_participants(id),
	amount              DOUBLE PRECISION NOT NULL,
	currency            TEXT NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_trip_participants_trip ON trip_participants(trip_id);
CREATE INDEX IF NOT EXISTS idx_activities_trip ON activities(trip_id);
CREATE INDEX IF NOT EXISTS idx_hotels_trip ON hotels(trip_id);
CREATE INDEX IF NOT EXISTS idx_expenses_trip ON expenses(trip_id);
CREATE INDEX IF NOT EXISTS idx_expense_shares_expense ON expense_shares(expense_id);
CREATE INDEX IF NOT EXISTS idx_payments_trip ON payments(trip_id);
`

// Migrate applies the schema to the database
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
