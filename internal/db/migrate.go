package db

import (
	"context"
	"database/sql"
)

// Schema creation is idempotent and runs only from cmd/migrate; the
// server never migrates implicitly.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id bigserial PRIMARY KEY,
    provider_subject text NOT NULL,
    display_name text NOT NULL,
    email text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT users_provider_subject_unique
        UNIQUE (provider_subject)
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique
ON users (email)
WHERE email IS NOT NULL;
`

func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
