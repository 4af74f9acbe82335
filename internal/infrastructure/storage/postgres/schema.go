package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL creates the tables this service owns. Idempotent, applied by
// the tenant CLI's init command against the shared database.
const schemaDDL = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS tenants (
	id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	slug         text NOT NULL UNIQUE,
	display_name text NOT NULL,
	status       text NOT NULL DEFAULT 'active',
	plan         text NOT NULL DEFAULT 'standard',
	created_at   timestamptz NOT NULL DEFAULT now(),
	updated_at   timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pubid_masks (
	tenant_id   uuid NOT NULL REFERENCES tenants(id),
	entity_type text NOT NULL,
	mask        text,
	updated_at  timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (tenant_id, entity_type)
);

CREATE TABLE IF NOT EXISTS pubid_counters (
	tenant_id   uuid NOT NULL REFERENCES tenants(id),
	entity_type text NOT NULL,
	current_val bigint NOT NULL DEFAULT 0,
	PRIMARY KEY (tenant_id, entity_type)
);
`

// EnsureSchema applies the service schema to the shared database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
