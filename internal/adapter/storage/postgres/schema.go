package postgres

import (
	"context"
	"fmt"
)

// schemaStatements is the idempotent ledger schema. Both dependent
// tables cascade on wallet deletion so removing a wallet removes its
// state and history in one statement.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS wallets (
		addr       TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_states (
		addr       TEXT PRIMARY KEY REFERENCES wallets(addr) ON DELETE CASCADE,
		credits    NUMERIC NOT NULL DEFAULT 0,
		reputation BIGINT  NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS mission_completions (
		id         BIGSERIAL PRIMARY KEY,
		addr       TEXT NOT NULL REFERENCES wallets(addr) ON DELETE CASCADE,
		mission_id TEXT NOT NULL,
		report     TEXT,
		reward     NUMERIC NOT NULL DEFAULT 0,
		reputation BIGINT  NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mission_completions_addr ON mission_completions (addr)`,
}

// InitSchema creates the ledger tables if absent. It runs once at
// process start; a failure here must abort startup, the process may
// not serve traffic against an uninitialized schema.
func InitSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
