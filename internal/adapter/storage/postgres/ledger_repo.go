package postgres

import (
	"context"
	"errors"
	"fmt"

	"fonebridge/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// execer covers both Pool and pgx.Tx so the upsert can run inside or
// outside a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const (
	insertWalletSQL = `INSERT INTO wallets (addr) VALUES ($1) ON CONFLICT (addr) DO NOTHING`

	insertStateSQL = `INSERT INTO user_states (addr, credits, reputation, updated_at)
		VALUES ($1, 0, 0, NOW()) ON CONFLICT (addr) DO NOTHING`

	updateStateSQL = `UPDATE user_states
		SET credits = credits + $2, reputation = reputation + $3, updated_at = NOW()
		WHERE addr = $1`

	insertCompletionSQL = `INSERT INTO mission_completions (addr, mission_id, report, reward, reputation)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
)

// EnsureWallet registers addr if absent. Both inserts are
// insert-or-ignore, so concurrent calls for the same address cannot
// produce duplicates or constraint violations.
func (r *LedgerRepo) EnsureWallet(ctx context.Context, addr string) error {
	return ensureWallet(ctx, r.pool, addr)
}

func ensureWallet(ctx context.Context, db execer, addr string) error {
	if _, err := db.Exec(ctx, insertWalletSQL, addr); err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	if _, err := db.Exec(ctx, insertStateSQL, addr); err != nil {
		return fmt.Errorf("insert user state: %w", err)
	}
	return nil
}

// ApplyDelta increments credits and reputation by the given deltas in
// a single additive update. Never read-modify-write: concurrent calls
// for the same address cannot lose updates.
func (r *LedgerRepo) ApplyDelta(ctx context.Context, addr string, credits decimal.Decimal, reputation int64) error {
	if err := ensureWallet(ctx, r.pool, addr); err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, updateStateSQL, addr, credits, reputation); err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	return nil
}

// GetState returns the balances for addr, zero-valued when the
// address has never been seen. Querying an unknown address is a
// valid, cheap operation, not an error.
func (r *LedgerRepo) GetState(ctx context.Context, addr string) (*domain.UserState, error) {
	query := `SELECT addr, credits, reputation, updated_at FROM user_states WHERE addr = $1`

	s := &domain.UserState{}
	err := r.pool.QueryRow(ctx, query, addr).Scan(&s.Addr, &s.Credits, &s.Reputation, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ZeroState(addr), nil
		}
		return nil, fmt.Errorf("get user state: %w", err)
	}
	return s, nil
}

// RecordMissionCompletion appends the history row and applies its
// deltas inside one transaction, so a failure of either write rolls
// back the whole completion. No de-duplication: identical calls
// append identical rows and double-apply the deltas.
func (r *LedgerRepo) RecordMissionCompletion(ctx context.Context, mc *domain.MissionCompletion) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin mission completion: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := ensureWallet(ctx, tx, mc.Addr); err != nil {
		return err
	}

	err = tx.QueryRow(ctx, insertCompletionSQL,
		mc.Addr, mc.MissionID, mc.Report, mc.Reward, mc.Reputation,
	).Scan(&mc.ID, &mc.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert mission completion: %w", err)
	}

	if _, err := tx.Exec(ctx, updateStateSQL, mc.Addr, mc.Reward, mc.Reputation); err != nil {
		return fmt.Errorf("apply completion delta: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit mission completion: %w", err)
	}
	return nil
}

// ListMissionCompletions returns the history for addr, newest first.
func (r *LedgerRepo) ListMissionCompletions(ctx context.Context, addr string) ([]domain.MissionCompletion, error) {
	query := `SELECT id, addr, mission_id, report, reward, reputation, created_at
		FROM mission_completions WHERE addr = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, addr)
	if err != nil {
		return nil, fmt.Errorf("list mission completions: %w", err)
	}
	defer rows.Close()

	var completions []domain.MissionCompletion
	for rows.Next() {
		var mc domain.MissionCompletion
		if err := rows.Scan(&mc.ID, &mc.Addr, &mc.MissionID, &mc.Report, &mc.Reward, &mc.Reputation, &mc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mission completion: %w", err)
		}
		completions = append(completions, mc)
	}
	return completions, rows.Err()
}
