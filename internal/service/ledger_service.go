package service

import (
	"context"
	"strings"

	"fonebridge/internal/core/domain"
	"fonebridge/internal/core/ports"
	"fonebridge/pkg/apperror"

	"github.com/rs/zerolog"
)

// ledgerService implements ports.LedgerService. Database failures are
// logged here with full detail; callers only ever see the generic
// SYS_001 message.
type ledgerService struct {
	repo ports.LedgerRepository
	log  zerolog.Logger
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repo ports.LedgerRepository, log zerolog.Logger) ports.LedgerService {
	return &ledgerService{repo: repo, log: log}
}

func (s *ledgerService) RegisterWallet(ctx context.Context, addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return apperror.Validation("addr is required")
	}

	if err := s.repo.EnsureWallet(ctx, addr); err != nil {
		s.log.Error().Err(err).Str("addr", addr).Msg("failed to register wallet")
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *ledgerService) GetState(ctx context.Context, addr string) (*domain.UserState, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, apperror.Validation("addr is required")
	}

	state, err := s.repo.GetState(ctx, addr)
	if err != nil {
		s.log.Error().Err(err).Str("addr", addr).Msg("failed to read user state")
		return nil, apperror.ErrDatabaseError(err)
	}
	return state, nil
}

func (s *ledgerService) CompleteMission(ctx context.Context, in ports.CompleteMissionInput) error {
	addr := strings.TrimSpace(in.Addr)
	if addr == "" {
		return apperror.Validation("addr is required")
	}
	if strings.TrimSpace(in.MissionID) == "" {
		return apperror.Validation("missionId is required")
	}

	mc := &domain.MissionCompletion{
		Addr:       addr,
		MissionID:  in.MissionID,
		Report:     in.Report,
		Reward:     in.Reward,
		Reputation: in.Reputation,
	}
	if err := s.repo.RecordMissionCompletion(ctx, mc); err != nil {
		s.log.Error().Err(err).
			Str("addr", addr).
			Str("mission_id", in.MissionID).
			Msg("failed to record mission completion")
		return apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("addr", addr).
		Str("mission_id", in.MissionID).
		Str("reward", in.Reward.String()).
		Int64("reputation", in.Reputation).
		Int64("completion_id", mc.ID).
		Msg("mission completion recorded")
	return nil
}

func (s *ledgerService) ListMissions(ctx context.Context, addr string) ([]domain.MissionCompletion, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, apperror.Validation("addr is required")
	}

	completions, err := s.repo.ListMissionCompletions(ctx, addr)
	if err != nil {
		s.log.Error().Err(err).Str("addr", addr).Msg("failed to list mission completions")
		return nil, apperror.ErrDatabaseError(err)
	}
	return completions, nil
}
