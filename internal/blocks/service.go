package blocks

import (
	"context"
	"fmt"

	"courtside/internal/schedule"
	"courtside/internal/shared/apperrors"
)

// Service interface defines the contract for blocked slot management
type Service interface {
	BlockSlot(ctx context.Context, req BlockRequest, blockedBy string) (*BlockedSlot, error)
	UnblockSlot(ctx context.Context, req UnblockRequest) error
	ListBlocked(ctx context.Context, courtID, workday string) ([]BlockedSlot, error)
	BlockedLabels(ctx context.Context, courtID, workday string) ([]string, error)
}

type service struct {
	repo    Repository
	workday *schedule.Workday
}

func NewService(repo Repository, workday *schedule.Workday) Service {
	return &service{repo: repo, workday: workday}
}

func (s *service) BlockSlot(ctx context.Context, req BlockRequest, blockedBy string) (*BlockedSlot, error) {
	if _, err := s.workday.ParseDate(req.Date); err != nil {
		return nil, err
	}
	if _, _, err := schedule.ParseClock(req.SlotLabel); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, req.CourtID, req.Date, req.SlotLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing block: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("slot_label", "slot is already blocked")
	}

	block := &BlockedSlot{
		CourtID:     req.CourtID,
		WorkdayDate: req.Date,
		SlotLabel:   req.SlotLabel,
		Reason:      req.Reason,
		BlockedBy:   blockedBy,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to block slot: %w", err)
	}
	return block, nil
}

func (s *service) UnblockSlot(ctx context.Context, req UnblockRequest) error {
	affected, err := s.repo.Delete(ctx, req.CourtID, req.Date, req.SlotLabel)
	if err != nil {
		return fmt.Errorf("failed to unblock slot: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("blocked slot", fmt.Sprintf("%s %s %s", req.CourtID, req.Date, req.SlotLabel))
	}
	return nil
}

func (s *service) ListBlocked(ctx context.Context, courtID, workday string) ([]BlockedSlot, error) {
	return s.repo.List(ctx, courtID, workday)
}

func (s *service) BlockedLabels(ctx context.Context, courtID, workday string) ([]string, error) {
	return s.repo.ListLabels(ctx, courtID, workday)
}
