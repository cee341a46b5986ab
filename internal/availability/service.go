package availability

import (
	"context"
	"fmt"
	"sort"

	"courtside/internal/schedule"

	"gorm.io/gorm"
)

// CourtResolver is the slice of the court catalog this package needs
// (defined here to avoid a package cycle).
type CourtResolver interface {
	ConflictScope(ctx context.Context, id string) ([]string, string, error)
}

// Service resolves which slots of a court's workday cannot be booked.
// Results are advisory reads; CheckLocked inside the booking transaction
// is the authoritative answer.
type Service interface {
	UnavailableSlots(ctx context.Context, courtID, workdayDate string) ([]string, error)
	Check(ctx context.Context, courtID, workdayDate string, slots []string) ([]string, error)
	CheckLocked(ctx context.Context, tx *gorm.DB, conflictKey string, courtIDs []string, workdayDate string, slots []string) ([]string, error)
}

type service struct {
	repo    Repository
	courts  CourtResolver
	workday *schedule.Workday
}

func NewService(repo Repository, courts CourtResolver, workday *schedule.Workday) Service {
	return &service{repo: repo, courts: courts, workday: workday}
}

// UnavailableSlots returns the union of booked and blocked slot labels for
// the court's workday, in workday order. For a court in a shared group the
// claims of every group member count against it.
func (s *service) UnavailableSlots(ctx context.Context, courtID, workdayDate string) ([]string, error) {
	if _, err := s.workday.ParseDate(workdayDate); err != nil {
		return nil, err
	}

	courtIDs, conflictKey, err := s.courts.ConflictScope(ctx, courtID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimedLabels(ctx, conflictKey, workdayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read booked slots: %w", err)
	}

	blocked, err := s.repo.BlockedLabels(ctx, courtIDs, workdayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read blocked slots: %w", err)
	}

	seen := make(map[string]struct{}, len(claimed)+len(blocked))
	labels := make([]string, 0, len(claimed)+len(blocked))
	for _, l := range append(claimed, blocked...) {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		labels = append(labels, l)
	}

	s.sortWorkdayOrder(labels)
	return labels, nil
}

// Check returns the subset of the requested slots that are already taken.
func (s *service) Check(ctx context.Context, courtID, workdayDate string, slots []string) ([]string, error) {
	unavailable, err := s.UnavailableSlots(ctx, courtID, workdayDate)
	if err != nil {
		return nil, err
	}
	return intersect(slots, unavailable), nil
}

// CheckLocked re-checks the requested slots inside the booking transaction.
// Blocked slots are included so an admin block landing between preview and
// commit still rejects the booking.
func (s *service) CheckLocked(ctx context.Context, tx *gorm.DB, conflictKey string, courtIDs []string, workdayDate string, slots []string) ([]string, error) {
	claimed, err := s.repo.ClaimedLabelsLocked(tx, conflictKey, workdayDate, slots)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check booked slots: %w", err)
	}

	blocked, err := s.repo.BlockedLabels(ctx, courtIDs, workdayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check blocked slots: %w", err)
	}

	conflicts := intersect(slots, append(claimed, blocked...))
	s.sortWorkdayOrder(conflicts)
	return conflicts, nil
}

func intersect(requested, taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, l := range taken {
		takenSet[l] = struct{}{}
	}

	var conflicts []string
	for _, l := range requested {
		if _, hit := takenSet[l]; hit {
			conflicts = append(conflicts, l)
		}
	}
	return conflicts
}

func (s *service) sortWorkdayOrder(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		return s.workday.SlotOrder(labels[i]) < s.workday.SlotOrder(labels[j])
	})
}
