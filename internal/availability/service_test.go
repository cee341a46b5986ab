package availability

import (
	"context"
	"testing"

	"courtside/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ClaimedLabels(ctx context.Context, conflictKey, workdayDate string) ([]string, error) {
	args := m.Called(ctx, conflictKey, workdayDate)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) BlockedLabels(ctx context.Context, courtIDs []string, workdayDate string) ([]string, error) {
	args := m.Called(ctx, courtIDs, workdayDate)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepository) ClaimedLabelsLocked(tx *gorm.DB, conflictKey, workdayDate string, labels []string) ([]string, error) {
	args := m.Called(tx, conflictKey, workdayDate, labels)
	return args.Get(0).([]string), args.Error(1)
}

type mockCourts struct {
	mock.Mock
}

func (m *mockCourts) ConflictScope(ctx context.Context, id string) ([]string, string, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]string), args.String(1), args.Error(2)
}

func newTestService(t *testing.T, repo Repository, courts CourtResolver) Service {
	t.Helper()
	w, err := schedule.NewWorkday("Asia/Karachi", 330)
	require.NoError(t, err)
	return NewService(repo, courts, w)
}

func TestUnavailableSlotsUnionsClaimsAndBlocks(t *testing.T) {
	repo := new(mockRepository)
	courts := new(mockCourts)
	svc := newTestService(t, repo, courts)

	courts.On("ConflictScope", mock.Anything, "padel-1").
		Return([]string{"padel-1"}, "padel-1", nil)
	repo.On("ClaimedLabels", mock.Anything, "padel-1", "2025-06-01").
		Return([]string{"00:00", "23:00"}, nil)
	repo.On("BlockedLabels", mock.Anything, []string{"padel-1"}, "2025-06-01").
		Return([]string{"23:00", "17:30"}, nil)

	slots, err := svc.UnavailableSlots(context.Background(), "padel-1", "2025-06-01")

	require.NoError(t, err)
	// Deduplicated and in workday order: post-midnight slots come last
	assert.Equal(t, []string{"17:30", "23:00", "00:00"}, slots)
}

func TestUnavailableSlotsSharedGroupUsesGroupKey(t *testing.T) {
	repo := new(mockRepository)
	courts := new(mockCourts)
	svc := newTestService(t, repo, courts)

	courts.On("ConflictScope", mock.Anything, "futsal-1").
		Return([]string{"cricket-2", "futsal-1"}, "multi-130x60", nil)
	repo.On("ClaimedLabels", mock.Anything, "multi-130x60", "2025-06-01").
		Return([]string{"18:00"}, nil)
	repo.On("BlockedLabels", mock.Anything, []string{"cricket-2", "futsal-1"}, "2025-06-01").
		Return([]string{}, nil)

	slots, err := svc.UnavailableSlots(context.Background(), "futsal-1", "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00"}, slots)
	repo.AssertExpectations(t)
}

func TestUnavailableSlotsRejectsMalformedDate(t *testing.T) {
	svc := newTestService(t, new(mockRepository), new(mockCourts))

	_, err := svc.UnavailableSlots(context.Background(), "padel-1", "06/01/2025")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestCheckReturnsOnlyRequestedConflicts(t *testing.T) {
	repo := new(mockRepository)
	courts := new(mockCourts)
	svc := newTestService(t, repo, courts)

	courts.On("ConflictScope", mock.Anything, "padel-1").
		Return([]string{"padel-1"}, "padel-1", nil)
	repo.On("ClaimedLabels", mock.Anything, "padel-1", "2025-06-01").
		Return([]string{"17:00", "20:00"}, nil)
	repo.On("BlockedLabels", mock.Anything, []string{"padel-1"}, "2025-06-01").
		Return([]string{}, nil)

	conflicts, err := svc.Check(context.Background(), "padel-1", "2025-06-01",
		[]string{"16:30", "17:00", "17:30"})

	require.NoError(t, err)
	assert.Equal(t, []string{"17:00"}, conflicts)
}

func TestCheckLockedIncludesBlocks(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(t, repo, new(mockCourts))

	tx := &gorm.DB{}
	repo.On("ClaimedLabelsLocked", tx, "padel-1", "2025-06-01", []string{"17:00", "17:30"}).
		Return([]string{}, nil)
	repo.On("BlockedLabels", mock.Anything, []string{"padel-1"}, "2025-06-01").
		Return([]string{"17:30"}, nil)

	conflicts, err := svc.CheckLocked(context.Background(), tx, "padel-1", []string{"padel-1"}, "2025-06-01",
		[]string{"17:00", "17:30"})

	require.NoError(t, err)
	assert.Equal(t, []string{"17:30"}, conflicts)
}
