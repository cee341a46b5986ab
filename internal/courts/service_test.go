package courts

import (
	"context"
	"testing"

	"courtside/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, activeOnly bool) ([]Court, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]Court), args.Error(1)
}

func (m *mockRepository) ListByGroup(ctx context.Context, group string) ([]Court, error) {
	args := m.Called(ctx, group)
	return args.Get(0).([]Court), args.Error(1)
}

func (m *mockRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) CreateBatch(ctx context.Context, batch []Court) error {
	return m.Called(ctx, batch).Error(0)
}

func TestConflictScopeStandaloneCourt(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, 0)

	repo.On("GetByID", mock.Anything, "padel-1").
		Return(&Court{ID: "padel-1", Sport: "padel"}, nil)

	ids, key, err := svc.ConflictScope(context.Background(), "padel-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"padel-1"}, ids)
	assert.Equal(t, "padel-1", key)
}

func TestConflictScopeSharedGroup(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, 0)

	repo.On("GetByID", mock.Anything, "futsal-1").
		Return(&Court{ID: "futsal-1", Sport: "futsal", SharedGroup: "multi-130x60"}, nil)
	repo.On("ListByGroup", mock.Anything, "multi-130x60").
		Return([]Court{
			{ID: "cricket-2", Sport: "cricket", SharedGroup: "multi-130x60"},
			{ID: "futsal-1", Sport: "futsal", SharedGroup: "multi-130x60"},
		}, nil)

	ids, key, err := svc.ConflictScope(context.Background(), "futsal-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"cricket-2", "futsal-1"}, ids)
	assert.Equal(t, "multi-130x60", key)
}

func TestGetCourtNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, 0)

	repo.On("GetByID", mock.Anything, "squash-1").
		Return(nil, apperrors.NewNotFoundError("court", "squash-1"))

	_, err := svc.GetCourt(context.Background(), "squash-1")

	var nfErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListCourtsWithoutCacheReadsStore(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil, 0)

	repo.On("List", mock.Anything, true).Return(DefaultCourts(), nil)

	list, err := svc.ListCourts(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 6)
}

func TestDefaultCourtsShareOneSurface(t *testing.T) {
	byID := make(map[string]Court)
	for _, c := range DefaultCourts() {
		byID[c.ID] = c
	}

	cricket := byID["cricket-2"]
	futsal := byID["futsal-1"]
	assert.Equal(t, cricket.ConflictKey(), futsal.ConflictKey())

	padel := byID["padel-1"]
	assert.Equal(t, "padel-1", padel.ConflictKey())
}
