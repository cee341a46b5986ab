package promos

import (
	"context"
	"testing"
	"time"

	"courtside/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PromoCode), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]PromoCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]PromoCode), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, promo *PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, promo *PromoCode) error {
	return m.Called(ctx, promo).Error(0)
}

func (m *mockRepository) Deactivate(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) IncrementUsage(tx *gorm.DB, code string) (int64, error) {
	args := m.Called(tx, code)
	return args.Get(0).(int64), args.Error(1)
}

func testWorkday(t *testing.T) *schedule.Workday {
	t.Helper()
	w, err := schedule.NewWorkday("Asia/Karachi", 330)
	require.NoError(t, err)
	return w
}

func i64(v int64) *int64 { return &v }
func intPtr(v int) *int  { return &v }

func TestValidatePercentageCappedByMaxDiscount(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "SAVE10").Return(&PromoCode{
		Code:          "SAVE10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		MaxDiscount:   i64(500),
		IsActive:      true,
	}, nil)

	result, err := svc.Validate(context.Background(), "SAVE10", 10000, "padel", time.Now())

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(500), result.Discount) // 10% of 10000 is 1000, capped at 500
	assert.Equal(t, int64(9500), result.Final)
}

func TestValidatePercentageFloors(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "SAVE15").Return(&PromoCode{
		Code:          "SAVE15",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 15,
		IsActive:      true,
	}, nil)

	result, err := svc.Validate(context.Background(), "SAVE15", 1255, "padel", time.Now())

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(188), result.Discount) // floor(1255*0.15) = floor(188.25)
	assert.Equal(t, int64(1067), result.Final)
}

func TestValidateFixedDiscountCappedAtOrderAmount(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "FLAT2000").Return(&PromoCode{
		Code:          "FLAT2000",
		DiscountType:  DiscountTypeFixed,
		DiscountValue: 2000,
		IsActive:      true,
	}, nil)

	result, err := svc.Validate(context.Background(), "FLAT2000", 1500, "futsal", time.Now())

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(1500), result.Discount)
	assert.Equal(t, int64(0), result.Final)
}

func TestValidateUnknownCode(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "NOPE").Return(nil, nil)

	result, err := svc.Validate(context.Background(), "NOPE", 5000, "padel", time.Now())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid promo code", result.Reason)
	assert.Equal(t, int64(0), result.Discount)
	assert.Equal(t, int64(5000), result.Final)
}

func TestValidateRejectionOrder(t *testing.T) {
	// An inactive, expired, exhausted code below minimum for the wrong sport:
	// the first failing check wins, and each fix surfaces the next reason.
	base := PromoCode{
		Code:             "STACK",
		DiscountType:     DiscountTypePercentage,
		DiscountValue:    10,
		MinAmount:        i64(5000),
		UsageLimit:       intPtr(1),
		UsageCount:       1,
		ApplicableSports: []string{"cricket"},
	}
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(p *PromoCode)
		amount int64
		sport  string
		reason string
	}{
		{
			name:   "inactive checked first",
			mutate: func(p *PromoCode) { p.IsActive = false; p.ValidUntil = &past },
			amount: 1000, sport: "padel",
			reason: "Promo code is not active",
		},
		{
			name:   "expiry checked before usage",
			mutate: func(p *PromoCode) { p.IsActive = true; p.ValidUntil = &past },
			amount: 1000, sport: "padel",
			reason: "Promo code has expired",
		},
		{
			name:   "usage checked before minimum",
			mutate: func(p *PromoCode) { p.IsActive = true },
			amount: 1000, sport: "padel",
			reason: "Promo code usage limit exceeded",
		},
		{
			name:   "minimum checked before sport",
			mutate: func(p *PromoCode) { p.IsActive = true; p.UsageCount = 0 },
			amount: 1000, sport: "padel",
			reason: "Minimum booking amount of 5000 required",
		},
		{
			name:   "sport checked last",
			mutate: func(p *PromoCode) { p.IsActive = true; p.UsageCount = 0 },
			amount: 6000, sport: "padel",
			reason: "Promo code not applicable to padel",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			promo := base
			tc.mutate(&promo)

			repo := new(mockRepository)
			svc := NewService(repo, testWorkday(t))
			repo.On("GetByCode", mock.Anything, "STACK").Return(&promo, nil)

			result, err := svc.Validate(context.Background(), "STACK", tc.amount, tc.sport, today)

			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, tc.reason, result.Reason)
		})
	}
}

func TestValidateNotYetValid(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetByCode", mock.Anything, "SOON").Return(&PromoCode{
		Code:          "SOON",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		ValidFrom:     &future,
	}, nil)

	result, err := svc.Validate(context.Background(), "SOON", 5000, "padel",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Promo code is not yet valid", result.Reason)
}

func TestValidateEmptySportListAdmitsAll(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "ANY").Return(&PromoCode{
		Code:          "ANY",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 5,
		IsActive:      true,
	}, nil)

	result, err := svc.Validate(context.Background(), "ANY", 2000, "pickleball", time.Now())

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(100), result.Discount)
}

func TestApplyFailsWhenLimitRacedAway(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("IncrementUsage", mock.Anything, "GONE").Return(int64(0), nil)

	err := svc.Apply(&gorm.DB{}, "GONE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage limit")
}

func TestCreateCodeRejectsDuplicate(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "DUP").Return(&PromoCode{Code: "DUP"}, nil)

	_, err := svc.CreateCode(context.Background(), PromoRequest{
		Code:          "DUP",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateCodeUppercasesAndStores(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testWorkday(t))

	repo.On("GetByCode", mock.Anything, "save10").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *PromoCode) bool {
		return p.Code == "SAVE10" && p.IsActive
	})).Return(nil)

	promo, err := svc.CreateCode(context.Background(), PromoRequest{
		Code:          "save10",
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", promo.Code)
	repo.AssertExpectations(t)
}
