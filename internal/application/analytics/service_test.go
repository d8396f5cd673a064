package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListRange(ctx context.Context, start, end time.Time) ([]order.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) NextDailySequence(ctx context.Context, dayKey string) (int, error) {
	args := m.Called(ctx, dayKey)
	return args.Int(0), args.Error(1)
}

// MockAnalyticsRepository mocks repository.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) SaveDaily(ctx context.Context, d *domain.DailyAnalytics) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) FindDaily(ctx context.Context, id string) (*domain.DailyAnalytics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepository) ListDailyRange(ctx context.Context, start, end time.Time) ([]domain.DailyAnalytics, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyAnalytics), args.Error(1)
}

// MockPrepStateRepository mocks repository.PrepStateRepository.
type MockPrepStateRepository struct {
	mock.Mock
}

func (m *MockPrepStateRepository) SetPrepared(ctx context.Context, dayKey, itemKey string, prepared bool) error {
	args := m.Called(ctx, dayKey, itemKey, prepared)
	return args.Error(0)
}

func (m *MockPrepStateRepository) Flags(ctx context.Context, dayKey string) (map[string]bool, error) {
	args := m.Called(ctx, dayKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPrepStateRepository) MarkAll(ctx context.Context, dayKey string, itemKeys []string) error {
	args := m.Called(ctx, dayKey, itemKeys)
	return args.Error(0)
}

func (m *MockPrepStateRepository) Reset(ctx context.Context, dayKey string) error {
	args := m.Called(ctx, dayKey)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *MockOrderRepository, *MockAnalyticsRepository, *MockPrepStateRepository) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	log, err := logger.NewZapLogger("development")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	analyticsRepo := new(MockAnalyticsRepository)
	prepState := new(MockPrepStateRepository)

	svc := NewService(orders, analyticsRepo, prepState, loc, log)
	svc.now = func() time.Time {
		return time.Date(2025, 9, 1, 15, 0, 0, 0, loc)
	}
	return svc, orders, analyticsRepo, prepState
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestRecomputeDay_PersistsDerivedRecord(t *testing.T) {
	svc, orders, analyticsRepo, _ := newTestService(t)
	ctx := context.Background()
	loc := kolkata(t)
	date := time.Date(2025, 9, 1, 12, 0, 0, 0, loc)

	window := []order.Order{
		{
			ID: "HOF010925001", CustomerID: "111", OrderDate: date,
			TotalAmount: 370, Status: order.StatusConfirmed,
			Items: []order.OrderItem{{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 1, UnitPrice: 370}},
		},
	}
	orders.On("ListRange", ctx, time.Time{}, mock.AnythingOfType("time.Time")).Return(window, nil)

	var saved *domain.DailyAnalytics
	analyticsRepo.On("SaveDaily", ctx, mock.AnythingOfType("*analytics.DailyAnalytics")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.DailyAnalytics) }).
		Return(nil)

	record, err := svc.RecomputeDay(ctx, date)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "daily-2025-09-01", record.ID)
	assert.Equal(t, 1, record.TotalOrders)
	assert.Equal(t, 370, record.TotalRevenue)
	assert.Equal(t, saved, record)
}

func TestDailyFor_ReturnsStoredRecordWithoutRecompute(t *testing.T) {
	svc, orders, analyticsRepo, _ := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 12, 0, 0, 0, kolkata(t))

	stored := &domain.DailyAnalytics{ID: "daily-2025-09-01", TotalOrders: 7}
	analyticsRepo.On("FindDaily", ctx, "daily-2025-09-01").Return(stored, nil)

	record, err := svc.DailyFor(ctx, date)

	require.NoError(t, err)
	assert.Equal(t, stored, record)
	orders.AssertNotCalled(t, "ListRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyFor_ComputesOnMiss(t *testing.T) {
	svc, orders, analyticsRepo, _ := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 12, 0, 0, 0, kolkata(t))

	analyticsRepo.On("FindDaily", ctx, "daily-2025-09-01").Return(nil, nil)
	orders.On("ListRange", ctx, time.Time{}, mock.AnythingOfType("time.Time")).Return([]order.Order{}, nil)
	analyticsRepo.On("SaveDaily", ctx, mock.Anything).Return(nil)

	record, err := svc.DailyFor(ctx, date)

	require.NoError(t, err)
	assert.Equal(t, "daily-2025-09-01", record.ID)
	assert.Zero(t, record.TotalOrders)
	analyticsRepo.AssertExpectations(t)
}

func TestDashboard_UsesPeriodWindow(t *testing.T) {
	svc, orders, _, _ := newTestService(t)
	ctx := context.Background()
	loc := kolkata(t)

	wantStart := time.Date(2025, 9, 1, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 9, 2, 0, 0, 0, 0, loc)
	orders.On("ListRange", ctx, wantStart, wantEnd).Return([]order.Order{
		{ID: "HOF010925001", CustomerID: "111", TotalAmount: 500, Status: order.StatusConfirmed,
			Items: []order.OrderItem{{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 1, UnitPrice: 500}}},
	}, nil)

	metrics, err := svc.Dashboard(ctx, domain.PeriodToday)

	require.NoError(t, err)
	assert.Equal(t, 1, metrics.NumberOfOrders)
	assert.Equal(t, 500, metrics.TotalRevenue)
	orders.AssertExpectations(t)
}

func TestPrepSheet_MergesPersistedFlags(t *testing.T) {
	svc, orders, _, prepState := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 9, 0, 0, 0, kolkata(t))

	window := []order.Order{
		{ID: "HOF010925001", Status: order.StatusConfirmed, Items: []order.OrderItem{
			{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 2, UnitPrice: 370},
			{MenuItemName: "Dry Fruit Laddu", Size: "250g", Quantity: 1, UnitPrice: 260},
		}},
	}
	orders.On("ListRange", ctx, mock.Anything, mock.Anything).Return(window, nil)
	prepState.On("Flags", ctx, "2025-09-01").Return(map[string]bool{
		domain.PrepKey("Ragi Laddu", "500g"): true,
	}, nil)

	sheet, err := svc.PrepSheet(ctx, date)

	require.NoError(t, err)
	require.Len(t, sheet, 2)
	// Sheet is sorted by name then size.
	assert.Equal(t, "Dry Fruit Laddu", sheet[0].MenuItemName)
	assert.False(t, sheet[0].IsPrepared)
	assert.Equal(t, "Ragi Laddu", sheet[1].MenuItemName)
	assert.True(t, sheet[1].IsPrepared)
}

func TestPrepSheet_FlagStoreFailureDegradesGracefully(t *testing.T) {
	svc, orders, _, prepState := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 9, 0, 0, 0, kolkata(t))

	window := []order.Order{
		{ID: "HOF010925001", Status: order.StatusPending, Items: []order.OrderItem{
			{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 2, UnitPrice: 370},
		}},
	}
	orders.On("ListRange", ctx, mock.Anything, mock.Anything).Return(window, nil)
	prepState.On("Flags", ctx, "2025-09-01").Return(nil, errors.New("redis unavailable"))

	sheet, err := svc.PrepSheet(ctx, date)

	require.NoError(t, err)
	require.Len(t, sheet, 1)
	assert.False(t, sheet[0].IsPrepared)
}

func TestMarkAllPrepared_FlagsEveryBucket(t *testing.T) {
	svc, orders, _, prepState := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 9, 0, 0, 0, kolkata(t))

	window := []order.Order{
		{ID: "HOF010925001", Status: order.StatusPending, Items: []order.OrderItem{
			{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 2, UnitPrice: 370},
			{MenuItemName: "Mixture", Size: "250g", Quantity: 1, UnitPrice: 120},
		}},
	}
	orders.On("ListRange", ctx, mock.Anything, mock.Anything).Return(window, nil)
	prepState.On("Flags", ctx, "2025-09-01").Return(map[string]bool{}, nil)
	prepState.On("MarkAll", ctx, "2025-09-01", []string{
		domain.PrepKey("Mixture", "250g"),
		domain.PrepKey("Ragi Laddu", "500g"),
	}).Return(nil)

	err := svc.MarkAllPrepared(ctx, date)

	require.NoError(t, err)
	prepState.AssertExpectations(t)
}

func TestMarkAllPrepared_EmptySheetSkipsWrite(t *testing.T) {
	svc, orders, _, prepState := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 9, 0, 0, 0, kolkata(t))

	orders.On("ListRange", ctx, mock.Anything, mock.Anything).Return([]order.Order{}, nil)
	prepState.On("Flags", ctx, "2025-09-01").Return(map[string]bool{}, nil)

	err := svc.MarkAllPrepared(ctx, date)

	require.NoError(t, err)
	prepState.AssertNotCalled(t, "MarkAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPreparation(t *testing.T) {
	svc, _, _, prepState := newTestService(t)
	ctx := context.Background()
	date := time.Date(2025, 9, 1, 9, 0, 0, 0, kolkata(t))

	prepState.On("Reset", ctx, "2025-09-01").Return(nil)

	require.NoError(t, svc.ResetPreparation(ctx, date))
	prepState.AssertExpectations(t)
}
