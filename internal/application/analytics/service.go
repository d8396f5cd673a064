package analytics

import (
	"context"
	"fmt"
	"time"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/repository"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// Service runs the aggregation pipeline: every method fetches a fully
// materialized order snapshot, runs a pure fold over it and returns (or
// persists) the derived record. No mutable state is carried between calls, so
// any method can be re-invoked on every new snapshot.
type Service struct {
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
	prepState repository.PrepStateRepository
	log       logger.Logger

	loc *time.Location
	now func() time.Time
}

func NewService(
	orders repository.OrderRepository,
	analyticsRepo repository.AnalyticsRepository,
	prepState repository.PrepStateRepository,
	loc *time.Location,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		analytics: analyticsRepo,
		prepState: prepState,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

// RecomputeDay rebuilds the daily analytics record for the calendar day
// containing date and persists it. Recomputation is idempotent; the record id
// is derived from the day, so repeated runs overwrite the same document.
func (s *Service) RecomputeDay(ctx context.Context, date time.Time) (*domain.DailyAnalytics, error) {
	_, end := order.DayBounds(date, s.loc)

	// History up to the end of the day feeds the new-vs-returning split.
	orders, err := s.orders.ListRange(ctx, time.Time{}, end)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	record := domain.BuildDaily(orders, date, s.loc)
	if err := s.analytics.SaveDaily(ctx, &record); err != nil {
		return nil, fmt.Errorf("save daily analytics: %w", err)
	}

	s.log.Info("daily analytics recomputed",
		logger.String("id", record.ID),
		logger.Int("total_orders", record.TotalOrders),
		logger.Int("total_revenue", record.TotalRevenue),
	)
	return &record, nil
}

// DailyFor returns the stored record for the day, computing and persisting it
// when none exists yet.
func (s *Service) DailyFor(ctx context.Context, date time.Time) (*domain.DailyAnalytics, error) {
	id := domain.DailyID(date, s.loc)

	record, err := s.analytics.FindDaily(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find daily analytics: %w", err)
	}
	if record != nil {
		return record, nil
	}
	return s.RecomputeDay(ctx, date)
}

// Dashboard computes the KPI record for a period window.
func (s *Service) Dashboard(ctx context.Context, period domain.Period) (*domain.DashboardMetrics, error) {
	orders, err := s.OrdersForPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	metrics := domain.BuildDashboard(orders)
	return &metrics, nil
}

// OrdersForPeriod fetches the order window for a period, newest first.
func (s *Service) OrdersForPeriod(ctx context.Context, period domain.Period) ([]order.Order, error) {
	start, end := period.Window(s.now(), s.loc)
	orders, err := s.orders.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// AnalyticsForPeriod returns the stored daily records inside a period window.
func (s *Service) AnalyticsForPeriod(ctx context.Context, period domain.Period) ([]domain.DailyAnalytics, error) {
	start, end := period.Window(s.now(), s.loc)
	records, err := s.analytics.ListDailyRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily analytics: %w", err)
	}
	return records, nil
}

// PrepSheet aggregates the day's unprepared orders into kitchen work items
// and merges in the persisted prepared flags.
func (s *Service) PrepSheet(ctx context.Context, date time.Time) ([]domain.PrepItem, error) {
	start, end := order.DayBounds(date, s.loc)

	orders, err := s.orders.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	sheet := domain.BuildPrepSheet(orders)

	flags, err := s.prepState.Flags(ctx, order.DayKey(date, s.loc))
	if err != nil {
		// A missing side table only loses checkmarks, not the sheet itself.
		s.log.Warn("load prep flags failed", logger.Error(err))
		return sheet, nil
	}
	return domain.MergePrepFlags(sheet, flags), nil
}

// SetItemPrepared records the prepared flag for one (item, size) bucket.
func (s *Service) SetItemPrepared(ctx context.Context, date time.Time, menuItemName, size string, prepared bool) error {
	dayKey := order.DayKey(date, s.loc)
	if err := s.prepState.SetPrepared(ctx, dayKey, domain.PrepKey(menuItemName, size), prepared); err != nil {
		return fmt.Errorf("set prepared: %w", err)
	}
	return nil
}

// MarkAllPrepared flags every bucket of the day's current sheet as prepared.
func (s *Service) MarkAllPrepared(ctx context.Context, date time.Time) error {
	sheet, err := s.PrepSheet(ctx, date)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(sheet))
	for _, item := range sheet {
		keys = append(keys, domain.PrepKey(item.MenuItemName, item.Size))
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.prepState.MarkAll(ctx, order.DayKey(date, s.loc), keys); err != nil {
		return fmt.Errorf("mark all prepared: %w", err)
	}
	return nil
}

// ResetPreparation clears the day's prepared flags.
func (s *Service) ResetPreparation(ctx context.Context, date time.Time) error {
	if err := s.prepState.Reset(ctx, order.DayKey(date, s.loc)); err != nil {
		return fmt.Errorf("reset preparation: %w", err)
	}
	return nil
}
