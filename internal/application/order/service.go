package order

import (
	"context"
	"fmt"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/config"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/repository"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// Order event types carried on the order-events topic.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// Publisher pushes order events to the messaging layer. Publish failures are
// logged, never surfaced: the store is the source of truth and the analytics
// pipeline catches up on the next event or on-demand recompute.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, eventType string, o *domain.Order) error
}

type Service struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	menu      repository.MenuRepository
	publisher Publisher
	log       logger.Logger

	prefix string
	loc    *time.Location
	now    func() time.Time
}

type CreateOrderItemCommand struct {
	MenuItemID string `json:"menu_item_id"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

type CreateOrderCommand struct {
	CustomerName string                   `json:"customer_name"`
	MobileNumber string                   `json:"mobile_number"`
	Address      string                   `json:"address"`
	DeliveryMode string                   `json:"delivery_mode"`
	PaymentMode  string                   `json:"payment_mode"`
	Items        []CreateOrderItemCommand `json:"items"`
}

func NewService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	menuRepo repository.MenuRepository,
	publisher Publisher,
	biz config.BusinessConfig,
	loc *time.Location,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		menu:      menuRepo,
		publisher: publisher,
		log:       log,
		prefix:    biz.OrderIDPrefix,
		loc:       loc,
		now:       time.Now,
	}
}

// SubmitOrder validates the command, snapshots menu prices, upserts the
// customer, sequences the daily order code and persists the order. Validation
// happens before any write; a sequencing failure aborts the submission.
func (s *Service) SubmitOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	now := s.now()

	items, err := s.priceItems(ctx, cmd.Items)
	if err != nil {
		return nil, err
	}

	o := &domain.Order{
		CustomerID:   cmd.MobileNumber,
		CustomerName: cmd.CustomerName,
		MobileNumber: cmd.MobileNumber,
		Address:      cmd.Address,
		DeliveryMode: deliveryModeOrDefault(cmd.DeliveryMode),
		PaymentMode:  paymentModeOrDefault(cmd.PaymentMode),
		Items:        items,
		OrderDate:    now,
		Status:       domain.StatusPending,
	}
	o.RecomputeTotal()

	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := s.upsertCustomer(ctx, cmd, now); err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	// The code is derived at submission time, after the day boundary is
	// fixed; it is never cached across days.
	seq, err := s.orders.NextDailySequence(ctx, domain.DayKey(now, s.loc))
	if err != nil {
		return nil, fmt.Errorf("next daily sequence: %w", err)
	}
	o.ID = domain.FormatID(s.prefix, now, s.loc, seq)

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.customers.RecordOrder(ctx, cmd.MobileNumber, now); err != nil {
		// The order is already committed; a missed counter bump only skews
		// the customer's totalOrders.
		s.log.Warn("record customer order failed", logger.String("customer", cmd.MobileNumber), logger.Error(err))
	}

	s.publish(ctx, EventOrderCreated, o)

	s.log.Info("order submitted",
		logger.String("order_id", o.ID),
		logger.Int("total_amount", o.TotalAmount),
		logger.Int("items", len(o.Items)),
	)
	return o, nil
}

// ListOrders fetches all orders and applies the compound filter in memory,
// preserving the store's newest-first order.
func (s *Service) ListOrders(ctx context.Context, f domain.Filter) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return f.Apply(orders), nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// SetMilestone flips one fulfillment flag and reprojects the status.
func (s *Service) SetMilestone(ctx context.Context, id string, field domain.MilestoneField, value bool) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.SetMilestone(field, value); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.publish(ctx, EventOrderUpdated, o)
	return o, nil
}

// CancelOrder is the explicit administrative transition into CANCELLED.
func (s *Service) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.administrative(ctx, id, (*domain.Order).Cancel)
}

// CompleteOrder is the explicit administrative transition into COMPLETED.
func (s *Service) CompleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.administrative(ctx, id, (*domain.Order).Complete)
}

func (s *Service) administrative(ctx context.Context, id string, transition func(*domain.Order) error) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition(o); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.publish(ctx, EventOrderUpdated, o)
	return o, nil
}

// DeleteOrder removes an order permanently.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.publish(ctx, EventOrderDeleted, o)
	return nil
}

// MenuCatalog returns the current menu.
func (s *Service) MenuCatalog(ctx context.Context) ([]menu.MenuItem, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// ListCustomers returns every customer, most recently active first.
func (s *Service) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

/* ================= helpers ================= */

func validateCommand(cmd CreateOrderCommand) error {
	if cmd.CustomerName == "" {
		return domain.ErrMissingCustomerName
	}
	if cmd.MobileNumber == "" {
		return domain.ErrMissingMobileNumber
	}
	if cmd.Address == "" {
		return domain.ErrMissingAddress
	}
	if len(cmd.Items) == 0 {
		return domain.ErrNoItems
	}
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
	}
	return nil
}

func (s *Service) priceItems(ctx context.Context, cmds []CreateOrderItemCommand) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(cmds))
	for _, cmd := range cmds {
		menuItem, err := s.menu.FindByID(ctx, cmd.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("find menu item %s: %w", cmd.MenuItemID, err)
		}
		if menuItem == nil {
			return nil, fmt.Errorf("menu item %s not found", cmd.MenuItemID)
		}

		item, err := domain.NewOrderItem(
			menuItem.ID,
			menuItem.Name,
			cmd.Size,
			cmd.Quantity,
			menuItem.PriceForSize(cmd.Size),
		)
		if err != nil {
			return nil, fmt.Errorf("item %s (%s): %w", menuItem.Name, cmd.Size, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Service) upsertCustomer(ctx context.Context, cmd CreateOrderCommand, now time.Time) error {
	existing, err := s.customers.FindByPhone(ctx, cmd.MobileNumber)
	if err != nil {
		return err
	}

	c := &customer.Customer{
		ID:             cmd.MobileNumber,
		Name:           cmd.CustomerName,
		MobileNumber:   cmd.MobileNumber,
		Address:        cmd.Address,
		Region:         customer.ExtractRegion(cmd.Address),
		FirstOrderDate: now,
		LastOrderDate:  now,
	}
	if existing != nil {
		c.FirstOrderDate = existing.FirstOrderDate
		c.TotalOrders = existing.TotalOrders
	}

	return s.customers.Upsert(ctx, c)
}

func (s *Service) publish(ctx context.Context, eventType string, o *domain.Order) {
	if err := s.publisher.PublishOrderEvent(ctx, eventType, o); err != nil {
		s.log.Warn("publish order event failed",
			logger.String("event_type", eventType),
			logger.String("order_id", o.ID),
			logger.Error(err),
		)
	}
}

func deliveryModeOrDefault(s string) domain.DeliveryMode {
	switch domain.DeliveryMode(s) {
	case domain.DeliveryDelivery, domain.DeliveryBikeTaxi, domain.DeliverySelfDelivery:
		return domain.DeliveryMode(s)
	default:
		return domain.DeliveryPickup
	}
}

func paymentModeOrDefault(s string) domain.PaymentMode {
	switch domain.PaymentMode(s) {
	case domain.PaymentUPI, domain.PaymentOther:
		return domain.PaymentMode(s)
	default:
		return domain.PaymentCash
	}
}
