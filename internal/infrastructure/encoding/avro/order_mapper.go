package avro

import (
	"fmt"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// OrderEvent is the decoded form of one record on the order-events topic: an
// event envelope plus a full order snapshot.
type OrderEvent struct {
	EventType  string
	EventID    string
	OccurredAt time.Time
	Order      order.Order
}

// OrderEventToNative maps an event to the goavro native representation of
// OrderEventSchema. Timestamps travel as epoch milliseconds.
func OrderEventToNative(e OrderEvent) map[string]interface{} {
	items := make([]interface{}, 0, len(e.Order.Items))
	for _, item := range e.Order.Items {
		items = append(items, map[string]interface{}{
			"menu_item_id":   item.MenuItemID,
			"menu_item_name": item.MenuItemName,
			"size":           item.Size,
			"quantity":       int64(item.Quantity),
			"unit_price":     int64(item.UnitPrice),
			"total_price":    int64(item.TotalPrice),
		})
	}

	return map[string]interface{}{
		"event_type":  e.EventType,
		"event_id":    e.EventID,
		"occurred_at": e.OccurredAt.UnixMilli(),

		"order_id":      e.Order.ID,
		"customer_id":   e.Order.CustomerID,
		"customer_name": e.Order.CustomerName,
		"mobile_number": e.Order.MobileNumber,
		"address":       e.Order.Address,
		"delivery_mode": string(e.Order.DeliveryMode),
		"payment_mode":  string(e.Order.PaymentMode),
		"total_amount":  int64(e.Order.TotalAmount),
		"order_date":    e.Order.OrderDate.UnixMilli(),
		"status":        string(e.Order.Status),

		"payment_received": e.Order.PaymentReceived,
		"order_prepared":   e.Order.OrderPrepared,
		"dispatched":       e.Order.Dispatched,
		"delivered":        e.Order.Delivered,

		"items": items,
	}
}

// OrderEventFromNative rebuilds an event from the goavro native map produced
// by decoding OrderEventSchema binary.
func OrderEventFromNative(native map[string]interface{}) (OrderEvent, error) {
	var e OrderEvent

	eventType, err := nativeString(native, "event_type")
	if err != nil {
		return e, err
	}
	eventID, err := nativeString(native, "event_id")
	if err != nil {
		return e, err
	}
	occurredAt, err := nativeInt64(native, "occurred_at")
	if err != nil {
		return e, err
	}

	e.EventType = eventType
	e.EventID = eventID
	e.OccurredAt = time.UnixMilli(occurredAt).UTC()

	fields := []struct {
		key string
		dst *string
	}{
		{"order_id", &e.Order.ID},
		{"customer_id", &e.Order.CustomerID},
		{"customer_name", &e.Order.CustomerName},
		{"mobile_number", &e.Order.MobileNumber},
		{"address", &e.Order.Address},
	}
	for _, f := range fields {
		v, err := nativeString(native, f.key)
		if err != nil {
			return e, err
		}
		*f.dst = v
	}

	deliveryMode, err := nativeString(native, "delivery_mode")
	if err != nil {
		return e, err
	}
	paymentMode, err := nativeString(native, "payment_mode")
	if err != nil {
		return e, err
	}
	status, err := nativeString(native, "status")
	if err != nil {
		return e, err
	}
	e.Order.DeliveryMode = order.DeliveryMode(deliveryMode)
	e.Order.PaymentMode = order.PaymentMode(paymentMode)
	e.Order.Status = order.Status(status)

	totalAmount, err := nativeInt64(native, "total_amount")
	if err != nil {
		return e, err
	}
	orderDate, err := nativeInt64(native, "order_date")
	if err != nil {
		return e, err
	}
	e.Order.TotalAmount = int(totalAmount)
	e.Order.OrderDate = time.UnixMilli(orderDate).UTC()

	flags := []struct {
		key string
		dst *bool
	}{
		{"payment_received", &e.Order.PaymentReceived},
		{"order_prepared", &e.Order.OrderPrepared},
		{"dispatched", &e.Order.Dispatched},
		{"delivered", &e.Order.Delivered},
	}
	for _, f := range flags {
		v, err := nativeBool(native, f.key)
		if err != nil {
			return e, err
		}
		*f.dst = v
	}

	rawItems, ok := native["items"].([]interface{})
	if !ok {
		return e, fmt.Errorf("field items: expected array, got %T", native["items"])
	}
	e.Order.Items = make([]order.OrderItem, 0, len(rawItems))
	for i, raw := range rawItems {
		record, ok := raw.(map[string]interface{})
		if !ok {
			return e, fmt.Errorf("items[%d]: expected record, got %T", i, raw)
		}
		item, err := itemFromNative(record)
		if err != nil {
			return e, fmt.Errorf("items[%d]: %w", i, err)
		}
		e.Order.Items = append(e.Order.Items, item)
	}

	return e, nil
}

func itemFromNative(record map[string]interface{}) (order.OrderItem, error) {
	var item order.OrderItem

	menuItemID, err := nativeString(record, "menu_item_id")
	if err != nil {
		return item, err
	}
	menuItemName, err := nativeString(record, "menu_item_name")
	if err != nil {
		return item, err
	}
	size, err := nativeString(record, "size")
	if err != nil {
		return item, err
	}
	quantity, err := nativeInt64(record, "quantity")
	if err != nil {
		return item, err
	}
	unitPrice, err := nativeInt64(record, "unit_price")
	if err != nil {
		return item, err
	}
	totalPrice, err := nativeInt64(record, "total_price")
	if err != nil {
		return item, err
	}

	item.MenuItemID = menuItemID
	item.MenuItemName = menuItemName
	item.Size = size
	item.Quantity = int(quantity)
	item.UnitPrice = int(unitPrice)
	item.TotalPrice = int(totalPrice)
	return item, nil
}

func nativeString(record map[string]interface{}, key string) (string, error) {
	v, ok := record[key].(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", key, record[key])
	}
	return v, nil
}

func nativeInt64(record map[string]interface{}, key string) (int64, error) {
	switch v := record[key].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %s: expected long, got %T", key, record[key])
	}
}

func nativeBool(record map[string]interface{}, key string) (bool, error) {
	v, ok := record[key].(bool)
	if !ok {
		return false, fmt.Errorf("field %s: expected boolean, got %T", key, record[key])
	}
	return v, nil
}
