package avro

// OrderEventSchema is the Avro schema for order events on the order-events
// topic. Every field is required; producers always have a full order snapshot
// in hand, so no unions are needed and the mapper stays mechanical.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "in.houseoffoods.order",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "event_id", "type": "string"},
		{"name": "occurred_at", "type": "long", "logicalType": "timestamp-millis"},

		{"name": "order_id", "type": "string"},
		{"name": "customer_id", "type": "string"},
		{"name": "customer_name", "type": "string"},
		{"name": "mobile_number", "type": "string"},
		{"name": "address", "type": "string"},
		{"name": "delivery_mode", "type": "string"},
		{"name": "payment_mode", "type": "string"},
		{"name": "total_amount", "type": "long"},
		{"name": "order_date", "type": "long", "logicalType": "timestamp-millis"},
		{"name": "status", "type": "string"},

		{"name": "payment_received", "type": "boolean"},
		{"name": "order_prepared", "type": "boolean"},
		{"name": "dispatched", "type": "boolean"},
		{"name": "delivered", "type": "boolean"},

		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "OrderEventItem",
				"fields": [
					{"name": "menu_item_id", "type": "string"},
					{"name": "menu_item_name", "type": "string"},
					{"name": "size", "type": "string"},
					{"name": "quantity", "type": "long"},
					{"name": "unit_price", "type": "long"},
					{"name": "total_price", "type": "long"}
				]
			}
		}}
	]
}`
