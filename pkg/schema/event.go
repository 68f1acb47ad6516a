package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields" : [
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "query", "type": "string"},
		{"name": "at_unix_ms", "type": "long"}
	]
}`

type ClientEventV1 struct {
	EventType string `avro:"event_type"`
	ProductID string `avro:"product_id"`
	Quantity  int    `avro:"quantity"`
	Query     string `avro:"query"`
	AtUnixMs  int64  `avro:"at_unix_ms"`
}
