package kafka

import "time"

// HousingChangedEvent signals that a worker or room document changed and the
// sector's occupancy needs to be reconciled
type HousingChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	FermeID   uint      `json:"ferme_id"`
	Entity    string    `json:"entity"` // worker, room
	EntityID  uint      `json:"entity_id"`
	Action    string    `json:"action"` // created, updated, deleted
	Timestamp time.Time `json:"timestamp"`
}

// StockMovementEvent signals a confirmed stock transfer or addition
type StockMovementEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	MovementType  string    `json:"movement_type"` // transfer, addition
	ReferenceID   uint      `json:"reference_id"`
	FromSecteurID uint      `json:"from_secteur_id,omitempty"`
	ToSecteurID   uint      `json:"to_secteur_id"`
	Item          string    `json:"item"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeHousingChanged    = "housing.changed"
	EventTypeTransferConfirmed = "stock.transfer.confirmed"
	EventTypeAdditionConfirmed = "stock.addition.confirmed"
)

// Kafka topics
const (
	TopicHousingChanged = "housing-changed"
	TopicStockMovements = "stock-movements"
)
