package entity

import (
	"encoding/json"
	"time"
)

// Listing is a marketplace entry owned by the user who created it.
// OwnerID is immutable after creation. Gallery is an ordered list of media
// URLs; Fields is an opaque JSON document loosely following the listing
// type's schema.
type Listing struct {
	ID          int64           `json:"id"`
	OwnerID     int64           `json:"owner_id"`
	TypeID      int64           `json:"type_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       float64         `json:"price"`
	Gallery     []string        `json:"gallery"`
	Fields      json.RawMessage `json:"fields"`
	CreatedAt   time.Time       `json:"created_at"`
}
