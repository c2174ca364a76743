package entity

import (
	"encoding/json"
	"time"
)

// ListingType describes a category of listings and the field schema its
// listings are expected to follow. Schema is an opaque JSON document; the
// backend stores it verbatim and never validates listings against it.
type ListingType struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Schema    json.RawMessage `json:"schema"`
	CreatedAt time.Time       `json:"created_at"`
}
