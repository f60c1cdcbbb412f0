package models

import "time"

// CartLine is one entry in a cart. ProductID is unique within a cart;
// re-adding an existing product adjusts Quantity instead of appending.
// Product is only populated for guest carts (denormalized at add time)
// and for joined responses — the persisted user cart stores id+quantity.
type CartLine struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
	Product   *Product  `json:"product,omitempty"`
}

// GuestCartBlob is the serialized guest cart held in the local persistent
// cache: the lines plus the timestamp the 3-hour expiry window slides on.
type GuestCartBlob struct {
	Items     []CartLine `json:"items"`
	Timestamp int64      `json:"timestamp"` // epoch milliseconds
}
