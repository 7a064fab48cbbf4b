package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Amount is a monetary amount in the base unit of the configured currency.
// Yen has no minor unit, so one Amount is one yen.
type Amount int64

// String returns the amount as plain digits without grouping.
func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// Sale is a single recorded sale.
type Sale struct {
	// ID uniquely identifies the sale.
	ID string `json:"id"`

	// Amount is the value of the sale.
	Amount Amount `json:"amount"`

	// CreateAt is when the sale was recorded.
	CreateAt time.Time `json:"create_at"` //nolint:tagliatelle // column name of the sales table
}

// NewSale creates a Sale with a fresh random ID.
func NewSale(amount Amount, at time.Time) Sale {
	return Sale{
		ID:       uuid.NewString(),
		Amount:   amount,
		CreateAt: at.UTC(),
	}
}

// SalesTotal is the summed amount of all sales recorded within Range.
type SalesTotal struct {
	Range  DateRange `json:"range"`
	Amount Amount    `json:"amount"`
}
