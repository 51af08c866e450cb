package model

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CostStore defines persistence operations for costs.
type CostStore interface {
	Create(ctx context.Context, cost Cost) (Cost, error)
	GetByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]Cost, error)
	SumByUserID(ctx context.Context, userID string) (float64, error)
}

// Category enumerates the fixed cost classifications.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

// Categories lists every valid category in report order.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Cost represents a stored cost item.
type Cost struct {
	ID          uuid.UUID
	UserID      string
	Description string
	Category    Category
	Sum         float64
	CreatedAt   time.Time
}

// Amount is a cost sum as sent by a client. Set is false for absent, null and
// other falsy JSON values; Numeric is true only for JSON numbers.
type Amount struct {
	Value   float64
	Set     bool
	Numeric bool
}

// NewAmount returns a numeric Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Set: v != 0, Numeric: true}
}

// Missing reports whether the amount would be treated as not supplied.
// A numeric zero counts as missing.
func (a Amount) Missing() bool {
	return !a.Set
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}

	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "null", "false", `""`:
		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*a = NewAmount(n)
		return nil
	}

	// any other JSON value is present but not a number
	a.Set = true
	return nil
}

// CreateCostParams contains parameters to add a cost. A nil CreatedAt means
// the cost is recorded at the current time.
type CreateCostParams struct {
	Description string
	Category    Category
	UserID      string
	Sum         Amount
	CreatedAt   *time.Time
}
