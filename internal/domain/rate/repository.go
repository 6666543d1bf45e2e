package rate

import (
	"context"
	"time"
)

// RateRepository provides the four statutory rate tables.
type RateRepository interface {
	Create(ctx context.Context, row Row) (Row, error)
	Delete(ctx context.Context, id string, organizationID string) error

	// ListEffective returns every row of scheme whose validity window
	// covers date, for the resolver to pick a bracket from.
	ListEffective(ctx context.Context, organizationID string, scheme Scheme, date time.Time) ([]Row, error)

	ListByScheme(ctx context.Context, organizationID string, scheme Scheme) ([]Row, error)
}
