package payrule

import (
	"context"
	"time"
)

// PayRuleRepository provides the organization's pay-multiplier rule table.
type PayRuleRepository interface {
	Create(ctx context.Context, rule PayRule) (PayRule, error)
	Delete(ctx context.Context, id string, organizationID string) error

	// ListEffective returns every rule whose validity window covers date.
	ListEffective(ctx context.Context, organizationID string, date time.Time) ([]PayRule, error)

	ListByOrganization(ctx context.Context, organizationID string) ([]PayRule, error)
}
