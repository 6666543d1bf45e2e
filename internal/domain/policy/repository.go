package policy

import (
	"context"
	"time"
)

// LateDeductionPolicyRepository provides the organization's lateness rules.
type LateDeductionPolicyRepository interface {
	Create(ctx context.Context, p LateDeductionPolicy) (LateDeductionPolicy, error)
	Delete(ctx context.Context, id string, organizationID string) error

	// GetEffective returns the policy covering date, or ErrPolicyNotFound.
	// Callers treat a missing policy as "no late deductions", not a failure.
	GetEffective(ctx context.Context, organizationID string, date time.Time) (LateDeductionPolicy, error)

	ListByOrganization(ctx context.Context, organizationID string) ([]LateDeductionPolicy, error)
}
