package orgconfig

import (
	"context"
	"fmt"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/policy"
	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// OrgConfigService manages the admin-maintained tables the payroll engine
// reads: statutory rates, pay-multiplier rules, holidays, and late policies.
type OrgConfigService interface {
	// Rate operations
	CreateRate(ctx context.Context, req rate.CreateRateRequest) (rate.RateResponse, error)
	ListRates(ctx context.Context, scheme string) ([]rate.RateResponse, error)
	DeleteRate(ctx context.Context, id string) error

	// Pay rule operations
	CreatePayRule(ctx context.Context, req payrule.CreatePayRuleRequest) (payrule.PayRuleResponse, error)
	ListPayRules(ctx context.Context) ([]payrule.PayRuleResponse, error)
	DeletePayRule(ctx context.Context, id string) error

	// Holiday operations
	CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error)
	ListHolidays(ctx context.Context, from, to string) ([]calendar.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	// Late policy operations
	CreateLatePolicy(ctx context.Context, req policy.CreateLatePolicyRequest) (policy.LatePolicyResponse, error)
	ListLatePolicies(ctx context.Context) ([]policy.LatePolicyResponse, error)
	DeleteLatePolicy(ctx context.Context, id string) error
}

type orgConfigServiceImpl struct {
	rateRepo    rate.RateRepository
	payRuleRepo payrule.PayRuleRepository
	holidayRepo calendar.HolidayRepository
	policyRepo  policy.LateDeductionPolicyRepository
}

func NewOrgConfigService(
	rateRepo rate.RateRepository,
	payRuleRepo payrule.PayRuleRepository,
	holidayRepo calendar.HolidayRepository,
	policyRepo policy.LateDeductionPolicyRepository,
) OrgConfigService {
	return &orgConfigServiceImpl{
		rateRepo:    rateRepo,
		payRuleRepo: payRuleRepo,
		holidayRepo: holidayRepo,
		policyRepo:  policyRepo,
	}
}

func getOrganizationFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", fmt.Errorf("organization_id claim is missing or invalid")
	}
	return organizationID, nil
}

// ==================== RATE OPERATIONS ====================

func (s *orgConfigServiceImpl) CreateRate(ctx context.Context, req rate.CreateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return rate.RateResponse{}, err
	}

	row := req.ToRow(organizationID)
	row.ID = uuid.NewString()

	// Reject the write if the new bracket overlaps any existing row of the
	// same scheme in both salary band and validity window.
	existing, err := s.rateRepo.ListByScheme(ctx, organizationID, row.Scheme)
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to list %s rates: %w", row.Scheme, err)
	}
	if err := rate.ValidateRows(append(existing, row)); err != nil {
		return rate.RateResponse{}, err
	}

	created, err := s.rateRepo.Create(ctx, row)
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to create rate: %w", err)
	}
	return rate.ToResponse(created), nil
}

func (s *orgConfigServiceImpl) ListRates(ctx context.Context, scheme string) ([]rate.RateResponse, error) {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.rateRepo.ListByScheme(ctx, organizationID, rate.Scheme(scheme))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rates: %w", scheme, err)
	}

	responses := make([]rate.RateResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, rate.ToResponse(row))
	}
	return responses, nil
}

func (s *orgConfigServiceImpl) DeleteRate(ctx context.Context, id string) error {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return err
	}
	return s.rateRepo.Delete(ctx, id, organizationID)
}

// ==================== PAY RULE OPERATIONS ====================

func (s *orgConfigServiceImpl) CreatePayRule(ctx context.Context, req payrule.CreatePayRuleRequest) (payrule.PayRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payrule.PayRuleResponse{}, err
	}

	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return payrule.PayRuleResponse{}, err
	}

	rule := req.ToPayRule(organizationID)
	rule.ID = uuid.NewString()

	created, err := s.payRuleRepo.Create(ctx, rule)
	if err != nil {
		return payrule.PayRuleResponse{}, fmt.Errorf("failed to create pay rule: %w", err)
	}
	return payrule.ToResponse(created), nil
}

func (s *orgConfigServiceImpl) ListPayRules(ctx context.Context) ([]payrule.PayRuleResponse, error) {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := s.payRuleRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rules: %w", err)
	}

	responses := make([]payrule.PayRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, payrule.ToResponse(rule))
	}
	return responses, nil
}

func (s *orgConfigServiceImpl) DeletePayRule(ctx context.Context, id string) error {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return err
	}
	return s.payRuleRepo.Delete(ctx, id, organizationID)
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *orgConfigServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	holiday := req.ToHoliday(organizationID)
	holiday.ID = uuid.NewString()

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return calendar.ToResponse(created), nil
}

func (s *orgConfigServiceImpl) ListHolidays(ctx context.Context, from, to string) ([]calendar.HolidayResponse, error) {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fromDate, okFrom := validator.IsValidDate(from)
	toDate, okTo := validator.IsValidDate(to)
	if !okFrom || !okTo || toDate.Before(fromDate) {
		return nil, fmt.Errorf("invalid holiday range")
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, organizationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, calendar.ToResponse(h))
	}
	return responses, nil
}

func (s *orgConfigServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id, organizationID)
}

// ==================== LATE POLICY OPERATIONS ====================

func (s *orgConfigServiceImpl) CreateLatePolicy(ctx context.Context, req policy.CreateLatePolicyRequest) (policy.LatePolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.LatePolicyResponse{}, err
	}

	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return policy.LatePolicyResponse{}, err
	}

	p := req.ToPolicy(organizationID)
	p.ID = uuid.NewString()

	created, err := s.policyRepo.Create(ctx, p)
	if err != nil {
		return policy.LatePolicyResponse{}, fmt.Errorf("failed to create late policy: %w", err)
	}
	return policy.ToResponse(created), nil
}

func (s *orgConfigServiceImpl) ListLatePolicies(ctx context.Context) ([]policy.LatePolicyResponse, error) {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policies, err := s.policyRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list late policies: %w", err)
	}

	responses := make([]policy.LatePolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, policy.ToResponse(p))
	}
	return responses, nil
}

func (s *orgConfigServiceImpl) DeleteLatePolicy(ctx context.Context, id string) error {
	organizationID, err := getOrganizationFromContext(ctx)
	if err != nil {
		return err
	}
	return s.policyRepo.Delete(ctx, id, organizationID)
}
