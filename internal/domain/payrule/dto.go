package payrule

import (
	"slices"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayRuleRequest struct {
	DayType       string          `json:"day_type"`
	HolidayType   *string         `json:"holiday_type"`
	Component     string          `json:"component"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to"`
}

func (r CreatePayRuleRequest) Validate() error {
	var errs validator.ValidationErrors
	switch DayType(r.DayType) {
	case DayTypeRegular, DayTypeRest, DayTypeHoliday:
	default:
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "must be one of REGULAR, REST, HOLIDAY"})
	}
	if r.HolidayType != nil && !slices.Contains(calendar.HolidayTypeValues, *r.HolidayType) {
		errs = append(errs, validator.ValidationError{Field: "holiday_type", Message: "must be one of REGULAR, SPECIAL_NON_WORKING, COMPANY"})
	}
	if !slices.Contains(ComponentValues, r.Component) {
		errs = append(errs, validator.ValidationError{Field: "component", Message: "must be one of REGULAR, OVERTIME, NIGHT_DIFF"})
	}
	if !r.Multiplier.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPayRule builds the entity; Validate must have passed.
func (r CreatePayRuleRequest) ToPayRule(organizationID string) PayRule {
	from, _ := validator.IsValidDate(r.EffectiveFrom)
	rule := PayRule{
		OrganizationID: organizationID,
		DayType:        DayType(r.DayType),
		Component:      Component(r.Component),
		Multiplier:     r.Multiplier,
		EffectiveFrom:  from,
	}
	if r.HolidayType != nil {
		t := calendar.HolidayType(*r.HolidayType)
		rule.HolidayType = &t
	}
	if r.EffectiveTo != nil {
		to, _ := validator.IsValidDate(*r.EffectiveTo)
		rule.EffectiveTo = &to
	}
	return rule
}

type PayRuleResponse struct {
	ID            string          `json:"id"`
	DayType       string          `json:"day_type"`
	HolidayType   *string         `json:"holiday_type,omitempty"`
	Component     string          `json:"component"`
	Multiplier    decimal.Decimal `json:"multiplier"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
}

func ToResponse(rule PayRule) PayRuleResponse {
	resp := PayRuleResponse{
		ID:            rule.ID,
		DayType:       string(rule.DayType),
		Component:     string(rule.Component),
		Multiplier:    rule.Multiplier,
		EffectiveFrom: rule.EffectiveFrom.Format("2006-01-02"),
	}
	if rule.HolidayType != nil {
		t := string(*rule.HolidayType)
		resp.HolidayType = &t
	}
	if rule.EffectiveTo != nil {
		to := rule.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}
