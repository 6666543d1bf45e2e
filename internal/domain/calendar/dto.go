package calendar

import (
	"slices"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	IsRecurring bool   `json:"is_recurring"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !slices.Contains(HolidayTypeValues, r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of REGULAR, SPECIAL_NON_WORKING, COMPANY"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToHoliday builds the entity; Validate must have passed.
func (r CreateHolidayRequest) ToHoliday(organizationID string) Holiday {
	date, _ := validator.IsValidDate(r.Date)
	return Holiday{
		OrganizationID: organizationID,
		Name:           r.Name,
		Date:           date,
		Type:           HolidayType(r.Type),
		IsRecurring:    r.IsRecurring,
	}
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	IsRecurring bool   `json:"is_recurring"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		IsRecurring: h.IsRecurring,
	}
}
