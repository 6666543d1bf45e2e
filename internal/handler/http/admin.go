package http

import (
	"encoding/json"
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/domain/calendar"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payrule"
	"github.com/bayanihr/payroll-backend-go/internal/domain/policy"
	"github.com/bayanihr/payroll-backend-go/internal/domain/rate"
	"github.com/bayanihr/payroll-backend-go/internal/handler/http/response"
	"github.com/bayanihr/payroll-backend-go/internal/service/orgconfig"
	"github.com/go-chi/chi/v5"
)

type AdminHandler interface {
	// Rates
	CreateRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)
	DeleteRate(w http.ResponseWriter, r *http.Request)

	// Pay rules
	CreatePayRule(w http.ResponseWriter, r *http.Request)
	ListPayRules(w http.ResponseWriter, r *http.Request)
	DeletePayRule(w http.ResponseWriter, r *http.Request)

	// Holidays
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	// Late policies
	CreateLatePolicy(w http.ResponseWriter, r *http.Request)
	ListLatePolicies(w http.ResponseWriter, r *http.Request)
	DeleteLatePolicy(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	configService orgconfig.OrgConfigService
}

func NewAdminHandler(configService orgconfig.OrgConfigService) AdminHandler {
	return &adminHandlerImpl{configService: configService}
}

// ========== RATES ==========

func (h *adminHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rate.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.configService.CreateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate created", result)
}

func (h *adminHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	scheme := r.URL.Query().Get("scheme")
	if scheme == "" {
		response.BadRequest(w, "scheme query parameter is required", nil)
		return
	}

	result, err := h.configService.ListRates(r.Context(), scheme)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adminHandlerImpl) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rate ID is required", nil)
		return
	}

	if err := h.configService.DeleteRate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate deleted", nil)
}

// ========== PAY RULES ==========

func (h *adminHandlerImpl) CreatePayRule(w http.ResponseWriter, r *http.Request) {
	var req payrule.CreatePayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.configService.CreatePayRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay rule created", result)
}

func (h *adminHandlerImpl) ListPayRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.ListPayRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adminHandlerImpl) DeletePayRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Pay rule ID is required", nil)
		return
	}

	if err := h.configService.DeletePayRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay rule deleted", nil)
}

// ========== HOLIDAYS ==========

func (h *adminHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.configService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

func (h *adminHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.BadRequest(w, "from and to query parameters are required", nil)
		return
	}

	result, err := h.configService.ListHolidays(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adminHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.configService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// ========== LATE POLICIES ==========

func (h *adminHandlerImpl) CreateLatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policy.CreateLatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.configService.CreateLatePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Late policy created", result)
}

func (h *adminHandlerImpl) ListLatePolicies(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.ListLatePolicies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adminHandlerImpl) DeleteLatePolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Late policy ID is required", nil)
		return
	}

	if err := h.configService.DeleteLatePolicy(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Late policy deleted", nil)
}
