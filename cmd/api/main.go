package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/config"
	appHTTP "github.com/bayanihr/payroll-backend-go/internal/handler/http"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/jwt"
	"github.com/bayanihr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bayanihr/payroll-backend-go/internal/service/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/service/attendancepolicy"
	"github.com/bayanihr/payroll-backend-go/internal/service/orgconfig"
	payrollService "github.com/bayanihr/payroll-backend-go/internal/service/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/service/rates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Pool.Close()

	rateRepo := postgresql.NewRateRepository(db)
	payRuleRepo := postgresql.NewPayRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	latePolicyRepo := postgresql.NewLateDeductionPolicyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	deductionsCalc := rates.NewCalculator(rateRepo)
	attendanceCalc := attendancepolicy.NewCalculator(timeEntryRepo, leaveRequestRepo, workScheduleRepo, latePolicyRepo)

	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		timeEntryRepo,
		overtimeRepo,
		holidayRepo,
		workScheduleRepo,
		payRuleRepo,
		deductionsCalc,
		attendanceCalc,
		cfg.Payroll.WorkDaysPerMonth,
	)
	attendanceSvc := attendanceService.NewAttendanceService(timeEntryRepo, workScheduleRepo, holidayRepo)
	configSvc := orgconfig.NewOrgConfigService(rateRepo, payRuleRepo, holidayRepo, latePolicyRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewAdminHandler(configSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
