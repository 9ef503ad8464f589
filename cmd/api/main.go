package main

import (
	"fmt"
	"net/http"

	"github.com/payflow-pro/payflow-backend-go/internal/config"
	appHTTP "github.com/payflow-pro/payflow-backend-go/internal/handler/http"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/jwt"
	"github.com/payflow-pro/payflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/payflow-pro/payflow-backend-go/internal/service/attendance"
	authService "github.com/payflow-pro/payflow-backend-go/internal/service/auth"
	employeeService "github.com/payflow-pro/payflow-backend-go/internal/service/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/service/master"
	payrollService "github.com/payflow-pro/payflow-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, salaryRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, employeeRepo)
	masterSvc := master.NewMasterService(departmentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
