package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/handler/http/middleware"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payflow-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh-token", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", authHandler.GetProfile)
				r.Patch("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/", employeeHandler.List)

				// Static lookup routes, registered before the {id} pattern.
				r.Get("/departments", masterHandler.ListDepartments)
				r.Get("/designations", masterHandler.ListDesignations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Post("/{id}/deactivate", employeeHandler.Deactivate)
					r.Post("/{id}/activate", employeeHandler.Activate)
				})

				// Ownership is enforced in the service layer: employees and
				// managers can only reach themselves or their reports.
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/salary-structure", employeeHandler.GetSalaryStructure)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSalaryManage))
					r.Post("/{id}/salary-structure", employeeHandler.CreateSalaryStructure)
					r.Get("/{id}/salary-structure/history", employeeHandler.ListSalaryStructures)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).
					Post("/", attendanceHandler.Upsert)
				r.Get("/{employeeId}", attendanceHandler.ListByEmployee)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/runs", func(r chi.Router) {
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
						r.Post("/", payrollHandler.CreateRun)
						r.Get("/", payrollHandler.ListRuns)
						r.Get("/{id}", payrollHandler.GetRun)
						r.Get("/{id}/items", payrollHandler.ListRunItems)
						r.Post("/{id}/cancel", payrollHandler.CancelRun)
					})

					r.With(middleware.RequirePermission(user.PermissionPayrollProcess)).
						Post("/{id}/process", payrollHandler.ProcessRun)
					r.With(middleware.RequirePermission(user.PermissionPayrollApprove)).
						Post("/{id}/approve", payrollHandler.ApproveRun)
				})

				r.Get("/payslips/{employeeId}", payrollHandler.ListEmployeePayslips)
			})

			r.Route("/master", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMasterManage))
				r.Post("/departments", masterHandler.CreateDepartment)
				r.Post("/designations", masterHandler.CreateDesignation)
			})
		})
	})
	return r
}
