//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mock
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/coliride/backend/internal/config"
	"github.com/coliride/backend/internal/repository"
	"github.com/coliride/backend/internal/storage"
	"github.com/coliride/backend/internal/upload"
)

// Storage is everything the handlers need from the storage facade.
type Storage interface {
	RegisterUser(ctx context.Context, user *repository.User, password string) (*repository.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*repository.User, error)
	GetUser(ctx context.Context, id string) (*repository.User, error)
	ListUsers(ctx context.Context, p repository.ListParams) ([]*repository.User, int, error)
	UpdateUser(ctx context.Context, id string, upd storage.UserUpdate) (*repository.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreatePackage(ctx context.Context, pkg *repository.Package) (*repository.Package, error)
	GetPackage(ctx context.Context, id string) (*repository.Package, error)
	ListPackages(ctx context.Context, p repository.ListParams) ([]*repository.Package, int, error)
	UpdatePackageStatus(ctx context.Context, id, status string) (*repository.Package, error)

	CreateRide(ctx context.Context, ride *repository.Ride) (*repository.Ride, error)
	GetRide(ctx context.Context, id string) (*repository.Ride, error)
	ListRides(ctx context.Context, p repository.ListParams) ([]*repository.Ride, int, error)
	UpdateRideStatus(ctx context.Context, id, status string) (*repository.Ride, error)
	DeleteRide(ctx context.Context, id string) error

	CreateMatch(ctx context.Context, match *repository.Match) (*repository.Match, error)
	GetMatch(ctx context.Context, id string) (*repository.Match, error)
	ListMatches(ctx context.Context, p repository.ListParams) ([]*repository.Match, int, error)
	UpdateMatchStatus(ctx context.Context, id, status string) (*repository.Match, error)
	DeleteMatch(ctx context.Context, id string) error

	CreatePayment(ctx context.Context, payment *repository.Payment) (*repository.Payment, error)
	ListPayments(ctx context.Context, p repository.ListParams) ([]*repository.Payment, int, error)
	RefundPayment(ctx context.Context, id string) (*repository.Payment, error)

	SendMessage(ctx context.Context, msg *repository.Message) (*repository.Message, error)
	ListMessages(ctx context.Context, p repository.ListParams) ([]*repository.Message, int, error)
	MarkMessageRead(ctx context.Context, id string) error

	CreateNotification(ctx context.Context, n *repository.Notification) (*repository.Notification, error)
	ListNotifications(ctx context.Context, p repository.ListParams) ([]*repository.Notification, int, error)
	MarkNotificationRead(ctx context.Context, id string) error

	DashboardStats(ctx context.Context) (*storage.DashboardStats, error)
	DashboardActivity(ctx context.Context) (*storage.DashboardActivity, error)
	AdminOverview(ctx context.Context) (*storage.AdminOverview, error)
}

type Server struct {
	storage      Storage
	uploads      *upload.Store
	server       *http.Server
	AuditManager *AuditManager

	jwtSecret    string
	tokenTTL     time.Duration
	cookieMaxAge time.Duration
	corsOrigins  []string
}

func New(st Storage, uploads *upload.Store, auditManager *AuditManager, cfg *config.Config) *Server {
	return &Server{
		storage:      st,
		uploads:      uploads,
		AuditManager: auditManager,
		jwtSecret:    cfg.JWTSecret,
		tokenTTL:     cfg.TokenTTL,
		cookieMaxAge: cfg.CookieMaxAge,
		corsOrigins:  cfg.CORSOrigins,
	}
}

// Run starts the HTTP server and blocks until it stops. Shutdown is driven
// by the caller via Shutdown, not by signals handled here.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	zap.L().Info("http server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.L().Info("shutting down http server")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)
	zap.L().Info("http server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)

	api.HandleFunc("/packages", s.handleListPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages", s.handleCreatePackage).Methods(http.MethodPost)
	api.HandleFunc("/packages/{id}", s.handleGetPackage).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}/status", s.handleUpdatePackageStatus).Methods(http.MethodPut)

	api.HandleFunc("/rides", s.handleListRides).Methods(http.MethodGet)
	api.HandleFunc("/rides", s.handleCreateRide).Methods(http.MethodPost)
	api.HandleFunc("/rides/{id}", s.handleGetRide).Methods(http.MethodGet)
	api.HandleFunc("/rides/{id}", s.handleDeleteRide).Methods(http.MethodDelete)
	api.HandleFunc("/rides/{id}/status", s.handleUpdateRideStatus).Methods(http.MethodPut)

	api.HandleFunc("/matches", s.handleListMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches", s.handleCreateMatch).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}", s.handleGetMatch).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", s.handleDeleteMatch).Methods(http.MethodDelete)
	api.HandleFunc("/matches/{id}/status", s.handleUpdateMatchStatus).Methods(http.MethodPut)

	api.HandleFunc("/payments", s.handleListPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments", s.handleCreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/payments/{id}/refund", s.handleRefundPayment).Methods(http.MethodPost)

	api.HandleFunc("/messages", s.handleListMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages", s.handleSendMessage).Methods(http.MethodPost)
	api.HandleFunc("/messages/{id}/read", s.handleMarkMessageRead).Methods(http.MethodPost)

	api.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications", s.handleCreateNotification).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPost)

	api.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", s.handleUpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", s.handleDeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)

	api.HandleFunc("/dashboard", s.handleAdminOverview).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/stats", s.handleDashboardStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/activity", s.handleDashboardActivity).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploads.Dir()))))

	handler := s.authMiddleware(r)
	handler = s.auditLogMiddleware(handler)
	handler = s.corsMiddleware(handler)
	handler = s.observeMiddleware(handler)
	return handler
}
