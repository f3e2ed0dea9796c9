package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/studyabroadscholarships/interest-api/internal/config"
	directoryapp "github.com/studyabroadscholarships/interest-api/internal/directory/application"
	mongodoc "github.com/studyabroadscholarships/interest-api/internal/infrastructure/mongo"
	"github.com/studyabroadscholarships/interest-api/internal/infrastructure/smtp"
	adminhttp "github.com/studyabroadscholarships/interest-api/internal/interfaces/http/admin"
	commonhttp "github.com/studyabroadscholarships/interest-api/internal/interfaces/http/common"
	publichttp "github.com/studyabroadscholarships/interest-api/internal/interfaces/http/public"
	interestapp "github.com/studyabroadscholarships/interest-api/internal/interest/application"
	"github.com/studyabroadscholarships/interest-api/internal/logging"
)

// Server manages the HTTP lifecycle and injects dependencies into the
// public and admin handlers. It is the composition root: application
// services are built here and connected to the router, with no domain
// logic of its own.
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	logs           *logging.Service
	intakeService  interestapp.IntakeService
	contactService directoryapp.ContactService
	jwtConfigs     []config.JWTConfig
	jwtAudience    string
	addr           string
	allowedOrigins []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// New receives the Config and Mongo client and assembles application
// services and handlers into a runnable Server.
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		logs:           logging.NewService(cfg.ServerLog),
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	submissionRepo := mongodoc.NewSubmissionRepository(srv.database, cfg.SubmissionCollection)
	requestLogRepo := mongodoc.NewRequestLogRepository(srv.database, cfg.RequestLogCollection)
	contactRepo := mongodoc.NewContactRepository(srv.database, cfg.DistrictCollection, cfg.CountryCollection)
	notifier := smtp.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Address, cfg.SMTP.Password)

	srv.intakeService = interestapp.NewIntakeService(
		submissionRepo,
		requestLogRepo,
		contactRepo,
		notifier,
		srv.logs,
		cfg.OperatorEmail,
	)
	srv.contactService = directoryapp.NewContactService(contactRepo)

	return srv
}

// Run starts the HTTP server and assembles routing and middleware for
// the public and admin surfaces.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger: s.logger,
		Intake: s.intakeService,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:   s.logger,
		Logs:     s.logs,
		Contacts: s.contactService,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS grants the configured origins access to the API; the public
// form posts from the website's own origin in production.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports MongoDB reachability for monitoring. It only
// reflects infrastructure state, never domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware validates the Authorization bearer token and stores
// the authenticated maintainer in the request context. Only the admin
// surface is gated; the public form endpoints stay open.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "a Bearer token is required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token is empty"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:       claims.Subject,
			Name:     claims.Name,
			Username: claims.PreferredUsername,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken tries each configured JWT setting in order, checking
// signature, issuer and audience. It fails when none match.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("access token is invalid")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// writeJSON is the shared JSON response writer for server-level
// endpoints and middleware.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("failed to encode JSON response: %v", err)
	}
}

// shutdown disconnects the MongoDB client with a timeout so process
// exit does not leak connections.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error disconnecting from MongoDB: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals to drive a
// graceful shutdown.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, starting shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during server shutdown: %v", err)
		}
	}

	srv.shutdown(context.Background())
}
