package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hospitalportal/hospitalportal/internal/config"
	"github.com/hospitalportal/hospitalportal/internal/domain/appointment"
	"github.com/hospitalportal/hospitalportal/internal/domain/billing"
	"github.com/hospitalportal/hospitalportal/internal/domain/identity"
	"github.com/hospitalportal/hospitalportal/internal/domain/inventory"
	"github.com/hospitalportal/hospitalportal/internal/domain/lab"
	"github.com/hospitalportal/hospitalportal/internal/domain/patient"
	"github.com/hospitalportal/hospitalportal/internal/domain/referral"
	"github.com/hospitalportal/hospitalportal/internal/domain/roster"
	"github.com/hospitalportal/hospitalportal/internal/domain/staff"
	"github.com/hospitalportal/hospitalportal/internal/platform/auth"
	"github.com/hospitalportal/hospitalportal/internal/platform/db"
	"github.com/hospitalportal/hospitalportal/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: cfg.DBMaxConns, MinConns: cfg.DBMinConns})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Token issuer shared by login/registration and the bearer middleware
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// Route groups: /api/auth is open except for the current-user lookup,
	// /api/clinic requires a valid token, /api/admin additionally requires
	// the admin role.
	authGroup := e.Group("/api/auth")
	authProtected := e.Group("/api/auth", auth.Protect(issuer))
	clinic := e.Group("/api/clinic", auth.Protect(issuer))
	admin := e.Group("/api/admin", auth.Protect(issuer), auth.RequireRole("admin"))

	runTx := db.PoolTxRunner(pool)

	// Identity
	identitySvc := identity.NewService(identity.NewRepoPG(pool), issuer, cfg.BcryptCost)
	identity.NewHandler(identitySvc).RegisterRoutes(authGroup, authProtected)

	// Staff directory and notes
	staffSvc := staff.NewService(staff.NewRepoPG(pool), cfg.BcryptCost)
	staff.NewHandler(staffSvc).RegisterRoutes(admin, clinic)

	// Duty roster
	rosterSvc := roster.NewService(roster.NewRepoPG(pool), runTx)
	roster.NewHandler(rosterSvc).RegisterRoutes(admin)

	// Patients and clinical records
	patientSvc := patient.NewService(patient.NewRepoPG(pool))
	patient.NewHandler(patientSvc).RegisterRoutes(clinic)

	// Appointments
	appointmentSvc := appointment.NewService(appointment.NewRepoPG(pool))
	appointment.NewHandler(appointmentSvc).RegisterRoutes(clinic)

	// Billing
	billingSvc := billing.NewService(billing.NewRepoPG(pool), runTx)
	billing.NewHandler(billingSvc).RegisterRoutes(admin, clinic)

	// Lab orders and test catalog
	labSvc := lab.NewService(lab.NewRepoPG(pool))
	lab.NewHandler(labSvc).RegisterRoutes(admin, clinic)

	// Referrals
	referralSvc := referral.NewService(referral.NewRepoPG(pool))
	referral.NewHandler(referralSvc).RegisterRoutes(clinic)

	// Vaccine inventory
	inventorySvc := inventory.NewService(inventory.NewRepoPG(pool))
	inventory.NewHandler(inventorySvc).RegisterRoutes(admin, clinic)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
