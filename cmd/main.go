package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/senyabanana/tender-vault/internal/db"
	"github.com/senyabanana/tender-vault/internal/handlers"
	"github.com/senyabanana/tender-vault/internal/repository"
	"github.com/senyabanana/tender-vault/internal/router"
	"github.com/senyabanana/tender-vault/internal/router/config"
	"github.com/senyabanana/tender-vault/internal/scheduler"
	"github.com/senyabanana/tender-vault/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer dbPool.Close()

	logger := log.New(os.Stdout, "INFO: ", log.LstdFlags)

	vaultRepo := repository.NewPostgresVaultRepository(dbPool)
	orderRepo := repository.NewPostgresOrderRepository(dbPool)
	rotationRepo := repository.NewPostgresRotationRepository(dbPool, orderRepo)

	policy := services.RotationPolicy{
		BatchMin:        cfg.RotationBatchMin,
		BatchMax:        cfg.RotationBatchMax,
		DisplayDuration: time.Duration(cfg.DisplayDurationHours) * time.Hour,
		Cooldown:        time.Duration(cfg.CooldownDays) * 24 * time.Hour,
		MaxIdAttempts:   cfg.PublicIdMaxAttempts,
		DefaultMaxUsage: cfg.MaxUsageDefault,
	}

	vaultService := services.NewVaultService(vaultRepo, orderRepo, policy.DefaultMaxUsage)
	rotationService := services.NewRotationService(vaultRepo, rotationRepo, policy, logger)
	sweeperService := services.NewSweeperService(rotationRepo, policy.Cooldown, logger)
	awardService := services.NewAwardService(rotationRepo, logger)

	jobs := scheduler.New(logger)
	jobs.AddJob("daily-rotation", cfg.RotationInterval, func(ctx context.Context) error {
		_, err := rotationService.RunDailyRotation(ctx)
		return err
	})
	jobs.AddJob("expiration-sweep", cfg.SweepInterval, func(ctx context.Context) error {
		_, err := sweeperService.SweepExpired(ctx)
		return err
	})
	jobs.Start(context.Background())

	vaultHandler := handlers.NewVaultHandler(vaultService, logger, 5*time.Second)
	rotationHandler := handlers.NewRotationHandler(rotationService, awardService, logger, 5*time.Second)

	routes := router.InitRoutes(vaultHandler, rotationHandler)

	log.Printf("server is listening on %s...", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, routes); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create a new migrate instance", err)
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrate up:", err)
	}
	log.Println("db migrated successfully")
}
