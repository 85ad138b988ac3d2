// One-shot job: assign every variant of products tagged with a metafield value to a delivery profile.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"delivery-profile-assigner/internal/adapters/audit"
	"delivery-profile-assigner/internal/adapters/shopify"
	"delivery-profile-assigner/internal/app/usecases"
	"delivery-profile-assigner/internal/config"
	infrahttp "delivery-profile-assigner/internal/infra/http"
	"delivery-profile-assigner/internal/infra/mysql"
	"delivery-profile-assigner/internal/logging"

	"github.com/rs/xid"
)

func main() {
	envPath := flag.String("env", config.DefaultEnvFile, "path to .env file")
	flag.Parse()

	runID := xid.New().String()

	cfg, err := loadConfig(*envPath)
	if err != nil {
		logging.NewConsoleLogger(os.Stdout, nil).With("run", runID).LogError("Failed", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.TelegramBot).With("run", runID)
	os.Exit(execute(context.Background(), cfg, logger, runID))
}

func loadConfig(envPath string) (*config.Config, error) {
	if err := config.LoadEnvFile(envPath); err != nil {
		return nil, err
	}
	return config.LoadForAssign()
}

// execute maps the run outcome to a process exit code and is the only
// place a failure is reported.
func execute(ctx context.Context, cfg *config.Config, logger *logging.Logger, runID string) int {
	if err := run(ctx, cfg, logger, runID); err != nil {
		logger.LogError("Failed", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, runID string) error {
	shopifyClient := shopify.NewClient(cfg.Shopify, infrahttp.NewClient(cfg.Shopify.Timeout), logger)

	var recorder usecases.BatchRecorder
	if cfg.Mysql.Enabled() {
		db, err := mysql.New(ctx, cfg.Mysql)
		if err != nil {
			return err
		}
		defer db.Close()
		mysqlRecorder, err := audit.NewMysqlRecorder(ctx, db)
		if err != nil {
			return err
		}
		recorder = mysqlRecorder
		logger.Log("Recording committed batches to mysql")
	}

	assign := usecases.NewAssignDeliveryProfile(cfg.Assign, shopifyClient, shopifyClient, recorder, logger, runID)
	result, err := assign.Run(ctx)
	if err != nil {
		return err
	}
	if result.Found == 0 {
		return nil
	}

	logger.LogSuccess(fmt.Sprintf("All done: assigned=%d batches=%d profile=%s", result.Assigned, result.Batches, cfg.Assign.DeliveryProfileID))
	return nil
}
