// Prints delivery profile ids so DELIVERY_PROFILE_ID can be filled in.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"delivery-profile-assigner/internal/adapters/shopify"
	"delivery-profile-assigner/internal/config"
	infrahttp "delivery-profile-assigner/internal/infra/http"
	"delivery-profile-assigner/internal/logging"
)

func main() {
	envPath := flag.String("env", config.DefaultEnvFile, "path to .env file")
	first := flag.Int("first", 5, "number of profiles to list")
	flag.Parse()

	logger := logging.NewConsoleLogger(os.Stderr, nil)

	if err := config.LoadEnvFile(*envPath); err != nil {
		logger.LogError("Failed", err)
		os.Exit(1)
	}
	cfg, err := config.LoadForProfiles()
	if err != nil {
		logger.LogError("Failed", err)
		os.Exit(1)
	}

	client := shopify.NewClient(cfg.Shopify, infrahttp.NewClient(cfg.Shopify.Timeout), logger)
	profiles, err := client.ListDeliveryProfiles(context.Background(), *first)
	if err != nil {
		logger.LogError("Failed", err)
		os.Exit(1)
	}

	for _, p := range profiles {
		fmt.Printf("%s\t%s\n", p.ID, p.Name)
	}
}
