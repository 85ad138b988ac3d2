package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile    = ".env.local"
	DefaultAPIVersion = "2025-07"
	DefaultBatchSize  = 200
)

// LoadEnvFile loads variables from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// LoadForAssign reads everything the assignment job needs and fails on the
// first missing or malformed value.
func LoadForAssign() (*Config, error) {
	shopify, err := loadShopify()
	if err != nil {
		return nil, err
	}
	assign, err := loadAssign()
	if err != nil {
		return nil, err
	}
	mysql, err := loadMysql()
	if err != nil {
		return nil, err
	}
	return &Config{
		Shopify:     shopify,
		Assign:      assign,
		Mysql:       mysql,
		TelegramBot: loadTelegram(),
	}, nil
}

// LoadForProfiles only needs shop credentials.
func LoadForProfiles() (*Config, error) {
	shopify, err := loadShopify()
	if err != nil {
		return nil, err
	}
	return &Config{
		Shopify:     shopify,
		TelegramBot: loadTelegram(),
	}, nil
}

func loadShopify() (ShopifyConfig, error) {
	shop, err := requriedString("SHOP")
	if err != nil {
		return ShopifyConfig{}, err
	}
	token, err := requriedString("ADMIN_TOKEN")
	if err != nil {
		return ShopifyConfig{}, err
	}
	timeout, err := durationWithDefault("SHOPIFY_TIMEOUT", 0)
	if err != nil {
		return ShopifyConfig{}, err
	}
	retries, err := intWithDefault("SHOPIFY_MAX_RETRIES", 0)
	if err != nil {
		return ShopifyConfig{}, err
	}
	if retries < 0 {
		return ShopifyConfig{}, fmt.Errorf("SHOPIFY_MAX_RETRIES must be non-negative, got %d", retries)
	}
	return ShopifyConfig{
		ShopDomain: shop,
		Token:      token,
		APIVer:     stringWithDefault("SHOPIFY_API_VERSION", DefaultAPIVersion),
		Timeout:    timeout,
		MaxRetries: retries,
	}, nil
}

func loadAssign() (AssignConfig, error) {
	var (
		cfg AssignConfig
		err error
	)
	required := []struct {
		key string
		dst *string
	}{
		{"DELIVERY_PROFILE_ID", &cfg.DeliveryProfileID},
		{"METAFIELD_NAMESPACE", &cfg.MetafieldNamespace},
		{"METAFIELD_KEY", &cfg.MetafieldKey},
		{"METAFIELD_VALUE", &cfg.MetafieldValue},
	}
	for _, r := range required {
		if *r.dst, err = requriedString(r.key); err != nil {
			return AssignConfig{}, err
		}
	}
	if cfg.UseSearchFilter, err = boolWithDefault("USE_SEARCH_FILTER", false); err != nil {
		return AssignConfig{}, err
	}
	if cfg.BatchSize, err = intWithDefault("BATCH_SIZE", DefaultBatchSize); err != nil {
		return AssignConfig{}, err
	}
	if cfg.BatchSize <= 0 {
		return AssignConfig{}, fmt.Errorf("BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}

func loadMysql() (MysqlConfig, error) {
	port, err := intWithDefault("MYSQL_PORT", 3306)
	if err != nil {
		return MysqlConfig{}, err
	}
	return MysqlConfig{
		Host:     stringWithDefault("MYSQL_HOST", ""),
		Port:     port,
		Username: stringWithDefault("MYSQL_USER", ""),
		Password: stringWithDefault("MYSQL_PASSWORD", ""),
		Database: stringWithDefault("MYSQL_DATABASE", ""),
	}, nil
}

func loadTelegram() TelegramBotConfig {
	return TelegramBotConfig{
		ChatId: stringWithDefault("TELEGRAM_CHAT_ID", ""),
		Token:  stringWithDefault("TELEGRAM_BOT_TOKEN", ""),
	}
}
