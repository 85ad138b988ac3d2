package config

import "time"

type Config struct {
	Shopify     ShopifyConfig
	Assign      AssignConfig
	Mysql       MysqlConfig
	TelegramBot TelegramBotConfig
}

type ShopifyConfig struct {
	ShopDomain string
	Token      string
	APIVer     string
	Timeout    time.Duration
	MaxRetries int
}

// AssignConfig selects which products are collected and where their variants go.
type AssignConfig struct {
	DeliveryProfileID  string
	MetafieldNamespace string
	MetafieldKey       string
	MetafieldValue     string
	UseSearchFilter    bool
	BatchSize          int
}

type MysqlConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Enabled reports whether an audit database was configured.
func (c MysqlConfig) Enabled() bool {
	return c.Host != ""
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}
