package mysql

import (
	"testing"

	"delivery-profile-assigner/internal/config"

	driver "github.com/go-sql-driver/mysql"
)

func TestDSN(t *testing.T) {
	dsn, err := DSN(config.MysqlConfig{
		Host:     "db.internal",
		Username: "assigner",
		Password: "secret",
		Database: "shipping",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := driver.ParseDSN(dsn)
	if err != nil {
		t.Fatalf("dsn %q does not parse: %v", dsn, err)
	}
	if parsed.Addr != "db.internal:3306" {
		t.Errorf("addr = %q", parsed.Addr)
	}
	if parsed.User != "assigner" || parsed.Passwd != "secret" || parsed.DBName != "shipping" {
		t.Errorf("unexpected credentials in %+v", parsed)
	}
	if !parsed.ParseTime {
		t.Errorf("parseTime should be enabled")
	}
}

func TestDSNRequiresFields(t *testing.T) {
	if _, err := DSN(config.MysqlConfig{Host: "db"}); err == nil {
		t.Errorf("expected error for missing username and database")
	}
}
