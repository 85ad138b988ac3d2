package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"delivery-profile-assigner/internal/config"

	driver "github.com/go-sql-driver/mysql"
)

func New(ctx context.Context, cfg config.MysqlConfig) (*sql.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql connection error %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: ping %w", err)
	}

	return db, nil
}

// DSN builds the driver connection string; the port defaults to 3306.
func DSN(cfg config.MysqlConfig) (string, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Database == "" {
		return "", fmt.Errorf("mysql host, username and database are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 3306
	}

	dc := driver.NewConfig()
	dc.User = cfg.Username
	dc.Passwd = cfg.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dc.DBName = cfg.Database
	dc.ParseTime = true
	return dc.FormatDSN(), nil
}
