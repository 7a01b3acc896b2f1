package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	driver "github.com/go-sql-driver/mysql"
)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (m *Adapter) Name() string {
	return "mysql"
}

func (m *Adapter) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (m *Adapter) SupportsReturning() bool {
	return false
}

func (m *Adapter) Open(ctx context.Context, url string) (*sql.DB, error) {
	dsn, err := DSN(url)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

// DSN turns a mysql:// URL or a native driver DSN into a driver DSN with
// parseTime enabled, so DATE columns scan into time.Time.
func DSN(url string) (string, error) {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		dsn = fromURL(strings.TrimPrefix(url, "mysql://"))
	}

	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}

func fromURL(rest string) string {
	credentials := ""
	if atIndex := strings.LastIndex(rest, "@"); atIndex >= 0 {
		credentials = rest[:atIndex+1]
		rest = rest[atIndex+1:]
	}

	hostPort, dbAndParams := rest, ""
	if slashIndex := strings.Index(rest, "/"); slashIndex >= 0 {
		hostPort = rest[:slashIndex]
		dbAndParams = rest[slashIndex+1:]
	}

	replacer := strings.NewReplacer(
		"ssl-mode=REQUIRED", "tls=skip-verify",
		"ssl-mode=DISABLED", "tls=false",
		"ssl-mode=VERIFY_CA", "tls=true",
		"ssl-mode=VERIFY_IDENTITY", "tls=true",
		"sslmode=require", "tls=skip-verify",
		"sslmode=disable", "tls=false",
		"sslmode=verify-ca", "tls=true",
		"sslmode=verify-full", "tls=true",
	)
	dbAndParams = replacer.Replace(dbAndParams)

	return fmt.Sprintf("%stcp(%s)/%s", credentials, hostPort, dbAndParams)
}
