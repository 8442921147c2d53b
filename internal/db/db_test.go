package db

import (
	"testing"

	gormlogger "gorm.io/gorm/logger"

	"github.com/lunchly/core/internal/config"
	"github.com/lunchly/core/internal/model"
)

func TestNewGormDB_SQLite(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		LogLevel:     "silent",
		MaxOpenConns: 1,
	}

	gormDB, err := NewGormDB(cfg)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("expected max open conns 1, got %d", got)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	if !gormDB.Migrator().HasTable(&model.Reservation{}) {
		t.Fatalf("expected reservations table to exist")
	}
}

func TestNewGormDB_UnknownDriver(t *testing.T) {
	if _, err := NewGormDB(&config.DBConfig{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"info":   gormlogger.Info,
		"warn":   gormlogger.Warn,
		"":       gormlogger.Warn,
	}
	for in, want := range cases {
		if got := logLevel(in); got != want {
			t.Fatalf("logLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
