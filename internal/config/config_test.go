package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":5002" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBMaxConns != 8 {
		t.Errorf("DBMaxConns = %d", cfg.DBMaxConns)
	}
	if cfg.NotifierWorkers != 4 {
		t.Errorf("NotifierWorkers = %d", cfg.NotifierWorkers)
	}
	if !reflect.DeepEqual(cfg.KafkaBrokers, []string{"kafka:9092"}) {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/r?sslmode=disable")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("NOTIFIER_WORKERS", "16")

	cfg := Load()

	if cfg.HTTPAddr != ":9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DatabaseURL != "postgres://u:p@db:5432/r?sslmode=disable" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if !reflect.DeepEqual(cfg.KafkaBrokers, []string{"k1:9092", "k2:9092"}) {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
	if cfg.NotifierWorkers != 16 {
		t.Errorf("NotifierWorkers = %d", cfg.NotifierWorkers)
	}
}

func TestLoadBadWorkerCountFallsBack(t *testing.T) {
	t.Setenv("NOTIFIER_WORKERS", "-3")
	if got := Load().NotifierWorkers; got != 4 {
		t.Errorf("NotifierWorkers = %d, want 4", got)
	}
}
