package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.GRPCAddr() != "0.0.0.0:50051" {
		t.Fatalf("GRPCAddr = %q, want 0.0.0.0:50051", cfg.GRPCAddr())
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.SlotIncrement != time.Hour {
		t.Fatalf("SlotIncrement = %s, want 1h", cfg.SlotIncrement)
	}
	if cfg.ReminderCron != "0 8 * * *" {
		t.Fatalf("ReminderCron = %q, want daily 08:00", cfg.ReminderCron)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("KafkaBrokers = %v, want empty", cfg.KafkaBrokers)
	}
	if cfg.AppointmentCostCents != 5000 {
		t.Fatalf("AppointmentCostCents = %d, want 5000", cfg.AppointmentCostCents)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CITAPLAN_GRPC_ADDR", "127.0.0.1:6000")
	t.Setenv("CITAPLAN_KAFKA_BROKERS", " a:9092 , b:9092 ,")
	t.Setenv("CITAPLAN_SLOTS_INCREMENT", "30m")
	t.Setenv("CITAPLAN_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.GRPCAddr() != "127.0.0.1:6000" {
		t.Fatalf("GRPCAddr = %q, want 127.0.0.1:6000", cfg.GRPCAddr())
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "a:9092" || cfg.KafkaBrokers[1] != "b:9092" {
		t.Fatalf("KafkaBrokers = %v, want [a:9092 b:9092]", cfg.KafkaBrokers)
	}
	if cfg.SlotIncrement != 30*time.Minute {
		t.Fatalf("SlotIncrement = %s, want 30m", cfg.SlotIncrement)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_RejectsSubMinuteSlotIncrement(t *testing.T) {
	for _, raw := range []string{"30s", "90s", "0s"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("CITAPLAN_SLOTS_INCREMENT", raw)

			if _, err := Load(); err == nil {
				t.Fatalf("Load accepted slot increment %q", raw)
			}
		})
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("CITAPLAN_SHUTDOWN_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unparseable duration")
	}
}
