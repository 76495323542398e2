package config_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "lambda")
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("DATABASE_DSN", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_PORT", "")

		cfg := config.Load()

		if cfg.HTTPAddr != ":8080" {
			t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
		}
		if !strings.HasPrefix(cfg.DatabaseDSN, "file:exam_portal.db") {
			t.Errorf("sqlite DSN default not applied: %q", cfg.DatabaseDSN)
		}
		if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
			t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
		}
		if cfg.SMTP.Port != 587 || cfg.SMTP.Enabled() {
			t.Errorf("unexpected SMTP config %+v", cfg.SMTP)
		}
		if cfg.OTPCleanupSchedule != "@every 10m" {
			t.Errorf("OTPCleanupSchedule = %q", cfg.OTPCleanupSchedule)
		}
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("APP_ENV", "lambda")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DATABASE_DSN", "postgres://localhost/exams")
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
		t.Setenv("SMTP_HOST", "smtp.example")
		t.Setenv("SMTP_PORT", "not-a-number")

		cfg := config.Load()

		if cfg.DatabaseDSN != "postgres://localhost/exams" {
			t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
			t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
		}
		if !cfg.SMTP.Enabled() || cfg.SMTP.Port != 587 {
			t.Errorf("unexpected SMTP config %+v", cfg.SMTP)
		}
	})
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := config.Open("oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required"`
	}

	err := config.Validate(payload{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	rec := httptest.NewRecorder()
	config.ValidationError(rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"title":"required"`) {
		t.Errorf("body does not name the failing field: %s", rec.Body.String())
	}
}
