package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MinSimilarity != 0.85 {
		t.Fatalf("unexpected default min similarity: %v", cfg.MinSimilarity)
	}
	if cfg.KeepScoreMargin != 1.5 {
		t.Fatalf("unexpected default keep score margin: %v", cfg.KeepScoreMargin)
	}
	if cfg.MatchWorkers != 0 {
		t.Fatalf("unexpected default match workers: %d", cfg.MatchWorkers)
	}
	if !cfg.UseMemoryBackend() {
		t.Fatalf("expected memory backend when DB_URL is empty")
	}
}

func TestLoad_MinSimilarityValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("MATCH_MIN_SIMILARITY", "1.2")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for MATCH_MIN_SIMILARITY > 1")
		}
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("MATCH_MIN_SIMILARITY", "high")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric MATCH_MIN_SIMILARITY")
		}
	})

	t.Run("valid override", func(t *testing.T) {
		t.Setenv("MATCH_MIN_SIMILARITY", "0.9")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.MinSimilarity != 0.9 {
			t.Fatalf("unexpected min similarity: %v", cfg.MinSimilarity)
		}
	})
}

func TestLoad_KeepScoreMarginMustExceedOne(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("KEEP_SCORE_MARGIN", "1.0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for KEEP_SCORE_MARGIN <= 1")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "fighter-dedup-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fighter-dedup-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
	if cfg.PyroscopeUploadRate != 15*time.Second {
		t.Fatalf("unexpected default upload rate: %s", cfg.PyroscopeUploadRate)
	}
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
