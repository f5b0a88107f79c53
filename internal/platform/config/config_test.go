package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: "127.0.0.1:8080"

storage:
  driver: sqlite
  path: data/app.db

logging:
  file: logs/app.log
  level: debug
  max_size_mb: 20
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("unexpected listen addr: %s", cfg.Server.ListenAddr)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "data/app.db" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.MaxSizeMB != 20 {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Logging.MaxBackups != 5 || cfg.Logging.MaxAgeDays != 30 {
		t.Errorf("expected logging defaults applied, got %+v", cfg.Logging)
	}
}

func TestLoad_MissingListenAddr(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "{}")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when server.listen_addr is missing")
	}
}

func TestLoad_DefaultsDriverToFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":8080"

storage:
  path: data
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Driver != "file" {
		t.Fatalf("expected default driver file, got %s", cfg.Storage.Driver)
	}
}

func TestLoad_PathRequiredForFileDriver(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":8080"

storage:
  driver: file
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when storage.path is missing for file driver")
	}
}

func TestLoad_MemoryDriverNeedsNoPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `server:
  listen_addr: ":8080"

storage:
  driver: memory
`)

	if _, err := Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
}

func TestLoad_RejectsUnknownDriverAndLevel(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, `server:
  listen_addr: ":8080"

storage:
  driver: dynamo
  path: data
`)); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}

	if _, err := Load(writeConfig(t, `server:
  listen_addr: ":8080"

storage:
  driver: memory

logging:
  level: loud
`)); err == nil {
		t.Fatal("expected error for unknown logging level")
	}
}
