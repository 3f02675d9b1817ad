package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("esa")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := load(newViper(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Export.Format != "json" {
		t.Fatalf("expected format json, got %s", cfg.Export.Format)
	}
	if cfg.Export.Document != "all" {
		t.Fatalf("expected document all, got %s", cfg.Export.Document)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	raw := "server:\n  port: 9200\nexport:\n  format: yaml\n  document: users\n"
	if err := os.WriteFile(filepath.Join(dir, "esa.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(newViper(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Fatalf("expected port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Export.Format != "yaml" || cfg.Export.Document != "users" {
		t.Fatalf("unexpected export config: %+v", cfg.Export)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ESA_SERVER_PORT", "9300")
	cfg, err := load(newViper(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9300 {
		t.Fatalf("expected port 9300 from env, got %d", cfg.Server.Port)
	}
}

// Export keys are checked by the export command, so a bad value must not
// keep the server from loading its config.
func TestLoad_ExportKeysNotChecked(t *testing.T) {
	t.Setenv("ESA_EXPORT_DOCUMENT", "roles")
	t.Setenv("ESA_EXPORT_FORMAT", "xml")
	cfg, err := load(newViper(t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Export.Document != "roles" || cfg.Export.Format != "xml" {
		t.Fatalf("expected raw export values, got %+v", cfg.Export)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
}
