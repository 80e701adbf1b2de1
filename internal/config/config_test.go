package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("server addr = %q", c.Server.Addr)
	}
	if c.Input.Backend != "auto" {
		t.Errorf("input backend = %q", c.Input.Backend)
	}
	if c.Input.DeadZone != "independent" {
		t.Errorf("dead zone = %q", c.Input.DeadZone)
	}
	if c.Input.PollInterval() != 16*time.Millisecond {
		t.Errorf("poll interval = %v", c.Input.PollInterval())
	}
	if c.Monitoring.Port != 6060 {
		t.Errorf("monitoring port = %d", c.Monitoring.Port)
	}
	if !c.Monitoring.MetricEnabled {
		t.Error("metrics disabled by default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PADVIEW_INPUT_BACKEND", "null")
	t.Setenv("PADVIEW_SERVER_ADDR", ":9999")

	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Input.Backend != "null" {
		t.Errorf("input backend = %q, want null", c.Input.Backend)
	}
	if c.Server.Addr != ":9999" {
		t.Errorf("server addr = %q, want :9999", c.Server.Addr)
	}
}
