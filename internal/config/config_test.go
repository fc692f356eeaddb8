package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/coordctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coordctl.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
token_store_path = "secrets/tokens.toml"
app_id = 570
deadline = "45s"
balance_wait = "5s"
purchase_reply_type = 2091
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenStorePath != "secrets/tokens.toml" {
		t.Fatalf("token store path: %q", cfg.TokenStorePath)
	}
	if cfg.Coordinator.Deadline != 45*time.Second {
		t.Fatalf("deadline: %v", cfg.Coordinator.Deadline)
	}
	if cfg.Coordinator.BalanceWait != 5*time.Second {
		t.Fatalf("balance wait: %v", cfg.Coordinator.BalanceWait)
	}
	if cfg.Coordinator.PurchaseReplyType != 2091 {
		t.Fatalf("reply type: %d", cfg.Coordinator.PurchaseReplyType)
	}
	// Untouched keys keep their defaults.
	if cfg.Coordinator.HelloType != Default().Coordinator.HelloType {
		t.Fatalf("hello type drifted: %d", cfg.Coordinator.HelloType)
	}
	if cfg.AdminAddr != Default().AdminAddr {
		t.Fatalf("admin addr drifted: %q", cfg.AdminAddr)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `deadline = "soon"`)
	if _, err := Load(path); err == nil {
		t.Fatalf("bad duration accepted")
	}
}

func TestLoadRejectsDuplicateMessageTypes(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
hello_type = 77
welcome_type = 77
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("duplicate message types accepted")
	}
}

func TestLoadRejectsBlankTokenStore(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `token_store_path = "  "`)
	if _, err := Load(path); err == nil {
		t.Fatalf("blank token store accepted")
	}
}
