package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.txt")
	content := "Q: Do you ship internationally?\nA: Yes, 50 countries.\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := Load(path, log.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != content {
		t.Errorf("Load() = %q, want %q", got, content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.txt"), log.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if got != "" {
		t.Errorf("Load() = %q, want empty string for missing file", got)
	}
}
