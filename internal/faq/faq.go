// Package faq loads the FAQ knowledge base.
//
// The document is read once at process start and treated as an opaque,
// immutable text blob for the remainder of the process lifetime. There is
// no decomposition into Q/A pairs and no reload operation; edits require a
// restart.
package faq

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// Load reads the FAQ document at path. A missing file is not fatal: it
// returns the empty string, which degrades the bot to "no knowledge base"
// and makes every question escalate.
func Load(path string, logger log.Logger) (string, error) {
	if logger == nil {
		logger = log.NewNop()
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("FAQ file not found, every question will escalate", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading FAQ file %q: %w", path, err)
	}

	logger.Info("loaded FAQ knowledge base", "path", path, "bytes", len(content))
	return string(content), nil
}
