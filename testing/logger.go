package testing

import (
	"testing"

	"github.com/kevin-dyer/mqtt-subscription-vault/internal/logger"
	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

// NewTestLogger creates a logger that writes to the testing.T log, so vault
// and bridge output shows up with -v or on failure.
func NewTestLogger(t *testing.T) types.Logger {
	return logger.NewTest(t)
}
