package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// FormatEnv selects the log format; "json" switches to structured output.
const FormatEnv = "OUROINSTALL_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return NewFromEnv(), nil
		},
	})
}

// NewFromEnv creates a Logger whose format is chosen by FormatEnv.
func NewFromEnv() ports.Logger {
	l := New().(*Logger)
	if strings.EqualFold(strings.TrimSpace(os.Getenv(FormatEnv)), "json") {
		l.SetJSON(true)
	}
	return l
}
