package analytics

import (
	"context"

	"github.com/mmisoft/ecom/internal/logging"
)

// SlogRecorder writes analytics events to the structured logger. It is the
// default sink when no Redis endpoint is configured.
type SlogRecorder struct {
	log logging.Logger
}

func NewSlogRecorder(log logging.Logger) *SlogRecorder {
	return &SlogRecorder{log: log}
}

func (r *SlogRecorder) Event(ctx context.Context, name string, params map[string]string) {
	args := []any{"event", name}
	for k, v := range params {
		args = append(args, k, v)
	}
	r.log.Info(ctx, "analytics event", args...)
}

func (r *SlogRecorder) UserProperty(ctx context.Context, name, value string) {
	r.log.Info(ctx, "analytics user property", "name", name, "value", value)
}
