// Package analytics delivers usage events and user properties to the
// platform's event sink. Delivery is fire-and-forget: implementations log
// failures and never surface them to callers.
package analytics

import "context"

// Recorder records analytics events and user properties.
type Recorder interface {
	Event(ctx context.Context, name string, params map[string]string)
	UserProperty(ctx context.Context, name, value string)
}

// NopRecorder drops everything. Useful in tests.
type NopRecorder struct{}

func (NopRecorder) Event(context.Context, string, map[string]string) {}
func (NopRecorder) UserProperty(context.Context, string, string)     {}
