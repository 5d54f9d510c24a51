package transport

import (
	"context"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsEmitter posts events to the Wails UI event loop.
type wailsEmitter struct {
	ctx context.Context
}

// NewWailsEmitter creates an EventEmitter backed by the Wails runtime.
func NewWailsEmitter(ctx context.Context) EventEmitter {
	return &wailsEmitter{ctx: ctx}
}

func (e *wailsEmitter) Emit(event string, payload interface{}) {
	wailsruntime.EventsEmit(e.ctx, event, payload)
}
