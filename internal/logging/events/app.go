package events

import "github.com/atomicstack/xitems/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Position(x, y int, source string) {
	logging.Trace("app.position", map[string]interface{}{"x": x, "y": y, "source": source})
}

func (AppTracer) Output(dest string, bytes int) {
	logging.Trace("app.output", map[string]interface{}{"dest": dest, "bytes": bytes})
}
