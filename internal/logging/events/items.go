package events

import "github.com/atomicstack/xitems/internal/logging"

type ItemsTracer struct{}

var Items = ItemsTracer{}

func (ItemsTracer) Built(count int) {
	logging.Trace("items.built", map[string]interface{}{"count": count})
}

func (ItemsTracer) KeySymDropped(line int, name string, limit int) {
	logging.Trace("items.keysym.dropped", map[string]interface{}{"line": line, "keysym": name, "limit": limit})
}

func (ItemsTracer) ReadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("items.read.error", map[string]interface{}{"error": err.Error()})
}
