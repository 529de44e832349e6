package events

import "github.com/atomicstack/xitems/internal/logging"

type PopupTracer struct{}

var Popup = PopupTracer{}

func (PopupTracer) Launch(client string, width, height int, x, y string) {
	logging.Trace("popup.launch", map[string]interface{}{
		"client": client,
		"width":  width,
		"height": height,
		"x":      x,
		"y":      y,
	})
}

func (PopupTracer) Done(channel string, status int) {
	logging.Trace("popup.done", map[string]interface{}{"channel": channel, "status": status})
}

func (PopupTracer) Fallback(reason string) {
	logging.Trace("popup.fallback", map[string]interface{}{"reason": reason})
}
