package events

import "github.com/atomicstack/xitems/internal/logging"

type SelectionTracer struct{}

type RedrawTracer struct{}

type OutcomeTracer struct{}

type OutcomeReason string

const (
	ReasonKey          OutcomeReason = "key"
	ReasonQuickSelect  OutcomeReason = "quick-select"
	ReasonClick        OutcomeReason = "click"
	ReasonClickOutside OutcomeReason = "click-outside"
)

var (
	Selection = SelectionTracer{}
	Redraw    = RedrawTracer{}
	Outcome   = OutcomeTracer{}
)

func (SelectionTracer) Move(direction string, from, to int) {
	logging.Trace("selection.move", map[string]interface{}{"direction": direction, "from": from, "to": to})
}

func (SelectionTracer) Hover(y, row int) {
	logging.Trace("selection.hover", map[string]interface{}{"y": y, "row": row})
}

func (SelectionTracer) Key(keysym string, row int, found bool) {
	logging.Trace("selection.key", map[string]interface{}{"keysym": keysym, "row": row, "found": found})
}

func (SelectionTracer) Focus(focused bool) {
	logging.Trace("selection.focus", map[string]interface{}{"focused": focused})
}

func (RedrawTracer) Damage(y0, y1 int, more bool) {
	logging.Trace("redraw.damage", map[string]interface{}{"y0": y0, "y1": y1, "more": more})
}

func (RedrawTracer) Pass(painted, total int) {
	logging.Trace("redraw.pass", map[string]interface{}{"painted": painted, "total": total})
}

func (OutcomeTracer) Commit(text string, reason OutcomeReason) {
	logging.Trace("outcome.commit", map[string]interface{}{"text": text, "reason": string(reason)})
}

func (OutcomeTracer) Cancel(reason OutcomeReason) {
	logging.Trace("outcome.cancel", map[string]interface{}{"reason": string(reason)})
}
