// internal/logging/events.go
package logging

import "circle-canvas/internal/event"

// OnEvent logs dispatched canvas events at debug level.
func (l *Logger) OnEvent(e event.Event) {
	l.Debug("events", string(e.Type), map[string]interface{}{"data": e.Data})
}
