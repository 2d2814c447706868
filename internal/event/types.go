// internal/event/types.go
package event

const (
	ShapeAdded       EventType = "ShapeAdded"       // Круг добавлен
	ShapeRemoved     EventType = "ShapeRemoved"     // Круг удалён
	SelectionChanged EventType = "SelectionChanged" // Выделение изменилось
	ShapesMoved      EventType = "ShapesMoved"      // Выделенные круги сдвинуты
	StoreCleared     EventType = "StoreCleared"     // Хранилище очищено
	ModeChanged      EventType = "ModeChanged"      // Режим взаимодействия сменился
)

// All lists every event type, in declaration order.
var All = []EventType{ShapeAdded, ShapeRemoved, SelectionChanged, ShapesMoved, StoreCleared, ModeChanged}
