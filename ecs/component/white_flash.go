package component

// WhiteFlash blinks a node white for a few ticks, used to mark paddle hits.
type WhiteFlash struct {
	// Ticks remaining for the whole flash.
	Ticks int
	// Interval in ticks between toggles.
	Interval int
	Timer    int
	On       bool
}

func NewWhiteFlash(ticks, interval int) *WhiteFlash {
	return &WhiteFlash{Ticks: ticks, Interval: interval, On: true}
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
