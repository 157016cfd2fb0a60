package engine

// Intent is the player's request for one tick
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:  "none",
	IntentUp:    "up",
	IntentDown:  "down",
	IntentLeft:  "left",
	IntentRight: "right",
	IntentQuit:  "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IsDirection reports whether the intent moves the whale
func (i Intent) IsDirection() bool {
	return i >= IntentUp && i <= IntentRight
}
