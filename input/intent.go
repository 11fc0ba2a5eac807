package input

// IntentType discriminates system-level actions emitted by the mapper
// Movement and combat never produce intents; they flow through Input()
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentPause
	IntentToggleMute
	IntentResize
)

var intentNames = [...]string{"none", "quit", "pause", "mute", "resize"}

func (t IntentType) String() string {
	if int(t) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[t]
}

// action is a bindable key target
type action uint8

const (
	actionLeft action = iota
	actionRight
	actionUp
	actionDown
	actionJump
	actionAttack
	actionPause
	actionMute
	actionQuit
	actionCount
)

// holdable actions count as pressed for a hold window after each key event
const holdableCount = actionAttack + 1

var actionByName = map[string]action{
	"left":   actionLeft,
	"right":  actionRight,
	"up":     actionUp,
	"down":   actionDown,
	"jump":   actionJump,
	"attack": actionAttack,
	"pause":  actionPause,
	"mute":   actionMute,
	"quit":   actionQuit,
}

var actionIntents = [actionCount]IntentType{
	actionPause: IntentPause,
	actionMute:  IntentToggleMute,
	actionQuit:  IntentQuit,
}
