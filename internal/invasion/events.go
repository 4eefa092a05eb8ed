package invasion

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCountdownFinished EventKind = iota
	EventJump
	EventAlienSpawned
	EventAlienEscaped
	EventObstacleSpawned
	EventPowerUpSpawned
	EventPowerUpExpired
	EventPowerUpCollected
	EventGameOver
	EventRestart
)

var eventNames = [...]string{
	EventCountdownFinished: "countdown_finished",
	EventJump:              "jump",
	EventAlienSpawned:      "alien_spawned",
	EventAlienEscaped:      "alien_escaped",
	EventObstacleSpawned:   "obstacle_spawned",
	EventPowerUpSpawned:    "power_up_spawned",
	EventPowerUpExpired:    "power_up_expired",
	EventPowerUpCollected:  "power_up_collected",
	EventGameOver:          "game_over",
	EventRestart:           "restart",
}

// String returns the event's log name.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is emitted by Session.Tick.
type Event struct {
	Kind  EventKind
	Tick  int
	Score int     // Score after the event
	Value float64 // Jump impulse, new jump cap, ...
	Cause HitKind // Set for EventGameOver
}
