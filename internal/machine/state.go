package machine

// State is the run state of a machine.
type State int

// Run states. Stopped is final.
const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "invalid"
	}
}
