// Package focus derives a discrete attention state and a continuous
// focus score from the physiological and facial signals delivered by
// the sensing SDK.
package focus

// State is the discrete attention state shown in the companion UI.
type State string

const (
	StateFocused    State = "focused"
	StateDistracted State = "distracted"
	StateDrowsy     State = "drowsy"
	StateStressed   State = "stressed"
	StateAway       State = "away"
	StateTalking    State = "talking"
	StateUnknown    State = "unknown"
)

// String returns the wire name of the state.
func (s State) String() string {
	return string(s)
}
