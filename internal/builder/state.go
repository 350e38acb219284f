package builder

import "fmt"

// State is a position in the builder's top-level state machine.
//
// Idle is both the initial state and the state re-entered after every
// completed action. Saving moves to Terminated once the save hook succeeds.
type State int

// Builder states.
const (
	StateIdle State = iota
	StateBuildingTable
	StateAddingData
	StateSaving
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuildingTable:
		return "building_table"
	case StateAddingData:
		return "adding_data"
	case StateSaving:
		return "saving"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
