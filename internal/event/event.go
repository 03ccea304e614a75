// Package event turns domain events into timed bursts of render
// instructions.
package event

// Event is a domain event produced by the application.
type Event int

const (
	// PathChange is emitted when the current directory changes.
	PathChange Event = iota
	// PathError is emitted when a navigation attempt is rejected.
	PathError
	// FileDeleted is emitted after an entry has been deleted.
	FileDeleted
	// AppExit stops the orchestrator.
	AppExit
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case PathChange:
		return "PathChange"
	case PathError:
		return "PathError"
	case FileDeleted:
		return "FileDeleted"
	case AppExit:
		return "AppExit"
	default:
		return "Unknown"
	}
}

// Instruction is a render directive interpreted by the compositor.
type Instruction int

const (
	SetFrameAroundCurrentPath Instruction = iota
	RemoveFrameAroundCurrentPath
	SetPathToRed
	ResetCurrentPathColor
	SetFrameAroundSpaceFreed
	RemoveFrameAroundSpaceFreed
	// Render asks the compositor to redraw with the state set so far.
	Render
)

// String returns the instruction name.
func (i Instruction) String() string {
	switch i {
	case SetFrameAroundCurrentPath:
		return "SetFrameAroundCurrentPath"
	case RemoveFrameAroundCurrentPath:
		return "RemoveFrameAroundCurrentPath"
	case SetPathToRed:
		return "SetPathToRed"
	case ResetCurrentPathColor:
		return "ResetCurrentPathColor"
	case SetFrameAroundSpaceFreed:
		return "SetFrameAroundSpaceFreed"
	case RemoveFrameAroundSpaceFreed:
		return "RemoveFrameAroundSpaceFreed"
	case Render:
		return "Render"
	default:
		return "Unknown"
	}
}
