package visibility

import "strings"

// Kind identifies one of the four synthetic visibility events.
type Kind int

const (
	// Show fires when a node becomes totally visible.
	Show Kind = iota
	// Hide fires when a node stops being even partially visible.
	Hide
	// ShowPart fires when a node becomes partially visible.
	ShowPart
	// HidePart fires when a node stops being totally visible.
	HidePart

	numKinds = iota
)

// String returns the event name dispatched for this kind.
func (k Kind) String() string {
	switch k {
	case Show:
		return "show"
	case Hide:
		return "hide"
	case ShowPart:
		return "showpart"
	case HidePart:
		return "hidepart"
	default:
		return "unknown"
	}
}

// Kinds returns all synthetic event kinds.
func Kinds() []Kind {
	return []Kind{Show, Hide, ShowPart, HidePart}
}

// KindFromEvent maps an event name to its Kind. Matching is
// case-insensitive. ok is false for names that are not reserved.
func KindFromEvent(name string) (k Kind, ok bool) {
	switch strings.ToLower(name) {
	case "show":
		return Show, true
	case "hide":
		return Hide, true
	case "showpart":
		return ShowPart, true
	case "hidepart":
		return HidePart, true
	default:
		return 0, false
	}
}

// mode returns the evaluator backing detectors for this kind. Show and
// HidePart watch the boundary of full containment; Hide and ShowPart watch
// the boundary of any overlap.
func (k Kind) mode() Mode {
	switch k {
	case Show, HidePart:
		return ModeTotal
	default:
		return ModePartial
	}
}

// firesOn returns the visibility value whose edge raises this kind's
// event. The policy is asymmetric on purpose: show/showpart fire only when
// becoming visible, hide/hidepart only when becoming hidden.
func (k Kind) firesOn() bool {
	switch k {
	case Show, ShowPart:
		return true
	default:
		return false
	}
}
