package webquery

// State is a step of the question answering pipeline.
type State int

// Pipeline states, in the order they are reached.
// Any step may move to StateFailed, which is terminal.
const (
	StateInit State = iota
	StateChecked
	StateLoaded
	StateChunked
	StateIndexed
	StateRetrieved
	StateAnswered
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateInit:      "init",
	StateChecked:   "checked",
	StateLoaded:    "loaded",
	StateChunked:   "chunked",
	StateIndexed:   "indexed",
	StateRetrieved: "retrieved",
	StateAnswered:  "answered",
	StateDone:      "done",
	StateFailed:    "failed",
}

// String returns the lowercase name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transitions follow s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
