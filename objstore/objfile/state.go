package objfile

import "fmt"

// state represents where a file is in its lifecycle, determining whether a remote read or write is required.
type state int

const (
	// stateUnfetched means the object hasn't been fetched and the buffer hasn't been modified.
	stateUnfetched state = iota

	// stateClean means the buffer matches what was last fetched/stored.
	stateClean

	// stateDirty means the buffer has been modified since it was last stored.
	stateDirty

	// stateClosed is terminal, the buffer has been released.
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateUnfetched:
		return "unfetched"
	case stateClean:
		return "clean"
	case stateDirty:
		return "dirty"
	case stateClosed:
		return "closed"
	}

	panic(fmt.Sprintf("unknown state %d", s))
}
