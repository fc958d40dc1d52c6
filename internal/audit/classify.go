package audit

import (
	"fmt"
	"strings"
)

type constructor func(AttrMap) (Event, error)

// operations is the closed dispatch table from the operation attribute to a
// variant constructor. Any operation outside this table is a guaranteed
// classification failure, never a default guess.
var operations = map[string]constructor{
	"capable":         newCapabilityEvent,
	"exec":            newExecEvent,
	"signal":          newSignalEvent,
	"change_profile":  newChangeProfileEvent,
	"profile_load":    newProfileLifecycleEvent,
	"profile_replace": newProfileLifecycleEvent,
	"profile_remove":  newProfileLifecycleEvent,

	"file_inherit": newFileEvent,
	"file_lock":    newFileEvent,
	"file_mmap":    newFileEvent,
	"file_perm":    newFileEvent,
	"mknod":        newFileEvent,
	"open":         newFileEvent,
	"rename_dest":  newFileEvent,
	"rename_src":   newFileEvent,
	"unlink":       newFileEvent,
	"chmod":        newFileEvent,
	"chown":        newFileEvent,
}

// lifecycleAction derives load/replace/remove from operations of the form
// profile_<action>.
func lifecycleAction(op string) string {
	if _, action, ok := strings.Cut(op, "_"); ok {
		return action
	}
	return op
}

// Classify maps one tokenized line to its typed event. Failures come back as
// ErrUnknownOperation, ErrMissingAttr or ErrTimeParse; callers that hold the
// raw line should prefer ClassifyLine, which demotes those to an
// UnparsedLine.
func Classify(m AttrMap) (Event, error) {
	op, ok := m["operation"]
	if !ok {
		return nil, fmt.Errorf("%w: operation", ErrMissingAttr)
	}
	ctor, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return ctor(m)
}

// ClassifyLine is the classifier boundary: it always returns exactly one
// event. When classification of the attribute map fails for any reason the
// original raw text is wrapped in an UnparsedLine; no parse error escapes.
func ClassifyLine(raw string, m AttrMap) Event {
	ev, err := Classify(m)
	if err != nil {
		return &UnparsedLine{Raw: raw}
	}
	return ev
}
