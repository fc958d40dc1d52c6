package audit

import "strings"

type Kind string

const (
	KindFile             Kind = "file"
	KindExec             Kind = "exec"
	KindCapability       Kind = "capability"
	KindSignal           Kind = "signal"
	KindProfileLifecycle Kind = "profile_lifecycle"
	KindChangeProfile    Kind = "change_profile"
	KindUnparsed         Kind = "unparsed"
)

// Event is one classified audit record. Variants are plain structs in
// events.go; everything the reporting layer needs goes through this
// interface. An event is immutable after construction — the occurrence
// count lives on the Counted record produced by Dedupe, not on the event.
type Event interface {
	Kind() Kind
	// Epoch is the embedded audit timestamp in epoch seconds (0 for
	// unparsed lines, which have no trusted timestamp).
	Epoch() int64
	// String renders the stable one-line human-readable form.
	String() string
	// Fix returns a suggested profile rule fragment; ok is false for
	// variants that have no sensible suggestion.
	Fix() (fix string, ok bool)

	// profile is the grouping bucket. Variants that do not carry a
	// profile attribute return "".
	profile() string
	// identityKey is the ordered tuple of fields that defines sameness
	// for this variant. Volatile fields (pid, uids, timestamp) are
	// deliberately excluded so repeats collapse; enough fields are
	// included that distinct real events never conflate.
	identityKey() []string
}

// Key is the comparable dedup identity: the variant tag plus its identity
// tuple. Two events are the same iff their Keys are equal.
type Key struct {
	Kind   Kind
	Fields string
}

// KeyOf derives the identity Key for any event.
func KeyOf(e Event) Key {
	return Key{Kind: e.Kind(), Fields: strings.Join(e.identityKey(), "\x1f")}
}

// Counted pairs a representative event with the number of input lines that
// produced it.
type Counted struct {
	Event Event
	Count int
}
