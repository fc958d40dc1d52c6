package audit

import "fmt"

// FileEvent is a file permission or manipulation decision (open, unlink,
// chmod, mmap, rename, ...).
type FileEvent struct {
	Verdict       string // apparmor attribute: DENIED or ALLOWED
	Operation     string
	Profile       string
	Name          string
	RequestedMask string
	DeniedMask    string
	Time          int64
}

func newFileEvent(m AttrMap) (Event, error) {
	if err := m.require("apparmor", "operation", "profile", "name", "requested_mask", "denied_mask"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &FileEvent{
		Verdict:       m["apparmor"],
		Operation:     m["operation"],
		Profile:       m["profile"],
		Name:          m["name"],
		RequestedMask: m["requested_mask"],
		DeniedMask:    m["denied_mask"],
		Time:          t,
	}, nil
}

func (e *FileEvent) Kind() Kind      { return KindFile }
func (e *FileEvent) Epoch() int64    { return e.Time }
func (e *FileEvent) profile() string { return e.Profile }

func (e *FileEvent) identityKey() []string {
	return []string{e.Verdict, e.Operation, e.Profile, e.Name, e.RequestedMask, e.DeniedMask}
}

func (e *FileEvent) String() string {
	return fmt.Sprintf("%s: %s(%s/%s) %s (%s|%d)",
		e.Profile, e.Operation, e.RequestedMask, e.DeniedMask, e.Name, e.Verdict, e.Time)
}

func (e *FileEvent) Fix() (string, bool) {
	return fmt.Sprintf("%s %s,", e.Name, e.RequestedMask), true
}

// ExecEvent is an execution of another file under a profile.
type ExecEvent struct {
	Verdict       string
	Operation     string
	Profile       string
	Name          string
	Comm          string
	RequestedMask string
	DeniedMask    string
	Time          int64
}

func newExecEvent(m AttrMap) (Event, error) {
	if err := m.require("apparmor", "operation", "profile", "name", "comm", "requested_mask", "denied_mask"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &ExecEvent{
		Verdict:       m["apparmor"],
		Operation:     m["operation"],
		Profile:       m["profile"],
		Name:          m["name"],
		Comm:          m["comm"],
		RequestedMask: m["requested_mask"],
		DeniedMask:    m["denied_mask"],
		Time:          t,
	}, nil
}

func (e *ExecEvent) Kind() Kind      { return KindExec }
func (e *ExecEvent) Epoch() int64    { return e.Time }
func (e *ExecEvent) profile() string { return e.Profile }

func (e *ExecEvent) identityKey() []string {
	return []string{e.Verdict, e.Operation, e.Profile, e.Name, e.Comm, e.RequestedMask, e.DeniedMask}
}

func (e *ExecEvent) String() string {
	return fmt.Sprintf("%s exec %s with comm=%s (%s/%s). (%s|%d)",
		e.Profile, e.Name, e.Comm, e.RequestedMask, e.DeniedMask, e.Verdict, e.Time)
}

func (e *ExecEvent) Fix() (string, bool) {
	return fmt.Sprintf("%s Pix,", e.Name), true
}

// CapabilityEvent is a denied or allowed POSIX capability use.
type CapabilityEvent struct {
	Verdict string
	Profile string
	CapName string
	Time    int64
}

func newCapabilityEvent(m AttrMap) (Event, error) {
	if err := m.require("profile", "capname"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &CapabilityEvent{
		Verdict: m["apparmor"],
		Profile: m["profile"],
		CapName: m["capname"],
		Time:    t,
	}, nil
}

func (e *CapabilityEvent) Kind() Kind      { return KindCapability }
func (e *CapabilityEvent) Epoch() int64    { return e.Time }
func (e *CapabilityEvent) profile() string { return e.Profile }

func (e *CapabilityEvent) identityKey() []string {
	return []string{e.Profile, e.CapName}
}

func (e *CapabilityEvent) String() string {
	return fmt.Sprintf("%s: capability %s. (%s|%d)", e.Profile, e.CapName, e.Verdict, e.Time)
}

func (e *CapabilityEvent) Fix() (string, bool) {
	return fmt.Sprintf("capability %s,", e.CapName), true
}

// SignalEvent is an inter-process signal denial.
type SignalEvent struct {
	Verdict       string
	Profile       string
	RequestedMask string
	DeniedMask    string
	Signal        string
	Peer          string
	Time          int64
}

func newSignalEvent(m AttrMap) (Event, error) {
	if err := m.require("profile", "requested_mask", "denied_mask", "signal", "peer"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &SignalEvent{
		Verdict:       m["apparmor"],
		Profile:       m["profile"],
		RequestedMask: m["requested_mask"],
		DeniedMask:    m["denied_mask"],
		Signal:        m["signal"],
		Peer:          m["peer"],
		Time:          t,
	}, nil
}

func (e *SignalEvent) Kind() Kind      { return KindSignal }
func (e *SignalEvent) Epoch() int64    { return e.Time }
func (e *SignalEvent) profile() string { return e.Profile }

func (e *SignalEvent) identityKey() []string {
	return []string{e.Profile, e.RequestedMask, e.DeniedMask, e.Signal, e.Peer}
}

func (e *SignalEvent) String() string {
	return fmt.Sprintf("%s: signal (%s/%s %s) to %s. (%s|%d)",
		e.Profile, e.RequestedMask, e.DeniedMask, e.Signal, e.Peer, e.Verdict, e.Time)
}

func (e *SignalEvent) Fix() (string, bool) {
	return fmt.Sprintf("signal (%s) peer=%s,", e.RequestedMask, e.Peer), true
}

// ProfileLifecycleEvent is a profile load/replace/remove notification.
// Identity is the profile file name alone: repeated reloads of the same
// profile collapse regardless of when they happened.
type ProfileLifecycleEvent struct {
	Name    string
	Action  string // load, replace or remove
	Profile string // usually "unconfined"; data only, not identity
	Time    int64
}

func newProfileLifecycleEvent(m AttrMap) (Event, error) {
	if err := m.require("operation", "name"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &ProfileLifecycleEvent{
		Name:    m["name"],
		Action:  lifecycleAction(m["operation"]),
		Profile: m["profile"],
		Time:    t,
	}, nil
}

func (e *ProfileLifecycleEvent) Kind() Kind      { return KindProfileLifecycle }
func (e *ProfileLifecycleEvent) Epoch() int64    { return e.Time }
func (e *ProfileLifecycleEvent) profile() string { return e.Profile }

func (e *ProfileLifecycleEvent) identityKey() []string {
	return []string{e.Name}
}

func (e *ProfileLifecycleEvent) String() string {
	return fmt.Sprintf("%s %s at: %d", e.Name, pastTense(e.Action), e.Time)
}

// pastTense renders a lifecycle action for display: load -> loaded,
// replace -> replaced, remove -> removed. Unknown actions pass through.
func pastTense(action string) string {
	switch action {
	case "load":
		return "loaded"
	case "replace":
		return "replaced"
	case "remove":
		return "removed"
	default:
		return action
	}
}

func (e *ProfileLifecycleEvent) Fix() (string, bool) { return "", false }

// ChangeProfileEvent is a failed in-process profile switch attempt.
type ChangeProfileEvent struct {
	Info    string
	Profile string
	Name    string
	Time    int64
}

func newChangeProfileEvent(m AttrMap) (Event, error) {
	if err := m.require("info", "profile", "name"); err != nil {
		return nil, err
	}
	t, err := m.epoch()
	if err != nil {
		return nil, err
	}
	return &ChangeProfileEvent{
		Info:    m["info"],
		Profile: m["profile"],
		Name:    m["name"],
		Time:    t,
	}, nil
}

func (e *ChangeProfileEvent) Kind() Kind      { return KindChangeProfile }
func (e *ChangeProfileEvent) Epoch() int64    { return e.Time }
func (e *ChangeProfileEvent) profile() string { return e.Profile }

func (e *ChangeProfileEvent) identityKey() []string {
	return []string{e.Info, e.Profile, e.Name}
}

func (e *ChangeProfileEvent) String() string {
	return fmt.Sprintf("%s: change_profile to %s failed: %s (%d)", e.Profile, e.Name, e.Info, e.Time)
}

func (e *ChangeProfileEvent) Fix() (string, bool) { return "", false }

// UnparsedLine wraps a raw input line that failed classification. The
// original text is preserved verbatim for operator inspection.
type UnparsedLine struct {
	Raw string
}

func (u *UnparsedLine) Kind() Kind            { return KindUnparsed }
func (u *UnparsedLine) Epoch() int64          { return 0 }
func (u *UnparsedLine) profile() string       { return "" }
func (u *UnparsedLine) identityKey() []string { return []string{u.Raw} }
func (u *UnparsedLine) Fix() (string, bool)   { return "", false }
func (u *UnparsedLine) String() string        { return "Unrecognized line: " + u.Raw }
