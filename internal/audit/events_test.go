package audit

import "testing"

func TestRenderings(t *testing.T) {
	cases := []struct {
		ev   Event
		want string
	}{
		{
			&FileEvent{Verdict: "DENIED", Operation: "open", Profile: "app", Name: "/etc/x", RequestedMask: "r", DeniedMask: "r", Time: 1000},
			"app: open(r/r) /etc/x (DENIED|1000)",
		},
		{
			&ExecEvent{Verdict: "ALLOWED", Operation: "exec", Profile: "app", Name: "/bin/sh", Comm: "app", RequestedMask: "x", DeniedMask: "x", Time: 1000},
			"app exec /bin/sh with comm=app (x/x). (ALLOWED|1000)",
		},
		{
			&CapabilityEvent{Verdict: "DENIED", Profile: "app", CapName: "net_admin", Time: 1000},
			"app: capability net_admin. (DENIED|1000)",
		},
		{
			&SignalEvent{Verdict: "DENIED", Profile: "app", RequestedMask: "send", DeniedMask: "send", Signal: "term", Peer: "other", Time: 1000},
			"app: signal (send/send term) to other. (DENIED|1000)",
		},
		{
			&ProfileLifecycleEvent{Name: "app", Action: "load", Time: 1000},
			"app loaded at: 1000",
		},
		{
			&ProfileLifecycleEvent{Name: "app", Action: "replace", Time: 1000},
			"app replaced at: 1000",
		},
		{
			&ProfileLifecycleEvent{Name: "app", Action: "remove", Time: 1000},
			"app removed at: 1000",
		},
		{
			&ChangeProfileEvent{Info: "label not found", Profile: "app", Name: "app//child", Time: 1000},
			"app: change_profile to app//child failed: label not found (1000)",
		},
		{
			&UnparsedLine{Raw: "gibberish"},
			"Unrecognized line: gibberish",
		},
	}
	for _, c := range cases {
		if got := c.ev.String(); got != c.want {
			t.Fatalf("render %T:\n got  %q\n want %q", c.ev, got, c.want)
		}
	}
}

func TestFixSuggestions(t *testing.T) {
	fe := &FileEvent{Name: "/etc/x", RequestedMask: "r"}
	if fix, ok := fe.Fix(); !ok || fix != "/etc/x r," {
		t.Fatalf("file fix: %q %v", fix, ok)
	}
	ee := &ExecEvent{Name: "/bin/sh"}
	if fix, ok := ee.Fix(); !ok || fix != "/bin/sh Pix," {
		t.Fatalf("exec fix: %q %v", fix, ok)
	}
	ce := &CapabilityEvent{CapName: "net_admin"}
	if fix, ok := ce.Fix(); !ok || fix != "capability net_admin," {
		t.Fatalf("capability fix: %q %v", fix, ok)
	}
	se := &SignalEvent{RequestedMask: "send", Peer: "other"}
	if fix, ok := se.Fix(); !ok || fix != "signal (send) peer=other," {
		t.Fatalf("signal fix: %q %v", fix, ok)
	}
	if _, ok := (&ProfileLifecycleEvent{}).Fix(); ok {
		t.Fatal("lifecycle events have no fix")
	}
	if _, ok := (&ChangeProfileEvent{}).Fix(); ok {
		t.Fatal("change_profile events have no fix")
	}
}

func TestIdentityExcludesVolatileFields(t *testing.T) {
	a := &FileEvent{Verdict: "DENIED", Operation: "open", Profile: "p", Name: "/x", RequestedMask: "r", DeniedMask: "r", Time: 1000}
	b := &FileEvent{Verdict: "DENIED", Operation: "open", Profile: "p", Name: "/x", RequestedMask: "r", DeniedMask: "r", Time: 2000}
	if KeyOf(a) != KeyOf(b) {
		t.Fatal("timestamp must not affect identity")
	}
	c := &FileEvent{Verdict: "DENIED", Operation: "open", Profile: "p", Name: "/y", RequestedMask: "r", DeniedMask: "r", Time: 1000}
	if KeyOf(a) == KeyOf(c) {
		t.Fatal("distinct names must not conflate")
	}
}

func TestIdentityKindMismatch(t *testing.T) {
	ce := &CapabilityEvent{Profile: "p", CapName: "x"}
	lc := &ProfileLifecycleEvent{Name: "p"}
	if KeyOf(ce) == KeyOf(lc) {
		t.Fatal("different variants must never share a key")
	}
}
