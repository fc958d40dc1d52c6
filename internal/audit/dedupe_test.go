package audit

import "testing"

func TestDedupe_Counts(t *testing.T) {
	same := func() Event {
		return &FileEvent{Verdict: "DENIED", Operation: "open", Profile: "p", Name: "/x", RequestedMask: "r", DeniedMask: "r", Time: 1000}
	}
	other := &FileEvent{Verdict: "DENIED", Operation: "open", Profile: "p", Name: "/y", RequestedMask: "r", DeniedMask: "r", Time: 1000}

	out := Dedupe([]Event{same(), other, same(), same()})
	if len(out) != 2 {
		t.Fatalf("expected 2 representatives, got %d", len(out))
	}
	// First-seen order is kept.
	if out[0].Count != 3 {
		t.Fatalf("count: got %d", out[0].Count)
	}
	if out[1].Count != 1 {
		t.Fatalf("count: got %d", out[1].Count)
	}
	if out[1].Event.(*FileEvent).Name != "/y" {
		t.Fatalf("order not first-seen: %+v", out[1].Event)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Fatalf("expected empty, got %v", out)
	}
}

func TestDedupeUnparsed(t *testing.T) {
	out := DedupeUnparsed([]*UnparsedLine{
		{Raw: "aaa"}, {Raw: "bbb"}, {Raw: "aaa"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0].Raw != "aaa" || out[1].Raw != "bbb" {
		t.Fatalf("order not first-seen: %v", out)
	}
}

func TestGroupByProfile_SortedAscending(t *testing.T) {
	evs := []Counted{
		{Event: &CapabilityEvent{Profile: "zeta", CapName: "a"}, Count: 1},
		{Event: &CapabilityEvent{Profile: "alpha", CapName: "b"}, Count: 1},
		{Event: &CapabilityEvent{Profile: "mid", CapName: "c"}, Count: 1},
		{Event: &CapabilityEvent{Profile: "alpha", CapName: "d"}, Count: 2},
	}
	groups := GroupByProfile(evs)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	wantOrder := []string{"alpha", "mid", "zeta"}
	for i, g := range groups {
		if g.Profile != wantOrder[i] {
			t.Fatalf("group %d: got %q, want %q", i, g.Profile, wantOrder[i])
		}
	}
	// Within a bucket, insertion order is kept.
	alpha := groups[0]
	if len(alpha.Events) != 2 || alpha.Events[0].Event.(*CapabilityEvent).CapName != "b" {
		t.Fatalf("within-bucket order: %+v", alpha.Events)
	}
}
