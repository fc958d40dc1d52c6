package audit

import (
	"errors"
	"testing"
)

func TestEpochFrom(t *testing.T) {
	got, err := EpochFrom(`type=AVC msg=audit(1614105087.888:94155): apparmor="ALLOWED"`)
	if err != nil {
		t.Fatalf("EpochFrom: %v", err)
	}
	if got != 1614105087 {
		t.Fatalf("epoch: got %d", got)
	}
}

func TestEpochFrom_Missing(t *testing.T) {
	for _, s := range []string{"", "no envelope here", "audit(x.1:2)", "audit 1000.0"} {
		if _, err := EpochFrom(s); !errors.Is(err, ErrTimeParse) {
			t.Fatalf("%q: expected ErrTimeParse, got %v", s, err)
		}
	}
}
