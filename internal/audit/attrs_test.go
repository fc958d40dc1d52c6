package audit

import "testing"

func TestTokenize(t *testing.T) {
	m := Tokenize(`type=AVC msg=audit(1000.0:1): apparmor="DENIED" operation="open" name="/etc/x y"`)
	if m["type"] != "AVC" {
		t.Fatalf("type: got %q", m["type"])
	}
	if m["msg"] != "audit(1000.0:1):" {
		t.Fatalf("msg: got %q", m["msg"])
	}
	if m["apparmor"] != "DENIED" {
		t.Fatalf("quotes should be stripped: got %q", m["apparmor"])
	}
	if m["name"] != "/etc/x y" {
		t.Fatalf("quoted value with space: got %q", m["name"])
	}
}

func TestTokenize_LastKeyWins(t *testing.T) {
	m := Tokenize(`a=1 a=2 a="3"`)
	if m["a"] != "3" {
		t.Fatalf("last occurrence should win, got %q", m["a"])
	}
}

func TestTokenize_ControlCharsBecomeSpaces(t *testing.T) {
	m := Tokenize("a=1\x00\x01\x1fb=2")
	if m["a"] != "1" || m["b"] != "2" {
		t.Fatalf("control bytes should split tokens: %v", m)
	}
}

func TestTokenize_NoPairs(t *testing.T) {
	if m := Tokenize("nothing interesting here"); len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}
