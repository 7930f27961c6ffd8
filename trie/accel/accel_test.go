package accel

import "testing"

func TestSelectNeverFails(t *testing.T) {
	b := Select()
	if b == nil {
		t.Fatal("Select returned nil")
	}
	// Whatever Available() reports, Matches on an unavailable backend
	// must report ok=false rather than panic or return a bogus result.
	if !b.Available() {
		_, ok := b.Matches(make([]byte, 512), 256, 68, 3)
		if ok {
			t.Fatal("unavailable backend reported ok=true")
		}
	}
}

func TestHostIsLittleEndianIsDeterministic(t *testing.T) {
	a := hostIsLittleEndian()
	b := hostIsLittleEndian()
	if a != b {
		t.Fatal("hostIsLittleEndian is not stable across calls")
	}
}
