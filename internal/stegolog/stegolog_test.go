package stegolog

import "testing"

func TestNewScopesPrefix(t *testing.T) {
	l := New("eval")
	if l == nil {
		t.Fatalf("New returned nil logger")
	}
}

func TestDebugFuncDoesNotPanic(t *testing.T) {
	fn := DebugFunc(New("test"))
	fn("value=%d", 42)
}

func TestSetDebugTogglesLevel(t *testing.T) {
	SetDebug(true)
	SetDebug(false)
}
