package signal

import (
	"reflect"
	"testing"
)

func TestConsecutiveRuns(t *testing.T) {
	x := []bool{false, true, true, false, true, false, false, true, true, true}
	starts, lens := ConsecutiveRuns(x)
	wantStarts := []int{1, 4, 7}
	wantLens := []int{2, 1, 3}
	if !reflect.DeepEqual(starts, wantStarts) {
		t.Fatalf("starts = %v, want %v", starts, wantStarts)
	}
	if !reflect.DeepEqual(lens, wantLens) {
		t.Fatalf("lens = %v, want %v", lens, wantLens)
	}
}

func TestConsecutiveRunsEmpty(t *testing.T) {
	starts, lens := ConsecutiveRuns(nil)
	if len(starts) != 0 || len(lens) != 0 {
		t.Fatalf("expected empty runs for empty input")
	}
}
