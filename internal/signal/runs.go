package signal

// ConsecutiveRuns returns, for a boolean array, two parallel arrays:
// starts[i] is the index where run i begins and lens[i] is its
// length. A run is a maximal span of consecutive true values. Empty
// input returns two empty (non-nil) arrays.
func ConsecutiveRuns(x []bool) (starts []int, lens []int) {
	starts = []int{}
	lens = []int{}
	i := 0
	for i < len(x) {
		if !x[i] {
			i++
			continue
		}
		start := i
		for i < len(x) && x[i] {
			i++
		}
		starts = append(starts, start)
		lens = append(lens, i-start)
	}
	return starts, lens
}
