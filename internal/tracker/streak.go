package tracker

// ComputeStreaks derives the streak counters from the challenge grid in
// one left-to-right scan. The current streak is the run ending at the
// final index: when the last day is unmarked the current streak is zero
// regardless of earlier runs.
func ComputeStreaks(days []bool) (current, longest int) {
	run := 0
	for i, done := range days {
		if !done {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
		if i == len(days)-1 {
			current = run
		}
	}
	return current, longest
}
