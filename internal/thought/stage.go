package thought

// Stage is the coarse position classification of a thought within its
// sequence. It is recomputed from (index, total) on every request —
// there is no persisted state machine.
type Stage string

const (
	StageInitial Stage = "initial"
	StageMiddle  Stage = "middle"
	StageFinal   Stage = "final"
)

// StageFor classifies the position (index, total) of a thought.
// Rules apply in priority order:
//
//  1. A single-thought sequence is always final.
//  2. The first thought of a longer sequence is initial.
//  3. The last thought is final.
//  4. Otherwise progress = index/total: ≤ 0.33 initial, ≥ 0.67 final,
//     else middle. (A two-thought sequence never reaches this clause —
//     both positions are covered by rules 2 and 3.)
//
// Both the recommendation engine and the sequence tracker must call
// this function; it is the only implementation of the rule.
func StageFor(index, total int) Stage {
	switch {
	case total <= 1:
		return StageFinal
	case index == 1:
		return StageInitial
	case index >= total:
		return StageFinal
	}

	progress := float64(index) / float64(total)
	switch {
	case progress <= 0.33:
		return StageInitial
	case progress >= 0.67:
		return StageFinal
	default:
		return StageMiddle
	}
}
