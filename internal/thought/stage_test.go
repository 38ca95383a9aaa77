package thought

import "testing"

// --- StageFor priority rules ---

func TestStageFor_SingleThoughtIsFinal(t *testing.T) {
	if got := StageFor(1, 1); got != StageFinal {
		t.Errorf("StageFor(1,1) = %s, want final", got)
	}
}

func TestStageFor_FirstOfManyIsInitial(t *testing.T) {
	for _, total := range []int{2, 3, 5, 10, 100} {
		if got := StageFor(1, total); got != StageInitial {
			t.Errorf("StageFor(1,%d) = %s, want initial", total, got)
		}
	}
}

func TestStageFor_LastIsFinal(t *testing.T) {
	for _, total := range []int{2, 3, 5, 10, 100} {
		if got := StageFor(total, total); got != StageFinal {
			t.Errorf("StageFor(%d,%d) = %s, want final", total, total, got)
		}
	}
}

func TestStageFor_TwoThoughtSequence(t *testing.T) {
	if got := StageFor(1, 2); got != StageInitial {
		t.Errorf("StageFor(1,2) = %s, want initial", got)
	}
	if got := StageFor(2, 2); got != StageFinal {
		t.Errorf("StageFor(2,2) = %s, want final", got)
	}
}

func TestStageFor_ProgressBands(t *testing.T) {
	// total=10: 2,3 → ≤0.33 initial; 4..6 middle; 7..9 → ≥0.67 final.
	wants := map[int]Stage{
		2: StageInitial,
		3: StageInitial,
		4: StageMiddle,
		5: StageMiddle,
		6: StageMiddle,
		7: StageFinal,
		8: StageFinal,
		9: StageFinal,
	}
	for index, want := range wants {
		if got := StageFor(index, 10); got != want {
			t.Errorf("StageFor(%d,10) = %s, want %s", index, got, want)
		}
	}
}

func TestStageFor_MiddleOfThree(t *testing.T) {
	if got := StageFor(2, 3); got != StageMiddle {
		t.Errorf("StageFor(2,3) = %s, want middle", got)
	}
}

// Every (index,total) pair yields one of the three stages, never an
// empty value.
func TestStageFor_TotalFunction(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for index := 1; index <= total; index++ {
			got := StageFor(index, total)
			if got != StageInitial && got != StageMiddle && got != StageFinal {
				t.Fatalf("StageFor(%d,%d) = %q, not a valid stage", index, total, got)
			}
		}
	}
}

// --- Context ---

func TestContext_HasTool(t *testing.T) {
	ctx := Context{AvailableTools: []string{"mental_model", "debugging_approach"}}
	if !ctx.HasTool("mental_model") {
		t.Error("HasTool(mental_model) = false, want true")
	}
	if ctx.HasTool("decision_framework") {
		t.Error("HasTool(decision_framework) = true, want false")
	}
	if (Context{}).HasTool("anything") {
		t.Error("empty context should have no tools")
	}
}
