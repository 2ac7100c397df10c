package suggest

import (
	"strings"
	"testing"

	"github.com/F3lipe9/campuslog/internal/models"
)

func strength(equipment, muscle string) models.Exercise {
	return models.Exercise{Name: "test", Category: models.CategoryStrength, Equipment: equipment, Muscle: muscle}
}

func set(warmup bool, weight float64, reps int) models.WorkoutSet {
	return models.WorkoutSet{IsWarmup: warmup, Weight: weight, Reps: reps}
}

// TestCardio verifies the two fixed cardio messages: one for an empty
// history, one for any history at all regardless of contents.
func TestCardio(t *testing.T) {
	ex := models.Exercise{Category: models.CategoryCardio, Equipment: models.EquipmentNone}

	if got := Suggest(ex, nil); got != msgCardioNoHistory {
		t.Errorf("empty cardio history = %q, want no-history message", got)
	}
	// Contents are irrelevant — even a warm-up-only log counts as history.
	history := []models.WorkoutSet{{IsWarmup: true}}
	if got := Suggest(ex, history); got != msgCardioProgress {
		t.Errorf("cardio with history = %q, want progression message", got)
	}
}

// TestNoWorkingSets verifies that histories with no qualifying working
// set collapse to the start-comfortable message: empty, warm-ups only,
// zero reps, or non-positive weight on a loaded movement.
func TestNoWorkingSets(t *testing.T) {
	loaded := strength(models.EquipmentBarbell, models.MuscleLegs)

	tests := []struct {
		name    string
		history []models.WorkoutSet
	}{
		{"empty", nil},
		{"warmups only", []models.WorkoutSet{set(true, 135, 10), set(true, 185, 5)}},
		{"zero reps", []models.WorkoutSet{set(false, 225, 0)}},
		{"zero weight on loaded", []models.WorkoutSet{set(false, 0, 10)}},
		{"negative weight on loaded", []models.WorkoutSet{set(false, -20, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(loaded, tt.history); got != msgNoWorkingSets {
				t.Errorf("Suggest = %q, want no-working-sets message", got)
			}
		})
	}
}

// TestBodyweightBoundary verifies the inclusive 12-rep boundary on an
// unweighted bodyweight movement: 12 reps lands in the harder-variation
// branch, 11 in the add-reps branch.
func TestBodyweightBoundary(t *testing.T) {
	ex := strength(models.EquipmentBodyweight, models.MuscleBack)

	got := Suggest(ex, []models.WorkoutSet{set(false, 0, 12)})
	if !strings.Contains(got, "harder variation") {
		t.Errorf("12 reps = %q, want harder-variation message", got)
	}

	got = Suggest(ex, []models.WorkoutSet{set(false, 0, 11)})
	if !strings.Contains(got, "1-2 reps") {
		t.Errorf("11 reps = %q, want add 1-2 reps message", got)
	}
}

// TestBodyweightBranches covers the three load-sign sub-cases and their
// rep thresholds.
func TestBodyweightBranches(t *testing.T) {
	ex := strength(models.EquipmentBodyweight, models.MuscleBack)

	tests := []struct {
		name   string
		weight float64
		reps   int
		want   string
	}{
		{"added weight sweet spot", 10, 8, "2.5-5 lbs"},
		{"added weight sweet spot upper", 10, 12, "2.5-5 lbs"},
		{"added weight high reps", 25, 13, "ready to add more weight"},
		{"added weight low reps", 25, 6, "build up your reps"},
		{"added weight very low reps", 45, 3, "tighten up your form"},
		{"assisted sweet spot", -20, 9, "reduce assistance by 5-10 lbs"},
		{"assisted high reps", -40, 14, "Reduce the assistance"},
		{"assisted low reps", -40, 5, "add reps before reducing"},
		{"assisted very low reps", -60, 2, "clean reps"},
		{"unweighted mid reps", 0, 8, "1-2 reps"},
		{"unweighted low reps", 0, 6, "cleaner"},
		{"unweighted very low reps", 0, 4, "focus on form"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(ex, []models.WorkoutSet{set(false, tt.weight, tt.reps)})
			if !strings.Contains(got, tt.want) {
				t.Errorf("Suggest = %q, want substring %q", got, tt.want)
			}
		})
	}
}

// TestLoadedBranch covers the increment basis and rep thresholds for
// non-bodyweight strength work.
func TestLoadedBranch(t *testing.T) {
	tests := []struct {
		name      string
		equipment string
		muscle    string
		weight    float64
		reps      int
		want      string
	}{
		// Upper-body barbell at 8-12 reps gets the explicit +5 message.
		{"barbell chest sweet spot", models.EquipmentBarbell, models.MuscleChest, 135, 10, "Add 5 lbs"},
		{"barbell shoulders boundary low", models.EquipmentBarbell, models.MuscleShoulders, 95, 8, "Add 5 lbs"},
		{"barbell arms boundary high", models.EquipmentBarbell, models.MuscleArms, 65, 12, "Add 5 lbs"},
		// Dumbbell increment is 2.5, so 8-12 reps gets the generic message.
		{"dumbbell sweet spot", models.EquipmentDumbbell, models.MuscleArms, 25, 10, "about 2.5 lbs"},
		// Lower-body increment is 10.
		{"barbell legs sweet spot", models.EquipmentBarbell, models.MuscleLegs, 225, 9, "about 10 lbs"},
		// Above 12 reps the increment doesn't matter.
		{"dumbbell high reps", models.EquipmentDumbbell, models.MuscleArms, 25, 15, "ready for a small weight increase"},
		{"barbell high reps", models.EquipmentBarbell, models.MuscleChest, 135, 13, "ready for a small weight increase"},
		{"machine low reps", models.EquipmentMachine, models.MuscleLegs, 180, 6, "add 1 rep per set"},
		{"barbell very low reps", models.EquipmentBarbell, models.MuscleBack, 315, 3, "tighten up your technique"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := strength(tt.equipment, tt.muscle)
			got := Suggest(ex, []models.WorkoutSet{set(false, tt.weight, tt.reps)})
			if !strings.Contains(got, tt.want) {
				t.Errorf("Suggest = %q, want substring %q", got, tt.want)
			}
		})
	}
}

// TestIncrement verifies the equipment/muscle-derived weight step.
func TestIncrement(t *testing.T) {
	tests := []struct {
		equipment string
		muscle    string
		want      float64
	}{
		{models.EquipmentDumbbell, models.MuscleLegs, 2.5},
		{models.EquipmentDumbbell, models.MuscleChest, 2.5},
		{models.EquipmentBarbell, models.MuscleChest, 5},
		{models.EquipmentMachine, models.MuscleShoulders, 5},
		{models.EquipmentCable, models.MuscleArms, 5},
		{models.EquipmentBarbell, models.MuscleLegs, 10},
		{models.EquipmentBarbell, models.MuscleBack, 10},
	}
	for _, tt := range tests {
		if got := Increment(strength(tt.equipment, tt.muscle)); got != tt.want {
			t.Errorf("Increment(%s/%s) = %g, want %g", tt.equipment, tt.muscle, got, tt.want)
		}
	}
}

// TestMostRecentWorkingSet verifies that the recommendation follows the
// newest qualifying set, skipping trailing warm-ups and junk entries.
func TestMostRecentWorkingSet(t *testing.T) {
	ex := strength(models.EquipmentBarbell, models.MuscleChest)
	history := []models.WorkoutSet{
		set(false, 115, 15), // older working set, would give a different message
		set(false, 135, 10), // most recent working set
		set(true, 95, 20),   // trailing warm-up, ignored
		set(false, 135, 0),  // zero reps, ignored
	}
	got := Suggest(ex, history)
	if !strings.Contains(got, "Add 5 lbs") {
		t.Errorf("Suggest = %q, want the +5 lbs message from the 135x10 set", got)
	}
}

// TestDeterminismAndNoMutation verifies that repeated calls agree and
// the input slice is left untouched.
func TestDeterminismAndNoMutation(t *testing.T) {
	ex := strength(models.EquipmentBodyweight, models.MuscleBack)
	history := []models.WorkoutSet{
		set(true, 0, 10),
		set(false, -20, 9),
	}
	before := make([]models.WorkoutSet, len(history))
	copy(before, history)

	first := Suggest(ex, history)
	second := Suggest(ex, history)
	if first != second {
		t.Errorf("Suggest not deterministic: %q vs %q", first, second)
	}
	if first == "" {
		t.Error("Suggest returned an empty string")
	}
	for i := range history {
		if history[i] != before[i] {
			t.Errorf("history[%d] mutated: %+v -> %+v", i, before[i], history[i])
		}
	}
}

// TestAssistedScenario pins the spec'd assisted pull-up case: last
// working set at -20 lbs x 9 reps suggests reducing assistance.
func TestAssistedScenario(t *testing.T) {
	ex := strength(models.EquipmentBodyweight, models.MuscleBack)
	got := Suggest(ex, []models.WorkoutSet{set(false, -20, 9)})
	if !strings.Contains(got, "reduce assistance by 5-10 lbs") {
		t.Errorf("Suggest = %q, want reduce-assistance message", got)
	}
}
