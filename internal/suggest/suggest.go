// Package suggest produces progressive-overload recommendations from an
// exercise's set history. The engine is a pure function over the history
// the caller supplies: it never touches storage and never mutates its
// inputs, so it can be called from HTTP handlers and MCP tools alike.
package suggest

import (
	"fmt"

	"github.com/F3lipe9/campuslog/internal/models"
)

// Fixed messages for the branches that don't depend on the last set.
const (
	msgCardioNoHistory = "No cardio history for this exercise yet. Start with a comfortable duration and easy effort."
	msgCardioProgress  = "Build gradually: add 2-5 minutes, or nudge the pace or incline slightly."
	msgNoWorkingSets   = "No working sets logged yet. Start with a comfortable weight and focus on form."
)

// repRule maps an inclusive rep range to a recommendation. max < 0
// means unbounded. Rules are evaluated in order; the first match wins.
type repRule struct {
	min, max int
	msg      string
}

// Bodyweight movement with added weight (positive load).
var addedWeightRules = []repRule{
	{8, 12, "Strong set with added weight. Add 2.5-5 lbs next session."},
	{13, -1, "Over 12 reps with added weight. You're ready to add more weight."},
	{5, 7, "Keep the added weight the same and build up your reps first."},
	{0, 4, "Hold this load and tighten up your form before adding more."},
}

// Assisted bodyweight movement (negative load).
var assistedRules = []repRule{
	{8, 12, "Good rep range. Try to reduce assistance by 5-10 lbs next session."},
	{13, -1, "Over 12 assisted reps. Reduce the assistance noticeably next session."},
	{5, 7, "Keep the same assistance and add reps before reducing it."},
	{0, 4, "Stay at this assistance level and focus on clean reps."},
}

// Pure bodyweight movement (zero load). The 12-rep boundary is
// inclusive on the "harder variation" side.
var bodyweightRules = []repRule{
	{12, -1, "12+ clean reps. Move to a harder variation or add light weight."},
	{8, 11, "Nice work. Aim to add 1-2 reps next session."},
	{5, 7, "Stay here and make every rep cleaner before adding more."},
	{0, 4, "Repeat this exercise and focus on form."},
}

// Suggest returns a human-readable recommendation for the next session
// of ex, given its logged sets ordered oldest to newest. It is total:
// every input yields a non-empty advisory string.
func Suggest(ex models.Exercise, history []models.WorkoutSet) string {
	if ex.Category == models.CategoryCardio {
		if len(history) == 0 {
			return msgCardioNoHistory
		}
		return msgCardioProgress
	}

	last, ok := lastWorkingSet(ex, history)
	if !ok {
		return msgNoWorkingSets
	}

	if ex.IsBodyweight() {
		switch {
		case last.Weight > 0:
			return applyRules(addedWeightRules, last.Reps)
		case last.Weight < 0:
			return applyRules(assistedRules, last.Reps)
		default:
			return applyRules(bodyweightRules, last.Reps)
		}
	}

	return loadedSuggestion(ex, last.Reps)
}

// lastWorkingSet returns the most recent set that counts as a working
// set: not a warm-up, positive reps, and for loaded movements positive
// weight. A history of only warm-ups behaves like an empty history.
func lastWorkingSet(ex models.Exercise, history []models.WorkoutSet) (models.WorkoutSet, bool) {
	bodyweight := ex.IsBodyweight()
	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]
		if s.IsWarmup || s.Reps <= 0 {
			continue
		}
		if !bodyweight && s.Weight <= 0 {
			continue
		}
		return s, true
	}
	return models.WorkoutSet{}, false
}

func applyRules(rules []repRule, reps int) string {
	for _, r := range rules {
		if reps >= r.min && (r.max < 0 || reps <= r.max) {
			return r.msg
		}
	}
	// Unreachable for non-negative reps; the filter guarantees reps > 0.
	return msgNoWorkingSets
}

// Increment returns the suggested weight step in lbs for a loaded
// strength exercise: dumbbells move in 2.5 lb steps, upper-body
// barbell/machine work in 5, everything else in 10.
func Increment(ex models.Exercise) float64 {
	if ex.Equipment == models.EquipmentDumbbell {
		return 2.5
	}
	switch ex.Muscle {
	case models.MuscleChest, models.MuscleShoulders, models.MuscleArms:
		return 5
	}
	return 10
}

func loadedSuggestion(ex models.Exercise, reps int) string {
	inc := Increment(ex)
	switch {
	case inc == 5 && reps >= 8 && reps <= 12:
		return "Right in the sweet spot. Add 5 lbs next session."
	case reps >= 8 && reps <= 12:
		return fmt.Sprintf("Right in the sweet spot. Try a small increase of about %g lbs next session.", inc)
	case reps > 12:
		return "More than 12 reps. You're likely ready for a small weight increase."
	case reps >= 5:
		return "Stay at this weight and add 1 rep per set before increasing the load."
	default:
		return "Repeat this weight and tighten up your technique."
	}
}
