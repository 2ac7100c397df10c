package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise categories.
const (
	CategoryStrength = "Strength"
	CategoryCardio   = "Cardio"
)

// Equipment tags. The web app offers these in a fixed dropdown.
const (
	EquipmentBarbell    = "Barbell"
	EquipmentDumbbell   = "Dumbbell"
	EquipmentMachine    = "Machine"
	EquipmentCable      = "Cable"
	EquipmentBodyweight = "Bodyweight"
	EquipmentKettlebell = "Kettlebell"
	EquipmentBand       = "Band"
	EquipmentNone       = "None"
)

// Muscle group tags.
const (
	MuscleChest     = "Chest"
	MuscleBack      = "Back"
	MuscleShoulders = "Shoulders"
	MuscleArms      = "Arms"
	MuscleLegs      = "Legs"
	MuscleCore      = "Core"
	MuscleFullBody  = "Full Body"
)

// User is an account row. PasswordHash is never serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Exercise is a library entry the user logs sets against. Identity is
// immutable; the descriptive fields are editable.
type Exercise struct {
	ID         uuid.UUID `json:"id"`
	UserID     int       `json:"user_id"`
	Name       string    `json:"name"`
	Muscle     string    `json:"muscle"`
	Equipment  string    `json:"equipment"`
	Category   string    `json:"category"`
	IsCompound bool      `json:"is_compound"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsBodyweight reports whether the exercise is a bodyweight strength
// movement, i.e. its set weights represent added load (positive) or
// assistance (negative).
func (e Exercise) IsBodyweight() bool {
	return e.Category == CategoryStrength && e.Equipment == EquipmentBodyweight
}

// WorkoutSession groups the sets logged in one sitting.
type WorkoutSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// WorkoutSet is one logged set. Only the fields matching the owning
// exercise's category are meaningful: Weight/Reps for Strength,
// DurationMin/DistanceMi/Calories/Effort for Cardio. Weight is in lbs
// and signed — negative values express assistance on bodyweight
// movements (e.g. band-assisted pull-ups).
type WorkoutSet struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	ExerciseID  uuid.UUID `json:"exercise_id"`
	SetNumber   int       `json:"set_number"`
	IsWarmup    bool      `json:"is_warmup"`
	Weight      float64   `json:"weight,omitempty"`
	Reps        int       `json:"reps,omitempty"`
	DurationMin float64   `json:"duration_min,omitempty"`
	DistanceMi  float64   `json:"distance_mi,omitempty"`
	Calories    float64   `json:"calories,omitempty"`
	Effort      int       `json:"effort,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WaterEntry is one logged drink.
type WaterEntry struct {
	ID       uuid.UUID `json:"id"`
	UserID   int       `json:"user_id"`
	AmountOz float64   `json:"amount_oz"`
	LoggedAt time.Time `json:"logged_at"`
}

// DailyWaterTotal is one day's aggregated intake.
type DailyWaterTotal struct {
	Date    time.Time `json:"date"`
	TotalOz float64   `json:"total_oz"`
	Entries int       `json:"entries"`
}

// Assignment is a tracked piece of coursework.
type Assignment struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Course    string    `json:"course"`
	DueDate   time.Time `json:"due_date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Exam is a scheduled exam.
type Exam struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Course    string    `json:"course"`
	StartsAt  time.Time `json:"starts_at"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Habit is a simple recurring-intention entry.
type Habit struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Deadline is a merged planner item (assignment or exam) for the
// upcoming view.
type Deadline struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"` // "assignment" or "exam"
	Title  string    `json:"title"`
	Course string    `json:"course"`
	Due    time.Time `json:"due"`
}
