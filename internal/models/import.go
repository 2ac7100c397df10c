package models

import "time"

// ImportPayload is the batch envelope posted by the offline sync CLI.
// Sets reference exercises by name because the exporting client may
// not know server-side IDs.
type ImportPayload struct {
	Water       []ImportWaterEntry `json:"water,omitempty"`
	Sets        []ImportSet        `json:"sets,omitempty"`
	Assignments []ImportAssignment `json:"assignments,omitempty"`
}

// ImportWaterEntry is an offline-logged drink.
type ImportWaterEntry struct {
	AmountOz float64   `json:"amount_oz"`
	LoggedAt time.Time `json:"logged_at"`
}

// ImportSet is an offline-logged set. Exercise descriptors are carried
// inline so unknown exercises can be created on the fly.
type ImportSet struct {
	SessionName string    `json:"session_name"`
	Exercise    string    `json:"exercise"`
	Muscle      string    `json:"muscle,omitempty"`
	Equipment   string    `json:"equipment,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsWarmup    bool      `json:"is_warmup"`
	Weight      float64   `json:"weight,omitempty"`
	Reps        int       `json:"reps,omitempty"`
	DurationMin float64   `json:"duration_min,omitempty"`
	DistanceMi  float64   `json:"distance_mi,omitempty"`
	Calories    float64   `json:"calories,omitempty"`
	Effort      int       `json:"effort,omitempty"`
	LoggedAt    time.Time `json:"logged_at"`
}

// ImportAssignment is an offline-created assignment.
type ImportAssignment struct {
	Title   string    `json:"title"`
	Course  string    `json:"course"`
	DueDate time.Time `json:"due_date"`
}

// ImportResult summarizes what an import batch inserted.
type ImportResult struct {
	WaterInserted       int `json:"water_inserted"`
	SetsInserted        int `json:"sets_inserted"`
	AssignmentsInserted int `json:"assignments_inserted"`
	ExercisesCreated    int `json:"exercises_created"`
	SessionsCreated     int `json:"sessions_created"`
}
