package models

// ScheduledPoem pairs a calendar date with the poem snapshot stored for
// it. The snapshot is a value copy taken at scheduling time; later edits
// to the live poem do not reach it.
type ScheduledPoem struct {
	Date string `json:"date"`
	Poem Poem   `json:"poem"`
}
