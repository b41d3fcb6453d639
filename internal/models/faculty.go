package models

// Faculty groups students, instructors and courses.
type Faculty struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
