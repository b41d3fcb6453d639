package models

// EntityCounts holds row totals per table.
type EntityCounts struct {
	Faculties   int `db:"faculties" json:"faculties"`
	Students    int `db:"students" json:"students"`
	Instructors int `db:"instructors" json:"instructors"`
	Courses     int `db:"courses" json:"courses"`
}

// Overview is the aggregate landing page payload.
type Overview struct {
	Counts      EntityCounts       `json:"counts"`
	Faculties   []Faculty          `json:"faculties"`
	Students    []StudentDetail    `json:"students"`
	Instructors []InstructorDetail `json:"instructors"`
	Courses     []CourseDetail     `json:"courses"`
}

// Choice is one option of a select field.
type Choice struct {
	Value string
	Label string
}
