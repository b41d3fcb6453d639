package models

// Instructor represents a teaching staff member.
type Instructor struct {
	Person
	Salary    float64 `db:"salary" json:"salary"`
	StartDate string  `db:"start_date" json:"start_date"`
}

// InstructorDetail adds the owning faculty name for listings.
type InstructorDetail struct {
	Instructor
	FacultyName *string `db:"faculty_name" json:"faculty_name,omitempty"`
}
