package models

// Student represents a learner registered in a faculty.
type Student struct {
	Person
	GPA float64 `db:"gpa" json:"gpa"`
}

// StudentDetail adds the owning faculty name for listings.
type StudentDetail struct {
	Student
	FacultyName *string `db:"faculty_name" json:"faculty_name,omitempty"`
}
