package models

// Course is a scheduled unit of teaching owned by a faculty and taught by
// an instructor.
type Course struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	StartTime    string `db:"start_time" json:"start_time"`
	EndTime      string `db:"end_time" json:"end_time"`
	Credit       int    `db:"credit" json:"credit"`
	Duration     string `db:"duration" json:"duration"`
	Description  string `db:"description" json:"description"`
	FacultyID    *int64 `db:"faculty_id" json:"faculty_id,omitempty"`
	InstructorID *int64 `db:"instructor_id" json:"instructor_id,omitempty"`
}

// CourseDetail adds faculty and instructor names for listings.
type CourseDetail struct {
	Course
	FacultyName    *string `db:"faculty_name" json:"faculty_name,omitempty"`
	InstructorName *string `db:"instructor_name" json:"instructor_name,omitempty"`
}
