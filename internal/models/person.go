package models

// Gender values accepted by person forms.
const (
	GenderFemale = "F"
	GenderMale   = "M"
)

// Genders lists the allowed gender codes in display order.
var Genders = []string{GenderFemale, GenderMale}

// Person holds the fields shared by students and instructors. It is not
// stored on its own; each concrete entity keeps the columns in its own table.
type Person struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	DateOfBirth string `db:"date_of_birth" json:"date_of_birth"`
	Email       string `db:"email" json:"email"`
	Gender      string `db:"gender" json:"gender"`
	FacultyID   *int64 `db:"faculty_id" json:"faculty_id,omitempty"`
}
