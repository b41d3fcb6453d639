package form

import (
	"strconv"

	"github.com/noah-isme/school-records/internal/models"
)

// StudentForm is the add/edit form for a student.
type StudentForm struct {
	PersonForm
	GPA string `form:"gpa" validate:"required,numeric"`
}

// NewStudentForm pre-populates the form from an existing student; nil
// yields the blank add form.
func NewStudentForm(s *models.Student) StudentForm {
	if s == nil {
		return StudentForm{}
	}
	return StudentForm{PersonForm: newPersonForm(s.Person), GPA: formatFloat(s.GPA)}
}

// Apply copies the validated fields onto target. The ID is left alone.
func (f StudentForm) Apply(target *models.Student) error {
	gpa, err := strconv.ParseFloat(f.GPA, 64)
	if err != nil {
		return err
	}
	if err := f.PersonForm.apply(&target.Person); err != nil {
		return err
	}
	target.GPA = gpa
	return nil
}
