package form

import (
	"strconv"

	"github.com/noah-isme/school-records/internal/models"
)

// InstructorForm is the add/edit form for an instructor.
type InstructorForm struct {
	PersonForm
	Salary    string `form:"salary" validate:"required,numeric"`
	StartDate string `form:"start_date" validate:"required,max=100"`
}

// NewInstructorForm pre-populates the form from an existing instructor;
// nil yields the blank add form.
func NewInstructorForm(i *models.Instructor) InstructorForm {
	if i == nil {
		return InstructorForm{}
	}
	return InstructorForm{
		PersonForm: newPersonForm(i.Person),
		Salary:     formatFloat(i.Salary),
		StartDate:  i.StartDate,
	}
}

// Apply copies the validated fields onto target. The ID is left alone.
func (f InstructorForm) Apply(target *models.Instructor) error {
	salary, err := strconv.ParseFloat(f.Salary, 64)
	if err != nil {
		return err
	}
	if err := f.PersonForm.apply(&target.Person); err != nil {
		return err
	}
	target.Salary = salary
	target.StartDate = f.StartDate
	return nil
}
