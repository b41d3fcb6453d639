package form

import "github.com/noah-isme/school-records/internal/models"

// FacultyForm is the add/edit form for a faculty.
type FacultyForm struct {
	Name string `form:"name" validate:"required,max=250"`
}

// NewFacultyForm pre-populates the form from an existing faculty; nil
// yields the blank add form.
func NewFacultyForm(f *models.Faculty) FacultyForm {
	if f == nil {
		return FacultyForm{}
	}
	return FacultyForm{Name: f.Name}
}

// ChoiceValues implements Form.
func (f FacultyForm) ChoiceValues() map[string]string {
	return nil
}

// Apply copies the validated fields onto target.
func (f FacultyForm) Apply(target *models.Faculty) error {
	target.Name = f.Name
	return nil
}
