package form

import "github.com/noah-isme/school-records/internal/models"

// PersonForm carries the fields shared by student and instructor forms.
type PersonForm struct {
	Name        string `form:"name" validate:"required,max=250"`
	Email       string `form:"email" validate:"required,max=250"`
	DateOfBirth string `form:"date_of_birth" validate:"required,max=100"`
	Gender      string `form:"gender" validate:"required,oneof=F M"`
	FacultyID   string `form:"faculty_id"`
}

func newPersonForm(p models.Person) PersonForm {
	return PersonForm{
		Name:        p.Name,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		FacultyID:   formatID(p.FacultyID),
	}
}

// ChoiceValues implements Form.
func (f PersonForm) ChoiceValues() map[string]string {
	return map[string]string{"faculty_id": f.FacultyID}
}

func (f PersonForm) apply(target *models.Person) error {
	facultyID, err := parseID(f.FacultyID)
	if err != nil {
		return err
	}
	target.Name = f.Name
	target.Email = f.Email
	target.DateOfBirth = f.DateOfBirth
	target.Gender = f.Gender
	target.FacultyID = facultyID
	return nil
}
