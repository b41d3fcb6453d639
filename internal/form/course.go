package form

import (
	"strconv"

	"github.com/noah-isme/school-records/internal/models"
)

// CourseForm is the add/edit form for a course.
type CourseForm struct {
	Name         string `form:"name" validate:"required,max=250"`
	StartTime    string `form:"start_time" validate:"required,max=100"`
	EndTime      string `form:"end_time" validate:"required,max=100"`
	Credit       string `form:"credit" validate:"required,number"`
	Duration     string `form:"duration" validate:"max=100"`
	Description  string `form:"description"`
	FacultyID    string `form:"faculty_id"`
	InstructorID string `form:"instructor_id"`
}

// NewCourseForm pre-populates the form from an existing course; nil
// yields the blank add form.
func NewCourseForm(c *models.Course) CourseForm {
	if c == nil {
		return CourseForm{}
	}
	return CourseForm{
		Name:         c.Name,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		Credit:       strconv.Itoa(c.Credit),
		Duration:     c.Duration,
		Description:  c.Description,
		FacultyID:    formatID(c.FacultyID),
		InstructorID: formatID(c.InstructorID),
	}
}

// ChoiceValues implements Form.
func (f CourseForm) ChoiceValues() map[string]string {
	return map[string]string{
		"faculty_id":    f.FacultyID,
		"instructor_id": f.InstructorID,
	}
}

// Apply copies the validated fields onto target. The ID is left alone.
func (f CourseForm) Apply(target *models.Course) error {
	credit, err := strconv.Atoi(f.Credit)
	if err != nil {
		return err
	}
	facultyID, err := parseID(f.FacultyID)
	if err != nil {
		return err
	}
	instructorID, err := parseID(f.InstructorID)
	if err != nil {
		return err
	}
	target.Name = f.Name
	target.StartTime = f.StartTime
	target.EndTime = f.EndTime
	target.Credit = credit
	target.Duration = f.Duration
	target.Description = f.Description
	target.FacultyID = facultyID
	target.InstructorID = instructorID
	return nil
}
