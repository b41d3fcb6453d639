package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/noah-isme/school-records/internal/models"
	"github.com/noah-isme/school-records/internal/repository"
)

type mockFacultyRepo struct {
	faculties map[int64]models.Faculty
	nextID    int64
	created   int
	updated   int
	err       error
	deleteErr error
}

func newMockFacultyRepo(faculties ...models.Faculty) *mockFacultyRepo {
	m := &mockFacultyRepo{faculties: make(map[int64]models.Faculty)}
	for _, f := range faculties {
		m.faculties[f.ID] = f
		if f.ID > m.nextID {
			m.nextID = f.ID
		}
	}
	return m
}

func (m *mockFacultyRepo) List(ctx context.Context) ([]models.Faculty, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Faculty, 0, len(m.faculties))
	for _, f := range m.faculties {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockFacultyRepo) FindByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if f, ok := m.faculties[id]; ok {
		return &f, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockFacultyRepo) Create(ctx context.Context, faculty *models.Faculty) error {
	for _, f := range m.faculties {
		if f.Name == faculty.Name {
			return repository.ErrUniqueViolation
		}
	}
	m.nextID++
	faculty.ID = m.nextID
	m.faculties[faculty.ID] = *faculty
	m.created++
	return nil
}

func (m *mockFacultyRepo) CreateMany(ctx context.Context, faculties []*models.Faculty) error {
	for _, f := range faculties {
		if err := m.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFacultyRepo) Update(ctx context.Context, faculty *models.Faculty) error {
	m.faculties[faculty.ID] = *faculty
	m.updated++
	return nil
}

func (m *mockFacultyRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.faculties[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.faculties, id)
	return nil
}

type mockStudentRepo struct {
	students map[int64]models.Student
	nextID   int64
	created  int
	updated  int
	deleted  []int64
}

func newMockStudentRepo(students ...models.Student) *mockStudentRepo {
	m := &mockStudentRepo{students: make(map[int64]models.Student)}
	for _, s := range students {
		m.students[s.ID] = s
		if s.ID > m.nextID {
			m.nextID = s.ID
		}
	}
	return m
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.StudentDetail, error) {
	out := make([]models.StudentDetail, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, models.StudentDetail{Student: s})
	}
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = *student
	m.created++
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	m.students[student.ID] = *student
	m.updated++
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.students, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockInstructorRepo struct {
	instructors map[int64]models.Instructor
	nextID      int64
	created     int
}

func newMockInstructorRepo(instructors ...models.Instructor) *mockInstructorRepo {
	m := &mockInstructorRepo{instructors: make(map[int64]models.Instructor)}
	for _, i := range instructors {
		m.instructors[i.ID] = i
		if i.ID > m.nextID {
			m.nextID = i.ID
		}
	}
	return m
}

func (m *mockInstructorRepo) List(ctx context.Context) ([]models.InstructorDetail, error) {
	out := make([]models.InstructorDetail, 0, len(m.instructors))
	for _, i := range m.instructors {
		out = append(out, models.InstructorDetail{Instructor: i})
	}
	return out, nil
}

func (m *mockInstructorRepo) FindByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if i, ok := m.instructors[id]; ok {
		return &i, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockInstructorRepo) Create(ctx context.Context, instructor *models.Instructor) error {
	m.nextID++
	instructor.ID = m.nextID
	m.instructors[instructor.ID] = *instructor
	m.created++
	return nil
}

func (m *mockInstructorRepo) Update(ctx context.Context, instructor *models.Instructor) error {
	m.instructors[instructor.ID] = *instructor
	return nil
}

func (m *mockInstructorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.instructors[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.instructors, id)
	return nil
}

type mockCourseRepo struct {
	courses map[int64]models.Course
	nextID  int64
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]models.Course)}
}

func (m *mockCourseRepo) List(ctx context.Context) ([]models.CourseDetail, error) {
	out := make([]models.CourseDetail, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, models.CourseDetail{Course: c})
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if c, ok := m.courses[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	m.nextID++
	course.ID = m.nextID
	m.courses[course.ID] = *course
	return nil
}

func (m *mockCourseRepo) Update(ctx context.Context, course *models.Course) error {
	m.courses[course.ID] = *course
	return nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.courses, id)
	return nil
}
