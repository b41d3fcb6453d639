package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every handler mounted by Register.
type Handlers struct {
	Dashboard   *DashboardHandler
	Metrics     *MetricsHandler
	Faculties   *FacultyHandler
	Students    *StudentHandler
	Instructors *InstructorHandler
	Courses     *CourseHandler
}

// Register mounts the page and probe routes. Form routes answer both GET
// (show) and POST (submit).
func Register(r gin.IRoutes, h Handlers) {
	r.GET("/", h.Dashboard.Index)
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Dashboard.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	r.GET("/faculties", h.Faculties.List)
	r.GET("/students", h.Students.List)
	r.GET("/instructors", h.Instructors.List)
	r.GET("/courses", h.Courses.List)

	forms := []struct {
		path    string
		handler gin.HandlerFunc
	}{
		{"/add-faculty", h.Faculties.Add},
		{"/edit-faculty/:id", h.Faculties.Edit},
		{"/delete-faculty", h.Faculties.Delete},
		{"/add-student", h.Students.Add},
		{"/edit-student/:id", h.Students.Edit},
		{"/delete-student", h.Students.Delete},
		{"/add-instructor", h.Instructors.Add},
		{"/edit-instructor/:id", h.Instructors.Edit},
		{"/delete-instructor", h.Instructors.Delete},
		{"/add-course", h.Courses.Add},
		{"/edit-course/:id", h.Courses.Edit},
		{"/delete-course", h.Courses.Delete},
	}
	for _, f := range forms {
		r.GET(f.path, f.handler)
		r.POST(f.path, f.handler)
	}
}
