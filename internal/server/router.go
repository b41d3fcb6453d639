// Package server assembles repositories, services and handlers into the
// gin engine served by cmd/server.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/handler"
	"github.com/noah-isme/school-records/internal/middleware"
	"github.com/noah-isme/school-records/internal/repository"
	"github.com/noah-isme/school-records/internal/service"
	"github.com/noah-isme/school-records/internal/view"
	"github.com/noah-isme/school-records/pkg/logger"
	reqidmiddleware "github.com/noah-isme/school-records/pkg/middleware/requestid"
)

// Options configures NewRouter.
type Options struct {
	DB      *sqlx.DB
	Logger  *zap.Logger
	Metrics *service.MetricsService
	Docs    bool
}

// NewRouter builds the engine with every route mounted.
func NewRouter(opts Options) (*gin.Engine, error) {
	logr := opts.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	facultyRepo := repository.NewFacultyRepository(opts.DB)
	studentRepo := repository.NewStudentRepository(opts.DB)
	instructorRepo := repository.NewInstructorRepository(opts.DB)
	courseRepo := repository.NewCourseRepository(opts.DB)
	overviewRepo := repository.NewOverviewRepository(opts.DB)

	validate := form.NewValidator()

	facultySvc := service.NewFacultyService(facultyRepo, validate, opts.Metrics, logr)
	studentSvc := service.NewStudentService(studentRepo, facultyRepo, validate, opts.Metrics, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, facultyRepo, validate, opts.Metrics, logr)
	courseSvc := service.NewCourseService(service.CourseServiceParams{
		Repo:        courseRepo,
		Faculties:   facultyRepo,
		Instructors: instructorRepo,
		Validator:   validate,
		Metrics:     opts.Metrics,
		Logger:      logr,
	})
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Faculties:   facultyRepo,
		Students:    studentRepo,
		Instructors: instructorRepo,
		Courses:     courseRepo,
		Store:       overviewRepo,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(opts.Metrics))
	if err := view.Install(r); err != nil {
		return nil, err
	}

	handler.Register(r, handler.Handlers{
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Metrics:     handler.NewMetricsHandler(opts.Metrics),
		Faculties:   handler.NewFacultyHandler(facultySvc),
		Students:    handler.NewStudentHandler(studentSvc),
		Instructors: handler.NewInstructorHandler(instructorSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
	})

	if opts.Docs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}

// NewSeeder wires the seed service to the store.
func NewSeeder(db *sqlx.DB, logr *zap.Logger) *service.SeedService {
	return service.NewSeedService(service.SeedServiceParams{
		Counter:     repository.NewOverviewRepository(db),
		Faculties:   repository.NewFacultyRepository(db),
		Students:    repository.NewStudentRepository(db),
		Instructors: repository.NewInstructorRepository(db),
		Logger:      logr,
	})
}
