package service

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/noah-isme/school-records/internal/form"
	"github.com/noah-isme/school-records/internal/models"
	"github.com/noah-isme/school-records/internal/repository"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

// Submission is the outcome of a create or update form post. On success
// Entity holds the stored record; otherwise Errors lists the rejected
// fields and Input carries the submitted values back to the view.
type Submission[F any, E any] struct {
	Input  F
	Entity *E
	Errors form.Errors
}

// OK reports whether the submission was stored.
func (s Submission[F, E]) OK() bool {
	return s.Entity != nil && s.Errors.Valid()
}

func rejected[F any, E any](input F, errs form.Errors) Submission[F, E] {
	return Submission[F, E]{Input: input, Errors: errs}
}

func accepted[F any, E any](input F, entity *E) Submission[F, E] {
	return Submission[F, E]{Input: input, Entity: entity, Errors: form.Errors{}}
}

func lookupError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+entity)
}

// writeError maps store failures of a create/update/delete onto typed
// errors. Integrity violations are conflicts, not recoverable form errors.
func writeError(err error, entity, action string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	case errors.Is(err, repository.ErrUniqueViolation):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, entity+" already exists")
	case errors.Is(err, repository.ErrForeignKeyViolation) && action == "delete":
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, entity+" is still referenced by other records")
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, entity+" references a missing record")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to "+action+" "+entity)
}

func facultyChoices(faculties []models.Faculty) []models.Choice {
	choices := make([]models.Choice, 0, len(faculties))
	for _, f := range faculties {
		choices = append(choices, models.Choice{Value: strconv.FormatInt(f.ID, 10), Label: f.Name})
	}
	return choices
}

func instructorChoices(instructors []models.InstructorDetail) []models.Choice {
	choices := make([]models.Choice, 0, len(instructors))
	for _, i := range instructors {
		choices = append(choices, models.Choice{Value: strconv.FormatInt(i.ID, 10), Label: i.Name})
	}
	return choices
}
