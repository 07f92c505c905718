package service

import (
	"errors"
	"fmt"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator creates a validator with the factory enum tags registered:
// aircraft_type, part_category, team_type and aircraft_status.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidators adds the factory enum tags to an existing validator
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"aircraft_type": func(fl validator.FieldLevel) bool {
			return catalog.AircraftType(fl.Field().String()).IsValid()
		},
		"part_category": func(fl validator.FieldLevel) bool {
			return catalog.TeamType(fl.Field().String()).IsPartCategory()
		},
		"team_type": func(fl validator.FieldLevel) bool {
			return catalog.TeamType(fl.Field().String()).IsValid()
		},
		"aircraft_status": func(fl validator.FieldLevel) bool {
			return models.AircraftStatus(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// validateRequest runs struct validation and reports the first failing field as a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// paginate normalizes page parameters and returns the matching limit and offset
func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// notFound maps gorm.ErrRecordNotFound to the entity's sentinel and wraps anything else
func notFound(err error, sentinel error, action string) error {
	if isRecordNotFound(err) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
