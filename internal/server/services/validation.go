package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(weightPairValidation, models.NewWorkout{}, models.Workout{})
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

// maxBytes bounds the encoded length of a string; the builtin max counts
// runes. Password hashers see bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// weightPairValidation rejects a weight without a unit and vice versa.
func weightPairValidation(sl validator.StructLevel) {
	var hasWeight, hasUnit bool
	switch w := sl.Current().Interface().(type) {
	case models.NewWorkout:
		hasWeight, hasUnit = w.Weight != nil, w.WeightUnit != nil
	case models.Workout:
		hasWeight, hasUnit = w.Weight != nil, w.WeightUnit != nil
	default:
		return
	}
	if hasWeight != hasUnit {
		sl.ReportError(nil, "weight_unit", "WeightUnit", "weightpair", "")
	}
}

type registration struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"maxbytes=128"`
}

// validationError turns validator output into a common.ErrValidation
// rejection naming each offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return field + " is not a valid email address"
	case "weightpair":
		return "weight and weight unit must be given together"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
