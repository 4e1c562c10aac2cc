package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"jobtrack/internal/model"
)

// NewApplication is the user-supplied part of a new record.
type NewApplication struct {
	Company         string `validate:"required"`
	JobTitle        string `validate:"required"`
	ApplicationDate string `validate:"required,datetime=2006-01-02"`
	Status          string `validate:"omitempty,status"`
	ContactPerson   string
	ContactEmail    string `validate:"omitempty,email"`
	SalaryRange     string
	JobURL          string `validate:"omitempty,url"`
	InterviewDate   string `validate:"omitempty,interviewtime"`
	FollowupDate    string `validate:"omitempty,datetime=2006-01-02"`
	Notes           string
}

// Validation tags applied to individual column updates.
var columnRules = map[string]string{
	model.ColCompany:         "required",
	model.ColJobTitle:        "required",
	model.ColApplicationDate: "required,datetime=2006-01-02",
	model.ColStatus:          "required,status",
	model.ColContactEmail:    "omitempty,email",
	model.ColJobURL:          "omitempty,url",
	model.ColInterviewDate:   "omitempty,interviewtime",
	model.ColFollowupDate:    "omitempty,datetime=2006-01-02",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		_, err := model.ParseStatus(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("interviewtime", func(fl validator.FieldLevel) bool {
		_, err := model.ParseInterviewTime(fl.Field().String(), time.UTC)
		return err == nil
	})

	return v
}

// Validate checks required fields and the format of dates, email, URL and status.
func (n *NewApplication) Validate() error {
	return toValidationError(validate.Struct(n))
}

// validateColumn checks a single column value from an update.
func validateColumn(column, value string) error {
	rule, ok := columnRules[column]
	if !ok {
		return nil
	}
	if err := validate.Var(value, rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Problems: []string{describe(column, verrs[0])}}
		}
		return err
	}
	return nil
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Problems = append(ve.Problems, describe(fe.Field(), fe))
	}
	return ve
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		return fmt.Sprintf("%s %q is not a date (want YYYY-MM-DD)", field, fe.Value())
	case "interviewtime":
		return fmt.Sprintf("%s %q is not a date-time (want YYYY-MM-DD HH:MM:SS)", field, fe.Value())
	case "status":
		return fmt.Sprintf("%s %q is not a known status", field, fe.Value())
	case "email":
		return fmt.Sprintf("%s %q is not an email address", field, fe.Value())
	case "url":
		return fmt.Sprintf("%s %q is not a URL", field, fe.Value())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
