package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hireorbit/backend/internal/apperror"
)

// validate is the shared validator instance; tag parsing is cached per type,
// so one instance serves all handlers.
var validate = validator.New(validator.WithRequiredStructEnabled())

// registerRequest is the POST /register payload. Email well-formedness and
// field bounds are checked here, before the handler body runs.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// loginRequest is the POST /login payload.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// createJobRequest is the POST /jobs payload. The field set matches the
// persisted Job entity — title, optional description, free-form deadline.
type createJobRequest struct {
	Title       string `json:"title"       validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Deadline    string `json:"deadline"    validate:"omitempty,max=50"`
}

// decodeAndValidate decodes the request body into dst and runs its
// validation tags. Returns an apperror.ErrValidation on any failure so the
// caller can hand it straight to writeError.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.ValidationFailed("", "invalid JSON body")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperror.ValidationFailed(fe.Field(), validationMessage(fe))
		}
		return apperror.ValidationFailed("", "invalid request payload")
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
