package serverutils

import (
	"fmt"
	"strings"

	"educonnect-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct validate tags and folds violations into a
// single InvalidInput error the boundary can surface as 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.InvalidInput("Invalid request")
		}
		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return apperror.InvalidInput("Validation failed: " + strings.Join(fields, ", "))
	}
	return nil
}
