package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes a JSON body. An empty body leaves out untouched so the
// validator reports the missing fields.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

// checkStruct validates body and describes the failure with message. The
// offending fields and the rule each broke are attached as details.
func checkStruct(body any, message func(fields []string) string) error {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewInternalError(err)
	}
	fields := make([]string, 0, len(verrs))
	rules := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		rules[fe.Field()] = fe.Tag()
	}
	return apperrors.NewValidationError(message(fields), map[string]any{"fields": rules})
}

func currentPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal, nil
}

func currentUser(c *fiber.Ctx) (*domain.User, error) {
	principal, err := currentPrincipal(c)
	if err != nil {
		return nil, err
	}
	return principal.User, nil
}
