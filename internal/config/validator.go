package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/segmented/internal/model"
	segmentederrors "github.com/alexisbeaulieu97/segmented/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("size_category", func(fl validator.FieldLevel) bool {
			return model.Size(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("group_role", func(fl validator.FieldLevel) bool {
			return model.Role(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("width_policy", func(fl validator.FieldLevel) bool {
			return model.WidthPolicy(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// ValidateScene performs schema validation on a parsed scene. Soft
// contracts (an icon-only segment without a name, unknown child types)
// are deliberately not rejected here; the rendering engine reports those
// as diagnostics while still rendering.
func ValidateScene(scene *Scene) error {
	if scene == nil {
		return segmentederrors.NewValidationError("scene", "scene is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(scene); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(scene.Groups))
	for i, gs := range scene.Groups {
		if first, exists := seen[gs.Label]; exists {
			return segmentederrors.NewValidationError(
				fmt.Sprintf("groups[%d].label", i),
				fmt.Sprintf("duplicate group label %q (first used by groups[%d])", gs.Label, first),
				nil,
			)
		}
		seen[gs.Label] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into the package's
// typed validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return segmentederrors.NewValidationError(field, msg, err)
	}

	return segmentederrors.NewValidationError("scene", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
