package config

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
	apperrors "github.com/alexisbeaulieu97/splitpane/pkg/errors"
)

// MaxDepth bounds how deeply splits may nest.
const MaxDepth = 4

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	paneIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Sizes reach validators as their numeric value; unset and "*" read as 0.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if sv, ok := field.Interface().(SizeValue); ok && sv.Set && !sv.Wildcard {
				return sv.Value
			}
			return 0.0
		}, SizeValue{})

		_ = v.RegisterValidation("pane_id", func(fl validator.FieldLevel) bool {
			return paneIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pane_size", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			if f.Kind() != reflect.Float64 {
				return false
			}
			val := f.Float()
			return !math.IsNaN(val) && !math.IsInf(val, 0) && val >= 0
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateLayout runs tag validation followed by the rules that span fields.
func ValidateLayout(l *Layout) error {
	if l == nil {
		return apperrors.NewValidationError("layout", "layout is nil", nil)
	}

	if err := validatorInstance().Struct(l); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string)
	return validateSplit(&l.Split, "split", 1, seen)
}

func validateSplit(s *SplitSpec, path string, depth int, seen map[string]string) error {
	if depth > MaxDepth {
		return apperrors.NewValidationError(path, fmt.Sprintf("splits nest deeper than %d levels", MaxDepth), nil)
	}

	unit := s.UnitValue()
	wildcards := 0
	visibleTotal := 0.0
	allVisibleSized := true
	visible := 0

	for i := range s.Panes {
		p := &s.Panes[i]
		field := panePath(path, i)

		if prev, dup := seen[p.ID]; dup {
			return apperrors.NewValidationError(field+".id", fmt.Sprintf("duplicate pane id %q (first used at %s)", p.ID, prev), nil)
		}
		seen[p.ID] = field

		if err := validatePaneBounds(p, field); err != nil {
			return err
		}

		if p.Split != nil && p.Content != "" {
			return apperrors.NewValidationError(field, "pane cannot set both content and split", nil)
		}
		if p.Split != nil && p.Text != "" {
			return apperrors.NewValidationError(field, "pane cannot set both text and split", nil)
		}

		if p.Size.Wildcard {
			if unit == split.UnitPercent {
				return apperrors.NewValidationError(field+".size", `"*" is only allowed in pixel splits`, nil)
			}
			wildcards++
		}

		if p.IsVisible() {
			visible++
			if p.Size.Set && !p.Size.Wildcard {
				visibleTotal += p.Size.Value
			} else {
				allVisibleSized = false
			}
		}

		if p.Split != nil {
			if err := validateSplit(p.Split, field+".split", depth+1, seen); err != nil {
				return err
			}
		}
	}

	if unit == split.UnitPixel && wildcards > 1 {
		return apperrors.NewValidationError(path+".panes", fmt.Sprintf("pixel split has %d wildcard panes, at most one is allowed", wildcards), nil)
	}

	if unit == split.UnitPercent && visible > 0 && allVisibleSized && math.Abs(visibleTotal-100) > 0.1 {
		return apperrors.NewValidationError(path+".panes", fmt.Sprintf("visible pane sizes add up to %s, want 100", split.FormatSize(&visibleTotal)), nil)
	}

	return nil
}

func validatePaneBounds(p *PaneSpec, field string) error {
	if p.MinSize != nil && p.MaxSize != nil && *p.MinSize > *p.MaxSize {
		return apperrors.NewValidationError(field+".min_size", "min_size is greater than max_size", nil)
	}
	if p.MinPixels != nil && p.MaxPixels != nil && *p.MinPixels > *p.MaxPixels {
		return apperrors.NewValidationError(field+".min_pixels", "min_pixels is greater than max_pixels", nil)
	}
	return nil
}

// convertValidationError normalizes validator errors into layout validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("layout", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, which already
// carries the yaml names.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func panePath(path string, index int) string {
	return fmt.Sprintf("%s.panes[%d]", path, index)
}
