package snapshot

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	skinerrors "github.com/alexisbeaulieu97/skinkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex   = regexp.MustCompile(`line (\d+)`)
	timecodePattern = regexp.MustCompile(`^\d{1,3}:\d{2}(?::\d{2})?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("timecode", func(fl validator.FieldLevel) bool {
			return timecodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// Load reads a YAML or JSON snapshot fixture. Fields absent from the file keep
// the values from Default.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, skinerrors.NewParseError(path, 0, err)
	}
	snap, err := Decode(data)
	if err != nil {
		var pe *skinerrors.ParseError
		if errors.As(err, &pe) {
			pe.Source = path
		}
		return Snapshot{}, err
	}
	return snap, nil
}

// Decode parses and validates snapshot fixture bytes.
func Decode(data []byte) (Snapshot, error) {
	snap := Default()
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, skinerrors.NewParseError("snapshot", extractLine(err), err)
	}
	if err := Validate(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Validate checks field constraints such as timecode formats.
func Validate(snap Snapshot) error {
	if err := validatorInstance().Struct(snap); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.ToLower(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return skinerrors.NewValidationError(field, msg, err)
	}
	return skinerrors.NewValidationError("snapshot", err.Error(), err)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
