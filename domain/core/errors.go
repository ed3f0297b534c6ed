package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors - centralized error definitions
var (
	// Column validation errors
	ErrNonCategoricalColumn = errors.New("column is not categorical")
	ErrOnlyOneCategory      = errors.New("column has only one category")
	ErrTooManyCategories    = errors.New("column has too many categories")
	ErrInsufficientSamples  = errors.New("insufficient samples per category")
	ErrColumnNotFound       = errors.New("column not found")

	// Power analysis errors
	ErrWrongPowerArguments = errors.New("wrong power arguments")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNoSolution          = errors.New("power equation has no solution")

	// Data errors
	ErrNoSamples        = errors.New("no samples")
	ErrInvalidData      = errors.New("invalid diversity data")
	ErrUnbalancedDesign = errors.New("unbalanced repeated-measures design")
)

// NonCategoricalColumnError reports a grouping column whose type is not categorical.
type NonCategoricalColumnError struct {
	Column string
	Type   string
}

func (e *NonCategoricalColumnError) Error() string {
	return fmt.Sprintf("Column must be categorical (dtype object). '%s' is of type %s.", e.Column, e.Type)
}

func (e *NonCategoricalColumnError) Unwrap() error { return ErrNonCategoricalColumn }

// OnlyOneCategoryError reports a grouping column with a single distinct value.
type OnlyOneCategoryError struct {
	Column string
	Value  string
}

func (e *OnlyOneCategoryError) Error() string {
	return fmt.Sprintf("Column %s has only one value: '%s'.", e.Column, e.Value)
}

func (e *OnlyOneCategoryError) Unwrap() error { return ErrOnlyOneCategory }

// TooManyCategoriesError reports a grouping column above the level cap.
type TooManyCategoriesError struct {
	Column string
	Levels int
	Max    int
}

func (e *TooManyCategoriesError) Error() string {
	return fmt.Sprintf("Column %s has %d levels, which exceeds the maximum of %d.", e.Column, e.Levels, e.Max)
}

func (e *TooManyCategoriesError) Unwrap() error { return ErrTooManyCategories }

// InsufficientSamplesError reports a level with too few members.
// Column is empty when raised outside of column validation.
type InsufficientSamplesError struct {
	Column   string
	Level    string
	Count    int
	Required int
}

func (e *InsufficientSamplesError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("Group '%s' has %d samples; at least %d are required.", e.Level, e.Count, e.Required)
	}
	return fmt.Sprintf("Column %s level '%s' has %d samples; at least %d are required.",
		e.Column, e.Level, e.Count, e.Required)
}

func (e *InsufficientSamplesError) Unwrap() error { return ErrInsufficientSamples }

// WrongPowerArgumentsError reports a request that does not leave exactly
// one of alpha, power and total_observations unset.
type WrongPowerArgumentsError struct {
	Alpha             *float64
	Power             *float64
	TotalObservations *int
}

func (e *WrongPowerArgumentsError) Error() string {
	lead := "More than 1 argument was provided."
	if e.Alpha != nil && e.Power != nil && e.TotalObservations != nil {
		lead = "All arguments were provided."
	}
	return fmt.Sprintf(
		"%s Exactly one of alpha, power, or total_observations must be None. "+
			"Arguments: alpha = %s, power = %s, total_observations = %s.",
		lead, formatFloatArg(e.Alpha), formatFloatArg(e.Power), formatIntArg(e.TotalObservations),
	)
}

func (e *WrongPowerArgumentsError) Unwrap() error { return ErrWrongPowerArguments }

// NoSamplesError reports an empty sample set.
type NoSamplesError struct {
	Reason string
}

func (e *NoSamplesError) Error() string {
	if e.Reason == "" {
		return "No samples remain after subsetting."
	}
	return e.Reason
}

func (e *NoSamplesError) Unwrap() error { return ErrNoSamples }

// NewNoCommonSamplesError is raised when data and metadata share no sample IDs.
func NewNoCommonSamplesError() error {
	return &NoSamplesError{Reason: "No samples in common between data and metadata."}
}

// NewColumnNotFoundError reports a column missing from the metadata table
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
}

// NewInvalidArgumentError reports an out-of-range numeric argument
func NewInvalidArgumentError(name string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, name, reason)
}

// IsValidationError reports whether err is caller misuse or unusable input
// rather than an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNonCategoricalColumn) ||
		errors.Is(err, ErrOnlyOneCategory) ||
		errors.Is(err, ErrTooManyCategories) ||
		errors.Is(err, ErrInsufficientSamples) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrWrongPowerArguments) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNoSolution) ||
		errors.Is(err, ErrNoSamples) ||
		errors.Is(err, ErrInvalidData) ||
		errors.Is(err, ErrUnbalancedDesign)
}

func formatFloatArg(v *float64) string {
	if v == nil {
		return "None"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatIntArg(v *int) string {
	if v == nil {
		return "None"
	}
	return strconv.Itoa(*v)
}
