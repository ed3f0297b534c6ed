package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrongPowerArgumentsMessages(t *testing.T) {
	alpha, pow, nobs := 0.05, 0.8, 40

	all := &WrongPowerArgumentsError{Alpha: &alpha, Power: &pow, TotalObservations: &nobs}
	assert.Equal(t,
		"All arguments were provided. Exactly one of alpha, power, "+
			"or total_observations must be None. Arguments: "+
			"alpha = 0.05, power = 0.8, total_observations = 40.",
		all.Error())

	some := &WrongPowerArgumentsError{Power: &pow}
	assert.Equal(t,
		"More than 1 argument was provided. Exactly one of alpha, power, "+
			"or total_observations must be None. Arguments: "+
			"alpha = None, power = 0.8, total_observations = None.",
		some.Error())

	none := &WrongPowerArgumentsError{}
	assert.Contains(t, none.Error(), "alpha = None, power = None, total_observations = None.")
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&NonCategoricalColumnError{Column: "year_diagnosed", Type: "int64"}, ErrNonCategoricalColumn},
		{&OnlyOneCategoryError{Column: "env_biome", Value: "urban biome"}, ErrOnlyOneCategory},
		{&TooManyCategoriesError{Column: "site", Levels: 6, Max: 5}, ErrTooManyCategories},
		{&InsufficientSamplesError{Column: "c", Level: "x", Count: 1, Required: 3}, ErrInsufficientSamples},
		{&WrongPowerArgumentsError{}, ErrWrongPowerArguments},
		{&NoSamplesError{}, ErrNoSamples},
		{NewNoCommonSamplesError(), ErrNoSamples},
		{NewColumnNotFoundError("missing"), ErrColumnNotFound},
	}

	for _, tc := range cases {
		assert.True(t, errors.Is(tc.err, tc.sentinel), "%T should unwrap to %v", tc.err, tc.sentinel)
		assert.True(t, IsValidationError(tc.err))
	}
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestColumnErrorMessages(t *testing.T) {
	assert.Equal(t,
		"Column must be categorical (dtype object). 'year_diagnosed' is of type int64.",
		(&NonCategoricalColumnError{Column: "year_diagnosed", Type: "int64"}).Error())
	assert.Equal(t,
		"Column env_biome has only one value: 'urban biome'.",
		(&OnlyOneCategoryError{Column: "env_biome", Value: "urban biome"}).Error())
	assert.Equal(t,
		"Column site has 6 levels, which exceeds the maximum of 5.",
		(&TooManyCategoriesError{Column: "site", Levels: 6, Max: 5}).Error())
	assert.Equal(t,
		"Column rare_group level 'x' has 2 samples; at least 3 are required.",
		(&InsufficientSamplesError{Column: "rare_group", Level: "x", Count: 2, Required: 3}).Error())
	assert.Equal(t, "No samples in common between data and metadata.", NewNoCommonSamplesError().Error())
	assert.Equal(t, "No samples remain after subsetting.", (&NoSamplesError{}).Error())
}
