package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Query string `validate:"required"`
	Port  int    `validate:"min=1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(sample{Query: "{ __typename }", Port: 1}))

	err := v.Validate(sample{})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"Query: required", "Port: min"}, FieldErrors(err))
}

func TestFieldErrors_OtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
