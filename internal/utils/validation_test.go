package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	FullName string `validate:"required,min=4"`
	Email    string `validate:"required,email,min=8"`
	City     string `validate:"required"`
}

func TestFirstValidationMessage(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	tests := []struct {
		name  string
		input sampleInput
		want  string
	}{
		{
			name:  "short full name reported first",
			input: sampleInput{FullName: "Jo", Email: "bad", City: ""},
			want:  `"fullName" length must be at least 4 characters long`,
		},
		{
			name:  "invalid email",
			input: sampleInput{FullName: "Jane Doe", Email: "not-an-email", City: "NYC"},
			want:  `"email" must be a valid email`,
		},
		{
			name:  "missing required field",
			input: sampleInput{FullName: "Jane Doe", Email: "jane@x.com", City: ""},
			want:  `"city" is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.want, FirstValidationMessage(err))
		})
	}
}

func TestFirstValidationMessageNonValidatorError(t *testing.T) {
	t.Parallel()

	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", FirstValidationMessage(err))
}
