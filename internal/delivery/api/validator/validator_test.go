package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blankRequest struct {
	Name string  `json:"name" validate:"required,notblank"`
	Note *string `json:"note" validate:"omitempty,notblank"`
}

type sampleRequest struct {
	Title  string `json:"title" validate:"required"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestRequestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	rating := 9

	err := v.Validate(&sampleRequest{Rating: &rating, Color: "blue", Email: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "rating", Message: "must be at most 5"},
		{Field: "color", Message: "must be a hex colour such as #3B82F6"},
		{Field: "email", Message: "must be a valid email address"},
	}, verr.Fields)
	assert.Contains(t, verr.Error(), "title is required")
}

func TestRequestValidator_Valid(t *testing.T) {
	rating := 4

	assert.NoError(t, New().Validate(&sampleRequest{Title: "Dune", Rating: &rating, Color: "#10B981"}))
}

func TestRequestValidator_RejectsBlankStrings(t *testing.T) {
	v := New()
	blank := " \t "
	empty := ""

	var verr *ValidationError
	require.ErrorAs(t, v.Validate(&blankRequest{Name: "   ", Note: &blank}), &verr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Message: "must not be blank"},
		{Field: "note", Message: "must not be blank"},
	}, verr.Fields)

	require.ErrorAs(t, v.Validate(&blankRequest{Name: "Sci-Fi", Note: &empty}), &verr)
	assert.Equal(t, []FieldError{{Field: "note", Message: "must not be blank"}}, verr.Fields)

	assert.NoError(t, v.Validate(&blankRequest{Name: " Sci-Fi "}))
}
