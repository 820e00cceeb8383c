package util

import (
	"NovaAff/internal/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  *string   `json:"name" validate:"required,min=1,max=5"`
	Email *string   `json:"email" validate:"omitempty,email"`
	Day   *dto.Date `json:"day" validate:"required,date_fmt"`
	Kind  *string   `json:"kind" validate:"omitempty,oneof=a b"`
	Count *int64    `json:"count" validate:"omitempty,gte=0"`
	Tags  []string  `json:"tags" validate:"omitempty,dive,oneof=x y"`
}

func TestValidateDTO_Valid(t *testing.T) {
	day, ok := dto.ParseDate("01/01/2025")
	require.True(t, ok)

	fields, err := ValidateDTO(&sampleInput{Name: Ptr("nova"), Day: &day, Tags: []string{"x"}})
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestValidateDTO_Messages(t *testing.T) {
	var bad dto.Date
	require.NoError(t, bad.UnmarshalParam("2025/01/01"))

	fields, err := ValidateDTO(&sampleInput{
		Name:  Ptr(""),
		Email: Ptr("not-an-email"),
		Day:   &bad,
		Kind:  Ptr("c"),
		Count: Ptr(int64(-1)),
		Tags:  []string{"x", "z"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"This field may not be blank."}, fields["name"])
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{dto.DateFormatMessage}, fields["day"])
	assert.Equal(t, []string{`"c" is not a valid choice.`}, fields["kind"])
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, fields["count"])
	assert.Equal(t, []string{`"z" is not a valid choice.`}, fields["tags"])
}

func TestValidateDTO_Required(t *testing.T) {
	fields, err := ValidateDTO(&sampleInput{Name: Ptr("toolongname")})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ensure this field has no more than 5 characters."}, fields["name"])
	assert.Equal(t, []string{"This field is required."}, fields["day"])
	assert.NotContains(t, fields, "email")
}

func TestFieldErrors_Add(t *testing.T) {
	f := FieldErrors{}
	f.Add(NonFieldErrors, "first")
	f.Add(NonFieldErrors, "second")
	assert.Equal(t, []string{"first", "second"}, f[NonFieldErrors])
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, 3, Deref(Ptr(3)))
}
