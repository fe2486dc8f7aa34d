package orderform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
)

func TestValidate(t *testing.T) {
	c := catalog.Default()
	valid := domain.OrderDraft{Name: "Jane Doe", Email: "jane@example.com", Color: "Matte Black", Plan: "Pro"}

	tests := []struct {
		name  string
		draft domain.OrderDraft
		want  []domain.Field
	}{
		{name: "valid", draft: valid},
		{name: "defaults only", draft: domain.NewDraft("Matte Black", "Pro"), want: []domain.Field{domain.FieldName, domain.FieldEmail}},
		{name: "whitespace counts as present", draft: valid.With(domain.FieldName, " ")},
		{name: "unknown color", draft: valid.With(domain.FieldColor, "Chrome"), want: []domain.Field{domain.FieldColor}},
		{name: "unknown plan", draft: valid.With(domain.FieldPlan, "Free"), want: []domain.Field{domain.FieldPlan}},
		{
			name:  "everything wrong, form order",
			draft: domain.OrderDraft{Color: "x", Plan: "y"},
			want:  []domain.Field{domain.FieldName, domain.FieldEmail, domain.FieldColor, domain.FieldPlan},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.draft, c)

			var got []domain.Field
			for _, e := range result.Errors {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, result.Valid())
		})
	}
}

func TestValidationResult_Err(t *testing.T) {
	assert.NoError(t, ValidationResult{}.Err())

	err := ValidationResult{Errors: []FieldError{{Field: domain.FieldEmail, Message: "email is required"}}}.Err()

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []apperrors.ValidationDetail{{Field: "email", Message: "email is required"}}, ve.Details)
}

func TestValidationResult_For(t *testing.T) {
	r := ValidationResult{Errors: []FieldError{{Field: domain.FieldName, Message: "name is required"}}}

	msg, ok := r.For(domain.FieldName)
	assert.True(t, ok)
	assert.Equal(t, "name is required", msg)

	_, ok = r.For(domain.FieldEmail)
	assert.False(t, ok)
}
