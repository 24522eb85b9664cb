package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csg33k/blueprint-intake/internal/domain"
)

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    domain.Submission
		ok   bool
	}{
		{"name and email", domain.Submission{Name: "Ana", Email: "ana@x.com"}, true},
		{"whitespace counts as present", domain.Submission{Name: " ", Email: "ana@x.com"}, true},
		{"name missing", domain.Submission{Email: "ana@x.com", Company: "Acme"}, false},
		{"email missing", domain.Submission{Name: "Ana", Phone: "600"}, false},
		{"empty", domain.Submission{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSubmission_FieldsOrder(t *testing.T) {
	t.Parallel()

	s := domain.Submission{Name: "Ana", Email: "ana@x.com", Phone: "600"}
	assert.Equal(t, []domain.Field{
		{Label: "Nombre", Value: "Ana"},
		{Label: "Empresa", Value: ""},
		{Label: "Cargo", Value: ""},
		{Label: "Email", Value: "ana@x.com"},
		{Label: "Teléfono", Value: "600"},
		{Label: "Mejora con IA", Value: ""},
	}, s.Fields())
}

func TestOrPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", domain.OrPlaceholder(""))
	assert.Equal(t, "Acme", domain.OrPlaceholder("Acme"))
}
