package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"john.smith@example.com", "jo***@example.com"},
		{"ab@x.com", "ab***@x.com"},
		{"a@x.com", "a***@x.com"},
		{"abc@clinic.org", "ab***@clinic.org"},
		{"not-an-email", "not-an-email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.email), tt.email)
	}
}

func TestMaskEmail_NotIdempotentOnOutput(t *testing.T) {
	// Masking is defined on the raw email only; feeding the output back in
	// stacks the redaction markers, which is why callers always derive from
	// the source field.
	masked := MaskEmail("john.smith@example.com")
	assert.Equal(t, "jo***@example.com", masked)
	assert.NotEqual(t, masked, MaskEmail(masked))
}

func TestStudent_Validate(t *testing.T) {
	s := &Student{ID: "st-1", Email: "a@x.com"}
	require.NoError(t, s.Validate())

	assert.ErrorIs(t, (&Student{Email: "a@x.com"}).Validate(), ErrMalformedRecord)
	assert.ErrorIs(t, (&Student{ID: "st-2"}).Validate(), ErrMalformedRecord)
}

func TestStudent_DeriveMaskedEmail(t *testing.T) {
	s := &Student{ID: "st-1", Email: "john.smith@example.com", MaskedEmail: "stale***@wrong.com"}
	s.DeriveMaskedEmail()
	assert.Equal(t, "jo***@example.com", s.MaskedEmail)
}

func TestPaginationParams(t *testing.T) {
	p := PaginationParams{Page: 3, PageSize: 9}
	assert.Equal(t, 18, p.Offset())
	assert.Equal(t, 3, p.TotalPages(25))
	assert.Equal(t, 3, p.TotalPages(27))
	assert.Equal(t, 4, p.TotalPages(28))
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 0, PaginationParams{Page: 1}.TotalPages(10))
	assert.Equal(t, 0, PaginationParams{Page: 0, PageSize: 9}.Offset())
}
