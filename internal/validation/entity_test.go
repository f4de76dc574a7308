package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		want   error
		name   string
		input  string
		output string
	}{
		{name: "plain", input: "Notes", output: "Notes"},
		{name: "trimmed", input: "  Notes \t", output: "Notes"},
		// "e" + combining acute -> "é"
		{name: "nfc", input: "Cafe\u0301", output: "Caf\u00e9"},
		{name: "empty", input: "   ", want: ErrInvalidName},
		{name: "slash", input: "a/b", want: ErrInvalidName},
		{name: "backslash", input: `a\b`, want: ErrInvalidName},
		{name: "control", input: "a\x00b", want: ErrInvalidName},
		{name: "too long", input: strings.Repeat("я", MaxNameLen+1), want: ErrInvalidName},
		{name: "max runes", input: strings.Repeat("я", MaxNameLen), output: strings.Repeat("я", MaxNameLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
		})
	}
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, ValidateColor(""))
	assert.NoError(t, ValidateColor("#A0b1C2"))
	assert.NoError(t, ValidateColor("Blue"))
	assert.ErrorIs(t, ValidateColor("#abc"), ErrInvalidColor)
	assert.ErrorIs(t, ValidateColor("teal"), ErrInvalidColor)
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("hello", 0))
	assert.NoError(t, ValidateContent("hello", 5))
	assert.ErrorIs(t, ValidateContent("hello!", 5), ErrContentTooLong)
}

func TestValidateEntity(t *testing.T) {
	now := time.Now()

	doc := models.NewDocument("Doc", "", "body", now)
	assert.NoError(t, ValidateEntity(doc, 10))
	assert.ErrorIs(t, ValidateEntity(doc, 2), ErrContentTooLong)

	folder := models.NewFolder("Dir", "", "neon", now)
	assert.ErrorIs(t, ValidateEntity(folder, 0), ErrInvalidColor)

	bad := doc.Clone()
	bad.Type = "image"
	assert.ErrorIs(t, ValidateEntity(bad, 0), ErrInvalidType)

	noID := doc.Clone()
	noID.ID = ""
	assert.ErrorIs(t, ValidateEntity(noID, 0), ErrInvalidType)

	// tombstone не проверяется по содержимому
	gone := doc.Clone()
	gone.Name = ""
	gone.SoftDelete(now)
	assert.NoError(t, ValidateEntity(gone, 0))

	assert.ErrorIs(t, ValidateEntity(nil, 0), ErrInvalidType)
}
