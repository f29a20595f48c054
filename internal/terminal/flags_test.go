package terminal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
)

func TestOutputFormat(t *testing.T) {
	for _, tc := range []OutputFormat{
		OutputFormatJSON,
		OutputFormatText,
	} {
		t.Run(fmt.Sprintf("%s should be valid", tc), func(t *testing.T) {
			assert.True(t, isValidOutputFormat(tc), "must be valid output format")
		})
	}

	t.Run("should have the correct type representation", func(t *testing.T) {
		assert.Equal(t, "OutputFormat", OutputFormatText.Type())
	})

	t.Run("should set its value regardless of case", func(t *testing.T) {
		var of OutputFormat

		assert.Nil(t, of.Set("JSON"))
		assert.Equal(t, OutputFormatJSON, of)
		assert.Equal(t, "json", of.String())

		assert.Nil(t, of.Set("text"))
		assert.Equal(t, OutputFormatText, of)
		assert.Equal(t, "text", of.String())
	})

	t.Run("should return an error when setting an invalid output format", func(t *testing.T) {
		var of OutputFormat
		assert.Equal(t, errors.New("unsupported value, use one of [text, json] instead"), of.Set("yaml"))
		assert.Equal(t, OutputFormatText, of)
	})
}
