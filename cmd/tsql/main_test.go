package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsql/tsql/parser"
)

func TestFormatSettingsFromArgs(t *testing.T) {
	settings, err := formatSettings(&argT{Case: "lower", Indent: 2, Tab: true})
	require.NoError(t, err)
	assert.Equal(t, parser.KeywordLower, settings.KeywordCase)
	assert.Equal(t, 2, settings.IndentWidth)
	assert.True(t, settings.UseTab)
}

func TestFormatSettingsCaseIsCaseInsensitive(t *testing.T) {
	settings, err := formatSettings(&argT{Case: "UPPER", Indent: 4})
	require.NoError(t, err)
	assert.Equal(t, parser.KeywordUpper, settings.KeywordCase)
}

func TestFormatSettingsRejectsUnknownCase(t *testing.T) {
	_, err := formatSettings(&argT{Case: "title", Indent: 4})
	assert.Error(t, err)
}
