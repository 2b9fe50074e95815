package tinyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecInfo_Basic(t *testing.T) {
	info, err := ParseSpecInfo("GET /users/{user_id}")
	require.NoError(t, err)

	assert.Equal(t, "GET", info.Method)
	assert.Equal(t, "/users/{user_id}", info.Route)
	assert.Zero(t, info.Version)
	assert.Empty(t, info.Mode)
}

func TestParseSpecInfo_Options(t *testing.T) {
	info, err := ParseSpecInfo("POST /playlists/{playlist_id}/tracks -version=2 -xml -passthrough=fields -passthrough=sort")
	require.NoError(t, err)

	assert.Equal(t, "POST", info.Method)
	assert.Equal(t, "/playlists/{playlist_id}/tracks", info.Route)
	assert.Equal(t, 2, info.Version)
	assert.Equal(t, "xml", info.Mode)
	assert.Equal(t, []string{"fields", "sort"}, info.Passthrough)
}

func TestParseSpecInfo_NoBase(t *testing.T) {
	info, err := ParseSpecInfo("GET /status -nobase -raw")
	require.NoError(t, err)

	assert.True(t, info.NoBase)
	assert.Equal(t, "raw", info.Mode)
}

func TestParseSpecInfo_LeadingWhitespace(t *testing.T) {
	info, err := ParseSpecInfo("  DELETE /notes/{note_id}  ")
	require.NoError(t, err)

	assert.Equal(t, "DELETE", info.Method)
}

func TestParseSpecInfo_Errors(t *testing.T) {
	tests := []struct {
		name string
		decl string
	}{
		{"missing method", "/users/{user_id}"},
		{"method with trailing junk", "GETX /users"},
		{"missing route", "GET"},
		{"unknown option", "GET /users -shiny"},
		{"version without value", "GET /users -version"},
		{"version non-numeric", "GET /users -version=two"},
		{"passthrough without value", "GET /users -passthrough"},
		{"conflicting modes", "GET /users -xml -raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecInfo(tt.decl)
			assert.Error(t, err)
		})
	}
}

func TestParseSpecInfo_MalformedRouteTemplate(t *testing.T) {
	_, err := ParseSpecInfo("GET /users/{user_id")

	var syntaxErr *TemplateSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}
