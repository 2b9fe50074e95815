package lint

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoSource = `package demo

import (
	"context"

	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

func demo(ctx context.Context) {
	spotify := tinyapi.MustNew("https://api.spotify.com/v{version}")
	fetchProfile := spotify.Get("/users/{user_id}")
	fetchProfile.Call(ctx, tinyapi.Params{"unknown_id": 7})
}
`

func TestLinterRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "demo.go"), demoSource)
	writeFile(t, filepath.Join(root, "sub", "clean.go"), "package sub\n")

	findings, err := NewLinter(Options{}).Run([]string{root + "/..."})
	require.NoError(t, err)

	require.Len(t, findings, 2)
	assert.Equal(t, MissingNamedArgument, findings[0].Kind)
	assert.Equal(t, "user_id", findings[0].Name)
	assert.Equal(t, UnexpectedKeywordArgument, findings[1].Kind)
	assert.Equal(t, "unknown_id", findings[1].Name)
	assert.Equal(t, filepath.Join(root, "demo.go"), findings[0].Pos.Filename)
}

// Declarations in one file are visible to call sites in another file of the
// same package.
func TestLinterRun_CrossFileDeclarations(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "client.go"), `package demo

import "github.com/sanjacob/tiny-api-client/pkg/tinyapi"

var spotify = tinyapi.MustNew("https://api.spotify.com/v{version}")
var fetchProfile = spotify.Get("/users/{user_id}")
`)
	writeFile(t, filepath.Join(root, "calls.go"), `package demo

import (
	"context"

	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

func demo(ctx context.Context) {
	fetchProfile.Call(ctx, tinyapi.Params{"unknown_id": 7})
}
`)

	findings, err := NewLinter(Options{}).Run([]string{root})
	require.NoError(t, err)

	require.Len(t, findings, 2)
	assert.Equal(t, "user_id", findings[0].Name)
	assert.Equal(t, "unknown_id", findings[1].Name)
	assert.Equal(t, filepath.Join(root, "calls.go"), findings[1].Pos.Filename)
}

func TestLinterRun_SkipsUnparseableFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.go"), "package {\n")
	writeFile(t, filepath.Join(root, "demo.go"), demoSource)

	findings, err := NewLinter(Options{}).Run([]string{root})
	require.NoError(t, err)
	assert.Len(t, findings, 2)
}

func TestLinterRun_ImportPathOverride(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "demo.go"), strings.ReplaceAll(demoSource,
		"github.com/sanjacob/tiny-api-client/pkg/tinyapi",
		"example.com/fork/pkg/tinyapi"))

	findings, err := NewLinter(Options{ImportPath: "example.com/fork/pkg/tinyapi"}).Run([]string{root})
	require.NoError(t, err)
	assert.Len(t, findings, 2)

	// Without the override the fork import is not recognized.
	findings, err = NewLinter(Options{}).Run([]string{root})
	require.NoError(t, err)
	assert.Empty(t, findings)
}
