package tinyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeScopes_Precedence(t *testing.T) {
	client := Params{"region": "class", "user_id": "class", "version": "class"}
	endpoint := Params{"user_id": "endpoint", "version": "endpoint"}
	call := Params{"version": "call"}

	merged := MergeScopes(client, endpoint, call)

	assert.Equal(t, "class", merged["region"])
	assert.Equal(t, "endpoint", merged["user_id"])
	assert.Equal(t, "call", merged["version"])
}

func TestMergeScopes_NilScopesIgnored(t *testing.T) {
	merged := MergeScopes(nil, Params{"a": 1}, nil)

	assert.Equal(t, Params{"a": 1}, merged)
}

func TestMergeScopes_InputsUntouched(t *testing.T) {
	endpoint := Params{"version": 1}
	call := Params{"version": 2}

	merged := MergeScopes(endpoint, call)

	assert.Equal(t, 2, merged["version"])
	assert.Equal(t, 1, endpoint["version"])
}

// A later scope replaces a key wholesale; map values are not merged
// key-by-key across scopes.
func TestMergeScopes_MapValueReplacedWholesale(t *testing.T) {
	defaults := Params{"opts": map[string]any{"a": 1, "b": 2}}
	call := Params{"opts": map[string]any{"a": 9}}

	merged := MergeScopes(defaults, call)

	assert.Equal(t, map[string]any{"a": 9}, merged["opts"])
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, defaults["opts"])
}

func TestMergeScopes_ZeroValuesOverride(t *testing.T) {
	merged := MergeScopes(
		Params{"region": "eu", "flag": true, "count": 7},
		Params{"region": "", "flag": false, "count": 0},
	)

	assert.Equal(t, "", merged["region"])
	assert.Equal(t, false, merged["flag"])
	assert.Equal(t, 0, merged["count"])
}

func TestParamsClone(t *testing.T) {
	original := Params{"a": 1}
	clone := original.Clone()
	clone["a"] = 2

	assert.Equal(t, 1, original["a"])
	assert.Nil(t, Params(nil).Clone())
}
