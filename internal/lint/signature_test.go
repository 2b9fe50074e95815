package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

func names(params []Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name
	}
	return out
}

func TestSynthesize_AllRequired(t *testing.T) {
	route := tinyapi.MustParse("/category/{category_id}/product/{product_id}")

	params := synthesize(route, nil, nil, nil)

	require.Len(t, params, 2)
	assert.Equal(t, []string{"category_id", "product_id"}, names(params))
	for _, p := range params {
		assert.True(t, p.Required, p.Name)
	}
}

func TestSynthesize_EndpointDefaultMakesOptional(t *testing.T) {
	route := tinyapi.MustParse("/users/{user_id}/posts/{post_id}")

	params := synthesize(route, nil, map[string]bool{"post_id": true}, nil)

	userID, ok := (&Signature{Params: params}).Param("user_id")
	require.True(t, ok)
	assert.True(t, userID.Required)

	postID, ok := (&Signature{Params: params}).Param("post_id")
	require.True(t, ok)
	assert.False(t, postID.Required)
}

func TestSynthesize_ClientDefaultMakesOptional(t *testing.T) {
	route := tinyapi.MustParse("/orgs/{org}/repos/{repo}")

	params := synthesize(route, nil, nil, map[string]bool{"org": true})

	org, ok := (&Signature{Params: params}).Param("org")
	require.True(t, ok)
	assert.False(t, org.Required)
}

func TestSynthesize_VersionAlwaysOptional(t *testing.T) {
	route := tinyapi.MustParse("/v{version}/users/{user_id}")

	params := synthesize(route, nil, nil, nil)

	version, ok := (&Signature{Params: params}).Param("version")
	require.True(t, ok)
	assert.False(t, version.Required)
}

func TestSynthesize_BasePlaceholdersAppended(t *testing.T) {
	route := tinyapi.MustParse("/users/{user_id}")
	base := tinyapi.MustParse("https://{region}.example.org/api")

	params := synthesize(route, base, nil, nil)

	assert.Equal(t, []string{"user_id", "region"}, names(params))
	region, ok := (&Signature{Params: params}).Param("region")
	require.True(t, ok)
	assert.True(t, region.Required)
}

func TestSynthesize_SharedNameDeduplicated(t *testing.T) {
	route := tinyapi.MustParse("/tenants/{tenant}/users")
	base := tinyapi.MustParse("https://{tenant}.example.org")

	params := synthesize(route, base, nil, nil)

	assert.Equal(t, []string{"tenant"}, names(params))
	assert.Equal(t, 0, params[0].Position)
}

// The synthesized names must be exactly the placeholders the runtime
// tokenizer reports; the checker and the resolver share one grammar.
func TestSynthesize_MatchesRuntimePlaceholders(t *testing.T) {
	route := tinyapi.MustParse("/a/{x}/b/{y}/c/{x}")

	params := synthesize(route, nil, nil, nil)

	assert.Equal(t, route.Placeholders(), names(params))
}

func TestSignatureAccepts(t *testing.T) {
	sig := &Signature{
		Params:      []Param{{Name: "user_id", Required: true}},
		Passthrough: map[string]bool{"fields": true},
	}

	assert.True(t, sig.Accepts("user_id"))
	assert.True(t, sig.Accepts("fields"))
	assert.True(t, sig.Accepts("version"))
	assert.False(t, sig.Accepts("unknown_id"))
}
