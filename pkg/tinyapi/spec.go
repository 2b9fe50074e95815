package tinyapi

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// endpointSpec is the participle grammar for compact endpoint declarations:
//
//	GET /users/{user_id} -version=2 -xml -passthrough=fields
type endpointSpec struct {
	Method  string       `parser:"@Method"`
	Route   string       `parser:"@Path"`
	Options []specOption `parser:"@@*"`
}

type specOption struct {
	Flag  string     `parser:"@Flag"`
	Value *specValue `parser:"( Equals @@ )?"`
}

type specValue struct {
	Str    *string `parser:"@String"`
	Number *int    `parser:"| @Number"`
	Ident  *string `parser:"| @Ident"`
}

func (v *specValue) text() string {
	switch {
	case v == nil:
		return ""
	case v.Str != nil:
		return *v.Str
	case v.Number != nil:
		return fmt.Sprint(*v.Number)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Method", Pattern: `(?:GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\b`},
	{Name: "Path", Pattern: `/[^\s]*`},
	{Name: "Flag", Pattern: `-[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var specParser = participle.MustBuild[endpointSpec](
	participle.Lexer(specLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// SpecInfo is the parsed form of a compact endpoint spec string. It is used
// by Client.Spec at declaration time and by the static checker, so both
// layers read spec strings through the same grammar.
type SpecInfo struct {
	Method      string
	Route       string
	Version     int    // 0 when the spec does not set one
	Mode        string // "json", "xml" or "raw"; empty for the default
	NoBase      bool
	Passthrough []string
}

// ParseSpecInfo parses a compact endpoint spec string such as
// "GET /users/{user_id} -version=2 -xml". The route template itself is
// validated with the same tokenizer used everywhere else.
func ParseSpecInfo(decl string) (SpecInfo, error) {
	parsed, err := specParser.ParseString("", strings.TrimSpace(decl))
	if err != nil {
		return SpecInfo{}, &SpecSyntaxError{Spec: decl, Reason: err.Error()}
	}

	info := SpecInfo{Method: parsed.Method, Route: parsed.Route}
	if _, err := Parse(parsed.Route); err != nil {
		return SpecInfo{}, err
	}

	for _, opt := range parsed.Options {
		switch name := strings.TrimPrefix(opt.Flag, "-"); name {
		case "version":
			if opt.Value == nil || opt.Value.Number == nil {
				return SpecInfo{}, &SpecSyntaxError{Spec: decl, Reason: "-version requires a numeric value"}
			}
			info.Version = *opt.Value.Number
		case "json", "xml", "raw":
			if info.Mode != "" && info.Mode != name {
				return SpecInfo{}, &SpecSyntaxError{Spec: decl, Reason: "conflicting response modes"}
			}
			info.Mode = name
		case "nobase":
			info.NoBase = true
		case "passthrough":
			value := opt.Value.text()
			if value == "" {
				return SpecInfo{}, &SpecSyntaxError{Spec: decl, Reason: "-passthrough requires a name"}
			}
			info.Passthrough = append(info.Passthrough, value)
		default:
			return SpecInfo{}, &SpecSyntaxError{Spec: decl, Reason: fmt.Sprintf("unknown option -%s", name)}
		}
	}

	return info, nil
}
