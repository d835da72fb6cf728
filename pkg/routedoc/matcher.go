package routedoc

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// mountMatcher is the grammar of a mount matcher compiled from a literal
// prefix, e.g. ^\/api\/v1\/?(?=\/|$)
type mountMatcher struct {
	Anchor   bool           `parser:"@Anchor?"`
	Parts    []*matcherPart `parser:"@@*"`
	OptSlash bool           `parser:"@OptSlash?"`
	Tail     string         `parser:"( @Lookahead | @End )?"`
}

// matcherPart is one literal run or escaped character
type matcherPart struct {
	Escaped *string `parser:"  @Escaped"`
	Literal *string `parser:"| @Char"`
}

// text returns the literal text the part matches
func (p *matcherPart) text() string {
	switch {
	case p.Escaped != nil:
		return strings.TrimPrefix(*p.Escaped, `\`)
	case p.Literal != nil:
		return *p.Literal
	default:
		return ""
	}
}

var mountMatcherLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Lookahead", Pattern: `\(\?=\\/\|\$\)`},
	{Name: "OptSlash", Pattern: `\\/\?`},
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Anchor", Pattern: `\^`},
	{Name: "End", Pattern: `\$`},
	{Name: "Meta", Pattern: `[()\[\]{}?*+|.]`},
	{Name: "Char", Pattern: `[^\\^$()\[\]{}?*+|.]+`},
})

// Meta tokens are lexed but never accepted by the grammar, so any unescaped
// regex construct fails the parse.
var mountMatcherParser = participle.MustBuild[mountMatcher](
	participle.Lexer(mountMatcherLexer),
)

// MountLiteral recovers the static mount prefix from the textual source of a
// compiled mount matcher.
// Recovers: ^\/users\/?(?=\/|$) -> /users
// Recovers: ^\/api\/v1\/?(?=\/|$) -> /api/v1
// It reports false for unanchored matchers, matchers containing parameter
// groups or other regex constructs, and matchers for the root mount.
func MountLiteral(matcher string) (string, bool) {
	parsed, err := mountMatcherParser.ParseString("", matcher)
	if err != nil || !parsed.Anchor {
		return "", false
	}

	var literal strings.Builder
	for _, part := range parsed.Parts {
		literal.WriteString(part.text())
	}

	prefix := strings.TrimSuffix(literal.String(), "/")
	if prefix == "" {
		return "", false
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix, true
}

// MountMatcher compiles a literal prefix into the matcher source form
// understood by MountLiteral. It is the inverse used when converting routers
// that record mount prefixes as plain strings.
func MountMatcher(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return `^\/?(?=\/|$)`
	}

	var source strings.Builder
	source.WriteString(`^\/`)
	for _, r := range trimmed {
		if strings.ContainsRune(`/\^$()[]{}?*+|.-`, r) {
			source.WriteByte('\\')
		}
		source.WriteRune(r)
	}
	source.WriteString(`\/?(?=\/|$)`)
	return source.String()
}
