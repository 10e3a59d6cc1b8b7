package console

import "strings"

// shortFlagAliases maps single-letter flags to their long names. Letters
// outside this table are dropped without error.
var shortFlagAliases = map[string]string{
	"p": "priority",
	"d": "date",
	"t": "tags",
	"h": "help",
	"f": "format",
}

// Tokenize splits a raw line into whitespace-separated tokens. Quote
// characters are not interpreted here; handlers that accept free text join
// positionals and strip quotes themselves.
func Tokenize(raw string) []string {
	return strings.Fields(raw)
}

// Parse separates tokens into positional arguments and named flags.
//
// Long flags take --name=value or --name value; the bare form consumes the
// next token as the value even when that token itself looks like a flag, and
// yields an empty value at end of input. Short flags are two-character
// tokens (-p) resolved through the alias table; a recognized short flag
// consumes the next token as its value, an unrecognized one vanishes from
// the stream without consuming anything. Longer single-dash words (-green)
// are ordinary positionals so commands can accept dash-prefixed values.
func Parse(tokens []string) ([]string, map[string]string) {
	positional := make([]string, 0, len(tokens))
	flags := make(map[string]string)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "--"):
			name := strings.TrimPrefix(tok, "--")
			if eq := strings.Index(name, "="); eq >= 0 {
				flags[name[:eq]] = name[eq+1:]
				continue
			}
			value := ""
			if i+1 < len(tokens) {
				value = tokens[i+1]
				i++
			}
			flags[name] = value
		case len(tok) == 2 && tok[0] == '-':
			name, known := shortFlagAliases[tok[1:]]
			if !known {
				continue
			}
			value := ""
			if i+1 < len(tokens) {
				value = tokens[i+1]
				i++
			}
			flags[name] = value
		default:
			positional = append(positional, tok)
		}
	}
	return positional, flags
}
