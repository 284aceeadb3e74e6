package properties

import "strings"

// SyntaxError reports a ${ placeholder opened but never closed.
type SyntaxError struct {
	Text string
}

func (e *SyntaxError) Error() string {
	return "syntax error in property: " + e.Text
}

// Expand applies placeholder expansion to an arbitrary string not stored in
// the table. An unresolved placeholder is left verbatim in the output; build
// files rely on literal ${...} passthrough for non-property use. An
// unterminated placeholder is a syntax error.
func (s *Store) Expand(text string) (string, error) {
	return s.expand(text, make(map[string]bool))
}

// expand walks text once, substituting ${name} with the referenced entry's
// value, itself expanded. seen holds the keys on the active expansion path;
// a placeholder already being expanded is left verbatim rather than
// recursing forever.
func (s *Store) expand(text string, seen map[string]bool) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var sb strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) || text[i+1] != '{' {
			sb.WriteByte(text[i])
			i++
			continue
		}
		end := strings.IndexByte(text[i+2:], '}')
		if end < 0 {
			return "", &SyntaxError{Text: text}
		}
		name := text[i+2 : i+2+end]
		i += 2 + end + 1

		e, ok := s.entries[name]
		if !ok || seen[name] {
			sb.WriteString("${")
			sb.WriteString(name)
			sb.WriteByte('}')
			continue
		}
		seen[name] = true
		inner, err := s.expand(e.value, seen)
		delete(seen, name)
		if err != nil {
			return "", err
		}
		sb.WriteString(inner)
	}
	return sb.String(), nil
}
