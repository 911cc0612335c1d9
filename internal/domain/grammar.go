package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseEntry parses one line of a recognized fenced block, trailing newline included.
//
//	line      := diff-prefix? key-spec separator value-spec "\n"
//	key-spec  := quote? stroke ("/" stroke)* quote?   (same quote on both sides)
//	separator := hspace* ":" hspace*
//	value     := quoted-value | unquoted-value
//
// Every production is scanned left to right with a fixed choice, no backtracking:
// the separator is greedy, the unquoted value is greedy and its trailing whitespace
// becomes comment padding.
func ParseEntry(line string) (Entry, error) {
	if line == "" {
		return Entry{}, syntaxError("unexpected empty line")
	}
	body, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return Entry{}, syntaxError("missing end of line")
	}

	var e Entry
	isUpdated := false
	if rest, ok := strings.CutPrefix(body, DeletedPrefix); ok {
		e.IsDeleted = true
		body = rest
	} else if rest, ok := strings.CutPrefix(body, UpdatedPrefix); ok {
		isUpdated = true
		body = rest
	}

	left, rest := splitKeySide(body)
	if left == "" {
		return Entry{}, syntaxError("missing key")
	}
	sep, right, ok := scanSeparator(rest)
	if !ok {
		return Entry{}, syntaxError("missing ':' separator")
	}

	key, keyQuote, err := parseKeySpec(left)
	if err != nil {
		return Entry{}, err
	}

	var value string
	if q := Quote(firstByte(right)); q == SingleQuote || q == DoubleQuote {
		e.ValueQuote = q
		value, e.CommentPadding, e.Comment, err = scanQuotedValue(right, q)
	} else {
		value, e.CommentPadding, e.Comment, err = scanUnquotedValue(right)
	}
	if err != nil {
		return Entry{}, err
	}

	e.Key = key
	e.KeyQuote = keyQuote
	e.Separator = sep
	e.UpdatedValue = Present(value)
	if !isUpdated {
		e.Value = Present(value)
	}
	return e, nil
}

// splitKeySide returns the longest prefix free of ':' and whitespace
func splitKeySide(s string) (string, string) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func scanSeparator(s string) (sep, rest string, ok bool) {
	i := skipSpace(s, 0)
	if i >= len(s) || s[i] != ':' {
		return "", "", false
	}
	i = skipSpace(s, i+1)
	return s[:i], s[i:], true
}

func parseKeySpec(left string) (Key, Quote, error) {
	open, inner := Quote(""), left
	if q := Quote(firstByte(left)); q == SingleQuote || q == DoubleQuote {
		open, inner = q, left[1:]
	}
	closing := NoQuote
	if q := Quote(lastByte(inner)); q == SingleQuote || q == DoubleQuote {
		closing, inner = q, inner[:len(inner)-1]
	}
	if open != closing {
		return "", "", syntaxError("mismatched quotes around key %s", left)
	}

	key := Key(inner)
	if err := key.Validate(); err != nil {
		return "", "", syntaxError("couldn't parse the left side %s: %v", left, err)
	}
	return key, open, nil
}

// scanQuotedValue scans Q body Q hspace* comment? where body escapes only '\' and Q
func scanQuotedValue(s string, q Quote) (value, padding, comment string, err error) {
	quote := q[0]
	var b strings.Builder
	i := 1
	for {
		if i >= len(s) {
			return "", "", "", syntaxError("unterminated %s quote in %s", q, s)
		}
		c := s[i]
		if c == quote {
			i++
			break
		}
		if c == '\\' {
			if i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == quote) {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			return "", "", "", syntaxError("invalid escape in quoted value %s", s)
		}
		b.WriteByte(c)
		i++
	}

	padding, comment, err = scanTail(s, i)
	if err != nil {
		return "", "", "", err
	}
	return b.String(), padding, comment, nil
}

// scanUnquotedValue scans a greedy body in which quotes, '#' and '\' must be escaped.
// Whitespace belongs to the body only when more body follows it.
func scanUnquotedValue(s string) (value, padding, comment string, err error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 < len(s) && strings.IndexByte(`\"'#`, s[i+1]) >= 0 {
				b.WriteString(s[i : i+2])
				i += 2
				continue
			}
			return "", "", "", syntaxError("invalid escape in value %s", s)
		case c == '#':
			return finishUnquoted(b.String(), s, i)
		case c == '\'' || c == '"':
			return "", "", "", syntaxError("unescaped quote in value %s", s)
		case isSpaceByte(s, i):
			j := skipSpace(s, i)
			if j >= len(s) || s[j] == '#' {
				return finishUnquoted(b.String(), s, i)
			}
			b.WriteString(s[i:j])
			i = j
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}
	return finishUnquoted(b.String(), s, i)
}

func finishUnquoted(raw, s string, i int) (value, padding, comment string, err error) {
	padding, comment, err = scanTail(s, i)
	if err != nil {
		return "", "", "", err
	}
	return unescapeUnquoted(raw), padding, comment, nil
}

// unescapeUnquoted undoes \\ \" \' \# and then turns each remaining
// backslash-n pair into a newline
func unescapeUnquoted(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return strings.ReplaceAll(b.String(), `\n`, "\n")
}

// scanTail scans hspace* ("#" rest)? up to the end of s
func scanTail(s string, i int) (padding, comment string, err error) {
	j := skipSpace(s, i)
	if j < len(s) && s[j] != '#' {
		return "", "", syntaxError("couldn't parse the right side %s", s)
	}
	return s[i:j], s[j:], nil
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpaceByte(s, i) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

func isSpaceByte(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isBlank(r)
}

func firstByte(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

func lastByte(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}
