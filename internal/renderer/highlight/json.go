package highlight

import "strings"

// Tokenize splits one line of JSON into tokens. JSON strings cannot span
// lines, so each line is scanned on its own. Whitespace is not returned.
// A string followed by a colon is classified as an object key.
func Tokenize(line string) []Token {
	var tokens []Token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '"':
			end := scanString(line, i)
			typ := TokenString
			if end > len(line) {
				end = len(line)
				typ = TokenInvalid
			} else if isKey(line, end) {
				typ = TokenKey
			}
			tokens = append(tokens, Token{Start: i, End: end, Type: typ})
			i = end
		case strings.IndexByte("{}[]:,", c) >= 0:
			tokens = append(tokens, Token{Start: i, End: i + 1, Type: TokenPunctuation})
			i++
		case c == '-' || (c >= '0' && c <= '9'):
			end := scanWord(line, i)
			tokens = append(tokens, Token{Start: i, End: end, Type: classifyNumber(line[i:end])})
			i = end
		default:
			end := scanWord(line, i)
			if end == i {
				end = i + 1
			}
			typ := TokenInvalid
			switch line[i:end] {
			case "true", "false", "null":
				typ = TokenLiteral
			}
			tokens = append(tokens, Token{Start: i, End: end, Type: typ})
			i = end
		}
	}
	return tokens
}

// scanString returns the index after the closing quote of the string that
// opens at start, or len(line)+1 when it is unterminated.
func scanString(line string, start int) int {
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(line) + 1
}

func isKey(line string, from int) bool {
	rest := strings.TrimLeft(line[from:], " \t")
	return strings.HasPrefix(rest, ":")
}

// scanWord returns the end of a run of bytes that are not JSON structure.
func scanWord(line string, start int) int {
	i := start
	for i < len(line) && strings.IndexByte(" \t\r\"{}[]:,", line[i]) < 0 {
		i++
	}
	return i
}

func classifyNumber(s string) TokenType {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := func() int {
		n := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			n++
		}
		return n
	}
	if digits() == 0 {
		return TokenInvalid
	}
	if i < len(s) && s[i] == '.' {
		i++
		if digits() == 0 {
			return TokenInvalid
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() == 0 {
			return TokenInvalid
		}
	}
	if i != len(s) {
		return TokenInvalid
	}
	return TokenNumber
}
