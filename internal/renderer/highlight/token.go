// Package highlight colours JSON documents line by line for the editor.
package highlight

// TokenType is the syntactic class of a token.
type TokenType uint8

const (
	TokenNone TokenType = iota
	TokenKey
	TokenString
	TokenNumber
	TokenLiteral // true, false, null
	TokenPunctuation
	TokenInvalid
)

var tokenNames = [...]string{
	TokenNone:        "none",
	TokenKey:         "key",
	TokenString:      "string",
	TokenNumber:      "number",
	TokenLiteral:     "literal",
	TokenPunctuation: "punctuation",
	TokenInvalid:     "invalid",
}

// String returns the token type name.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown"
}

// Token is a typed byte range [Start, End) of a line.
type Token struct {
	Start int
	End   int
	Type  TokenType
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
