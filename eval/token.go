package eval

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenFloat  TokenType = "FLOAT"
	tokenString TokenType = "STRING"

	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenPower    TokenType = "**"
	tokenSlash    TokenType = "/"
	tokenPercent  TokenType = "%"
	tokenAt       TokenType = "@"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenLTE      TokenType = "<="
	tokenGTE      TokenType = ">="
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma    TokenType = ","
	tokenColon    TokenType = ":"
	tokenQuestion TokenType = "?"
	tokenPipe     TokenType = "|"
	tokenLParen   TokenType = "("
	tokenRParen   TokenType = ")"
	tokenLBrace   TokenType = "{"
	tokenRBrace   TokenType = "}"
	tokenLBracket TokenType = "["
	tokenRBracket TokenType = "]"

	tokenTrue  TokenType = "TRUE"
	tokenFalse TokenType = "FALSE"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
