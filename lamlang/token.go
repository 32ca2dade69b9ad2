package lamlang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIdentifier
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenLambda:
		return "lambda"
	case TokenDot:
		return "'.'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenIdentifier:
		return "identifier"
	case TokenEOF:
		return "end of input"
	}
	return "invalid"
}
