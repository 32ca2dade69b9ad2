package lamlang

// Parser builds a Term from the token stream.
//
//	term        := application
//	application := atom (atom)*          left-associative
//	atom        := IDENT | '(' term ')' | LAMBDA IDENT '.' term
//
// A lambda body is a full term, so it extends as far right as the syntax
// allows: \x.\y.x y is \x.(\y.(x y)).
type Parser struct {
	tokenizer *Tokenizer
}

// Parse turns text into a Term, or fails with a LexError or ParseError. It
// never returns a partial term.
func Parse(text string) (Term, error) {
	return ParseSource(NewSource("", text))
}

func ParseSource(source *Source) (Term, error) {
	p := &Parser{
		tokenizer: NewTokenizer(source),
	}

	t, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if t.Kind == TokenEOF {
		return nil, WithPos(LexError{Pos: t.Pos}, t.Pos)
	}

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	// trailing tokens are an error, not a second term
	t, err = p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if t.Kind != TokenEOF {
		return nil, WithPos(ParseError{
			Pos:      t.Pos,
			Expected: "end of input",
			Found:    t.Text,
		}, t.Pos)
	}

	return term, nil
}

func (p *Parser) parseTerm() (Term, error) {
	return p.parseApplication()
}

func (p *Parser) parseApplication() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		t, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if !startsAtom(t.Kind) {
			break
		}
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}

	return left, nil
}

func startsAtom(kind TokenKind) bool {
	switch kind {
	case TokenIdentifier, TokenLParen, TokenLambda:
		return true
	}
	return false
}

func (p *Parser) parseAtom() (Term, error) {
	t, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}

	switch t.Kind {

	case TokenIdentifier:
		p.tokenizer.Consume()
		return Var{Name: t.Text}, nil

	case TokenLParen:
		p.tokenizer.Consume()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		t, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if t.Kind != TokenRParen {
			return nil, WithPos(ParseError{
				Pos:      t.Pos,
				Expected: "')'",
				Found:    t.Text,
			}, t.Pos)
		}
		p.tokenizer.Consume()
		return term, nil

	case TokenLambda:
		p.tokenizer.Consume()
		return p.parseAbstraction()
	}

	return nil, WithPos(ParseError{
		Pos:      t.Pos,
		Expected: "a variable, '(' or lambda",
		Found:    t.Text,
	}, t.Pos)
}

func (p *Parser) parseAbstraction() (Term, error) {
	t, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if t.Kind != TokenIdentifier {
		return nil, WithPos(ParseError{
			Pos:      t.Pos,
			Expected: "parameter name after lambda",
			Found:    t.Text,
		}, t.Pos)
	}
	param := t.Text
	p.tokenizer.Consume()

	t, err = p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if t.Kind != TokenDot {
		return nil, WithPos(ParseError{
			Pos:      t.Pos,
			Expected: "'.' after lambda parameter",
			Found:    t.Text,
		}, t.Pos)
	}
	p.tokenizer.Consume()

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	return Abs{Param: param, Body: body}, nil
}
