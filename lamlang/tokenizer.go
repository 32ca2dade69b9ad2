package lamlang

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

// Tokenizer streams tokens from a lambda expression. The alphabet is small:
// the abstraction marker ('\' or the λ glyph, normalized to one token kind),
// '.', parentheses, and identifiers (maximal runs of letters).
type Tokenizer struct {
	reader  *bufio.Reader
	source  *Source
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		reader: bufio.NewReader(strings.NewReader(source.Content)),
		source: source,
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.reader.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.next()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) next() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch r {
	case '\\', 'λ':
		return &Token{Kind: TokenLambda, Text: string(r), Pos: startPos}, nil
	case '.':
		return &Token{Kind: TokenDot, Text: ".", Pos: startPos}, nil
	case '(':
		return &Token{Kind: TokenLParen, Text: "(", Pos: startPos}, nil
	case ')':
		return &Token{Kind: TokenRParen, Text: ")", Pos: startPos}, nil
	}

	if unicode.IsLetter(r) {
		t.unreadRune()
		return t.readIdentifier(startPos)
	}

	return nil, WithPos(LexError{Pos: startPos, Rune: r}, startPos)
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) readIdentifier(startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) {
			t.unreadRune()
			break
		}
		if r == 'λ' {
			// the glyph counts as a letter in unicode but never as part of
			// an identifier here
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}
