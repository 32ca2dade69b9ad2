package lamlang

import (
	"fmt"
	"strings"
)

// LexError reports input the tokenizer cannot turn into a token: an empty
// expression, or a rune outside the grammar. Unrecognized runes are a hard
// error rather than being silently dropped, so typos do not vanish.
type LexError struct {
	Pos  Pos
	Rune rune
}

func (l LexError) Error() string {
	if l.Rune == 0 {
		return "empty expression"
	}
	return fmt.Sprintf("unexpected character %q", l.Rune)
}

// ParseError reports malformed syntax with what the parser expected and what
// it found instead.
type ParseError struct {
	Pos      Pos
	Expected string
	Found    string
}

func (p ParseError) Error() string {
	if p.Found == "" {
		return fmt.Sprintf("expected %s, got end of input", p.Expected)
	}
	return fmt.Sprintf("expected %s, got %q", p.Expected, p.Found)
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret under the offending column
		runes := []rune(line)
		col := p.Pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
