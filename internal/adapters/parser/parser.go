// Package parser turns command lines into pipeline descriptions.
package parser

import (
	"errors"
	"strings"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/anmitsu/go-shlex"
)

// Parse error messages, as stored in domain.Pipeline.Err.
const (
	MsgUnterminatedQuote = "unterminated quote"
	MsgTrailingBackslash = "trailing backslash"
	MsgEmptyStage        = "empty command in pipeline"
	MsgMissingCommand    = "missing command"
	MsgMissingTarget     = "missing file for redirection"
	MsgDuplicateInput    = "duplicate input redirection"
	MsgDuplicateOutput   = "duplicate output redirection"
	MsgInputNotFirst     = "input redirection only allowed on the first command"
	MsgOutputNotLast     = "output redirection only allowed on the last command"
	MsgBackgroundNotLast = "& must end the line"
)

const operators = "|<>&"

type token struct {
	text string
	op   bool
}

// Parser implements ports.Parser.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse splits line into stages and redirections. It never fails; syntax errors
// are stored in the returned pipeline's Err field.
func (p *Parser) Parse(line string) *domain.Pipeline {
	tokens, err := tokenize(line)
	if err != nil {
		return &domain.Pipeline{Err: err.Error()}
	}
	return build(tokens)
}

// tokenize splits line at operators that appear outside quotes and hands the
// text between them to shlex for word splitting.
func tokenize(line string) ([]token, error) {
	var tokens []token
	var chunk strings.Builder

	flush := func() error {
		words, err := shlex.Split(chunk.String(), true)
		chunk.Reset()
		if err != nil {
			return splitError(err)
		}
		for _, w := range words {
			tokens = append(tokens, token{text: w})
		}
		return nil
	}

	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case strings.ContainsRune(operators, r):
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, token{text: string(r), op: true})
			continue
		}
		chunk.WriteRune(r)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func splitError(err error) error {
	if errors.Is(err, shlex.ErrNoEscaped) {
		return errors.New(MsgTrailingBackslash)
	}
	return errors.New(MsgUnterminatedQuote)
}

// build applies the pipeline grammar to the token stream.
func build(tokens []token) *domain.Pipeline {
	p := &domain.Pipeline{}
	stages := [][]string{nil}
	inputStage, outputStage := -1, -1
	var pending string

	fail := func(msg string) *domain.Pipeline {
		return &domain.Pipeline{Err: msg}
	}

	for i, tok := range tokens {
		cur := len(stages) - 1

		if !tok.op {
			switch pending {
			case "<":
				p.Input, inputStage = tok.text, cur
			case ">":
				p.Output, outputStage = tok.text, cur
			default:
				stages[cur] = append(stages[cur], tok.text)
			}
			pending = ""
			continue
		}

		if pending != "" {
			return fail(MsgMissingTarget)
		}

		switch tok.text {
		case "|":
			if len(stages[cur]) == 0 {
				return fail(MsgEmptyStage)
			}
			stages = append(stages, nil)
		case "<":
			if inputStage >= 0 {
				return fail(MsgDuplicateInput)
			}
			pending = tok.text
		case ">":
			if outputStage >= 0 {
				return fail(MsgDuplicateOutput)
			}
			pending = tok.text
		case "&":
			if i != len(tokens)-1 {
				return fail(MsgBackgroundNotLast)
			}
			p.Background = true
		}
	}

	if pending != "" {
		return fail(MsgMissingTarget)
	}

	last := len(stages) - 1
	if len(stages[last]) == 0 {
		switch {
		case last > 0:
			return fail(MsgEmptyStage)
		case p.Input != "" || p.Output != "" || p.Background:
			return fail(MsgMissingCommand)
		default:
			return &domain.Pipeline{}
		}
	}

	if inputStage > 0 {
		return fail(MsgInputNotFirst)
	}
	if outputStage >= 0 && outputStage != last {
		return fail(MsgOutputNotLast)
	}

	p.Seq = make([]domain.Command, len(stages))
	for i, words := range stages {
		p.Seq[i] = domain.Command(words)
	}
	return p
}
