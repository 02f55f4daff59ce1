// Package parser turns a token stream into a syntax tree, collecting as
// many syntax errors as possible in one pass.
package parser

import (
	"slices"

	"go.creack.net/estel/ast"
	"go.creack.net/estel/lexer"
)

type parser struct {
	tokens []lexer.Token // Always ends with TokEOF.
	pos    int

	errs StmtErrors
}

func newParser(tokens []lexer.Token) *parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != lexer.TokEOF {
		eof := lexer.Token{Type: lexer.TokEOF, Line: 1}
		if n > 0 {
			eof.Line, eof.Column = tokens[n-1].Line, tokens[n-1].Column+len([]rune(tokens[n-1].Value))
		}
		tokens = append(slices.Clip(tokens), eof)
	}
	return &parser{tokens: tokens}
}

// Parse builds the block of the given token stream.
// On failure, the error is a StmtErrors and the block is empty.
func Parse(tokens []lexer.Token) (ast.Block, error) {
	p := newParser(tokens)
	stmts := p.parseStmts(nil)
	if len(p.errs) > 0 {
		return ast.Block{}, p.errs
	}
	return ast.Block{Stmts: stmts}, nil
}

// ParseString lexes and parses src. Lexical errors are returned as a
// lexer.ErrorList before any parsing happens.
func ParseString(src string) (ast.Block, error) {
	tokens := lexer.Lex(src)
	if errs := lexer.Errors(tokens); len(errs) > 0 {
		return ast.Block{}, lexer.ErrorList(errs)
	}
	return Parse(tokens)
}

func (p *parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

// next advances the cursor. It never moves past TokEOF.
func (p *parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) report(err *StmtError) {
	p.errs = append(p.errs, err)
}

func (p *parser) skipTerminators() {
	for p.cur().Type == lexer.TokTerminator {
		p.next()
	}
}

// peekPastTerminators returns the first token after the current run of
// terminators, without moving the cursor.
func (p *parser) peekPastTerminators() lexer.Token {
	i := p.pos
	for p.tokens[i].Type == lexer.TokTerminator {
		i++
	}
	return p.tokens[i]
}

// skipLine discards tokens up to and including the next terminator,
// braces included.
func (p *parser) skipLine() {
	for !p.cur().Type.IsOneOf(lexer.TokTerminator, lexer.TokEOF) {
		p.next()
	}
	if p.cur().Type == lexer.TokTerminator {
		p.next()
	}
}

// synchronize discards tokens up to and including the next terminator.
// Braces are left in place so block nesting stays balanced.
func (p *parser) synchronize() {
	for !p.cur().Type.IsOneOf(lexer.TokTerminator, lexer.TokEOF, lexer.TokBraceLeft, lexer.TokBraceRight) {
		p.next()
	}
	if p.cur().Type == lexer.TokTerminator {
		p.next()
	}
}
