// Package lexer provides the lexical analyzer of the language.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

type Lexer struct {
	input string

	curToken Token
	prev     TokenType // Type of the last emitted token, TokEOF before the first one.

	pos         int // Current position in input.
	width       int // Width of the last rune read.
	line        int // Current line in input.
	col         int // Column of pos in the current line, in runes.
	prevLineLen int

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
	startCol  int // Column where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		prev:      TokEOF,
		line:      1,
		startLine: 1,
	}
}

// NextToken runs the state machine until one token is emitted.
// Once the input is exhausted, it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	state := lexText
	for state != nil {
		state = state(l)
	}
	l.prev = l.curToken.Type
	return l.curToken
}

// Lex tokenizes the whole input. The result always ends with a single TokEOF.
// Lexical errors are TokError tokens in the stream, see Errors.
func Lex(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.width = n
	if r == '\n' {
		l.line++
		l.prevLineLen = l.col
		l.col = 0
	} else {
		l.col++
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	l.width = 0
	if l.input[l.pos] == '\n' {
		l.line--
		l.col = l.prevLineLen
	} else {
		l.col--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptFunc(fn func(rune) bool) {
	for r := l.next(); r != eof && fn(r); r = l.next() {
	}
	l.backup()
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:   tt,
		Value:  l.input[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startCol,
	}
	l.ignore()
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
	l.startCol = l.col
}

// fail emits an error token covering the malformed run, skipping up to
// the next whitespace or newline so one bad run yields one error.
func (l *Lexer) fail(kind LexErrorKind) stateFn {
	l.acceptFunc(func(r rune) bool { return !isSpace(r) && r != '\n' })
	tok := l.thisToken(TokError)
	tok.Err = kind
	return l.emitToken(tok)
}
