package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"go.creack.net/estel/value"
)

type stateFn func(*Lexer) stateFn

const (
	digits     = "0123456789"
	delimiters = " \t\r\n;(){}+-*/%=><!"
)

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'*': TokStar,
	'/': TokSlash,
	'%': TokPercent,
	'(': TokParenLeft,
	')': TokParenRight,
	'{': TokBraceLeft,
	'}': TokBraceRight,
}

var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentifierRune(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

// isDelimiter reports whether r may directly follow a number or a word.
func isDelimiter(r rune) bool { return r == eof || strings.ContainsRune(delimiters, r) }

func lexText(l *Lexer) stateFn {
	switch r := l.next(); {
	case r == eof:
		return l.emit(TokEOF)
	case isSpace(r):
		l.acceptRun(" \t\r")
		l.ignore()
		return lexText
	case r == '\n', r == ';':
		// Consecutive terminators collapse into one.
		if l.prev == TokTerminator {
			l.ignore()
			return lexText
		}
		return l.emit(TokTerminator)
	case r == '"', r == '\'':
		return lexString(r)
	case isDigit(r):
		return lexNumber
	case unicode.IsLetter(r):
		return lexIdentifier
	case r == '-':
		if l.prev.endsOperand() {
			return l.emit(TokMinus)
		}
		return l.emit(TokNegate)
	case r == '>':
		return l.emitWithEqual(TokGreaterEqual, TokGreater)
	case r == '<':
		return l.emitWithEqual(TokLessEqual, TokLess)
	case r == '=':
		return l.emitWithEqual(TokEqual, TokAssign)
	case r == '!':
		return l.emitWithEqual(TokNotEqual, TokNot)
	default:
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.fail(InvalidToken)
	}
}

// emitWithEqual emits withEqual if the next rune is '=', alone otherwise.
func (l *Lexer) emitWithEqual(withEqual, alone TokenType) stateFn {
	if l.accept("=") {
		return l.emit(withEqual)
	}
	return l.emit(alone)
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	tt := TokNumber
	if l.accept(".") {
		tt = TokFloat
		l.acceptRun(digits)
		if l.peek() == '.' {
			return l.fail(InvalidToken)
		}
	}
	if !isDelimiter(l.peek()) {
		return l.fail(InvalidToken)
	}

	tok := l.thisToken(tt)
	if tt == TokFloat {
		f, err := strconv.ParseFloat(tok.Value, 32)
		if err != nil {
			return l.emitToken(invalid(tok))
		}
		tok.Literal = value.Float(float32(f))
	} else {
		n, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return l.emitToken(invalid(tok))
		}
		tok.Literal = value.Number(int32(n))
	}
	return l.emitToken(tok)
}

// invalid turns an out of range literal into an error token.
func invalid(tok Token) Token {
	tok.Type = TokError
	tok.Err = InvalidToken
	tok.Literal = value.Value{}
	return tok
}

func lexString(quote rune) stateFn {
	return func(l *Lexer) stateFn {
		var sb strings.Builder
		for {
			r := l.next()
			switch r {
			case eof:
				tok := l.thisToken(TokError)
				tok.Err = UnterminatedString
				return l.emitToken(tok)
			case quote:
				tok := l.thisToken(TokString)
				tok.Literal = value.String(sb.String())
				return l.emitToken(tok)
			case '\\':
				esc := l.next()
				if esc == eof {
					continue
				}
				if e, ok := escapes[esc]; ok {
					sb.WriteRune(e)
					continue
				}
				// Unknown escapes are kept verbatim.
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			default:
				sb.WriteRune(r)
			}
		}
	}
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptFunc(isIdentifierRune)
	if !isDelimiter(l.peek()) {
		return l.fail(InvalidToken)
	}
	word := l.input[l.start:l.pos]
	tt, ok := keywords[word]
	if !ok {
		return l.emit(TokIdentifier)
	}
	tok := l.thisToken(tt)
	if tt == TokBool {
		tok.Literal = value.Bool(word == "true")
	}
	return l.emitToken(tok)
}
