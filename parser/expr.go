package parser

import (
	"go.creack.net/estel/ast"
	"go.creack.net/estel/lexer"
)

type expectation int

const (
	expectOperand expectation = iota
	expectOperator
)

func (e expectation) errorKind() ExprErrorKind {
	if e == expectOperand {
		return ExpectedOperand
	}
	return ExpectedOperator
}

func precedence(tt lexer.TokenType) bindingPower {
	if info, ok := binaryLookupTable[tt]; ok {
		return info.bp
	}
	return bpDefault
}

// shuntingYard holds the two stacks of the expression parser.
type shuntingYard struct {
	operands  []ast.Expr
	operators []lexer.Token
}

func (s *shuntingYard) top() (lexer.Token, bool) {
	if len(s.operators) == 0 {
		return lexer.Token{}, false
	}
	return s.operators[len(s.operators)-1], true
}

func (s *shuntingYard) popOperand() ast.Expr {
	e := s.operands[len(s.operands)-1]
	s.operands = s.operands[:len(s.operands)-1]
	return e
}

// reduce pops the top operator and applies it to the most recent operands.
func (s *shuntingYard) reduce() {
	top := s.operators[len(s.operators)-1]
	s.operators = s.operators[:len(s.operators)-1]

	if op, ok := unaryLookupTable[top.Type]; ok {
		s.operands = append(s.operands, &ast.Unary{Op: op, Operand: s.popOperand()})
		return
	}
	right := s.popOperand()
	left := s.popOperand()
	s.operands = append(s.operands, &ast.Binary{
		Op:    binaryLookupTable[top.Type].op,
		Left:  left,
		Right: right,
	})
}

// closeParen reduces up to the nearest '(' and discards it.
// Returns false when there is no open parenthesis.
func (s *shuntingYard) closeParen() bool {
	for {
		top, ok := s.top()
		if !ok {
			return false
		}
		if top.Type == lexer.TokParenLeft {
			s.operators = s.operators[:len(s.operators)-1]
			return true
		}
		s.reduce()
	}
}

// parseExpr builds an expression from a token run with the shunting-yard
// algorithm. end is the token following the run, used to report an
// expression cut short. An empty run yields a nil expression and no error.
func parseExpr(tokens []lexer.Token, end lexer.Token) (ast.Expr, *ExprError) {
	if len(tokens) == 0 {
		return nil, nil
	}

	s := &shuntingYard{}
	expect := expectOperand
	for _, tok := range tokens {
		switch {
		case tok.Type.IsLiteral(), tok.Type == lexer.TokIdentifier:
			if expect == expectOperator {
				return nil, &ExprError{Kind: ExpectedOperator, Token: tok}
			}
			s.operands = append(s.operands, operand(tok))
			expect = expectOperator

		case tok.Type.IsBinaryOperator():
			if expect == expectOperand {
				return nil, &ExprError{Kind: ExpectedOperand, Token: tok}
			}
			// Pending unaries bind tighter than anything, equal precedence
			// reduces first for left associativity.
			bp := precedence(tok.Type)
			for top, ok := s.top(); ok; top, ok = s.top() {
				if !top.Type.IsUnaryOperator() && precedence(top.Type) < bp {
					break
				}
				s.reduce()
			}
			s.operators = append(s.operators, tok)
			expect = expectOperand

		case tok.Type.IsUnaryOperator(), tok.Type == lexer.TokParenLeft:
			if expect == expectOperator {
				return nil, &ExprError{Kind: ExpectedOperator, Token: tok}
			}
			s.operators = append(s.operators, tok)

		case tok.Type == lexer.TokParenRight:
			if expect == expectOperand {
				return nil, &ExprError{Kind: ExpectedOperand, Token: tok}
			}
			if !s.closeParen() {
				return nil, &ExprError{Kind: ExpectedOperator, Token: tok}
			}

		default:
			return nil, &ExprError{Kind: expect.errorKind(), Token: tok}
		}
	}

	if expect == expectOperand {
		return nil, &ExprError{Kind: ExpectedOperand, Token: end}
	}

	for top, ok := s.top(); ok; top, ok = s.top() {
		if top.Type == lexer.TokParenLeft {
			return nil, &ExprError{Kind: UnterminatedParen, Token: top}
		}
		s.reduce()
	}
	return s.operands[0], nil
}

func operand(tok lexer.Token) ast.Expr {
	if tok.Type == lexer.TokIdentifier {
		return &ast.Ident{Name: tok.Value}
	}
	return &ast.Literal{Value: tok.Literal}
}
