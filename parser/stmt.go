package parser

import (
	"go.creack.net/estel/ast"
	"go.creack.net/estel/lexer"
)

// Tokens ending a simple statement.
var stmtEnd = []lexer.TokenType{lexer.TokTerminator, lexer.TokEOF, lexer.TokBraceLeft, lexer.TokBraceRight}

// parseStmts parses statements until the end of input, or until the '}'
// matching open when open is set.
func (p *parser) parseStmts(open *lexer.Token) []ast.Stmt {
	var stmts []ast.Stmt
	for {
		p.skipTerminators()
		switch tok := p.cur(); tok.Type {
		case lexer.TokEOF:
			if open != nil {
				p.report(&StmtError{Kind: UnterminatedBlock, Token: *open})
			}
			return stmts
		case lexer.TokBraceRight:
			p.next()
			if open != nil {
				return stmts
			}
			p.report(&StmtError{Kind: UnexpectedBlockClose, Token: tok})
			p.skipLine()
		default:
			if stmt := p.parseStmt(); stmt != nil {
				stmts = append(stmts, stmt)
			}
		}
	}
}

// parseStmt parses one statement or block. Returns nil after reporting an error.
func (p *parser) parseStmt() ast.Stmt {
	switch tok := p.cur(); tok.Type {
	case lexer.TokBraceLeft:
		p.next()
		return &ast.BlockStmt{Start: tok.Pos(), Body: p.parseStmts(&tok)}
	case lexer.TokWhile:
		return p.parseWhile()
	}

	start := p.pos
	for !p.cur().Type.IsOneOf(stmtEnd...) {
		p.next()
	}
	stmt, err := parseSimpleStmt(p.tokens[start:p.pos], p.cur())
	if p.cur().Type == lexer.TokTerminator {
		p.next()
	}
	if err != nil {
		p.report(err)
		return nil
	}
	return stmt
}

func (p *parser) parseWhile() ast.Stmt {
	keyword := p.cur()
	p.next()

	paren := p.cur()
	if paren.Type != lexer.TokParenLeft {
		p.report(&StmtError{Kind: ExpectToken, Token: paren, Expected: lexer.TokParenLeft})
		p.synchronize()
		return nil
	}
	p.next()

	// The condition runs up to the matching ')'.
	start, depth := p.pos, 0
	for {
		tok := p.cur()
		if tok.Type.IsOneOf(stmtEnd...) {
			p.report(&StmtError{Kind: UnterminatedParenthesis, Token: paren})
			p.synchronize()
			return nil
		}
		if tok.Type == lexer.TokParenLeft {
			depth++
		} else if tok.Type == lexer.TokParenRight {
			if depth == 0 {
				break
			}
			depth--
		}
		p.next()
	}
	closing := p.cur()
	cond, exprErr := parseExpr(p.tokens[start:p.pos], closing)
	p.next()

	var condErr *StmtError
	switch {
	case exprErr != nil:
		condErr = invalidExpression(exprErr)
	case cond == nil:
		condErr = &StmtError{Kind: ExpectedExpression, Token: paren}
	}
	if condErr != nil {
		p.report(condErr)
	}

	// The body is still parsed on a bad condition so its own errors surface.
	body := p.parseBody(keyword)
	if condErr != nil {
		return nil
	}
	return &ast.While{Start: keyword.Pos(), Cond: cond, Body: body}
}

// parseBody parses a loop body: a block, or a single statement.
// A terminator right after the condition leaves the body empty, unless
// the next token past the terminators is a '{'.
func (p *parser) parseBody(keyword lexer.Token) []ast.Stmt {
	if p.cur().Type == lexer.TokTerminator {
		if p.peekPastTerminators().Type != lexer.TokBraceLeft {
			return nil
		}
		p.skipTerminators()
	}
	switch tok := p.cur(); tok.Type {
	case lexer.TokBraceLeft:
		p.next()
		return p.parseStmts(&tok)
	case lexer.TokEOF, lexer.TokBraceRight:
		p.report(&StmtError{Kind: IncompleteStatement, Token: keyword})
		return nil
	}
	if stmt := p.parseStmt(); stmt != nil {
		return []ast.Stmt{stmt}
	}
	return nil
}

// parseSimpleStmt builds a non-block statement from its tokens.
// end is the token that stopped the statement.
func parseSimpleStmt(tokens []lexer.Token, end lexer.Token) (ast.Stmt, *StmtError) {
	first := tokens[0]
	switch {
	case first.Type == lexer.TokLet:
		return parseLet(tokens, end)

	case first.Type == lexer.TokPrint:
		expr, err := requireExpr(tokens[1:], end)
		if err != nil {
			return nil, err
		}
		return &ast.Print{Start: first.Pos(), Expr: expr}, nil

	case first.Type == lexer.TokIdentifier && len(tokens) > 1 && tokens[1].Type == lexer.TokAssign:
		expr, err := requireExpr(tokens[2:], end)
		if err != nil {
			return nil, err
		}
		return &ast.Reassign{Start: first.Pos(), Name: first.Value, Expr: expr}, nil

	case first.Type == lexer.TokIdentifier,
		first.Type == lexer.TokParenLeft,
		first.Type.IsLiteral(),
		first.Type.IsUnaryOperator():
		expr, err := requireExpr(tokens, end)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Start: first.Pos(), Expr: expr}, nil

	default:
		return nil, &StmtError{Kind: InvalidStartToken, Token: first}
	}
}

func parseLet(tokens []lexer.Token, end lexer.Token) (ast.Stmt, *StmtError) {
	if len(tokens) < 3 {
		return nil, &StmtError{Kind: IncompleteStatement, Token: tokens[0]}
	}
	if tokens[1].Type != lexer.TokIdentifier {
		return nil, &StmtError{Kind: ExpectToken, Token: tokens[1], Expected: lexer.TokIdentifier}
	}
	if tokens[2].Type != lexer.TokAssign {
		return nil, &StmtError{Kind: ExpectToken, Token: tokens[2], Expected: lexer.TokAssign}
	}
	expr, err := requireExpr(tokens[3:], end)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Start: tokens[0].Pos(), Name: tokens[1].Value, Expr: expr}, nil
}

// requireExpr parses a mandatory expression.
func requireExpr(tokens []lexer.Token, end lexer.Token) (ast.Expr, *StmtError) {
	expr, err := parseExpr(tokens, end)
	if err != nil {
		return nil, invalidExpression(err)
	}
	if expr == nil {
		return nil, &StmtError{Kind: ExpectedExpression, Token: end}
	}
	return expr, nil
}

func invalidExpression(err *ExprError) *StmtError {
	return &StmtError{Kind: InvalidExpression, Token: err.Token, Expr: err}
}
