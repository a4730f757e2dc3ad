package eval

import (
	"fmt"
	"strconv"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// parser is a Pratt parser over the token stream. It accumulates errors
// instead of stopping, but parse() reports only the first one.
type parser struct {
	lex *lexer

	curToken  Token
	peekToken Token

	errs []string

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(input string) *parser {
	p := &parser{lex: newLexer(input)}

	p.prefixFns = map[TokenType]prefixParseFn{
		tokenIdent:    p.parseIdentifier,
		tokenInt:      p.parseIntLiteral,
		tokenFloat:    p.parseFloatLiteral,
		tokenString:   p.parseStringLiteral,
		tokenTrue:     p.parseBoolLiteral,
		tokenFalse:    p.parseBoolLiteral,
		tokenBang:     p.parsePrefixExpression,
		tokenMinus:    p.parsePrefixExpression,
		tokenPlus:     p.parsePrefixExpression,
		tokenLParen:   p.parseGroupedExpression,
		tokenLBracket: p.parseArrayLiteral,
		tokenLBrace:   p.parseObjectLiteral,
		tokenPipe:     p.parseLambdaLiteral,
	}

	p.infixFns = map[TokenType]infixParseFn{
		tokenPlus:     p.parseInfixExpression,
		tokenMinus:    p.parseInfixExpression,
		tokenAsterisk: p.parseInfixExpression,
		tokenSlash:    p.parseInfixExpression,
		tokenPercent:  p.parseInfixExpression,
		tokenPower:    p.parseInfixExpression,
		tokenAt:       p.parseInfixExpression,
		tokenLT:       p.parseInfixExpression,
		tokenGT:       p.parseInfixExpression,
		tokenLTE:      p.parseInfixExpression,
		tokenGTE:      p.parseInfixExpression,
		tokenEQ:       p.parseInfixExpression,
		tokenNotEQ:    p.parseInfixExpression,
		tokenQuestion: p.parseConditionalExpression,
		tokenLParen:   p.parseCallExpression,
		tokenLBracket: p.parseSubscriptExpression,
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// parse consumes the whole input as a single expression.
func (p *parser) parse() (Expression, error) {
	if p.curToken.Type == tokenEOF {
		return nil, NewError("empty expression")
	}

	expr := p.parseExpression(lowestPrec)
	if len(p.errs) > 0 {
		return nil, NewError(p.errs[0])
	}
	if p.peekToken.Type != tokenEOF {
		return nil, NewErrorf("%d:%d: unexpected %s after expression",
			p.peekToken.Pos.Line, p.peekToken.Pos.Column, tokenDescription(p.peekToken))
	}
	return expr, nil
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *parser) curPrecedence() int {
	return precedences[p.curToken.Type]
}

func (p *parser) peekPrecedence() int {
	return precedences[p.peekToken.Type]
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type != tt {
		p.errorAt(p.peekToken.Pos, "expected %q, got %s", tt, tokenDescription(p.peekToken))
		return false
	}
	p.nextToken()
	return true
}

func (p *parser) errorf(format string, args ...any) {
	p.errorAt(p.curToken.Pos, format, args...)
}

func (p *parser) errorAt(pos Position, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errs = append(p.errs, fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, msg))
}

func tokenDescription(tok Token) string {
	if tok.Type == tokenEOF {
		return "end of expression"
	}
	return strconv.Quote(tok.Literal)
}

func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("unexpected %s", tokenDescription(p.curToken))
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *parser) parseIdentifier() Expression {
	return &IdentifierExpr{Name: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *parser) parseIntLiteral() Expression {
	n, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", p.curToken.Literal)
		return nil
	}
	return &LiteralExpr{Value: NewInt(n), position: p.curToken.Pos}
}

func (p *parser) parseFloatLiteral() Expression {
	f, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf("invalid float literal %q", p.curToken.Literal)
		return nil
	}
	return &LiteralExpr{Value: NewFloat(f), position: p.curToken.Pos}
}

func (p *parser) parseStringLiteral() Expression {
	return &LiteralExpr{Value: NewString(p.curToken.Literal), position: p.curToken.Pos}
}

func (p *parser) parseBoolLiteral() Expression {
	return &LiteralExpr{
		Value:    NewBool(p.curToken.Type == tokenTrue),
		position: p.curToken.Pos,
	}
}

func (p *parser) parsePrefixExpression() Expression {
	op := p.curToken.Literal
	pos := p.curToken.Pos

	p.nextToken()
	arg := p.parseExpression(precPrefix)
	if arg == nil {
		return nil
	}
	return &UnaryExpr{Op: op, Arg: arg, position: pos}
}

func (p *parser) parseInfixExpression(left Expression) Expression {
	op := p.curToken.Literal
	pos := p.curToken.Pos

	prec := p.curPrecedence()
	if p.curToken.Type == tokenPower {
		prec-- // ** is right-associative
	}

	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &BinaryExpr{Op: op, Left: left, Right: right, position: pos}
}

func (p *parser) parseConditionalExpression(cond Expression) Expression {
	pos := p.curToken.Pos

	p.nextToken()
	then := p.parseExpression(lowestPrec)
	if then == nil {
		return nil
	}
	if !p.expectPeek(tokenColon) {
		return nil
	}

	p.nextToken()
	// Parsing the else branch below the ternary's own precedence makes
	// `a ? b : c ? d : e` group to the right.
	els := p.parseExpression(precTernary - 1)
	if els == nil {
		return nil
	}
	return &ConditionalExpr{Cond: cond, Then: then, Else: els, position: pos}
}

func (p *parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseArrayLiteral() Expression {
	pos := p.curToken.Pos
	elements := p.parseExpressionList(tokenRBracket)
	if elements == nil {
		return nil
	}
	return &ArrayExpr{Elements: elements, position: pos}
}

func (p *parser) parseObjectLiteral() Expression {
	pos := p.curToken.Pos
	entries := []ObjectEntry{}

	for p.peekToken.Type != tokenRBrace {
		p.nextToken()
		if p.curToken.Type != tokenIdent && p.curToken.Type != tokenString {
			p.errorf("expected an object key, got %s", tokenDescription(p.curToken))
			return nil
		}
		key := p.curToken.Literal

		if !p.expectPeek(tokenColon) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(lowestPrec)
		if value == nil {
			return nil
		}
		entries = append(entries, ObjectEntry{Key: key, Value: value})

		if p.peekToken.Type != tokenComma {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(tokenRBrace) {
		return nil
	}
	return &ObjectExpr{Entries: entries, position: pos}
}

func (p *parser) parseLambdaLiteral() Expression {
	pos := p.curToken.Pos

	var params []string
	if p.peekToken.Type != tokenPipe {
		if !p.expectPeek(tokenIdent) {
			return nil
		}
		params = append(params, p.curToken.Literal)
		for p.peekToken.Type == tokenComma {
			p.nextToken()
			if !p.expectPeek(tokenIdent) {
				return nil
			}
			params = append(params, p.curToken.Literal)
		}
	}
	if !p.expectPeek(tokenPipe) {
		return nil
	}

	p.nextToken()
	body := p.parseExpression(lowestPrec)
	if body == nil {
		return nil
	}
	return &LambdaExpr{Params: params, Body: body, position: pos}
}

func (p *parser) parseCallExpression(left Expression) Expression {
	ident, ok := left.(*IdentifierExpr)
	if !ok {
		p.errorf("expected a function name before the argument list")
		return nil
	}
	args := p.parseExpressionList(tokenRParen)
	if args == nil {
		return nil
	}
	return &CallExpr{Name: ident.Name, Args: args, position: ident.Pos()}
}

func (p *parser) parseSubscriptExpression(left Expression) Expression {
	pos := p.curToken.Pos

	p.nextToken()
	index := p.parseExpression(lowestPrec)
	if index == nil {
		return nil
	}
	if !p.expectPeek(tokenRBracket) {
		return nil
	}
	return &SubscriptExpr{Object: left, Index: index, position: pos}
}

// parseExpressionList consumes a comma-separated list up to the given closing
// token. The current token must be the opening delimiter. Returns a non-nil
// (possibly empty) slice on success and nil on a parse error.
func (p *parser) parseExpressionList(end TokenType) []Expression {
	list := []Expression{}

	if p.peekToken.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	list = append(list, expr)

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		expr := p.parseExpression(lowestPrec)
		if expr == nil {
			return nil
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
