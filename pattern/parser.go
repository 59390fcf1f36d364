package pattern

import (
	"strconv"
	"strings"
)

// Parser is a recursive descent parser for STIX pattern expressions. It
// parses a token stream into a Pattern AST.
//
// The parser implements the following operator precedence inside an
// observation expression (highest to lowest):
//
//	1. NOT (unary prefix operator)
//	2. AND (binary infix operator)
//	3. OR  (binary infix operator)
//
// Binary operators are left-associative: "a AND b AND c" parses as
// "(a AND b) AND c". Parentheses override precedence. A full pattern is one
// or more bracketed observation expressions joined by FOLLOWEDBY, optionally
// followed by a single qualifier.
//
// Example usage:
//
//	p, err := pattern.Parse("[file:name = 'malware.exe' AND file:size > 1000]")
//	if err != nil {
//	    var parseErr *pattern.ParseError
//	    if errors.As(err, &parseErr) { ... }
//	}
type Parser struct {
	tokens   []Token
	position int
}

// Parse tokenizes and parses a complete pattern expression. It returns a
// *LexError for lexical failures and a *ParseError for syntax failures,
// including trailing tokens after a complete pattern.
func Parse(input string) (*Pattern, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Position: 0, Expected: "'[' opening an observation expression", Found: "empty pattern"}
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: tokens}
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, newParseError(p.peek(), "end of pattern")
	}
	return pat, nil
}

// parsePattern handles the top-level form:
// pattern := observation ( "FOLLOWEDBY" observation )* qualifier?
func (p *Parser) parsePattern() (*Pattern, error) {
	pat := &Pattern{}

	obs, err := p.parseObservation()
	if err != nil {
		return nil, err
	}
	pat.Observations = append(pat.Observations, obs)

	for p.peek().Type == TokenFollowedBy {
		p.consume()
		obs, err := p.parseObservation()
		if err != nil {
			return nil, err
		}
		pat.Observations = append(pat.Observations, obs)
	}

	switch p.peek().Type {
	case TokenWithin, TokenRepeats, TokenStartStop:
		q, err := p.parseQualifier()
		if err != nil {
			return nil, err
		}
		pat.Qualifier = q
	}

	return pat, nil
}

// parseObservation handles one bracketed observation expression:
// observation := "[" or_expr "]"
func (p *Parser) parseObservation() (Expression, error) {
	open := p.peek()
	if open.Type != TokenLBracket {
		return nil, newParseError(open, "'[' opening an observation expression")
	}
	p.consume()

	expr, err := p.parseOrExpression()
	if err != nil {
		return nil, err
	}

	if p.peek().Type != TokenRBracket {
		return nil, newParseError(p.peek(), "']' closing the observation expression")
	}
	p.consume()
	return expr, nil
}

// parseOrExpression handles OR operators (lowest precedence).
// Grammar: or_expr := and_expr ( "OR" and_expr )*
func (p *Parser) parseOrExpression() (Expression, error) {
	left, err := p.parseAndExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenOR {
		p.consume()
		right, err := p.parseAndExpression()
		if err != nil {
			return nil, err
		}
		left = &Combination{Operator: BoolOR, Left: left, Right: right}
	}
	return left, nil
}

// parseAndExpression handles AND operators (middle precedence).
// Grammar: and_expr := not_expr ( "AND" not_expr )*
func (p *Parser) parseAndExpression() (Expression, error) {
	left, err := p.parseNotExpression()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenAND {
		p.consume()
		right, err := p.parseNotExpression()
		if err != nil {
			return nil, err
		}
		left = &Combination{Operator: BoolAND, Left: left, Right: right}
	}
	return left, nil
}

// parseNotExpression handles the NOT prefix operator (highest precedence).
// Grammar: not_expr := "NOT" not_expr | primary_expr
func (p *Parser) parseNotExpression() (Expression, error) {
	if p.peek().Type == TokenNOT {
		p.consume()
		child, err := p.parseNotExpression()
		if err != nil {
			return nil, err
		}
		return &Negation{Child: child}, nil
	}
	return p.parsePrimaryExpression()
}

// parsePrimaryExpression handles parenthesized groups and comparisons.
// Grammar: primary_expr := "(" or_expr ")" | comparison
func (p *Parser) parsePrimaryExpression() (Expression, error) {
	current := p.peek()

	switch current.Type {
	case TokenLParen:
		p.consume()
		expr, err := p.parseOrExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TokenRParen {
			return nil, newParseError(p.peek(), "')' closing the group")
		}
		p.consume()
		return expr, nil

	case TokenObjectPath:
		return p.parseComparison()

	default:
		return nil, newParseError(current, "object path or '('")
	}
}

// parseComparison handles one comparison:
// comparison := OBJECT_PATH OPERATOR literal
func (p *Parser) parseComparison() (Expression, error) {
	pathToken := p.consume()
	colon := strings.Index(pathToken.Value, ":")
	objectType := pathToken.Value[:colon]
	path := pathToken.Value[colon+1:]

	opToken := p.peek()
	if opToken.Type != TokenOperator {
		return nil, newParseError(opToken, "comparison operator")
	}
	p.consume()
	op := ComparisonOperator(strings.ToUpper(opToken.Value))

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &Comparison{ObjectType: objectType, Path: path, Operator: op, Value: value}, nil
}

// parseLiteral handles scalar and list literals.
// Grammar: literal := STRING | NUMBER | BOOL | TIMESTAMP | "(" literal ("," literal)* ")"
func (p *Parser) parseLiteral() (Literal, error) {
	current := p.peek()

	switch current.Type {
	case TokenString:
		p.consume()
		return StringLiteral{Value: unquoteString(current.Value)}, nil

	case TokenNumber:
		p.consume()
		if strings.Contains(current.Value, ".") {
			f, err := strconv.ParseFloat(current.Value, 64)
			if err != nil {
				return nil, newParseError(current, "valid float literal")
			}
			return FloatLiteral{Value: f}, nil
		}
		n, err := strconv.ParseInt(current.Value, 10, 64)
		if err != nil {
			return nil, newParseError(current, "valid integer literal")
		}
		return IntLiteral{Value: n}, nil

	case TokenBool:
		p.consume()
		return BoolLiteral{Value: strings.EqualFold(current.Value, "true")}, nil

	case TokenTimestamp:
		p.consume()
		return TimestampLiteral{Value: unquoteString(current.Value[1:])}, nil

	case TokenLParen:
		return p.parseListLiteral()

	default:
		return nil, newParseError(current, "literal value")
	}
}

// parseListLiteral handles a parenthesized literal list, as used by IN and
// hash-set comparisons. An unterminated list is reported at the offending
// token rather than silently accepted.
func (p *Parser) parseListLiteral() (Literal, error) {
	p.consume() // opening paren

	var values []Literal
	for {
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		switch p.peek().Type {
		case TokenComma:
			p.consume()
		case TokenRParen:
			p.consume()
			return ListLiteral{Values: values}, nil
		default:
			return nil, newParseError(p.peek(), "',' or ')' in list literal")
		}
	}
}

// parseQualifier handles the optional trailing qualifier:
// qualifier := "WITHIN" INT "SECONDS" | "REPEATS" INT "TIMES" | "STARTSTOP" TIMESTAMP "WITH" TIMESTAMP
func (p *Parser) parseQualifier() (Qualifier, error) {
	start := p.consume()

	switch start.Type {
	case TokenWithin:
		n, err := p.parsePositiveInt("integer number of seconds")
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TokenSeconds {
			return nil, newParseError(p.peek(), "SECONDS")
		}
		p.consume()
		return WithinQualifier{Seconds: n}, nil

	case TokenRepeats:
		n, err := p.parsePositiveInt("integer repeat count")
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TokenTimes {
			return nil, newParseError(p.peek(), "TIMES")
		}
		p.consume()
		return RepeatsQualifier{Times: n}, nil

	case TokenStartStop:
		startTok := p.peek()
		if startTok.Type != TokenTimestamp {
			return nil, newParseError(startTok, "timestamp literal")
		}
		p.consume()
		if p.peek().Type != TokenWith {
			return nil, newParseError(p.peek(), "WITH")
		}
		p.consume()
		stopTok := p.peek()
		if stopTok.Type != TokenTimestamp {
			return nil, newParseError(stopTok, "timestamp literal")
		}
		p.consume()
		return StartStopQualifier{
			Start: unquoteString(startTok.Value[1:]),
			Stop:  unquoteString(stopTok.Value[1:]),
		}, nil

	default:
		return nil, newParseError(start, "qualifier keyword")
	}
}

// parsePositiveInt consumes a strictly positive integer token.
func (p *Parser) parsePositiveInt(expected string) (int64, error) {
	tok := p.peek()
	if tok.Type != TokenNumber || strings.Contains(tok.Value, ".") {
		return 0, newParseError(tok, expected)
	}
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil || n <= 0 {
		return 0, newParseError(tok, "positive "+expected)
	}
	p.consume()
	return n, nil
}

// Helper methods for parser navigation.

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.position >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1]
		}
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.position]
}

// consume advances past the current token and returns it.
func (p *Parser) consume() Token {
	tok := p.peek()
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

// isAtEnd reports whether all tokens have been consumed.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenEOF
}
