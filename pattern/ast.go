package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// ComparisonOperator is a comparison operator between an object path and a
// literal.
type ComparisonOperator string

const (
	OpEqual          ComparisonOperator = "="
	OpNotEqual       ComparisonOperator = "!="
	OpGreater        ComparisonOperator = ">"
	OpLess           ComparisonOperator = "<"
	OpGreaterOrEqual ComparisonOperator = ">="
	OpLessOrEqual    ComparisonOperator = "<="
	OpIn             ComparisonOperator = "IN"
	OpLike           ComparisonOperator = "LIKE"
	OpMatches        ComparisonOperator = "MATCHES"
	OpIsSubset       ComparisonOperator = "ISSUBSET"
	OpIsSuperset     ComparisonOperator = "ISSUPERSET"
)

// allComparisonOperators lists every operator the parser accepts.
var allComparisonOperators = []ComparisonOperator{
	OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual,
	OpIn, OpLike, OpMatches, OpIsSubset, OpIsSuperset,
}

// IsValid reports whether the operator is one the pattern language defines.
func (op ComparisonOperator) IsValid() bool {
	for _, valid := range allComparisonOperators {
		if op == valid {
			return true
		}
	}
	return false
}

// BooleanOperator combines two observation sub-expressions.
type BooleanOperator string

const (
	// BoolAND requires both sides to match the same observation
	BoolAND BooleanOperator = "AND"
	// BoolOR requires either side to match
	BoolOR BooleanOperator = "OR"
)

// precedence returns the binding strength of the operator; higher binds
// tighter. Used by the printer to decide where parentheses are required.
func (op BooleanOperator) precedence() int {
	if op == BoolAND {
		return 2
	}
	return 1
}

// Literal is a typed scalar or list literal on the right side of a
// comparison.
type Literal interface {
	// String renders the literal in canonical pattern syntax
	String() string
	isLiteral()
}

// StringLiteral is a single-quoted string value. Value holds the unescaped
// form; String re-applies quoting and escaping.
type StringLiteral struct{ Value string }

func (l StringLiteral) String() string { return quoteString(l.Value) }
func (l StringLiteral) isLiteral()     {}

// IntLiteral is an integer value.
type IntLiteral struct{ Value int64 }

func (l IntLiteral) String() string { return strconv.FormatInt(l.Value, 10) }
func (l IntLiteral) isLiteral()     {}

// FloatLiteral is a floating point value.
type FloatLiteral struct{ Value float64 }

func (l FloatLiteral) String() string {
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		// Keep the form re-lexable as a float so round-trips are stable.
		s += ".0"
	}
	return s
}
func (l FloatLiteral) isLiteral() {}

// BoolLiteral is a boolean value.
type BoolLiteral struct{ Value bool }

func (l BoolLiteral) String() string { return strconv.FormatBool(l.Value) }
func (l BoolLiteral) isLiteral()     {}

// TimestampLiteral is a t'...' timestamp value. Value holds the text between
// the quotes.
type TimestampLiteral struct{ Value string }

func (l TimestampLiteral) String() string { return "t" + quoteString(l.Value) }
func (l TimestampLiteral) isLiteral()     {}

// ListLiteral is a parenthesized, comma-separated set of literals, as used
// with the IN operator and hash-set comparisons.
type ListLiteral struct{ Values []Literal }

func (l ListLiteral) String() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (l ListLiteral) isLiteral() {}

// Expression is a node inside an observation expression.
type Expression interface {
	// String renders the node in canonical pattern syntax
	String() string
	isExpression()
}

// Comparison is a leaf node testing one object property against a literal.
type Comparison struct {
	// ObjectType is the observable type prefix, e.g. "file"
	ObjectType string
	// Path is the property path after the colon, e.g. "hashes.MD5"
	Path string
	// Operator is the comparison operator
	Operator ComparisonOperator
	// Value is the literal being compared against
	Value Literal
}

// String renders the comparison as "type:path OP literal".
func (c *Comparison) String() string {
	return fmt.Sprintf("%s:%s %s %s", c.ObjectType, c.Path, c.Operator, c.Value)
}
func (c *Comparison) isExpression() {}

// Combination is an AND/OR node over two sub-expressions.
type Combination struct {
	Operator BooleanOperator
	Left     Expression
	Right    Expression
}

// String renders the combination with the minimum parentheses needed for the
// output to re-parse into the same tree: a child is parenthesized when it is
// a combination that binds looser than this node, or (on the right side)
// equally loose, because the parser is left-associative.
func (c *Combination) String() string {
	return fmt.Sprintf("%s %s %s",
		c.renderChild(c.Left, false), c.Operator, c.renderChild(c.Right, true))
}

func (c *Combination) renderChild(child Expression, right bool) string {
	comb, ok := child.(*Combination)
	if !ok {
		return child.String()
	}
	childPrec, parentPrec := comb.Operator.precedence(), c.Operator.precedence()
	if childPrec < parentPrec || (right && childPrec == parentPrec) {
		return "(" + comb.String() + ")"
	}
	return comb.String()
}
func (c *Combination) isExpression() {}

// Negation is a NOT node over one sub-expression.
type Negation struct {
	Child Expression
}

// String renders the negation, parenthesizing combination children since NOT
// binds tighter than AND and OR.
func (n *Negation) String() string {
	if _, ok := n.Child.(*Combination); ok {
		return "NOT (" + n.Child.String() + ")"
	}
	return "NOT " + n.Child.String()
}
func (n *Negation) isExpression() {}

// Qualifier is a temporal or repetition modifier applied to the whole
// pattern.
type Qualifier interface {
	// String renders the qualifier in canonical pattern syntax
	String() string
	isQualifier()
}

// WithinQualifier is "WITHIN n SECONDS".
type WithinQualifier struct{ Seconds int64 }

func (q WithinQualifier) String() string {
	return fmt.Sprintf("WITHIN %d SECONDS", q.Seconds)
}
func (q WithinQualifier) isQualifier() {}

// RepeatsQualifier is "REPEATS n TIMES".
type RepeatsQualifier struct{ Times int64 }

func (q RepeatsQualifier) String() string {
	return fmt.Sprintf("REPEATS %d TIMES", q.Times)
}
func (q RepeatsQualifier) isQualifier() {}

// StartStopQualifier is "STARTSTOP t'start' WITH t'stop'".
type StartStopQualifier struct {
	Start string
	Stop  string
}

func (q StartStopQualifier) String() string {
	return fmt.Sprintf("STARTSTOP t%s WITH t%s", quoteString(q.Start), quoteString(q.Stop))
}
func (q StartStopQualifier) isQualifier() {}

// Pattern is a complete parsed pattern: one or more observation expressions
// joined by FOLLOWEDBY, plus an optional trailing qualifier.
type Pattern struct {
	// Observations holds each bracketed observation expression in order
	Observations []Expression
	// Qualifier is the optional trailing qualifier, nil if absent
	Qualifier Qualifier
}

// String renders the pattern in canonical form: each observation expression
// in square brackets, FOLLOWEDBY between observations, the qualifier last.
// The output always re-parses to a Pattern structurally equal to p.
func (p *Pattern) String() string {
	var b strings.Builder
	for i, obs := range p.Observations {
		if i > 0 {
			b.WriteString(" FOLLOWEDBY ")
		}
		b.WriteByte('[')
		b.WriteString(obs.String())
		b.WriteByte(']')
	}
	if p.Qualifier != nil {
		b.WriteByte(' ')
		b.WriteString(p.Qualifier.String())
	}
	return b.String()
}

// Walk calls fn for every comparison node in the pattern, in print order.
func (p *Pattern) Walk(fn func(*Comparison)) {
	for _, obs := range p.Observations {
		walkExpression(obs, fn)
	}
}

func walkExpression(e Expression, fn func(*Comparison)) {
	switch node := e.(type) {
	case *Comparison:
		fn(node)
	case *Combination:
		walkExpression(node.Left, fn)
		walkExpression(node.Right, fn)
	case *Negation:
		walkExpression(node.Child, fn)
	}
}
