package pattern

import "fmt"

// Builder constructs a Pattern incrementally. It is purely additive: there is
// no removal, and Build never fails for a well-formed call sequence. The
// resulting AST is identical to parsing the printed form of the same
// expression, so built and parsed patterns compare equal.
//
// Example:
//
//	pat, err := pattern.NewBuilder().
//	    Compare("file", "name", pattern.OpEqual, pattern.Str("malware.exe")).
//	    And().
//	    Compare("file", "size", pattern.OpGreater, pattern.Int(1000)).
//	    Build()
//	// pat.String() == "[file:name = 'malware.exe' AND file:size > 1000]"
type Builder struct {
	observations [][]builderTerm
	pendingOp    *BooleanOperator
	pendingNot   bool
	qualifier    Qualifier
	err          error
}

type builderTerm struct {
	op   BooleanOperator // combinator linking this term to the previous one
	expr Expression
}

// NewBuilder returns an empty pattern builder.
func NewBuilder() *Builder {
	return &Builder{observations: make([][]builderTerm, 1)}
}

// Str wraps a string value as a pattern literal.
func Str(v string) Literal { return StringLiteral{Value: v} }

// Int wraps an integer value as a pattern literal.
func Int(v int64) Literal { return IntLiteral{Value: v} }

// Float wraps a float value as a pattern literal.
func Float(v float64) Literal { return FloatLiteral{Value: v} }

// Bool wraps a boolean value as a pattern literal.
func Bool(v bool) Literal { return BoolLiteral{Value: v} }

// Timestamp wraps a timestamp string as a t'...' pattern literal.
func Timestamp(v string) Literal { return TimestampLiteral{Value: v} }

// List wraps several literals as a list literal for IN comparisons.
func List(values ...Literal) Literal { return ListLiteral{Values: values} }

// Compare appends a comparison between objectType:property and value using
// the given operator.
func (b *Builder) Compare(objectType, property string, op ComparisonOperator, value Literal) *Builder {
	if b.err != nil {
		return b
	}
	if !op.IsValid() {
		b.err = fmt.Errorf("invalid comparison operator %q", op)
		return b
	}

	current := len(b.observations) - 1
	if len(b.observations[current]) > 0 && b.pendingOp == nil {
		b.err = fmt.Errorf("missing And() or Or() before %s:%s comparison", objectType, property)
		return b
	}

	var expr Expression = &Comparison{ObjectType: objectType, Path: property, Operator: op, Value: value}
	if b.pendingNot {
		expr = &Negation{Child: expr}
		b.pendingNot = false
	}

	op2 := BoolAND
	if b.pendingOp != nil {
		op2 = *b.pendingOp
		b.pendingOp = nil
	}
	b.observations[current] = append(b.observations[current], builderTerm{op: op2, expr: expr})
	return b
}

// Not negates the next comparison.
func (b *Builder) Not() *Builder {
	b.pendingNot = true
	return b
}

// And links the previous and next comparisons with AND.
func (b *Builder) And() *Builder {
	return b.combinator(BoolAND)
}

// Or links the previous and next comparisons with OR.
func (b *Builder) Or() *Builder {
	return b.combinator(BoolOR)
}

func (b *Builder) combinator(op BooleanOperator) *Builder {
	if b.err != nil {
		return b
	}
	current := len(b.observations) - 1
	if len(b.observations[current]) == 0 {
		b.err = fmt.Errorf("%s with no preceding comparison", op)
		return b
	}
	if b.pendingOp != nil {
		b.err = fmt.Errorf("two combinators in a row")
		return b
	}
	b.pendingOp = &op
	return b
}

// FollowedBy closes the current observation expression and starts the next
// one; the two are joined by FOLLOWEDBY in the built pattern.
func (b *Builder) FollowedBy() *Builder {
	if b.err != nil {
		return b
	}
	current := len(b.observations) - 1
	if len(b.observations[current]) == 0 {
		b.err = fmt.Errorf("FOLLOWEDBY with no preceding observation")
		return b
	}
	if b.pendingOp != nil {
		b.err = fmt.Errorf("dangling combinator before FOLLOWEDBY")
		return b
	}
	b.observations = append(b.observations, nil)
	return b
}

// Within attaches a WITHIN n SECONDS qualifier to the pattern.
func (b *Builder) Within(seconds int64) *Builder {
	if b.err == nil && seconds <= 0 {
		b.err = fmt.Errorf("WITHIN seconds must be positive, got %d", seconds)
		return b
	}
	b.qualifier = WithinQualifier{Seconds: seconds}
	return b
}

// Repeats attaches a REPEATS n TIMES qualifier to the pattern.
func (b *Builder) Repeats(times int64) *Builder {
	if b.err == nil && times <= 0 {
		b.err = fmt.Errorf("REPEATS count must be positive, got %d", times)
		return b
	}
	b.qualifier = RepeatsQualifier{Times: times}
	return b
}

// StartStop attaches a STARTSTOP qualifier with the given timestamp texts.
func (b *Builder) StartStop(start, stop string) *Builder {
	b.qualifier = StartStopQualifier{Start: start, Stop: stop}
	return b
}

// Build assembles the pattern, applying the same precedence rules as the
// parser (AND binds tighter than OR, both left-associative) so that
// Parse(built.String()) always reproduces the built AST.
func (b *Builder) Build() (*Pattern, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.pendingOp != nil {
		return nil, fmt.Errorf("dangling combinator at end of pattern")
	}
	if b.pendingNot {
		return nil, fmt.Errorf("dangling Not() at end of pattern")
	}

	pat := &Pattern{Qualifier: b.qualifier}
	for _, terms := range b.observations {
		if len(terms) == 0 {
			return nil, fmt.Errorf("empty observation expression")
		}
		pat.Observations = append(pat.Observations, foldTerms(terms))
	}
	return pat, nil
}

// foldTerms groups a flat comparison sequence by precedence: consecutive
// AND-linked terms are combined first, then the AND groups are joined by OR,
// both left-associatively.
func foldTerms(terms []builderTerm) Expression {
	var orTerms []Expression
	current := terms[0].expr

	for _, term := range terms[1:] {
		if term.op == BoolAND {
			current = &Combination{Operator: BoolAND, Left: current, Right: term.expr}
			continue
		}
		orTerms = append(orTerms, current)
		current = term.expr
	}
	orTerms = append(orTerms, current)

	result := orTerms[0]
	for _, term := range orTerms[1:] {
		result = &Combination{Operator: BoolOR, Left: result, Right: term}
	}
	return result
}
