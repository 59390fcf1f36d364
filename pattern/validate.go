package pattern

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"stixcore/core"
)

// DefaultRegexTimeout bounds the trial match run against each MATCHES
// literal so a hostile regex cannot stall validation (regexp2 backtracks,
// unlike the standard library).
const DefaultRegexTimeout = 500 * time.Millisecond

// regexTrialInput is the subject for the trial match. The repeated run with
// a non-matching tail forces exponential backtracking out of catastrophic
// regexes while staying trivial for well-behaved ones.
var regexTrialInput = strings.Repeat("a", 64) + "!"

// Validate checks that input is a syntactically valid pattern expression.
// It is syntax-only: object types and property paths are not checked against
// any schema. Lex and parse failures are wrapped in a *SyntaxError; the
// underlying *LexError or *ParseError stays reachable through errors.As.
func Validate(input string) error {
	if _, err := Parse(input); err != nil {
		return &SyntaxError{Pattern: input, Err: err}
	}
	return nil
}

// ValidateWithRegistry validates the pattern syntax and additionally checks
// two spot-check rules:
//
//   - every comparison's object-type prefix must be registered in reg
//     (pass nil to skip the type check)
//   - every MATCHES operator's string literal must compile as a regular
//     expression and survive a trial match under DefaultRegexTimeout
//
// Deeper semantic rules (property catalogs, ISSUBSET operand typing) are a
// collaborator concern and deliberately not enforced here.
func ValidateWithRegistry(input string, reg *core.TypeRegistry) error {
	pat, err := Parse(input)
	if err != nil {
		return &SyntaxError{Pattern: input, Err: err}
	}

	var checkErr error
	pat.Walk(func(c *Comparison) {
		if checkErr != nil {
			return
		}
		if reg != nil && !reg.Contains(c.ObjectType) {
			checkErr = fmt.Errorf("unknown observable object type %q", c.ObjectType)
			return
		}
		if c.Operator == OpMatches {
			checkErr = checkRegexLiteral(c)
		}
	})
	if checkErr != nil {
		return &SyntaxError{Pattern: input, Err: checkErr}
	}
	return nil
}

// checkRegexLiteral compiles the MATCHES operand and runs a trial match under
// DefaultRegexTimeout, so broken or catastrophically backtracking regexes are
// caught at validation time rather than when a downstream matcher first uses
// them.
func checkRegexLiteral(c *Comparison) error {
	lit, ok := c.Value.(StringLiteral)
	if !ok {
		return fmt.Errorf("%s:%s MATCHES operand must be a string literal", c.ObjectType, c.Path)
	}
	re, err := regexp2.Compile(lit.Value, 0)
	if err != nil {
		return fmt.Errorf("%s:%s MATCHES operand is not a valid regex: %w", c.ObjectType, c.Path, err)
	}
	re.MatchTimeout = DefaultRegexTimeout
	if _, err := re.MatchString(regexTrialInput); err != nil {
		return fmt.Errorf("%s:%s MATCHES operand exceeded the %s evaluation limit: %w", c.ObjectType, c.Path, DefaultRegexTimeout, err)
	}
	return nil
}
