package condition

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expression environment exposed to extra rules: simple derived
// facts about the text under test, so a rule reads like "HasDigit &&
// EndsWith('atm')" rather than hand-rolling regexes.
type Env struct {
	Text     string
	HasDigit bool
}

// EndsWith reports whether Text ends with suffix.
func (e Env) EndsWith(suffix string) bool { return strings.HasSuffix(e.Text, suffix) }

// Contains reports whether Text contains needle.
func (e Env) Contains(needle string) bool { return strings.Contains(e.Text, needle) }

// Rule is one operator-supplied extra condition kind: a name and a
// compiled boolean expression evaluated against Env.
type Rule struct {
	Name    string
	program *vm.Program
}

// CompileRule compiles expression once; the returned Rule can then be
// matched against many texts without recompiling.
func CompileRule(name, expression string) (Rule, error) {
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return Rule{}, fmt.Errorf("condition: compile rule %q: %w", name, err)
	}
	return Rule{Name: name, program: program}, nil
}

// Matches evaluates the compiled expression against text.
func (r Rule) Matches(text string) (bool, error) {
	env := Env{Text: text, HasDigit: containsDigit(text)}
	out, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("condition: run rule %q: %w", r.Name, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition: rule %q did not evaluate to a bool", r.Name)
	}
	return matched, nil
}

// RuleSet wraps the five built-in condition kinds with operator-supplied
// extra rules read from configuration. The built-ins always run first and
// with their exact semantics; extra rules only append new kinds onto
// Classify's output, they can never override temperature/time/stir
// speed/pressure/gas.
type RuleSet struct {
	Extra []Rule
}

// NewRuleSet compiles every (name, expression) pair into a RuleSet.
func NewRuleSet(rules map[string]string) (*RuleSet, error) {
	rs := &RuleSet{}
	for name, expression := range rules {
		rule, err := CompileRule(name, expression)
		if err != nil {
			return nil, err
		}
		rs.Extra = append(rs.Extra, rule)
	}
	return rs, nil
}

// Classify runs the five built-in predicates via Classify, then every
// extra rule, merging their matches. A rule that fails to evaluate is
// logged and skipped rather than aborting the rest of classification.
func (rs *RuleSet) Classify(text string, logger *slog.Logger) map[string]string {
	out := Classify(text)
	if rs == nil {
		return out
	}
	for _, rule := range rs.Extra {
		matched, err := rule.Matches(text)
		if err != nil {
			if logger != nil {
				logger.Warn("evaluate condition rule", "rule", rule.Name, "error", err)
			}
			continue
		}
		if _, builtin := out[rule.Name]; matched && !builtin {
			out[rule.Name] = text
		}
	}
	return out
}
