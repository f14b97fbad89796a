// Package filter provides expression-based filtering of JSON list
// results using the expr language.
//
// Filters run client-side against the elements of an aggregated list
// response. Each element is exposed to the expression as Item, together
// with a small set of helper functions:
//
//	Item.stargazers_count > 100 && !Item.fork
//	contains(str(Item.full_name), "tools")
//	daysSince(parseDate(str(Item.updated_at))) < 30
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expression applied to list elements.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles an expr expression into a Filter. An empty
// expression matches everything.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(environment(nil)),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Match evaluates the filter against one list element.
func (f *Filter) Match(item any) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	result, err := expr.Run(f.program, environment(item))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
	}

	return matched, nil
}

// Apply returns the elements of items that match the filter, in order.
func (f *Filter) Apply(items []any) ([]any, error) {
	if f.program == nil {
		return items, nil
	}

	matched := []any{}
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}

	return matched, nil
}

// environment builds the evaluation environment for one element.
func environment(item any) map[string]any {
	return map[string]any{
		"Item": item,

		// Field helpers
		"has": func(name string) bool {
			obj, ok := item.(map[string]any)
			if !ok {
				return false
			}
			_, exists := obj[name]
			return exists
		},
		"str": func(v any) string {
			if v == nil {
				return ""
			}
			if s, ok := v.(string); ok {
				return s
			}
			return fmt.Sprint(v)
		},
		"num": func(v any) float64 {
			if n, ok := v.(float64); ok {
				return n
			}
			return 0
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"parseDate": func(dateStr string) time.Time {
			if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
				return t
			}
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}
