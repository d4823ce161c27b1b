package achievements

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Clause is one "metric op value" comparison.
type Clause struct {
	Metric string
	Op     string
	Value  int
}

// Predicate is a conjunction of clauses, written as e.g.
// "level >= 5 && streak >= 7".
type Predicate struct {
	Clauses []Clause
}

var operators = []string{">=", "<=", "==", ">", "<"}

// ParsePredicate compiles a declarative unlock condition.
func ParsePredicate(src string) (Predicate, error) {
	if strings.TrimSpace(src) == "" {
		return Predicate{}, fmt.Errorf("empty predicate")
	}

	var p Predicate
	for _, part := range strings.Split(src, "&&") {
		c, err := parseClause(strings.TrimSpace(part))
		if err != nil {
			return Predicate{}, fmt.Errorf("predicate %q: %w", src, err)
		}
		p.Clauses = append(p.Clauses, c)
	}
	return p, nil
}

func parseClause(s string) (Clause, error) {
	for _, op := range operators {
		idx := strings.Index(s, op)
		if idx < 0 {
			continue
		}
		metric := strings.TrimSpace(s[:idx])
		raw := strings.TrimSpace(s[idx+len(op):])
		if !slices.Contains(metricNames, metric) {
			return Clause{}, fmt.Errorf("unknown metric %q", metric)
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Clause{}, fmt.Errorf("bad value %q for %s", raw, metric)
		}
		return Clause{Metric: metric, Op: op, Value: v}, nil
	}
	return Clause{}, fmt.Errorf("no comparison operator in %q", s)
}

// Eval reports whether every clause holds for m.
func (p Predicate) Eval(m Metrics) bool {
	if len(p.Clauses) == 0 {
		return false
	}
	for _, c := range p.Clauses {
		if !c.eval(m) {
			return false
		}
	}
	return true
}

// Progress returns how close m is to satisfying the predicate, 0-100. For
// lower-bound clauses it is current/target; other clauses count as all or
// nothing. The least advanced clause wins.
func (p Predicate) Progress(m Metrics) int {
	if len(p.Clauses) == 0 {
		return 0
	}
	pct := 100
	for _, c := range p.Clauses {
		pct = min(pct, c.progress(m))
	}
	return pct
}

// String renders the predicate in its source form.
func (p Predicate) String() string {
	parts := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		parts[i] = fmt.Sprintf("%s %s %d", c.Metric, c.Op, c.Value)
	}
	return strings.Join(parts, " && ")
}

func (c Clause) eval(m Metrics) bool {
	v, ok := m.Value(c.Metric)
	if !ok {
		return false
	}
	switch c.Op {
	case ">=":
		return v >= c.Value
	case ">":
		return v > c.Value
	case "<=":
		return v <= c.Value
	case "<":
		return v < c.Value
	case "==":
		return v == c.Value
	default:
		return false
	}
}

func (c Clause) progress(m Metrics) int {
	if c.eval(m) {
		return 100
	}
	if c.Op != ">=" && c.Op != ">" {
		return 0
	}
	target := c.Value
	if c.Op == ">" {
		target++
	}
	v, _ := m.Value(c.Metric)
	if target <= 0 || v <= 0 {
		return 0
	}
	return min(99, v*100/target)
}
