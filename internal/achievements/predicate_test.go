package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		src     string
		clauses int
		wantErr bool
	}{
		{"level >= 5", 1, false},
		{"streak>=7", 1, false},
		{"level >= 5 && total_xp > 1000", 2, false},
		{"  lessons_completed == 1  ", 1, false},
		{"courses_started<2", 1, false},
		{"", 0, true},
		{"level", 0, true},
		{"level >= five", 0, true},
		{"karma >= 1", 0, true},
		{"level >= 5 &&", 0, true},
	}

	for _, tt := range tests {
		p, err := ParsePredicate(tt.src)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePredicate(%q) expected error", tt.src)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePredicate(%q): %v", tt.src, err)
			continue
		}
		if len(p.Clauses) != tt.clauses {
			t.Errorf("ParsePredicate(%q) clauses = %d, want %d", tt.src, len(p.Clauses), tt.clauses)
		}
	}
}

func TestPredicateEval(t *testing.T) {
	tests := []struct {
		src  string
		m    Metrics
		want bool
	}{
		{"level >= 5", Metrics{Level: 4}, false},
		{"level >= 5", Metrics{Level: 5}, true},
		{"level > 5", Metrics{Level: 5}, false},
		{"level <= 2", Metrics{Level: 2}, true},
		{"level < 2", Metrics{Level: 2}, false},
		{"perfect_quizzes == 1", Metrics{PerfectQuizzes: 1}, true},
		{"streak >= 7 && level >= 3", Metrics{CurrentStreak: 7, Level: 2}, false},
		{"streak >= 7 && level >= 3", Metrics{CurrentStreak: 8, Level: 3}, true},
		{"night_sessions >= 3", Metrics{NightSessions: 3}, true},
		{"invites >= 3", Metrics{Invites: 2}, false},
	}

	for _, tt := range tests {
		p, err := ParsePredicate(tt.src)
		require.NoError(t, err)
		if got := p.Eval(tt.m); got != tt.want {
			t.Errorf("%q.Eval(%+v) = %v, want %v", tt.src, tt.m, got, tt.want)
		}
	}

	assert.False(t, Predicate{}.Eval(Metrics{Level: 99}))
}

func TestPredicateProgress(t *testing.T) {
	tests := []struct {
		src  string
		m    Metrics
		want int
	}{
		{"lessons_completed >= 100", Metrics{LessonsCompleted: 45}, 45},
		{"streak >= 7", Metrics{CurrentStreak: 7}, 100},
		{"invites >= 3", Metrics{Invites: 1}, 33},
		{"level > 4", Metrics{Level: 4}, 80},
		{"level >= 10 && streak >= 4", Metrics{Level: 5, CurrentStreak: 1}, 25},
		{"perfect_quizzes == 1", Metrics{}, 0},
		{"level >= 0", Metrics{}, 100},
	}

	for _, tt := range tests {
		p, err := ParsePredicate(tt.src)
		require.NoError(t, err)
		if got := p.Progress(tt.m); got != tt.want {
			t.Errorf("%q.Progress(%+v) = %d, want %d", tt.src, tt.m, got, tt.want)
		}
	}
}

func TestPredicateString(t *testing.T) {
	p, err := ParsePredicate("level>=5&&streak >= 7")
	require.NoError(t, err)
	assert.Equal(t, "level >= 5 && streak >= 7", p.String())
}

func TestMetricsValue(t *testing.T) {
	m := Metrics{Level: 3, Invites: 2}
	for _, name := range MetricNames() {
		if _, ok := m.Value(name); !ok {
			t.Errorf("metric %q not resolvable", name)
		}
	}
	_, ok := m.Value("karma")
	assert.False(t, ok)
}
