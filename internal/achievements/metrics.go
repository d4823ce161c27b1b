package achievements

// Metrics is the progress and activity state predicates are evaluated
// against.
type Metrics struct {
	Level            int
	TotalXP          int
	LessonsCompleted int
	QuizzesPassed    int
	PerfectQuizzes   int
	HighScoreQuizzes int // score >= 90
	CurrentStreak    int
	BestStreak       int
	Logins           int
	CoursesStarted   int
	CoursesCompleted int
	NightSessions    int
	FastLessons      int
	Invites          int
}

var metricNames = []string{
	"level", "total_xp", "lessons_completed", "quizzes_passed",
	"perfect_quizzes", "high_score_quizzes", "streak", "best_streak",
	"logins", "courses_started", "courses_completed", "night_sessions",
	"fast_lessons", "invites",
}

// MetricNames returns every metric a predicate may reference.
func MetricNames() []string {
	out := make([]string, len(metricNames))
	copy(out, metricNames)
	return out
}

// Value returns the named metric.
func (m Metrics) Value(name string) (int, bool) {
	switch name {
	case "level":
		return m.Level, true
	case "total_xp":
		return m.TotalXP, true
	case "lessons_completed":
		return m.LessonsCompleted, true
	case "quizzes_passed":
		return m.QuizzesPassed, true
	case "perfect_quizzes":
		return m.PerfectQuizzes, true
	case "high_score_quizzes":
		return m.HighScoreQuizzes, true
	case "streak":
		return m.CurrentStreak, true
	case "best_streak":
		return m.BestStreak, true
	case "logins":
		return m.Logins, true
	case "courses_started":
		return m.CoursesStarted, true
	case "courses_completed":
		return m.CoursesCompleted, true
	case "night_sessions":
		return m.NightSessions, true
	case "fast_lessons":
		return m.FastLessons, true
	case "invites":
		return m.Invites, true
	default:
		return 0, false
	}
}
