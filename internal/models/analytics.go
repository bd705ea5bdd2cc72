package models

import "time"

// Summary is the aggregate analytics view served by the data layer.
type Summary struct {
	TotalApplications    int64            `json:"total_applications"`
	ApplicationsToday    int64            `json:"applications_today"`
	ApplicationsThisWeek int64            `json:"applications_this_week"`
	StatusDistribution   map[string]int64 `json:"status_distribution"`
	InterviewRate        float64          `json:"interview_rate"` // percent, one decimal

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	DailyGoal        int     `json:"daily_goal"`
	WeeklyGoal       int     `json:"weekly_goal"`
	GoalProgressWeek float64 `json:"goal_progress_week"` // percent, capped at 100
	GoalProgressDay  float64 `json:"goal_progress_today"`
}

// TimelinePoint is one calendar day in the application timeline. Days with
// no applications are included with a zero count.
type TimelinePoint struct {
	Date         time.Time `json:"date"`
	Applications int64     `json:"applications"`
}
