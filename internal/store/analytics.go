package store

import (
	"math"
	"time"

	"github.com/ethantsaox/jobflow/internal/models"
)

// Summary aggregates the analytics view: totals, per-status counts, today
// and this-week counts, interview rate, streaks, and goal progress.
func (s *Store) Summary() (*models.Summary, error) {
	return s.summaryAt(time.Now())
}

func (s *Store) summaryAt(now time.Time) (*models.Summary, error) {
	user, err := s.GetUser()
	if err != nil {
		return nil, err
	}

	total, err := s.CountApplications()
	if err != nil {
		return nil, err
	}

	today := dateOf(now)
	todayCount, err := s.countAppliedOn(today)
	if err != nil {
		return nil, err
	}

	// Week starts Monday; bounded on both ends so a future-dated
	// application cannot inflate this week's count.
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)
	var weekCount int64
	err = s.Model(&models.JobApplication{}).
		Where("applied_date >= ? AND applied_date < ?", weekStart, weekStart.AddDate(0, 0, 7)).
		Count(&weekCount).Error
	if err != nil {
		return nil, storageErr("count week applications", err)
	}

	dist, err := s.statusDistribution()
	if err != nil {
		return nil, err
	}

	interviews := dist[models.StatusInterview] + dist[models.StatusOffer]
	var interviewRate float64
	if total > 0 {
		interviewRate = math.Round(float64(interviews)/float64(total)*1000) / 10
	}

	current, err := s.currentStreakAt(now)
	if err != nil {
		return nil, err
	}
	longest, err := s.LongestStreak()
	if err != nil {
		return nil, err
	}

	return &models.Summary{
		TotalApplications:    total,
		ApplicationsToday:    todayCount,
		ApplicationsThisWeek: weekCount,
		StatusDistribution:   dist,
		InterviewRate:        interviewRate,
		CurrentStreak:        current,
		LongestStreak:        longest,
		DailyGoal:            user.DailyGoal,
		WeeklyGoal:           user.WeeklyGoal,
		GoalProgressDay:      goalProgress(todayCount, user.DailyGoal),
		GoalProgressWeek:     goalProgress(weekCount, user.WeeklyGoal),
	}, nil
}

// goalProgress returns count/goal as a percentage capped at 100.
func goalProgress(count int64, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(count)/float64(goal)*100, 100)
}

// statusDistribution returns application counts grouped by status.
func (s *Store) statusDistribution() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.Model(&models.JobApplication{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr("status distribution", err)
	}
	dist := make(map[string]int64, len(rows))
	for _, r := range rows {
		dist[r.Status] = r.Count
	}
	return dist, nil
}

// Timeline returns per-day application counts for the trailing window,
// including days with zero applications, oldest first.
func (s *Store) Timeline(days int) ([]models.TimelinePoint, error) {
	return s.timelineAt(time.Now(), days)
}

func (s *Store) timelineAt(now time.Time, days int) ([]models.TimelinePoint, error) {
	if days <= 0 {
		days = 30
	}
	end := dateOf(now)
	start := end.AddDate(0, 0, -(days - 1))

	var apps []models.JobApplication
	err := s.Model(&models.JobApplication{}).
		Select("applied_date").
		Where("applied_date >= ? AND applied_date < ?", start, end.AddDate(0, 0, 1)).
		Find(&apps).Error
	if err != nil {
		return nil, storageErr("timeline", err)
	}

	// Bucket in Go: SQLite's DATE() normalizes offset-carrying timestamps
	// to UTC, which shifts local-midnight dates onto the previous day in
	// zones ahead of UTC. Day boundaries here are device-local.
	counts := make(map[time.Time]int64, days)
	for _, app := range apps {
		counts[dateOf(app.AppliedDate)]++
	}

	points := make([]models.TimelinePoint, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		points = append(points, models.TimelinePoint{
			Date:         d,
			Applications: counts[d],
		})
	}
	return points, nil
}
