package remote

import "time"

// Wire shapes for the account service. The entity transformer maps these to
// and from the canonical local models; fields absent on one side carry
// documented zero-value defaults on conversion.

// Application is the remote job-application record. The company is
// flattened to its name and website, and the applied date travels as a
// plain calendar date.
type Application struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CompanyName    string  `json:"company_name"`
	CompanyWebsite string  `json:"company_website"`
	Status         string  `json:"status"`
	AppliedDate    string  `json:"applied_date"` // "2006-01-02"
	Location       string  `json:"location"`
	SalaryMin      float64 `json:"salary_min"`
	SalaryMax      float64 `json:"salary_max"`
	Notes          string  `json:"notes"`
	SourceURL      string  `json:"source_url"`
	SourcePlatform string  `json:"source_platform"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is the remote profile record. Names are split server-side.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DailyGoal  int       `json:"daily_goal"`
	WeeklyGoal int       `json:"weekly_goal"`
	Timezone   string    `json:"timezone"`
	CreatedAt  time.Time `json:"created_at"`
}

// GoalsUpdate is the payload for PUT /users/me/goals.
type GoalsUpdate struct {
	DailyGoal  int `json:"daily_goal"`
	WeeklyGoal int `json:"weekly_goal"`
}
