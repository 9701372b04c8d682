package agents

import (
	"database/sql"
	"fmt"
	"math"

	"careeragent/models"
)

// Store bundles the persistence models the agent layer works against.
type Store struct {
	Users        *models.UserModel
	Skills       *models.SkillModel
	Goals        *models.GoalModel
	Gaps         *models.SkillGapModel
	Plans        *models.PlanModel
	Feedback     *models.FeedbackModel
	Applications *models.ApplicationModel
	Memories     *models.MemoryModel
	Sessions     *models.AgentSessionModel
	Events       *models.CareerEventModel
	Readiness    *models.ReadinessModel
	Progress     *models.LearningProgressModel
	AILogs       *models.AIFeedbackLogModel
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Users:        models.NewUserModel(db),
		Skills:       models.NewSkillModel(db),
		Goals:        models.NewGoalModel(db),
		Gaps:         models.NewSkillGapModel(db),
		Plans:        models.NewPlanModel(db),
		Feedback:     models.NewFeedbackModel(db),
		Applications: models.NewApplicationModel(db),
		Memories:     models.NewMemoryModel(db),
		Sessions:     models.NewAgentSessionModel(db),
		Events:       models.NewCareerEventModel(db),
		Readiness:    models.NewReadinessModel(db),
		Progress:     models.NewLearningProgressModel(db),
		AILogs:       models.NewAIFeedbackLogModel(db),
	}
}

// Stats summarizes a user's plan and application activity.
type Stats struct {
	TotalPlans         int `json:"total_plans"`
	TotalTasks         int `json:"total_tasks"`
	CompletedTasks     int `json:"completed_tasks"`
	CompletionRate     int `json:"completion_rate"`
	TotalApplications  int `json:"total_applications"`
	ActiveApplications int `json:"active_applications"`
	FeedbackCount      int `json:"feedback_count"`
}

// UserState is a full snapshot of one user, gathered before any agent
// reasons about them.
type UserState struct {
	UserID         int                   `json:"user_id"`
	Profile        *models.User          `json:"profile"`
	Skills         []models.Skill        `json:"skills"`
	Goals          []models.CareerGoal   `json:"goals"`
	PrimaryGoal    *models.CareerGoal    `json:"primary_goal"`
	SkillGaps      []models.SkillGap     `json:"skill_gaps"`
	Plans          []models.LearningPlan `json:"plans"`
	RecentFeedback []models.Feedback     `json:"recent_feedback"`
	Applications   []models.Application  `json:"applications"`
	Memories       []models.Memory       `json:"memories"`
	Stats          Stats                 `json:"stats"`
}

// TargetRole reads the primary goal's target role, falling back to a
// sensible default.
func (s *UserState) TargetRole(def string) string {
	if s.PrimaryGoal != nil && s.PrimaryGoal.TargetRole != "" {
		return s.PrimaryGoal.TargetRole
	}
	return def
}

// Timeline reads the primary goal's timeline.
func (s *UserState) Timeline(def string) string {
	if s.PrimaryGoal != nil && s.PrimaryGoal.Timeline != "" {
		return s.PrimaryGoal.Timeline
	}
	return def
}

// StateListener is notified after every state snapshot.
type StateListener func(state *UserState)

// StateObserver gathers user state from the store and feeds the
// agentic loop.
type StateObserver struct {
	store     *Store
	listeners []StateListener
}

func NewStateObserver(store *Store) *StateObserver {
	return &StateObserver{store: store}
}

// Subscribe registers a listener for cascade updates. Not safe for
// concurrent registration; wire listeners at startup.
func (o *StateObserver) Subscribe(fn StateListener) {
	o.listeners = append(o.listeners, fn)
}

// Observe snapshots everything known about the user. The user row must
// exist; supporting data degrades to empty.
func (o *StateObserver) Observe(userID int) (*UserState, error) {
	profile, err := o.store.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("observe user %d: %w", userID, err)
	}

	skills, err := o.store.Skills.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	goals, err := o.store.Goals.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	primaryGoal, err := o.store.Goals.GetPrimary(userID)
	if err != nil {
		return nil, err
	}

	var goalID *int
	if primaryGoal != nil {
		goalID = &primaryGoal.ID
	}
	gaps, err := o.store.Gaps.ListByUser(userID, goalID)
	if err != nil {
		return nil, err
	}
	plans, err := o.store.Plans.ListByUser(userID, goalID)
	if err != nil {
		return nil, err
	}
	feedback, err := o.store.Feedback.ListByUser(userID, 5)
	if err != nil {
		return nil, err
	}
	applications, err := o.store.Applications.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	memories, err := o.store.Memories.Recent(userID, 5)
	if err != nil {
		return nil, err
	}

	state := &UserState{
		UserID:         userID,
		Profile:        profile,
		Skills:         skills,
		Goals:          goals,
		PrimaryGoal:    primaryGoal,
		SkillGaps:      gaps,
		Plans:          plans,
		RecentFeedback: feedback,
		Applications:   applications,
		Memories:       memories,
		Stats:          calculateStats(plans, applications, feedback),
	}

	for _, fn := range o.listeners {
		fn(state)
	}
	return state, nil
}

func calculateStats(plans []models.LearningPlan, applications []models.Application, feedback []models.Feedback) Stats {
	totalTasks := 0
	completedTasks := 0
	for _, plan := range plans {
		totalTasks += len(plan.Tasks)
		for _, t := range plan.Tasks {
			if t.Completed {
				completedTasks++
			}
		}
	}

	completionRate := 0
	if totalTasks > 0 {
		completionRate = int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
	}

	active := 0
	for _, a := range applications {
		if a.Status == "applied" || a.Status == "interviewing" {
			active++
		}
	}

	return Stats{
		TotalPlans:         len(plans),
		TotalTasks:         totalTasks,
		CompletedTasks:     completedTasks,
		CompletionRate:     completionRate,
		TotalApplications:  len(applications),
		ActiveApplications: active,
		FeedbackCount:      len(feedback),
	}
}
