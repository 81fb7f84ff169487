package model

// GoalStatus is the completion state of a savings goal.
type GoalStatus string

const (
	// GoalActive means the target has not been reached.
	GoalActive GoalStatus = "active"
	// GoalCompleted means the saved amount reached the target.
	GoalCompleted GoalStatus = "completed"
)

// SavingsGoal tracks progress toward a savings target. Status is always
// recomputed from the amounts; call Reconcile after changing either.
type SavingsGoal struct {
	Deadline      *Date      `json:"deadline,omitempty"`
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
	Status        GoalStatus `json:"status"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
}

// Reconcile enforces the invariant status == completed iff
// currentAmount >= targetAmount.
func (g *SavingsGoal) Reconcile() {
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = GoalCompleted
	} else {
		g.Status = GoalActive
	}
}

// Progress returns completion as a percentage clamped to 100.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
