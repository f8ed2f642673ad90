package domain

// Step identifies one stage of the per-user import flow.
type Step string

const (
	StepInstanceAdminVerification Step = "INSTANCE_ADMIN_VERIFICATION"
	StepPassword                  Step = "PASSWORD"
	StepPortainer                 Step = "PORTAINER"
	StepDockerHub                 Step = "DOCKERHUB"
	StepDiscord                   Step = "DISCORD"
)

// StepPlan is the ordered sequence of steps a single user walks through.
type StepPlan []Step

// Contains reports whether the plan includes the given step.
func (p StepPlan) Contains(step Step) bool {
	for _, s := range p {
		if s == step {
			return true
		}
	}
	return false
}

// Skippable reports whether the operator may skip a step. The password
// step is mandatory; every other step carries optional data.
func (s Step) Skippable() bool {
	return s != StepPassword
}

// RemotelyValidated reports whether a step's data is checked against an
// external authority before the controller advances past it.
func (s Step) RemotelyValidated() bool {
	switch s {
	case StepPortainer, StepDockerHub, StepDiscord:
		return true
	}
	return false
}
