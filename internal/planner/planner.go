// Package planner derives the ordered step sequence for one import record.
package planner

import "dashboard-user-import/internal/domain"

// Build maps an import record to its step plan. It is pure and total:
// the same record always yields the same plan, so the plan can be
// recomputed at any time, including when navigating back to an earlier
// user. The password step is always present; every other step appears
// only when the record carries the matching configuration.
func Build(record domain.UserImportRecord) domain.StepPlan {
	plan := make(domain.StepPlan, 0, 5)
	if record.InstanceAdmin {
		plan = append(plan, domain.StepInstanceAdminVerification)
	}
	plan = append(plan, domain.StepPassword)
	if len(record.PortainerInstances) > 0 {
		plan = append(plan, domain.StepPortainer)
	}
	if record.DockerHub != nil {
		plan = append(plan, domain.StepDockerHub)
	}
	if len(record.DiscordWebhooks) > 0 {
		plan = append(plan, domain.StepDiscord)
	}
	return plan
}
