// internals/constants/constants.go
package constants

import "strings"

/* =========================================================
   Roles
========================================================= */

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTrainer = "trainer"
	RoleMember  = "member"
)

const (
	ErrOnlyAdminsCanAccess   = "Only admins may access this resource."
	ErrOnlyManagersCanAccess = "Only admins or managers may access this resource."
)

/* =========================================================
   Workflow status & priority
========================================================= */

const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusInReview   = "IN_REVIEW"
	StatusCompleted  = "COMPLETED"
	StatusBlocked    = "BLOCKED"
)

const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
)

var Statuses = []string{StatusTodo, StatusInProgress, StatusInReview, StatusCompleted, StatusBlocked}

var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// NormalizePriority maps legacy spellings onto the canonical set.
// Older dashboard clients still send MEDIUM; it collapses to NORMAL.
func NormalizePriority(p string) string {
	switch strings.ToUpper(strings.TrimSpace(p)) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	case "MEDIUM", PriorityNormal, "":
		return PriorityNormal
	default:
		return PriorityNormal
	}
}

/* =========================================================
   Board kinds (task_type tags)
========================================================= */

const (
	KindGeneral        = "general"
	KindClasses        = "classes"
	KindContests       = "programming-contests"
	KindVideoSolutions = "contest-video-solutions"
	KindMarketing      = "email-marketing"
	KindPayments       = "payments"
)
