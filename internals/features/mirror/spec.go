// internals/features/mirror/spec.go
package mirror

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is the kind-agnostic field bag a domain controller hands to the
// synchronizer. BatchNo is already stringified by the DTO layer (several
// collections store it numerically).
type Record struct {
	SourceID     uuid.UUID
	Name         string
	Description  *string
	CourseName   string
	BatchNo      string
	Status       string
	Priority     string
	AssignedToID *uuid.UUID
	ReportedToID *uuid.UUID
	StartDate    *time.Time
	DueDate      *time.Time

	// kind-specific extras
	ContestName   *string
	EstimatedTime *string
}

// Spec describes how one domain kind projects onto the board. Each feature
// declares exactly one; the old dashboard re-implemented this per controller
// and the copies drifted.
type Spec struct {
	Kind        string
	TitlePrefix string
}

// Title synthesizes the board card title: "{name} - {course} Batch {batch}".
func (s Spec) Title(rec Record) string {
	return fmt.Sprintf("%s%s - %s Batch %s", s.TitlePrefix, rec.Name, rec.CourseName, rec.BatchNo)
}

// Description falls back to a templated sentence when the record has no
// free-text description.
func (s Spec) Description(rec Record) string {
	if rec.Description != nil && *rec.Description != "" {
		return *rec.Description
	}
	return fmt.Sprintf("Auto-generated task for %s.", s.Title(rec))
}
