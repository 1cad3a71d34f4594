package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	classModel "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
)

func TestToMirrorRecord(t *testing.T) {
	schedule := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := classModel.ClassModel{
		ClassID:         uuid.New(),
		ClassTitle:      "Recursion Basics",
		ClassCourseName: "CPC",
		ClassBatchNo:    5,
		ClassStatus:     constants.StatusTodo,
		ClassPriority:   constants.PriorityNormal,
		ClassSchedule:   &schedule,
	}

	rec := ToMirrorRecord(m)
	if rec.BatchNo != "5" {
		t.Fatalf("batch must be stringified, got %q", rec.BatchNo)
	}
	if rec.StartDate == nil || rec.DueDate == nil || !rec.StartDate.Equal(schedule) || !rec.DueDate.Equal(schedule) {
		t.Fatalf("schedule should populate both start and due date")
	}

	spec := mirror.Spec{Kind: constants.KindClasses}
	if got, want := spec.Title(rec), "Recursion Basics - CPC Batch 5"; got != want {
		t.Fatalf("title = %q, want %q", got, want)
	}
}
