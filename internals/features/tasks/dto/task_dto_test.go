package dto

import (
	"testing"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	req := TaskRequest{Title: "  Write onboarding doc  ", Priority: "medium"}
	req.Normalize()

	if req.Title != "Write onboarding doc" {
		t.Fatalf("title not trimmed: %q", req.Title)
	}
	if req.Type != constants.KindGeneral {
		t.Fatalf("type default = %q, want %q", req.Type, constants.KindGeneral)
	}
	if req.Status != constants.StatusTodo {
		t.Fatalf("status default = %q, want %q", req.Status, constants.StatusTodo)
	}
	if req.Priority != constants.PriorityNormal {
		t.Fatalf("MEDIUM should collapse to NORMAL, got %q", req.Priority)
	}
}

func TestApplyToPreservesOrigin(t *testing.T) {
	m := taskModel.TaskModel{TaskType: constants.KindClasses}
	req := TaskRequest{Title: "Renamed", Type: constants.KindGeneral}
	req.Normalize()
	req.ApplyTo(&m)

	if m.TaskType != constants.KindClasses {
		t.Fatalf("ApplyTo must not rewrite task_type, got %q", m.TaskType)
	}
	if m.TaskTitle != "Renamed" {
		t.Fatalf("title not applied: %q", m.TaskTitle)
	}
}

func TestGroupBoard(t *testing.T) {
	rows := []taskModel.TaskModel{
		{TaskTitle: "a", TaskStatus: constants.StatusTodo},
		{TaskTitle: "b", TaskStatus: constants.StatusTodo},
		{TaskTitle: "c", TaskStatus: constants.StatusCompleted},
	}

	cols := GroupBoard(rows)
	if len(cols) != len(constants.Statuses) {
		t.Fatalf("expected %d columns, got %d", len(constants.Statuses), len(cols))
	}

	byStatus := map[string]BoardColumn{}
	for i, col := range cols {
		if col.Status != constants.Statuses[i] {
			t.Fatalf("column %d = %q, want canonical order %q", i, col.Status, constants.Statuses[i])
		}
		byStatus[col.Status] = col
	}

	if byStatus[constants.StatusTodo].Count != 2 {
		t.Fatalf("TODO count = %d, want 2", byStatus[constants.StatusTodo].Count)
	}
	if byStatus[constants.StatusCompleted].Count != 1 {
		t.Fatalf("COMPLETED count = %d, want 1", byStatus[constants.StatusCompleted].Count)
	}
	if byStatus[constants.StatusBlocked].Tasks == nil {
		t.Fatalf("empty columns must carry an empty slice, not nil")
	}
}
