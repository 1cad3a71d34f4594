package mirror

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
)

/* ===============================
   in-memory store fake
=================================*/

type memoryStore struct {
	rows      []*taskModel.TaskModel
	createErr error
	saveErr   error
}

func (m *memoryStore) FindBySource(kind string, sourceID uuid.UUID) (*taskModel.TaskModel, error) {
	for _, r := range m.rows {
		if r.TaskType == kind && r.TaskSourceID != nil && *r.TaskSourceID == sourceID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindByExactTitle(kind, courseName, batchNo, title string) (*taskModel.TaskModel, error) {
	for _, r := range m.rows {
		if r.TaskType == kind && r.TaskCourseName == courseName && r.TaskBatchNo == batchNo &&
			strings.EqualFold(r.TaskTitle, title) {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindByTitleProbe(kind, courseName, batchNo, probe string) (*taskModel.TaskModel, error) {
	for _, r := range m.rows {
		if r.TaskType == kind && r.TaskCourseName == courseName && r.TaskBatchNo == batchNo &&
			strings.Contains(strings.ToLower(r.TaskTitle), strings.ToLower(probe)) {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) Create(t *taskModel.TaskModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	if t.TaskID == uuid.Nil {
		t.TaskID = uuid.New()
	}
	m.rows = append(m.rows, t)
	return nil
}

func (m *memoryStore) Save(t *taskModel.TaskModel) error {
	return m.saveErr
}

func (m *memoryStore) Delete(t *taskModel.TaskModel) error {
	for i, r := range m.rows {
		if r.TaskID == t.TaskID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

/* ===============================
   fixtures
=================================*/

var classSpec = Spec{Kind: constants.KindClasses}

func classRecord(sourceID uuid.UUID) Record {
	schedule := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	return Record{
		SourceID:   sourceID,
		Name:       "Recursion Basics",
		CourseName: "CPC",
		BatchNo:    "5",
		Status:     constants.StatusTodo,
		Priority:   constants.PriorityNormal,
		StartDate:  &schedule,
		DueDate:    &schedule,
	}
}

/* ===============================
   tests
=================================*/

func TestCreateProjectsRecordOntoBoard(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store)
	sourceID := uuid.New()

	card, err := svc.Create(classSpec, classRecord(sourceID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(store.rows) != 1 {
		t.Fatalf("expected exactly one card, got %d", len(store.rows))
	}
	if card.TaskType != "classes" {
		t.Fatalf("expected type classes, got %q", card.TaskType)
	}
	if card.TaskTitle != "Recursion Basics - CPC Batch 5" {
		t.Fatalf("unexpected title %q", card.TaskTitle)
	}
	if card.TaskCourseName != "CPC" || card.TaskBatchNo != "5" {
		t.Fatalf("course/batch not copied: %q/%q", card.TaskCourseName, card.TaskBatchNo)
	}
	if card.TaskStatus != constants.StatusTodo || card.TaskPriority != constants.PriorityNormal {
		t.Fatalf("status/priority not copied: %q/%q", card.TaskStatus, card.TaskPriority)
	}
	if card.TaskSourceID == nil || *card.TaskSourceID != sourceID {
		t.Fatalf("source ref not stamped")
	}
	if card.TaskStartDate == nil || !card.TaskStartDate.Equal(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("start date not copied: %v", card.TaskStartDate)
	}
	if card.TaskDescription != "Auto-generated task for Recursion Basics - CPC Batch 5." {
		t.Fatalf("unexpected default description %q", card.TaskDescription)
	}
}

func TestCreateIsIdempotentPerSource(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store)
	rec := classRecord(uuid.New())

	if _, err := svc.Create(classSpec, rec); err != nil {
		t.Fatalf("first create: %v", err)
	}
	rec.Status = constants.StatusInProgress
	if _, err := svc.Create(classSpec, rec); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if len(store.rows) != 1 {
		t.Fatalf("retried create duplicated the card: %d rows", len(store.rows))
	}
	if store.rows[0].TaskStatus != constants.StatusInProgress {
		t.Fatalf("retried create did not overwrite, status %q", store.rows[0].TaskStatus)
	}
}

func TestUpdatePropagatesStatusWithoutDuplicating(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store)
	rec := classRecord(uuid.New())

	if _, err := svc.Create(classSpec, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec.Status = constants.StatusCompleted
	card, err := svc.Update(classSpec, rec)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if card == nil {
		t.Fatalf("update missed an existing card")
	}
	if len(store.rows) != 1 {
		t.Fatalf("update created a second card: %d rows", len(store.rows))
	}
	if store.rows[0].TaskStatus != constants.StatusCompleted {
		t.Fatalf("status did not propagate, got %q", store.rows[0].TaskStatus)
	}
}

func TestUpdateAdoptsLegacyRowByTitle(t *testing.T) {
	store := &memoryStore{
		rows: []*taskModel.TaskModel{{
			TaskID:         uuid.New(),
			TaskType:       "classes",
			TaskTitle:      "Recursion Basics - CPC Batch 5",
			TaskCourseName: "CPC",
			TaskBatchNo:    "5",
			TaskStatus:     constants.StatusTodo,
		}},
	}
	svc := NewService(store)
	rec := classRecord(uuid.New())
	rec.Status = constants.StatusInReview

	card, err := svc.Update(classSpec, rec)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if card == nil {
		t.Fatalf("legacy row not found by synthesized title")
	}
	if card.TaskSourceID == nil || *card.TaskSourceID != rec.SourceID {
		t.Fatalf("legacy row was not adopted with a source ref")
	}
	if card.TaskStatus != constants.StatusInReview {
		t.Fatalf("status did not propagate to legacy row")
	}
}

// Two legacy cards whose titles are substrings of one another: the exact
// synthesized-title match must win, so operating on "Algorithms" never
// touches "Algorithms II".
func TestExactTitleWinsOverSubstringOverlap(t *testing.T) {
	short := &taskModel.TaskModel{
		TaskID: uuid.New(), TaskType: "classes",
		TaskTitle: "Algorithms - CPC Batch 5", TaskCourseName: "CPC", TaskBatchNo: "5",
	}
	long := &taskModel.TaskModel{
		TaskID: uuid.New(), TaskType: "classes",
		TaskTitle: "Algorithms II - CPC Batch 5", TaskCourseName: "CPC", TaskBatchNo: "5",
	}
	// the longer title sorts first in the scan to make substring grabs visible
	store := &memoryStore{rows: []*taskModel.TaskModel{long, short}}
	svc := NewService(store)

	rec := classRecord(uuid.New())
	rec.Name = "Algorithms"
	rec.Status = constants.StatusBlocked

	card, err := svc.Update(classSpec, rec)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if card == nil || card.TaskID != short.TaskID {
		t.Fatalf("update grabbed the wrong card")
	}
	if long.TaskStatus == constants.StatusBlocked {
		t.Fatalf("sibling card was mutated")
	}

	if err := svc.Delete(classSpec, rec); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.rows) != 1 || store.rows[0].TaskID != long.TaskID {
		t.Fatalf("delete removed the wrong card")
	}
}

func TestUpdateMissIsSilentNoOp(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store)

	card, err := svc.Update(classSpec, classRecord(uuid.New()))
	if err != nil {
		t.Fatalf("miss must not error, got %v", err)
	}
	if card != nil {
		t.Fatalf("miss returned a card")
	}
	if err := svc.Delete(classSpec, classRecord(uuid.New())); err != nil {
		t.Fatalf("delete miss must not error, got %v", err)
	}
}

func TestDeleteRemovesOnlyMatchingCard(t *testing.T) {
	store := &memoryStore{}
	svc := NewService(store)

	recA := classRecord(uuid.New())
	recB := classRecord(uuid.New())
	recB.Name = "Dynamic Programming"
	if _, err := svc.Create(classSpec, recA); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := svc.Create(classSpec, recB); err != nil {
		t.Fatalf("create B: %v", err)
	}

	if err := svc.Delete(classSpec, recA); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.rows) != 1 {
		t.Fatalf("expected one survivor, got %d", len(store.rows))
	}
	if store.rows[0].TaskSourceID == nil || *store.rows[0].TaskSourceID != recB.SourceID {
		t.Fatalf("delete removed the wrong card")
	}
}

// A failed card write surfaces as an error so the surrounding transaction
// rolls the domain write back with it. The two stores never diverge.
func TestCreateFailurePropagatesForRollback(t *testing.T) {
	boom := errors.New("insert failed")
	store := &memoryStore{createErr: boom}
	svc := NewService(store)

	if _, err := svc.Create(classSpec, classRecord(uuid.New())); !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("failed create left a card behind")
	}
}
