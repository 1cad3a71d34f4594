// internals/features/mirror/service.go
package mirror

import (
	"github.com/google/uuid"

	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
)

// Store is the slice of the task store the synchronizer needs. Lookup
// methods return (nil, nil) when nothing matches.
type Store interface {
	FindBySource(kind string, sourceID uuid.UUID) (*taskModel.TaskModel, error)
	FindByExactTitle(kind, courseName, batchNo, title string) (*taskModel.TaskModel, error)
	FindByTitleProbe(kind, courseName, batchNo, probe string) (*taskModel.TaskModel, error)
	Create(t *taskModel.TaskModel) error
	Save(t *taskModel.TaskModel) error
	Delete(t *taskModel.TaskModel) error
}

// Service keeps one board card in step with its originating domain record.
// Callers run it against a store bound to their own transaction so the
// domain write and the mirror write commit or roll back together.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create inserts the card for a freshly created record. If a card for the
// same source already exists (a retried create), it is overwritten instead
// of duplicated: at most one card per source.
func (s *Service) Create(spec Spec, rec Record) (*taskModel.TaskModel, error) {
	existing, err := s.store.FindBySource(spec.Kind, rec.SourceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.apply(existing, spec, rec)
		if err := s.store.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	t := &taskModel.TaskModel{}
	s.apply(t, spec, rec)
	if err := s.store.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update rewrites the card's derived fields. A miss is a silent no-op and
// returns (nil, nil): the domain update must still succeed.
func (s *Service) Update(spec Spec, rec Record) (*taskModel.TaskModel, error) {
	t, err := s.locate(spec, rec)
	if err != nil || t == nil {
		return nil, err
	}
	s.apply(t, spec, rec)
	if err := s.store.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the single matching card, located with the pre-deletion
// field values of the record. Silent no-op on miss.
func (s *Service) Delete(spec Spec, rec Record) error {
	t, err := s.locate(spec, rec)
	if err != nil || t == nil {
		return err
	}
	return s.store.Delete(t)
}

// locate resolves the card for a record: source-ref first, then the exact
// synthesized title, then a LIKE-escaped substring probe. The fallbacks only
// fire for legacy rows created before source refs existed; an exact title
// hit wins over substring so "Algorithms" can never grab "Algorithms II".
func (s *Service) locate(spec Spec, rec Record) (*taskModel.TaskModel, error) {
	t, err := s.store.FindBySource(spec.Kind, rec.SourceID)
	if err != nil || t != nil {
		return t, err
	}
	t, err = s.store.FindByExactTitle(spec.Kind, rec.CourseName, rec.BatchNo, spec.Title(rec))
	if err != nil || t != nil {
		return t, err
	}
	return s.store.FindByTitleProbe(spec.Kind, rec.CourseName, rec.BatchNo, rec.Name)
}

func (s *Service) apply(t *taskModel.TaskModel, spec Spec, rec Record) {
	sourceID := rec.SourceID
	t.TaskType = spec.Kind
	t.TaskSourceID = &sourceID // adopt legacy rows found by title
	t.TaskTitle = spec.Title(rec)
	t.TaskDescription = spec.Description(rec)
	t.TaskStatus = rec.Status
	t.TaskPriority = rec.Priority
	t.TaskCourseName = rec.CourseName
	t.TaskBatchNo = rec.BatchNo
	t.TaskContestName = rec.ContestName
	t.TaskEstimatedTime = rec.EstimatedTime
	t.TaskAssignedToID = rec.AssignedToID
	t.TaskReportedToID = rec.ReportedToID
	t.TaskStartDate = rec.StartDate
	t.TaskDueDate = rec.DueDate
}
