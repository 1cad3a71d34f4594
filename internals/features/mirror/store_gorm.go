// internals/features/mirror/store_gorm.go
package mirror

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

// gormStore binds the synchronizer to a *gorm.DB — usually the tx handle of
// the surrounding DB.Transaction.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (g *gormStore) FindBySource(kind string, sourceID uuid.UUID) (*taskModel.TaskModel, error) {
	var t taskModel.TaskModel
	err := g.db.
		Where("task_type = ? AND task_source_id = ?", kind, sourceID).
		First(&t).Error
	return firstResult(&t, err)
}

func (g *gormStore) FindByExactTitle(kind, courseName, batchNo, title string) (*taskModel.TaskModel, error) {
	var t taskModel.TaskModel
	err := g.db.
		Where("task_type = ? AND task_course_name = ? AND task_batch_no = ? AND lower(task_title) = lower(?)",
			kind, courseName, batchNo, title).
		Order("task_created_at ASC").
		First(&t).Error
	return firstResult(&t, err)
}

func (g *gormStore) FindByTitleProbe(kind, courseName, batchNo, probe string) (*taskModel.TaskModel, error) {
	var t taskModel.TaskModel
	err := g.db.
		Where("task_type = ? AND task_course_name = ? AND task_batch_no = ? AND task_title ILIKE ?",
			kind, courseName, batchNo, "%"+helper.EscapeLike(probe)+"%").
		Order("task_created_at ASC").
		First(&t).Error
	return firstResult(&t, err)
}

func (g *gormStore) Create(t *taskModel.TaskModel) error {
	return g.db.Create(t).Error
}

func (g *gormStore) Save(t *taskModel.TaskModel) error {
	return g.db.Save(t).Error
}

func (g *gormStore) Delete(t *taskModel.TaskModel) error {
	return g.db.Delete(t).Error
}

func firstResult(t *taskModel.TaskModel, err error) (*taskModel.TaskModel, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
