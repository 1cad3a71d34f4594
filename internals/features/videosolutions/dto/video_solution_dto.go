// internals/features/videosolutions/dto/video_solution_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	videoModel "github.com/maruf-pfc/opsboard-sub000/internals/features/videosolutions/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type VideoSolutionRequest struct {
	ContestName   string     `json:"contest_name" validate:"required,max=160"`
	Description   *string    `json:"description" validate:"omitempty"`
	CourseName    string     `json:"course_name" validate:"required,max=80"`
	BatchNo       int        `json:"batch_no" validate:"required,min=1"`
	EstimatedTime *string    `json:"estimated_time" validate:"omitempty,max=40"`
	VideoURL      *string    `json:"video_url" validate:"omitempty,url"`
	StartDate     *time.Time `json:"start_date" validate:"omitempty"`
	DueDate       *time.Time `json:"due_date" validate:"omitempty"`
	Status        string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority      string     `json:"priority" validate:"omitempty"`
	AssignedToID  *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID  *uuid.UUID `json:"reported_to_id" validate:"omitempty"`
}

func (r *VideoSolutionRequest) Normalize() {
	r.ContestName = strings.TrimSpace(r.ContestName)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Description = helper.TrimPtr(r.Description)
	r.EstimatedTime = helper.TrimPtr(r.EstimatedTime)
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *VideoSolutionRequest) ToModel() videoModel.VideoSolutionModel {
	return videoModel.VideoSolutionModel{
		VideoContestName:   r.ContestName,
		VideoDescription:   r.Description,
		VideoCourseName:    r.CourseName,
		VideoBatchNo:       r.BatchNo,
		VideoEstimatedTime: r.EstimatedTime,
		VideoURL:           r.VideoURL,
		VideoStartDate:     r.StartDate,
		VideoDueDate:       r.DueDate,
		VideoStatus:        r.Status,
		VideoPriority:      r.Priority,
		VideoAssignedToID:  r.AssignedToID,
		VideoReportedToID:  r.ReportedToID,
	}
}

func (r *VideoSolutionRequest) ApplyTo(m *videoModel.VideoSolutionModel) {
	m.VideoContestName = r.ContestName
	m.VideoDescription = r.Description
	m.VideoCourseName = r.CourseName
	m.VideoBatchNo = r.BatchNo
	m.VideoEstimatedTime = r.EstimatedTime
	m.VideoURL = r.VideoURL
	m.VideoStartDate = r.StartDate
	m.VideoDueDate = r.DueDate
	m.VideoStatus = r.Status
	m.VideoPriority = r.Priority
	m.VideoAssignedToID = r.AssignedToID
	m.VideoReportedToID = r.ReportedToID
}

func ToMirrorRecord(m videoModel.VideoSolutionModel) mirror.Record {
	contestName := m.VideoContestName
	return mirror.Record{
		SourceID:      m.VideoID,
		Name:          m.VideoContestName,
		Description:   m.VideoDescription,
		CourseName:    m.VideoCourseName,
		BatchNo:       strconv.Itoa(m.VideoBatchNo),
		Status:        m.VideoStatus,
		Priority:      m.VideoPriority,
		AssignedToID:  m.VideoAssignedToID,
		ReportedToID:  m.VideoReportedToID,
		StartDate:     m.VideoStartDate,
		DueDate:       m.VideoDueDate,
		ContestName:   &contestName,
		EstimatedTime: m.VideoEstimatedTime,
	}
}

type VideoSolutionResponse struct {
	videoModel.VideoSolutionModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromVideoSolutionModel(m videoModel.VideoSolutionModel) VideoSolutionResponse {
	return VideoSolutionResponse{
		VideoSolutionModel: m,
		AssignedTo:         m.AssignedTo.Summary(),
		ReportedTo:         m.ReportedTo.Summary(),
	}
}

func FromVideoSolutionModels(ms []videoModel.VideoSolutionModel) []VideoSolutionResponse {
	out := make([]VideoSolutionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromVideoSolutionModel(m))
	}
	return out
}
