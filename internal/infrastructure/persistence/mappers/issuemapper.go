package mappers

import (
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue domain entities and persistence models.
type IssueMapper interface {
	ToModel(is *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	ImageToModel(im *issue.Image) *models.IssueImageModel
	ImageToDomain(model *models.IssueImageModel) (*issue.Image, error)
	CommentToModel(c *issue.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*issue.Comment, error)
	HistoryToModel(h *issue.StatusHistory) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel) (*issue.StatusHistory, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(is *issue.Issue) *models.IssueModel {
	loc := is.Location()
	return &models.IssueModel{
		ID:              is.ID(),
		TicketID:        is.TicketID(),
		Title:           is.Title(),
		Description:     is.Description(),
		CategoryID:      is.CategoryID(),
		Priority:        is.Priority().String(),
		Status:          is.Status().String(),
		LocationAddress: loc.Address(),
		Latitude:        loc.Latitude(),
		Longitude:       loc.Longitude(),
		City:            loc.City(),
		State:           loc.State(),
		Pincode:         loc.Pincode(),
		StreetName:      loc.StreetName(),
		NearbyLandmark:  loc.NearbyLandmark(),
		ReporterID:      is.ReporterID(),
		AssignedTo:      is.AssignedTo(),
		ResolutionNotes: is.ResolutionNotes(),
		ResolvedAt:      is.ResolvedAt(),
		CreatedAt:       is.CreatedAt(),
		UpdatedAt:       is.UpdatedAt(),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewIssueStatus(model.Status)
	if err != nil {
		return nil, err
	}

	location := vo.ReconstructLocation(
		model.LocationAddress,
		model.Latitude,
		model.Longitude,
		model.City,
		model.State,
		model.Pincode,
		model.StreetName,
		model.NearbyLandmark,
	)

	return issue.ReconstructIssue(
		model.ID,
		model.TicketID,
		model.Title,
		model.Description,
		model.CategoryID,
		priority,
		status,
		location,
		model.ReporterID,
		model.AssignedTo,
		model.ResolutionNotes,
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *IssueMapperImpl) ImageToModel(im *issue.Image) *models.IssueImageModel {
	return &models.IssueImageModel{
		ID:         im.ID(),
		IssueID:    im.IssueID(),
		ImageURL:   im.ImageURL(),
		Caption:    im.Caption(),
		UploadedAt: im.UploadedAt(),
	}
}

func (m *IssueMapperImpl) ImageToDomain(model *models.IssueImageModel) (*issue.Image, error) {
	return issue.ReconstructImage(
		model.ID,
		model.IssueID,
		model.ImageURL,
		model.Caption,
		model.UploadedAt,
	)
}

func (m *IssueMapperImpl) CommentToModel(c *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		IssueID:    c.IssueID(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.CommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.UserID,
		model.Content,
		model.IsInternal,
		model.CreatedAt,
	)
}

func (m *IssueMapperImpl) HistoryToModel(h *issue.StatusHistory) *models.StatusHistoryModel {
	model := &models.StatusHistoryModel{
		ID:        h.ID(),
		IssueID:   h.IssueID(),
		NewStatus: h.NewStatus().String(),
		ChangedBy: h.ChangedBy(),
		Reason:    h.Reason(),
		CreatedAt: h.CreatedAt(),
	}

	if h.OldStatus() != nil {
		old := h.OldStatus().String()
		model.OldStatus = &old
	}

	return model
}

func (m *IssueMapperImpl) HistoryToDomain(model *models.StatusHistoryModel) (*issue.StatusHistory, error) {
	newStatus, err := vo.NewIssueStatus(model.NewStatus)
	if err != nil {
		return nil, err
	}

	var oldStatus *vo.IssueStatus
	if model.OldStatus != nil {
		os, err := vo.NewIssueStatus(*model.OldStatus)
		if err != nil {
			return nil, err
		}
		oldStatus = &os
	}

	return issue.ReconstructStatusHistory(
		model.ID,
		model.IssueID,
		oldStatus,
		newStatus,
		model.ChangedBy,
		model.Reason,
		model.CreatedAt,
	)
}
