package dto

import (
	"time"

	"nagarsetu/internal/domain/issue"
)

type LocationDTO struct {
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Pincode        string  `json:"pincode"`
	StreetName     string  `json:"street_name"`
	NearbyLandmark string  `json:"nearby_landmark"`
}

type CategoryRefDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ImageDTO struct {
	ID         uint      `json:"id"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	Content    string    `json:"content"`
	ContentHTML string   `json:"content_html,omitempty"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatusHistoryDTO struct {
	ID        uint      `json:"id"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy uint      `json:"changed_by"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type IssueListItemDTO struct {
	ID           uint           `json:"id"`
	TicketID     string         `json:"ticket_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     CategoryRefDTO `json:"category"`
	Priority     string         `json:"priority"`
	Status       string         `json:"status"`
	Location     LocationDTO    `json:"location"`
	ReporterID   *uint          `json:"reporter_id"`
	ReporterName string         `json:"reporter_name,omitempty"`
	AssignedTo   *uint          `json:"assigned_to"`
	AssigneeName string         `json:"assignee_name,omitempty"`
	Images       []ImageDTO     `json:"images"`
	ResolvedAt   *time.Time     `json:"resolved_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type IssueDetailDTO struct {
	IssueListItemDTO
	ResolutionNotes *string      `json:"resolution_notes"`
	Comments        []CommentDTO `json:"comments"`
}

type IssueStatsDTO struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
}

func ToLocationDTO(is *issue.Issue) LocationDTO {
	loc := is.Location()
	return LocationDTO{
		Address:        loc.Address(),
		Latitude:       loc.Latitude(),
		Longitude:      loc.Longitude(),
		City:           loc.City(),
		State:          loc.State(),
		Pincode:        loc.Pincode(),
		StreetName:     loc.StreetName(),
		NearbyLandmark: loc.NearbyLandmark(),
	}
}

func ToImageDTO(im *issue.Image) ImageDTO {
	return ImageDTO{
		ID:         im.ID(),
		ImageURL:   im.ImageURL(),
		Caption:    im.Caption(),
		UploadedAt: im.UploadedAt(),
	}
}

func ToImageDTOs(images []*issue.Image) []ImageDTO {
	dtos := make([]ImageDTO, 0, len(images))
	for _, im := range images {
		dtos = append(dtos, ToImageDTO(im))
	}
	return dtos
}

func ToCommentDTO(c *issue.Comment, userName, contentHTML string) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		UserID:      c.UserID(),
		UserName:    userName,
		Content:     c.Content(),
		ContentHTML: contentHTML,
		IsInternal:  c.IsInternal(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToStatusHistoryDTO(h *issue.StatusHistory) StatusHistoryDTO {
	d := StatusHistoryDTO{
		ID:        h.ID(),
		NewStatus: h.NewStatus().String(),
		ChangedBy: h.ChangedBy(),
		Reason:    h.Reason(),
		CreatedAt: h.CreatedAt(),
	}
	if h.OldStatus() != nil {
		old := h.OldStatus().String()
		d.OldStatus = &old
	}
	return d
}

func ToIssueListItemDTO(is *issue.Issue, category CategoryRefDTO, images []*issue.Image, reporterName, assigneeName string) IssueListItemDTO {
	return IssueListItemDTO{
		ID:           is.ID(),
		TicketID:     is.TicketID(),
		Title:        is.Title(),
		Description:  is.Description(),
		Category:     category,
		Priority:     is.Priority().String(),
		Status:       is.Status().String(),
		Location:     ToLocationDTO(is),
		ReporterID:   is.ReporterID(),
		ReporterName: reporterName,
		AssignedTo:   is.AssignedTo(),
		AssigneeName: assigneeName,
		Images:       ToImageDTOs(images),
		ResolvedAt:   is.ResolvedAt(),
		CreatedAt:    is.CreatedAt(),
		UpdatedAt:    is.UpdatedAt(),
	}
}
