package dto

import (
	issueusecases "nagarsetu/internal/application/issue/usecases"
)

// CreateIssueRequest is the JSON body for filing an issue. Multipart
// submissions carry the same fields as form values plus image files.
type CreateIssueRequest struct {
	Title          string  `json:"title" form:"title" validate:"required,min=5,max=255"`
	Description    string  `json:"description" form:"description" validate:"required,min=10"`
	CategoryID     uint    `json:"category_id" form:"category_id" validate:"required,gte=1"`
	Priority       string  `json:"priority" form:"priority" validate:"required,oneof=low medium high urgent"`
	Address        string  `json:"address" form:"address" validate:"required"`
	Latitude       float64 `json:"latitude" form:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" form:"longitude" validate:"gte=-180,lte=180"`
	City           string  `json:"city" form:"city" validate:"required"`
	State          string  `json:"state" form:"state" validate:"required"`
	Pincode        string  `json:"pincode" form:"pincode" validate:"required,len=6"`
	StreetName     string  `json:"street_name" form:"street_name" validate:"required,max=255"`
	NearbyLandmark string  `json:"nearby_landmark" form:"nearby_landmark" validate:"required,max=255"`
}

func (r *CreateIssueRequest) ToCommand(reporterID uint, images []issueusecases.CreateIssueImage) issueusecases.CreateIssueCommand {
	return issueusecases.CreateIssueCommand{
		Title:          r.Title,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		Priority:       r.Priority,
		Address:        r.Address,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		City:           r.City,
		State:          r.State,
		Pincode:        r.Pincode,
		StreetName:     r.StreetName,
		NearbyLandmark: r.NearbyLandmark,
		ReporterID:     reporterID,
		Images:         images,
	}
}

type UpdateIssueStatusRequest struct {
	Status          string  `json:"status" validate:"required,oneof=pending in_progress resolved rejected"`
	Reason          string  `json:"reason" validate:"max=500"`
	AssignTo        *uint   `json:"assign_to"`
	ResolutionNotes *string `json:"resolution_notes"`
}

type AddCommentRequest struct {
	Content    string `json:"content" validate:"required,max=5000"`
	IsInternal bool   `json:"is_internal"`
}
