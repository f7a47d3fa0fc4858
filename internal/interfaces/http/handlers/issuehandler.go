package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	issueusecases "nagarsetu/internal/application/issue/usecases"
	"nagarsetu/internal/infrastructure/storage"
	"nagarsetu/internal/interfaces/dto"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/utils"
)

type IssueHandler struct {
	createIssue       issueusecases.CreateIssueExecutor
	listIssues        issueusecases.ListIssuesExecutor
	getIssue          issueusecases.GetIssueExecutor
	transitionStatus  issueusecases.TransitionStatusExecutor
	addComment        issueusecases.AddCommentExecutor
	listComments      issueusecases.ListCommentsExecutor
	listStatusHistory issueusecases.ListStatusHistoryExecutor
	getIssueStats     issueusecases.GetIssueStatsExecutor
	imageStore        storage.ImageStore
	maxImages         int
	logger            logger.Interface
}

func NewIssueHandler(
	createIssue issueusecases.CreateIssueExecutor,
	listIssues issueusecases.ListIssuesExecutor,
	getIssue issueusecases.GetIssueExecutor,
	transitionStatus issueusecases.TransitionStatusExecutor,
	addComment issueusecases.AddCommentExecutor,
	listComments issueusecases.ListCommentsExecutor,
	listStatusHistory issueusecases.ListStatusHistoryExecutor,
	getIssueStats issueusecases.GetIssueStatsExecutor,
	imageStore storage.ImageStore,
	maxImages int,
	logger logger.Interface,
) *IssueHandler {
	return &IssueHandler{
		createIssue:       createIssue,
		listIssues:        listIssues,
		getIssue:          getIssue,
		transitionStatus:  transitionStatus,
		addComment:        addComment,
		listComments:      listComments,
		listStatusHistory: listStatusHistory,
		getIssueStats:     getIssueStats,
		imageStore:        imageStore,
		maxImages:         maxImages,
		logger:            logger,
	}
}

// CreateIssue files a new civic issue. JSON bodies carry the issue fields
// only; multipart submissions additionally attach photos under "images"
// with optional parallel "captions" values.
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.CreateIssueRequest
	var images []issueusecases.CreateIssueImage

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart form for create issue", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}

		uploaded, err := h.saveUploadedImages(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		images = uploaded
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create issue", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createIssue.Execute(c.Request.Context(), req.ToCommand(userID, images))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue reported successfully")
}

func (h *IssueHandler) saveUploadedImages(c *gin.Context) ([]issueusecases.CreateIssueImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form", err.Error())
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if h.maxImages > 0 && len(files) > h.maxImages {
		return nil, errors.NewValidationError("too many images attached")
	}

	captions := form.Value["captions"]

	images := make([]issueusecases.CreateIssueImage, 0, len(files))
	for i, file := range files {
		url, err := h.imageStore.Save(c, file)
		if err != nil {
			h.logger.Warnw("failed to store uploaded image", "error", err, "filename", file.Filename)
			return nil, errors.NewValidationError("failed to store image", err.Error())
		}

		caption := ""
		if i < len(captions) {
			caption = captions[i]
		}
		images = append(images, issueusecases.CreateIssueImage{ImageURL: url, Caption: caption})
	}
	return images, nil
}

func (h *IssueHandler) ListIssues(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := issueusecases.ListIssuesQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		City:     c.Query("city"),
		State:    c.Query("state"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		Limit:    pagination.Limit,
	}

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid category ID"))
			return
		}
		id := uint(categoryID)
		query.CategoryID = &id
	}

	result, err := h.listIssues.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Limit)
}

func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getIssue.Execute(c.Request.Context(), issueusecases.GetIssueQuery{
		IssueID:         issueID,
		IncludeInternal: isStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", detail)
}

func (h *IssueHandler) GetIssueByTicketID(c *gin.Context) {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("ticket ID is required"))
		return
	}

	detail, err := h.getIssue.Execute(c.Request.Context(), issueusecases.GetIssueQuery{
		TicketID:        ticketID,
		IncludeInternal: isStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", detail)
}

func (h *IssueHandler) UpdateIssueStatus(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update issue status", "issue_id", issueID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transitionStatus.Execute(c.Request.Context(), issueusecases.TransitionStatusCommand{
		IssueID:         issueID,
		NewStatus:       req.Status,
		Reason:          req.Reason,
		ChangedBy:       userID,
		AssignTo:        req.AssignTo,
		ResolutionNotes: req.ResolutionNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Issue status updated", result)
}

func (h *IssueHandler) AddComment(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "issue_id", issueID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Only staff may leave internal notes.
	if req.IsInternal && !isStaff(c) {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("internal comments require staff access"))
		return
	}

	result, err := h.addComment.Execute(c.Request.Context(), issueusecases.AddCommentCommand{
		IssueID:    issueID,
		UserID:     userID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

func (h *IssueHandler) ListComments(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listComments.Execute(c.Request.Context(), issueusecases.ListCommentsQuery{
		IssueID:         issueID,
		IncludeInternal: isStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", comments)
}

func (h *IssueHandler) ListStatusHistory(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	history, err := h.listStatusHistory.Execute(c.Request.Context(), issueusecases.ListStatusHistoryQuery{
		IssueID: issueID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", history)
}

func (h *IssueHandler) GetStats(c *gin.Context) {
	stats, err := h.getIssueStats.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", stats)
}
