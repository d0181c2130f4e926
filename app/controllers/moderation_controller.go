package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
)

// HandleCreateContentReport files a user report against a video.
func HandleCreateContentReport(c *fiber.Ctx) error {
	var report models.ContentReport
	if err := c.BodyParser(&report); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if report.VideoID == 0 || report.ReportReason == "" {
		return jsonMessage(c, fiber.StatusBadRequest, "video_id and reason are required")
	}

	// Anonymous reports are allowed; a logged-in reporter is recorded.
	if userID, ok := currentUserID(c); ok {
		report.ReporterID = &userID
	}

	report.ID = 0
	report.Status = models.ReportStatusPending
	if err := repository.GetGlobalFactory().GetContentReportRepository().Create(&report); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create report")
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// HandleListVideoReports returns all reports filed against one video.
func HandleListVideoReports(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	reports, err := repository.GetGlobalFactory().GetContentReportRepository().GetByVideo(videoID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return c.JSON(reports)
}

// HandleListPendingReports returns unreviewed reports.
func HandleListPendingReports(c *fiber.Ctx) error {
	reports, err := repository.GetGlobalFactory().GetContentReportRepository().GetPending()
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return c.JSON(reports)
}

type resolveReportRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

// HandleResolveReport closes a report as reviewed or dismissed.
func HandleResolveReport(c *fiber.Ctx) error {
	reviewerID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var req resolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status != models.ReportStatusReviewed && req.Status != models.ReportStatusDismissed {
		return jsonMessage(c, fiber.StatusBadRequest, "Status must be reviewed or dismissed")
	}

	report, err := repository.GetGlobalFactory().GetContentReportRepository().Update(id, map[string]interface{}{
		"status":      req.Status,
		"reviewed_by": reviewerID,
		"reviewed_at": time.Now(),
		"resolution":  req.Resolution,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Report not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to resolve report")
	}
	return c.JSON(report)
}

// HandleListModerationQueue returns pending queue entries, oldest first.
func HandleListModerationQueue(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	items, err := repository.GetGlobalFactory().GetModerationQueueRepository().GetPending(limit)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list moderation queue")
	}
	return c.JSON(items)
}

// HandleAssignModeration claims a queue entry for the calling moderator.
func HandleAssignModeration(c *fiber.Ctx) error {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid queue id")
	}

	item, err := repository.GetGlobalFactory().GetModerationQueueRepository().Assign(id, moderatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Queue entry not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to assign queue entry")
	}
	return c.JSON(item)
}

type moderationDecisionRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
	Rating  string `json:"content_rating"`
}

// HandleModerationDecision finishes a review: the queue entry and the video
// itself both record the outcome.
func HandleModerationDecision(c *fiber.Ctx) error {
	moderatorID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid queue id")
	}

	var req moderationDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}

	factory := repository.GetGlobalFactory()
	queue := factory.GetModerationQueueRepository()

	item, err := queue.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Queue entry not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to load queue entry")
	}

	queueStatus := models.QueueStatusRejected
	videoStatus := models.ModerationStatusRejected
	if req.Approve {
		queueStatus = models.QueueStatusApproved
		videoStatus = models.ModerationStatusApproved
	}

	if _, err := queue.Update(item.ID, map[string]interface{}{"status": queueStatus}); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update queue entry")
	}

	now := time.Now()
	videoChanges := map[string]interface{}{
		"moderation_status": videoStatus,
		"moderation_notes":  req.Notes,
		"moderated_by":      moderatorID,
		"moderated_at":      now,
	}
	if req.Rating != "" {
		videoChanges["content_rating"] = req.Rating
	}
	video, err := factory.GetVideoRepository().Update(item.VideoID, videoChanges)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update video moderation state")
	}

	return c.JSON(fiber.Map{"success": true, "video": video})
}
