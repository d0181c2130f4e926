package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/app/repository"
	"github.com/filmwire/filmwire/internal/pkg/metrics/counter"
)

// HandleCreateVideo uploads a video record for the logged-in filmmaker.
func HandleCreateVideo(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var video models.Video
	if err := c.BodyParser(&video); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	video.ID = 0
	video.UserID = userID
	video.ModerationStatus = models.ModerationStatusPending
	if err := video.Validate(); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video: "+err.Error())
	}

	factory := repository.GetGlobalFactory()
	if err := factory.GetVideoRepository().Create(&video); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create video")
	}

	// New uploads go straight onto the review worklist.
	queueItem := &models.ModerationQueueItem{
		VideoID:  video.ID,
		UserID:   userID,
		Priority: models.QueuePriorityNormal,
		Status:   models.QueueStatusPending,
	}
	if err := factory.GetModerationQueueRepository().Create(queueItem); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to queue video for review")
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// HandleGetVideo returns one video.
func HandleGetVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	video, err := repository.GetGlobalFactory().GetVideoRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Video not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to get video")
	}
	return c.JSON(video)
}

// HandleListUserVideos returns the caller's videos.
func HandleListUserVideos(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	videos, err := repository.GetGlobalFactory().GetVideoRepository().GetByUser(userID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list videos")
	}
	return c.JSON(videos)
}

// HandleUpdateVideo applies a sparse update to the caller's video.
func HandleUpdateVideo(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	var changes map[string]interface{}
	if err := c.BodyParser(&changes); err != nil || len(changes) == 0 {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	// Ownership and moderation fields never move through this endpoint.
	for _, key := range []string{"id", "user_id", "moderation_status", "moderated_by", "moderated_at"} {
		delete(changes, key)
	}

	videos := repository.GetGlobalFactory().GetVideoRepository()
	video, err := videos.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Video not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	if video.UserID != userID {
		return jsonMessage(c, fiber.StatusForbidden, "Not your video")
	}

	updated, err := videos.Update(id, changes)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	return c.JSON(updated)
}

// HandleDeleteVideo removes a video together with its distributions and
// revenue rows.
func HandleDeleteVideo(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	videos := repository.GetGlobalFactory().GetVideoRepository()
	video, err := videos.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Video not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	if video.UserID != userID {
		return jsonMessage(c, fiber.StatusForbidden, "Not your video")
	}

	deleted, err := videos.Delete(id)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	return c.JSON(fiber.Map{"success": deleted})
}

// HandleCreateDistribution submits an approved video to a platform.
func HandleCreateDistribution(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var dist models.Distribution
	if err := c.BodyParser(&dist); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if dist.VideoID == 0 || dist.PlatformID == 0 {
		return jsonMessage(c, fiber.StatusBadRequest, "video_id and platform_id are required")
	}

	factory := repository.GetGlobalFactory()
	video, err := factory.GetVideoRepository().GetByID(dist.VideoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Video not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create distribution")
	}
	if video.UserID != userID {
		return jsonMessage(c, fiber.StatusForbidden, "Not your video")
	}
	if video.ModerationStatus != models.ModerationStatusApproved {
		return jsonMessage(c, fiber.StatusBadRequest, "Video must be approved before distribution")
	}
	if _, err := factory.GetPlatformRepository().GetByID(dist.PlatformID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Platform not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create distribution")
	}

	dist.ID = 0
	dist.Status = models.DistributionStatusPending
	if err := factory.GetDistributionRepository().Create(&dist); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to create distribution")
	}
	return c.Status(fiber.StatusCreated).JSON(dist)
}

// HandleListVideoDistributions returns a video's distributions.
func HandleListVideoDistributions(c *fiber.Ctx) error {
	videoID, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid video id")
	}

	dists, err := repository.GetGlobalFactory().GetDistributionRepository().GetByVideo(videoID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list distributions")
	}
	return c.JSON(dists)
}

// HandleListUserDistributions returns all distributions across the caller's
// videos.
func HandleListUserDistributions(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return jsonMessage(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	dists, err := repository.GetGlobalFactory().GetDistributionRepository().GetByUser(userID)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to list distributions")
	}
	return c.JSON(dists)
}

type updateDistributionRequest struct {
	Status             *string  `json:"status"`
	ExternalID         *string  `json:"external_id"`
	RejectionReason    *string  `json:"rejection_reason"`
	ProcessingProgress *int     `json:"processing_progress"`
	DistributionURL    *string  `json:"distribution_url"`
	Views              *int     `json:"views"`
	Revenue            *float64 `json:"revenue"`
}

// HandleUpdateDistribution advances a distribution through the pipeline.
// Status moves are checked against the forward-only transition rules.
func HandleUpdateDistribution(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid distribution id")
	}

	var req updateDistributionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}

	dists := repository.GetGlobalFactory().GetDistributionRepository()
	dist, err := dists.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Distribution not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update distribution")
	}

	changes := map[string]interface{}{}
	if req.Status != nil {
		if !models.IsValidDistributionTransition(dist.Status, *req.Status) {
			return jsonMessage(c, fiber.StatusBadRequest, "Invalid status transition")
		}
		now := time.Now()
		changes["status"] = *req.Status
		changes["last_status_update"] = now
		switch *req.Status {
		case models.DistributionStatusSubmitted:
			changes["submission_date"] = now
		case models.DistributionStatusActive:
			changes["approval_date"] = now
		}
	}
	if req.ExternalID != nil {
		changes["external_id"] = *req.ExternalID
	}
	if req.RejectionReason != nil {
		changes["rejection_reason"] = *req.RejectionReason
	}
	if req.ProcessingProgress != nil {
		changes["processing_progress"] = *req.ProcessingProgress
	}
	if req.DistributionURL != nil {
		changes["distribution_url"] = *req.DistributionURL
	}
	if req.Views != nil {
		changes["views"] = *req.Views
	}
	if req.Revenue != nil {
		changes["revenue"] = *req.Revenue
	}
	if len(changes) == 0 {
		return jsonMessage(c, fiber.StatusBadRequest, "No changes provided")
	}

	updated, err := dists.Update(id, changes)
	if err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to update distribution")
	}
	return c.JSON(updated)
}

// HandleDistributionView buffers a view increment for a distribution in
// Redis; a background flusher folds the counts into the database.
func HandleDistributionView(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonMessage(c, fiber.StatusBadRequest, "Invalid distribution id")
	}

	if _, err := repository.GetGlobalFactory().GetDistributionRepository().GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonMessage(c, fiber.StatusNotFound, "Distribution not found")
		}
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to record view")
	}

	if err := counter.AddDistributionView(id); err != nil {
		return jsonMessage(c, fiber.StatusInternalServerError, "Failed to record view")
	}
	return c.JSON(fiber.Map{"success": true})
}
