package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/recipeGrab/internal/models"
	"github.com/denisAlshanov/recipeGrab/internal/services/youtube"
	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

type VideoHandler struct {
	youtube youtube.YouTubeClient
}

func NewVideoHandler(youtube youtube.YouTubeClient) *VideoHandler {
	return &VideoHandler{youtube: youtube}
}

// FetchVideo godoc
// @Summary Fetch YouTube video metadata
// @Description Resolve a YouTube URL to its video id and return the video's title, description, channel, publish date and thumbnail.
// @Tags videos
// @Accept json
// @Produce json
// @Param request body models.FetchVideoRequest true "YouTube URL"
// @Success 200 {object} models.FetchVideoResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/fetch-video [post]
func (h *VideoHandler) FetchVideo(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.FetchVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, bindingError(err))
		return
	}

	videoID, ok := youtube.ExtractVideoID(req.YoutubeURL)
	if !ok {
		errorResponse(c, utils.NewInvalidLinkError(req.YoutubeURL))
		return
	}

	meta, err := h.youtube.GetVideoMetadata(ctx, videoID)
	if err != nil {
		appErr := utils.AsAppError(err)
		utils.LogError(ctx, "Failed to fetch video metadata", err, utils.Fields{
			"video_id": videoID,
			"code":     appErr.Code,
		})
		errorResponse(c, appErr)
		return
	}

	c.JSON(http.StatusOK, models.FetchVideoResponse{
		Success:       true,
		VideoMetadata: *meta,
	})
}
