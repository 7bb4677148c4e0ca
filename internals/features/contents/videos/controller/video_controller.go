package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/contents/videos/dto"
	"yayasanku_backend/internals/features/contents/videos/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateVideo = validator.New()

type VideoController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewVideoController(db *gorm.DB, svc *ossHelper.OSSService) *VideoController {
	return &VideoController{DB: db, OSS: svc}
}

// applyUploads pushes the video file and thumbnail (when present) to object
// storage and rewrites the URL fields. The upload happens before the row
// write; a failed write afterwards orphans the object.
func (ctrl *VideoController) applyUploads(c *fiber.Ctx, m *model.VideoModel) error {
	if ctrl.OSS == nil {
		return nil
	}
	if fh := ossHelper.FormFile(c, "file", "video_file"); fh != nil {
		url, err := ctrl.OSS.UploadFile(c.UserContext(), fh, "videos")
		if err != nil {
			return err
		}
		m.VideoFileURL = &url
		m.VideoFileSize = fh.Size
		m.VideoSource = model.VideoSourceUpload
	}
	if fh := ossHelper.FormFile(c, "thumbnail", "video_thumbnail"); fh != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "videos/thumbnails")
		if err != nil {
			return err
		}
		m.VideoThumbnailURL = &url
	}
	return nil
}

// =============================
// ➕ Create Video
// =============================
func (ctrl *VideoController) CreateVideo(c *fiber.Ctx) error {
	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVideo.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	status := body.VideoStatus
	if status == "" {
		status = model.VideoStatusDraft
	}
	source := body.VideoSource
	if source == "" {
		source = model.VideoSourceUpload
	}
	video := model.VideoModel{
		VideoTitle:         body.VideoTitle,
		VideoDescription:   body.VideoDescription,
		VideoExcerpt:       body.VideoExcerpt,
		VideoFileURL:       body.VideoFileURL,
		VideoThumbnailURL:  body.VideoThumbnailURL,
		VideoSource:        source,
		VideoYoutubeID:     body.VideoYoutubeID,
		VideoFacebookEmbed: body.VideoFacebookEmbed,
		VideoAuthor:        body.VideoAuthor,
		VideoTagIDs:        body.VideoTagIDs,
		VideoIsFeatured:    body.VideoIsFeatured,
		VideoStatus:        status,
		VideoDurationSec:   body.VideoDurationSec,
		VideoFileSize:      body.VideoFileSize,
	}
	if err := ctrl.applyUploads(c, &video); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := repository.Create(ctrl.DB, &video); err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}
	return helper.JsonCreated(c, "Video created", dto.VideoRow(video))
}

// =============================
// 🔄 Update Video
// =============================
func (ctrl *VideoController) UpdateVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVideo.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	video, err := repository.FindByID[model.VideoModel](ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}

	video.VideoTitle = body.VideoTitle
	video.VideoDescription = body.VideoDescription
	video.VideoExcerpt = body.VideoExcerpt
	video.VideoFileURL = body.VideoFileURL
	video.VideoThumbnailURL = body.VideoThumbnailURL
	if body.VideoSource != "" {
		video.VideoSource = body.VideoSource
	}
	video.VideoYoutubeID = body.VideoYoutubeID
	video.VideoFacebookEmbed = body.VideoFacebookEmbed
	video.VideoAuthor = body.VideoAuthor
	video.VideoTagIDs = body.VideoTagIDs
	video.VideoIsFeatured = body.VideoIsFeatured
	if body.VideoStatus != "" {
		video.VideoStatus = body.VideoStatus
	}
	video.VideoDurationSec = body.VideoDurationSec
	video.VideoFileSize = body.VideoFileSize
	if err := ctrl.applyUploads(c, video); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := repository.Save(ctrl.DB, video); err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}
	return helper.JsonUpdated(c, "Video updated", dto.VideoRow(*video))
}

// =============================
// 🗑️ Delete Video
// =============================
func (ctrl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	if err := repository.Delete[model.VideoModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}
	return helper.JsonDeleted(c, "Video deleted")
}

// =============================
// 📄 List Videos
// =============================
func (ctrl *VideoController) GetVideos(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	rows, total, err := queries.GetVideos(ctrl.DB, queries.VideoOptions{
		Status:     c.Query("status"),
		Featured:   helper.QueryBoolPtr(c, "featured"),
		Source:     c.Query("source"),
		SearchTerm: c.Query("search"),
		Limit:      paging.Limit,
		Offset:     paging.Offset,
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}
	pg := helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "OK", rows, pg)
}

// =============================
// 🔍 Get Video By ID
// =============================
func (ctrl *VideoController) GetVideoByID(c *fiber.Ctx) error {
	row, err := queries.GetVideoByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Video not found")
	}
	return helper.JsonOK(c, "OK", row)
}
