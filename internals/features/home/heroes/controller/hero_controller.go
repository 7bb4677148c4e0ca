package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yayasanku_backend/internals/features/home/heroes/dto"
	"yayasanku_backend/internals/features/home/heroes/model"
	helper "yayasanku_backend/internals/helpers"
	ossHelper "yayasanku_backend/internals/helpers/oss"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateHero = validator.New()

type HeroController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewHeroController(db *gorm.DB, svc *ossHelper.OSSService) *HeroController {
	return &HeroController{DB: db, OSS: svc}
}

// =============================
// ➕ Create Hero
// =============================
func (ctrl *HeroController) CreateHero(c *fiber.Ctx) error {
	var body dto.CreateHeroRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if fh := ossHelper.FormFile(c, "image", "hero_image"); fh != nil && ctrl.OSS != nil {
		url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "heroes")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		body.HeroImageURL = url
	}
	if err := validateHero.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hero := model.HeroModel{
		HeroTitle:    body.HeroTitle,
		HeroSubtitle: body.HeroSubtitle,
		HeroImageURL: body.HeroImageURL,
		HeroTagIDs:   body.HeroTagIDs,
		HeroOrder:    body.HeroOrder,
		HeroIsActive: true,
	}
	if body.HeroIsActive != nil {
		hero.HeroIsActive = *body.HeroIsActive
	}
	if err := repository.Create(ctrl.DB, &hero); err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}
	return helper.JsonCreated(c, "Hero created", dto.HeroRow(hero))
}

// =============================
// 🔄 Update Hero
// =============================
func (ctrl *HeroController) UpdateHero(c *fiber.Ctx) error {
	var body dto.UpdateHeroRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	hero, err := repository.FindByID[model.HeroModel](ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}

	if fh := ossHelper.FormFile(c, "image", "hero_image"); fh != nil && ctrl.OSS != nil {
		url, upErr := ctrl.OSS.UploadImageAsWebP(c.UserContext(), fh, "heroes")
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		body.HeroImageURL = url
	}
	if err := validateHero.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hero.HeroTitle = body.HeroTitle
	hero.HeroSubtitle = body.HeroSubtitle
	hero.HeroImageURL = body.HeroImageURL
	hero.HeroTagIDs = body.HeroTagIDs
	hero.HeroOrder = body.HeroOrder
	if body.HeroIsActive != nil {
		hero.HeroIsActive = *body.HeroIsActive
	}

	if err := repository.Save(ctrl.DB, hero); err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}
	return helper.JsonUpdated(c, "Hero updated", dto.HeroRow(*hero))
}

// =============================
// 🗑️ Delete Hero
// =============================
func (ctrl *HeroController) DeleteHero(c *fiber.Ctx) error {
	if err := repository.Delete[model.HeroModel](ctrl.DB, c.Params("id")); err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}
	return helper.JsonDeleted(c, "Hero deleted")
}

// =============================
// 📄 List Heroes
// =============================
func (ctrl *HeroController) GetHeroes(c *fiber.Ctx) error {
	rows, err := queries.GetHeroes(ctrl.DB, queries.HeroOptions{
		Active: helper.QueryBoolPtr(c, "active"),
	})
	if err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}
	return helper.JsonList(c, "OK", rows, nil)
}

func (ctrl *HeroController) GetHeroByID(c *fiber.Ctx) error {
	row, err := queries.GetHeroByID(ctrl.DB, c.Params("id"))
	if err != nil {
		return helper.JsonStoreError(c, err, "Hero not found")
	}
	return helper.JsonOK(c, "OK", row)
}
