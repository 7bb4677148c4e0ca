package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yayasanku_backend/internals/configs"
	"yayasanku_backend/internals/features/users/dto"
	"yayasanku_backend/internals/features/users/model"
	helper "yayasanku_backend/internals/helpers"
	authMW "yayasanku_backend/internals/middlewares/auth"
	"yayasanku_backend/internals/queries"
	"yayasanku_backend/internals/repository"
)

var validateAuth = validator.New()

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func signAccessToken(u *model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.UserID,
		"email": u.UserEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// =============================
// 📝 Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if _, err := queries.GetUserByEmail(ctrl.DB, email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonStoreError(c, err, "User not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserEmail:        email,
		UserPasswordHash: string(hash),
	}
	if err := repository.Create(ctrl.DB, &user); err != nil {
		return helper.JsonStoreError(c, err, "User not found")
	}
	return helper.JsonCreated(c, "Registered", dto.UserRow(user))
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := queries.GetUserByEmail(ctrl.DB, body.Email)
	if err != nil {
		// Same response for an unknown email and a wrong password.
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged in", fiber.Map{
		"access_token": token,
		"user":         dto.UserRow(*user),
	})
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// =============================
// 👤 Me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	id, _ := c.Locals(authMW.LocUserID).(string)
	if id == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := repository.FindByID[model.UserModel](ctrl.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err, "User not found")
	}
	return helper.JsonOK(c, "OK", dto.UserRow(*user))
}
