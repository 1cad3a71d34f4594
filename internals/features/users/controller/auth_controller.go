// internals/features/users/controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/configs"
	userDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/users/dto"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", user)
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated. Contact an admin.")
	}

	return h.issueToken(c, user, "Login successful")
}

// POST /auth/login-google
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req userDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	var user userModel.UserModel
	err = h.DB.First(&user, "google_id = ?", claimSet.Sub).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first Google sign-in: adopt an existing account by email or
		// provision a fresh member
		err = h.DB.First(&user, "email = ?", strings.ToLower(claimSet.Email)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			googleID := claimSet.Sub
			user = userModel.UserModel{
				Name:     claimSet.Name,
				Email:    strings.ToLower(claimSet.Email),
				Password: randomPassword(),
				GoogleID: &googleID,
			}
			if err := h.DB.Create(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create Google user")
			}
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
		} else {
			googleID := claimSet.Sub
			user.GoogleID = &googleID
			if err := h.DB.Save(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to link Google account")
			}
		}
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated. Contact an admin.")
	}
	return h.issueToken(c, user, "Login successful")
}

// POST /auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "Logged out", nil)
}

func (h *AuthController) issueToken(c *fiber.Ctx, user userModel.UserModel, msg string) error {
	if configs.JWTSecret == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, msg, userDTO.AuthResponse{AccessToken: token, User: user})
}

// randomPassword fills the not-null password column for Google-provisioned
// accounts; it never matches a bcrypt comparison.
func randomPassword() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
