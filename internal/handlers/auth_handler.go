package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/httpx"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/service"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CSRF issues a fresh CSRF token as a cookie plus response body.
func (h *AuthHandler) CSRF(c *fiber.Ctx) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return httpx.Internal(c, "csrf_generation_failed")
	}
	token := hex.EncodeToString(buf)

	c.Cookie(&fiber.Cookie{
		Name:     "mh_csrf",
		Value:    token,
		Path:     "/",
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"csrf_token": token})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	input.Email = validation.NormalizeEmail(input.Email)
	if !validation.ValidateEmail(input.Email) {
		return httpx.BadRequest(c, "invalid_email", "A valid email is required")
	}
	if !validation.ValidatePassword(input.Password) {
		return httpx.BadRequest(c, "weak_password", "Password is too short")
	}

	result, err := h.authService.Register(input)
	if err != nil {
		return httpx.FromError(c, err)
	}

	h.setAuthCookies(c, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input service.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	input.Email = validation.NormalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return httpx.BadRequest(c, "missing_credentials", "Email and password are required")
	}

	result, err := h.authService.Login(input)
	if err != nil {
		return httpx.FromError(c, err)
	}

	h.setAuthCookies(c, result)
	return c.JSON(result)
}

// Refresh rotates the refresh token from the HttpOnly cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	raw := c.Cookies("mh_refresh")
	if raw == "" {
		return httpx.Unauthorized(c, "missing_refresh_token", "Missing refresh token")
	}

	result, err := h.authService.Refresh(raw)
	if err != nil {
		return httpx.FromError(c, err)
	}

	h.setAuthCookies(c, result)
	return c.JSON(result)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Cookies("mh_refresh")); err != nil {
		return httpx.FromError(c, err)
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "mh_access", Value: "", Path: "/", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "mh_refresh", Value: "", Path: "/", Expires: expired, HTTPOnly: true})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, result *service.AuthResponse) {
	c.Cookie(&fiber.Cookie{
		Name:     "mh_access",
		Value:    result.AccessToken,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(15 * time.Minute),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "mh_refresh",
		Value:    result.RefreshToken,
		Path:     "/api/auth",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}
