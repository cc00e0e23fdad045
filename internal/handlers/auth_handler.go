package handlers

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/imshubham07/Brainly/internal/apperrors"
	"github.com/imshubham07/Brainly/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var usernameRegexp = regexp.MustCompile(`^[a-z0-9_]+$`)

// AuthHandler handles HTTP requests for signup and signin.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler and registers the custom
// username rule (lowercase letters, digits and underscore only).
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	validate := validator.New()
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	return &AuthHandler{
		authService: authService,
		validate:    validate,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleSignup)
	router.Post("/signin", h.HandleSignin)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=4,username"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest represents the request body for signin.
type SigninRequest struct {
	Username string `json:"username" validate:"required,min=4"`
	Password string `json:"password" validate:"required,min=8"`
}

// validationMessages flattens validator errors into a field -> message map
// for the JSON error body.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}

// HandleSignup handles new user registration. Validation failures and
// duplicate usernames both answer 411, the status existing clients key on.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusLengthRequired).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.authService.Signup(req.Username, req.Password); err != nil {
		log.Printf("Error signing up user %s: %v", req.Username, err)
		if errors.Is(err, apperrors.ErrDuplicateUser) {
			return c.Status(fiber.StatusLengthRequired).JSON(fiber.Map{
				"message": "user already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not sign up user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "user signed up",
	})
}

// HandleSignin authenticates a user and returns a session token.
func (h *AuthHandler) HandleSignin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signin request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusLengthRequired).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
	}

	token, err := h.authService.Signin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "invalid username or password",
			})
		}
		log.Printf("Error during signin for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not sign in",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
