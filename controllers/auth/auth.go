package authController

import (
	"edule/config"
	"edule/database"
	"edule/middleware"
	"edule/models"
	authValidator "edule/validators/auth"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEmailTaken    = errors.New("email already registered")
	errUserNotFound  = errors.New("user not found")
	errWrongPassword = errors.New("wrong password")
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	var newUser models.User
	err = database.Database.Users.Update(func(tx *database.Tx[models.User]) error {
		// Check if email already exists
		for _, user := range tx.Records {
			if user.Email == reqData.Email {
				return errEmailTaken
			}
		}

		newUser = models.User{
			ID:        tx.NextID(),
			Name:      reqData.Name,
			Email:     reqData.Email,
			Password:  string(hashedPassword),
			IsAdmin:   false,
			CreatedAt: time.Now().UTC(),
		}
		tx.Records = append(tx.Records, newUser)
		return nil
	})

	if errors.Is(err, errEmailTaken) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This email is already taken", nil)
	}
	if err != nil {
		log.Printf("Error saving user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error during registration", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration successful!", fiber.Map{
		"user": newUser.Sanitize(),
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	users, err := database.Database.Users.All()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error during login", nil)
	}

	var user models.User
	found := false
	for _, u := range users {
		if u.Email == reqData.Email {
			user = u
			found = true
			break
		}
	}

	// Validate password
	if !found || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)) != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.IsAdmin)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user.Sanitize(),
		"token": token,
	})
}

func ChangePassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	authUserID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if reqData.UserID != authUserID && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	// Hash new password outside the store lock
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	err = database.Database.Users.Update(func(tx *database.Tx[models.User]) error {
		for i := range tx.Records {
			user := &tx.Records[i]
			if user.ID != reqData.UserID {
				continue
			}
			// Verify current password
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)) != nil {
				return errWrongPassword
			}
			user.Password = string(hashedPassword)
			now := time.Now().UTC()
			user.PasswordUpdatedAt = &now
			return nil
		}
		return errUserNotFound
	})

	if errors.Is(err, errUserNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}
	if errors.Is(err, errWrongPassword) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect", nil)
	}
	if err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error changing password", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully!", nil)
}
