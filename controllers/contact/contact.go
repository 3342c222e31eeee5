package contactController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	"edule/utils"
	contactValidator "edule/validators/contact"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact logs the submission and notifies the support inbox. Contact
// messages are not persisted.
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	log.Printf("Contact form submission: name=%s email=%s subject=%q", reqData.Name, reqData.Email, reqData.Subject)
	utils.SendContactNotification(reqData.Name, reqData.Email, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for contacting us! We will get back to you soon.", nil)
}

func BecomeInstructor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstructor").(*contactValidator.InstructorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := database.Database.Messages.Update(func(tx *database.Tx[models.Message]) error {
		tx.Records = append(tx.Records, models.Message{
			ID:         tx.NextID(),
			Type:       "instructor_request",
			Name:       reqData.Name,
			Email:      reqData.Email,
			Phone:      reqData.Phone,
			Expertise:  reqData.Expertise,
			Experience: reqData.Experience,
			Message:    reqData.Message,
			Status:     models.MessagePending,
			CreatedAt:  time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		log.Printf("Error saving instructor application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error submitting application", nil)
	}

	utils.SendInstructorAck(reqData.Email, reqData.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your interest! We will review your application and contact you soon.", nil)
}
