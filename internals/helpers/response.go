// file: internals/helpers/response.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// JsonError : corps d'erreur standard {"message": ...}.
// Tous les échecs de requête passent par ici, rien ne remonte brut.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonMessage : réponse de succès {"message": ...}.
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// SendDocument envoie un binaire Office en pièce jointe.
func SendDocument(c *fiber.Ctx, filename, contentType string, body []byte) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(body)
}

const (
	MIMEWordDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEExcelWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
