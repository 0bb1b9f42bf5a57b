// file: internals/features/auth/controller/auth_controller.go
package controller

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"planhebdo_backend/internals/configs"
	dto "planhebdo_backend/internals/features/auth/dto"
)

type AuthController struct {
	Users map[string]string
}

func NewAuthController() *AuthController {
	return &AuthController{Users: configs.ValidUsers}
}

// POST /login — vérifie le couple utilisateur/mot de passe contre la
// liste fixe des enseignants. Pas de session ni de jeton : le front ne
// garde que le nom d'utilisateur.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p dto.LoginRequest
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Identifiants invalides",
		})
	}

	log.Printf("Tentative connexion : Utilisateur=%q", p.Username)
	expected, known := ctl.Users[p.Username]
	// comparaison à temps constant même pour un utilisateur inconnu
	match := subtle.ConstantTimeCompare([]byte(expected), []byte(p.Password)) == 1
	if known && match {
		log.Printf("Connexion réussie pour : %s", p.Username)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  true,
			"username": p.Username,
		})
	}

	log.Printf("Échec connexion pour : %s", p.Username)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Identifiants invalides",
	})
}
