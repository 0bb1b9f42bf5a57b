package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	WordTemplateURL   string
	AIWordTemplateURL string
	GeminiAPIKey      string
)

// Modèle Word par défaut pour les plans de leçon générés par IA.
// Remplaçable via AI_WORD_TEMPLATE_URL.
const defaultAIWordTemplateURL = "https://cdn.glitch.global/d411e70d-81bc-41b6-902e-a5403e356bac/Plan_de_le%C3%A7on_modele.docx?v=1730495303423"

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Pas de fichier .env, utilisation des variables d'environnement système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}

	WordTemplateURL = GetEnv("WORD_TEMPLATE_URL")
	AIWordTemplateURL = GetEnv("AI_WORD_TEMPLATE_URL", defaultAIWordTemplateURL)
	GeminiAPIKey = GetEnv("GEMINI_API_KEY")

	if WordTemplateURL == "" {
		log.Println("⚠️ WORD_TEMPLATE_URL non défini. La génération de documents Word échouera.")
	}
	if GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY non défini. La génération de plans de leçon par IA sera désactivée.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
