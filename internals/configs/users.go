package configs

// ValidUsers liste les enseignants autorisés à se connecter.
// Table figée côté serveur : le mot de passe est volontairement identique
// à l'identifiant (exigence produit, pas de gestion de comptes).
var ValidUsers = map[string]string{
	"Zine":          "Zine",
	"Abas":          "Abas",
	"Tonga":         "Tonga",
	"Ilyas":         "Ilyas",
	"Morched":       "Morched",
	"عبد الرحمان":   "عبد الرحمان",
	"Youssif":       "Youssif",
	"عبد العزيز":    "عبد العزيز",
	"Med Ali":       "Med Ali",
	"Sami":          "Sami",
	"جابر":          "جابر",
	"محمد الزبيدي":  "محمد الزبيدي",
	"فارس":          "فارس",
	"AutreProf":     "AutreProf",
	"Mohamed":       "Mohamed",
}
