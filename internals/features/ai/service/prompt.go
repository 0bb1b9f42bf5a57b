// file: internals/features/ai/service/prompt.go
package service

import "fmt"

const promptTemplate = `
Génère le contenu pour un plan de leçon basé sur les informations suivantes. Réponds de manière concise pour chaque section.
- Leçon: %s
- Matière: %s
- Classe: %s

Structure ta réponse EXACTEMENT comme suit, en utilisant "###" comme séparateur AVANT chaque nom de section.

### METHODES:
[Décris ici les méthodes pédagogiques (ex: exposé dialogué, travail de groupe, etc.)]

### OUTILS:
[Liste ici les outils et supports didactiques (ex: manuel scolaire page X, TBI, etc.)]

### OBJECTIFS:
[Liste ici les objectifs d'apprentissage clairs (ex: - Comprendre le concept de... - Être capable d'appliquer...)]

### MINUTAGE:
[Propose un découpage temporel (ex: - Accueil (5 min) - Activité (20 min) - Synthèse (10 min))]

### CONTENU:
[Décris ici les étapes clés de la leçon de manière détaillée.]

### RESSOURCES:
[Récapitule le matériel spécifique nécessaire.]

### DEVOIRS:
[Indique clairement les devoirs à faire.]

### DIFF_LENTS:
[Propose des stratégies pour les élèves en difficulté.]

### DIFF_PERFORMANTS:
[Propose des défis pour les élèves avancés.]

### DIFF_TOUS:
[Propose des stratégies générales pour tous les élèves.]
`

// BuildPrompt assemble le prompt de génération à partir des champs de la
// ligne. Les champs vides deviennent "Non spécifié".
func BuildPrompt(lecon, matiere, classe string) string {
	return fmt.Sprintf(promptTemplate,
		orDefault(lecon, "Non spécifié"),
		orDefault(matiere, "Non spécifié"),
		orDefault(classe, "Non spécifié"),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
