package story

import (
	"fmt"
	"strings"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// summarySeparator splits the backend response into chapter text and summary.
const summarySeparator = "---RESUME---"

// PreviousChapter carries the context of an earlier chapter of the same book,
// passed to the backend so the story stays coherent.
type PreviousChapter struct {
	Title string
	Text  string
}

const strictnessFree = `
LIBERTÉ CRÉATIVE :
- Tu peux ajouter librement de nouveaux personnages secondaires si cela enrichit l'histoire
- Tu peux inventer des lieux, des détails et des sous-intrigues
- La description sert de point de départ, tu peux l'enrichir créativement
- Laisse libre cours à ton imagination tout en gardant une cohérence narrative`

const strictnessModerate = `
FIDÉLITÉ MODÉRÉE :
- Respecte les éléments principaux de la description (personnages, lieu, intrigue)
- Tu peux ajouter des détails mineurs pour enrichir la narration (descriptions, ambiance)
- Évite d'introduire de nouveaux personnages importants non mentionnés
- Les ajouts doivent rester cohérents avec ce qui est décrit`

const strictnessStrict = `
STRICTESSE MAXIMALE :
- Suis UNIQUEMENT et EXACTEMENT ce qui est décrit dans la description
- N'invente AUCUN nouveau personnage non mentionné
- N'ajoute AUCUN lieu, événement ou contexte non spécifié
- Utilise SEULEMENT les éléments explicitement donnés
- Zéro extrapolation, zéro ajout créatif non demandé
- Si un détail n'est pas mentionné, ne l'invente pas`

func strictnessInstruction(level entity.Strictness) string {
	switch level {
	case entity.StrictnessFree:
		return strictnessFree
	case entity.StrictnessStrict:
		return strictnessStrict
	default:
		return strictnessModerate
	}
}

// buildPrompt assembles the full generation prompt: previous-chapter context,
// the user's theme, the style instruction, and the strictness block, ending
// with the response-format contract around the summary separator.
func buildPrompt(userPrompt string, styleDescription string, previous []PreviousChapter, level entity.Strictness) string {
	var styleInstruction string
	if styleDescription != "" {
		styleInstruction = fmt.Sprintf("\n- Style d'écriture : %s", styleDescription)
	}

	var contextBlock strings.Builder
	if len(previous) > 0 {
		contextBlock.WriteString("\n\n=== CHAPITRES PRÉCÉDENTS (pour cohérence) ===\n")
		for _, chap := range previous {
			fmt.Fprintf(&contextBlock, "\n--- %s ---\n%s\n", chap.Title, chap.Text)
		}
		contextBlock.WriteString("\n=== FIN DES CHAPITRES PRÉCÉDENTS ===\n")
	}

	return fmt.Sprintf(`Tu es un auteur de roman.
%s
Génère le prochain chapitre de livre inspiré du thème suivant :
%s

Contraintes du chapitre :%s
- Longueur : environ 900 à 1600 mots
- Le chapitre doit raconter une histoire complète avec :
  1) Une scène d'ouverture immersive (lieu + ambiance + action)
  2) Un objectif ou un problème clair pour le personnage principal
  3) Un élément déclencheur (événement, rencontre, découverte)
  4) Une progression avec 2 à 4 événements importants
  5) Une tension légère ou un obstacle (adapté au ton du récit)
  6) Une résolution partielle (tout n'est pas forcément terminé)
  7) Une fin qui donne envie de lire la suite (mini cliffhanger)

Règles d'écriture :
- NE PAS écrire de numéro de chapitre au début (pas de "Chapitre 1", "Chapitre 2", etc.)
- Écris directement le chapitre, sans introduction ni commentaire
- Utilise un rythme fluide : narration + dialogues + descriptions équilibrés
- Reste cohérent avec les chapitres précédents : mêmes personnages, lieux, ton, époque, logique interne
- Les personnages doivent garder leur personnalité et leurs caractéristiques établies
%s

=== FORMAT DE RÉPONSE ===
Tu dois répondre en DEUX parties séparées par la ligne "%s" :

1) D'abord le chapitre complet

%s

2) Puis un résumé concis (3-5 lignes max) qui liste :
- Les nouveaux personnages introduits (si applicable)
- Les nouveaux lieux découverts (si applicable)
- Les éléments d'intrigue ajoutés ou révélés
- Les points clés à retenir pour la suite

Écris maintenant le chapitre suivi du résumé.`,
		contextBlock.String(), userPrompt, styleInstruction,
		strictnessInstruction(level), summarySeparator, summarySeparator)
}
