// file: internals/helpers/docxtpl/docxtpl.go

// Package docxtpl rend les modèles Word du service. Les modèles sont des
// fichiers .docx ordinaires dont le texte contient des balises {tag} et
// des boucles {#liste}...{/liste} (une imbrication : jours → matières).
// Une balise absente des données rend une chaîne vide, les retours à la
// ligne des valeurs deviennent des <w:br/>, et une boucle posée seule
// dans son paragraphe consomme le paragraphe entier.
package docxtpl

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// ErrTemplateFetch : le modèle distant n'a pas pu être récupéré.
var ErrTemplateFetch = errors.New("échec de récupération du modèle Word")

// Fetch télécharge un modèle .docx depuis l'URL configurée.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (%d)", ErrTemplateFetch, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}
	return body, nil
}

// Render substitue data dans le modèle et renvoie le .docx produit.
// Les parties texte (document, en-têtes, pieds de page) sont traitées,
// le reste de l'archive est copié tel quel.
func Render(template []byte, data map[string]any) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("modèle Word illisible: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}

		if isTextPart(f.Name) {
			rendered, err := renderPart(string(content), data)
			if err != nil {
				return nil, err
			}
			content = []byte(rendered)
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func isTextPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

var (
	loopOpenRe = regexp.MustCompile(`\{#([^{}]+)\}`)
	tagRe      = regexp.MustCompile(`\{([^#/{}][^{}]*)\}`)
	xmlTagRe   = regexp.MustCompile(`<[^>]*>`)
)

func renderPart(xml string, scope map[string]any) (string, error) {
	expanded, err := expandLoops(xml, scope)
	if err != nil {
		return "", err
	}
	return substituteTags(expanded, scope), nil
}

// expandLoops traite récursivement la première boucle rencontrée : son
// corps est rendu une fois par élément, avec l'élément fusionné devant
// la portée courante.
func expandLoops(xml string, scope map[string]any) (string, error) {
	m := loopOpenRe.FindStringSubmatchIndex(xml)
	if m == nil {
		return xml, nil
	}
	name := xml[m[2]:m[3]]
	closeTag := "{/" + name + "}"
	closeStart := strings.Index(xml[m[1]:], closeTag)
	if closeStart < 0 {
		return "", fmt.Errorf("balise de boucle {#%s} jamais refermée", name)
	}
	closeStart += m[1]
	closeEnd := closeStart + len(closeTag)

	outerStart, bodyStart := widenToParagraph(xml, m[0], m[1])
	bodyEnd, outerEnd := widenToParagraph(xml, closeStart, closeEnd)
	if bodyEnd < bodyStart {
		// balises ouvrante et fermante dans le même paragraphe
		outerStart, bodyStart = m[0], m[1]
		bodyEnd, outerEnd = closeStart, closeEnd
	}
	body := xml[bodyStart:bodyEnd]

	var rendered strings.Builder
	for _, item := range loopItems(scope[name]) {
		child := childScope(scope, item)
		expanded, err := expandLoops(body, child)
		if err != nil {
			return "", err
		}
		rendered.WriteString(substituteTags(expanded, child))
	}

	result := xml[:outerStart] + rendered.String() + xml[outerEnd:]
	return expandLoops(result, scope)
}

// widenToParagraph étend une balise de boucle à son paragraphe englobant
// quand elle y est seule (comportement paragraphLoop de l'original) :
// le paragraphe porteur disparaît du rendu.
func widenToParagraph(xml string, tagStart, tagEnd int) (int, int) {
	pStart := lastParagraphOpen(xml, tagStart)
	if pStart < 0 {
		return tagStart, tagEnd
	}
	pEnd := strings.Index(xml[tagEnd:], "</w:p>")
	if pEnd < 0 {
		return tagStart, tagEnd
	}
	pEnd = tagEnd + pEnd + len("</w:p>")

	text := strings.TrimSpace(xmlTagRe.ReplaceAllString(xml[pStart:pEnd], ""))
	if text == xml[tagStart:tagEnd] {
		return pStart, pEnd
	}
	return tagStart, tagEnd
}

func lastParagraphOpen(xml string, before int) int {
	i := strings.LastIndex(xml[:before], "<w:p>")
	j := strings.LastIndex(xml[:before], "<w:p ")
	if j > i {
		i = j
	}
	// un </w:p> plus proche signifie que before n'est pas dans ce paragraphe
	if k := strings.LastIndex(xml[:before], "</w:p>"); k > i {
		return -1
	}
	return i
}

func loopItems(v any) []any {
	switch items := v.(type) {
	case nil:
		return nil
	case []any:
		return items
	case []map[string]any:
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = it
		}
		return out
	default:
		return nil
	}
}

func childScope(parent map[string]any, item any) map[string]any {
	child := make(map[string]any, len(parent)+4)
	for k, v := range parent {
		child[k] = v
	}
	if m, ok := item.(map[string]any); ok {
		for k, v := range m {
			child[k] = v
		}
	}
	return child
}

// substituteTags remplace chaque {tag} par sa valeur dans la portée,
// chaîne vide pour un tag inconnu.
func substituteTags(xml string, scope map[string]any) string {
	return tagRe.ReplaceAllStringFunc(xml, func(match string) string {
		name := strings.TrimSpace(match[1 : len(match)-1])
		return formatValue(scope[name])
	})
}

func formatValue(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = ""
	case string:
		s = t
	case int:
		s = fmt.Sprintf("%d", t)
	case float64:
		if t == float64(int64(t)) {
			s = fmt.Sprintf("%d", int64(t))
		} else {
			s = fmt.Sprintf("%v", t)
		}
	default:
		s = fmt.Sprint(t)
	}
	s = escapeXML(s)
	// linebreaks: \n devient un saut de ligne Word
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `</w:t><w:br/><w:t xml:space="preserve">`)
	return s
}

func escapeXML(s string) string {
	// les accolades sont neutralisées pour qu'une valeur déjà substituée
	// ne soit jamais reprise pour une balise
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
		"{", "&#123;",
		"}", "&#125;",
	)
	return r.Replace(s)
}
