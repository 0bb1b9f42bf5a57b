// file: internals/helpers/docxtpl/docxtpl_test.go
package docxtpl

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func extractDocument(t *testing.T, docx []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("word/document.xml absent du rendu")
	return ""
}

func TestRenderTags(t *testing.T) {
	tpl := makeDocx(t, `<w:p><w:t>Classe {classe}, semaine {semaine}, inconnu: {absent}.</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{"classe": "6A", "semaine": 3})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, "Classe 6A, semaine 3, inconnu: .")
}

func TestRenderLoopInline(t *testing.T) {
	tpl := makeDocx(t, `<w:p><w:t>{#items}[{nom}]{/items}</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{
		"items": []map[string]any{{"nom": "a"}, {"nom": "b"}},
	})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, "[a][b]")
	assert.NotContains(t, doc, "{#items}")
}

func TestRenderParagraphLoop(t *testing.T) {
	// balises seules dans leurs paragraphes : les paragraphes porteurs
	// disparaissent du rendu
	tpl := makeDocx(t,
		`<w:p><w:t>{#jours}</w:t></w:p>`+
			`<w:p><w:t>Jour: {jourDateComplete}</w:t></w:p>`+
			`<w:p><w:t>{/jours}</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{
		"jours": []map[string]any{
			{"jourDateComplete": "Dimanche 25 Août 2024"},
			{"jourDateComplete": "Lundi 26 Août 2024"},
		},
	})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, "Jour: Dimanche 25 Août 2024")
	assert.Contains(t, doc, "Jour: Lundi 26 Août 2024")
	assert.NotContains(t, doc, "{#jours}")
	assert.NotContains(t, doc, "{/jours}")
}

func TestRenderNestedLoops(t *testing.T) {
	tpl := makeDocx(t,
		`<w:p><w:t>S{semaine}</w:t></w:p>`+
			`<w:p><w:t>{#jours}</w:t></w:p>`+
			`<w:p><w:t>{jourDateComplete}</w:t></w:p>`+
			`<w:p><w:t>{#matieres}</w:t></w:p>`+
			`<w:p><w:t>- {matiere}: {Lecon}</w:t></w:p>`+
			`<w:p><w:t>{/matieres}</w:t></w:p>`+
			`<w:p><w:t>{/jours}</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{
		"semaine": 1,
		"jours": []map[string]any{
			{
				"jourDateComplete": "Lundi",
				"matieres": []map[string]any{
					{"matiere": "Maths", "Lecon": "Fractions"},
					{"matiere": "Arabe", "Lecon": "Lecture"},
				},
			},
			{"jourDateComplete": "Mardi", "matieres": []map[string]any{}},
		},
	})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, "S1")
	assert.Contains(t, doc, "- Maths: Fractions")
	assert.Contains(t, doc, "- Arabe: Lecture")
	assert.Contains(t, doc, "Mardi")
	assert.NotContains(t, doc, "{#")
	assert.NotContains(t, doc, "{/")
}

func TestRenderLineBreaks(t *testing.T) {
	tpl := makeDocx(t, `<w:p><w:t>{notes}</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{"notes": "ligne 1\nligne 2"})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, `ligne 1</w:t><w:br/><w:t xml:space="preserve">ligne 2`)
}

func TestRenderEscaping(t *testing.T) {
	tpl := makeDocx(t, `<w:p><w:t>{notes}</w:t></w:p>`)

	out, err := Render(tpl, map[string]any{
		"notes":  `a < b & "c" {classe}`,
		"classe": "ne doit pas fuiter",
	})
	require.NoError(t, err)

	doc := extractDocument(t, out)
	assert.Contains(t, doc, "a &lt; b &amp; &quot;c&quot;")
	// une valeur contenant {classe} n'est jamais re-substituée
	assert.NotContains(t, doc, "ne doit pas fuiter")
}

func TestRenderUnclosedLoop(t *testing.T) {
	tpl := makeDocx(t, `<w:p><w:t>{#items}jamais fermé</w:t></w:p>`)
	_, err := Render(tpl, map[string]any{"items": []map[string]any{}})
	assert.Error(t, err)
}

func TestRenderBadArchive(t *testing.T) {
	_, err := Render([]byte("pas un zip"), nil)
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("contenu du modèle"))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("contenu du modèle"), body)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTemplateFetch)
}
