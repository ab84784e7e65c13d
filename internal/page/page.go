// Package page renders the static preview document for a catalogue record.
//
// Each record gets <out>/<slug>/<slug>.html. The document is a skeleton: it
// embeds the SKU as window.PREVIEW_SKU and the shared preview.js module fills
// in the rest from the catalogue data at load time.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

//go:embed preview.html.tmpl
var previewHTML string

var previewTmpl = template.Must(template.New("preview").Parse(previewHTML))

// data is what the template sees. Everything is pre-formatted strings so the
// template stays logic-free.
type data struct {
	SKU      string
	Name     string
	Short    string
	Category string
	Style    string
	Price    string
	Slug     string
}

// Render writes the preview document for rec to w.
func Render(w io.Writer, rec catalogue.Record, slug string) error {
	d := data{
		SKU:      rec.SKU,
		Name:     rec.Name,
		Short:    rec.Short,
		Category: rec.CategoryID.Name(),
		Style:    strings.Join(rec.Style, " · "),
		Price:    fmt.Sprintf("$%d", rec.Price),
		Slug:     slug,
	}
	if err := previewTmpl.Execute(w, d); err != nil {
		return fmt.Errorf("render preview %s: %w", rec.SKU, err)
	}
	return nil
}

// Path returns where the preview for slug lives under dir.
func Path(dir, slug string) string {
	return filepath.Join(dir, slug, slug+".html")
}

// Write renders rec and writes it to Path(dir, slug), creating the slug
// directory. Existing files are overwritten.
func Write(dir string, rec catalogue.Record, slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("write preview %s: empty slug", rec.SKU)
	}
	var buf bytes.Buffer
	if err := Render(&buf, rec, slug); err != nil {
		return "", err
	}

	path := Path(dir, slug)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create preview dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write preview: %w", err)
	}
	return path, nil
}
