// Package render produces printable billing documents: HTML from the
// static templates, and PDF for download.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mkadiri/dentassist-api/pkg/errors"
)

// Renderer loads HTML templates by document type and substitutes
// {{key}} placeholders. Template files are cached with a TTL so edits
// on disk are picked up without a restart.
type Renderer struct {
	dir   string
	cache *cache.Cache
}

type Config struct {
	TemplateDir string
	CacheTTL    time.Duration
}

func NewRenderer(cfg Config) *Renderer {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Renderer{
		dir:   cfg.TemplateDir,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Render loads the template named after the document type and replaces
// every {{key}} with the corresponding field value in a single pass.
// Substituted values are never re-expanded and unknown placeholders are
// left intact. Lookup is case-sensitive.
func (r *Renderer) Render(templateName string, fields map[string]string) (string, error) {
	tpl, err := r.loadTemplate(templateName)
	if err != nil {
		return "", errors.Rendering(err)
	}
	return substitute(tpl, fields), nil
}

func (r *Renderer) loadTemplate(name string) (string, error) {
	if cached, found := r.cache.Get(name); found {
		return cached.(string), nil
	}

	path := filepath.Join(r.dir, name+".html")
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load template %q: %w", name, err)
	}

	tpl := string(raw)
	r.cache.Set(name, tpl, cache.DefaultExpiration)
	return tpl, nil
}

// substitute walks the template once, so a field value containing
// {{...}} comes through literally.
func substitute(tpl string, fields map[string]string) string {
	var b strings.Builder
	b.Grow(len(tpl))

	for {
		open := strings.Index(tpl, "{{")
		if open < 0 {
			b.WriteString(tpl)
			return b.String()
		}

		close := strings.Index(tpl[open:], "}}")
		if close < 0 {
			b.WriteString(tpl)
			return b.String()
		}
		close += open

		key := tpl[open+2 : close]
		if value, ok := fields[key]; ok {
			b.WriteString(tpl[:open])
			b.WriteString(value)
		} else {
			// Unknown placeholder stays as written.
			b.WriteString(tpl[:close+2])
		}
		tpl = tpl[close+2:]
	}
}
