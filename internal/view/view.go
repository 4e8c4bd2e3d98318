// Package view renders page templates. Templates live under templates/;
// a page is parsed together with the layout.html next to it (or above
// it) and cached after first use.
package view

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/plusgraphics/backoffice/internal/i18n"
	"github.com/plusgraphics/backoffice/internal/models"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	langResolver = func(r *http.Request) string {
		return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	}
)

// SetLangResolver lets the host app provide a custom language resolver
// (e.g. reading a cookie set by a language switcher).
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the template helpers: i18n, money/percent formatting,
// and the gfx/vfx badge classes.
func Funcs(r *http.Request) template.FuncMap {
	lang := langResolver(r)
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"badgeClass": func(typ string) string {
			if typ == models.ProductTypeGFX {
				return "badge-gfx"
			}
			return "badge-vfx"
		},
		"rowClass": func(typ string) string {
			if typ == models.ProductTypeGFX {
				return "row-gfx"
			}
			return "row-vfx"
		},
		"year": func() int { return time.Now().Year() },
		"mul": func(a float64, b int) float64 {
			return a * float64(b)
		},
		// dict builds a map for passing several values to a partial.
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// layoutBase walks upward from a template path to the directory holding
// layout.html, or the template's own directory if none exists.
func layoutBase(mainPath string) string {
	d := filepath.Dir(mainPath)
	for {
		lp := filepath.Join(d, "layout.html")
		if fi, err := os.Stat(lp); err == nil && !fi.IsDir() {
			return d
		}
		p := filepath.Dir(d)
		if p == d {
			return filepath.Dir(mainPath)
		}
		d = p
	}
}

// Render writes the named template with the layout wrapped around it.
func Render(w http.ResponseWriter, r *http.Request, name string, data any) error {
	once.Do(detectBase)

	mainPath := filepath.Join(baseDir, name)
	cacheKey := name + "|" + langResolver(r)

	tplCache.RLock()
	tpl, ok := tplCache.m[cacheKey]
	tplCache.RUnlock()

	if !ok {
		files := []string{mainPath}
		layoutDir := layoutBase(mainPath)
		layoutPath := filepath.Join(layoutDir, "layout.html")
		if fi, err := os.Stat(layoutPath); err == nil && !fi.IsDir() && layoutPath != mainPath {
			files = append([]string{layoutPath}, files...)
		}
		var err error
		tpl, err = template.New(filepath.Base(files[0])).Funcs(Funcs(r)).ParseFiles(files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		tplCache.Lock()
		tplCache.m[cacheKey] = tpl
		tplCache.Unlock()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Pages define a "content" block pulled in by the layout; bare
	// templates (no layout) execute themselves.
	if tpl.Lookup("layout.html") != nil {
		return tpl.ExecuteTemplate(w, "layout.html", data)
	}
	return tpl.ExecuteTemplate(w, strings.TrimSuffix(filepath.Base(name), ".html")+".html", data)
}
