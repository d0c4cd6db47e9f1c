package prompt

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"text/template"
)

// Template wraps a text/template read from a filesystem with optional function map.
type Template struct {
	fsys  fs.FS
	name  string
	funcs template.FuncMap

	mu   sync.RWMutex
	tmpl *template.Template
	hash string
}

// NewTemplate parses the template file at path on the local disk.
func NewTemplate(p string, funcs template.FuncMap) (*Template, error) {
	if p == "" {
		return nil, fmt.Errorf("prompt template path is empty")
	}
	return NewTemplateFS(os.DirFS(filepath.Dir(p)), filepath.Base(p), funcs)
}

// NewTemplateFS parses the template called name inside fsys.
func NewTemplateFS(fsys fs.FS, name string, funcs template.FuncMap) (*Template, error) {
	if fsys == nil || name == "" {
		return nil, fmt.Errorf("prompt template source is empty")
	}
	t := &Template{
		fsys:  fsys,
		name:  name,
		funcs: funcs,
	}
	if err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the template with the provided data and returns the rendered string.
func (t *Template) Render(data any) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.tmpl == nil {
		return "", fmt.Errorf("prompt template %q not parsed", t.name)
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute prompt template %q: %w", t.name, err)
	}
	return buf.String(), nil
}

// Reload reparses the underlying template. This can be used when files change.
func (t *Template) Reload() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reload()
}

func (t *Template) reload() error {
	data, err := fs.ReadFile(t.fsys, t.name)
	if err != nil {
		return fmt.Errorf("read prompt template %q: %w", t.name, err)
	}

	tmpl := template.New(path.Base(t.name)).Option("missingkey=error")
	if len(t.funcs) > 0 {
		tmpl = tmpl.Funcs(t.funcs)
	}
	if _, err := tmpl.Parse(string(data)); err != nil {
		return fmt.Errorf("parse prompt template %q: %w", t.name, err)
	}
	t.tmpl = tmpl
	t.hash = Digest(string(data))
	return nil
}

// Digest returns the sha256 hash of the template source.
func (t *Template) Digest() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hash
}

// Digest returns the hex sha256 of s.
func Digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
