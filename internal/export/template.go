package export

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/domain"
	"resume-builder/internal/validation"
)

const (
	templateFile = "resume.html"
	styleFile    = "style.css"
)

//go:embed templates/*
var embedded embed.FS

// View is the data handed to the resume template.
type View struct {
	Doc     domain.ResumeDocument
	Width   int
	Preview bool
	CSS     template.CSS
}

// TemplateSet renders resumes to HTML. It uses the embedded template unless
// an override directory holding resume.html and style.css is given.
type TemplateSet struct {
	dir    string
	logger *slog.Logger

	mu  sync.RWMutex
	tpl *template.Template
	css string
}

// LoadTemplates parses the template set. An empty dir selects the embedded
// templates.
func LoadTemplates(dir string, logger *slog.Logger) (*TemplateSet, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ts := &TemplateSet{dir: dir, logger: logger}
	if err := ts.reload(); err != nil {
		return nil, err
	}
	return ts, nil
}

func (ts *TemplateSet) source() fs.FS {
	if ts.dir == "" {
		sub, _ := fs.Sub(embedded, "templates")
		return sub
	}
	return os.DirFS(ts.dir)
}

func (ts *TemplateSet) reload() error {
	src := ts.source()
	tpl, err := template.New(templateFile).Funcs(funcs).ParseFS(src, templateFile)
	if err != nil {
		return fmt.Errorf("parse %s: %w", templateFile, err)
	}
	css, err := fs.ReadFile(src, styleFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", styleFile, err)
	}
	ts.mu.Lock()
	ts.tpl, ts.css = tpl, string(css)
	ts.mu.Unlock()
	return nil
}

// Render executes the template. Disabled entries are left out.
func (ts *TemplateSet) Render(doc domain.ResumeDocument, width int, preview bool) (string, error) {
	ts.mu.RLock()
	tpl, css := ts.tpl, ts.css
	ts.mu.RUnlock()

	var buf bytes.Buffer
	view := View{Doc: enabledOnly(doc), Width: width, Preview: preview, CSS: template.CSS(css)}
	if err := tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Watch re-parses the override directory whenever one of its files changes
// and returns when ctx is cancelled. It is a no-op for embedded templates.
// A template that fails to parse is logged and the previous one kept.
func (ts *TemplateSet) Watch(ctx context.Context) error {
	if ts.dir == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(ts.dir); err != nil {
		return err
	}
	ts.logger.Info("templates: watching", slog.String("dir", ts.dir))

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil
		case <-fire:
			fire = nil
			if err := ts.reload(); err != nil {
				ts.logger.Warn("templates: reload failed", slog.String("error", err.Error()))
				continue
			}
			ts.logger.Info("templates: reloaded", slog.String("dir", ts.dir))
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if name != templateFile && name != styleFile {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(200 * time.Millisecond)
			} else {
				debounce.Reset(200 * time.Millisecond)
			}
			fire = debounce.C
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ts.logger.Error("templates: watcher error", slog.String("error", werr.Error()))
		}
	}
}

var funcs = template.FuncMap{
	"join":      strings.Join,
	"bullets":   bullets,
	"href":      href,
	"bare":      bare,
	"linkLabel": linkLabel,
}

func bullets(description string) []string {
	lines := validation.Bullets(description)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(l), "•-*")))
	}
	return out
}

func href(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}

// bare strips the scheme and a leading www.
func bare(link string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(link, "https://"), "http://")
	return strings.TrimSuffix(strings.TrimPrefix(s, "www."), "/")
}

// linkLabel shortens a link to its registrable domain.
func linkLabel(link string) string {
	u, err := url.Parse(href(link))
	if err != nil || u.Hostname() == "" {
		return link
	}
	host := u.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return strings.TrimPrefix(host, "www.")
}

func enabledOnly(doc domain.ResumeDocument) domain.ResumeDocument {
	out := doc.Clone()
	out.Experience = keep(out.Experience, func(e domain.ExperienceEntry) bool { return e.Enabled })
	out.Education = keep(out.Education, func(e domain.EducationEntry) bool { return e.Enabled })
	out.Skills = keep(out.Skills, func(e domain.SkillCategory) bool { return e.Enabled })
	out.Projects = keep(out.Projects, func(e domain.ProjectEntry) bool { return e.Enabled })
	out.Certifications = keep(out.Certifications, func(e domain.CertificationEntry) bool { return e.Enabled })
	return out
}

func keep[T any](items []T, ok func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if ok(it) {
			out = append(out, it)
		}
	}
	return out
}
