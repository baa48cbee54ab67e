package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultBlogAuthor   = "Admin"
	DefaultBlogCategory = "General"
)

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" yaml:"title"`
	Slug      string    `json:"slug" yaml:"-"`
	Excerpt   string    `json:"excerpt" yaml:"excerpt"`
	Content   string    `json:"content" yaml:"content"`
	Image     string    `json:"image,omitempty" yaml:"image"`
	Author    string    `json:"author" yaml:"author"`
	Category  string    `json:"category" yaml:"category"`
	Tags      []string  `json:"tags" yaml:"tags"`
	Published bool      `json:"published" yaml:"published"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

// Normalize fills defaults and derives the slug from the title.
func (b *BlogPost) Normalize() {
	if b.Author == "" {
		b.Author = DefaultBlogAuthor
	}
	if b.Category == "" {
		b.Category = DefaultBlogCategory
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.Slug = Slugify(b.Title)
}

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify folds diacritics, lowercases and joins alphanumeric runs with "-".
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	slug := nonSlug.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}
