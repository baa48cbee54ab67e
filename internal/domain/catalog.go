package domain

import "time"

const DefaultTemplateCategory = "Professional"

// Template is a presentation template from the catalog.
type Template struct {
	ID          string            `json:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Category    string            `json:"category" yaml:"category"`
	Thumbnail   string            `json:"thumbnail" yaml:"thumbnail"`
	IsPremium   bool              `json:"isPremium" yaml:"isPremium"`
	Structure   TemplateStructure `json:"structure" yaml:"structure"`
	HTML        string            `json:"html,omitempty" yaml:"html"`
	CSS         string            `json:"css,omitempty" yaml:"css"`
	IsActive    bool              `json:"isActive" yaml:"isActive"`
	UsageCount  int               `json:"usageCount" yaml:"usageCount"`
	CreatedAt   time.Time         `json:"createdAt" yaml:"-"`
	UpdatedAt   time.Time         `json:"updatedAt" yaml:"-"`
}

type TemplateStructure struct {
	Layout   string         `json:"layout" yaml:"layout"`
	Colors   TemplateColors `json:"colors" yaml:"colors"`
	Fonts    TemplateFonts  `json:"fonts" yaml:"fonts"`
	Spacing  string         `json:"spacing" yaml:"spacing"`
	Sections []string       `json:"sections" yaml:"sections"`
}

type TemplateColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

type TemplateFonts struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// NewTemplate returns a template with catalog defaults.
func NewTemplate() Template {
	return Template{
		Category: DefaultTemplateCategory,
		IsActive: true,
		Structure: TemplateStructure{
			Colors: TemplateColors{Primary: "#2563eb", Secondary: "#64748b", Accent: "#8b5cf6"},
		},
	}
}

// DesignFor maps the template's structure onto the design fields a template
// is allowed to set. Missing colors and fonts fall back to editor defaults.
func (t Template) DesignFor(current Design) Design {
	out := current
	out.AccentColor = DefaultAccentColor
	if t.Structure.Colors.Primary != "" {
		out.AccentColor = t.Structure.Colors.Primary
	}
	out.Font = DefaultFont
	if t.Structure.Fonts.Heading != "" {
		out.Font = t.Structure.Fonts.Heading
	}
	out.Layout = LayoutComfortable
	if t.Structure.Spacing == LayoutCompact {
		out.Layout = LayoutCompact
	}
	return out
}
