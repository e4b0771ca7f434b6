package outline

import "strings"

// RoleRule binds a heading role to a nominal style label plus loose
// variant substrings. Real-world documents name styles inconsistently
// ("Heading 1", "Heading1", "Title 1", template-specific names), so
// exact-match-only would silently drop valid data.
type RoleRule struct {
	Style    string   // nominal style label, e.g. "Heading 1"
	Variants []string // lowercase substrings accepted as this role
}

// MatchesStyle reports whether a paragraph style label is accepted as
// this role: case-insensitive equality with the nominal label, or
// containment of any configured variant.
func (r RoleRule) MatchesStyle(label string) bool {
	if label == "" {
		return false
	}
	l := strings.ToLower(label)
	if l == strings.ToLower(r.Style) {
		return true
	}
	for _, v := range r.Variants {
		if v != "" && strings.Contains(l, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// MatchText reports whether text matches any vocabulary entry:
// case-insensitive substring containment. All matches are equivalent;
// vocabulary order does not matter.
func MatchText(text string, vocab []string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	for _, v := range vocab {
		if v != "" && strings.Contains(t, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// Rules is the complete matching configuration for one extraction run.
type Rules struct {
	Section      RoleRule
	ProductType  RoleRule
	Manufacturer RoleRule
	Description  RoleRule

	// SectionCaptions is the vocabulary a section heading's text must
	// match to count toward marker selection.
	SectionCaptions []string

	// ManufacturerCaptions is the vocabulary a manufacturer-styled
	// heading's text must match to open a manufacturer.
	ManufacturerCaptions []string
}

// DefaultRules returns the documented fallback configuration. The
// no-space variants ("heading2") cover docx style IDs, which drop the
// space the style display name carries.
func DefaultRules() Rules {
	return Rules{
		Section: RoleRule{
			Style:    "Heading 1",
			Variants: []string{"heading 1", "heading1", "title 1", "h1", "header 1", "section"},
		},
		ProductType: RoleRule{
			Style:    "Heading 2",
			Variants: []string{"heading 2", "heading2", "title 2", "h2", "header 2", "subsection"},
		},
		Manufacturer: RoleRule{
			Style:    "Heading 3",
			Variants: []string{"heading 3", "heading3", "title 3", "h3", "header 3"},
		},
		Description: RoleRule{
			Style:    "Heading 4",
			Variants: []string{"heading 4", "heading4", "title 4", "h4", "header 4"},
		},
		SectionCaptions: []string{
			"products", "product list", "products and services",
			"product information", "product specs", "product specifications",
		},
		ManufacturerCaptions: []string{"Manufacturer", "Manufacturers"},
	}
}
