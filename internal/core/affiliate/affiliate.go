/*
Package affiliate manages the shops a book can be bought from.

An affiliate's link template holds an {isbn13} placeholder that is filled per
book to form a purchase link. Inactive affiliates stay editable but produce
no links.
*/
package affiliate

import (
	"strings"
	"time"

	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
	"github.com/taibuivan/backlist/pkg/slug"
)

// ISBNPlaceholder is replaced with a book's ISBN-13 in a link template.
const ISBNPlaceholder = "{isbn13}"

// Affiliate is a shop partner.
type Affiliate struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         *string    `json:"slug"`
	LinkTemplate *string    `json:"link_template"`
	LogoURL      *string    `json:"logo_url"`
	FaviconURL   *string    `json:"favicon_url"`
	IsActive     bool       `json:"is_active"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func (a *Affiliate) EntityID() string { return a.ID }
func (a *Affiliate) FlagValue() bool  { return a.IsActive }

// Link renders the purchase link for isbn13. It reports false when the
// affiliate has no template or the book has no ISBN-13.
func (a *Affiliate) Link(isbn13 *string) (string, bool) {
	if a.LinkTemplate == nil || isbn13 == nil || *isbn13 == "" {
		return "", false
	}
	return strings.ReplaceAll(*a.LinkTemplate, ISBNPlaceholder, *isbn13), true
}

// Payload is the editable field set of an affiliate.
type Payload struct {
	Name         string  `json:"name" yaml:"name"`
	Slug         *string `json:"slug" yaml:"slug"`
	LinkTemplate *string `json:"link_template" yaml:"link_template"`
	LogoURL      *string `json:"logo_url" yaml:"logo_url"`
	FaviconURL   *string `json:"favicon_url" yaml:"favicon_url"`
	IsActive     *bool   `json:"is_active" yaml:"is_active"`
}

func (p Payload) RequiredValue() string { return p.Name }
func (p Payload) FlagInput() *bool      { return p.IsActive }

func (p Payload) Normalize() Payload {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = slug.Optional(p.Slug)
	p.LinkTemplate = pointer.NonBlank(p.LinkTemplate)
	p.LogoURL = pointer.NonBlank(p.LogoURL)
	p.FaviconURL = pointer.NonBlank(p.FaviconURL)
	return p
}

func (p Payload) Validate(validator *validate.Validator) {
	validator.
		OptionalMaxLen("slug", p.Slug, constants.MaxShortText).
		OptionalMaxLen("link_template", p.LinkTemplate, constants.MaxLinkText).
		OptionalMaxLen("logo_url", p.LogoURL, constants.MaxLinkText).
		OptionalMaxLen("favicon_url", p.FaviconURL, constants.MaxLinkText)
}
