// Package tag manages the catalog's tags ("Themen").
package tag

import (
	"strings"
	"time"

	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
	"github.com/taibuivan/backlist/pkg/slug"
)

// Tag categorizes books. Only visible tags are listed publicly.
type Tag struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         *string    `json:"slug"`
	Description  *string    `json:"description"`
	Color        *string    `json:"color"`
	Category     *string    `json:"category"`
	TagType      *string    `json:"tag_type"`
	Visible      bool       `json:"visible"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func (t *Tag) EntityID() string { return t.ID }
func (t *Tag) FlagValue() bool  { return t.Visible }

// Payload is the editable field set of a tag.
type Payload struct {
	Name        string  `json:"name" yaml:"name"`
	Slug        *string `json:"slug" yaml:"slug"`
	Description *string `json:"description" yaml:"description"`
	Color       *string `json:"color" yaml:"color"`
	Category    *string `json:"category" yaml:"category"`
	TagType     *string `json:"tag_type" yaml:"tag_type"`
	Visible     *bool   `json:"visible" yaml:"visible"`
}

func (p Payload) RequiredValue() string { return p.Name }
func (p Payload) FlagInput() *bool      { return p.Visible }

func (p Payload) Normalize() Payload {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = slug.Optional(p.Slug)
	p.Description = pointer.NonBlank(p.Description)
	p.Color = pointer.NonBlank(p.Color)
	p.Category = pointer.NonBlank(p.Category)
	p.TagType = pointer.NonBlank(p.TagType)
	if p.TagType != nil {
		p.TagType = pointer.To(strings.ToLower(*p.TagType))
	}
	return p
}

func (p Payload) Validate(validator *validate.Validator) {
	validator.
		OptionalMaxLen("slug", p.Slug, constants.MaxShortText).
		OptionalMaxLen("description", p.Description, constants.MaxLongText).
		OptionalMaxLen("color", p.Color, constants.MaxShortText).
		OptionalMaxLen("category", p.Category, constants.MaxShortText).
		OptionalMaxLen("tag_type", p.TagType, constants.MaxShortText)
}

// # Tag Types

// Group is a public heading for the tags of one type.
type Group struct {
	Type  string
	Label string
}

// OtherGroup collects tags with an unknown or missing type.
var OtherGroup = Group{Type: "sonstige", Label: "Sonstige"}

// Groups lists the known tag types in presentation order.
var Groups = []Group{
	{Type: "topic", Label: "Themen"},
	{Type: "genre", Label: "Genres"},
	{Type: "audience", Label: "Für wen?"},
	{Type: "publisher_cluster", Label: "Verlagsgruppen"},
	{Type: "feature", Label: "Ausstattung"},
	{Type: "award_genre", Label: "Preis-Genres"},
	{Type: "award_type", Label: "Preise"},
}

// GroupOf returns the group a tag type belongs to.
func GroupOf(tagType *string) Group {
	if tagType != nil {
		for _, group := range Groups {
			if group.Type == *tagType {
				return group
			}
		}
	}
	return OtherGroup
}
