// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package book manages the catalog's books.

Books follow the shared lifecycle of [resource]: they can be trashed,
restored, duplicated, reordered and featured. On top of that a book can be
deleted permanently and linked to tags.
*/
package book

import (
	"strings"
	"time"

	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
	"github.com/taibuivan/backlist/pkg/slug"
)

// Book is a single title in the catalog.
type Book struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Author       *string    `json:"author"`
	Slug         *string    `json:"slug"`
	Publisher    *string    `json:"publisher"`
	ISBN         *string    `json:"isbn"`
	ISBN13       *string    `json:"isbn13"`
	CoverURL     *string    `json:"cover_url"`
	Description  *string    `json:"description"`
	Year         *int       `json:"year"`
	Price        *float64   `json:"price"`
	Availability *string    `json:"availability"`
	Language     *string    `json:"language"`
	PageCount    *int       `json:"page_count"`
	IsFeatured   bool       `json:"is_featured"`
	TotalScore   float64    `json:"total_score"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func (b *Book) EntityID() string { return b.ID }
func (b *Book) FlagValue() bool  { return b.IsFeatured }

// Payload is the editable field set of a book. total_score is computed elsewhere.
type Payload struct {
	Title        string   `json:"title" yaml:"title"`
	Author       *string  `json:"author" yaml:"author"`
	Slug         *string  `json:"slug" yaml:"slug"`
	Publisher    *string  `json:"publisher" yaml:"publisher"`
	ISBN         *string  `json:"isbn" yaml:"isbn"`
	ISBN13       *string  `json:"isbn13" yaml:"isbn13"`
	CoverURL     *string  `json:"cover_url" yaml:"cover_url"`
	Description  *string  `json:"description" yaml:"description"`
	Year         *int     `json:"year" yaml:"year"`
	Price        *float64 `json:"price" yaml:"price"`
	Availability *string  `json:"availability" yaml:"availability"`
	Language     *string  `json:"language" yaml:"language"`
	PageCount    *int     `json:"page_count" yaml:"page_count"`
	IsFeatured   *bool    `json:"is_featured" yaml:"is_featured"`
}

// isbnSeparators are stripped from ISBN-13 input ("978-3-446-23883-4").
var isbnSeparators = strings.NewReplacer("-", "", " ", "")

func (p Payload) RequiredValue() string { return p.Title }
func (p Payload) FlagInput() *bool      { return p.IsFeatured }

// Normalize trims text fields, maps blanks to nil and canonicalizes slug and ISBN-13.
func (p Payload) Normalize() Payload {
	p.Title = strings.TrimSpace(p.Title)
	p.Author = pointer.NonBlank(p.Author)
	p.Publisher = pointer.NonBlank(p.Publisher)
	p.ISBN = pointer.NonBlank(p.ISBN)
	p.CoverURL = pointer.NonBlank(p.CoverURL)
	p.Description = pointer.NonBlank(p.Description)
	p.Availability = pointer.NonBlank(p.Availability)
	p.Language = pointer.NonBlank(p.Language)

	p.Slug = slug.Optional(p.Slug)

	if isbn := pointer.NonBlank(p.ISBN13); isbn != nil {
		p.ISBN13 = pointer.To(isbnSeparators.Replace(*isbn))
	} else {
		p.ISBN13 = nil
	}
	return p
}

// Validate caps the length of the optional text fields. Their content is free text.
func (p Payload) Validate(validator *validate.Validator) {
	validator.
		OptionalMaxLen("author", p.Author, constants.MaxShortText).
		OptionalMaxLen("slug", p.Slug, constants.MaxShortText).
		OptionalMaxLen("publisher", p.Publisher, constants.MaxShortText).
		OptionalMaxLen("isbn", p.ISBN, constants.MaxShortText).
		OptionalMaxLen("isbn13", p.ISBN13, constants.MaxShortText).
		OptionalMaxLen("cover_url", p.CoverURL, constants.MaxLinkText).
		OptionalMaxLen("description", p.Description, constants.MaxLongText).
		OptionalMaxLen("availability", p.Availability, constants.MaxShortText).
		OptionalMaxLen("language", p.Language, constants.MaxShortText)
}

// TagLink is a live association between a book and a tag.
type TagLink struct {
	TagID    string    `json:"tag_id"`
	Name     string    `json:"name"`
	Slug     *string   `json:"slug"`
	TagType  *string   `json:"tag_type"`
	LinkedAt time.Time `json:"linked_at"`
}
