// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the public, read-only view of the bookshop.

Only active records are ever shown. Books additionally need an ISBN-13 with a
978 or 979 prefix and a cover to be listed. Results are cached
in Redis and the whole cache is dropped after every admin mutation.
*/
package catalog

import "strings"

// BookCard is a listed book.
type BookCard struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Author   *string `json:"author"`
	CoverURL *string `json:"cover_url"`
}

// PurchaseLink points to one shop selling a book.
type PurchaseLink struct {
	Affiliate string  `json:"affiliate"`
	Slug      *string `json:"slug"`
	URL       string  `json:"url"`
}

// BookDetail is a single book with its purchase links.
type BookDetail struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Author       *string        `json:"author"`
	Publisher    *string        `json:"publisher"`
	CoverURL     *string        `json:"cover_url"`
	Description  *string        `json:"description"`
	Price        *float64       `json:"price"`
	ISBN13       *string        `json:"isbn13"`
	Language     *string        `json:"language"`
	Availability *string        `json:"availability"`
	Links        []PurchaseLink `json:"links"`
}

// Topic is a public tag with the number of books linked to it.
type Topic struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	TagType     *string `json:"tag_type"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	BookCount   int     `json:"book_count"`
}

// TopicGroup holds the topics of one tag type under its heading.
type TopicGroup struct {
	Type   string   `json:"type"`
	Label  string   `json:"label"`
	Topics []*Topic `json:"topics"`
}

// TopicDetail is a topic and its best-scored books.
type TopicDetail struct {
	Topic *Topic      `json:"topic"`
	Books []*BookCard `json:"books"`
}

// Curator is a public curator profile.
type Curator struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         *string `json:"slug"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
	Focus        *string `json:"focus"`
	WebsiteURL   *string `json:"website_url"`
	InstagramURL *string `json:"instagram_url"`
	PodcastURL   *string `json:"podcast_url"`
}

// Curation is a published list of recommendations.
type Curation struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Rationale *string `json:"rationale"`
}

// CuratorDetail is a curator with their curations and recommended books.
type CuratorDetail struct {
	Curator   *Curator    `json:"curator"`
	Curations []*Curation `json:"curations"`
	Books     []*BookCard `json:"books"`
}

// Stats are the admin dashboard counters. Trashed records never count.
type Stats struct {
	Books      int `json:"books"`
	Featured   int `json:"featured"`
	Tags       int `json:"tags"`
	Affiliates int `json:"affiliates"`
	Curators   int `json:"curators"`
}

// FormatAuthor turns the stored "Last, First" form into "First Last".
// Other forms are returned unchanged.
func FormatAuthor(raw *string) *string {
	if raw == nil {
		return nil
	}

	parts := strings.Split(*raw, ",")
	if len(parts) != 2 {
		return raw
	}

	formatted := strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0])
	return &formatted
}
