// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/backlist/internal/platform/validate"
)

// Form holds the editor inputs. Text inputs are strings, never nil.
type Form map[string]any

// Config describes one admin resource screen.
type Config struct {
	// Label names the resource ("Book").
	Label string
	// Required is the field that must be non-blank before saving.
	Required string
	// Numbers lists fields sent as JSON numbers.
	Numbers []string
	// Defaults is the form of a new record.
	Defaults Form
}

// Screens of the admin console.
var (
	Books = Config{
		Label:    "Book",
		Required: "title",
		Numbers:  []string{"year", "page_count", "price"},
		Defaults: Form{
			"title": "", "author": "", "isbn13": "", "publisher": "",
			"cover_url": "", "description": "", "year": "", "price": "",
		},
	}

	Tags = Config{
		Label:    "Tag",
		Required: "name",
		Defaults: Form{
			"name": "", "slug": "", "description": "", "color": "",
			"category": "", "tag_type": "", "visible": true,
		},
	}

	Curators = Config{
		Label:    "Curator",
		Required: "name",
		Defaults: Form{
			"name": "", "slug": "", "bio": "", "avatar_url": "", "focus": "",
			"website_url": "", "instagram_url": "", "podcast_url": "", "visible": false,
		},
	}

	Affiliates = Config{
		Label:    "Affiliate",
		Required: "name",
		Defaults: Form{
			"name": "", "slug": "", "link_template": "", "logo_url": "",
			"favicon_url": "", "is_active": true,
		},
	}
)

// bookkeeping fields are shown but never edited.
var bookkeeping = []string{"id", "display_order", "total_score", "created_at", "updated_at", "deleted_at"}

// Clone copies the form.
func (form Form) Clone() Form {
	clone := make(Form, len(form))
	for key, value := range form {
		clone[key] = value
	}
	return clone
}

// Text returns the string value of field, or "".
func (form Form) Text(field string) string {
	if value, ok := form[field].(string); ok {
		return value
	}
	return ""
}

// FormFrom populates an editor form from record. Null fields become "".
func FormFrom(record any) (Form, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("console: encode record: %w", err)
	}

	form := Form{}
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("console: decode record: %w", err)
	}

	for _, field := range bookkeeping {
		delete(form, field)
	}
	for key, value := range form {
		switch value := value.(type) {
		case nil:
			form[key] = ""
		case float64:
			form[key] = strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
	return form, nil
}

// payload converts the form into a request body. Blank inputs are sent as
// null and numeric fields as JSON numbers.
func (config Config) payload(form Form) (map[string]any, error) {
	body := make(map[string]any, len(form))
	for key, value := range form {
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			body[key] = nil
			continue
		}
		body[key] = value
	}

	validator := &validate.Validator{}
	for _, field := range config.Numbers {
		text, ok := body[field].(string)
		if !ok {
			continue
		}

		number := json.Number(strings.TrimSpace(text))
		if _, err := number.Float64(); err != nil {
			validator.Custom(field, true, "Must be a number")
			continue
		}
		body[field] = number
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return body, nil
}

// errRequired reports a blank required field.
func (config Config) errRequired() error {
	return validate.RequiredError(config.Required, "This field is required")
}
