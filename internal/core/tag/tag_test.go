package tag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
)

type countingRow struct{ dest int }

func (row *countingRow) Scan(dest ...any) error {
	row.dest = len(dest)
	return nil
}

func TestTable_Alignment(t *testing.T) {
	row := &countingRow{}
	_, err := tag.Table.Scan(row)
	require.NoError(t, err)

	assert.Equal(t, len(tag.Table.Columns), row.dest)
	assert.Len(t, tag.Table.Values(tag.Payload{}), len(tag.Table.Fields))
	assert.Empty(t, tag.Table.SearchColumns)
	assert.Zero(t, tag.Table.ListLimit)
}

func TestPayload(t *testing.T) {
	payload := tag.Payload{
		Name:    " Krimi ",
		Slug:    pointer.To("Krimi & Thriller"),
		Color:   pointer.To("#c8502a"),
		TagType: pointer.To("Genre"),
		Visible: pointer.To(true),
	}.Normalize()

	assert.Equal(t, "Krimi", payload.Name)
	assert.Equal(t, "krimi-thriller", *payload.Slug)
	assert.Equal(t, "genre", *payload.TagType)
	assert.True(t, *payload.FlagInput())

	validator := &validate.Validator{}
	payload.Validate(validator)
	assert.False(t, validator.HasErrors())

	for _, color := range []string{"red", "rgb(200, 80, 42)"} {
		validator = &validate.Validator{}
		tag.Payload{Name: "x", Color: pointer.To(color), TagType: pointer.To("Preis Genre")}.Normalize().Validate(validator)
		assert.False(t, validator.HasErrors(), color)
	}

	validator = &validate.Validator{}
	tag.Payload{Name: "x", Color: pointer.To(strings.Repeat("f", constants.MaxShortText+1))}.Validate(validator)
	assert.True(t, validator.HasErrors())
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, "Themen", tag.GroupOf(pointer.To("topic")).Label)
	assert.Equal(t, "Preise", tag.GroupOf(pointer.To("award_type")).Label)
	assert.Equal(t, tag.OtherGroup, tag.GroupOf(pointer.To("mood")))
	assert.Equal(t, tag.OtherGroup, tag.GroupOf(nil))
}
