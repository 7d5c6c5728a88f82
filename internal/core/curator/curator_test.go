package curator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/platform/apperr"
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
	_, err := curator.Table.Scan(row)
	require.NoError(t, err)

	assert.Equal(t, len(curator.Table.Columns), row.dest)
	assert.Len(t, curator.Table.Values(curator.Payload{}), len(curator.Table.Fields))
}

func TestPayload(t *testing.T) {
	payload := curator.Payload{
		Name:       "Elke Heidenreich ",
		Slug:       pointer.To("Elke Heidenreich"),
		Bio:        pointer.To(""),
		WebsiteURL: pointer.To("elke.example"),
		PodcastURL: pointer.To("https://podcast.example/elke"),
	}.Normalize()

	assert.Equal(t, "Elke Heidenreich", payload.Name)
	assert.Equal(t, "elke-heidenreich", *payload.Slug)
	assert.Nil(t, payload.Bio)

	validator := &validate.Validator{}
	payload.Validate(validator)
	assert.False(t, validator.HasErrors())

	validator = &validate.Validator{}
	payload.Bio = pointer.To(strings.Repeat("b", constants.MaxLongText+1))
	payload.Validate(validator)

	appError := apperr.As(validator.Err())
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "bio", appError.Details[0].Field)
}
