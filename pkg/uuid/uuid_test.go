package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/pkg/uuid"
)

func TestNew(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	assert.NotEqual(t, first, second)

	parsed, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
}
