package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/backlist/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []int{5, 9}, slice.Map([]string{"Kafka", "Kassandra"}, func(s string) int { return len(s) }))

	empty := slice.Map[string, int](nil, func(s string) int { return len(s) })
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGroupBy(t *testing.T) {
	groups := slice.GroupBy([]string{"Krimi", "Lyrik", "Klassiker"}, func(s string) string { return strings.ToLower(s[:1]) })

	assert.Equal(t, map[string][]string{
		"k": {"Krimi", "Klassiker"},
		"l": {"Lyrik"},
	}, groups)
}
