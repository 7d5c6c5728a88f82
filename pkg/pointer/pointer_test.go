package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/backlist/pkg/pointer"
)

func TestNonBlank(t *testing.T) {
	assert.Nil(t, pointer.NonBlank(nil))
	assert.Nil(t, pointer.NonBlank(pointer.To("   ")))
	assert.Equal(t, "Kafka", *pointer.NonBlank(pointer.To("  Kafka ")))
}

func TestValFallbackText(t *testing.T) {
	var missing *int
	assert.Equal(t, 0, pointer.Val(missing))
	assert.Equal(t, 7, pointer.Fallback(missing, 7))
	assert.Equal(t, 3, pointer.Fallback(pointer.To(3), 7))
	assert.Equal(t, "", *pointer.Text(nil))
	assert.Equal(t, "x", *pointer.Text(pointer.To("x")))
}
