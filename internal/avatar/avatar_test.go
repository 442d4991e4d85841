package avatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickUsesBasePathAndKnownDefault(t *testing.T) {
	t.Parallel()

	picker := NewPicker("/uploads/avatar/")

	for i := 0; i < 50; i++ {
		picked := picker.Pick()
		assert.True(t, strings.HasPrefix(picked, "/uploads/avatar/"))

		name := strings.TrimPrefix(picked, "/uploads/avatar/")
		assert.Contains(t, defaults, name)
	}
}
