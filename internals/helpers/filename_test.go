// file: internals/helpers/filename_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFileToken(t *testing.T) {
	assert.Equal(t, "6_me_A", SafeFileToken("6ème A"))
	assert.Equal(t, "Maths", SafeFileToken("Maths"))
}

func TestCompactFileToken(t *testing.T) {
	assert.Equal(t, "6_me_A", CompactFileToken("6ème  A"))
	assert.Equal(t, "Histoire_G_o", CompactFileToken("Histoire/Géo"))
}
