package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSpecialChar(t *testing.T) {
	assert.True(t, HasSpecialChar("hunter2!"))
	assert.True(t, HasSpecialChar("pa$$word"))
	assert.False(t, HasSpecialChar("hunter2"))
	assert.False(t, HasSpecialChar(""))
}
