package pawtrait_test

import (
	"testing"

	"github.com/sagarc03/pawtrait"
	"github.com/stretchr/testify/assert"
)

func TestIsValidTableName(t *testing.T) {
	valid := []string{"pawtrait_photos", "photos", "_internal", "t1"}
	for _, name := range valid {
		assert.True(t, pawtrait.IsValidTableName(name), name)
	}

	invalid := []string{"", "1photos", "Photos", "photos-prod", "photos.prod", "photos table"}
	for _, name := range invalid {
		assert.False(t, pawtrait.IsValidTableName(name), name)
	}

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, pawtrait.IsValidTableName(string(long)))
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, pawtrait.ValidateTableName("pawtrait_photos"))
	assert.Error(t, pawtrait.ValidateTableName(""))
	assert.Error(t, pawtrait.ValidateTableName("Bad-Name"))
}
