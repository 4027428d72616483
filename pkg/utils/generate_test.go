package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePNR(t *testing.T) {
	pnrShape := regexp.MustCompile(`^[A-F0-9]{8}$`)

	pnr := GeneratePNR()
	assert.Len(t, pnr, 8)
	assert.Regexp(t, pnrShape, pnr)
}

func TestGeneratePNR_Distinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		pnr := GeneratePNR()
		_, dup := seen[pnr]
		assert.False(t, dup, "PNR %s generated twice", pnr)
		seen[pnr] = struct{}{}
	}
}

func TestParseUUID(t *testing.T) {
	id := GenerateUUID()

	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
