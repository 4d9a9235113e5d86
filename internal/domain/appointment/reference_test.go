package appointment

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferenceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BI[0-9A-Z]+$`)

	for i := 0; i < 100; i++ {
		ref := GenerateReferenceNumber()
		assert.Regexp(t, pattern, ref)
		assert.Greater(t, len(ref), len("BI"))
	}
}

func TestGenerateReferenceNumberUniqueness(t *testing.T) {
	const n = 100_000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ref := GenerateReferenceNumber()
		_, dup := seen[ref]
		require.False(t, dup, "collision after %d references: %s", i, ref)
		seen[ref] = struct{}{}
	}
}
