package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreReport_AddRationale(t *testing.T) {
	r := &ScoreReport{}
	r.AddRationale("skills", "one")
	r.AddRationale("education", "two")
	r.AddRationale("interest", "three")
	r.AddRationale("extra", "dropped")

	assert.Equal(t, []string{"[skills] one", "[education] two", "[interest] three"}, r.Rationale)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 42, ClampScore(42))
	assert.Equal(t, 100, ClampScore(101))
}
