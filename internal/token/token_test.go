package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristic_Count(t *testing.T) {
	h := Heuristic{}
	assert.Equal(t, 0, h.Count(""))
	assert.Equal(t, 1, h.Count("abcd"))
	assert.Equal(t, 25, h.Count(string(make([]byte, 100))))
}

func TestDefault_AlwaysCounts(t *testing.T) {
	est := Default()
	assert.NotNil(t, est)
	assert.Greater(t, est.Count("The forward rate is the breakeven reinvestment rate."), 0)
}
