package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradeNo(t *testing.T) {
	tradeNo := newTradeNo()

	require.Len(t, tradeNo, tradeNoLen)
	assert.True(t, strings.HasPrefix(tradeNo, "FT"))

	for _, r := range tradeNo[2:] {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}

func TestNewTradeNoIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tradeNo := newTradeNo()
		require.False(t, seen[tradeNo], "duplicate trade number %s", tradeNo)
		seen[tradeNo] = true
	}
}
