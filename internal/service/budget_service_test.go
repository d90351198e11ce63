package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetEntries(t *testing.T) {
	t.Run("valid limits in catalog order", func(t *testing.T) {
		entries, skipped := parseBudgetEntries(map[string]string{
			"交通": "200",
			"餐飲": "500",
		})

		require.Len(t, entries, 2)
		// Catalog order wins over map iteration order.
		assert.Equal(t, "餐飲", entries[0].category)
		assert.Equal(t, int64(500), entries[0].limit)
		assert.Equal(t, "交通", entries[1].category)
		assert.Equal(t, int64(200), entries[1].limit)
		assert.Empty(t, skipped)
	})

	t.Run("absent and blank categories are untouched", func(t *testing.T) {
		entries, skipped := parseBudgetEntries(map[string]string{
			"餐飲": "500",
			"交通": "",
			"娛樂": "   ",
		})

		require.Len(t, entries, 1)
		assert.Equal(t, "餐飲", entries[0].category)
		assert.Empty(t, skipped)
	})

	t.Run("malformed and negative amounts skip that category only", func(t *testing.T) {
		entries, skipped := parseBudgetEntries(map[string]string{
			"餐飲": "abc",
			"交通": "-10",
			"娛樂": "300",
		})

		require.Len(t, entries, 1)
		assert.Equal(t, "娛樂", entries[0].category)
		assert.Equal(t, []string{"餐飲", "交通"}, skipped)
	})

	t.Run("zero is a valid limit", func(t *testing.T) {
		entries, skipped := parseBudgetEntries(map[string]string{"餐飲": "0"})

		require.Len(t, entries, 1)
		assert.Equal(t, int64(0), entries[0].limit)
		assert.Empty(t, skipped)
	})

	t.Run("unknown categories are ignored", func(t *testing.T) {
		entries, skipped := parseBudgetEntries(map[string]string{"無此分類": "100"})

		assert.Empty(t, entries)
		assert.Empty(t, skipped)
	})

	t.Run("whitespace around a valid amount is trimmed", func(t *testing.T) {
		entries, _ := parseBudgetEntries(map[string]string{"餐飲": " 250 "})

		require.Len(t, entries, 1)
		assert.Equal(t, int64(250), entries[0].limit)
	})
}
