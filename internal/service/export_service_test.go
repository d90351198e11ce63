package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bomPrefix = []byte("\uFEFF")

func TestBuildCSV(t *testing.T) {
	txs := []*models.Transaction{
		{
			ID:           uuid.New(),
			OccurredOn:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			Type:         models.TransactionTypeExpense,
			Amount:       120,
			MainCategory: "餐飲",
			ItemName:     "午餐",
			Note:         "拉麵",
			Mood:         models.MoodHappy,
		},
		{
			ID:           uuid.New(),
			OccurredOn:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Type:         models.TransactionTypeIncome,
			Amount:       50000,
			MainCategory: "薪水",
			ItemName:     "月薪",
			Mood:         models.MoodNeutral,
		},
	}

	out, err := buildCSV(txs)
	require.NoError(t, err)

	// BOM first, so spreadsheet apps detect UTF-8.
	require.True(t, bytes.HasPrefix(out, bomPrefix))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, bomPrefix)))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"日期", "收支類型", "主分類", "細項", "金額", "心情", "備註"}, records[0])
	assert.Equal(t, []string{"2026-03-15", "支出", "餐飲", "午餐", "120", "開心", "拉麵"}, records[1])
	assert.Equal(t, []string{"2026-03-01", "收入", "薪水", "月薪", "50000", "普通", ""}, records[2])
}

func TestBuildCSVEmptyLedger(t *testing.T) {
	out, err := buildCSV(nil)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, bomPrefix)))
	records, err := r.ReadAll()
	require.NoError(t, err)

	// Header only.
	require.Len(t, records, 1)
}

func TestBuildCSVRegretMoodLabel(t *testing.T) {
	txs := []*models.Transaction{
		{
			OccurredOn:   time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			Type:         models.TransactionTypeExpense,
			Amount:       999,
			MainCategory: "購物",
			Mood:         models.MoodRegret,
		},
	}

	out, err := buildCSV(txs)
	require.NoError(t, err)
	assert.Contains(t, string(out), "後悔")
}
