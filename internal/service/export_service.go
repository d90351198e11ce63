package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	typeLabels = map[models.TransactionType]string{
		models.TransactionTypeExpense: "支出",
		models.TransactionTypeIncome:  "收入",
	}
	moodLabels = map[models.Mood]string{
		models.MoodHappy:   "開心",
		models.MoodNeutral: "普通",
		models.MoodRegret:  "後悔",
	}
)

type ExportService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewExportService(txRepo *repository.TransactionRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		txRepo: txRepo,
		logger: logger,
	}
}

// CSV renders the user's full ledger, newest first, with localized type and
// mood labels. The leading BOM keeps spreadsheet apps from mangling the
// Chinese columns.
func (s *ExportService) CSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	transactions, err := s.txRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCSV(transactions)
}

func buildCSV(transactions []*models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteRune('\uFEFF')

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"日期", "收支類型", "主分類", "細項", "金額", "心情", "備註"}); err != nil {
		return nil, err
	}

	for _, tx := range transactions {
		record := []string{
			tx.OccurredOn.Format(dateLayout),
			typeLabels[tx.Type],
			tx.MainCategory,
			tx.ItemName,
			strconv.FormatInt(tx.Amount, 10),
			moodLabels[tx.Mood],
			tx.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
