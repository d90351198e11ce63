package service

import (
	"fintrack/internal/dto"
	"fintrack/internal/models"
)

const dateLayout = "2006-01-02"

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           tx.ID.String(),
		Date:         tx.OccurredOn.Format(dateLayout),
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		MainCategory: tx.MainCategory,
		ItemName:     tx.ItemName,
		Note:         tx.Note,
		Mood:         string(tx.Mood),
	}
}
