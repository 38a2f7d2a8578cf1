package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/recurring"
)

type itemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	DisplayType recurring.DisplayType `json:"display_type"`
	Amount      decimal.Decimal       `json:"amount"`
	Frequency   recurring.Frequency   `json:"frequency"`
	StartDate   string                `json:"start_date"`
	EndDate     *string               `json:"end_date,omitempty"`
	AnchorDays  []int                 `json:"anchor_days,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(item *recurring.Item) itemResponse {
	resp := itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		DisplayType: item.DisplayType,
		Amount:      item.Amount,
		Frequency:   item.Frequency,
		StartDate:   item.StartDate.Format(time.DateOnly),
		AnchorDays:  item.AnchorDays,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}

	if item.EndDate != nil {
		end := item.EndDate.Format(time.DateOnly)
		resp.EndDate = &end
	}

	return resp
}

func toResponseList(items []recurring.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i := range items {
		resp[i] = toResponse(&items[i])
	}

	return resp
}
