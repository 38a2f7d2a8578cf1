package forecast

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/recurring"
)

type occurrenceResponse struct {
	ID          string                `json:"id"`
	ItemID      uuid.UUID             `json:"item_id"`
	ItemName    string                `json:"item_name"`
	DisplayType recurring.DisplayType `json:"display_type"`
	Date        string                `json:"date"`
	Amount      decimal.Decimal       `json:"amount"`
}

type periodResponse struct {
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         *string         `json:"period_end,omitempty"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	CommittedOutflows decimal.Decimal `json:"committed_outflows"`
	FinalRemaining    decimal.Decimal `json:"final_remaining"`
}

type itemFailureResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	Reason   string    `json:"reason"`
}

type forecastResponse struct {
	Pending  []occurrenceResponse  `json:"pending"`
	Done     []occurrenceResponse  `json:"done"`
	Periods  []periodResponse      `json:"periods"`
	Failures []itemFailureResponse `json:"failures,omitempty"`
}

type occurrencesResponse struct {
	Occurrences []occurrenceResponse  `json:"occurrences"`
	Failures    []itemFailureResponse `json:"failures,omitempty"`
}

func toOccurrence(occ forecast.Occurrence) occurrenceResponse {
	return occurrenceResponse{
		ID:          occ.ID,
		ItemID:      occ.ItemID,
		ItemName:    occ.ItemName,
		DisplayType: occ.DisplayType,
		Date:        occ.Date.Format(time.DateOnly),
		Amount:      occ.Amount,
	}
}

func toOccurrenceList(occs []forecast.Occurrence) []occurrenceResponse {
	resp := make([]occurrenceResponse, len(occs))
	for i, occ := range occs {
		resp[i] = toOccurrence(occ)
	}

	return resp
}

func toFailureList(failures []forecast.ItemError) []itemFailureResponse {
	if len(failures) == 0 {
		return nil
	}

	resp := make([]itemFailureResponse, len(failures))
	for i, f := range failures {
		resp[i] = itemFailureResponse{
			ItemID:   f.ItemID,
			ItemName: f.ItemName,
			Reason:   f.Err.Error(),
		}
	}

	return resp
}

func toForecastResponse(result *forecast.Forecast) forecastResponse {
	resp := forecastResponse{
		Pending:  toOccurrenceList(result.Pending),
		Done:     toOccurrenceList(result.Done),
		Periods:  make([]periodResponse, len(result.Periods)),
		Failures: toFailureList(result.Failures),
	}

	for i, p := range result.Periods {
		resp.Periods[i] = periodResponse{
			PeriodStart:       p.PeriodStart.Format(time.DateOnly),
			GrossIncome:       p.GrossIncome,
			CommittedOutflows: p.CommittedOutflows,
			FinalRemaining:    p.FinalRemaining,
		}

		if !p.PeriodEnd.IsZero() {
			end := p.PeriodEnd.Format(time.DateOnly)
			resp.Periods[i].PeriodEnd = &end
		}
	}

	return resp
}

func toOccurrencesResponse(result *forecast.Result) occurrencesResponse {
	return occurrencesResponse{
		Occurrences: toOccurrenceList(result.Occurrences),
		Failures:    toFailureList(result.Failures),
	}
}
