package override_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwhitfield/runway/internal/override"
)

func TestServiceUpsert(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	march := override.MonthYear{Year: 2024, Month: time.March}

	type testCase struct {
		name      string
		amount    decimal.Decimal
		setupMock func(m *override.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: decimal.NewFromInt(150),
			setupMock: func(m *override.MockRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), override.Override{
						UserID: userID,
						ItemID: itemID,
						Month:  march,
						Amount: decimal.NewFromInt(150),
					}).
					Return(nil)
			},
		},
		{
			name:      "ZeroAmount",
			amount:    decimal.Zero,
			setupMock: func(m *override.MockRepository) {},
			wantErr:   override.ErrNonPositiveAmount,
		},
		{
			name:      "NegativeAmount",
			amount:    decimal.NewFromInt(-20),
			setupMock: func(m *override.MockRepository) {},
			wantErr:   override.ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := override.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			service := override.NewService(mockRepo)

			err := service.Upsert(context.Background(), userID, itemID, march, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestServiceForMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	rentID := uuid.New()
	gymID := uuid.New()
	march := override.MonthYear{Year: 2024, Month: time.March}

	mockRepo := override.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		ForMonth(gomock.Any(), userID, march).
		Return([]override.Override{
			{ItemID: rentID, Month: march, Amount: decimal.NewFromInt(800)},
			{ItemID: gymID, Month: march, Amount: decimal.NewFromInt(25)},
		}, nil)

	service := override.NewService(mockRepo)

	amounts, err := service.ForMonth(context.Background(), userID, march)

	require.NoError(t, err)
	require.Len(t, amounts, 2)
	assert.True(t, amounts[rentID].Equal(decimal.NewFromInt(800)))
	assert.True(t, amounts[gymID].Equal(decimal.NewFromInt(25)))
}

func TestServiceForRangeSwapsReversedBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	jan := override.MonthYear{Year: 2024, Month: time.January}
	jun := override.MonthYear{Year: 2024, Month: time.June}

	mockRepo := override.NewMockRepository(ctrl)
	mockRepo.EXPECT().ForRange(gomock.Any(), userID, jan, jun).Return(nil, nil)

	service := override.NewService(mockRepo)

	_, err := service.ForRange(context.Background(), userID, jun, jan)

	assert.NoError(t, err)
}
