package payschedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/payschedule"
	"github.com/mwhitfield/runway/internal/recurring"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPreferencesValidate(t *testing.T) {
	anchor := date(2024, time.January, 5)

	type testCase struct {
		name    string
		prefs   payschedule.Preferences
		wantErr error
	}

	tests := []testCase{
		{
			name: "ValidBiWeekly",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencyBiWeekly,
				AnchorDate: anchor,
			},
		},
		{
			name: "ValidSemiMonthly",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencySemiMonthly,
				AnchorDate: anchor,
				AnchorDays: []int{1, 15},
			},
		},
		{
			name: "QuarterlyUnsupported",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencyQuarterly,
				AnchorDate: anchor,
			},
			wantErr: payschedule.ErrUnsupportedFrequency,
		},
		{
			name: "DailyUnsupported",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencyDaily,
				AnchorDate: anchor,
			},
			wantErr: payschedule.ErrUnsupportedFrequency,
		},
		{
			name: "MissingAnchorDate",
			prefs: payschedule.Preferences{
				Frequency: recurring.FrequencyMonthly,
			},
			wantErr: payschedule.ErrMissingAnchorDate,
		},
		{
			name: "SemiMonthlyMissingAnchorDays",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencySemiMonthly,
				AnchorDate: anchor,
			},
			wantErr: payschedule.ErrSemiMonthlyAnchors,
		},
		{
			name: "SemiMonthlyDuplicateAnchorDays",
			prefs: payschedule.Preferences{
				Frequency:  recurring.FrequencySemiMonthly,
				AnchorDate: anchor,
				AnchorDays: []int{10, 10},
			},
			wantErr: payschedule.ErrSemiMonthlyAnchors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestServicePayDates(t *testing.T) {
	userID := uuid.New()

	window := forecast.Window{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.February, 29),
	}

	type testCase struct {
		name  string
		prefs payschedule.Preferences
		want  []time.Time
	}

	tests := []testCase{
		{
			name: "SemiMonthly",
			prefs: payschedule.Preferences{
				UserID:     userID,
				Frequency:  recurring.FrequencySemiMonthly,
				AnchorDate: date(2023, time.June, 1),
				AnchorDays: []int{1, 15},
			},
			want: []time.Time{
				date(2024, time.January, 1),
				date(2024, time.January, 15),
				date(2024, time.February, 1),
				date(2024, time.February, 15),
			},
		},
		{
			name: "BiWeekly",
			prefs: payschedule.Preferences{
				UserID:     userID,
				Frequency:  recurring.FrequencyBiWeekly,
				AnchorDate: date(2024, time.January, 5),
			},
			want: []time.Time{
				date(2024, time.January, 5),
				date(2024, time.January, 19),
				date(2024, time.February, 2),
				date(2024, time.February, 16),
			},
		},
		{
			name: "MonthlyEndOfMonthClamped",
			prefs: payschedule.Preferences{
				UserID:     userID,
				Frequency:  recurring.FrequencyMonthly,
				AnchorDate: date(2023, time.October, 31),
			},
			want: []time.Time{
				date(2024, time.January, 31),
				date(2024, time.February, 29),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := payschedule.NewMockRepository(ctrl)
			mockRepo.EXPECT().GetPreferences(gomock.Any(), userID).Return(&tt.prefs, nil)

			service := payschedule.NewService(mockRepo)

			got, err := service.PayDates(context.Background(), userID, window)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServicePayDatesErrors(t *testing.T) {
	userID := uuid.New()

	window := forecast.Window{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.March, 31),
	}

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := payschedule.NewMockRepository(ctrl)
		mockRepo.EXPECT().
			GetPreferences(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		service := payschedule.NewService(mockRepo)

		_, err := service.PayDates(context.Background(), userID, window)

		assert.Error(t, err)
	})

	t.Run("InvalidStoredPreferences", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := payschedule.NewMockRepository(ctrl)
		mockRepo.EXPECT().
			GetPreferences(gomock.Any(), userID).
			Return(&payschedule.Preferences{
				UserID:    userID,
				Frequency: recurring.FrequencyYearly,
			}, nil)

		service := payschedule.NewService(mockRepo)

		_, err := service.PayDates(context.Background(), userID, window)

		assert.ErrorIs(t, err, payschedule.ErrUnsupportedFrequency)
	})
}

func TestServicePutValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := payschedule.NewMockRepository(ctrl)
	service := payschedule.NewService(mockRepo)

	err := service.Put(context.Background(), &payschedule.Preferences{
		UserID:    uuid.New(),
		Frequency: recurring.FrequencyDaily,
	})

	assert.ErrorIs(t, err, payschedule.ErrUnsupportedFrequency)
}
