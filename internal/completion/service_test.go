package completion_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwhitfield/runway/internal/completion"
)

func TestServiceMark(t *testing.T) {
	userID := uuid.New()
	occurrenceID := uuid.New().String() + "::2024-03-05"

	type testCase struct {
		name         string
		occurrenceID string
		setupMock    func(m *completion.MockRepository)
		wantErr      error
	}

	tests := []testCase{
		{
			name:         "Success",
			occurrenceID: occurrenceID,
			setupMock: func(m *completion.MockRepository) {
				m.EXPECT().
					Add(gomock.Any(), completion.Record{
						UserID:       userID,
						OccurrenceID: occurrenceID,
					}).
					Return(nil)
			},
		},
		{
			name:         "EmptyID",
			occurrenceID: "",
			setupMock:    func(m *completion.MockRepository) {},
			wantErr:      completion.ErrEmptyOccurrenceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := completion.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			service := completion.NewService(mockRepo)

			err := service.Mark(context.Background(), userID, tt.occurrenceID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestServiceUnmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	occurrenceID := uuid.New().String() + "::2024-03-05"

	mockRepo := completion.NewMockRepository(ctrl)
	mockRepo.EXPECT().Remove(gomock.Any(), userID, occurrenceID).Return(nil)

	service := completion.NewService(mockRepo)

	assert.NoError(t, service.Unmark(context.Background(), userID, occurrenceID))
	assert.ErrorIs(t, service.Unmark(context.Background(), userID, ""),
		completion.ErrEmptyOccurrenceID)
}

func TestServiceCompletedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := map[string]struct{}{"a::2024-01-01": {}, "b::2024-01-15": {}}

	mockRepo := completion.NewMockRepository(ctrl)
	mockRepo.EXPECT().CompletedIDs(gomock.Any(), userID).Return(want, nil)

	service := completion.NewService(mockRepo)

	got, err := service.CompletedIDs(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
