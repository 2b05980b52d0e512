package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/api/events"
	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/internal/mocks"
)

func TestEventHandler_OnLocationReported(t *testing.T) {
	t.Parallel()

	recordedAt := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		mock    func(s *mocks.MockService)
		wantErr bool
	}{
		{
			name:  "stores the fix",
			value: `{"technician_id":3,"latitude":4.711,"longitude":-74.0721,"recorded_at":"2024-06-03T14:30:00Z"}`,
			mock: func(s *mocks.MockService) {
				s.EXPECT().RecordLocation(gomock.Any(), entity.TechnicianLocation{
					TechnicianID: 3,
					Latitude:     4.711,
					Longitude:    -74.0721,
					RecordedAt:   recordedAt,
				}).Return(entity.TechnicianLocation{ID: 1}, nil)
			},
		},
		{
			name:  "malformed message is dropped",
			value: `{"technician_id":`,
			mock:  func(*mocks.MockService) {},
		},
		{
			name:  "out of range fix is dropped",
			value: `{"technician_id":3,"latitude":120,"longitude":0}`,
			mock: func(s *mocks.MockService) {
				s.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).Return(entity.TechnicianLocation{}, entity.ErrInvalidArgument)
			},
		},
		{
			name:  "unknown technician is dropped",
			value: `{"technician_id":99,"latitude":4.7,"longitude":-74}`,
			mock: func(s *mocks.MockService) {
				s.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).Return(entity.TechnicianLocation{}, entity.ErrConflict)
			},
		},
		{
			name:  "storage failure is retried",
			value: `{"technician_id":3,"latitude":4.7,"longitude":-74}`,
			mock: func(s *mocks.MockService) {
				s.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).Return(entity.TechnicianLocation{}, errors.New("pool closed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := mocks.NewMockService(gomock.NewController(t))
			tt.mock(s)

			err := events.NewEventHandler(s).OnLocationReported(context.Background(), kafka.Message{Value: []byte(tt.value)})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
