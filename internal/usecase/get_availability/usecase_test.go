package get_availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	"github.com/m04kA/SMC-CapacityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

type fakeChannelRepo struct {
	channel *domain.Channel
}

func (f *fakeChannelRepo) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	if f.channel == nil || f.channel.Name != name {
		return nil, channelRepo.ErrChannelNotFound
	}
	return f.channel, nil
}

type fakeClaimRepo struct {
	claims []*domain.Claim
}

func (f *fakeClaimRepo) GetByChannelAndDate(ctx context.Context, channelID string, date time.Time, hour *types.TimeString) ([]*domain.Claim, error) {
	return f.claims, nil
}

type fakeSlotResolver struct {
	slots []types.TimeString
}

func (f *fakeSlotResolver) Resolve(ctx context.Context, groupID string) ([]types.TimeString, error) {
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testChannel() *domain.Channel {
	return &domain.Channel{
		ID:                1,
		Name:              "email",
		ExternalID:        "ext-email",
		SlotGroupID:       "grp-email",
		MaxHourlyCapacity: 10,
	}
}

func TestExecute(t *testing.T) {
	uc := get_availability.NewUseCase(
		&fakeChannelRepo{channel: testChannel()},
		&fakeClaimRepo{claims: []*domain.Claim{
			{Hour: "09:00", Quantity: 4, Kind: domain.KindScheduled},
			{Hour: "09:00", Quantity: 3, Kind: domain.KindHeld, Area: ptr.Ptr("ops")},
		}},
		&fakeSlotResolver{slots: []types.TimeString{"08:00", "09:00"}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &get_availability.Request{
		ChannelName: "email",
		Date:        time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Area:        ptr.Ptr("ops"),
		Context:     domain.ViewContextForm,
	})
	require.NoError(t, err)

	assert.Equal(t, "email", resp.ChannelName)
	assert.Equal(t, "ext-email", resp.ChannelID)
	assert.Equal(t, 10, resp.MaxHourlyCapacity)
	require.Len(t, resp.Slots, 2)

	// Split-слот 08:00 с половиной ёмкости
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].Hour)
	assert.Equal(t, 5, resp.Slots[0].EffectiveMax)
	assert.Equal(t, 5, resp.Slots[0].Available)

	// 09:00: scheduled считается, свой held в form-контексте нет
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[1].Hour)
	assert.Equal(t, 4, resp.Slots[1].Used)
	assert.Equal(t, 6, resp.Slots[1].Available)
	require.NotNil(t, resp.Slots[1].UsedBySameArea)
	assert.Equal(t, 3, *resp.Slots[1].UsedBySameArea)
}

func TestExecute_ChannelNotFound(t *testing.T) {
	uc := get_availability.NewUseCase(
		&fakeChannelRepo{},
		&fakeClaimRepo{},
		&fakeSlotResolver{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &get_availability.Request{
		ChannelName: "missing",
		Date:        time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Context:     domain.ViewContextForm,
	})
	assert.ErrorIs(t, err, get_availability.ErrChannelNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := get_availability.NewUseCase(
		&fakeChannelRepo{channel: testChannel()},
		&fakeClaimRepo{},
		&fakeSlotResolver{},
		nopLogger{},
	)

	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := map[string]*get_availability.Request{
		"empty channel name": {ChannelName: "", Date: date, Context: domain.ViewContextForm},
		"zero date":          {ChannelName: "email", Context: domain.ViewContextForm},
		"unknown context":    {ChannelName: "email", Date: date, Context: "moderator"},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, get_availability.ErrInvalidInput)
		})
	}
}
