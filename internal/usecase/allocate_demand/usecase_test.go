package allocate_demand_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	"github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

type fakeChannelRepo struct {
	channels map[string]*domain.Channel
}

func (f *fakeChannelRepo) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	ch, ok := f.channels[name]
	if !ok {
		return nil, channelRepo.ErrChannelNotFound
	}
	return ch, nil
}

type claimKey struct {
	channelID string
	hour      types.TimeString
}

type fakeClaimRepo struct {
	claims map[claimKey][]*domain.Claim
}

func (f *fakeClaimRepo) GetByChannelAndDate(ctx context.Context, channelID string, date time.Time, hour *types.TimeString) ([]*domain.Claim, error) {
	if hour == nil {
		var all []*domain.Claim
		for k, c := range f.claims {
			if k.channelID == channelID {
				all = append(all, c...)
			}
		}
		return all, nil
	}
	return f.claims[claimKey{channelID: channelID, hour: *hour}], nil
}

type fakeSlotResolver struct {
	catalogs map[string][]types.TimeString
}

func (f *fakeSlotResolver) Resolve(ctx context.Context, groupID string) ([]types.TimeString, error) {
	return f.catalogs[groupID], nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func emailChannel(maxCapacity int) *domain.Channel {
	return &domain.Channel{
		ID:                1,
		Name:              "email",
		ExternalID:        "ext-email",
		SlotGroupID:       "grp-email",
		MaxHourlyCapacity: maxCapacity,
	}
}

func newTestUseCase(channels map[string]*domain.Channel, claims map[claimKey][]*domain.Claim, catalogs map[string][]types.TimeString) *allocate_demand.UseCase {
	if claims == nil {
		claims = map[claimKey][]*domain.Claim{}
	}
	return allocate_demand.NewUseCase(
		&fakeChannelRepo{channels: channels},
		&fakeClaimRepo{claims: claims},
		&fakeSlotResolver{catalogs: catalogs},
		nopLogger{},
	)
}

func allocDate() time.Time {
	return time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
}

func TestExecute_FitsWithoutChanges(t *testing.T) {
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		nil,
		map[string][]types.TimeString{"grp-email": {"09:00", "10:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 7},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Equal(t, 7, resp.Items[0].Quantity)
	assert.Equal(t, domain.OutcomeAllocated, resp.Items[0].Outcome)
	assert.Equal(t, "ext-email", resp.Items[0].ChannelID)
	assert.Empty(t, resp.Dropped)
}

func TestExecute_SplitSlotOverflowSpillsToSecondHalf(t *testing.T) {
	// Ёмкость 10, split-слот 08:00 вмещает 5: из 6 остается 5,
	// излишек 1 уходит в 08:30
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		nil,
		map[string][]types.TimeString{"grp-email": {"08:00", "08:30", "09:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "08:00", Quantity: 6},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, types.TimeString("08:00"), resp.Items[0].Hour)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, types.TimeString("08:30"), resp.Items[1].Hour)
	assert.Equal(t, 1, resp.Items[1].Quantity)
	assert.Empty(t, resp.Dropped)

	for _, item := range resp.Items {
		assert.Equal(t, domain.OutcomeAllocated, item.Outcome)
	}
}

func TestExecute_ExistingClaimsReduceCapacity(t *testing.T) {
	claims := map[claimKey][]*domain.Claim{
		{channelID: "ext-email", hour: "09:00"}: {
			{Quantity: 8, Kind: domain.KindScheduled},
		},
	}
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		claims,
		map[string][]types.TimeString{"grp-email": {"09:00", "10:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 5},
		},
	})
	require.NoError(t, err)

	// 2 остаются в 09:00, 3 переливаются в 10:00
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Equal(t, 3, resp.Items[1].Quantity)
	assert.Equal(t, types.TimeString("10:00"), resp.Items[1].Hour)
}

func TestExecute_OwnHeldClaimsDoNotBlock(t *testing.T) {
	claims := map[claimKey][]*domain.Claim{
		{channelID: "ext-email", hour: "09:00"}: {
			{Quantity: 8, Kind: domain.KindHeld, Area: ptr.Ptr("ops")},
		},
	}
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		claims,
		map[string][]types.TimeString{"grp-email": {"09:00", "10:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 5},
		},
		Area: ptr.Ptr("ops"),
	})
	require.NoError(t, err)

	// held своей области не занимает ёмкость: всё умещается в 09:00
	require.Len(t, resp.Items, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestExecute_UnknownChannelPassesThrough(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "carrier-pigeon", Date: allocDate(), Hour: "09:00", Quantity: 100},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.OutcomePassthroughUnbounded, resp.Items[0].Outcome)
	assert.Equal(t, 100, resp.Items[0].Quantity)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Empty(t, resp.Items[0].ChannelID)
}

func TestExecute_UnboundedChannelPassesThrough(t *testing.T) {
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(0)},
		nil,
		map[string][]types.TimeString{"grp-email": {"09:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 500},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.OutcomePassthroughUnbounded, resp.Items[0].Outcome)
	assert.Equal(t, 500, resp.Items[0].Quantity)
}

func TestExecute_DroppedWhenNoSlotLeft(t *testing.T) {
	claims := map[claimKey][]*domain.Claim{
		{channelID: "ext-email", hour: "22:00"}: {
			{Quantity: 10, Kind: domain.KindScheduled},
		},
	}
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		claims,
		map[string][]types.TimeString{"grp-email": {"21:00", "22:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "22:00", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	require.Len(t, resp.Dropped, 1)
	assert.Equal(t, 3, resp.Dropped[0].Quantity)
	assert.Equal(t, types.TimeString("22:00"), resp.Dropped[0].Hour)
}

func TestExecute_RemainderDroppedAtLastSlot(t *testing.T) {
	claims := map[claimKey][]*domain.Claim{
		{channelID: "ext-email", hour: "22:00"}: {
			{Quantity: 7, Kind: domain.KindScheduled},
		},
	}
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		claims,
		map[string][]types.TimeString{"grp-email": {"21:00", "22:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "22:00", Quantity: 5},
		},
	})
	require.NoError(t, err)

	// Усечённый элемент остается, остаток отбрасывается
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, types.TimeString("22:00"), resp.Items[0].Hour)

	require.Len(t, resp.Dropped, 1)
	assert.Equal(t, 2, resp.Dropped[0].Quantity)
}

func TestExecute_UnknownHourStartsFromFirstSlot(t *testing.T) {
	claims := map[claimKey][]*domain.Claim{
		{channelID: "ext-email", hour: "23:45"}: {
			{Quantity: 10, Kind: domain.KindScheduled},
		},
	}
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		claims,
		map[string][]types.TimeString{"grp-email": {"09:00", "10:00"}},
	)

	// Час 23:45 в каталоге отсутствует и его ёмкость исчерпана:
	// следующим слотом считается первый слот каталога
	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "23:45", Quantity: 4},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Equal(t, 4, resp.Items[0].Quantity)
}

func TestExecute_InvalidItemsRemoved(t *testing.T) {
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		nil,
		map[string][]types.TimeString{"grp-email": {"09:00"}},
	)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 0},
			{ChannelName: "", Date: allocDate(), Hour: "09:00", Quantity: 5},
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Empty(t, resp.Dropped)
}

func TestExecute_NilItemsRejected(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &allocate_demand.Request{})
	assert.ErrorIs(t, err, allocate_demand.ErrInvalidInput)
}

func TestExecute_EmptyBatchAllowed(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.Dropped)
}

func TestExecute_TwoItemsContendForSameSlot(t *testing.T) {
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(10)},
		nil,
		map[string][]types.TimeString{"grp-email": {"09:00", "10:00", "11:00"}},
	)

	// Первый элемент занимает 7 из 10, второму остается 3,
	// его излишек 4 переливается в 10:00
	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 7},
			{ChannelName: "email", Date: allocDate(), Hour: "09:00", Quantity: 7},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, 7, resp.Items[0].Quantity)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[0].Hour)
	assert.Equal(t, 3, resp.Items[1].Quantity)
	assert.Equal(t, types.TimeString("09:00"), resp.Items[1].Hour)
	assert.Equal(t, 4, resp.Items[2].Quantity)
	assert.Equal(t, types.TimeString("10:00"), resp.Items[2].Hour)

	// Суммарное количество сохраняется
	total := 0
	for _, item := range resp.Items {
		total += item.Quantity
	}
	assert.Equal(t, 14, total)
}

func TestExecute_NoZeroQuantityItemsInResult(t *testing.T) {
	uc := newTestUseCase(
		map[string]*domain.Channel{"email": emailChannel(4)},
		nil,
		map[string][]types.TimeString{"grp-email": {"08:00", "08:30"}},
	)

	// Ёмкость 4: split-слоты вмещают по 2
	resp, err := uc.Execute(context.Background(), &allocate_demand.Request{
		Items: []allocate_demand.DemandInput{
			{ChannelName: "email", Date: allocDate(), Hour: "08:00", Quantity: 5},
		},
	})
	require.NoError(t, err)

	for _, item := range resp.Items {
		assert.Greater(t, item.Quantity, 0)
	}
	for _, d := range resp.Dropped {
		assert.Greater(t, d.Quantity, 0)
	}
}
