package reschedule_claim_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
	"github.com/m04kA/SMC-CapacityService/internal/usecase/reschedule_claim"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

type fakeChannelRepo struct {
	channel *domain.Channel
}

func (f *fakeChannelRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.Channel, error) {
	if f.channel == nil || f.channel.ExternalID != externalID {
		return nil, channelRepo.ErrChannelNotFound
	}
	return f.channel, nil
}

type fakeClaimRepo struct {
	existing   []*domain.Claim
	created    []*domain.Claim
	deletedIDs []int64
}

func (f *fakeClaimRepo) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	stored := *claim
	stored.ID = int64(100 + len(f.created))
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeClaimRepo) FindByHourPrefix(ctx context.Context, channelID string, date time.Time, hourPrefix string, area *string) ([]*domain.Claim, error) {
	return f.existing, nil
}

func (f *fakeClaimRepo) DeleteByIDs(ctx context.Context, ids []int64) error {
	f.deletedIDs = append(f.deletedIDs, ids...)
	return nil
}

// fakeAllocator возвращает заранее заданный результат аллокации
type fakeAllocator struct {
	resp    *allocateDemand.Response
	lastReq *allocateDemand.Request
}

func (f *fakeAllocator) Execute(ctx context.Context, req *allocateDemand.Request) (*allocateDemand.Response, error) {
	f.lastReq = req
	return f.resp, nil
}

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute(t *testing.T) {
	claims := &fakeClaimRepo{existing: []*domain.Claim{
		{ID: 7, ChannelID: "ext-email", Date: day(10), Hour: "09:00", Quantity: 5},
	}}
	allocator := &fakeAllocator{resp: &allocateDemand.Response{
		Items: []allocateDemand.ResultItem{
			{ChannelName: "email", ChannelID: "ext-email", Date: day(11), Hour: "10:00", Quantity: 3, Outcome: domain.OutcomeAllocated},
			{ChannelName: "email", ChannelID: "ext-email", Date: day(11), Hour: "11:00", Quantity: 1, Outcome: domain.OutcomeAllocated},
		},
		Dropped: []allocateDemand.DroppedItem{
			{ChannelName: "email", Date: day(11), Hour: "11:00", Quantity: 1},
		},
	}}

	uc := reschedule_claim.NewUseCase(
		&fakeChannelRepo{channel: testChannel()},
		claims,
		allocator,
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &reschedule_claim.Request{
		ChannelID: "ext-email",
		Date:      day(10),
		Hour:      "09:00",
		NewDate:   day(11),
		NewHour:   "10:00",
		Quantity:  5,
		Kind:      domain.KindHeld,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, resp.DeletedIDs)
	assert.Equal(t, []int64{7}, claims.deletedIDs)

	// Аллокатор получает имя канала, не внешний ID
	require.NotNil(t, allocator.lastReq)
	require.Len(t, allocator.lastReq.Items, 1)
	assert.Equal(t, "email", allocator.lastReq.Items[0].ChannelName)

	// Каждый итоговый элемент аллокации становится отдельным claim'ом
	require.Len(t, resp.Created, 2)
	assert.Equal(t, types.TimeString("10:00"), resp.Created[0].Hour)
	assert.Equal(t, 3, resp.Created[0].Quantity)
	assert.Equal(t, types.TimeString("11:00"), resp.Created[1].Hour)
	assert.Equal(t, 1, resp.Created[1].Quantity)
	assert.Equal(t, 1, resp.Dropped)

	require.Len(t, claims.created, 2)
	for _, c := range claims.created {
		assert.Equal(t, "ext-email", c.ChannelID)
		assert.Equal(t, domain.KindHeld, c.Kind)
	}
}

func TestExecute_ChannelNotFound(t *testing.T) {
	uc := reschedule_claim.NewUseCase(
		&fakeChannelRepo{},
		&fakeClaimRepo{},
		&fakeAllocator{resp: &allocateDemand.Response{}},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &reschedule_claim.Request{
		ChannelID: "missing",
		Date:      day(10),
		Hour:      "09:00",
		NewDate:   day(11),
		NewHour:   "10:00",
		Quantity:  5,
		Kind:      domain.KindScheduled,
	})
	assert.ErrorIs(t, err, reschedule_claim.ErrChannelNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := reschedule_claim.NewUseCase(
		&fakeChannelRepo{channel: testChannel()},
		&fakeClaimRepo{},
		&fakeAllocator{resp: &allocateDemand.Response{}},
		fakeTxManager{},
		nopLogger{},
	)

	base := reschedule_claim.Request{
		ChannelID: "ext-email",
		Date:      day(10),
		Hour:      "09:00",
		NewDate:   day(11),
		NewHour:   "10:00",
		Quantity:  5,
		Kind:      domain.KindScheduled,
	}

	tests := map[string]struct {
		mutate  func(r *reschedule_claim.Request)
		wantErr error
	}{
		"empty channel": {
			mutate:  func(r *reschedule_claim.Request) { r.ChannelID = "" },
			wantErr: reschedule_claim.ErrInvalidInput,
		},
		"zero new date": {
			mutate:  func(r *reschedule_claim.Request) { r.NewDate = time.Time{} },
			wantErr: reschedule_claim.ErrInvalidInput,
		},
		"empty new hour": {
			mutate:  func(r *reschedule_claim.Request) { r.NewHour = "" },
			wantErr: reschedule_claim.ErrInvalidInput,
		},
		"non-positive quantity": {
			mutate:  func(r *reschedule_claim.Request) { r.Quantity = 0 },
			wantErr: reschedule_claim.ErrInvalidInput,
		},
		"unknown kind": {
			mutate:  func(r *reschedule_claim.Request) { r.Kind = "tentative" },
			wantErr: reschedule_claim.ErrInvalidKind,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExecute_NoOldClaims(t *testing.T) {
	claims := &fakeClaimRepo{}
	allocator := &fakeAllocator{resp: &allocateDemand.Response{
		Items: []allocateDemand.ResultItem{
			{ChannelName: "email", ChannelID: "ext-email", Date: day(11), Hour: "10:00", Quantity: 5, Outcome: domain.OutcomeAllocated},
		},
	}}

	uc := reschedule_claim.NewUseCase(
		&fakeChannelRepo{channel: testChannel()},
		claims,
		allocator,
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &reschedule_claim.Request{
		ChannelID: "ext-email",
		Date:      day(10),
		Hour:      "09:00",
		NewDate:   day(11),
		NewHour:   "10:00",
		Quantity:  5,
		Kind:      domain.KindScheduled,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.DeletedIDs)
	assert.Empty(t, claims.deletedIDs)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, 0, resp.Dropped)
}
