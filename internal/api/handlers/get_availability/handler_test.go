package get_availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_availability"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/get_availability"
)

type fakeUseCase struct {
	resp    *getAvailability.Response
	err     error
	lastReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	h := handler.NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/channels/{channelName}/availability", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func okResponse() *getAvailability.Response {
	return &getAvailability.Response{
		ChannelName:       "email",
		ChannelID:         "ext-email",
		Date:              time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		MaxHourlyCapacity: 10,
		Slots: []domain.SlotAvailability{
			{Hour: "09:00", EffectiveMax: 10, Used: 4, Available: 6},
		},
	}
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: okResponse()}

	rec := serve(uc, "/api/v1/channels/email/availability?date=2025-06-10&area=ops&context=admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email", body.Channel)
	assert.Equal(t, "2025-06-10", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:00", body.Slots[0].Hour)
	assert.Equal(t, 6, body.Slots[0].Available)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, domain.ViewContextAdmin, uc.lastReq.Context)
	require.NotNil(t, uc.lastReq.Area)
	assert.Equal(t, "ops", *uc.lastReq.Area)
}

func TestHandle_AltDateFormat(t *testing.T) {
	uc := &fakeUseCase{resp: okResponse()}

	rec := serve(uc, "/api/v1/channels/email/availability?date=10%2F06%2F2025")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.lastReq)
	assert.True(t, domain.IsSameDate(
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), uc.lastReq.Date))
	// Контекст по умолчанию form, область не передана
	assert.Equal(t, domain.ViewContextForm, uc.lastReq.Context)
	assert.Nil(t, uc.lastReq.Area)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := map[string]string{
		"missing date":        "/api/v1/channels/email/availability",
		"unsupported format":  "/api/v1/channels/email/availability?date=2025%2F06%2F10",
		"garbage date":        "/api/v1/channels/email/availability?date=tomorrow",
	}

	for name, url := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(&fakeUseCase{resp: okResponse()}, url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err      error
		wantCode int
	}{
		"channel not found": {err: getAvailability.ErrChannelNotFound, wantCode: http.StatusNotFound},
		"invalid input":     {err: getAvailability.ErrInvalidInput, wantCode: http.StatusBadRequest},
		"internal error":    {err: getAvailability.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tc.err}, "/api/v1/channels/email/availability?date=2025-06-10")
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
