package get_availability

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Channel           string             `json:"channel"`
	ChannelID         string             `json:"channelId"`
	Date              string             `json:"date"`
	MaxHourlyCapacity int                `json:"maxHourlyCapacity"`
	Slots             []SlotAvailability `json:"slots"`
}

// SlotAvailability почасовая доступность в HTTP ответе
type SlotAvailability struct {
	Hour           string `json:"hour"`
	EffectiveMax   int    `json:"effectiveMax"`
	Used           int    `json:"used"`
	Available      int    `json:"available"`
	UsedBySameArea *int   `json:"usedBySameArea,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotAvailability, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotAvailability{
			Hour:           slot.Hour.String(),
			EffectiveMax:   slot.EffectiveMax,
			Used:           slot.Used,
			Available:      slot.Available,
			UsedBySameArea: slot.UsedBySameArea,
		}
	}

	return &AvailabilityResponse{
		Channel:           resp.ChannelName,
		ChannelID:         resp.ChannelID,
		Date:              resp.Date.Format(domain.DateFormat),
		MaxHourlyCapacity: resp.MaxHourlyCapacity,
		Slots:             slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(channelName, dateStr, area, contextStr string) (*getAvailability.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	viewCtx := domain.ViewContext(contextStr)
	if contextStr == "" {
		viewCtx = domain.ViewContextForm
	}

	req := &getAvailability.Request{
		ChannelName: channelName,
		Date:        date,
		Context:     viewCtx,
	}
	if area != "" {
		req.Area = &area
	}

	return req, nil
}
