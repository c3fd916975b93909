package reschedule_claim

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	rescheduleClaim "github.com/m04kA/SMC-CapacityService/internal/usecase/reschedule_claim"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	ChannelID string  `json:"channelId"`
	Date      string  `json:"date"` // Прежняя дата
	Hour      string  `json:"hour"` // Прежний час
	Area      *string `json:"area,omitempty"`

	NewDate  string `json:"newDate"`
	NewHour  string `json:"newHour"`
	Quantity int    `json:"quantity"`
	Kind     string `json:"kind"` // scheduled | held
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	DeletedIDs []int64        `json:"deletedIds"`
	Created    []CreatedClaim `json:"created"`
	Dropped    int            `json:"dropped"`
}

// CreatedClaim созданное резервирование в HTTP ответе
type CreatedClaim struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Hour     string `json:"hour"`
	Quantity int    `json:"quantity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func ToUseCaseRequest(req *RescheduleRequest) (*rescheduleClaim.Request, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	newDate, err := domain.ParseDate(req.NewDate)
	if err != nil {
		return nil, err
	}

	return &rescheduleClaim.Request{
		ChannelID: req.ChannelID,
		Date:      date,
		Hour:      req.Hour,
		Area:      req.Area,
		NewDate:   newDate,
		NewHour:   types.TimeString(types.TruncateToHHMM(req.NewHour)),
		Quantity:  req.Quantity,
		Kind:      domain.ClaimKind(req.Kind),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleClaim.Response) *RescheduleResponse {
	created := make([]CreatedClaim, len(resp.Created))
	for i, claim := range resp.Created {
		created[i] = CreatedClaim{
			ID:       claim.ID,
			Date:     claim.Date.Format(domain.DateFormat),
			Hour:     claim.Hour.String(),
			Quantity: claim.Quantity,
		}
	}

	return &RescheduleResponse{
		DeletedIDs: resp.DeletedIDs,
		Created:    created,
		Dropped:    resp.Dropped,
	}
}
