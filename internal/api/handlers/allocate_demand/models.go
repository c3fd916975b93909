package allocate_demand

import (
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// AllocateRequest HTTP request model
type AllocateRequest struct {
	Items []DemandItemRequest `json:"items"`
	Area  *string             `json:"area,omitempty"`
}

// DemandItemRequest один элемент спроса в HTTP запросе
type DemandItemRequest struct {
	Channel  string `json:"channel"`
	Date     string `json:"date"` // YYYY-MM-DD или DD/MM/YYYY
	Hour     string `json:"hour"` // HH:MM
	Quantity int    `json:"quantity"`
}

// AllocateResponse HTTP response model
type AllocateResponse struct {
	Items   []AllocatedItem `json:"items"`
	Dropped []DroppedItem   `json:"dropped"`
}

// AllocatedItem итоговый элемент спроса в HTTP ответе
type AllocatedItem struct {
	Channel   string `json:"channel"`
	ChannelID string `json:"channelId,omitempty"`
	Date      string `json:"date"`
	Hour      string `json:"hour"`
	Quantity  int    `json:"quantity"`
	Outcome   string `json:"outcome"`
}

// DroppedItem отброшенный элемент спроса в HTTP ответе
type DroppedItem struct {
	Channel  string `json:"channel"`
	Date     string `json:"date"`
	Hour     string `json:"hour"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func ToUseCaseRequest(req *AllocateRequest) (*allocateDemand.Request, error) {
	items := make([]allocateDemand.DemandInput, len(req.Items))
	for i, item := range req.Items {
		date, err := domain.ParseDate(item.Date)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items[i] = allocateDemand.DemandInput{
			ChannelName: item.Channel,
			Date:        date,
			Hour:        types.TimeString(types.TruncateToHHMM(item.Hour)),
			Quantity:    item.Quantity,
		}
	}

	return &allocateDemand.Request{
		Items: items,
		Area:  req.Area,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateDemand.Response) *AllocateResponse {
	items := make([]AllocatedItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = AllocatedItem{
			Channel:   item.ChannelName,
			ChannelID: item.ChannelID,
			Date:      item.Date.Format(domain.DateFormat),
			Hour:      item.Hour.String(),
			Quantity:  item.Quantity,
			Outcome:   string(item.Outcome),
		}
	}

	dropped := make([]DroppedItem, len(resp.Dropped))
	for i, item := range resp.Dropped {
		dropped[i] = DroppedItem{
			Channel:  item.ChannelName,
			Date:     item.Date.Format(domain.DateFormat),
			Hour:     item.Hour.String(),
			Quantity: item.Quantity,
			Reason:   item.Reason,
		}
	}

	return &AllocateResponse{Items: items, Dropped: dropped}
}
