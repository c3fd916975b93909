package create_claim

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/ledger/models"
)

// CreateClaimRequest HTTP request model
type CreateClaimRequest struct {
	ChannelID string  `json:"channelId"`
	Date      string  `json:"date"` // YYYY-MM-DD или DD/MM/YYYY
	Hour      string  `json:"hour"` // HH:MM
	Quantity  int     `json:"quantity"`
	Area      *string `json:"area,omitempty"`
	Kind      string  `json:"kind"` // scheduled | held
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func ToServiceRequest(req *CreateClaimRequest) (*models.CreateClaimRequest, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateClaimRequest{
		ChannelID: req.ChannelID,
		Date:      date,
		Hour:      req.Hour,
		Quantity:  req.Quantity,
		Area:      req.Area,
		Kind:      req.Kind,
	}, nil
}
