package models

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// CreateClaimRequest запрос на создание резервирования
type CreateClaimRequest struct {
	ChannelID string
	Date      time.Time
	Hour      string
	Quantity  int
	Area      *string
	Kind      string
}

// ClaimResponse резервирование в ответе сервиса
type ClaimResponse struct {
	ID        int64     `json:"id"`
	ChannelID string    `json:"channelId"`
	Date      string    `json:"date"`
	Hour      string    `json:"hour"`
	Quantity  int       `json:"quantity"`
	Area      *string   `json:"area,omitempty"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainClaim конвертирует доменное резервирование в response
func FromDomainClaim(claim *domain.Claim) *ClaimResponse {
	return &ClaimResponse{
		ID:        claim.ID,
		ChannelID: claim.ChannelID,
		Date:      claim.Date.Format(domain.DateFormat),
		Hour:      claim.Hour.String(),
		Quantity:  claim.Quantity,
		Area:      claim.Area,
		Kind:      string(claim.Kind),
		CreatedAt: claim.CreatedAt,
	}
}

// FromDomainClaimList конвертирует список резервирований в response
func FromDomainClaimList(claims []*domain.Claim) []*ClaimResponse {
	result := make([]*ClaimResponse, len(claims))
	for i, claim := range claims {
		result[i] = FromDomainClaim(claim)
	}
	return result
}
