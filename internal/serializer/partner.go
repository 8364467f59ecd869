package serializer

import (
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
)

// PartnerView is the wire representation of a partner business.
type PartnerView struct {
	ID          int64       `json:"id"`
	CompanyName string      `json:"company_name"`
	TaxID       *string     `json:"tax_id"`
	Logo        []byte      `json:"logo"`
	User        UserSummary `json:"user"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   string      `json:"created_at"`
	LastUpdate  *string     `json:"last_update"`
}

// Partner flattens a partner. The owning user account is required.
func Partner(p *models.Partner) (*PartnerView, error) {
	if p == nil {
		return nil, errNilEntity("partner")
	}

	user, err := lazy.Require(lazy.Loaded(p.User), "user", "partner", p.ID)
	if err != nil {
		return nil, fault("partner", p.ID, err)
	}

	return &PartnerView{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		TaxID:       p.TaxID,
		Logo:        p.Logo,
		User:        userSummary(user),
		IsActive:    p.IsActive,
		CreatedAt:   formatTime(p.CreatedAt),
		LastUpdate:  timeString(p.LastUpdate),
	}, nil
}
