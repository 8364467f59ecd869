package serializer

import (
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
)

// StoreView is the wire representation of a storefront.
type StoreView struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Logo        []byte         `json:"logo"`
	Partner     PartnerSummary `json:"partner"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   string         `json:"created_at"`
	LastUpdate  *string        `json:"last_update"`
}

// Store flattens a store. The owning partner is required; the partner's
// user is never followed from here.
func Store(s *models.Store) (*StoreView, error) {
	if s == nil {
		return nil, errNilEntity("store")
	}

	partner, err := lazy.Require(lazy.Loaded(s.Partner), "partner", "store", s.ID)
	if err != nil {
		return nil, fault("store", s.ID, err)
	}

	return &StoreView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Logo:        s.Logo,
		Partner:     partnerSummary(partner),
		IsActive:    s.IsActive,
		CreatedAt:   formatTime(s.CreatedAt),
		LastUpdate:  timeString(s.LastUpdate),
	}, nil
}
