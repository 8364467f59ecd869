package serializer

import (
	"sort"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
)

// CenterView is the wire representation of a gym center.
type CenterView struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Address    string           `json:"address"`
	Phone      *string          `json:"phone"`
	Email      *string          `json:"email"`
	Services   []string         `json:"services"`
	Image      []byte           `json:"image"`
	Partner    PartnerSummary   `json:"partner"`
	Trainers   []TrainerSummary `json:"trainers"`
	IsActive   bool             `json:"is_active"`
	CreatedAt  string           `json:"created_at"`
	LastUpdate *string          `json:"last_update"`
}

// Center flattens a center. The owning partner is required; employed
// trainers ride as bounded summaries.
func Center(c *models.Center) (*CenterView, error) {
	if c == nil {
		return nil, errNilEntity("center")
	}

	partner, err := lazy.Require(lazy.Loaded(c.Partner), "partner", "center", c.ID)
	if err != nil {
		return nil, fault("center", c.ID, err)
	}

	view := &CenterView{
		ID:         c.ID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		Email:      c.Email,
		Services:   append([]string{}, c.Services...),
		Image:      c.Image,
		Partner:    partnerSummary(partner),
		Trainers:   []TrainerSummary{},
		IsActive:   c.IsActive,
		CreatedAt:  formatTime(c.CreatedAt),
		LastUpdate: timeString(c.LastUpdate),
	}

	if loaded, ok := lazy.LoadedSlice(c.Trainers).Get(); ok {
		trainers := append([]models.Trainer(nil), loaded...)
		sort.Slice(trainers, func(i, j int) bool { return trainers[i].ID < trainers[j].ID })
		for i := range trainers {
			view.Trainers = append(view.Trainers, trainerSummary(&trainers[i]))
		}
	}

	return view, nil
}
