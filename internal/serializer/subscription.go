package serializer

import (
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
	"github.com/shopspring/decimal"
)

// SubscriptionView is the wire representation of a membership plan.
type SubscriptionView struct {
	ID         int64                    `json:"id"`
	User       UserSummary              `json:"user"`
	Center     CenterSummary            `json:"center"`
	Plan       string                   `json:"plan"`
	Price      decimal.Decimal          `json:"price"`
	Status     enums.SubscriptionStatus `json:"status"`
	StartsAt   string                   `json:"starts_at"`
	EndsAt     *string                  `json:"ends_at"`
	CreatedAt  string                   `json:"created_at"`
	LastUpdate *string                  `json:"last_update"`
}

// Subscription flattens a membership. Both the member and the center are
// required relations.
func Subscription(s *models.Subscription) (*SubscriptionView, error) {
	if s == nil {
		return nil, errNilEntity("subscription")
	}

	user, err := lazy.Require(lazy.Loaded(s.User), "user", "subscription", s.ID)
	if err != nil {
		return nil, fault("subscription", s.ID, err)
	}
	center, err := lazy.Require(lazy.Loaded(s.Center), "center", "subscription", s.ID)
	if err != nil {
		return nil, fault("subscription", s.ID, err)
	}

	return &SubscriptionView{
		ID:         s.ID,
		User:       userSummary(user),
		Center:     centerSummary(center),
		Plan:       s.Plan,
		Price:      s.Price,
		Status:     s.Status,
		StartsAt:   formatTime(s.StartsAt),
		EndsAt:     timeString(s.EndsAt),
		CreatedAt:  formatTime(s.CreatedAt),
		LastUpdate: timeString(s.LastUpdate),
	}, nil
}
