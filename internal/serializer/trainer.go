package serializer

import (
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
	"github.com/shopspring/decimal"
)

// TrainerView is the wire representation of a trainer profile. The
// certificate, CV and video demo blobs embed as base64 when present and as
// explicit nulls when absent; callers must not conflate the two.
type TrainerView struct {
	ID          int64           `json:"id"`
	User        UserSummary     `json:"user"`
	Bio         *string         `json:"bio"`
	Specialties []string        `json:"specialties"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Certificate []byte          `json:"certificate"`
	CV          []byte          `json:"cv"`
	VideoDemo   []byte          `json:"video_demo"`
	Center      *CenterSummary  `json:"center"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
	LastUpdate  *string         `json:"last_update"`
}

// Trainer flattens a trainer. The account user is required; the employing
// center is optional.
func Trainer(t *models.Trainer) (*TrainerView, error) {
	if t == nil {
		return nil, errNilEntity("trainer")
	}

	user, err := lazy.Require(lazy.Loaded(t.User), "user", "trainer", t.ID)
	if err != nil {
		return nil, fault("trainer", t.ID, err)
	}

	view := &TrainerView{
		ID:          t.ID,
		User:        userSummary(user),
		Bio:         t.Bio,
		Specialties: append([]string{}, t.Specialties...),
		HourlyRate:  t.HourlyRate,
		Certificate: t.Certificate,
		CV:          t.CV,
		VideoDemo:   t.VideoDemo,
		IsActive:    t.IsActive,
		CreatedAt:   formatTime(t.CreatedAt),
		LastUpdate:  timeString(t.LastUpdate),
	}

	if center, ok := lazy.Loaded(t.Center).Get(); ok {
		summary := centerSummary(center)
		view.Center = &summary
	}

	return view, nil
}
