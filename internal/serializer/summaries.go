package serializer

import "github.com/gymgrid/gymgrid-backend/pkg/db/models"

// Bounded summaries carry identity and display fields only. They are the
// one extra hop a full serializer is allowed to take into the graph.

type UserSummary struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ProductSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StoreSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PartnerSummary struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
}

type CenterSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategorySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DriverSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TrainerSummary struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func userSummary(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

func productSummary(p *models.Product) ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name}
}

func storeSummary(s *models.Store) StoreSummary {
	return StoreSummary{ID: s.ID, Name: s.Name}
}

func partnerSummary(p *models.Partner) PartnerSummary {
	return PartnerSummary{ID: p.ID, CompanyName: p.CompanyName}
}

func centerSummary(c *models.Center) CenterSummary {
	return CenterSummary{ID: c.ID, Name: c.Name}
}

func categorySummary(c *models.Category) CategorySummary {
	return CategorySummary{ID: c.ID, Name: c.Name}
}

func tagSummary(t *models.Tag) TagSummary {
	return TagSummary{ID: t.ID, Name: t.Name}
}

func driverSummary(d *models.Driver) DriverSummary {
	return DriverSummary{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func trainerSummary(t *models.Trainer) TrainerSummary {
	return TrainerSummary{ID: t.ID, UserID: t.UserID}
}
