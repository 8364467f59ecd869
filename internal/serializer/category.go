package serializer

import (
	"sort"

	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/lazy"
)

// CategoryView is the wire representation of a category.
type CategoryView struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Image      []byte       `json:"image"`
	Tags       []TagSummary `json:"tags"`
	CreatedAt  string       `json:"created_at"`
	LastUpdate *string      `json:"last_update"`
}

// Category flattens a category and its tags. Tags are a bounded view of the
// many-to-many edge; the reverse tag->category edge is never followed.
func Category(c *models.Category) (*CategoryView, error) {
	if c == nil {
		return nil, errNilEntity("category")
	}

	view := &CategoryView{
		ID:         c.ID,
		Name:       c.Name,
		Image:      c.Image,
		Tags:       []TagSummary{},
		CreatedAt:  formatTime(c.CreatedAt),
		LastUpdate: timeString(c.LastUpdate),
	}

	if loaded, ok := lazy.LoadedSlice(c.Tags).Get(); ok {
		tags := append([]models.Tag(nil), loaded...)
		sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
		for i := range tags {
			view.Tags = append(view.Tags, tagSummary(&tags[i]))
		}
	}

	return view, nil
}
