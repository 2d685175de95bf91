package services

import (
	"github.com/SomSankar/omni-links/internal/models"

	"github.com/google/uuid"
)

// Move is a single drag gesture: the link at position From lands at position To.
// Positions are 0-based indexes into the profile's links sorted by order.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MoveItem returns a copy of links with the item at from removed and
// reinserted at to. Items in between shift by one to close the gap.
func MoveItem(links []models.Link, from, to int) ([]models.Link, error) {
	if from < 0 || from >= len(links) {
		return nil, invalid("from", "from position out of range")
	}
	if to < 0 || to >= len(links) {
		return nil, invalid("to", "to position out of range")
	}

	out := make([]models.Link, len(links))
	copy(out, links)
	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out, nil
}

// Rerank assigns every link its 1-based position as order, in place.
func Rerank(links []models.Link) []models.Link {
	for i := range links {
		links[i].Order = i + 1
	}
	return links
}

// MoveByIDs turns a drag of activeID onto overID into positions within links.
func MoveByIDs(links []models.Link, activeID, overID uuid.UUID) (Move, error) {
	from, to := indexOf(links, activeID), indexOf(links, overID)
	if from < 0 || to < 0 {
		return Move{}, ErrStaleOrder
	}
	return Move{From: from, To: to}, nil
}

func indexOf(links []models.Link, id uuid.UUID) int {
	for i := range links {
		if links[i].ID == id {
			return i
		}
	}
	return -1
}

func linkIDs(links []models.Link) []uuid.UUID {
	ids := make([]uuid.UUID, len(links))
	for i := range links {
		ids[i] = links[i].ID
	}
	return ids
}
