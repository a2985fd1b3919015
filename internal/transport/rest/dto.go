package rest

import (
	"time"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

type deckResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:        d.ID.String(),
		Title:     d.Title,
		Subject:   d.Subject,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// cardResponse carries the card content and, once reviewed, its schedule.
// Scheduling fields are null for never-reviewed cards.
type cardResponse struct {
	ID             string     `json:"id"`
	DeckID         string     `json:"deck_id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Repetitions    int        `json:"repetitions"`
	Interval       *int       `json:"interval"`
	Ease           *float64   `json:"ease"`
	ScheduledDate  *time.Time `json:"scheduled_date"`
	LastReviewDate *time.Time `json:"last_review_date"`
	LastQuality    *int       `json:"last_quality"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toCardResponse(c *domain.Card) cardResponse {
	resp := cardResponse{
		ID:        c.ID.String(),
		DeckID:    c.DeckID.String(),
		Question:  c.Question,
		Answer:    c.Answer,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
	if s := c.State; s != nil {
		interval := s.IntervalDays
		ease := s.Ease
		due := s.DueAt.UTC()
		last := s.LastReviewedAt.UTC()
		quality := int(s.LastQuality)

		resp.Repetitions = s.Repetitions
		resp.Interval = &interval
		resp.Ease = &ease
		resp.ScheduledDate = &due
		resp.LastReviewDate = &last
		resp.LastQuality = &quality
	}
	return resp
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i := range cards {
		out[i] = toCardResponse(&cards[i])
	}
	return out
}

type dueCountsResponse struct {
	Overdue    int `json:"overdue"`
	DueNow     int `json:"dueNow"`
	DueSoon    int `json:"dueSoon"`
	LaterToday int `json:"laterToday"`
	Upcoming   int `json:"upcoming"`
	Total      int `json:"total"`
}

// dueSetResponse omits dueSoon unless the caller asked for it.
type dueSetResponse struct {
	Overdue    []cardResponse    `json:"overdue"`
	DueNow     []cardResponse    `json:"dueNow"`
	DueSoon    *[]cardResponse   `json:"dueSoon,omitempty"`
	LaterToday []cardResponse    `json:"laterToday"`
	Upcoming   []cardResponse    `json:"upcoming"`
	Counts     dueCountsResponse `json:"counts"`
}

func toDueSetResponse(set domain.DueSet, includeDueSoon bool) dueSetResponse {
	counts := set.Counts()
	resp := dueSetResponse{
		Overdue:    toCardResponses(set.Overdue),
		DueNow:     toCardResponses(set.DueNow),
		LaterToday: toCardResponses(set.LaterToday),
		Upcoming:   toCardResponses(set.Upcoming),
		Counts: dueCountsResponse{
			Overdue:    counts.Overdue,
			DueNow:     counts.DueNow,
			DueSoon:    counts.DueSoon,
			LaterToday: counts.LaterToday,
			Upcoming:   counts.Upcoming,
			Total:      set.Total(),
		},
	}
	if includeDueSoon {
		soon := toCardResponses(set.DueSoon)
		resp.DueSoon = &soon
	}
	return resp
}

type forecastDayResponse struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type forecastResponse struct {
	Days  []forecastDayResponse `json:"days"`
	Total int                   `json:"total"`
}

func toForecastResponse(days []domain.DayForecast) forecastResponse {
	resp := forecastResponse{Days: make([]forecastDayResponse, len(days))}
	for i, d := range days {
		resp.Days[i] = forecastDayResponse{Date: d.Date.UTC(), Count: d.Count}
		resp.Total += d.Count
	}
	return resp
}
