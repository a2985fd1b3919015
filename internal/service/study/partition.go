package study

import (
	"cmp"
	"slices"
	"time"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// DefaultDueSoonWindow is the look-ahead used for the due-soon bucket.
const DefaultDueSoonWindow = time.Hour

// PartitionOptions controls how cards are bucketed.
type PartitionOptions struct {
	// Location defines "today". Nil means UTC.
	Location *time.Location
	// DueSoonWindow defaults to DefaultDueSoonWindow when zero.
	DueSoonWindow  time.Duration
	IncludeDueSoon bool
}

func (o PartitionOptions) window() time.Duration {
	if o.DueSoonWindow <= 0 {
		return DefaultDueSoonWindow
	}
	return o.DueSoonWindow
}

func (o PartitionOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// BucketOf returns the bucket a card belongs to at now. The first matching rule wins:
//  1. never reviewed -> overdue
//  2. due before now -> overdue
//  3. due exactly now -> due now
//  4. due within the window, when requested -> due soon
//  5. due later today, past the window -> later today
//  6. anything else -> upcoming
func BucketOf(card domain.Card, now time.Time, opts PartitionOptions) domain.DueBucket {
	if card.IsNew() {
		return domain.DueBucketOverdue
	}

	due := card.State.DueAt
	soon := now.Add(opts.window())

	switch {
	case due.Before(now):
		return domain.DueBucketOverdue
	case due.Equal(now):
		return domain.DueBucketDueNow
	case !due.After(soon) && opts.IncludeDueSoon:
		return domain.DueBucketDueSoon
	case due.After(soon) && due.Before(NextDayStart(now, opts.location())):
		return domain.DueBucketLaterToday
	default:
		return domain.DueBucketUpcoming
	}
}

// Partition splits cards into mutually exclusive buckets. Pure; the input slice is not modified.
// Each bucket is ordered by due time, never-reviewed cards after reviewed ones (by creation time),
// ties broken by card ID.
func Partition(cards []domain.Card, now time.Time, opts PartitionOptions) domain.DueSet {
	set := domain.DueSet{
		Overdue:    []domain.Card{},
		DueNow:     []domain.Card{},
		DueSoon:    []domain.Card{},
		LaterToday: []domain.Card{},
		Upcoming:   []domain.Card{},
	}

	for _, c := range cards {
		switch BucketOf(c, now, opts) {
		case domain.DueBucketOverdue:
			set.Overdue = append(set.Overdue, c)
		case domain.DueBucketDueNow:
			set.DueNow = append(set.DueNow, c)
		case domain.DueBucketDueSoon:
			set.DueSoon = append(set.DueSoon, c)
		case domain.DueBucketLaterToday:
			set.LaterToday = append(set.LaterToday, c)
		default:
			set.Upcoming = append(set.Upcoming, c)
		}
	}

	for _, bucket := range [][]domain.Card{set.Overdue, set.DueNow, set.DueSoon, set.LaterToday, set.Upcoming} {
		slices.SortStableFunc(bucket, compareByDue)
	}

	return set
}

func compareByDue(a, b domain.Card) int {
	switch {
	case a.IsNew() && !b.IsNew():
		return 1
	case !a.IsNew() && b.IsNew():
		return -1
	case !a.IsNew() && !b.IsNew():
		if c := a.State.DueAt.Compare(b.State.DueAt); c != 0 {
			return c
		}
	default:
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}
