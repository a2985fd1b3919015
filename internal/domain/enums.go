package domain

// Quality is the learner's self-assessed recall grade for one review, 0..5.
type Quality int

const (
	QualityBlackout   Quality = 0
	QualityUnfamiliar Quality = 1
	QualityFamiliar   Quality = 2
	QualityDifficult  Quality = 3
	QualityHesitant   Quality = 4
	QualityPerfect    Quality = 5
)

const (
	QualityMin = QualityBlackout
	QualityMax = QualityPerfect
)

func (q Quality) IsValid() bool {
	return q >= QualityMin && q <= QualityMax
}

// String returns the label shown on the rating buttons.
func (q Quality) String() string {
	switch q {
	case QualityBlackout:
		return "Complete Blackout"
	case QualityUnfamiliar:
		return "Incorrect and Unfamiliar"
	case QualityFamiliar:
		return "Incorrect but Familiar"
	case QualityDifficult:
		return "Correct with Difficulty"
	case QualityHesitant:
		return "Correct with Hesitation"
	case QualityPerfect:
		return "Perfect Recall"
	}
	return "Unknown"
}

// Outcome is the binary classification of a review.
type Outcome string

const (
	OutcomeFail Outcome = "FAIL"
	OutcomePass Outcome = "PASS"
)

func (o Outcome) String() string { return string(o) }

// DueBucket names a partition of the due set.
type DueBucket string

const (
	DueBucketOverdue    DueBucket = "OVERDUE"
	DueBucketDueNow     DueBucket = "DUE_NOW"
	DueBucketDueSoon    DueBucket = "DUE_SOON"
	DueBucketLaterToday DueBucket = "LATER_TODAY"
	DueBucketUpcoming   DueBucket = "UPCOMING"
)

func (b DueBucket) String() string { return string(b) }
