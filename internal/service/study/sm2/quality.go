package sm2

import (
	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// PassThreshold is the lowest quality that counts as a successful recall.
const PassThreshold = domain.QualityDifficult

// Classify maps a recall grade to its outcome. Grades outside 0..5 are rejected.
func Classify(q domain.Quality) (domain.Outcome, error) {
	if !q.IsValid() {
		return "", &domain.InvalidQualityError{Quality: int(q)}
	}
	if q < PassThreshold {
		return domain.OutcomeFail, nil
	}
	return domain.OutcomePass, nil
}
