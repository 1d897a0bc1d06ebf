// api/classifier/classifier.go
package classifier

import (
	"errors"

	"shoppersignal/api/models"
)

// Classifier is the one operation this system consumes from the pre-trained
// model: the estimated probability that the visitor belongs to the purchase
// class. Implementations are read-only after construction and safe for
// concurrent use.
type Classifier interface {
	PredictProbability(rec models.FeatureRecord) (float64, error)
}

// The two recognized failure kinds. Both are terminal for the current
// request and are never retried automatically.
var (
	ErrModelUnavailable = errors.New("classifier: model unavailable")
	ErrInference        = errors.New("classifier: inference failed")
)
