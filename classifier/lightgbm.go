// api/classifier/lightgbm.go
package classifier

import (
	"fmt"

	"github.com/dmitryikh/leaves"

	"shoppersignal/api/models"
)

// monthIndex encodes the Month column the way the training pipeline did:
// calendar month number.
var monthIndex = map[string]float64{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "June": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// LightGBM wraps a leaves ensemble loaded from a pre-trained model file. The
// artifact's format is owned entirely by the training side; this adapter only
// flattens a FeatureRecord into the dense vector the ensemble expects.
type LightGBM struct {
	ensemble *leaves.Ensemble
}

// NewLightGBM reads a LightGBM text-format model from path, including its
// output transformation so predictions come back as probabilities.
func NewLightGBM(path string) (*LightGBM, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: loading model from %s: %v", ErrModelUnavailable, path, err)
	}
	return &LightGBM{ensemble: ensemble}, nil
}

// PredictProbability runs one inference and returns the positive-class
// probability in [0,1].
func (c *LightGBM) PredictProbability(rec models.FeatureRecord) (prob float64, err error) {
	vec, err := Vectorize(rec)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInference, err)
	}
	if n := c.ensemble.NFeatures(); n != len(vec) {
		return 0, fmt.Errorf("%w: model expects %d features, record has %d", ErrInference, n, len(vec))
	}

	// leaves panics rather than erroring on malformed ensembles.
	defer func() {
		if r := recover(); r != nil {
			prob, err = 0, fmt.Errorf("%w: %v", ErrInference, r)
		}
	}()

	prob = c.ensemble.PredictSingle(vec, 0)
	if prob < 0 || prob > 1 {
		return 0, fmt.Errorf("%w: prediction %f outside [0,1], artifact may lack its output transformation", ErrInference, prob)
	}
	return prob, nil
}

// Vectorize flattens the record into schema order with the fixed numeric
// encoding for the categorical columns: Month by calendar number, VisitorType
// as Returning=1/New=0, Weekend as 1/0.
func Vectorize(rec models.FeatureRecord) ([]float64, error) {
	names := rec.FieldNames()
	vals := rec.Values()

	vec := make([]float64, 0, len(vals))
	for i, v := range vals {
		switch t := v.(type) {
		case int:
			vec = append(vec, float64(t))
		case float64:
			vec = append(vec, t)
		case bool:
			if t {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		case string:
			switch names[i] {
			case "Month":
				m, ok := monthIndex[t]
				if !ok {
					return nil, fmt.Errorf("unknown month %q", t)
				}
				vec = append(vec, m)
			case "VisitorType":
				switch t {
				case models.VisitorReturning:
					vec = append(vec, 1)
				case models.VisitorNew:
					vec = append(vec, 0)
				default:
					return nil, fmt.Errorf("unknown visitor type %q", t)
				}
			default:
				return nil, fmt.Errorf("no numeric encoding for column %q", names[i])
			}
		default:
			return nil, fmt.Errorf("unsupported value type %T in column %q", v, names[i])
		}
	}
	return vec, nil
}
