package model

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

// QuantileSeries is a filtered output vector for one quantile probability.
type QuantileSeries struct {
	Quantile float64   `json:"q"`
	Values   []float64 `json:"values"`
}

// At returns the filtered value of sample i as a QuantileValue.
func (s *QuantileSeries) At(i int) *QuantileValue {
	if s == nil || i < 0 || i >= len(s.Values) {
		return nil
	}
	return &QuantileValue{
		Value:    s.Values[i],
		Quantile: s.Quantile,
	}
}
