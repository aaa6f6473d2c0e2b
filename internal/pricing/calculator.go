package pricing

import "math"

const DefaultServiceFeeRate = 0.10

// Quote holds full-precision amounts. Round only when presenting.
type Quote struct {
	Hours      float64 `json:"hours"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

type Calculator struct {
	feeRate float64
}

func NewCalculator(feeRate float64) *Calculator {
	if feeRate <= 0 {
		feeRate = DefaultServiceFeeRate
	}
	return &Calculator{feeRate: feeRate}
}

func (c *Calculator) ComputeTotal(hourlyRate, hours float64) Quote {
	subtotal := hourlyRate * hours
	fee := subtotal * c.feeRate
	return Quote{
		Hours:      hours,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}

// ComputeTotal uses the default 10% service fee.
func ComputeTotal(hourlyRate, hours float64) Quote {
	return NewCalculator(DefaultServiceFeeRate).ComputeTotal(hourlyRate, hours)
}

func (q Quote) Rounded() Quote {
	return Quote{
		Hours:      q.Hours,
		Subtotal:   Round2(q.Subtotal),
		ServiceFee: Round2(q.ServiceFee),
		Total:      Round2(q.Total),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
