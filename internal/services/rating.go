package services

import (
	"math/big"
	"strconv"
	"time"
)

const (
	// MinProdYear and MaxProdYear bound the production year of a ship.
	MinProdYear = 2800
	MaxProdYear = 3019

	ratingSpeedWeight = 80
	usedShipFactor    = 0.5
)

// CalculateRating derives a ship's rating from its speed, used state and
// production year, rounded to two places half-up.
// Callers pass validated inputs, so the divisor is at least 1.
func CalculateRating(speed float64, isUsed bool, prodDate time.Time) float64 {
	factor := 1.0
	if isUsed {
		factor = usedShipFactor
	}
	year := prodDate.UTC().Year()

	rating := (ratingSpeedWeight * speed * factor) / float64(MaxProdYear-year+1)
	return roundHalfUp(rating, 2)
}

// roundHalfUp rounds the shortest decimal form of v, so 0.125 becomes 0.13
// rather than the 0.12 that binary rounding would give.
func roundHalfUp(v float64, places int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	half := big.NewRat(1, 2)
	if r.Sign() >= 0 {
		r.Add(r, half)
	} else {
		r.Sub(r, half)
	}

	// Quo truncates toward zero, which completes half-up for either sign.
	units := new(big.Int).Quo(r.Num(), r.Denom())
	rounded, _ := new(big.Rat).SetFrac(units, scale).Float64()
	return rounded
}
