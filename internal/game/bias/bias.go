// Package bias describes the curves the waveform follows. All of them are
// built from three trigonometric basis terms with a negative mean, so a
// trade entered at a random point loses more often than it wins.
package bias

import (
	"fmt"
	"math"
)

// Key identifies a bias function.
type Key string

const (
	RandomCombination Key = "random_combination"
	ShiftedSine       Key = "shifted_sine"
	BiasedCombination Key = "biased_combination"
	AsymmetricWave    Key = "asymmetric_wave"
)

// Keys lists the functions in display order.
var Keys = []Key{RandomCombination, ShiftedSine, BiasedCombination, AsymmetricWave}

// ResolveOffset is how far past the entry point the outcome is evaluated.
const ResolveOffset = 10.0

// EV used for the random combination before coefficients are drawn.
const undrawnExpectedValue = -0.4

// Function is a named real-valued curve.
type Function struct {
	Key           Key
	Name          string
	Color         string
	ExpectedValue float64

	eval func(x float64) float64
}

// Evaluate returns f(x).
func (f Function) Evaluate(x float64) float64 {
	if f.eval == nil {
		return 0
	}
	return f.eval(x)
}

// TheoreticalWinRate is the illustrative (1 + EV) * 50 figure shown next to
// the function. It does not take part in resolving rounds.
func (f Function) TheoreticalWinRate() float64 {
	return (1 + f.ExpectedValue) * 50
}

// Wins reports whether a trade entered at entryX wins.
func (f Function) Wins(entryX float64) bool {
	return f.Evaluate(entryX+ResolveOffset) > 0
}

func shiftedSine(x float64) float64 {
	return math.Sin(x) - 0.5
}

func biasedCombination(x float64) float64 {
	return 0.6*math.Sin(x) + 0.4*math.Sin(2*x) - 0.3
}

func asymmetricWave(x float64) float64 {
	return math.Sin(x) + 0.3*math.Sin(3*x) - 0.4
}

// Lookup builds the function for key. coeffs is only used by the random
// combination; nil coefficients make it a flat zero line.
func Lookup(key Key, coeffs *Coefficients) (Function, error) {
	switch key {
	case ShiftedSine:
		return Function{Key: key, Name: "Shifted Sine", Color: "#8884d8", ExpectedValue: -0.5, eval: shiftedSine}, nil
	case BiasedCombination:
		return Function{Key: key, Name: "Biased Combination", Color: "#ffc658", ExpectedValue: -0.3, eval: biasedCombination}, nil
	case AsymmetricWave:
		return Function{Key: key, Name: "Asymmetric Wave", Color: "#ff7300", ExpectedValue: -0.4, eval: asymmetricWave}, nil
	case RandomCombination:
		return randomCombination(coeffs), nil
	}
	return Function{}, fmt.Errorf("unknown bias function %q", key)
}

// MustLookup is Lookup for keys known to be valid.
func MustLookup(key Key, coeffs *Coefficients) Function {
	f, err := Lookup(key, coeffs)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseKey validates a key read from configuration.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown bias function %q", s)
}

func randomCombination(c *Coefficients) Function {
	f := Function{
		Key:           RandomCombination,
		Name:          "Random Combination",
		Color:         "#9333ea",
		ExpectedValue: undrawnExpectedValue,
	}
	if c == nil {
		return f
	}

	cc := *c
	f.ExpectedValue = cc.ExpectedValue()
	f.eval = func(x float64) float64 {
		return cc.Amp*(cc.C1*shiftedSine(x)+cc.C2*biasedCombination(x)+cc.C3*asymmetricWave(x)) + cc.Shift
	}
	return f
}

// WithColor returns f drawn in color; an empty color keeps the default.
func (f Function) WithColor(color string) Function {
	if color != "" {
		f.Color = color
	}
	return f
}
