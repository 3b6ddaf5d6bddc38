package airnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestQuadraticInversion(t *testing.T) {
	e, err := NewQuadratic(Coefficients{"a": 0.15, "b": 0.08})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	for _, pdrop := range []float64{0.01, 1, 12.5, -0.3, -40} {
		r, cerr := e.Calculate(lk, pdrop)
		assert.NoError(t, cerr)
		// The returned flow must satisfy pdrop = a*f + b*f^2 with the
		// quadratic term folded along the flow direction.
		f := r.Flow1
		assert.True(t, scalar.EqualWithinAbsOrRel(
			e.A*f+e.B*f*math.Abs(f), pdrop, 1e-12, 1e-12))
		assert.True(t, near(r.DFlow1, 1.0/(e.A+2.0*e.B*math.Abs(f))))
		assert.True(t, f*pdrop > 0)
	}

	r, _ := e.Calculate(lk, 0.0)
	assert.True(t, r.Flow1 == 0)
	assert.True(t, near(r.DFlow1, 1.0/e.A))
}

func TestConstantFlow(t *testing.T) {
	e, err := NewConstantFlow(Coefficients{"flow": 0.035})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	for _, pdrop := range []float64{-100, 0, 100} {
		r, cerr := e.Calculate(lk, pdrop)
		assert.NoError(t, cerr)
		assert.Equal(t, 0.035, r.Flow1)
		assert.True(t, r.DFlow1 == 0)
	}
}

func TestCheckValve(t *testing.T) {
	e, err := NewCheckValve(Coefficients{"dp0": 2.0, "coeff": 0.01})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	// Closed at and below the cut-off, including reverse pressure.
	for _, pdrop := range []float64{-50, 0, 1.99, 2.0} {
		r, cerr := e.Calculate(lk, pdrop)
		assert.NoError(t, cerr)
		assert.True(t, r.Flow1 == 0)
		assert.True(t, r.DFlow1 == 0)
	}

	r, _ := e.Calculate(lk, 6.0)
	want := 0.01 * lk.Node0.SqrtDensity * 2.0 // sqrt(6-2) = 2
	assert.True(t, near(r.Flow1, want))
	assert.True(t, near(r.DFlow1, 0.5*want/4.0))
}

func TestReliefValve(t *testing.T) {
	e, err := NewReliefValve(Coefficients{"fpos": 0.05, "cpos": 0.6, "fneg": 0.02, "cneg": 0.5})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	r, _ := e.Calculate(lk, 4.0)
	assert.True(t, near(r.Flow1, 0.05*math.Pow(4.0, 0.6)))
	assert.True(t, r.DFlow1 > 0)

	r, _ = e.Calculate(lk, -4.0)
	assert.True(t, near(r.Flow1, -0.02*2.0))
	assert.True(t, r.DFlow1 > 0)

	r, _ = e.Calculate(lk, 0.0)
	assert.True(t, r.Flow1 == 0)
}

func TestConstantPowerFan(t *testing.T) {
	e, err := NewConstantPowerFan(Coefficients{"upo": 10.0, "prmin": 5.0, "ftyp": 0.5})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	// On the power curve: flow = power / pressure rise.
	r, _ := e.Calculate(lk, -20.0)
	assert.True(t, near(r.Flow1, 0.5))
	assert.True(t, near(r.DFlow1, 10.0/400.0))

	// Below the minimum rise the operating point is clamped.
	r, _ = e.Calculate(lk, -1.0)
	assert.True(t, near(r.Flow1, 2.0))
	assert.True(t, r.DFlow1 == 0)

	// Adverse pressure falls back to the clamped point as well.
	r, _ = e.Calculate(lk, 3.0)
	assert.True(t, near(r.Flow1, 2.0))
}

func TestDuctFlow(t *testing.T) {
	e, err := NewDuct(Coefficients{
		"len": 10.0, "dh": 0.25, "area": 0.049, "rgh": 0.0003,
		"tdlc": 1.5, "lflc": 64.0, "ldlc": 0.0, "init": 0.001,
	})
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	r, cerr := e.Calculate(lk, 0.0)
	assert.NoError(t, cerr)
	assert.True(t, r.Flow1 == 0)
	assert.True(t, r.DFlow1 > 0)

	// Tiny drops are laminar: flow linear in the drop.
	r1, _ := e.Calculate(lk, 1e-10)
	r2, _ := e.Calculate(lk, 2e-10)
	assert.True(t, near(2*r1.Flow1, r2.Flow1))
	assert.True(t, near(r1.DFlow1, r2.DFlow1))

	// Large drops are turbulent: flow close to square-root scaling (the
	// friction factor drifts slowly with Reynolds number).
	r1, _ = e.Calculate(lk, 50.0)
	r2, _ = e.Calculate(lk, 200.0)
	assert.True(t, r1.Flow1 > 0)
	assert.InEpsilon(t, 2.0, r2.Flow1/r1.Flow1, 0.05)

	// Reversed drop mirrors the flow.
	r3, _ := e.Calculate(lk, -50.0)
	assert.True(t, near(r3.Flow1, -r1.Flow1))
	assert.True(t, r3.DFlow1 > 0)
}

func TestFanCurveOperatingPoint(t *testing.T) {
	// A linear "curve": prise = 50 - 100*f, free delivery 0.5 kg/s at
	// zero rise, shut-off at 50 Pa.
	pts := []FanPoint{{A1: 50.0, A2: -100.0, MF: 1.0}}
	e, err := NewFan(Coefficients{
		"init": 0.0002569, "lam": 0.0002569, "turb": 0.0848528, "expt": 0.5,
		"rdens": 1.2041, "fdf": 0.5, "sop": 50.0, "ltt": 0.1, "mfl": 0.0,
	}, pts)
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	r, cerr := e.Calculate(lk, -25.0) // pressure rise of 25 Pa
	assert.NoError(t, cerr)
	assert.True(t, near(r.Flow1, 0.25))
	assert.True(t, near(r.DFlow1, 0.01))

	// Past shut-off the fan cannot deliver; only case leakage remains.
	r, cerr = e.Calculate(lk, -60.0)
	assert.NoError(t, cerr)
	leak, _ := e.PowerLaw.Calculate(lk, -60.0)
	assert.Equal(t, leak, r)

	// Spun down below the off threshold it is a leakage path too.
	e.Speed = 0.05
	r, cerr = e.Calculate(lk, -25.0)
	assert.NoError(t, cerr)
	leak, _ = e.PowerLaw.Calculate(lk, -25.0)
	assert.Equal(t, leak, r)
}

func TestFanWithoutCurveFailsLoudly(t *testing.T) {
	e, err := NewFan(Coefficients{
		"lam": 0.0002569, "turb": 0.0848528,
		"rdens": 1.2041, "fdf": 0.5, "sop": 50.0,
	}, nil)
	assert.NoError(t, err)
	lk := testLink(e, 293.15, 293.15)

	_, cerr := e.Calculate(lk, -25.0)
	assert.ErrorIs(t, cerr, ErrUnimplemented)
}

func TestNewElementDispatch(t *testing.T) {
	kinds := map[string]Coefficients{
		"plr": {"lam": 1, "turb": 1},
		"dwc": {"len": 1, "dh": 0.1, "area": 0.01, "rgh": 1e-4},
		"qfr": {"a": 1, "b": 1},
		"dor": {"lam": 1, "turb": 1, "ht": 2, "wd": 0.8, "cd": 0.78},
		"cfr": {"flow": 1},
		"fan": {"lam": 1, "turb": 1, "rdens": 1.2, "fdf": 1, "sop": 10},
		"cpf": {"upo": 1, "prmin": 1, "ftyp": 1},
		"ckv": {"dp0": 0, "coef": 1},
		"prv": {"fpos": 1, "cpos": 1, "fneg": 1, "cneg": 1},
	}
	for kind, coeffs := range kinds {
		e, err := NewElement(kind, coeffs, nil)
		assert.NoError(t, err, kind)
		assert.Equal(t, kind, e.Type())
	}

	_, err := NewElement("xyz", Coefficients{}, nil)
	assert.Error(t, err)
}
