package readfiles

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/building-physics/goairnet/airnet"
)

const powerlawNetwork = `/*subfile:  afdata.pl2  ******************************************************/
/
title  powerlaw test #2 input file

node   node-1    c   0.0   20.0   0.0
node   node-2    v   0.0   20.0
node   node-3    v   0.0   20.0
node   node-4    c   0.0   20.0  -100.0

element  orf-0.0001 plr 8.124e-09 8.124e-09 8.48528e-05 0.5 ! orf - 0.0001 m^2
element  orf-0.001  plr 2.569e-07 2.569e-07 0.000848528 0.5 ! orf - 0.001 m^2
element  orf-0.01   plr 8.124e-06 8.124e-06 0.00848528  0.5 ! orf - 0.01 m^2
element  orf-0.1    plr 0.0002569 0.0002569 0.0848528   0.5 ! orf - 0.1 m^2
element  orf-1.0    plr 0.008124  0.008124  0.848528    0.5 ! orf - 1.0 m^2
element  orf-10.0   plr 0.2569    0.2569    8.48528     0.5 ! orf - 10.0 m^2
element  orf-100.0  plr 8.124     8.124     84.8528     0.5 ! orf - 100.0 m^2

link   link-1   node-1   0.0   node-2   0.0   orf-0.0001   null
link   link-2   node-2   0.0   node-3   0.0   orf-0.0001   null
link   link-3   node-3   0.0   node-4   0.0   orf-0.0001   null

*********`

func readAll(t *testing.T, input string) []airnet.Record {
	t.Helper()
	recs, err := NewReader(strings.NewReader(input)).ReadAll()
	assert.NoError(t, err)
	return recs
}

func TestReadPowerlawNetwork(t *testing.T) {
	r := NewReader(strings.NewReader(powerlawNetwork))
	recs, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, "powerlaw test #2 input file", r.Title)
	assert.Equal(t, 15, len(recs)) // title + 4 nodes + 7 elements + 3 links

	assert.Equal(t, airnet.TitleInput, recs[0].Type)
	assert.Equal(t, "powerlaw test #2 input file", recs[0].Title)

	n := recs[1].Node
	assert.Equal(t, "node-1", n.Name)
	assert.Equal(t, "c", n.Kind)
	assert.Equal(t, 20.0, n.Temp)
	assert.Equal(t, 0.0, n.Pres)
	assert.Equal(t, -100.0, recs[4].Node.Pres)

	// Variable node lines have no pressure field.
	assert.Equal(t, "v", recs[2].Node.Kind)

	e := recs[5].Element
	assert.Equal(t, "plr", e.Kind)
	assert.Equal(t, "orf-0.0001", e.Name)
	assert.Equal(t, airnet.Coefficients{
		"init": 8.124e-09, "lam": 8.124e-09, "turb": 8.48528e-05, "expt": 0.5,
	}, e.Coeffs)

	l := recs[12].Link
	assert.Equal(t, "link-1", l.Name)
	assert.Equal(t, "node-1", l.Node0)
	assert.Equal(t, "node-2", l.Node1)
	assert.Equal(t, "orf-0.0001", l.Elem)
	assert.Equal(t, "", l.Wind) // "null" means no wind specification
}

func TestReadContinuationElements(t *testing.T) {
	input := `
element  duct-1  dwc  10.0  0.25  0.049  0.0003
         1.5  64.0  0.0  0.001
element  door-1  dor  0.0002569 0.0002569 0.0848528 0.5
         0.01  2.0  0.8  0.78
element  fan-1  fan  0.0002569 0.0002569 0.0848528 0.5
         1.2041  0.5  50.0  0.1  2  0.0
         50.0  -100.0  0.0  0.0  0.3
         65.0  -150.0  0.0  0.0  1.0
*`
	recs := readAll(t, input)
	assert.Equal(t, 3, len(recs))

	duct := recs[0].Element
	assert.Equal(t, "dwc", duct.Kind)
	assert.Equal(t, 10.0, duct.Coeffs["len"])
	assert.Equal(t, 0.0003, duct.Coeffs["rgh"])
	assert.Equal(t, 1.5, duct.Coeffs["tdlc"])
	assert.Equal(t, 0.001, duct.Coeffs["init"])

	door := recs[1].Element
	assert.Equal(t, "dor", door.Kind)
	assert.Equal(t, 0.01, door.Coeffs["dtmin"])
	assert.Equal(t, 2.0, door.Coeffs["ht"])
	assert.Equal(t, 0.78, door.Coeffs["cd"])

	fan := recs[2].Element
	assert.Equal(t, "fan", fan.Kind)
	assert.Equal(t, 50.0, fan.Coeffs["sop"])
	assert.Equal(t, 0.1, fan.Coeffs["ltt"])
	assert.Equal(t, 2, len(fan.Points))
	assert.Equal(t, airnet.FanPoint{A1: 50.0, A2: -100.0, MF: 0.3}, fan.Points[0])
	assert.Equal(t, 1.0, fan.Points[1].MF)
}

func TestReadSingleLineElements(t *testing.T) {
	input := `
element  vent   cfr  0.035
element  crack  qfr  0.15  0.08
element  flap   ckv  2.0  0.01
element  relief prv  0.05  0.6  0.02  0.5
element  boost  cpf  10.0  5.0  0.5
link   link-1   a   0.0   b   1.5   vent   wind-1   0.35
*`
	recs := readAll(t, input)
	assert.Equal(t, 6, len(recs))
	assert.Equal(t, 0.035, recs[0].Element.Coeffs["flow"])
	assert.Equal(t, 0.08, recs[1].Element.Coeffs["b"])
	assert.Equal(t, 0.01, recs[2].Element.Coeffs["coeff"])
	assert.Equal(t, 0.02, recs[3].Element.Coeffs["fneg"])
	assert.Equal(t, 0.5, recs[4].Element.Coeffs["ftyp"])

	l := recs[5].Link
	assert.Equal(t, "wind-1", l.Wind)
	assert.Equal(t, 0.35, l.WPMod)
	assert.Equal(t, 1.5, l.Ht1)
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"bad node type":   "node n1 x 0.0 20.0 0.0\n*",
		"short v node":    "node n1 v 0.0\n*",
		"short c node":    "node n1 c 0.0 20.0\n*",
		"unknown element": "element e1 xyz 1.0\n*",
		"short plr":       "element e1 plr 1.0 2.0\n*",
		"truncated dwc":   "element e1 dwc 10.0 0.25 0.049 0.0003\n*",
		"short link":      "link l1 a 0.0 b 0.0\n*",
		"missing wpmod":   "link l1 a 0.0 b 0.0 e1 wind-1\n*",
		"bad number":      "node n1 v 0.0 warm\n*",
		"duplicate title": "title one\ntitle two\n*",
		"truncated fan":   "element e1 fan 1 1 1 0.5\n1.2 0.5 50.0 0.1 2 0.0\n50.0 -100.0 0.0 0.0 0.3\n*",
	}
	for name, input := range cases {
		_, err := NewReader(strings.NewReader(input)).ReadAll()
		assert.ErrorIs(t, err, ErrBadNetworkInput, name)
	}
}

func TestReaderStopsAtTerminator(t *testing.T) {
	input := "node n1 v 0.0 20.0\n****\nnode n2 v 0.0 20.0\n"
	r := NewReader(strings.NewReader(input))
	recs, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(recs))

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSkipsUnrecognizedLines(t *testing.T) {
	input := "/ decorative comment\nwhatever else\nnode n1 v 0.0 20.0\n*"
	recs := readAll(t, input)
	assert.Equal(t, 1, len(recs))
	assert.Equal(t, "n1", recs[0].Node.Name)
}
