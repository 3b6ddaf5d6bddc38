package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/building-physics/goairnet/airnet"
)

// ErrBadNetworkInput is wrapped by every malformed-input error, with the
// offending line number in the message.
var ErrBadNetworkInput = errors.New("bad network input")

// Reader tokenizes the line-oriented airflow network format: a title
// line, whitespace-separated node/element/link records (dwc, dor and fan
// elements continue onto following lines, fan with a block of performance
// points), unrecognized lines skipped, and a line starting with '*'
// terminating the input.
type Reader struct {
	scanner *bufio.Scanner
	Title   string
	Line    int
	done    bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// nextLine returns the next non-blank line, io.EOF at end of input.
func (r *Reader) nextLine() (string, error) {
	for r.scanner.Scan() {
		r.Line++
		line := r.scanner.Text()
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *Reader) float(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q at line %d", ErrBadNetworkInput, tok, r.Line)
	}
	return v, nil
}

func (r *Reader) floats(toks []string, out ...*float64) error {
	for i, p := range out {
		v, err := r.float(toks[i])
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// Next returns the next tagged record, io.EOF at the '*' terminator or
// end of input.
func (r *Reader) Next() (rec airnet.Record, err error) {
	if r.done {
		return rec, io.EOF
	}
	for {
		var line string
		if line, err = r.nextLine(); err != nil {
			return
		}
		if strings.HasPrefix(line, "*") {
			r.done = true
			return rec, io.EOF
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "title") {
			if r.Title != "" {
				return rec, fmt.Errorf("%w: found additional title at line %d", ErrBadNetworkInput, r.Line)
			}
			r.Title = strings.TrimLeft(strings.TrimPrefix(trimmed, "title"), " \t")
			rec.Type = airnet.TitleInput
			rec.Title = r.Title
			return
		}
		data := strings.Fields(line)
		switch data[0] {
		case "node":
			return r.node(data)
		case "element":
			return r.element(data)
		case "link":
			return r.link(data)
		}
		// Anything else (comments, decorations) is skipped.
	}
}

// ReadAll drains the reader into a record slice.
func (r *Reader) ReadAll() (recs []airnet.Record, err error) {
	for {
		var rec airnet.Record
		if rec, err = r.Next(); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		recs = append(recs, rec)
	}
}

// node name type ht temp [pres]
func (r *Reader) node(data []string) (rec airnet.Record, err error) {
	rec.Type = airnet.NodeInput
	if len(data) < 3 {
		return rec, fmt.Errorf("%w: node at line %d has fewer than 3 fields", ErrBadNetworkInput, r.Line)
	}
	kind := data[2]
	if kind != "v" && kind != "c" && kind != "a" {
		return rec, fmt.Errorf("%w: node type %q at line %d is unrecognized, must be \"v\", \"c\", or \"a\"",
			ErrBadNetworkInput, kind, r.Line)
	}
	nr := airnet.NodeRecord{Name: data[1], Kind: kind}
	if kind == "v" {
		if len(data) < 5 {
			return rec, fmt.Errorf("%w: node at line %d has fewer than 5 fields", ErrBadNetworkInput, r.Line)
		}
		if err = r.floats(data[3:], &nr.Ht, &nr.Temp); err != nil {
			return
		}
	} else {
		if len(data) < 6 {
			return rec, fmt.Errorf("%w: node at line %d has fewer than 6 fields", ErrBadNetworkInput, r.Line)
		}
		if err = r.floats(data[3:], &nr.Ht, &nr.Temp, &nr.Pres); err != nil {
			return
		}
	}
	rec.Node = nr
	return
}

// element name kind coefficients..., with continuation lines for dwc,
// dor and fan.
func (r *Reader) element(data []string) (rec airnet.Record, err error) {
	rec.Type = airnet.ElementInput
	if len(data) < 3 {
		return rec, fmt.Errorf("%w: element at line %d has fewer than 3 fields", ErrBadNetworkInput, r.Line)
	}
	er := airnet.ElementRecord{Kind: data[2], Name: data[1], Coeffs: airnet.Coefficients{}}
	firstLine := func(min int, keys ...string) error {
		if len(data) < min {
			return fmt.Errorf("%w: element type %q at line %d has only %d fields and cannot be a legal element",
				ErrBadNetworkInput, er.Kind, r.Line, len(data))
		}
		for i, key := range keys {
			v, ferr := r.float(data[3+i])
			if ferr != nil {
				return ferr
			}
			er.Coeffs[key] = v
		}
		return nil
	}
	contLine := func(min int) ([]string, error) {
		line, lerr := r.nextLine()
		if lerr != nil {
			return nil, fmt.Errorf("%w: element type %q at line %d has too few lines and cannot be a legal element",
				ErrBadNetworkInput, er.Kind, r.Line)
		}
		cont := strings.Fields(line)
		if len(cont) < min {
			return nil, fmt.Errorf("%w: element type %q continuation at line %d has only %d fields and cannot be a legal element",
				ErrBadNetworkInput, er.Kind, r.Line, len(cont))
		}
		return cont, nil
	}
	setAll := func(toks []string, keys ...string) error {
		for i, key := range keys {
			v, ferr := r.float(toks[i])
			if ferr != nil {
				return ferr
			}
			er.Coeffs[key] = v
		}
		return nil
	}

	switch er.Kind {
	case "plr":
		err = firstLine(7, "init", "lam", "turb", "expt")
	case "dwc":
		if err = firstLine(7, "len", "dh", "area", "rgh"); err != nil {
			break
		}
		var cont []string
		if cont, err = contLine(4); err != nil {
			break
		}
		err = setAll(cont, "tdlc", "lflc", "ldlc", "init")
	case "dor":
		if err = firstLine(7, "init", "lam", "turb", "expt"); err != nil {
			break
		}
		var cont []string
		if cont, err = contLine(4); err != nil {
			break
		}
		err = setAll(cont, "dtmin", "ht", "wd", "cd")
	case "cfr":
		err = firstLine(4, "flow")
	case "fan":
		if err = firstLine(7, "init", "lam", "turb", "expt"); err != nil {
			break
		}
		var cont []string
		if cont, err = contLine(6); err != nil {
			break
		}
		if err = setAll(cont, "rdens", "fdf", "sop", "ltt"); err != nil {
			break
		}
		var nr int64
		if nr, err = strconv.ParseInt(cont[4], 10, 32); err != nil {
			err = fmt.Errorf("%w: bad fan point count %q at line %d", ErrBadNetworkInput, cont[4], r.Line)
			break
		}
		if err = setAll(cont[5:], "mfl"); err != nil {
			break
		}
		for i := 0; i < int(nr); i++ {
			var pt []string
			if pt, err = contLine(5); err != nil {
				return
			}
			var p airnet.FanPoint
			if err = r.floats(pt, &p.A1, &p.A2, &p.A3, &p.A4, &p.MF); err != nil {
				return
			}
			er.Points = append(er.Points, p)
		}
	case "cpf":
		err = firstLine(6, "upo", "prmin", "ftyp")
	case "qfr":
		err = firstLine(5, "a", "b")
	case "ckv":
		err = firstLine(5, "dp0", "coeff")
	case "prv":
		err = firstLine(7, "fpos", "cpos", "fneg", "cneg")
	default:
		err = fmt.Errorf("%w: element type %q at line %d not recognized", ErrBadNetworkInput, er.Kind, r.Line)
	}
	if err != nil {
		return
	}
	rec.Element = er
	return
}

// link name node-1 ht-1 node-2 ht-2 element wind wpmod, "null" for no
// wind specification.
func (r *Reader) link(data []string) (rec airnet.Record, err error) {
	rec.Type = airnet.LinkInput
	if len(data) < 8 {
		return rec, fmt.Errorf("%w: link at line %d has fewer than 8 fields", ErrBadNetworkInput, r.Line)
	}
	lr := airnet.LinkRecord{Name: data[1], Node0: data[2], Node1: data[4], Elem: data[6]}
	if err = r.floats([]string{data[3], data[5]}, &lr.Ht0, &lr.Ht1); err != nil {
		return
	}
	if data[7] != "null" {
		if len(data) < 9 {
			return rec, fmt.Errorf("%w: link at line %d has fewer than 9 fields", ErrBadNetworkInput, r.Line)
		}
		lr.Wind = data[7]
		if lr.WPMod, err = r.float(data[8]); err != nil {
			return
		}
	}
	rec.Link = lr
	return
}

// ReadAirflowNetwork reads a network description file into a record
// slice, returning the title alongside.
func ReadAirflowNetwork(filename string, verbose bool) (recs []airnet.Record, title string, err error) {
	if verbose {
		fmt.Printf("Reading network file named: %s\n", filename)
	}
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, "", fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	r := NewReader(file)
	if recs, err = r.ReadAll(); err != nil {
		return nil, "", err
	}
	if verbose {
		fmt.Printf("Read %d records from %s\n", len(recs), filename)
	}
	return recs, r.Title, nil
}
