// Package scenario loads and runs scripted sequences of bit-vector operations.
//
// A scenario is a TOML document naming the vector's length (or an initial bit
// string) followed by [[step]] tables. Each step applies one operation and may
// assert on its result or on the error it returns.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/bitvec"
)

// Op names an operation a step performs.
type Op string

const (
	OpSet       Op = "set"
	OpUnset     Op = "unset"
	OpIsSet     Op = "is_set"
	OpShiftLeft Op = "shift_left"
	OpRun       Op = "run"
	OpCount     Op = "count"
	OpLen       Op = "len"
)

func (o Op) indexed() bool {
	switch o {
	case OpSet, OpUnset, OpIsSet, OpRun:
		return true
	}
	return false
}

func (o Op) valid() bool {
	return o.indexed() || o == OpShiftLeft || o == OpCount || o == OpLen
}

// ErrorKind names an expected error.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindIndexOutOfBounds ErrorKind = "index_out_of_bounds"
	KindInvalidLength    ErrorKind = "invalid_length"
)

// Err returns the sentinel the kind matches.
func (k ErrorKind) Err() error {
	switch k {
	case KindIndexOutOfBounds:
		return bitvec.ErrIndexOutOfBounds
	case KindInvalidLength:
		return bitvec.ErrInvalidLength
	}
	return nil
}

// Step is one operation in a scenario.
type Step struct {
	Op          Op
	Index       int
	Amount      uint
	Expect      *string
	ExpectError ErrorKind
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Length      int
	Initial     string
	LogLevel    string
	LogFormat   string
	ExpectError ErrorKind
	Steps       []Step
}

type fileStep struct {
	Op          string  `toml:"op"`
	Index       *int    `toml:"index"`
	Amount      *int64  `toml:"amount"`
	Expect      *string `toml:"expect"`
	ExpectError string  `toml:"expect_error"`
}

type fileScenario struct {
	Length      int        `toml:"length"`
	Initial     string     `toml:"initial"`
	LogLevel    string     `toml:"log_level"`
	LogFormat   string     `toml:"log_format"`
	ExpectError string     `toml:"expect_error"`
	Steps       []fileStep `toml:"step"`
}

// Load reads a scenario from a TOML file.
func Load(path string) (Scenario, error) {
	var raw fileScenario
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	return convert(raw, meta)
}

// Parse reads a scenario from TOML text.
func Parse(data string) (Scenario, error) {
	var raw fileScenario
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	return convert(raw, meta)
}

func convert(raw fileScenario, meta toml.MetaData) (Scenario, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Scenario{}, fmt.Errorf("unknown scenario keys: %s", strings.Join(keys, ", "))
	}

	var sc Scenario

	if meta.IsDefined("initial") {
		sc.Initial = strings.TrimSpace(raw.Initial)
		if meta.IsDefined("length") && raw.Length != len(sc.Initial) {
			return Scenario{}, fmt.Errorf("length %d does not match initial of length %d", raw.Length, len(sc.Initial))
		}
		sc.Length = len(sc.Initial)
	} else if meta.IsDefined("length") {
		sc.Length = raw.Length
	} else {
		return Scenario{}, errors.New("scenario needs length or initial")
	}

	if meta.IsDefined("log_level") {
		sc.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("log_format") {
		sc.LogFormat = strings.TrimSpace(raw.LogFormat)
	}

	if meta.IsDefined("expect_error") {
		kind, err := parseKind(raw.ExpectError)
		if err != nil {
			return Scenario{}, err
		}
		sc.ExpectError = kind
	}

	sc.Steps = make([]Step, 0, len(raw.Steps))
	for i, fs := range raw.Steps {
		st, err := convertStep(fs)
		if err != nil {
			return Scenario{}, fmt.Errorf("step %d: %w", i, err)
		}
		sc.Steps = append(sc.Steps, st)
	}

	return sc, nil
}

func convertStep(fs fileStep) (Step, error) {
	st := Step{Op: Op(strings.TrimSpace(fs.Op)), Expect: fs.Expect}
	if !st.Op.valid() {
		return Step{}, fmt.Errorf("unknown op %q", fs.Op)
	}

	if st.Op.indexed() {
		if fs.Index == nil {
			return Step{}, fmt.Errorf("%s needs index", st.Op)
		}
		st.Index = *fs.Index
	}

	if st.Op == OpShiftLeft {
		if fs.Amount == nil {
			return Step{}, fmt.Errorf("%s needs amount", st.Op)
		}
		if *fs.Amount < 0 {
			return Step{}, fmt.Errorf("%s amount must not be negative: %d", st.Op, *fs.Amount)
		}
		st.Amount = uint(*fs.Amount)
	}

	kind, err := parseKind(fs.ExpectError)
	if err != nil {
		return Step{}, err
	}
	if kind == KindInvalidLength {
		return Step{}, fmt.Errorf("%s cannot fail with %s", st.Op, kind)
	}
	if kind != KindNone && st.Expect != nil {
		return Step{}, fmt.Errorf("%s cannot set both expect and expect_error", st.Op)
	}
	st.ExpectError = kind

	return st, nil
}

func parseKind(s string) (ErrorKind, error) {
	switch k := ErrorKind(strings.TrimSpace(s)); k {
	case KindNone, KindIndexOutOfBounds, KindInvalidLength:
		return k, nil
	default:
		return KindNone, fmt.Errorf("unknown error kind %q", s)
	}
}
