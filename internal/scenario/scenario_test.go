package scenario

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "runs.toml"))
	require.NoError(t, err)

	assert.Equal(t, 5, sc.Length)
	assert.Equal(t, "debug", sc.LogLevel)
	assert.Equal(t, "json", sc.LogFormat)
	require.Len(t, sc.Steps, 12)

	assert.Equal(t, OpSet, sc.Steps[0].Op)
	assert.Nil(t, sc.Steps[0].Expect)
	require.NotNil(t, sc.Steps[3].Expect)
	assert.Equal(t, "11011", *sc.Steps[3].Expect)
	assert.Equal(t, KindIndexOutOfBounds, sc.Steps[7].ExpectError)
	assert.Equal(t, uint(10), sc.Steps[10].Amount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no length", `log_level = "info"`},
		{"length mismatch", "length = 3\ninitial = \"0101\""},
		{"unknown key", "length = 3\ncolour = \"red\""},
		{"unknown op", "length = 3\n[[step]]\nop = \"flip\"\nindex = 0"},
		{"missing index", "length = 3\n[[step]]\nop = \"set\""},
		{"missing amount", "length = 3\n[[step]]\nop = \"shift_left\""},
		{"negative amount", "length = 3\n[[step]]\nop = \"shift_left\"\namount = -1"},
		{"unknown error kind", "length = 3\n[[step]]\nop = \"set\"\nindex = 9\nexpect_error = \"boom\""},
		{"step invalid_length", "length = 3\n[[step]]\nop = \"set\"\nindex = 9\nexpect_error = \"invalid_length\""},
		{"expect with expect_error", "length = 3\n[[step]]\nop = \"is_set\"\nindex = 9\nexpect = \"false\"\nexpect_error = \"index_out_of_bounds\""},
		{"bad toml", "length = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestParse_InitialSetsLength(t *testing.T) {
	sc, err := Parse(`initial = "0110"`)
	require.NoError(t, err)
	assert.Equal(t, 4, sc.Length)
	assert.Equal(t, "0110", sc.Initial)
	assert.Empty(t, sc.Steps)
}

func TestRun(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "runs.toml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	l, err := logging.New(&buf, sc.LogFormat, sc.LogLevel)
	require.NoError(t, err)

	rep, err := Run(context.Background(), sc, WithLogger(l))
	require.NoError(t, err)

	assert.True(t, rep.Built)
	assert.Equal(t, "00000", rep.Final.String())
	require.Len(t, rep.Results, 12)
	assert.Equal(t, "2", rep.Results[4].Value)
	assert.ErrorIs(t, rep.Results[7].Err, bitvec.ErrIndexOutOfBounds)
	assert.Equal(t, "10110", rep.Results[8].Value)

	assert.Contains(t, buf.String(), `"msg":"scenario completed"`)
	assert.Contains(t, buf.String(), `"op":"shift_left"`)
}

func TestRun_ExpectationMismatch(t *testing.T) {
	sc, err := Parse(`
length = 4

[[step]]
op = "set"
index = 2

[[step]]
op = "run"
index = 2
expect = "3"

[[step]]
op = "set"
index = 0
`)
	require.NoError(t, err)

	rep, err := Run(context.Background(), sc)
	require.ErrorIs(t, err, ErrExpectationFailed)

	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Step)
	assert.Equal(t, OpRun, se.Op)

	require.Len(t, rep.Results, 1)
	assert.Equal(t, "0010", rep.Final.String())
}

func TestRun_UnexpectedError(t *testing.T) {
	sc, err := Parse("length = 2\n[[step]]\nop = \"unset\"\nindex = 2")
	require.NoError(t, err)

	_, err = Run(context.Background(), sc, WithLogger(nil))
	require.ErrorIs(t, err, bitvec.ErrIndexOutOfBounds)
	assert.False(t, errors.Is(err, ErrExpectationFailed))
}

func TestRun_MissingExpectedError(t *testing.T) {
	sc, err := Parse("length = 2\n[[step]]\nop = \"set\"\nindex = 1\nexpect_error = \"index_out_of_bounds\"")
	require.NoError(t, err)

	_, err = Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrExpectationFailed)
}

func TestRun_ExpectedInvalidLength(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "invalid_length.toml"))
	require.NoError(t, err)

	rep, err := Run(context.Background(), sc)
	require.NoError(t, err)
	assert.False(t, rep.Built)

	sc.Length = 8
	_, err = Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrExpectationFailed)
}

func TestRun_InvalidLength(t *testing.T) {
	sc, err := Parse("length = 0")
	require.NoError(t, err)

	_, err = Run(context.Background(), sc)
	assert.ErrorIs(t, err, bitvec.ErrInvalidLength)
}

func TestRun_Canceled(t *testing.T) {
	sc, err := Parse("length = 2\n[[step]]\nop = \"set\"\nindex = 1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, sc)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Results)
	assert.Equal(t, "00", rep.Final.String())
}
