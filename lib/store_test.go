package lib

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	values  []*string
	index   int
	scanErr error
	err     error
}

func (r *fakeRows) Next() bool {
	if r.index >= len(r.values) {
		return false
	}
	r.index++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	v := r.values[r.index-1]
	target := dest[0].(*sql.NullString)
	if v == nil {
		*target = sql.NullString{}
	} else {
		*target = sql.NullString{String: *v, Valid: true}
	}
	return nil
}

func (r *fakeRows) Err() error {
	return r.err
}

func strPtr(s string) *string {
	return &s
}

func TestCheckRows(t *testing.T) {
	rows := &fakeRows{values: []*string{strPtr("a,b"), strPtr("a,"), nil, strPtr("z")}}

	report, err := checkRows(rows, GrammarList)
	require.NoError(t, err)
	require.Equal(t, GrammarList, report.Grammar)
	require.Equal(t, 4, report.Rows)
	require.Equal(t, 2, report.Accepted)
	require.Len(t, report.Rejected, 2)

	require.Equal(t, 2, report.Rejected[0].Row)
	require.Equal(t, "a,", report.Rejected[0].Value)
	require.True(t, IsLexerError(report.Rejected[0].Err))

	// NULL is checked as empty input.
	require.Equal(t, 3, report.Rejected[1].Row)
	require.Equal(t, "", report.Rejected[1].Value)
}

func TestCheckRowsOutOfRange(t *testing.T) {
	rows := &fakeRows{values: []*string{strPtr("99999999999999999999999")}}

	report, err := checkRows(rows, GrammarInt)
	require.NoError(t, err)
	require.Len(t, report.Rejected, 1)
	require.False(t, IsLexerError(report.Rejected[0].Err))
}

func TestCheckRowsEmpty(t *testing.T) {
	report, err := checkRows(&fakeRows{}, GrammarID)
	require.NoError(t, err)
	require.Equal(t, 0, report.Rows)
	require.Empty(t, report.Rejected)
}

func TestCheckRowsScanError(t *testing.T) {
	scanErr := errors.New("bad column")
	_, err := checkRows(&fakeRows{values: []*string{strPtr("a")}, scanErr: scanErr}, GrammarID)
	require.ErrorIs(t, err, scanErr)
}

func TestCheckRowsIterationError(t *testing.T) {
	iterErr := errors.New("connection reset")
	_, err := checkRows(&fakeRows{values: []*string{strPtr("a")}, err: iterErr}, GrammarID)
	require.ErrorIs(t, err, iterErr)
}
