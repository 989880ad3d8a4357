package io

import (
	"bufio"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/pkg/errors"
)

const (
	// MinColumns is the number of numeric columns every row of a sample
	// file must have.
	MinColumns = 3
	// DefaultXColumn and DefaultYColumn are the columns used as the
	// independent and dependent variables. The column between them is read
	// but not used.
	DefaultXColumn = 0
	DefaultYColumn = 2
)

var (
	// ErrFileAccess is returned when a file is missing or unreadable.
	ErrFileAccess = errors.New("cannot access file")
	// ErrParse is returned when a file does not contain a numeric table.
	ErrParse = errors.New("cannot parse table")
	// ErrConfig is returned for configuration files which can be read but
	// don't parse or hold invalid values. Unreadable config files give
	// ErrFileAccess.
	ErrConfig = errors.New("invalid configuration")
)

// ReadSamples reads the columns xCol and yCol of a whitespace-separated
// text table. Every column up to max(xCol, yCol, MinColumns-1) must be
// numeric in every row, even the ones which aren't returned.
func ReadSamples(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	if xCol < 0 || yCol < 0 {
		return nil, nil, errors.Wrapf(
			ErrParse, "column indices (%d, %d) must be non-negative", xCol, yCol,
		)
	}
	if err := checkReadable(fname); err != nil {
		return nil, nil, err
	}

	n := max(xCol, yCol, MinColumns-1) + 1
	colIdxs := make([]int, n)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	if err := checkRowLengths(fname, n); err != nil {
		return nil, nil, err
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrParse, "%s: %s", fname, err.Error())
	} else if len(cols) != n {
		return nil, nil, errors.Wrapf(
			ErrParse, "%s: read %d columns, expected %d", fname, len(cols), n,
		)
	}

	return cols[xCol], cols[yCol], nil
}

// checkReadable makes sure fname is a regular file which can be opened, so
// access problems are reported separately from parsing problems.
func checkReadable(fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return errors.Wrap(ErrFileAccess, err.Error())
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(ErrFileAccess, err.Error())
	} else if info.IsDir() {
		return errors.Wrapf(ErrFileAccess, "%s is a directory", fname)
	}
	return nil
}

// checkRowLengths makes sure every data row of fname has at least n fields.
// table.ReadTable only sees the columns it's asked for, so short rows are
// caught here. Blank lines and '#' comments are skipped.
func checkRowLengths(fname string, n int) error {
	f, err := os.Open(fname)
	if err != nil {
		return errors.Wrap(ErrFileAccess, err.Error())
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if fields := len(strings.Fields(text)); fields < n {
			return errors.Wrapf(
				ErrParse, "line %d of %s has %d fields, expected at least %d",
				line, fname, fields, n,
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(ErrParse, "%s: %s", fname, err.Error())
	}
	return nil
}
