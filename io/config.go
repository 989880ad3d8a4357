package io

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Optional Parameters #
#######################

# Polynomial degree of the spline. Must be in the range [1, 5]. Default is 3,
# a cubic spline. The -k flag overrides this value.
# Degree = 3

# Zero-indexed columns of the sample file used as x and y. Every column up to
# the larger of these (and at least the first three) must be numeric. Default
# is the first and third columns.
# XColumn = 0
# YColumn = 2

# Order of the derivative which is evaluated. 0 evaluates the spline itself.
# The --der flag overrides this value.
# Derivative = 0`
)

// InterpolateConfig controls how a sample file is fit.
type InterpolateConfig struct {
	Degree           int
	XColumn, YColumn int
	Derivative       int
}

// InterpolateWrapper is the top level of an [Interpolate] config file.
type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

// DefaultInterpolateWrapper returns a wrapper containing the default
// parameters. Config files only need to specify the values they change.
func DefaultInterpolateWrapper() *InterpolateWrapper {
	return &InterpolateWrapper{InterpolateConfig{
		Degree:     3,
		XColumn:    DefaultXColumn,
		YColumn:    DefaultYColumn,
		Derivative: 0,
	}}
}

// CheckInit validates the column and derivative parameters. The range of the
// degree is checked when the spline is fit, but the derivative can't be of
// higher order than the degree.
func (con *InterpolateConfig) CheckInit() error {
	if con.XColumn < 0 || con.YColumn < 0 {
		return errors.Wrapf(
			ErrConfig, "XColumn = %d and YColumn = %d must be non-negative",
			con.XColumn, con.YColumn,
		)
	} else if con.XColumn == con.YColumn {
		return errors.Wrapf(
			ErrConfig, "XColumn and YColumn are both %d", con.XColumn,
		)
	} else if con.Derivative < 0 {
		return errors.Wrapf(
			ErrConfig, "Derivative = %d must be non-negative", con.Derivative,
		)
	} else if con.Derivative > con.Degree {
		return errors.Wrapf(
			ErrConfig, "Derivative = %d is larger than Degree = %d",
			con.Derivative, con.Degree,
		)
	}
	return nil
}

// ReadInterpolateConfig reads an [Interpolate] config file on top of the
// default parameters.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	if err := checkReadable(fname); err != nil {
		return nil, err
	}

	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrap(ErrConfig, err.Error())
	}

	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
