package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/c360studio/siquant/scalar"
)

// scalarResult is the JSON projection of an evaluated quantity.
type scalarResult struct {
	Value          any    `json:"value"`
	Unit           string `json:"unit"`
	Dimensionality string `json:"dimensionality"`
}

// printScalar writes s to w honoring the configured format and precision.
func (a *app) printScalar(w io.Writer, s scalar.Scalar) error {
	prec := a.cfg.Output.Precision

	if a.cfg.Output.Format == "json" {
		res := scalarResult{
			Unit:           s.UnitSymbol(),
			Dimensionality: s.Dimensionality().Symbol(),
		}
		if s.IsComplex() {
			res.Value = formatComplex(s.Complex(), prec)
		} else {
			res.Value = s.Value()
		}
		enc := json.NewEncoder(w)
		return enc.Encode(res)
	}

	var value string
	if s.IsComplex() {
		value = formatComplex(s.Complex(), prec)
	} else {
		value = strconv.FormatFloat(s.Value(), 'g', prec, 64)
	}

	if sym := s.UnitSymbol(); sym != "1" {
		_, err := fmt.Fprintf(w, "%s %s\n", value, sym)
		return err
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

// formatComplex renders a complex value in "a+bj" notation.
func formatComplex(c complex128, prec int) string {
	re := strconv.FormatFloat(real(c), 'g', prec, 64)
	im := strconv.FormatFloat(imag(c), 'g', prec, 64)
	if imag(c) >= 0 {
		return re + "+" + im + "j"
	}
	return re + im + "j"
}
