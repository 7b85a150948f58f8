// SPDX-License-Identifier: EPL-2.0

package gorbis

import "github.com/ik5/gorbis/header"

// applyInverseCoupling undoes a mapping's channel coupling steps
// in-place on the decoded residue vectors, one channel slice per
// channel. Steps are undone in reverse of the order they were declared
// in, since the encoder applied them in declared order and coupling is
// not commutative.
func applyInverseCoupling(steps []header.CouplingStep, vectors [][]float32) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		magnitude := vectors[step.Magnitude]
		angle := vectors[step.Angle]
		n := len(magnitude)
		if len(angle) < n {
			n = len(angle)
		}
		for j := 0; j < n; j++ {
			m := magnitude[j]
			a := angle[j]
			var newM, newA float32
			switch {
			case m > 0 && a > 0:
				newM = m
				newA = m - a
			case m > 0 && a <= 0:
				newA = m
				newM = m + a
			case m <= 0 && a > 0:
				newM = m
				newA = m + a
			default:
				newA = m
				newM = m - a
			}
			magnitude[j] = newM
			angle[j] = newA
		}
	}
}
