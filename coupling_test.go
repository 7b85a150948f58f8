// SPDX-License-Identifier: EPL-2.0

package gorbis

import (
	"testing"

	"github.com/ik5/gorbis/header"
)

func TestApplyInverseCouplingQuadrants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		m, a    float32
		wantM   float32
		wantA   float32
	}{
		{"m>0,a>0", 10, 3, 10, 7},
		{"m>0,a<=0", 10, -2, 8, 10},
		{"m<=0,a>0", -5, 4, -5, -1},
		{"m<=0,a<=0", -5, -4, -1, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			vectors := [][]float32{{c.m}, {c.a}}
			steps := []header.CouplingStep{{Magnitude: 0, Angle: 1}}
			applyInverseCoupling(steps, vectors)

			if vectors[0][0] != c.wantM || vectors[1][0] != c.wantA {
				t.Errorf("got m=%v a=%v, want m=%v a=%v", vectors[0][0], vectors[1][0], c.wantM, c.wantA)
			}
		})
	}
}

func TestApplyInverseCouplingReverseOrder(t *testing.T) {
	t.Parallel()

	// Two chained steps must undo in reverse of their declared order.
	vectors := [][]float32{{1}, {1}, {1}}
	steps := []header.CouplingStep{
		{Magnitude: 0, Angle: 1},
		{Magnitude: 1, Angle: 2},
	}
	applyInverseCoupling(steps, vectors)

	// Step 1 undone first: ch1>0,ch2>0 -> m=ch1(1), a=ch1-ch2=0
	// Step 0 undone next on updated ch1=1, ch0=1: m>0,a>0 -> m=1, a=1-1=0
	if vectors[0][0] != 1 {
		t.Errorf("vectors[0][0] = %v, want 1", vectors[0][0])
	}
}

func TestApplyInverseCouplingNoSteps(t *testing.T) {
	t.Parallel()

	vectors := [][]float32{{1, 2, 3}}
	applyInverseCoupling(nil, vectors)
	if vectors[0][0] != 1 || vectors[0][1] != 2 || vectors[0][2] != 3 {
		t.Error("applyInverseCoupling with no steps mutated vectors")
	}
}
