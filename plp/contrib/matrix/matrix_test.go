// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-plp/plp"
	"github.com/ajroetker/go-plp/plp/cluster"
	"github.com/ajroetker/go-plp/plp/simd"
)

func testEnvs(t *testing.T) (control, cl *plp.Env) {
	t.Helper()
	c := cluster.New(8)
	t.Cleanup(c.Close)
	quiet := plp.WithLogger(slog.New(slog.DiscardHandler))
	return plp.NewEnv(plp.SiteControl, nil, quiet), plp.NewEnv(plp.SiteCluster, c, quiet)
}

// refMatMul is the textbook triple loop over strided operands, producing a
// dense m x o result.
func refMatMul[T, A simd.Lanes](a, b []T, m, n, o, strideA, strideB int) []A {
	c := make([]A, m*o)
	for i := range m {
		for j := range o {
			var acc A
			for k := range n {
				acc += A(a[i*strideA+k]) * A(b[k*strideB+j])
			}
			c[i*o+j] = acc
		}
	}
	return c
}

func randomMatrix[T simd.Lanes](rng *rand.Rand, size int, lo, hi int64) []T {
	out := make([]T, size)
	for i := range out {
		out[i] = T(lo + rng.Int63n(hi-lo+1))
	}
	return out
}

func filled[T any](size int, value T) []T {
	out := make([]T, size)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestView(t *testing.T) {
	v := View[int]{Data: []int{1, 2, -1, 3, 4, -1, 5, 6}, Rows: 3, Cols: 2, Stride: 3}
	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := v.At(2, 1); got != 6 {
		t.Errorf("At(2, 1) = %d, want 6", got)
	}
	if diff := cmp.Diff([]int{3, 4}, v.Row(1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}

	bad := []View[int]{
		{Data: v.Data, Rows: 3, Cols: 4, Stride: 3},
		{Data: v.Data, Rows: 4, Cols: 2, Stride: 3},
		{Data: v.Data, Rows: -1, Cols: 2, Stride: 2},
	}
	for _, b := range bad {
		if err := b.Validate(); !errors.Is(err, plp.ErrInvalidArgument) {
			t.Errorf("Validate(%dx%d stride %d) = %v, want ErrInvalidArgument", b.Rows, b.Cols, b.Stride, err)
		}
	}
	if err := (View[int]{}).Validate(); err != nil {
		t.Errorf("empty view Validate() = %v", err)
	}
}

func TestFillI(t *testing.T) {
	control, cl := testEnvs(t)
	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	for _, env := range []*plp.Env{control, cl} {
		got := filled[float32](16, 9)
		if err := FillIFloat32(env, 4, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: FillI mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 4; nPE++ {
		got := filled[float32](16, 9)
		if err := FillIFloat32Parallel(cl, 4, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: FillIParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestFillIStrideLeavesPadding(t *testing.T) {
	control, cl := testEnvs(t)
	const pad = -7
	want := []int32{
		1, 0, 0, pad, pad,
		0, 1, 0, pad, pad,
		0, 0, 1,
	}

	for _, env := range []*plp.Env{control, cl} {
		got := filled[int32](len(want), pad)
		if err := FillIStrideInt32(env, 3, 5, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: FillIStride mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 3; nPE++ {
		got := filled[int32](len(want), pad)
		if err := FillIStrideInt32Parallel(cl, 3, 5, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: FillIStrideParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestFill(t *testing.T) {
	control, cl := testEnvs(t)
	const m, n, stride = 37, 70, 73

	want := filled[int16](m*stride, 0)
	for i := range m {
		for j := range n {
			want[i*stride+j] = 5
		}
	}

	for _, env := range []*plp.Env{control, cl} {
		got := make([]int16, m*stride)
		if err := Fill(env, m, n, stride, int16(5), got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: Fill mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 8; nPE++ {
		got := make([]int16, m*stride)
		if err := FillParallel(cl, m, n, stride, int16(5), nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: FillParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestMatMulExample(t *testing.T) {
	control, cl := testEnvs(t)
	a := []int8{1, 2, 3, 4, 5, 6}
	b := []int8{7, 8, 9, 10, 11, 12}
	want := []int32{58, 64, 139, 154}

	for _, env := range []*plp.Env{control, cl} {
		got := make([]int32, 4)
		if err := MatMulInt8(env, a, b, 2, 3, 2, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: MatMul mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	got := make([]int32, 4)
	if err := MatMulInt8Parallel(cl, a, b, 2, 3, 2, 2, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatMulParallel mismatch (-want +got):\n%s", diff)
	}
}

func TestMatMulWidens(t *testing.T) {
	_, cl := testEnvs(t)
	const n = 64
	a := filled[int8](n, 127)
	b := filled[int8](n, -128)

	var got [1]int32
	if err := MatMulInt8(cl, a, b, 1, n, 1, got[:]); err != nil {
		t.Fatal(err)
	}
	if want := int32(n * 127 * -128); got[0] != want {
		t.Errorf("MatMulInt8 = %d, want %d", got[0], want)
	}
}

func TestMatMulMatchesReference(t *testing.T) {
	control, cl := testEnvs(t)
	rng := rand.New(rand.NewSource(17))

	for _, dims := range [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 7, 3}, {16, 16, 16}, {17, 9, 13}, {33, 1, 31}, {8, 0, 5}} {
		m, n, o := dims[0], dims[1], dims[2]
		a := randomMatrix[int16](rng, m*n, -300, 300)
		b := randomMatrix[int16](rng, n*o, -300, 300)
		want := refMatMul[int16, int32](a, b, m, n, o, n, o)

		for _, env := range []*plp.Env{control, cl} {
			got := make([]int32, m*o)
			if err := MatMulInt16(env, a, b, m, n, o, got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%v %s: MatMul mismatch (-want +got):\n%s", dims, env.Site, diff)
			}
		}
		for nPE := 1; nPE <= 8; nPE++ {
			got := make([]int32, m*o)
			if err := MatMulInt16Parallel(cl, a, b, m, n, o, nPE, got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%v nPE=%d: MatMulParallel mismatch (-want +got):\n%s", dims, nPE, diff)
			}
		}
	}
}

func TestMatMulFloat32ParallelBitIdentical(t *testing.T) {
	_, cl := testEnvs(t)
	rng := rand.New(rand.NewSource(23))
	const m, n, o = 19, 27, 11

	a := make([]float32, m*n)
	b := make([]float32, n*o)
	for i := range a {
		a[i] = rng.Float32()*2 - 1
	}
	for i := range b {
		b[i] = rng.Float32()*2 - 1
	}

	serial := make([]float32, m*o)
	if err := MatMulFloat32(cl, a, b, m, n, o, serial); err != nil {
		t.Fatal(err)
	}
	for nPE := 2; nPE <= 8; nPE++ {
		got := make([]float32, m*o)
		if err := MatMulFloat32Parallel(cl, a, b, m, n, o, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(serial, got); diff != "" {
			t.Errorf("nPE=%d: parallel differs from serial (-serial +parallel):\n%s", nPE, diff)
		}
	}
}

func TestMatMulStride(t *testing.T) {
	control, cl := testEnvs(t)
	rng := rand.New(rand.NewSource(29))
	const m, n, o = 7, 5, 6
	const sa, sb, sc = 8, 9, 10
	const pad = 12345

	a := randomMatrix[int32](rng, m*sa, -1000, 1000)
	b := randomMatrix[int32](rng, n*sb, -1000, 1000)
	dense := refMatMul[int32, int32](a, b, m, n, o, sa, sb)
	want := filled[int32](m*sc, pad)
	for i := range m {
		copy(want[i*sc:i*sc+o], dense[i*o:(i+1)*o])
	}

	for _, env := range []*plp.Env{control, cl} {
		got := filled[int32](m*sc, pad)
		if err := MatMulStride(env, a, b, m, n, o, sa, sb, sc, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: MatMulStride mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 7; nPE++ {
		got := filled[int32](m*sc, pad)
		if err := MatMulStrideParallel(cl, a, b, m, n, o, sa, sb, sc, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: MatMulStrideParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestMatMulTrans(t *testing.T) {
	control, cl := testEnvs(t)
	rng := rand.New(rand.NewSource(31))
	const m, n, o = 9, 6, 7

	a := randomMatrix[int32](rng, m*n, -50, 50)
	b := randomMatrix[int32](rng, n*o, -50, 50)
	bt := make([]int32, o*n)
	for k := range n {
		for j := range o {
			bt[j*n+k] = b[k*o+j]
		}
	}
	want := refMatMul[int32, int32](a, b, m, n, o, n, o)

	for _, env := range []*plp.Env{control, cl} {
		got := make([]int32, m*o)
		if err := MatMulTransInt32(env, a, bt, m, n, o, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: MatMulTrans mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 8; nPE++ {
		got := make([]int32, m*o)
		if err := MatMulTransInt32Parallel(cl, a, bt, m, n, o, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: MatMulTransParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestMatMulCmplxStride(t *testing.T) {
	control, cl := testEnvs(t)

	// (1+2i) * (3+4i) = -5+10i
	var got [2]int32
	if err := MatMulCmplxStrideInt16(control, []int16{1, 2}, []int16{3, 4}, 1, 1, 1, 1, 1, 1, got[:]); err != nil {
		t.Fatal(err)
	}
	if got != [2]int32{-5, 10} {
		t.Errorf("(1+2i)(3+4i) = %v, want [-5 10]", got)
	}

	rng := rand.New(rand.NewSource(37))
	const m, n, o = 6, 4, 5
	const sa, sb, sc = 5, 6, 7
	const pad = -1
	a := randomMatrix[int16](rng, 2*m*sa, -100, 100)
	b := randomMatrix[int16](rng, 2*n*sb, -100, 100)

	want := filled[int32](2*m*sc, pad)
	for i := range m {
		for j := range o {
			var re, im int32
			for k := range n {
				ar, ai := int32(a[2*(i*sa+k)]), int32(a[2*(i*sa+k)+1])
				br, bi := int32(b[2*(k*sb+j)]), int32(b[2*(k*sb+j)+1])
				re += ar*br - ai*bi
				im += ar*bi + ai*br
			}
			want[2*(i*sc+j)], want[2*(i*sc+j)+1] = re, im
		}
	}

	for _, env := range []*plp.Env{control, cl} {
		got := filled[int32](len(want), pad)
		if err := MatMulCmplxStrideInt16(env, a, b, m, n, o, sa, sb, sc, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: MatMulCmplxStride mismatch (-want +got):\n%s", env.Site, diff)
		}
	}
	for nPE := 1; nPE <= 6; nPE++ {
		got := filled[int32](len(want), pad)
		if err := MatMulCmplxStrideInt16Parallel(cl, a, b, m, n, o, sa, sb, sc, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nPE=%d: MatMulCmplxStrideParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestMatMulQ(t *testing.T) {
	control, cl := testEnvs(t)

	// Q15: 0.5 * 0.5 = 0.25 and -0.5 * 0.5 = -0.25.
	a := []int16{16384, -16384}
	b := []int16{16384}
	want := []int16{8192, -8192}
	for _, env := range []*plp.Env{control, cl} {
		got := make([]int16, 2)
		if err := MatMulQ16(env, a, b, 2, 1, 1, 15, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: MatMulQ16 mismatch (-want +got):\n%s", env.Site, diff)
		}
	}

	rng := rand.New(rand.NewSource(41))
	const m, n, o = 12, 10, 9
	qa := randomMatrix[int16](rng, m*n, -32768, 32767)
	qb := randomMatrix[int16](rng, n*o, -32768, 32767)
	wide := refMatMul[int16, int64](qa, qb, m, n, o, n, o)
	wantQ := make([]int16, m*o)
	for i, v := range wide {
		wantQ[i] = int16(v >> 15)
	}
	for nPE := 1; nPE <= 8; nPE++ {
		got := make([]int16, m*o)
		if err := MatMulQ16Parallel(cl, qa, qb, m, n, o, 15, nPE, got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantQ, got); diff != "" {
			t.Errorf("nPE=%d: MatMulQParallel mismatch (-want +got):\n%s", nPE, diff)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	control, cl := testEnvs(t)
	short := filled[int32](3, 99)
	ok := make([]int32, 16)

	checks := []struct {
		name string
		err  error
	}{
		{"FillI short", FillI(control, 2, short)},
		{"FillIStride stride", FillIStride(control, 3, 2, short)},
		{"Fill negative", Fill(control, -1, 2, 2, int32(1), short)},
		{"FillParallel stride", FillParallel(cl, 2, 4, 3, int32(1), 2, short)},
		{"MatMul short a", MatMul(control, short, ok, 2, 2, 2, ok)},
		{"MatMul short c", MatMul(control, ok, ok, 2, 2, 2, short)},
		{"MatMulStride strideB", MatMulStride(control, ok, ok, 2, 2, 3, 2, 2, 3, ok)},
		{"MatMulTrans short b", MatMulTrans(control, ok, short, 2, 2, 2, ok)},
		{"MatMulQ shift", MatMulQ(control, ok, ok, 2, 2, 2, 64, ok)},
		{"MatMulCmplx short", MatMulCmplxStride(control, ok, ok, 2, 2, 2, 2, 2, 2, short)},
		{"MatMulParallel short c", MatMulParallel(cl, ok, ok, 2, 2, 2, 2, short)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, plp.ErrInvalidArgument) {
			t.Errorf("%s: error = %v, want ErrInvalidArgument", c.name, c.err)
		}
	}
	if diff := cmp.Diff(filled[int32](3, 99), short); diff != "" {
		t.Errorf("rejected calls wrote to the destination (-want +got):\n%s", diff)
	}
	if cl.Cluster.Forks() != 0 {
		t.Errorf("Forks() = %d, want 0", cl.Cluster.Forks())
	}
}

func TestParallelFromControlSite(t *testing.T) {
	control, _ := testEnvs(t)
	c := cluster.New(4)
	defer c.Close()
	control.Cluster = c

	dst := filled[int32](16, 3)
	errs := []error{
		FillIParallel(control, 4, 4, dst),
		FillParallel(control, 4, 4, 4, int32(0), 4, dst),
		MatMulParallel(control, dst, dst, 4, 4, 4, 4, dst),
		MatMulTransParallel(control, dst, dst, 4, 4, 4, 4, dst),
		MatMulQParallel(control, dst, dst, 4, 4, 4, 2, 4, dst),
	}
	for i, err := range errs {
		if !errors.Is(err, plp.ErrUnsupportedExecutionSite) {
			t.Errorf("call %d: error = %v, want ErrUnsupportedExecutionSite", i, err)
		}
	}
	if diff := cmp.Diff(filled[int32](16, 3), dst); diff != "" {
		t.Errorf("destination modified (-want +got):\n%s", diff)
	}
	if c.Forks() != 0 {
		t.Errorf("Forks() = %d, want 0", c.Forks())
	}
}

func TestBlockedMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for _, dims := range [][3]int{{1, 3, 1}, {2, 2, 2}, {3, 4, 5}, {4, 1, 3}, {7, 7, 7}} {
		m, n, o := dims[0], dims[1], dims[2]
		a := randomMatrix[int8](rng, m*n, -128, 127)
		b := randomMatrix[int8](rng, n*o, -128, 127)
		p := plainOperands(Dense(a, m, n), Dense(b, n, o), o)

		want := make([]int32, m*o)
		got := make([]int32, m*o)
		mulScalar[int8, int32](p, 0, m, func(i int, v int32) { want[i] = v })
		mulBlocked[int8, int32](p, 0, m, func(i int, v int32) { got[i] = v })
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: mulBlocked mismatch (-scalar +blocked):\n%s", dims, diff)
		}
	}
}

func BenchmarkMatMulInt16(b *testing.B) {
	c := cluster.New(8)
	defer c.Close()
	env := plp.NewEnv(plp.SiteCluster, c)
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{16, 64, 128} {
		a := randomMatrix[int16](rng, size*size, -100, 100)
		bm := randomMatrix[int16](rng, size*size, -100, 100)
		out := make([]int32, size*size)

		b.Run(fmt.Sprintf("%d/Serial", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = MatMulInt16(env, a, bm, size, size, size, out)
			}
		})
		b.Run(fmt.Sprintf("%d/Parallel8", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = MatMulInt16Parallel(env, a, bm, size, size, size, 8, out)
			}
		})
	}
}
