//go:build cgo
// +build cgo

package ipamir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignature(t *testing.T) {
	require.NotEmpty(t, Signature())
}

func TestSolveTriviallySat(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1, -2)
	res := s.Solve(0)
	require.Equal(t, Optimal, res.Status())

	sol, ok := res.Solution()
	require.True(t, ok)
	require.EqualValues(t, 0, sol.ObjectiveValue())
	// At least one literal of the clause must hold.
	one := sol.LiteralValue(1)
	notTwo := sol.LiteralValue(-2)
	require.True(t, one == LitTrue || notTwo == LitTrue,
		"clause [1 -2] unsatisfied: 1=%v, -2=%v", one, notTwo)
}

func TestUnsatExposesNoSolution(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClauses([][]int32{{1}, {-1}})
	res := s.Solve(0)
	require.Equal(t, Unsat, res.Status())

	sol, ok := res.Solution()
	require.False(t, ok)
	require.Nil(t, sol)
}

func TestSoftLiteralObjective(t *testing.T) {
	s := New()
	defer s.Close()

	// Nothing forces literal 3 false, so it can be satisfied for free.
	s.AddSoftLiteral(3, 5)
	res := s.Solve(0)
	require.Equal(t, Optimal, res.Status())
	sol, ok := res.Solution()
	require.True(t, ok)
	require.EqualValues(t, 0, sol.ObjectiveValue())
	require.Equal(t, LitTrue, sol.LiteralValue(3))

	// Forcing it false makes its weight the optimum cost.
	s.AddClause(-3)
	res = s.Solve(0)
	require.Equal(t, Optimal, res.Status())
	sol, ok = res.Solution()
	require.True(t, ok)
	require.EqualValues(t, 5, sol.ObjectiveValue())
	require.Equal(t, LitFalse, sol.LiteralValue(3))
}

func TestAssumptionsHoldForOneCallOnly(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1, 2)

	// Assuming -1 forces 2 for this call.
	res := s.Solve(0, -1)
	require.Equal(t, Optimal, res.Status())
	sol, ok := res.Solution()
	require.True(t, ok)
	require.Equal(t, LitFalse, sol.LiteralValue(1))
	require.Equal(t, LitTrue, sol.LiteralValue(2))

	// Assuming both literals false contradicts the clause.
	res = s.Solve(0, -1, -2)
	require.Equal(t, Unsat, res.Status())

	// The assumptions did not become part of the formula.
	res = s.Solve(0)
	require.Equal(t, Optimal, res.Status())
}

func TestIncrementalSolving(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1)
	res := s.Solve(0)
	require.Equal(t, Optimal, res.Status())

	s.AddClause(-1, 2)
	res = s.Solve(0)
	require.Equal(t, Optimal, res.Status())
	sol, ok := res.Solution()
	require.True(t, ok)
	require.Equal(t, LitTrue, sol.LiteralValue(1))
	require.Equal(t, LitTrue, sol.LiteralValue(2))

	s.AddClause(-1)
	res = s.Solve(0)
	require.Equal(t, Unsat, res.Status())
}

func TestSolutionStaleAfterMutation(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1)
	res := s.Solve(0)
	sol, ok := res.Solution()
	require.True(t, ok)
	require.Equal(t, LitTrue, sol.LiteralValue(1))

	s.AddClause(2)
	require.Panics(t, func() { sol.LiteralValue(1) })
	require.Panics(t, func() { sol.ObjectiveValue() })
}

func TestSolutionStaleAfterResolve(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1)
	first, ok := s.Solve(0).Solution()
	require.True(t, ok)

	second, ok := s.Solve(0).Solution()
	require.True(t, ok)

	require.Panics(t, func() { first.ObjectiveValue() })
	require.Equal(t, LitTrue, second.LiteralValue(1))
}

func TestSolutionUnusableAfterClose(t *testing.T) {
	s := New()
	s.AddClause(1)
	sol, ok := s.Solve(0).Solution()
	require.True(t, ok)

	s.Close()
	require.Panics(t, func() { sol.ObjectiveValue() })

	// Close stays a no-op once the handle is gone.
	s.Close()
}

// pigeonhole returns hard clauses placing n pigeons into n-1 holes:
// unsatisfiable, and expensive enough that small timeouts bite.
func pigeonhole(n int) [][]int32 {
	holes := n - 1
	v := func(pigeon, hole int) int32 { return int32(pigeon*holes + hole + 1) }
	var clauses [][]int32
	for p := 0; p < n; p++ {
		var c []int32
		for h := 0; h < holes; h++ {
			c = append(c, v(p, h))
		}
		clauses = append(clauses, c)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < n; p1++ {
			for p2 := p1 + 1; p2 < n; p2++ {
				clauses = append(clauses, []int32{-v(p1, h), -v(p2, h)})
			}
		}
	}
	return clauses
}

func TestTimeoutTerminatesSolve(t *testing.T) {
	if testing.Short() {
		t.Skip("timeout test uses a deliberately hard formula")
	}
	s := New()
	defer s.Close()

	s.AddClauses(pigeonhole(30))

	start := time.Now()
	res := s.Solve(10 * time.Millisecond)
	st := res.Status()
	require.True(t, st == TimeoutNoModel || st == TimeoutWithModel,
		"expected a timeout outcome, got %v", st)
	// Cooperative, so no hard bound; the engine should still honor the
	// signal well before it could prove this instance unsatisfiable.
	require.Less(t, time.Since(start), 30*time.Second)
}

func TestZeroTimeoutMeansNoTimeout(t *testing.T) {
	s := New()
	defer s.Close()

	s.AddClause(1, -2)
	res := s.Solve(0)
	require.Equal(t, Optimal, res.Status())
}
