// Package amplify_test contains unit tests for the trial combinators.
package amplify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randcheck/amplify"
)

// script returns a Trial that replays the given verdicts in order and
// counts invocations; running past the script fails the test.
func script(t *testing.T, calls *int, verdicts ...bool) amplify.Trial {
	t.Helper()

	return func() (bool, error) {
		require.Less(t, *calls, len(verdicts), "trial invoked beyond script")
		v := verdicts[*calls]
		*calls++

		return v, nil
	}
}

func TestAllOfUnanimousTrue(t *testing.T) {
	calls := 0
	ok, err := amplify.AllOf(3, script(t, &calls, true, true, true))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, calls, "all k trials must run when unanimous")
}

func TestAllOfShortCircuitsOnFalse(t *testing.T) {
	calls := 0
	ok, err := amplify.AllOf(5, script(t, &calls, true, false))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 2, calls, "a false verdict must stop further trials")
}

func TestAnyOfShortCircuitsOnTrue(t *testing.T) {
	calls := 0
	ok, err := amplify.AnyOf(5, script(t, &calls, false, false, true))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, calls, "a true verdict must stop further trials")
}

func TestAnyOfUnanimousFalse(t *testing.T) {
	calls := 0
	ok, err := amplify.AnyOf(4, script(t, &calls, false, false, false, false))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 4, calls, "all k trials must run when unanimous")
}

func TestInvalidTrialCount(t *testing.T) {
	noop := func() (bool, error) { return true, nil }
	for _, k := range []int{0, -1} {
		_, err := amplify.AllOf(k, noop)
		require.ErrorIs(t, err, amplify.ErrInvalidTrials)
		_, err = amplify.AnyOf(k, noop)
		require.ErrorIs(t, err, amplify.ErrInvalidTrials)
	}
}

func TestNilTrial(t *testing.T) {
	_, err := amplify.AllOf(1, nil)
	require.ErrorIs(t, err, amplify.ErrNilTrial)
	_, err = amplify.AnyOf(1, nil)
	require.ErrorIs(t, err, amplify.ErrNilTrial)
}

func TestTrialErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := func() (bool, error) {
		calls++
		if calls == 2 {
			return false, boom
		}

		return true, nil
	}

	_, err := amplify.AllOf(5, failing)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls, "the erroring trial must abort the run")
}
