package monads_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/pkg/monads"
)

type typeError struct {
	msg string
}

func (e *typeError) Error() string { return e.msg }

func TestAttempt_Success(t *testing.T) {
	t.Parallel()

	res := monads.Attempt(func() int { return 10 })
	require.True(t, res.Succeeded())
	assert.True(t, res.HasValue())
	assert.Equal(t, 10, res.Value())
	assert.NoError(t, res.Err())
}

func TestAttempt_PanicWithError(t *testing.T) {
	t.Parallel()

	res := monads.Attempt(func() int { panic(&typeError{msg: "Bar"}) })
	require.False(t, res.Succeeded())

	var te *typeError
	require.ErrorAs(t, res.Err(), &te)
	assert.Equal(t, "Bar", te.msg)
}

func TestAttempt_PanicWithValue(t *testing.T) {
	t.Parallel()

	res := monads.Attempt(func() string { panic("Result would be less zero") })
	require.True(t, res.IsEmpty())

	var pe *monads.PanicError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, "Result would be less zero", pe.Value)
}

func TestAttemptErr(t *testing.T) {
	t.Parallel()

	ok := monads.AttemptErr(func() (int, error) { return strconv.Atoi("42") })
	assert.Equal(t, 42, ok.OrElse(0))

	bad := monads.AttemptErr(func() (int, error) { return strconv.Atoi("bad") })
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.Err(), &numErr)

	panicked := monads.AttemptErr(func() (int, error) { panic("boom") })
	assert.False(t, panicked.Succeeded())
}

func TestResult_MapPipeline(t *testing.T) {
	t.Parallel()

	res := monads.MapResult(
		monads.Attempt(func() int { return 10 }).Map(func(x int) int { return x + 2 }),
		func(x int) bool { return x > 5 })

	require.True(t, res.Succeeded())
	assert.True(t, res.Value())

	failed := monads.Attempt(func() int { panic(&typeError{msg: "Bar"}) }).
		Map(func(x int) int { return x + 2 })
	var te *typeError
	require.ErrorAs(t, failed.Err(), &te)
	assert.Equal(t, "Bar", te.Error())
}

func TestResult_MapRecoversPanickingMapper(t *testing.T) {
	t.Parallel()

	res := monads.Success(1).Map(func(int) int { panic(errors.New("mapper")) })
	assert.EqualError(t, res.Err(), "mapper")

	conv := monads.MapResult(monads.Success(1), func(int) string { panic("conv") })
	assert.False(t, conv.Succeeded())
}

func TestResult_FailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failed := monads.Failure[int](boom)

	called := false
	out := monads.FlatMapResult(failed, func(x int) monads.Result[string] {
		called = true
		return monads.Success(fmt.Sprint(x))
	})

	assert.False(t, called)
	assert.ErrorIs(t, out.Err(), boom)
	assert.Equal(t, failed.ID(), out.ID())
	assert.Equal(t, failed.CreatedAt(), out.CreatedAt())

	assert.True(t, failed.Map(func(x int) int { return x + 1 }).Equal(failed))
}

func TestResult_FailureNilError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, monads.Failure[int](nil).Err(), monads.ErrNilError)

	var zero monads.Result[int]
	assert.False(t, zero.Succeeded())
	assert.ErrorIs(t, zero.Err(), monads.ErrEmpty)
}

func TestResult_Factories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, monads.FromValue(3).Value())
	assert.EqualError(t, monads.FromError[int](errors.New("e")).Err(), "e")

	assert.True(t, monads.FromPair(1, nil).Succeeded())
	assert.False(t, monads.FromPair(1, errors.New("e")).Succeeded())

	assert.Equal(t, 7, monads.FromErrorOrValue[int](7).Value())
	assert.EqualError(t, monads.FromErrorOrValue[int](errors.New("x")).Err(), "x")

	var mismatch *monads.TypeMismatchError
	assert.ErrorAs(t, monads.FromErrorOrValue[int]("seven").Err(), &mismatch)
}

func TestResult_Metadata(t *testing.T) {
	t.Parallel()

	a, b := monads.Success(1), monads.Success(1)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, a.CreatedAt().IsZero())
	assert.True(t, a.Equal(b))
}

func TestResult_Callbacks(t *testing.T) {
	t.Parallel()

	var seen []string
	monads.Success(1).
		OnSuccess(func(int) { seen = append(seen, "success") }).
		OnFailure(func(error) { seen = append(seen, "failure") })
	monads.Failure[int](errors.New("e")).
		OnSuccess(func(int) { seen = append(seen, "success") }).
		OnFailure(func(err error) { seen = append(seen, "failure:"+err.Error()) })

	assert.Equal(t, []string{"success", "failure:e"}, seen)
}

func TestResult_MatchAndReduce(t *testing.T) {
	t.Parallel()

	describe := func(r monads.Result[int]) string {
		return monads.MatchResult(r,
			func(x int) string { return "ok " + strconv.Itoa(x) },
			func(err error) string { return "err " + err.Error() })
	}
	assert.Equal(t, "ok 1", describe(monads.Success(1)))
	assert.Equal(t, "err e", describe(monads.Failure[int](errors.New("e"))))

	add := func(total, x int) int { return total + x }
	assert.Equal(t, 3, monads.Reduce[int, int](monads.Success(2), add, 1))
	assert.Equal(t, 1, monads.Reduce[int, int](monads.Failure[int](errors.New("e")), add, 1))
}

func TestResult_Equal(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	assert.True(t, monads.Failure[int](boom).Equal(monads.Failure[int](boom)))
	assert.True(t, monads.Failure[int](errors.New("x")).Equal(monads.Failure[int](errors.New("x"))))
	assert.False(t, monads.Failure[int](errors.New("x")).Equal(monads.Failure[int](errors.New("y"))))
	assert.False(t, monads.Success(1).Equal(monads.Failure[int](boom)))
	assert.False(t, monads.Success(1).Equal(monads.Success(2)))
}

func TestResult_EqualIsSymmetric(t *testing.T) {
	t.Parallel()

	base := errors.New("base")
	wrapped := fmt.Errorf("ctx: %w", base)

	x := monads.Failure[int](wrapped)
	y := monads.Failure[int](base)

	assert.Equal(t, x.Equal(y), y.Equal(x))
	assert.False(t, x.Equal(y))
	assert.True(t, x.Equal(monads.Failure[int](wrapped)))
}

func TestResult_Conversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, monads.Some(1), monads.Success(1).ToOption())
	assert.True(t, monads.Failure[int](errors.New("e")).ToOption().IsNone())

	var p *int
	assert.True(t, monads.Success(p).ToOption().IsNone())

	assert.True(t, monads.Success(1).ToEither().IsRight())
	left, ok := monads.Failure[int](errors.New("e")).ToEither().LeftValue()
	require.True(t, ok)
	assert.EqualError(t, left, "e")

	v, err := monads.Success(2).ToDeferred().Wait()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = monads.Failure[int](errors.New("e")).ToDeferred().Wait()
	assert.EqualError(t, err, "e")
}

func TestResult_ToEitherAbsentValue(t *testing.T) {
	t.Parallel()

	var p *int
	e := monads.Success(p).ToEither()
	assert.True(t, e.IsLeft())

	left, ok := e.LeftValue()
	require.True(t, ok)
	assert.ErrorIs(t, left, monads.ErrNilValue)
}

func TestResult_JoinUnitEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, monads.JoinResult(monads.Success(monads.Success(1))).Value())
	assert.False(t, monads.JoinResult(monads.Success(monads.Failure[int](errors.New("e")))).Succeeded())

	assert.True(t, monads.Success(1).Unit(5).Equal(monads.Success(5)))
	assert.ErrorIs(t, monads.Success(1).Empty().Err(), monads.ErrEmpty)
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(1)", monads.Success(1).String())
	assert.Equal(t, "Failure(e)", monads.Failure[int](errors.New("e")).String())
}
