package outcome

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	out := Replace(Ok(5), "five")
	if !out.IsOk() || out.Value() != "five" {
		t.Fatalf("expected ok with five, got: ok=%v, val=%q", out.IsOk(), out.Value())
	}

	// a none input still picks up the replacement
	out = Replace(None[int](), "present")
	if !out.IsOk() || out.Value() != "present" {
		t.Fatalf("expected ok with present, got: ok=%v, val=%q", out.IsOk(), out.Value())
	}

	e := Unknown("X", "x")
	errOut := Replace(Err[int](e), "ignored")
	if !errOut.IsErr() || errOut.Err() != e {
		t.Fatalf("expected the same error to propagate, got: %v", errOut.Err())
	}

	nilOut := Replace[int, *string](Ok(5), nil)
	if !nilOut.IsNone() {
		t.Fatalf("expected none for nil replacement, got: ok=%v, err=%v", nilOut.IsOk(), nilOut.Err())
	}
}

func TestMap_AppliesToOkValue(t *testing.T) {
	t.Parallel()
	out := Map(Ok(21), func(v int) int { return v * 2 })

	if !out.IsOk() || out.Value() != 42 {
		t.Fatalf("expected ok with 42, got: ok=%v, val=%v, err=%v", out.IsOk(), out.Value(), out.Err())
	}
}

func TestMap_IdentityAndComposition(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v + 3 }
	g := func(v int) string { return strconv.Itoa(v * 2) }

	stepped := Map(Map(Ok(10), f), g)
	composed := Map(Ok(10), func(v int) string { return g(f(v)) })

	if stepped.Value() != composed.Value() || !stepped.IsOk() || !composed.IsOk() {
		t.Fatalf("expected composition to agree: stepped=%q, composed=%q", stepped.Value(), composed.Value())
	}
}

func TestMap_PropagatesErrAndNone(t *testing.T) {
	t.Parallel()

	called := false
	fn := func(v int) int {
		called = true
		return v
	}

	e := Unknown("X", "x")
	errOut := Map(Err[int](e), fn)
	if !errOut.IsErr() || errOut.Err() != e || called {
		t.Fatalf("expected err to pass through untouched, got: err=%v, called=%v", errOut.Err(), called)
	}

	noneOut := Map(None[int](), fn)
	if !noneOut.IsNone() || called {
		t.Fatalf("expected none to pass through untouched, got: ok=%v, called=%v", noneOut.IsOk(), called)
	}
}

func TestMap_NilMappedValueIsContained(t *testing.T) {
	t.Parallel()
	out := Map(Ok(1), func(v int) *int { return nil })

	if !out.IsErr() || out.Err().Code() != UnexpectedError {
		t.Fatalf("expected contained fault for nil mapped value, got: ok=%v, none=%v, err=%v",
			out.IsOk(), out.IsNone(), out.Err())
	}
}

func TestFlatMap_AdoptsMapperOutcome(t *testing.T) {
	t.Parallel()

	out := FlatMap(Ok(2), func(v int) Outcome[string] { return Ok(strconv.Itoa(v)) })
	if !out.IsOk() || out.Value() != "2" {
		t.Fatalf("expected ok with 2, got: ok=%v, val=%q", out.IsOk(), out.Value())
	}

	e := InvalidRequest("BAD", "nope")
	out = FlatMap(Ok(2), func(v int) Outcome[string] { return Err[string](e) })
	if !out.IsErr() || out.Err() != e {
		t.Fatalf("expected mapper error adopted, got: %v", out.Err())
	}

	out = FlatMap(Ok(2), func(v int) Outcome[string] { return None[string]() })
	if !out.IsNone() {
		t.Fatalf("expected mapper none adopted, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestFlatMap_ShortCircuitWithoutInvoking(t *testing.T) {
	t.Parallel()

	called := false
	fn := func(v int) Outcome[int] {
		called = true
		return Ok(v)
	}

	e := Unknown("X", "x")
	errOut := FlatMap(Err[int](e), fn)
	if !errOut.IsErr() || errOut.Err() != e || called {
		t.Fatalf("expected short-circuit on err, got: err=%v, called=%v", errOut.Err(), called)
	}

	noneOut := FlatMap(None[int](), fn)
	if !noneOut.IsNone() || called {
		t.Fatalf("expected short-circuit on none, got: ok=%v, called=%v", noneOut.IsOk(), called)
	}
}

func TestFlatMap_PanicContained(t *testing.T) {
	t.Parallel()
	out := FlatMap(Ok(1), func(v int) Outcome[int] { panic("mapper blew up") })

	if !out.IsErr() {
		t.Fatalf("expected err, got: ok=%v, none=%v", out.IsOk(), out.IsNone())
	}
	e := out.Err()
	if e.Kind() != KindUnknown || e.Code() != UnexpectedError || e.Message() != UnexpectedErrorMessage {
		t.Fatalf("expected contained unknown error, got: kind=%v, code=%q, msg=%q", e.Kind(), e.Code(), e.Message())
	}
	if !strings.Contains(e.Origin().Error(), "mapper blew up") {
		t.Fatalf("expected origin carrying the fault, got: %v", e.Origin())
	}
}

func TestFlatMap_ZeroOutcomeNormalizesToNone(t *testing.T) {
	t.Parallel()
	out := FlatMap(Ok(1), func(v int) Outcome[int] { return Outcome[int]{} })

	if !out.IsNone() || out.isZero() {
		t.Fatalf("expected a constructed none, got: ok=%v, err=%v, zero=%v", out.IsOk(), out.Err(), out.isZero())
	}
}

func TestMapErr_SameInstanceUntouched(t *testing.T) {
	t.Parallel()
	e := NotFound("MISSING", "gone")
	in := Err[int](e)

	out := in.MapErr(func(cur *Error) *Error { return cur })
	if !out.IsErr() || out.Err() != e {
		t.Fatalf("expected the exact same error instance, got: %v", out.Err())
	}
}

func TestMapErr_DifferentErrorChainsCause(t *testing.T) {
	t.Parallel()
	rootOrigin := errors.New("root")
	old := NotFound("MISSING", "gone").With(rootOrigin)
	replacement := InvalidRequest("REJECTED", "turned away")

	out := Err[int](old).MapErr(func(*Error) *Error { return replacement })

	if !out.IsErr() {
		t.Fatalf("expected err, got ok=%v", out.IsOk())
	}
	e := out.Err()
	if e.Kind() != KindInvalidRequest || e.Code() != "REJECTED" {
		t.Fatalf("expected the replacement error, got: kind=%v, code=%q", e.Kind(), e.Code())
	}
	if e.Origin() == nil || !strings.Contains(e.Origin().Error(), "MISSING") || !strings.Contains(e.Origin().Error(), "gone") {
		t.Fatalf("expected origin to describe the old error, got: %v", e.Origin())
	}
	if !errors.Is(e, rootOrigin) {
		t.Fatalf("expected the old error's own origin to stay reachable")
	}
	if replacement.Origin() != nil {
		t.Fatalf("expected the replacement instance to stay untouched")
	}
}

func TestMapErr_SkipsOkAndNone(t *testing.T) {
	t.Parallel()

	called := false
	fn := func(cur *Error) *Error {
		called = true
		return cur
	}

	okOut := Ok(1).MapErr(fn)
	noneOut := None[int]().MapErr(fn)
	if !okOut.IsOk() || !noneOut.IsNone() || called {
		t.Fatalf("expected pass-through without invoking, got: called=%v", called)
	}
}

func TestMapErr_NilReturnPanics(t *testing.T) {
	t.Parallel()
	mustPanic(t, func() {
		Err[int](Unknown("X", "x")).MapErr(func(*Error) *Error { return nil })
	})
}

func TestOrElseErr(t *testing.T) {
	t.Parallel()

	e := NotFound("EMPTY", "nothing there")
	out := None[int]().OrElseErr(e)
	if !out.IsErr() || out.Err() != e {
		t.Fatalf("expected none to become err, got: %v", out.Err())
	}

	okOut := Ok(1).OrElseErr(e)
	if !okOut.IsOk() || okOut.Value() != 1 {
		t.Fatalf("expected ok unchanged, got: ok=%v", okOut.IsOk())
	}

	old := Unknown("X", "x")
	errOut := Err[int](old).OrElseErr(e)
	if !errOut.IsErr() || errOut.Err() != old {
		t.Fatalf("expected existing err unchanged, got: %v", errOut.Err())
	}

	mustPanic(t, func() {
		None[int]().OrElseErr(nil)
	})
}

func TestZip_BothOk(t *testing.T) {
	t.Parallel()
	out := Zip(Ok(1), Ok("one"))

	if !out.IsOk() {
		t.Fatalf("expected ok, got: err=%v, none=%v", out.Err(), out.IsNone())
	}
	p := out.Value()
	if p.First != 1 || p.Second != "one" {
		t.Fatalf("expected pair (1, one), got: (%v, %v)", p.First, p.Second)
	}
}

func TestZip_FirstErrorWins(t *testing.T) {
	t.Parallel()
	a := Unknown("A", "left")
	b := Unknown("B", "right")

	out := Zip(Err[int](a), Err[string](b))
	if !out.IsErr() || out.Err() != a {
		t.Fatalf("expected the first error, got: %v", out.Err())
	}

	out = Zip(Ok(1), Err[string](b))
	if !out.IsErr() || out.Err() != b {
		t.Fatalf("expected the second error, got: %v", out.Err())
	}
}

func TestZip_NoneWithoutError(t *testing.T) {
	t.Parallel()

	if out := Zip(None[int](), Ok("x")); !out.IsNone() {
		t.Fatalf("expected none, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if out := Zip(Ok(1), None[string]()); !out.IsNone() {
		t.Fatalf("expected none, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
	if out := Zip(None[int](), None[string]()); !out.IsNone() {
		t.Fatalf("expected none, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	rejected := ValidationFailed("ODD", "must be even")

	out := Ok(4).Filter(func(v int) bool { return v%2 == 0 }, rejected)
	if !out.IsOk() || out.Value() != 4 {
		t.Fatalf("expected accepted value, got: ok=%v, err=%v", out.IsOk(), out.Err())
	}

	out = Ok(5).Filter(func(v int) bool { return v%2 == 0 }, rejected)
	if !out.IsErr() || out.Err() != rejected {
		t.Fatalf("expected the rejection error, got: %v", out.Err())
	}
}

func TestFilter_SkipsErrAndNone(t *testing.T) {
	t.Parallel()

	called := false
	pred := func(v int) bool {
		called = true
		return true
	}
	rejected := Unknown("X", "x")

	e := NotFound("MISSING", "gone")
	errOut := Err[int](e).Filter(pred, rejected)
	noneOut := None[int]().Filter(pred, rejected)

	if !errOut.IsErr() || errOut.Err() != e || !noneOut.IsNone() || called {
		t.Fatalf("expected pass-through without invoking predicate, got: called=%v", called)
	}
}

func TestFilter_PanicContained(t *testing.T) {
	t.Parallel()
	out := Ok(1).Filter(func(int) bool { panic("predicate blew up") }, Unknown("X", "x"))

	if !out.IsErr() || out.Err().Code() != UnexpectedError {
		t.Fatalf("expected contained fault, got: %v", out.Err())
	}
}

func TestFilter_RequiresArguments(t *testing.T) {
	t.Parallel()
	mustPanic(t, func() {
		Ok(1).Filter(nil, Unknown("X", "x"))
	})
	mustPanic(t, func() {
		Ok(1).Filter(func(int) bool { return true }, nil)
	})
}
