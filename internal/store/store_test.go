// ABOUTME: Tests for Store mutations, load handling, and persistence results.
// ABOUTME: Uses the in-memory backend with injected failures.
package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/gym/internal/kv"
	"github.com/harperreed/gym/internal/models"
)

func setupTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	backend := kv.NewMemory()
	s := New(backend, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s, backend
}

func waitResult(t *testing.T, r *Result) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("timed out waiting for persist")
	}
	return err
}

func persisted(t *testing.T, backend kv.Backend) []models.Exercise {
	t.Helper()
	data, ok, err := backend.Get(context.Background(), Key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected exercises to be persisted")
	}
	exercises, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return exercises
}

func TestAddExerciseAppends(t *testing.T) {
	s, backend := setupTestStore(t)

	for _, name := range []string{"Bench Press", "Squat"} {
		r, err := s.AddExercise(name)
		if err != nil {
			t.Fatalf("AddExercise(%q) failed: %v", name, err)
		}
		if err := waitResult(t, r); err != nil {
			t.Fatalf("persist failed: %v", err)
		}
	}

	got := s.Exercises()
	if len(got) != 2 {
		t.Fatalf("len(Exercises()) = %d, want 2", len(got))
	}
	if got[1].Name != "Squat" {
		t.Errorf("last exercise = %q, want Squat", got[1].Name)
	}
	if got[1].History == nil || len(got[1].History) != 0 {
		t.Errorf("expected empty history, got %v", got[1].History)
	}

	if !reflect.DeepEqual(persisted(t, backend), got) {
		t.Errorf("persisted state differs from memory")
	}
	if backend.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", backend.Writes())
	}
}

func TestAddExerciseBlankName(t *testing.T) {
	s, backend := setupTestStore(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		r, err := s.AddExercise(name)
		if !errors.Is(err, ErrBlankName) {
			t.Errorf("AddExercise(%q) error = %v, want ErrBlankName", name, err)
		}
		if r != nil {
			t.Errorf("AddExercise(%q) returned a result", name)
		}
	}

	if n := len(s.Exercises()); n != 0 {
		t.Errorf("len(Exercises()) = %d, want 0", n)
	}
	if backend.Writes() != 0 {
		t.Errorf("Writes() = %d, want 0", backend.Writes())
	}
}

func TestAddExerciseKeepsNameAsGiven(t *testing.T) {
	s, _ := setupTestStore(t)

	if _, err := s.AddExercise("  Curl "); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if _, ok := s.Exercise("  Curl "); !ok {
		t.Error("expected exercise stored with spacing as typed")
	}
}

func TestAddExerciseDuplicateRejected(t *testing.T) {
	s, _ := setupTestStore(t)

	if _, err := s.AddExercise("Row"); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	_, err := s.AddExercise("Row")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("error = %v, want ErrDuplicateName", err)
	}
	if n := len(s.Exercises()); n != 1 {
		t.Errorf("len(Exercises()) = %d, want 1", n)
	}

	// Names differing only by case are distinct.
	if _, err := s.AddExercise("row"); err != nil {
		t.Errorf("AddExercise(row) failed: %v", err)
	}
}

func TestRecordWorkoutAppendsEntry(t *testing.T) {
	s, backend := setupTestStore(t)
	_, _ = s.AddExercise("Bench Press")
	_, _ = s.AddExercise("Squat")

	sets := []models.SetRecord{
		models.NewSetRecord("10", "135"),
		models.NewSetRecord("8", "145"),
	}
	if err := waitResult(t, s.RecordWorkout("Bench Press", sets)); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	bench, _ := s.Exercise("Bench Press")
	if len(bench.History) != 1 {
		t.Fatalf("len(History) = %d, want 1", len(bench.History))
	}
	if !reflect.DeepEqual(bench.History[0], models.WorkoutEntry(sets)) {
		t.Errorf("History[0] = %v, want %v", bench.History[0], sets)
	}

	squat, _ := s.Exercise("Squat")
	if len(squat.History) != 0 {
		t.Errorf("Squat history changed: %v", squat.History)
	}

	// The caller's slice is copied, not aliased.
	sets[0].Reps = "99"
	bench, _ = s.Exercise("Bench Press")
	if bench.History[0][0].Reps != "10" {
		t.Errorf("stored set mutated through caller slice")
	}

	if got := persisted(t, backend); len(got[0].History) != 1 {
		t.Errorf("persisted history length = %d, want 1", len(got[0].History))
	}
}

func TestRecordWorkoutEmptySetsAppendsEmptyEntry(t *testing.T) {
	s, backend := setupTestStore(t)
	r, _ := s.AddExercise("Plank")
	_ = waitResult(t, r)

	if err := waitResult(t, s.RecordWorkout("Plank", nil)); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	e, _ := s.Exercise("Plank")
	if len(e.History) != 1 || len(e.History[0]) != 0 {
		t.Errorf("History = %v, want one empty workout", e.History)
	}
	if backend.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", backend.Writes())
	}

	data, _, _ := backend.Get(context.Background(), Key)
	if want := `[{"name":"Plank","history":[[]]}]`; string(data) != want {
		t.Errorf("persisted = %s, want %s", data, want)
	}
}

func TestRecordWorkoutUpdatesEveryMatchingName(t *testing.T) {
	backend := kv.NewMemory()
	legacy := `[{"name":"Dip","history":[]},{"name":"Pull Up","history":[]},{"name":"Dip","history":[]}]`
	_ = backend.Set(context.Background(), Key, []byte(legacy))

	s := New(backend, nil)
	defer s.Close()
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_ = waitResult(t, s.RecordWorkout("Dip", []models.SetRecord{models.NewSetRecord("12", "0")}))

	got := s.Exercises()
	if len(got[0].History) != 1 || len(got[2].History) != 1 {
		t.Errorf("expected both Dip entries updated, got %v", got)
	}
	if len(got[1].History) != 0 {
		t.Errorf("Pull Up history changed: %v", got[1].History)
	}
}

func TestRecordWorkoutUnknownName(t *testing.T) {
	s, _ := setupTestStore(t)
	_, _ = s.AddExercise("Lunge")

	_ = waitResult(t, s.RecordWorkout("Nope", []models.SetRecord{models.NewSetRecord("1", "1")}))

	e, _ := s.Exercise("Lunge")
	if len(e.History) != 0 {
		t.Errorf("unexpected history: %v", e.History)
	}
}

func TestLoadMissingKey(t *testing.T) {
	s, _ := setupTestStore(t)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := s.Exercises()
	if got == nil || len(got) != 0 {
		t.Errorf("Exercises() = %v, want empty", got)
	}
}

func TestLoadRestoresPersistedState(t *testing.T) {
	backend := kv.NewMemory()
	first := New(backend, nil)
	_, _ = first.AddExercise("Bench Press")
	first.RecordWorkout("Bench Press", []models.SetRecord{models.NewSetRecord("5", "185")})
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := New(backend, nil)
	defer second.Close()
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	e, ok := second.Exercise("Bench Press")
	if !ok {
		t.Fatal("expected Bench Press after reload")
	}
	if len(e.History) != 1 || e.History[0].String() != "5x185" {
		t.Errorf("History = %v, want [[5x185]]", e.History)
	}
}

func TestLoadReadFailure(t *testing.T) {
	backend := kv.NewMemory()
	backend.GetErr = errors.New("io error")
	s := New(backend, nil)
	defer s.Close()

	err := s.Load(context.Background())
	if !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("error = %v, want ErrLoadFailure", err)
	}
	if n := len(s.Exercises()); n != 0 {
		t.Errorf("len(Exercises()) = %d, want 0", n)
	}
}

func TestLoadDecodeFailure(t *testing.T) {
	backend := kv.NewMemory()
	_ = backend.Set(context.Background(), Key, []byte("{not json"))
	s := New(backend, nil)
	defer s.Close()

	err := s.Load(context.Background())
	if !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("error = %v, want ErrLoadFailure", err)
	}
	if n := len(s.Exercises()); n != 0 {
		t.Errorf("len(Exercises()) = %d, want 0", n)
	}

	// The store stays usable after a failed load.
	if _, err := s.AddExercise("Press"); err != nil {
		t.Errorf("AddExercise after failed load: %v", err)
	}
}

func TestSaveFailureIsObservable(t *testing.T) {
	s, backend := setupTestStore(t)
	boom := errors.New("quota exceeded")
	backend.FailWrites(boom)

	r, err := s.AddExercise("Bench Press")
	if err != nil {
		t.Fatalf("AddExercise returned %v; save failures must not surface here", err)
	}
	err = waitResult(t, r)
	if !errors.Is(err, ErrSaveFailure) || !errors.Is(err, boom) {
		t.Errorf("persist error = %v, want ErrSaveFailure wrapping %v", err, boom)
	}

	// In-memory state is not rolled back.
	if _, ok := s.Exercise("Bench Press"); !ok {
		t.Error("expected exercise to remain in memory after save failure")
	}

	// The next mutation writes the full sequence again.
	backend.FailWrites(nil)
	r, _ = s.AddExercise("Squat")
	if err := waitResult(t, r); err != nil {
		t.Fatalf("persist failed: %v", err)
	}
	if got := persisted(t, backend); len(got) != 2 {
		t.Errorf("persisted %d exercises, want 2", len(got))
	}
}

func TestWritesLandInMutationOrder(t *testing.T) {
	s, backend := setupTestStore(t)

	var last *Result
	for i := 0; i < 50; i++ {
		r, err := s.AddExercise(string(rune('A'+i%26)) + string(rune('a'+i/26)))
		if err != nil {
			t.Fatalf("AddExercise failed: %v", err)
		}
		last = r
	}
	if err := waitResult(t, last); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	if got := persisted(t, backend); len(got) != 50 {
		t.Errorf("persisted %d exercises, want 50", len(got))
	}
}

func TestCloseDrainsAndRejectsWrites(t *testing.T) {
	backend := kv.NewMemory()
	s := New(backend, nil)

	r, _ := s.AddExercise("Bench Press")
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	select {
	case <-r.Done():
	default:
		t.Fatal("expected queued write to finish before Close returns")
	}
	if r.Err() != nil {
		t.Errorf("queued write failed: %v", r.Err())
	}

	if err := s.RecordWorkout("Bench Press", nil).Err(); !errors.Is(err, ErrClosed) {
		t.Errorf("error after Close = %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestExercisesReturnsCopy(t *testing.T) {
	s, _ := setupTestStore(t)
	_, _ = s.AddExercise("Bench Press")
	s.RecordWorkout("Bench Press", []models.SetRecord{models.NewSetRecord("10", "135")})

	got := s.Exercises()
	got[0].Name = "changed"
	got[0].History[0][0].Weight = "0"

	e, ok := s.Exercise("Bench Press")
	if !ok {
		t.Fatal("store mutated through Exercises() copy")
	}
	if e.History[0][0].Weight != "135" {
		t.Errorf("Weight = %s, want 135", e.History[0][0].Weight)
	}
}
