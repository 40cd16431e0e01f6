package zoo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"animal-zoo/internal/domain/animals"
	"animal-zoo/internal/platform/metrics"
)

// -------------------------
// Test repo / recorder
// -------------------------

type testRepo struct {
	byID    map[string]Resident
	order   []string
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Resident{}}
}

func (r *testRepo) Create(ctx context.Context, res Resident) error {
	if res.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[res.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[res.ID] = res
	r.order = append(r.order, res.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, res Resident) error {
	if _, ok := r.byID[res.ID]; !ok {
		return ErrNotFound
	}
	r.byID[res.ID] = res
	r.updates++
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Resident, error) {
	res, ok := r.byID[id]
	if !ok {
		return Resident{}, ErrNotFound
	}
	return res, nil
}

func (r *testRepo) List(ctx context.Context) ([]Resident, error) {
	out := make([]Resident, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

type recorded struct {
	residentID, action, message string
}

type testRecorder struct {
	entries []recorded
	err     error
}

func (r *testRecorder) Record(ctx context.Context, residentID, action, message string) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, recorded{residentID, action, message})
	return nil
}

func newTestService(t *testing.T) (*Service, *testRepo, *testRecorder, *metrics.Metrics) {
	t.Helper()

	repo := newTestRepo()
	rec := &testRecorder{}
	m := metrics.New()
	svc := NewService(repo, WithJournal(rec), WithMetrics(m))

	clock := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, repo, rec, m
}

// counterValue lee un contador con una sola etiqueta del registry.
func counterValue(t *testing.T, m *metrics.Metrics, name, label string) float64 {
	t.Helper()

	families, err := m.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetValue() == label {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// -------------------------
// Tests
// -------------------------

func TestAdmit_CreatesThroughFactory(t *testing.T) {
	svc, _, rec, m := newTestService(t)
	ctx := context.Background()

	res, err := svc.Admit(ctx, "CAT", "Vaska", 4, "black")
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if res.ID == "" || res.Animal.Kind() != animals.KindCat {
		t.Fatalf("unexpected resident: %+v", res)
	}
	if !res.AdmittedAt.Equal(res.UpdatedAt) {
		t.Fatalf("expected AdmittedAt == UpdatedAt on admission")
	}

	if len(rec.entries) != 1 || rec.entries[0].action != ActionAdmitted {
		t.Fatalf("expected one admitted entry, got %+v", rec.entries)
	}
	if rec.entries[0].message != "Cat Vaska, age: 4, health: 100" {
		t.Fatalf("unexpected journal message: %q", rec.entries[0].message)
	}

	if v := counterValue(t, m, "zoo_residents_admitted_total", "cat"); v != 1 {
		t.Fatalf("expected admitted{cat}=1, got %v", v)
	}
}

func TestAdmit_FactoryErrorsPassThrough(t *testing.T) {
	svc, repo, rec, m := newTestService(t)
	ctx := context.Background()

	_, err := svc.Admit(ctx, "fish", "Nemo", 1)
	if !errors.Is(err, animals.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if err.Error() != "Unknown animal type: fish" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	_, err = svc.Admit(ctx, "dog", "Rex")
	if !errors.Is(err, animals.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}

	if len(repo.byID) != 0 || len(rec.entries) != 0 {
		t.Fatalf("rejected admissions must not be stored nor journaled")
	}
	if v := counterValue(t, m, "zoo_admissions_rejected_total", "unknown_kind"); v != 1 {
		t.Fatalf("expected rejected{unknown_kind}=1, got %v", v)
	}
	if v := counterValue(t, m, "zoo_admissions_rejected_total", "invalid_args"); v != 1 {
		t.Fatalf("expected rejected{invalid_args}=1, got %v", v)
	}
}

func TestAdmitAnimal_Nil(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	if _, err := svc.AdmitAnimal(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPerform_PersistsOnlyWhenMutated(t *testing.T) {
	svc, repo, rec, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.AdmitAnimal(ctx, animals.NewDog("Rex", 5, "doberman"))
	if err != nil {
		t.Fatalf("admit: %v", err)
	}

	out, err := svc.Perform(ctx, res.ID, Command{Action: ActionSound})
	if err != nil {
		t.Fatalf("sound: %v", err)
	}
	if out.Message != "Rex barks: Woof-woof!" || repo.updates != 0 {
		t.Fatalf("unexpected sound outcome: %q updates=%d", out.Message, repo.updates)
	}

	out, err = svc.Perform(ctx, res.ID, Command{Action: ActionLearnTrick, Trick: "sit"})
	if err != nil {
		t.Fatalf("learn_trick: %v", err)
	}
	if out.Message != "Rex learned a new trick: sit" || repo.updates != 1 {
		t.Fatalf("unexpected learn outcome: %q updates=%d", out.Message, repo.updates)
	}
	if !out.Resident.UpdatedAt.After(out.Resident.AdmittedAt) {
		t.Fatalf("expected UpdatedAt to move forward")
	}

	// segunda vez: no cambia nada, no se persiste
	out, err = svc.Perform(ctx, res.ID, Command{Action: ActionLearnTrick, Trick: "sit"})
	if err != nil {
		t.Fatalf("learn_trick again: %v", err)
	}
	if out.Message != "Rex already knows the trick sit" || repo.updates != 1 {
		t.Fatalf("unexpected relearn outcome: %q updates=%d", out.Message, repo.updates)
	}

	out, err = svc.Perform(ctx, res.ID, Command{Action: ActionTricks})
	if err != nil {
		t.Fatalf("tricks: %v", err)
	}
	if out.Message != "Rex knows: sit" || repo.updates != 1 {
		t.Fatalf("unexpected tricks outcome: %q updates=%d", out.Message, repo.updates)
	}

	// admitted + sound + learn + relearn + tricks
	if len(rec.entries) != 5 {
		t.Fatalf("expected 5 journal entries, got %d", len(rec.entries))
	}
}

func TestPerform_Errors(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	cat, _ := svc.AdmitAnimal(ctx, animals.NewCat("Murka", 2, "white"))
	bird, _ := svc.AdmitAnimal(ctx, animals.NewBird("Kesha", 1, 0.3))

	cases := []struct {
		name string
		id   string
		cmd  Command
		want error
	}{
		{"missing id", " ", Command{Action: ActionSound}, ErrInvalidInput},
		{"missing action", cat.ID, Command{}, ErrInvalidInput},
		{"not found", "nope", Command{Action: ActionSound}, ErrNotFound},
		{"cat cannot fly", cat.ID, Command{Action: ActionFly}, ErrUnsupportedAction},
		{"bird cannot purr", bird.ID, Command{Action: ActionPurr}, ErrUnsupportedAction},
		{"cat has no tricks", cat.ID, Command{Action: ActionTricks}, ErrUnsupportedAction},
		{"unknown action", bird.ID, Command{Action: "dance"}, ErrUnsupportedAction},
		{"eat without food", cat.ID, Command{Action: ActionEat, Food: "  "}, ErrInvalidInput},
		{"fly ability without value", bird.ID, Command{Action: ActionSetFlyAbility}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Perform(ctx, tc.id, tc.cmd); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPerform_SetFlyAbilityJournalsState(t *testing.T) {
	svc, _, rec, _ := newTestService(t)
	ctx := context.Background()

	bird, _ := svc.AdmitAnimal(ctx, animals.NewBird("Gosha", 2, 0.7))

	no := false
	out, err := svc.Perform(ctx, bird.ID, Command{Action: ActionSetFlyAbility, CanFly: &no})
	if err != nil {
		t.Fatalf("set_fly_ability: %v", err)
	}
	if out.Message != "" {
		t.Fatalf("expected empty message, got %q", out.Message)
	}
	last := rec.entries[len(rec.entries)-1]
	if last.message != "Gosha can_fly=false" {
		t.Fatalf("unexpected journal message: %q", last.message)
	}

	out, _ = svc.Perform(ctx, bird.ID, Command{Action: ActionFly})
	if out.Message != "Gosha cannot fly" {
		t.Fatalf("unexpected fly message: %q", out.Message)
	}
}

func TestPerform_JournalFailureIsNotFatal(t *testing.T) {
	svc, _, rec, _ := newTestService(t)
	ctx := context.Background()

	dog, _ := svc.AdmitAnimal(ctx, animals.NewDog("Sharik", 3, "mongrel"))
	rec.err = errors.New("journal down")

	if _, err := svc.Perform(ctx, dog.ID, Command{Action: ActionMove}); err != nil {
		t.Fatalf("expected no error when journal fails, got %v", err)
	}
}

func TestCensusAndConcert(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	census, err := svc.Census(ctx)
	if err != nil {
		t.Fatalf("census: %v", err)
	}
	for _, k := range animals.Kinds() {
		if n, ok := census[k]; !ok || n != 0 {
			t.Fatalf("expected %s=0 in empty census, got %v", k, census)
		}
	}

	for _, a := range []animals.Animal{
		animals.NewDog("Rex", 5, "doberman"),
		animals.NewCat("Vaska", 4, "black"),
		animals.NewBird("Gosha", 2, 0.7),
		animals.NewDog("Sharik", 3, "mongrel"),
	} {
		if _, err := svc.AdmitAnimal(ctx, a); err != nil {
			t.Fatalf("admit %s: %v", a.Name(), err)
		}
	}

	census, _ = svc.Census(ctx)
	if census[animals.KindDog] != 2 || census[animals.KindCat] != 1 || census[animals.KindBird] != 1 {
		t.Fatalf("unexpected census: %v", census)
	}

	sounds, err := svc.Concert(ctx)
	if err != nil {
		t.Fatalf("concert: %v", err)
	}
	want := "Rex barks: Woof-woof!|Vaska meows: Meow-meow!|Gosha sings: Tweet-tweet!|Sharik barks: Woof-woof!"
	if got := strings.Join(sounds, "|"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	roster := func() []animals.Animal {
		return []animals.Animal{
			animals.NewDog("Rex", 5, "doberman"),
			animals.NewCat("Vaska", 4, "black"),
		}
	}

	n, err := svc.Seed(ctx, roster())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 || len(repo.byID) != 2 {
		t.Fatalf("expected 2 admitted, got n=%d stored=%d", n, len(repo.byID))
	}

	// un reinicio con el mismo registro no duplica el roster
	n, err = svc.Seed(ctx, roster())
	if err != nil {
		t.Fatalf("seed again: %v", err)
	}
	if n != 0 || len(repo.byID) != 2 {
		t.Fatalf("expected no new residents, got n=%d stored=%d", n, len(repo.byID))
	}
}
