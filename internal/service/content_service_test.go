package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/repository"
	"gorm.io/gorm"
)

// Fakes embed the repository interface so only the methods a test exercises
// need overriding; anything else panics loudly.

type fakeUnitRepo struct {
	repository.UnitRepository
	unit *model.Unit
}

func (f *fakeUnitRepo) FindByIDWithWords(id uint) (*model.Unit, error) {
	if f.unit == nil || f.unit.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.unit, nil
}

type fakeContentRepo struct {
	repository.ContentRepository
	latest  *model.GeneratedContent
	created []*model.GeneratedContent
}

func (f *fakeContentRepo) Create(content *model.GeneratedContent) error {
	f.created = append(f.created, content)
	f.latest = content
	return nil
}

func (f *fakeContentRepo) FindLatest(unitID uint, kind string) (*model.GeneratedContent, error) {
	if f.latest == nil || f.latest.UnitID != unitID || f.latest.Kind != kind {
		return nil, gorm.ErrRecordNotFound
	}
	return f.latest, nil
}

type stubGenerator struct {
	payload string
	err     error
}

func (s *stubGenerator) GenerateEnrichment(_ context.Context, _ []model.Word) (string, error) {
	return s.payload, s.err
}

func (s *stubGenerator) GenerateReading(_ context.Context, _ []model.Word) (string, error) {
	return s.payload, s.err
}

func testUnit() *model.Unit {
	return &model.Unit{
		ID:       7,
		TestType: "ssat",
		Sequence: 1,
		Title:    "Unit 1",
		Words:    []model.Word{{Text: "abate"}, {Text: "candid"}},
	}
}

func TestContentServiceRejectsUnknownKind(t *testing.T) {
	svc := NewContentService(&fakeUnitRepo{}, &fakeContentRepo{}, &stubGenerator{})

	if _, err := svc.Get(7, "poetry"); !errors.Is(err, ErrUnknownContentKind) {
		t.Errorf("Get: got %v, want ErrUnknownContentKind", err)
	}
	if _, err := svc.Generate(context.Background(), 7, "poetry"); !errors.Is(err, ErrUnknownContentKind) {
		t.Errorf("Generate: got %v, want ErrUnknownContentKind", err)
	}
}

func TestContentServiceGetWithoutCache(t *testing.T) {
	svc := NewContentService(&fakeUnitRepo{unit: testUnit()}, &fakeContentRepo{}, &stubGenerator{})

	if _, err := svc.Get(7, model.ContentKindEnrichment); !errors.Is(err, ErrNoContent) {
		t.Errorf("got %v, want ErrNoContent", err)
	}
}

func TestContentServiceGenerateCachesResult(t *testing.T) {
	contentRepo := &fakeContentRepo{}
	svc := NewContentService(&fakeUnitRepo{unit: testUnit()}, contentRepo, &stubGenerator{payload: `{"words":[]}`})

	out, err := svc.Generate(context.Background(), 7, model.ContentKindEnrichment)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.FromCache {
		t.Error("fresh generation must not be marked FromCache")
	}
	if len(contentRepo.created) != 1 {
		t.Fatalf("cached %d rows, want 1", len(contentRepo.created))
	}

	// The cached row now serves reads.
	got, err := svc.Get(7, model.ContentKindEnrichment)
	if err != nil {
		t.Fatalf("Get after generate: %v", err)
	}
	if string(got.Payload) != `{"words":[]}` {
		t.Errorf("cached payload = %s", got.Payload)
	}
}

func TestContentServiceGenerateFallsBackToCache(t *testing.T) {
	contentRepo := &fakeContentRepo{latest: &model.GeneratedContent{
		UnitID: 7, Kind: model.ContentKindReading, Payload: `{"passage":"old"}`,
	}}
	svc := NewContentService(&fakeUnitRepo{unit: testUnit()}, contentRepo,
		&stubGenerator{err: errors.New("rate limited")})

	out, err := svc.Generate(context.Background(), 7, model.ContentKindReading)
	if err != nil {
		t.Fatalf("Generate with cache fallback: %v", err)
	}
	if !out.FromCache {
		t.Error("fallback result must be marked FromCache")
	}
	if string(out.Payload) != `{"passage":"old"}` {
		t.Errorf("payload = %s, want cached payload", out.Payload)
	}
}

func TestContentServiceGenerateFailsWithoutFallback(t *testing.T) {
	svc := NewContentService(&fakeUnitRepo{unit: testUnit()}, &fakeContentRepo{},
		&stubGenerator{err: errors.New("rate limited")})

	if _, err := svc.Generate(context.Background(), 7, model.ContentKindReading); !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("got %v, want ErrGenerationFailed", err)
	}
}

func TestContentServiceGenerateEmptyUnit(t *testing.T) {
	empty := testUnit()
	empty.Words = nil
	svc := NewContentService(&fakeUnitRepo{unit: empty}, &fakeContentRepo{}, &stubGenerator{payload: "{}"})

	if _, err := svc.Generate(context.Background(), 7, model.ContentKindEnrichment); !errors.Is(err, ErrNoContent) {
		t.Errorf("got %v, want ErrNoContent", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
