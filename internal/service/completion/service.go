package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
	mediarepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/media"
	profilerepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/profile"
)

// Возможные ошибки сервиса
var (
	ErrInvalidCohort = errors.New("invalid cohort")
)

// Trace sources
const (
	SourceStored  = "stored"
	SourcePreview = "preview"
)

type ProfileRepository interface {
	GetRecord(ctx context.Context, userID int) (*profilerepo.Record, error)
	GetLanguageSkills(ctx context.Context, userID int) ([]profilerepo.LanguageSkill, error)
}

type MediaRepository interface {
	GetProfileImages(ctx context.Context, userID int) ([]mediarepo.Image, error)
}

// URLResolver turns storage keys of uploaded images into URLs
type URLResolver interface {
	GetFileURL(fileName string) string
}

// Completion is a scored snapshot tagged with the id of the computation
type Completion struct {
	TraceID string `json:"trace_id"`
	scoring.Result
}

// CompletionServiceImpl assembles profile snapshots and scores them
type CompletionServiceImpl struct {
	profileRepo ProfileRepository
	mediaRepo   MediaRepository
	storage     URLResolver
	classifier  *Classifier
	observer    Observer
}

// NewCompletionService creates a new completion service. storage and
// observer may be nil.
func NewCompletionService(profileRepo ProfileRepository, mediaRepo MediaRepository, storage URLResolver, classifier *Classifier, observer Observer) *CompletionServiceImpl {
	if classifier == nil {
		classifier = NewClassifier("")
	}
	return &CompletionServiceImpl{
		profileRepo: profileRepo,
		mediaRepo:   mediaRepo,
		storage:     storage,
		classifier:  classifier,
		observer:    observer,
	}
}

// GetCompletion scores the persisted profile of a user. cohort forces the
// checklist when not empty.
func (s *CompletionServiceImpl) GetCompletion(ctx context.Context, userID int, cohort string) (*Completion, error) {
	return s.compute(ctx, userID, nil, cohort, SourceStored)
}

// PreviewCompletion scores unsaved edits merged over the persisted profile
func (s *CompletionServiceImpl) PreviewCompletion(ctx context.Context, userID int, edits EditBuffer, cohort string) (*Completion, error) {
	return s.compute(ctx, userID, &edits, cohort, SourcePreview)
}

// Checklist returns the items a cohort is scored on
func (s *CompletionServiceImpl) Checklist(cohort string) ([]scoring.Item, error) {
	c, err := scoring.ParseCohort(cohort)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCohort, cohort)
	}
	return scoring.Checklist(c), nil
}

func (s *CompletionServiceImpl) compute(ctx context.Context, userID int, edits *EditBuffer, forced string, source string) (*Completion, error) {
	var cohort scoring.Cohort
	if forced != "" {
		c, err := scoring.ParseCohort(forced)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCohort, forced)
		}
		cohort = c
	}

	loadImages := edits == nil || edits.Images == nil
	stored, err := s.loadStored(ctx, userID, loadImages)
	if err != nil {
		return nil, err
	}

	d := mergeDraft(stored, edits)
	if cohort == "" {
		cohort = s.classifier.Classify(d.snapshot.Gender, d.snapshot.Nationality)
	}

	trace := Trace{
		ID:     uuid.NewString(),
		UserID: userID,
		Source: source,
	}

	var scorer *scoring.Scorer
	if s.observer != nil {
		scorer = scoring.NewScorer(traceObserver{trace: trace, observer: s.observer})
	} else {
		scorer = scoring.NewScorer(nil)
	}

	result := scorer.Score(d.snapshotFor(cohort), cohort)

	return &Completion{
		TraceID: trace.ID,
		Result:  result,
	}, nil
}

// loadStored reads everything persisted about a user. A user without a
// profile record yields an empty Stored.
func (s *CompletionServiceImpl) loadStored(ctx context.Context, userID int, loadImages bool) (Stored, error) {
	record, err := s.profileRepo.GetRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, profilerepo.ErrProfileNotExists) {
			return Stored{}, nil
		}
		return Stored{}, err
	}

	skills, err := s.profileRepo.GetLanguageSkills(ctx, userID)
	if err != nil {
		return Stored{}, err
	}

	stored := Stored{
		Record: record,
		Skills: skills,
	}

	if loadImages {
		rows, err := s.mediaRepo.GetProfileImages(ctx, userID)
		if err != nil {
			return Stored{}, err
		}
		stored.Images = imagesFromRows(rows, s.storage)
	}

	return stored, nil
}
