package school

import (
	"context"
	"errors"
	"strings"
)

var (
	// errors
	ErrNotFound          = errors.New("record not found")
	ErrMissingTimestamp  = errors.New("score has no timestamp and cannot be modified")
	ErrSourceUnavailable = errors.New("data source unavailable")
)

// RemoteError is a failure reported by the data source itself, carrying the
// message it chose; that message is shown to the portal user as-is.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

type (
	// Source provides the school's tables and accepts score mutations.
	// Implementations decide where each table actually comes from; callers
	// only see decoded entities.
	Source interface {
		Teachers(ctx context.Context) ([]Teacher, error)
		Students(ctx context.Context) ([]Student, error)
		Principals(ctx context.Context) ([]Principal, error)
		Curriculum(ctx context.Context) ([]CurriculumItem, error)
		Billing(ctx context.Context) ([]BillingItem, error)
		// Scores always reflects the live table, never a stale export:
		// a teacher saving a score must see it on the next read.
		Scores(ctx context.Context) ([]Score, error)
		CreateScore(ctx context.Context, score Score) error
		EditScore(ctx context.Context, score Score) error
		DeleteScore(ctx context.Context, timestamp string) error
	}

	Service struct {
		source Source
	}
)

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (svc *Service) Teachers(ctx context.Context) ([]Teacher, error) {
	return svc.source.Teachers(ctx)
}

func (svc *Service) Students(ctx context.Context) ([]Student, error) {
	return svc.source.Students(ctx)
}

func (svc *Service) Curriculum(ctx context.Context) ([]CurriculumItem, error) {
	return svc.source.Curriculum(ctx)
}

// CurriculumFor returns the assessable menu for a category, optionally
// narrowed to a semester ("" keeps both).
func (svc *Service) CurriculumFor(ctx context.Context, category Category, semester string) ([]CurriculumItem, error) {
	items, err := svc.source.Curriculum(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCurriculum(items, category, semester), nil
}

func (svc *Service) Billing(ctx context.Context) ([]BillingItem, error) {
	return svc.source.Billing(ctx)
}

// BillingForStudent returns a student's ledger rows, most context is in the
// rows themselves so no further shaping happens here.
func (svc *Service) BillingForStudent(ctx context.Context, nisn string) ([]BillingItem, error) {
	items, err := svc.source.Billing(ctx)
	if err != nil {
		return nil, err
	}
	nisn = strings.TrimSpace(nisn)
	matched := make([]BillingItem, 0, len(items))
	for _, item := range items {
		if item.NISN == nisn {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (svc *Service) Scores(ctx context.Context) ([]Score, error) {
	return svc.source.Scores(ctx)
}

func (svc *Service) ScoresForStudent(ctx context.Context, nisn string) ([]Score, error) {
	scores, err := svc.source.Scores(ctx)
	if err != nil {
		return nil, err
	}
	nisn = strings.TrimSpace(nisn)
	matched := make([]Score, 0, len(scores))
	for _, score := range scores {
		if score.StudentID == nisn {
			matched = append(matched, score)
		}
	}
	return matched, nil
}

// Login lookups. Identity cells are hand-typed into the sheets, so matching
// trims whitespace but deliberately does nothing smarter: "0811 111 111" and
// "0811111111" are different credentials.

func (svc *Service) TeacherByPhone(ctx context.Context, phone string) (Teacher, error) {
	teachers, err := svc.source.Teachers(ctx)
	if err != nil {
		return Teacher{}, err
	}
	phone = strings.TrimSpace(phone)
	for _, t := range teachers {
		if t.Phone == phone {
			return t, nil
		}
	}
	return Teacher{}, ErrNotFound
}

func (svc *Service) StudentByNISN(ctx context.Context, nisn string) (Student, error) {
	students, err := svc.source.Students(ctx)
	if err != nil {
		return Student{}, err
	}
	nisn = strings.TrimSpace(nisn)
	for _, s := range students {
		if s.NISN == nisn {
			return s, nil
		}
	}
	return Student{}, ErrNotFound
}

func (svc *Service) PrincipalByPhone(ctx context.Context, phone string) (Principal, error) {
	principals, err := svc.source.Principals(ctx)
	if err != nil {
		return Principal{}, err
	}
	phone = strings.TrimSpace(phone)
	for _, p := range principals {
		if p.Phone == phone {
			return p, nil
		}
	}
	return Principal{}, ErrNotFound
}

// Principal returns the school's principal; the sheet holds a single row and
// only the first counts.
func (svc *Service) Principal(ctx context.Context) (Principal, error) {
	principals, err := svc.source.Principals(ctx)
	if err != nil {
		return Principal{}, err
	}
	if len(principals) == 0 {
		return Principal{}, ErrNotFound
	}
	return principals[0], nil
}

func (svc *Service) StudentsByClass(ctx context.Context, class string) ([]Student, error) {
	students, err := svc.source.Students(ctx)
	if err != nil {
		return nil, err
	}
	class = strings.TrimSpace(class)
	matched := make([]Student, 0, len(students))
	for _, s := range students {
		if s.Class == class {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// Mutations. Payloads are validated locally first so a malformed score never
// reaches the wire.

func (svc *Service) CreateScore(ctx context.Context, ns NewScore) error {
	if err := ns.Validate(); err != nil {
		return err
	}
	return svc.source.CreateScore(ctx, ns.score())
}

func (svc *Service) EditScore(ctx context.Context, us UpdateScore) error {
	if err := us.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(us.Timestamp) == "" {
		return ErrMissingTimestamp
	}
	return svc.source.EditScore(ctx, us.score())
}

func (svc *Service) DeleteScore(ctx context.Context, timestamp string) error {
	if strings.TrimSpace(timestamp) == "" {
		return ErrMissingTimestamp
	}
	return svc.source.DeleteScore(ctx, strings.TrimSpace(timestamp))
}
