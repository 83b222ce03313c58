package match

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

var (
	_ userDirectory = &userDirectoryMock{}
	_ matchRepo     = &matchRepoMock{}
	_ txManager     = &txManagerMock{}
	_ recorder      = &recorderMock{}
)

// ---------------------------------------------------------------------------
// userDirectoryMock
// ---------------------------------------------------------------------------

type userDirectoryMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListExcludingFunc func(ctx context.Context, id uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListExcluding []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockListExcluding sync.RWMutex
}

func (mock *userDirectoryMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userDirectoryMock.GetByIDFunc: method is nil but userDirectory.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userDirectoryMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userDirectoryMock) ListExcluding(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	if mock.ListExcludingFunc == nil {
		panic("userDirectoryMock.ListExcludingFunc: method is nil but userDirectory.ListExcluding was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockListExcluding.Lock()
	mock.calls.ListExcluding = append(mock.calls.ListExcluding, callInfo)
	mock.lockListExcluding.Unlock()
	return mock.ListExcludingFunc(ctx, id)
}

func (mock *userDirectoryMock) ListExcludingCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockListExcluding.RLock()
	calls := mock.calls.ListExcluding
	mock.lockListExcluding.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// matchRepoMock
// ---------------------------------------------------------------------------

type matchRepoMock struct {
	GetByPairFunc        func(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error)
	InsertIfAbsentFunc   func(ctx context.Context, m domain.Match) (*domain.Match, bool, error)
	UpsertPreferenceFunc func(ctx context.Context, m domain.Match) (*domain.Match, error)
	ListBySubjectFunc    func(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error)

	calls struct {
		GetByPair []struct {
			SubjectID   uuid.UUID
			CandidateID uuid.UUID
		}
		InsertIfAbsent   []struct{ M domain.Match }
		UpsertPreference []struct{ M domain.Match }
		ListBySubject    []struct{ SubjectID uuid.UUID }
	}
	lockGetByPair        sync.RWMutex
	lockInsertIfAbsent   sync.RWMutex
	lockUpsertPreference sync.RWMutex
	lockListBySubject    sync.RWMutex
}

func (mock *matchRepoMock) GetByPair(ctx context.Context, subjectID, candidateID uuid.UUID) (*domain.Match, error) {
	if mock.GetByPairFunc == nil {
		panic("matchRepoMock.GetByPairFunc: method is nil but matchRepo.GetByPair was just called")
	}
	callInfo := struct {
		SubjectID   uuid.UUID
		CandidateID uuid.UUID
	}{SubjectID: subjectID, CandidateID: candidateID}
	mock.lockGetByPair.Lock()
	mock.calls.GetByPair = append(mock.calls.GetByPair, callInfo)
	mock.lockGetByPair.Unlock()
	return mock.GetByPairFunc(ctx, subjectID, candidateID)
}

func (mock *matchRepoMock) GetByPairCalls() []struct {
	SubjectID   uuid.UUID
	CandidateID uuid.UUID
} {
	mock.lockGetByPair.RLock()
	calls := mock.calls.GetByPair
	mock.lockGetByPair.RUnlock()
	return calls
}

func (mock *matchRepoMock) InsertIfAbsent(ctx context.Context, m domain.Match) (*domain.Match, bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("matchRepoMock.InsertIfAbsentFunc: method is nil but matchRepo.InsertIfAbsent was just called")
	}
	mock.lockInsertIfAbsent.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, struct{ M domain.Match }{M: m})
	mock.lockInsertIfAbsent.Unlock()
	return mock.InsertIfAbsentFunc(ctx, m)
}

func (mock *matchRepoMock) InsertIfAbsentCalls() []struct{ M domain.Match } {
	mock.lockInsertIfAbsent.RLock()
	calls := mock.calls.InsertIfAbsent
	mock.lockInsertIfAbsent.RUnlock()
	return calls
}

func (mock *matchRepoMock) UpsertPreference(ctx context.Context, m domain.Match) (*domain.Match, error) {
	if mock.UpsertPreferenceFunc == nil {
		panic("matchRepoMock.UpsertPreferenceFunc: method is nil but matchRepo.UpsertPreference was just called")
	}
	mock.lockUpsertPreference.Lock()
	mock.calls.UpsertPreference = append(mock.calls.UpsertPreference, struct{ M domain.Match }{M: m})
	mock.lockUpsertPreference.Unlock()
	return mock.UpsertPreferenceFunc(ctx, m)
}

func (mock *matchRepoMock) UpsertPreferenceCalls() []struct{ M domain.Match } {
	mock.lockUpsertPreference.RLock()
	calls := mock.calls.UpsertPreference
	mock.lockUpsertPreference.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Match, error) {
	if mock.ListBySubjectFunc == nil {
		panic("matchRepoMock.ListBySubjectFunc: method is nil but matchRepo.ListBySubject was just called")
	}
	mock.lockListBySubject.Lock()
	mock.calls.ListBySubject = append(mock.calls.ListBySubject, struct{ SubjectID uuid.UUID }{SubjectID: subjectID})
	mock.lockListBySubject.Unlock()
	return mock.ListBySubjectFunc(ctx, subjectID)
}

func (mock *matchRepoMock) ListBySubjectCalls() []struct{ SubjectID uuid.UUID } {
	mock.lockListBySubject.RLock()
	calls := mock.calls.ListBySubject
	mock.lockListBySubject.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// recorderMock
// ---------------------------------------------------------------------------

type recorderMock struct {
	mu          sync.Mutex
	operations  map[string]int
	failures    map[string]int
	scored      []int
	created     int
	preferences map[domain.MatchPreference]int
}

func newRecorderMock() *recorderMock {
	return &recorderMock{
		operations:  map[string]int{},
		failures:    map[string]int{},
		preferences: map[domain.MatchPreference]int{},
	}
}

func (r *recorderMock) ObserveOperation(operation string, _ time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations[operation]++
	if err != nil {
		r.failures[operation]++
	}
}

func (r *recorderMock) CandidatesScored(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scored = append(r.scored, n)
}

func (r *recorderMock) MatchCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *recorderMock) PreferenceSet(p domain.MatchPreference) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferences[p]++
}
