package usecase_test

import (
	"context"
	"sync"
	"testing"

	portmocks "github.com/bnema/webperm/internal/application/port/mocks"
	"github.com/bnema/webperm/internal/application/usecase"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/infrastructure/persistence/memory"
	"github.com/bnema/webperm/internal/infrastructure/persistence/prefstore"
	"github.com/bnema/webperm/internal/logging"
	"github.com/stretchr/testify/mock"
)

const (
	mapsOrigin = "https://maps.example"
	newsOrigin = "https://news.example"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type managerFixture struct {
	manager   *usecase.PermissionManager
	store     *prefstore.Store
	transient *memory.TransientStore
	contexts  *portmocks.MockBrowsingContextResolver
	prompter  *portmocks.MockPermissionPrompter
	prompts   *promptLog
}

// promptLog records the requests handed to the prompter.
type promptLog struct {
	mu       sync.Mutex
	requests []entity.PermissionRequest
}

func (l *promptLog) add(_ context.Context, r entity.PermissionRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, r)
}

func (l *promptLog) all() []entity.PermissionRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entity.PermissionRequest(nil), l.requests...)
}

// newManagerFixture builds a manager on real in-memory stores. Every context is alive
// and the prompter records requests without answering them.
func newManagerFixture(t *testing.T, policy entity.PersistentPermissionsPolicy) *managerFixture {
	t.Helper()

	contexts := portmocks.NewMockBrowsingContextResolver(t)
	contexts.EXPECT().IsAlive(mock.Anything).Return(true).Maybe()

	prompts := &promptLog{}
	prompter := portmocks.NewMockPermissionPrompter(t)
	prompter.EXPECT().RequestPermission(mock.Anything, mock.Anything).Run(prompts.add).Maybe()

	return newManagerFixtureWith(t, policy, prefstore.NewMemory(), contexts, prompter, prompts)
}

func newManagerFixtureWith(
	t *testing.T,
	policy entity.PersistentPermissionsPolicy,
	store *prefstore.Store,
	contexts *portmocks.MockBrowsingContextResolver,
	prompter *portmocks.MockPermissionPrompter,
	prompts *promptLog,
) *managerFixture {
	t.Helper()

	transient := memory.NewTransientStore(contexts)
	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: store,
		Transient:  transient,
		Contexts:   contexts,
		Prompter:   prompter,
	}, policy)

	return &managerFixture{
		manager:   manager,
		store:     store,
		transient: transient,
		contexts:  contexts,
		prompter:  prompter,
		prompts:   prompts,
	}
}

// stateRecorder collects the states delivered to a callback.
type stateRecorder struct {
	mu     sync.Mutex
	states []entity.PermissionState
}

func (r *stateRecorder) callback(state entity.PermissionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *stateRecorder) got() []entity.PermissionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.PermissionState(nil), r.states...)
}

// batchRecorder collects the answers delivered to a batch callback.
type batchRecorder struct {
	mu      sync.Mutex
	answers [][]entity.PermissionState
}

func (r *batchRecorder) callback(states []entity.PermissionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers = append(r.answers, states)
}

func (r *batchRecorder) got() [][]entity.PermissionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]entity.PermissionState(nil), r.answers...)
}
