package usecase_test

import (
	"testing"

	"github.com/bnema/webperm/internal/application/port"
	portmocks "github.com/bnema/webperm/internal/application/port/mocks"
	"github.com/bnema/webperm/internal/application/usecase"
	"github.com/bnema/webperm/internal/domain/entity"
	repomocks "github.com/bnema/webperm/internal/domain/repository/mocks"
	"github.com/bnema/webperm/internal/infrastructure/persistence/memory"
	"github.com/bnema/webperm/internal/infrastructure/persistence/prefstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPermissionManager_SetThenQuery(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)

	for _, state := range []entity.PermissionState{entity.PermissionGranted, entity.PermissionDenied, entity.PermissionAsk} {
		f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, state, entity.NoContext)
		assert.Equal(t, state, f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.NoContext))
	}
}

func TestPermissionManager_SetNormalizesOrigin(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)

	f.manager.SetPermission(ctx, "HTTPS://Maps.Example:443/some/path?q=1", entity.PermissionTypeGeolocation, entity.PermissionGranted, entity.NoContext)

	assert.Equal(t, entity.PermissionGranted, f.store.Get(ctx, entity.PermissionTypeGeolocation, mapsOrigin))
}

func TestPermissionManager_InvalidInputs(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)

	assert.Equal(t, entity.PermissionInvalid,
		f.manager.QueryPermissionState(ctx, "not a url", entity.PermissionTypeGeolocation, entity.NoContext))
	assert.Equal(t, entity.PermissionInvalid,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeUnsupported, entity.NoContext))
	assert.Equal(t, entity.PermissionInvalid,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionType("bogus"), entity.NoContext))

	f.manager.SetPermission(ctx, "not a url", entity.PermissionTypeGeolocation, entity.PermissionGranted, entity.NoContext)
	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeUnsupported, entity.PermissionGranted, entity.NoContext)
	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.PermissionInvalid, entity.NoContext)
	f.manager.SetPermission(ctx, "https://a.test:99999", entity.PermissionTypeGeolocation, entity.PermissionGranted, entity.NoContext)
	f.manager.SetPermission(ctx, "https://a.test:0", entity.PermissionTypeNotifications, entity.PermissionDenied, entity.NoContext)
	assert.Empty(t, f.store.Snapshot())
	assert.Equal(t, entity.PermissionInvalid,
		f.manager.QueryPermissionState(ctx, "https://a.test:99999", entity.PermissionTypeGeolocation, entity.NoContext))
}

func TestPermissionManager_RequestAnsweredFromStore(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)
	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.PermissionDenied, entity.NoContext)

	rec := &stateRecorder{}
	_, pending := f.manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, token, rec.callback)

	assert.False(t, pending)
	assert.Equal(t, []entity.PermissionState{entity.PermissionDenied}, rec.got())
	assert.Empty(t, f.prompts.all())
}

func TestPermissionManager_RequestInvalidOriginDenied(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)

	rec := &stateRecorder{}
	_, pending := f.manager.RequestPermission(ctx, "", entity.PermissionTypeGeolocation, entity.NewContextToken(1), rec.callback)

	assert.False(t, pending)
	assert.Equal(t, []entity.PermissionState{entity.PermissionDenied}, rec.got())
	assert.Empty(t, f.prompts.all())
}

func TestPermissionManager_RequestPromptsAndResolves(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)

	first := &stateRecorder{}
	second := &stateRecorder{}
	id1, pending1 := f.manager.RequestPermission(ctx, mapsOrigin+"/here", entity.PermissionTypeGeolocation, token, first.callback)
	id2, pending2 := f.manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, token, second.callback)

	require.True(t, pending1)
	require.True(t, pending2)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, f.manager.PendingRequests())

	prompts := f.prompts.all()
	require.Len(t, prompts, 1, "identical requests share one prompt")
	assert.Equal(t, entity.PermissionRequest{Origin: mapsOrigin, Type: entity.PermissionTypeGeolocation, Token: token}, prompts[0])
	assert.Empty(t, first.got())

	f.manager.PermissionFor(prompts[0]).Grant(ctx)

	assert.Equal(t, []entity.PermissionState{entity.PermissionGranted}, first.got())
	assert.Equal(t, []entity.PermissionState{entity.PermissionGranted}, second.got())
	assert.Equal(t, 0, f.manager.PendingRequests())
	assert.Equal(t, entity.PermissionGranted, f.store.Get(ctx, entity.PermissionTypeGeolocation, mapsOrigin))
}

func TestPermissionManager_ResetKeepsRequestsPending(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)

	rec := &stateRecorder{}
	_, pending := f.manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeNotifications, token, rec.callback)
	require.True(t, pending)

	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeNotifications, entity.PermissionAsk, token)

	assert.Empty(t, rec.got())
	assert.Equal(t, 1, f.manager.PendingRequests())
}

func TestPermissionManager_CallbackMayReenter(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)

	var seen entity.PermissionState
	_, pending := f.manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, token, func(entity.PermissionState) {
		seen = f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.NoContext)
	})
	require.True(t, pending)

	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.PermissionGranted, token)

	assert.Equal(t, entity.PermissionGranted, seen)
}

func TestPermissionManager_NoPrompterKeepsRequestPending(t *testing.T) {
	ctx := testContext()
	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: prefstore.NewMemory(),
		Transient:  memory.NewTransientStore(nil),
	}, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)

	rec := &stateRecorder{}
	_, pending := manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, token, rec.callback)
	assert.True(t, pending)

	prompts := &promptLog{}
	prompter := portmocks.NewMockPermissionPrompter(t)
	prompter.EXPECT().RequestPermission(mock.Anything, mock.Anything).Run(prompts.add).Once()
	manager.SetPrompter(prompter)

	_, pending = manager.RequestPermission(ctx, newsOrigin, entity.PermissionTypeGeolocation, token, rec.callback)
	assert.True(t, pending)
	require.Len(t, prompts.all(), 1)
	assert.Equal(t, newsOrigin, prompts.all()[0].Origin)
}

func TestPermissionManager_TransientIsolation(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyAskEveryTime)
	first := entity.NewContextToken(1)
	second := entity.NewContextToken(2)

	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.PermissionGranted, first)

	assert.Equal(t, entity.PermissionGranted,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, first))
	assert.Equal(t, entity.PermissionAsk,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, second))
	assert.Equal(t, entity.PermissionAsk,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.NoContext))
	assert.Empty(t, f.store.Snapshot(), "nothing reaches the persistent store")
}

func TestPermissionManager_NonPersistentTypesAreContextBound(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreOnDisk)
	first := entity.NewContextToken(1)
	second := entity.NewContextToken(2)

	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeMouseLock, entity.PermissionGranted, first)
	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeGeolocation, entity.PermissionGranted, first)

	assert.Equal(t, entity.PermissionAsk,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeMouseLock, second))
	assert.Equal(t, entity.PermissionGranted,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeGeolocation, second),
		"persistent types are shared across contexts")
}

func TestPermissionManager_CrossOriginNavigationInvalidates(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyAskEveryTime)
	token := entity.NewContextToken(1)

	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeMouseLock, entity.PermissionGranted, token)

	f.manager.NotifyCrossOriginNavigation(ctx, token, mapsOrigin+"/other/page")
	assert.Equal(t, entity.PermissionGranted,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeMouseLock, token))

	f.manager.NotifyCrossOriginNavigation(ctx, token, newsOrigin)
	assert.Equal(t, entity.PermissionAsk,
		f.manager.QueryPermissionState(ctx, mapsOrigin, entity.PermissionTypeMouseLock, token))
}

func TestPermissionManager_PreGrantMovesToTransientStore(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyAskEveryTime)
	token := entity.NewContextToken(1)
	other := entity.NewContextToken(2)
	f.contexts.EXPECT().LastCommittedOrigin(mock.Anything).Return(newsOrigin+"/article", true)

	f.manager.SetPermission(ctx, newsOrigin, entity.PermissionTypeNotifications, entity.PermissionGranted, entity.NoContext)
	require.Equal(t, entity.PermissionGranted, f.store.Get(ctx, entity.PermissionTypeNotifications, newsOrigin))

	assert.Equal(t, entity.PermissionGranted,
		f.manager.QueryCapabilityForContext(ctx, token, entity.EngineNotifications))

	assert.Equal(t, entity.PermissionAsk, f.store.Get(ctx, entity.PermissionTypeNotifications, newsOrigin))
	assert.Equal(t, entity.PermissionGranted, f.transient.Get(entity.PermissionTypeNotifications, newsOrigin, token))

	assert.Equal(t, entity.PermissionGranted,
		f.manager.QueryCapabilityForContext(ctx, token, entity.EngineNotifications))
	assert.Equal(t, entity.PermissionAsk,
		f.manager.QueryCapabilityForContext(ctx, other, entity.EngineNotifications),
		"a pre-grant is consumed by the first context")
}

func TestPermissionManager_ReloadFromDisk(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()

	store, err := prefstore.Open(ctx, prefstore.NewJSONBackend(dir), prefstore.Options{})
	require.NoError(t, err)
	f := newManagerFixtureWith(t, entity.PolicyStoreOnDisk, store,
		portmocks.NewMockBrowsingContextResolver(t), portmocks.NewMockPermissionPrompter(t), &promptLog{})

	f.manager.QueryPermission(mapsOrigin, entity.PermissionTypeGeolocation).Grant(ctx)
	require.NoError(t, f.manager.Close(ctx))

	reloaded, err := prefstore.Open(ctx, prefstore.NewJSONBackend(dir), prefstore.Options{})
	require.NoError(t, err)
	g := newManagerFixtureWith(t, entity.PolicyStoreOnDisk, reloaded,
		portmocks.NewMockBrowsingContextResolver(t), portmocks.NewMockPermissionPrompter(t), &promptLog{})

	assert.Equal(t, entity.PermissionGranted,
		g.manager.QueryPermission(mapsOrigin, entity.PermissionTypeGeolocation).State(ctx))
}

func TestPermissionManager_CloseCommitsStore(t *testing.T) {
	ctx := testContext()
	store := repomocks.NewMockPermissionStore(t)
	store.EXPECT().Commit(mock.Anything).Return(nil).Once()

	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: store,
		Transient:  memory.NewTransientStore(nil),
	}, entity.PolicyStoreOnDisk)

	require.NoError(t, manager.Close(ctx))
}

func TestPermissionManager_SettingsForceClipboardGrant(t *testing.T) {
	ctx := testContext()
	token := entity.NewContextToken(1)

	contexts := portmocks.NewMockBrowsingContextResolver(t)
	contexts.EXPECT().LastCommittedOrigin(token).Return(mapsOrigin, true)
	settings := portmocks.NewMockPermissionSettingsProvider(t)
	settings.EXPECT().ClipboardSettings(token).Return(port.ClipboardSettings{CanAccess: true})

	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: prefstore.NewMemory(),
		Transient:  memory.NewTransientStore(nil),
		Contexts:   contexts,
		Settings:   settings,
	}, entity.PolicyStoreInMemory)

	assert.Equal(t, entity.PermissionGranted,
		manager.QueryCapabilityForContext(ctx, token, entity.EngineClipboardSanitizedWrite))
	assert.Equal(t, entity.PermissionAsk,
		manager.QueryCapabilityForContext(ctx, token, entity.EngineClipboardReadWrite),
		"read/write also needs paste access")
}

func TestPermissionManager_SettingsGrantReadWriteWithPaste(t *testing.T) {
	ctx := testContext()
	token := entity.NewContextToken(1)

	settings := portmocks.NewMockPermissionSettingsProvider(t)
	settings.EXPECT().ClipboardSettings(token).Return(port.ClipboardSettings{CanAccess: true, CanPaste: true})

	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: prefstore.NewMemory(),
		Transient:  memory.NewTransientStore(nil),
		Settings:   settings,
	}, entity.PolicyStoreInMemory)

	rec := &stateRecorder{}
	_, pending := manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeClipboardReadWrite, token, rec.callback)

	assert.False(t, pending)
	assert.Equal(t, []entity.PermissionState{entity.PermissionGranted}, rec.got())
}

func TestPermissionManager_QueryCapabilityDeadContext(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	token := entity.NewContextToken(1)
	f.contexts.EXPECT().LastCommittedOrigin(token).Return("", false)

	assert.Equal(t, entity.PermissionAsk, f.manager.QueryCapabilityForContext(ctx, token, entity.EngineGeolocation))
	assert.Equal(t, entity.PermissionDenied, f.manager.QueryCapabilityForContext(ctx, token, entity.EngineMidi))
}

func TestPermissionManager_QueryCapabilityForOrigin(t *testing.T) {
	ctx := testContext()
	f := newManagerFixture(t, entity.PolicyStoreInMemory)
	f.manager.SetPermission(ctx, mapsOrigin, entity.PermissionTypeDesktopAudioVideoCapture, entity.PermissionGranted, entity.NoContext)

	assert.Equal(t, entity.PermissionGranted, f.manager.QueryCapabilityForOrigin(ctx, mapsOrigin, entity.EngineDisplayCapture))
	assert.Equal(t, entity.PermissionAsk, f.manager.QueryCapabilityForOrigin(ctx, newsOrigin, entity.EngineDisplayCapture))
	assert.Equal(t, entity.PermissionDenied, f.manager.QueryCapabilityForOrigin(ctx, mapsOrigin, entity.EngineWindowManagement))
	assert.Equal(t, entity.PermissionDenied, f.manager.QueryCapabilityForOrigin(ctx, "::", entity.EngineGeolocation))
}

func TestPermissionManager_Metrics(t *testing.T) {
	ctx := testContext()
	metrics := portmocks.NewMockPermissionMetrics(t)
	metrics.EXPECT().ObserveDecision(entity.PermissionTypeGeolocation, entity.PermissionGranted).Once()
	metrics.EXPECT().SetPending(0, 0).Once()
	metrics.EXPECT().ObservePrompt(entity.PermissionTypeNotifications).Once()
	metrics.EXPECT().SetPending(1, 0).Once()

	prompter := portmocks.NewMockPermissionPrompter(t)
	prompter.EXPECT().RequestPermission(mock.Anything, mock.Anything).Once()

	manager := usecase.NewPermissionManager(usecase.PermissionManagerDeps{
		Persistent: prefstore.NewMemory(),
		Transient:  memory.NewTransientStore(nil),
		Prompter:   prompter,
		Metrics:    metrics,
	}, entity.PolicyStoreInMemory)

	manager.QueryPermission(mapsOrigin, entity.PermissionTypeGeolocation).Grant(ctx)
	_, pending := manager.RequestPermission(ctx, mapsOrigin, entity.PermissionTypeNotifications, entity.NewContextToken(1), func(entity.PermissionState) {})
	assert.True(t, pending)
}
