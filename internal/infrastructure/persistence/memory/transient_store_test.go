package memory_test

import (
	"testing"

	portmocks "github.com/bnema/webperm/internal/application/port/mocks"
	"github.com/bnema/webperm/internal/domain/entity"
	"github.com/bnema/webperm/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	originA = "https://a.example"
	originB = "https://b.example"
)

func TestTransientStore_GetDefaults(t *testing.T) {
	store := memory.NewTransientStore(nil)
	token := entity.NewContextToken(1)

	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, token))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, entity.NoContext))
	assert.Equal(t, entity.PermissionDenied, store.Get(entity.PermissionTypeUnsupported, originA, token))
}

func TestTransientStore_SetGetReset(t *testing.T) {
	store := memory.NewTransientStore(nil)
	token := entity.NewContextToken(1)

	store.Set(entity.PermissionTypeMediaVideoCapture, originA, true, token)
	assert.Equal(t, entity.PermissionGranted, store.Get(entity.PermissionTypeMediaVideoCapture, originA, token))

	store.Set(entity.PermissionTypeMediaVideoCapture, originA, false, token)
	assert.Equal(t, entity.PermissionDenied, store.Get(entity.PermissionTypeMediaVideoCapture, originA, token))

	store.Reset(entity.PermissionTypeMediaVideoCapture, originA, token)
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMediaVideoCapture, originA, token))
	assert.Equal(t, 0, store.Len())
}

func TestTransientStore_IsolatedPerToken(t *testing.T) {
	store := memory.NewTransientStore(nil)
	first := entity.NewContextToken(1)
	second := entity.NewContextToken(2)

	store.Set(entity.PermissionTypeMouseLock, originA, true, first)

	assert.Equal(t, entity.PermissionGranted, store.Get(entity.PermissionTypeMouseLock, originA, first))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, second))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originB, first))
}

func TestTransientStore_DesktopCaptureSharesState(t *testing.T) {
	store := memory.NewTransientStore(nil)
	token := entity.NewContextToken(1)

	store.Set(entity.PermissionTypeDesktopAudioVideoCapture, originA, true, token)

	assert.Equal(t, entity.PermissionGranted, store.Get(entity.PermissionTypeDesktopVideoCapture, originA, token))
}

func TestTransientStore_InvalidTokenIgnored(t *testing.T) {
	store := memory.NewTransientStore(nil)

	store.Set(entity.PermissionTypeMouseLock, originA, true, entity.NoContext)

	assert.Equal(t, 0, store.Len())
}

func TestTransientStore_InvalidateOnCrossOriginNavigation(t *testing.T) {
	store := memory.NewTransientStore(nil)
	token := entity.NewContextToken(1)
	store.Set(entity.PermissionTypeMouseLock, originA, true, token)
	store.Set(entity.PermissionTypeMediaAudioCapture, originA, true, token)

	assert.False(t, store.InvalidateOnCrossOriginNavigation(token, originA), "same-origin navigation keeps entries")
	assert.Equal(t, entity.PermissionGranted, store.Get(entity.PermissionTypeMouseLock, originA, token))

	assert.True(t, store.InvalidateOnCrossOriginNavigation(token, originB))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, token))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMediaAudioCapture, originA, token))
	assert.Equal(t, 0, store.Len())

	assert.False(t, store.InvalidateOnCrossOriginNavigation(entity.NewContextToken(9), originB))
}

// A context can hold decisions for several origins. Navigating keeps only the ones
// for the origin now committed.
func TestTransientStore_CrossOriginNavigationKeepsNewOriginEntries(t *testing.T) {
	const originC = "https://c.example"
	store := memory.NewTransientStore(nil)
	token := entity.NewContextToken(1)
	store.Set(entity.PermissionTypeMouseLock, originA, true, token)
	store.Set(entity.PermissionTypeMediaVideoCapture, originB, false, token)
	store.Set(entity.PermissionTypeMouseLock, originC, true, token)

	assert.True(t, store.InvalidateOnCrossOriginNavigation(token, originB))

	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, token))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originC, token))
	assert.Equal(t, entity.PermissionDenied, store.Get(entity.PermissionTypeMediaVideoCapture, originB, token))
	assert.Equal(t, 1, store.Len())

	assert.False(t, store.InvalidateOnCrossOriginNavigation(token, originB), "nothing left to drop")
}

func TestTransientStore_SweepDropsDeadContexts(t *testing.T) {
	alive := entity.NewContextToken(1)
	dead := entity.NewContextToken(2)

	contexts := portmocks.NewMockBrowsingContextResolver(t)
	contexts.EXPECT().IsAlive(alive).Return(true)
	contexts.EXPECT().IsAlive(dead).Return(false)

	store := memory.NewTransientStore(contexts)
	store.Set(entity.PermissionTypeMouseLock, originA, true, alive)
	store.Set(entity.PermissionTypeMouseLock, originA, true, dead)

	store.Sweep()

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, entity.PermissionGranted, store.Get(entity.PermissionTypeMouseLock, originA, alive))
	assert.Equal(t, entity.PermissionAsk, store.Get(entity.PermissionTypeMouseLock, originA, dead))
}

func TestTransientStore_SweepsAfterInterval(t *testing.T) {
	dead := entity.NewContextToken(2)

	contexts := portmocks.NewMockBrowsingContextResolver(t)
	contexts.EXPECT().IsAlive(mock.Anything).Return(false).Once()

	store := memory.NewTransientStore(contexts)
	for i := 0; i < memory.DefaultSweepInterval-1; i++ {
		store.Set(entity.PermissionTypeMouseLock, originA, i%2 == 0, dead)
	}
	assert.Equal(t, 1, store.Len(), "no sweep before the interval is reached")

	store.Set(entity.PermissionTypeMouseLock, originA, true, dead)
	store.Wait()

	assert.Equal(t, 0, store.Len())
}
