package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	"campustrace/internal/domain/repository"
	mockRepo "campustrace/internal/mocks/repository"
	mockSvc "campustrace/internal/mocks/service"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBootstrapService(t *testing.T, events chan entity.AuthEvent) (
	usecase.BootstrapUsecase,
	*mockSvc.MockAuthClient,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockProfileRepository,
) {
	authClient := mockSvc.NewMockAuthClient(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if events == nil {
		events = make(chan entity.AuthEvent)
	}
	authClient.EXPECT().Events().Return(events)

	cfg := &config.Config{
		Auth: &config.AuthConfig{BootstrapTimeout: 500 * time.Millisecond},
	}

	service := NewBootstrapService(cfg, authClient, txManager, logger)
	t.Cleanup(service.Close)

	return service, authClient, txManager, repoFactory, profileRepo
}

// stubTransaction makes the transaction manager run callbacks against the
// given factory, the same way the real manager binds repos to a transaction.
func stubTransaction(txManager *mockRepo.MockTransactionManager, repoFactory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func TestBootstrapService_Bootstrap_EmptyInputSettlesAnonymous(t *testing.T) {
	service, _, _, _, _ := createTestBootstrapService(t, nil)

	snapshot := service.Bootstrap(context.Background(), usecase.BootstrapInput{})

	assert.Equal(t, entity.PhaseReadyAnonymous, snapshot.Phase)
	assert.False(t, snapshot.IsLoading())
	assert.Nil(t, snapshot.Session)
}

func TestBootstrapService_Bootstrap_StoredSessionWithProfile(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "a@uni.edu", RefreshToken: "stored"}
	profile := &entity.Profile{UserID: userID, Email: "a@uni.edu", Role: entity.RoleMember}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).Return(profile, nil)

	snapshot := service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	assert.Equal(t, entity.PhaseReadyAuthenticated, snapshot.Phase)
	require.NotNil(t, snapshot.Session)
	assert.Equal(t, userID, snapshot.Session.UserID)
	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, entity.RoleMember, snapshot.Profile.Role)
}

func TestBootstrapService_Bootstrap_AuthCodeTakesPrecedence(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "b@uni.edu", RefreshToken: "fresh"}

	// The one-time code settles the session; the stored token is never checked.
	authClient.EXPECT().ExchangeCodeForSession(mock.Anything, "code-123").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound)

	snapshot := service.Bootstrap(context.Background(), usecase.BootstrapInput{
		RefreshToken: "stored",
		AuthCode:     "code-123",
	})

	assert.Equal(t, entity.PhaseReadyAuthenticated, snapshot.Phase)
	assert.Nil(t, snapshot.Profile)
}

func TestBootstrapService_Bootstrap_DeadCodeFallsBackToStoredSession(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "c@uni.edu", RefreshToken: "stored"}

	authClient.EXPECT().ExchangeCodeForSession(mock.Anything, "expired-code").
		Return(nil, errors.New("code already consumed"))
	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	snapshot := service.Bootstrap(context.Background(), usecase.BootstrapInput{
		RefreshToken: "stored",
		AuthCode:     "expired-code",
	})

	assert.Equal(t, entity.PhaseReadyAuthenticated, snapshot.Phase)
}

func TestBootstrapService_Bootstrap_SessionCheckFailureSettlesAnonymous(t *testing.T) {
	service, authClient, _, _, _ := createTestBootstrapService(t, nil)

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(nil, errors.New("network down"))

	snapshot := service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	assert.Equal(t, entity.PhaseReadyAnonymous, snapshot.Phase)
}

func TestBootstrapService_Bootstrap_FailsafeTimerFires(t *testing.T) {
	service, authClient, _, _, _ := createTestBootstrapService(t, nil)

	// A hung session check must not hold the snapshot in loading forever.
	authClient.EXPECT().GetSession(mock.Anything, "stored").RunAndReturn(
		func(ctx context.Context, _ string) (*entity.Session, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	snapshot := service.Bootstrap(ctx, usecase.BootstrapInput{RefreshToken: "stored"})

	assert.Equal(t, entity.PhaseReadyAnonymous, snapshot.Phase)
	assert.Less(t, time.Since(start), 2*time.Second)
	cancel()
}

func TestBootstrapService_Bootstrap_SettlesExactlyOnce(t *testing.T) {
	service, authClient, _, _, _ := createTestBootstrapService(t, nil)

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(nil, nil)

	first := service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})
	assert.False(t, first.IsLoading())

	// Whatever happens afterwards, the loading state never comes back.
	for range 10 {
		assert.False(t, service.Snapshot().IsLoading())
	}
}

func TestBootstrapService_Bootstrap_SecondCallWaitsForItsOwnSequence(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	first := service.Bootstrap(context.Background(), usecase.BootstrapInput{})
	require.Equal(t, entity.PhaseReadyAnonymous, first.Phase)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "d@uni.edu", RefreshToken: "fresh"}

	// The exchange takes a moment. The second call must block on the
	// sequence it launched instead of returning the anonymous snapshot the
	// first call left behind.
	authClient.EXPECT().ExchangeCodeForSession(mock.Anything, "code-456").RunAndReturn(
		func(context.Context, string) (*entity.Session, error) {
			time.Sleep(50 * time.Millisecond)

			return session, nil
		})
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID, Role: entity.RoleMember}, nil)

	second := service.Bootstrap(context.Background(), usecase.BootstrapInput{AuthCode: "code-456"})

	assert.Equal(t, entity.PhaseReadyAuthenticated, second.Phase)
	require.NotNil(t, second.Session)
	assert.Equal(t, userID, second.Session.UserID)
}

func TestBootstrapService_Refresh_NotAuthenticatedIsNoop(t *testing.T) {
	service, _, _, _, _ := createTestBootstrapService(t, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{})

	snapshot, err := service.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.PhaseReadyAnonymous, snapshot.Phase)
}

func TestBootstrapService_Refresh_FailureDropsSession(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, RefreshToken: "stored"}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	authClient.EXPECT().RefreshSession(mock.Anything, "stored").
		Return(nil, errors.New("refresh token revoked"))

	snapshot, err := service.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, entity.PhaseReadyAnonymous, snapshot.Phase)
	assert.False(t, service.Snapshot().Authenticated())
}

func TestBootstrapService_Refresh_ConcurrentCallsShareOneRenewal(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, RefreshToken: "stored"}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	renewed := &entity.Session{UserID: userID, RefreshToken: "rotated"}
	gate := make(chan struct{})

	// Exactly one renewal may hit the auth client.
	authClient.EXPECT().RefreshSession(mock.Anything, "stored").RunAndReturn(
		func(context.Context, string) (*entity.Session, error) {
			<-gate

			return renewed, nil
		}).Once()

	const callers = 8
	var wg sync.WaitGroup
	snapshots := make([]entity.BootstrapSnapshot, callers)
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snapshots[i], errs[i] = service.Refresh(context.Background())
		}(i)
	}

	// Let the in-flight renewal pick up its waiters, then release it.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		require.NotNil(t, snapshots[i].Session)
		assert.Equal(t, "rotated", snapshots[i].Session.RefreshToken)
	}
}

func TestBootstrapService_AuthEvents_SignedOutClearsSnapshot(t *testing.T) {
	events := make(chan entity.AuthEvent)
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, events)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, RefreshToken: "stored"}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})
	require.True(t, service.Snapshot().Authenticated())

	events <- entity.AuthEvent{Kind: entity.AuthEventSignedOut}

	assert.Eventually(t, func() bool {
		return !service.Snapshot().Authenticated()
	}, time.Second, 10*time.Millisecond)
}

func TestBootstrapService_AuthEvents_LastEventWins(t *testing.T) {
	events := make(chan entity.AuthEvent)
	service, _, txManager, repoFactory, profileRepo := createTestBootstrapService(t, events)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{})

	userID := uuid.New()
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	// Events apply strictly in arrival order: the sign-out delivered last
	// decides the final state even though a sign-in came just before it.
	events <- entity.AuthEvent{
		Kind:    entity.AuthEventSignedIn,
		Session: &entity.Session{UserID: userID, RefreshToken: "a"},
	}
	events <- entity.AuthEvent{Kind: entity.AuthEventSignedOut}

	assert.Eventually(t, func() bool {
		snapshot := service.Snapshot()

		return snapshot.Phase == entity.PhaseReadyAnonymous && snapshot.Session == nil
	}, time.Second, 10*time.Millisecond)
}

func TestBootstrapService_AuthEvents_TokenRefreshKeepsProfile(t *testing.T) {
	events := make(chan entity.AuthEvent)
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, events)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, RefreshToken: "stored"}
	profile := &entity.Profile{UserID: userID, FullName: "Casey"}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).Return(profile, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	events <- entity.AuthEvent{
		Kind:    entity.AuthEventTokenRefreshed,
		Session: &entity.Session{UserID: userID, RefreshToken: "rotated"},
	}

	assert.Eventually(t, func() bool {
		snapshot := service.Snapshot()

		return snapshot.Session != nil &&
			snapshot.Session.RefreshToken == "rotated" &&
			snapshot.Profile != nil &&
			snapshot.Profile.FullName == "Casey"
	}, time.Second, 10*time.Millisecond)
}

func TestBootstrapService_SignOut_RevokesAndSettlesAnonymous(t *testing.T) {
	service, authClient, txManager, repoFactory, profileRepo := createTestBootstrapService(t, nil)

	userID := uuid.New()
	session := &entity.Session{UserID: userID, RefreshToken: "stored"}

	authClient.EXPECT().GetSession(mock.Anything, "stored").Return(session, nil)
	stubTransaction(txManager, repoFactory)
	repoFactory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().FindProfileByUserID(mock.Anything, userID).
		Return(&entity.Profile{UserID: userID}, nil)

	service.Bootstrap(context.Background(), usecase.BootstrapInput{RefreshToken: "stored"})

	authClient.EXPECT().SignOut(mock.Anything, "stored").Return(nil)

	require.NoError(t, service.SignOut(context.Background()))
	assert.Equal(t, entity.PhaseReadyAnonymous, service.Snapshot().Phase)
}
