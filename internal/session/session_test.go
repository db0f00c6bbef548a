package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/expiration"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/mock"
	"github.com/MKhiriev/fresh-alert/internal/service"
	"github.com/MKhiriev/fresh-alert/internal/store"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow  = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	alice    = models.User{ID: 7, Username: "alice"}
	errBoom  = &service.GatewayError{Kind: service.ErrFood, Message: "Failed to fetch foods", Err: errors.New("boom")}
	errLogin = &service.GatewayError{Kind: service.ErrAuth, Message: "Invalid credentials", Err: errors.New("401")}
)

type testDeps struct {
	auth  *mock.MockClientAuthService
	foods *mock.MockClientFoodService
	repo  *mock.MockSessionRepository
}

func newTestSession(t *testing.T) (*Session, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:  mock.NewMockClientAuthService(ctrl),
		foods: mock.NewMockClientFoodService(ctrl),
		repo:  mock.NewMockSessionRepository(ctrl),
	}

	s := New(&service.ClientServices{AuthService: deps.auth, FoodService: deps.foods}, deps.repo, logger.Nop())
	s.now = func() time.Time { return testNow }
	return s, deps
}

// loggedIn returns a session already logged in as alice with list loaded.
func loggedIn(t *testing.T, list []models.Food) (*Session, testDeps) {
	t.Helper()
	s, deps := newTestSession(t)
	s.state = LoggedIn
	s.user = alice
	s.list = list
	return s, deps
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestSession_Login_Success(t *testing.T) {
	s, deps := newTestSession(t)
	ctx := context.Background()
	list := []models.Food{{ID: 1, Name: "Milk", DaysLeft: 2}}

	gomock.InOrder(
		deps.auth.EXPECT().Login(ctx, "alice", "pw").Return(alice, nil),
		deps.repo.EXPECT().Save(ctx, models.LocalSession{UserID: 7, Username: "alice", LoggedInAt: testNow}).Return(nil),
		deps.foods.EXPECT().ListFoods(ctx, int64(7)).Return(list, nil),
	)

	require.NoError(t, s.Login(ctx, "alice", "pw"))
	assert.Equal(t, LoggedIn, s.Status())
	assert.Equal(t, alice, s.User())
	assert.Equal(t, list, s.Foods())
}

func TestSession_Login_FailureLeavesLoggedOut(t *testing.T) {
	s, deps := newTestSession(t)

	deps.auth.EXPECT().Login(gomock.Any(), "alice", "bad").Return(models.User{}, errLogin)

	err := s.Login(context.Background(), "alice", "bad")

	assert.ErrorIs(t, err, service.ErrAuth)
	assert.Equal(t, LoggedOut, s.Status())
	assert.Equal(t, models.User{}, s.User())
	assert.Empty(t, s.Foods())
}

func TestSession_Login_ListFailureKeepsLoggedIn(t *testing.T) {
	s, deps := newTestSession(t)

	deps.auth.EXPECT().Login(gomock.Any(), "alice", "pw").Return(alice, nil)
	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(7)).Return(nil, errBoom)

	err := s.Login(context.Background(), "alice", "pw")

	assert.ErrorIs(t, err, service.ErrFood)
	assert.Equal(t, LoggedIn, s.Status())
	assert.Equal(t, alice, s.User())
	assert.Empty(t, s.Foods())
}

func TestSession_Login_StoreFailureIsNotFatal(t *testing.T) {
	s, deps := newTestSession(t)

	deps.auth.EXPECT().Login(gomock.Any(), "alice", "pw").Return(alice, nil)
	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(7)).Return([]models.Food{}, nil)

	assert.NoError(t, s.Login(context.Background(), "alice", "pw"))
	assert.Equal(t, LoggedIn, s.Status())
}

func TestSession_Register_Success(t *testing.T) {
	s, deps := newTestSession(t)
	bob := models.User{ID: 8, Username: "bob"}

	deps.auth.EXPECT().Register(gomock.Any(), "bob", "pw").Return(bob, nil)
	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(8)).Return([]models.Food{}, nil)

	require.NoError(t, s.Register(context.Background(), "bob", "pw"))
	assert.Equal(t, bob, s.User())
}

func TestSession_Register_Failure(t *testing.T) {
	s, deps := newTestSession(t)

	deps.auth.EXPECT().Register(gomock.Any(), "bob", "pw").Return(models.User{}, errLogin)

	assert.Error(t, s.Register(context.Background(), "bob", "pw"))
	assert.Equal(t, LoggedOut, s.Status())
}

func TestSession_Relogin_ReplacesUser(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}})
	bob := models.User{ID: 8, Username: "bob"}

	deps.auth.EXPECT().Login(gomock.Any(), "bob", "pw").Return(bob, nil)
	deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(8)).Return([]models.Food{{ID: 5}}, nil)

	require.NoError(t, s.Login(context.Background(), "bob", "pw"))
	assert.Equal(t, bob, s.User())
	assert.Equal(t, []models.Food{{ID: 5}}, s.Foods())
}

// ── Restore / Logout ─────────────────────────────────────────────────────────

func TestSession_Restore(t *testing.T) {
	s, deps := newTestSession(t)

	deps.repo.EXPECT().Get(gomock.Any()).Return(models.LocalSession{UserID: 7, Username: "alice"}, nil)
	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(7)).Return([]models.Food{}, nil)

	ok, err := s.Restore(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, alice, s.User())
}

func TestSession_Restore_NothingStored(t *testing.T) {
	s, deps := newTestSession(t)

	deps.repo.EXPECT().Get(gomock.Any()).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

	ok, err := s.Restore(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, LoggedOut, s.Status())
}

func TestSession_Restore_NoRepository(t *testing.T) {
	s := New(&service.ClientServices{}, nil, logger.Nop())

	ok, err := s.Restore(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Logout(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}})

	deps.repo.EXPECT().Delete(gomock.Any()).Return(nil)

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, LoggedOut, s.Status())
	assert.Equal(t, models.User{}, s.User())
	assert.Empty(t, s.Foods())
}

func TestSession_Logout_StoreFailureStillLogsOut(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}})

	deps.repo.EXPECT().Delete(gomock.Any()).Return(errors.New("locked"))

	assert.Error(t, s.Logout(context.Background()))
	assert.Equal(t, LoggedOut, s.Status())
	assert.Empty(t, s.Foods())
}

// ── Operations requiring a user ──────────────────────────────────────────────

func TestSession_RequiresLogin(t *testing.T) {
	// no EXPECT: the gateways must not be called
	s, _ := newTestSession(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Refresh(ctx), ErrNotLoggedIn)

	_, err := s.AddFood(ctx, models.NewFood{Name: "Milk"})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.ErrorIs(t, s.DeleteFood(ctx, 1), ErrNotLoggedIn)

	_, err = s.Recognize(ctx, models.Image{Content: []byte("x")})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.ErrorIs(t, s.ChangePassword(ctx, "a", "a"), ErrNotLoggedIn)
	assert.ErrorIs(t, s.AddSecretKey(ctx, "kimi", "sk"), ErrNotLoggedIn)
	assert.Equal(t, "You must be logged in", service.UserMessage(ErrNotLoggedIn))
}

func TestSession_Refresh_FailureKeepsList(t *testing.T) {
	list := []models.Food{{ID: 1, Name: "Milk"}}
	s, deps := loggedIn(t, list)

	deps.foods.EXPECT().ListFoods(gomock.Any(), int64(7)).Return(nil, errBoom)

	assert.Error(t, s.Refresh(context.Background()))
	assert.Equal(t, list, s.Foods())
}

func TestSession_AddFood_InsertsSorted(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{
		{ID: 1, Name: "Ham", DaysLeft: -1},
		{ID: 2, Name: "Rice", DaysLeft: 300},
	})

	deps.foods.EXPECT().
		AddFood(gomock.Any(), models.NewFood{Name: "Milk", ProductionDate: "2024-01-05", ShelfLife: 7, UserID: 7}).
		Return(models.Food{ID: 3, Name: "Milk", DaysLeft: 2}, nil)

	created, err := s.AddFood(context.Background(), models.NewFood{Name: "Milk", ProductionDate: "2024-01-05", ShelfLife: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	var ids []int64
	for _, f := range s.Foods() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []int64{1, 3, 2}, ids)
}

func TestSession_AddFood_FailureKeepsList(t *testing.T) {
	list := []models.Food{{ID: 1}}
	s, deps := loggedIn(t, list)

	deps.foods.EXPECT().AddFood(gomock.Any(), gomock.Any()).Return(models.Food{}, errBoom)

	_, err := s.AddFood(context.Background(), models.NewFood{Name: "Milk"})

	assert.Error(t, err)
	assert.Equal(t, list, s.Foods())
}

func TestSession_DeleteFood_RemovesExactlyOne(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}, {ID: 2}, {ID: 3}})

	deps.foods.EXPECT().DeleteFood(gomock.Any(), int64(2), int64(7)).Return(nil)

	require.NoError(t, s.DeleteFood(context.Background(), 2))
	assert.Equal(t, []models.Food{{ID: 1}, {ID: 3}}, s.Foods())
}

func TestSession_DeleteFood_FailureKeepsRecord(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}, {ID: 2}})

	deps.foods.EXPECT().DeleteFood(gomock.Any(), int64(2), int64(7)).Return(errBoom)

	assert.Error(t, s.DeleteFood(context.Background(), 2))
	assert.Len(t, s.Foods(), 2)
}

func TestSession_DeleteFood_StaleSession(t *testing.T) {
	s, deps := loggedIn(t, []models.Food{{ID: 1}, {ID: 2}})

	deps.foods.EXPECT().DeleteFood(gomock.Any(), int64(2), int64(7)).DoAndReturn(
		func(context.Context, int64, int64) error {
			// user logged out while the request was in flight
			s.mu.Lock()
			s.state = LoggedOut
			s.list = nil
			s.mu.Unlock()
			return nil
		})

	require.NoError(t, s.DeleteFood(context.Background(), 2))
	assert.Empty(t, s.Foods())
}

func TestSession_Recognize(t *testing.T) {
	s, deps := loggedIn(t, nil)
	name := "Milk"
	image := models.Image{Filename: "a.jpg", Content: []byte("x")}

	deps.foods.EXPECT().RecognizeFood(gomock.Any(), image, int64(7)).Return(models.RecognitionResult{Name: &name}, nil)

	got, err := s.Recognize(context.Background(), image)

	require.NoError(t, err)
	assert.Equal(t, "Milk", *got.Name)
}

func TestSession_ChangePassword_And_AddSecretKey(t *testing.T) {
	s, deps := loggedIn(t, nil)

	deps.auth.EXPECT().ChangePassword(gomock.Any(), int64(7), "new", "new").Return(nil)
	deps.auth.EXPECT().AddSecretKey(gomock.Any(), int64(7), "kimi", "sk").Return(nil)

	assert.NoError(t, s.ChangePassword(context.Background(), "new", "new"))
	assert.NoError(t, s.AddSecretKey(context.Background(), "kimi", "sk"))
	assert.Equal(t, LoggedIn, s.Status())
}

// ── Filter / Summary ─────────────────────────────────────────────────────────

func TestSession_Filter(t *testing.T) {
	s, _ := loggedIn(t, []models.Food{
		{ID: 1, Name: "Whole Milk"},
		{ID: 2, Name: "Rice"},
		{ID: 3, Name: "milk chocolate"},
	})

	got := s.Filter(" MILK ")
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Len(t, s.Filter(""), 3)
	assert.Empty(t, s.Filter("bread"))
}

func TestSession_Summary(t *testing.T) {
	s, _ := loggedIn(t, []models.Food{
		{DaysLeft: -3},
		{DaysLeft: 0},
		{DaysLeft: 6},
		{DaysLeft: 7},
		{DaysLeft: 45},
	})

	assert.Equal(t, map[expiration.Bucket]int{
		expiration.Expired:  1,
		expiration.Critical: 2,
		expiration.Warning:  1,
		expiration.OK:       1,
	}, s.Summary())
}

func TestSession_Summary_Empty(t *testing.T) {
	s, _ := newTestSession(t)

	summary := s.Summary()
	assert.Len(t, summary, 4)
	for _, n := range summary {
		assert.Zero(t, n)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "logged out", LoggedOut.String())
	assert.Equal(t, "logged in", LoggedIn.String())
	assert.Equal(t, "unknown", State(9).String())
}
