package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data   []byte
	loads  int
	saves  int
	clears int
}

func (s *memStore) Load() ([]byte, error) {
	s.loads++
	return s.data, nil
}

func (s *memStore) Save(data []byte) error {
	s.saves++
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Clear() error {
	s.clears++
	s.data = nil
	return nil
}

type fakeAuthAPI struct {
	session *models.Session
	err     error
	calls   int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.calls++
	return f.session, f.err
}

func adminSession() *models.Session {
	return &models.Session{
		Token: "opaque-token",
		User:  &models.AuthUser{ID: 10, Email: "admin@example.com", Role: models.RoleAdmin},
	}
}

func mintToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "10",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInitialize_EmptyStore(t *testing.T) {
	svc := NewSessionService(&fakeAuthAPI{}, &memStore{})
	assert.Nil(t, svc.Initialize())
	assert.Nil(t, svc.Current())
}

func TestInitialize_RestoresValidSession(t *testing.T) {
	data, err := json.Marshal(adminSession())
	require.NoError(t, err)
	svc := NewSessionService(&fakeAuthAPI{}, &memStore{data: data})

	restored := svc.Initialize()
	require.NotNil(t, restored)
	assert.Equal(t, "admin@example.com", restored.User.Email)
	assert.Equal(t, restored, svc.Current())
}

func TestInitialize_CorruptRecordDiscardedSilently(t *testing.T) {
	store := &memStore{data: []byte("{not json")}
	svc := NewSessionService(&fakeAuthAPI{}, store)

	assert.Nil(t, svc.Initialize())
	assert.Nil(t, svc.Current())
	assert.Nil(t, store.data, "corrupt record must be cleared, leaving no residue")
}

func TestInitialize_TokenWithoutUserDiscarded(t *testing.T) {
	store := &memStore{data: []byte(`{"token":"t","user":null}`)}
	svc := NewSessionService(&fakeAuthAPI{}, store)

	assert.Nil(t, svc.Initialize())
	assert.Nil(t, store.data)
}

func TestInitialize_UserWithoutTokenDiscarded(t *testing.T) {
	store := &memStore{data: []byte(`{"token":"","user":{"id":1,"email":"a@x","role":"PATIENT"}}`)}
	svc := NewSessionService(&fakeAuthAPI{}, store)

	assert.Nil(t, svc.Initialize())
	assert.Nil(t, store.data)
}

func TestInitialize_ExpiredJWTDiscarded(t *testing.T) {
	sess := adminSession()
	sess.Token = mintToken(t, time.Now().Add(-time.Hour))
	data, err := json.Marshal(sess)
	require.NoError(t, err)
	store := &memStore{data: data}
	svc := NewSessionService(&fakeAuthAPI{}, store)

	assert.Nil(t, svc.Initialize())
	assert.Nil(t, store.data)
}

func TestInitialize_LiveJWTRestored(t *testing.T) {
	sess := adminSession()
	sess.Token = mintToken(t, time.Now().Add(time.Hour))
	data, err := json.Marshal(sess)
	require.NoError(t, err)
	svc := NewSessionService(&fakeAuthAPI{}, &memStore{data: data})

	assert.NotNil(t, svc.Initialize())
}

func TestInitialize_OpaqueTokenNotTreatedAsExpired(t *testing.T) {
	data, err := json.Marshal(adminSession())
	require.NoError(t, err)
	svc := NewSessionService(&fakeAuthAPI{}, &memStore{data: data})

	assert.NotNil(t, svc.Initialize(), "non-JWT tokens stay opaque")
}

func TestLogin_PersistsAndReplacesSession(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(&fakeAuthAPI{session: adminSession()}, store)

	sess, err := svc.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, sess, svc.Current())

	persisted := &models.Session{}
	require.NoError(t, json.Unmarshal(store.data, persisted))
	assert.Equal(t, sess.Token, persisted.Token)
	assert.Equal(t, sess.User.Email, persisted.User.Email)
}

func TestLogin_FailureCarriesServerMessage(t *testing.T) {
	api := &fakeAuthAPI{err: &utils.NetworkError{Status: 401, Body: "invalid email or password"}}
	svc := NewSessionService(api, &memStore{})

	_, err := svc.Login(context.Background(), "x@x", "bad")
	var authErr *utils.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid email or password", authErr.Message)
	assert.Nil(t, svc.Current())
}

func TestLogin_EmptyBodyFallsBackToGenericMessage(t *testing.T) {
	api := &fakeAuthAPI{err: &utils.NetworkError{Status: 500}}
	svc := NewSessionService(api, &memStore{})

	_, err := svc.Login(context.Background(), "x@x", "bad")
	var authErr *utils.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
}

func TestLogin_MalformedResponseRejected(t *testing.T) {
	api := &fakeAuthAPI{session: &models.Session{Token: "t"}} // user missing
	store := &memStore{}
	svc := NewSessionService(api, store)

	_, err := svc.Login(context.Background(), "x@x", "pw")
	var authErr *utils.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 0, store.saves, "invalid exchange must not be persisted")
}

func TestLoginThenLogout_RoundTripClearsStore(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(&fakeAuthAPI{session: adminSession()}, store)

	_, err := svc.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, store.data)

	svc.Logout()
	assert.Nil(t, svc.Current())
	assert.Nil(t, store.data, "logout must leave the store as before login")
}
