package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-store/internal/models"
)

func tempSessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "user.json")
}

func TestLogin(t *testing.T) {
	s := NewStore(tempSessionFile(t), 0)

	user, err := s.Login("priya@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "user123", user.ID)
	assert.Equal(t, "priya", user.Name) // local part of the email
	assert.Equal(t, "priya@example.com", user.Email)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, *user, *current)
}

func TestLoginRejectsEmptyInputs(t *testing.T) {
	s := NewStore(tempSessionFile(t), 0)

	_, err := s.Login("", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login("priya@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	s := NewStore(tempSessionFile(t), 0)

	user, err := s.Register("Priya Sharma", "priya@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", user.Name)

	_, err = s.Register("", "priya@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	path := tempSessionFile(t)

	s := NewStore(path, 0)
	_, err := s.Login("priya@example.com", "hunter2")
	require.NoError(t, err)

	// The record on disk is the plain {id,name,email} object.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var record models.User
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "user123", record.ID)

	// A fresh store over the same file rehydrates the session.
	restarted := NewStore(path, 0)
	current, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "priya@example.com", current.Email)
}

func TestLogoutErasesRecord(t *testing.T) {
	path := tempSessionFile(t)

	s := NewStore(path, 0)
	_, err := s.Login("priya@example.com", "hunter2")
	require.NoError(t, err)

	s.Logout()

	_, ok := s.Current()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMalformedRecordIsDiscarded(t *testing.T) {
	path := tempSessionFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewStore(path, 0)

	_, ok := s.Current()
	assert.False(t, ok)
	// The bad file is removed, not kept around to fail again.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewToken(secret, "user123")
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}
