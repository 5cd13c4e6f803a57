package auth

import (
	"testing"
	"time"

	"warehouse-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-characters"

func TestGenerateAndParseToken(t *testing.T) {
	employee := &models.Employee{
		ID:       7,
		Username: "wh1",
		Role:     models.RoleWarehouseStaff,
	}

	token, err := GenerateToken(testSecret, employee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.EmployeeID)
	assert.Equal(t, "wh1", claims.Username)
	assert.Equal(t, models.RoleWarehouseStaff, claims.Role)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenWrongSecret(t *testing.T) {
	employee := &models.Employee{ID: 1, Username: "admin", Role: models.RoleAdmin}

	token, err := GenerateToken(testSecret, employee)
	require.NoError(t, err)

	_, err = ParseToken("another-secret-that-does-not-match-it", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	assert.Error(t, err)
}
