package auth

import (
	"testing"
	"time"

	"edu_crm/internal/api/access"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	id := &access.Identity{ID: primitive.NewObjectID(), Email: "a@crm.test", Name: "A", Role: access.RoleSales}

	token, exp, err := tm.GenerateToken(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	got, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerifyRejectsForeignAndExpiredTokens(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	id := &access.Identity{ID: primitive.NewObjectID(), Role: access.RoleAdmin}

	other, _, err := NewTokenManager("other", 1).GenerateToken(id)
	require.NoError(t, err)
	_, err = tm.Verify(other)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		ID:   id.ID.Hex(),
		Role: access.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.Verify(signed)
	assert.Error(t, err)

	_, err = tm.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	token, _, err := tm.GenerateToken(&access.Identity{ID: primitive.NewObjectID(), Role: "root"})
	require.NoError(t, err)
	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hashed, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hashed, "s3cret!"))
	assert.Error(t, ComparePassword(hashed, "wrong"))
}
