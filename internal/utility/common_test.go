package utility

import (
	"testing"
	"time"

	"edu_crm/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseObjectID(t *testing.T) {
	oid, err := ParseObjectID(" 64b7f0c2a1b2c3d4e5f60718 ")
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", oid.Hex())

	_, err = ParseObjectID("not-an-id")
	assert.ErrorIs(t, err, common.ErrInvalidObjectID)
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	start, end := DayBounds(time.Date(2026, 3, 14, 17, 45, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc).UnixMilli(), start)
	assert.Equal(t, int64(24*time.Hour/time.Millisecond), end-start)
}

func TestToMapAndCompactSet(t *testing.T) {
	type doc struct {
		Name  string `bson:"name"`
		Email string `bson:"email,omitempty"`
	}
	m, err := ToMap(doc{Name: "Ravi"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "Ravi"}, m)

	set := CompactSet(bson.M{"name": "Ravi", "email": "", "city": nil, "done": false})
	assert.Equal(t, bson.M{"name": "Ravi", "done": false}, set)
}

func TestGoProtectSwallowsPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		GoProtect(func() { panic("boom") })
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@example.com", NormalizeEmail("  Asha@Example.COM "))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "full-stack-web-development", Slug("  Full Stack: Web Development! "))
	assert.Equal(t, "ai-ml-2025", Slug("AI/ML 2025"))
	assert.Equal(t, "", Slug("---"))
}
