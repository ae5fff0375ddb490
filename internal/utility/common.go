package utility

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
	"time"

	"edu_crm/internal/common"
	"edu_crm/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoProtect runs f and logs instead of crashing when it panics.
func GoProtect(f func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("recovered panic in background task")
		}
	}()
	f()
}

// CurrentTimeInMilli is the timestamp format stored in createdAt/updatedAt.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// DayBounds returns [start, end) of t's calendar day in unix millis, in t's location.
func DayBounds(t time.Time) (int64, int64) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli()
}

// ParseObjectID converts a hex id to an ObjectID, returning common.ErrInvalidObjectID on bad input.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, common.WithDetails(common.ErrInvalidObjectID, id)
	}
	return oid, nil
}

// NormalizeEmail lowercases and trims an address for lookups and unique indexes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s and joins its alphanumeric runs with "-".
func Slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-"), "-")
}
