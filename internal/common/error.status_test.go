package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
	assert.ErrorIs(t, ConvertMongoError(mongo.ErrNoDocuments), ErrNotFound)
	assert.ErrorIs(t, ConvertMongoError(fmt.Errorf("wrapped: %w", mongo.ErrNoDocuments)), ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	converted := ConvertMongoError(dup)
	assert.ErrorIs(t, converted, ErrDuplicate)

	var appErr *Error
	assert.True(t, errors.As(converted, &appErr))
	assert.Equal(t, StatusConflict, appErr.StatusCode)

	// application errors pass through untouched
	assert.Same(t, ErrInvalidInput, ConvertMongoError(ErrInvalidInput))

	assert.ErrorIs(t, ConvertMongoError(errors.New("boom")), ErrQuery)
}

func TestWithDetailsKeepsIdentity(t *testing.T) {
	err := WithDetails(ErrInvalidStatus, []string{"status"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"status"}, appErr.Details)
	assert.Nil(t, ErrInvalidStatus.(*Error).Details)

	plain := errors.New("plain")
	assert.Same(t, plain, WithDetails(plain, "x"))
}
