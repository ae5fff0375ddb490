package basehdl_test

import (
	"errors"
	"testing"

	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestErrorBodyStackFollowsEnvironment(t *testing.T) {
	defer basehdl.SetShowStack(true)

	status, body := basehdl.ErrorBody(common.WithDetails(common.ErrInvalidStatus, "status: archived"), nil)
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", body["code"])
	assert.Equal(t, "status: archived", body["error"])
	assert.NotEmpty(t, body["stack"])

	basehdl.SetShowStack(false)
	status, body = basehdl.ErrorBody(common.ErrNotFound, nil)
	assert.Equal(t, common.StatusNotFound, status)
	assert.NotContains(t, body, "stack")

	status, body = basehdl.ErrorBody(errors.New("boom"), []byte("trace"))
	assert.Equal(t, common.StatusInternalServerError, status)
	assert.Equal(t, "SYS_001", body["code"])
	assert.Equal(t, "boom", body["error"])
	assert.NotContains(t, body, "stack")
}
