package client

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewFabricErrorDecodesEnvelope(t *testing.T) {
	err := newFabricError(404, []byte(`{"Error":{"Code":"FABRIC_E_APPLICATION_NOT_FOUND","Message":"Application not found"}}`))

	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, "FABRIC_E_APPLICATION_NOT_FOUND", err.Code)
	assert.Equal(t, "Application not found", err.Message)
	assert.Contains(t, err.Error(), "FABRIC_E_APPLICATION_NOT_FOUND")
}

func TestNewFabricErrorKeepsPlainBody(t *testing.T) {
	err := newFabricError(502, []byte("  bad gateway \n"))

	assert.Equal(t, "", err.Code)
	assert.Equal(t, "bad gateway", err.Message)
}

func TestFabricErrorTransient(t *testing.T) {
	cases := []struct {
		status    int
		code      string
		transient bool
	}{
		{400, "E_INVALIDARG", false},
		{404, "FABRIC_E_NODE_NOT_FOUND", false},
		{409, "FABRIC_E_BACKUP_POLICY_ALREADY_EXISTING", false},
		{429, "", true},
		{500, "", true},
		{501, "", false},
		{503, "FABRIC_E_SERVICE_TOO_BUSY", true},
		{400, "FABRIC_E_TIMEOUT", true},
		{400, "FABRIC_E_NOT_PRIMARY", true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d %s", c.status, c.code), func(t *testing.T) {
			err := &FabricError{StatusCode: c.status, Code: c.code}
			assert.Equal(t, c.transient, err.Transient())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&FabricError{StatusCode: 404}))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", &FabricError{StatusCode: 404})))
	assert.False(t, IsNotFound(&FabricError{StatusCode: 400}))
	assert.False(t, IsNotFound(errors.New("404")))
	assert.False(t, IsNotFound(nil))
}
