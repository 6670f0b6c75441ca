package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/model/servicefabric"
	"github.com/samber/lo"
	"net/http"
	"strings"
)

// transientCodes are the fabric error codes that indicate the request can be sent again unchanged.
var transientCodes = []string{
	servicefabric.FabricErrorCodeTimeout,
	servicefabric.FabricErrorCodeNotReady,
	servicefabric.FabricErrorCodeServiceTooBusy,
	servicefabric.FabricErrorCodeNotPrimary,
	servicefabric.FabricErrorCodeReconfigurationPending,
}

// FabricError is returned for any non 2xx response from the cluster.
type FabricError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *FabricError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("service fabric request failed with status %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("service fabric request failed with status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Transient reports whether retrying the same request may succeed.
func (e *FabricError) Transient() bool {
	if lo.Contains(transientCodes, e.Code) {
		return true
	}

	return e.StatusCode == http.StatusTooManyRequests ||
		(e.StatusCode >= 500 && e.StatusCode != http.StatusNotImplemented)
}

// newFabricError decodes the error envelope. Bodies that are not an envelope are kept as the message.
func newFabricError(statusCode int, body []byte) *FabricError {
	envelope := servicefabric.FabricErrorEnvelope{}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		return &FabricError{
			StatusCode: statusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}

	return &FabricError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// IsNotFound reports whether err is a fabric error for a missing entity.
func IsNotFound(err error) bool {
	var fabricErr *FabricError
	if !errors.As(err, &fabricErr) {
		return false
	}

	return fabricErr.StatusCode == http.StatusNotFound
}
