package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
	"testing"
)

func TestBasicRetentionPolicyMissingDuration(t *testing.T) {
	policy, err := NewBasicRetentionPolicyDescription("", ptr.To[int32](5))

	assert.Nil(t, policy)
	require.True(t, errors.Is(err, validation.ErrArgumentNull))

	var nullError *validation.ArgumentNullError
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "retentionDuration", nullError.Param)
}

func TestBasicRetentionPolicyNegativeMinimum(t *testing.T) {
	policy, err := NewBasicRetentionPolicyDescription("P30D", ptr.To[int32](-1))

	assert.Nil(t, policy)
	require.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))

	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "minimumNumberOfBackups", rangeError.Param)
}

func TestBasicRetentionPolicyBounds(t *testing.T) {
	tests := []struct {
		name    string
		minimum *int32
		wantErr bool
	}{
		{"unset", nil, false},
		{"zero", ptr.To[int32](0), false},
		{"positive", ptr.To[int32](20), false},
		{"negative", ptr.To[int32](-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewBasicRetentionPolicyDescription("P7D", tt.minimum)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, policy)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "P7D", policy.RetentionDuration)
			assert.Equal(t, tt.minimum, policy.MinimumNumberOfBackups)
			assert.Equal(t, RetentionPolicyTypeBasic, policy.RetentionPolicyType())
		})
	}
}

func TestBasicRetentionPolicyJSON(t *testing.T) {
	policy, err := NewBasicRetentionPolicyDescription("P30D", ptr.To[int32](3))
	require.NoError(t, err)

	body, err := json.Marshal(policy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"RetentionPolicyType":"Basic","RetentionDuration":"P30D","MinimumNumberOfBackups":3}`, string(body))

	decoded, err := UnmarshalRetentionPolicyDescription(body)
	require.NoError(t, err)
	assert.Equal(t, policy, decoded)
}
