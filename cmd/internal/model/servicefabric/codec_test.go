package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeUnknownKind(t *testing.T) {
	_, err := UnmarshalBackupStorageDescription([]byte(`{"StorageKind":"Tape","Path":"x"}`))

	var unknown *UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "BackupStorageDescription", unknown.Family)
	assert.Equal(t, "StorageKind", unknown.Discriminator)
	assert.Equal(t, "Tape", unknown.Value)
	assert.Equal(t, `BackupStorageDescription: unknown StorageKind "Tape"`, err.Error())
}

func TestDecodeMissingDiscriminator(t *testing.T) {
	_, err := UnmarshalSafetyCheck([]byte(`{"PartitionId":"6a7b5f4c-0c8a-4b53-a9e8-7f8b1b0c7d11"}`))

	require.Error(t, err)
	assert.Equal(t, `SafetyCheck: missing discriminator property "Kind"`, err.Error())
}

func TestDecodeNull(t *testing.T) {
	policy, err := UnmarshalRetentionPolicyDescription([]byte(`null`))

	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestDecodeValidatesVariant(t *testing.T) {
	policy, err := UnmarshalRetentionPolicyDescription([]byte(`{"RetentionPolicyType":"Basic","MinimumNumberOfBackups":-1}`))

	var nullError *validation.ArgumentNullError
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "retentionDuration", nullError.Param)
	assert.Nil(t, policy)

	policy, err = UnmarshalRetentionPolicyDescription([]byte(`{"RetentionPolicyType":"Basic","RetentionDuration":"P7D","MinimumNumberOfBackups":-1}`))

	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "minimumNumberOfBackups", rangeError.Param)
	assert.Nil(t, policy)

	event, err := UnmarshalFabricEvent([]byte(`{"Kind":"NodeDown"}`))

	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "eventInstanceId", nullError.Param)
	assert.Nil(t, event)
}

func TestDecodeListStopsAtInvalidItem(t *testing.T) {
	_, err := UnmarshalFabricEventList([]byte(`[
		{"Kind":"ChaosStopped","EventInstanceId":"1d5b1e2c-3f4a-4b5c-8d6e-7f8091a2b3c4","TimeStamp":"2024-03-01T10:15:00Z","Reason":"done"},
		{"Kind":"ChaosStopped","EventInstanceId":"2e6c2f3d-4a5b-4c6d-9e7f-8091a2b3c4d5","TimeStamp":"2024-03-01T10:16:00Z"}
	]`))

	assert.True(t, errors.Is(err, validation.ErrArgumentNull))
	assert.Contains(t, err.Error(), "FabricEvent ChaosStopped")
}

func TestDecodeMalformedDiscriminator(t *testing.T) {
	_, err := UnmarshalExecutionPolicy([]byte(`{"type":3}`))

	require.Error(t, err)
}

func TestDecodeList(t *testing.T) {
	policies, err := servicePlacementPolicyFamily.decodeList([]byte(`[
		{"Type":"PreferPrimaryDomain","DomainName":"fd:/dc1"},
		{"Type":"NonPartiallyPlaceService"}
	]`))

	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, ServicePlacementPolicyTypePreferPrimaryDomain, policies[0].PolicyType())
	assert.Equal(t, "fd:/dc1", *policies[0].(*ServicePlacementPreferPrimaryDomainPolicyDescription).DomainName)
	assert.Equal(t, ServicePlacementPolicyTypeNonPartiallyPlaceService, policies[1].PolicyType())
}

func TestMarshalKindedAddsDiscriminator(t *testing.T) {
	body, err := json.Marshal(NewDefaultExecutionPolicy())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Default"}`, string(body))

	restart, err := NewRunToCompletionExecutionPolicy(RestartPolicyOnFailure)
	require.NoError(t, err)

	body, err = json.Marshal(restart)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"RunToCompletion","restart":"OnFailure"}`, string(body))
}
