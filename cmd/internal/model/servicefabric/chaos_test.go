package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
	"testing"
	"time"
)

func TestChaosEventsSegmentDecode(t *testing.T) {
	segment := ChaosEventsSegment{}
	err := json.Unmarshal([]byte(`{
		"ContinuationToken": "2024-03-01T10:00:00Z",
		"History": [
			{
				"ChaosEvent": {
					"Kind": "Started",
					"TimeStampUtc": "2024-03-01T09:00:00Z",
					"ChaosParameters": {"MaxConcurrentFaults": 2, "EnableMoveReplicaFaults": true, "TimeToRunInSeconds": "600"}
				}
			},
			{"ChaosEvent": {"Kind": "ExecutingFaults", "TimeStampUtc": "2024-03-01T09:01:00Z", "Faults": ["RestartNode _Node_0"]}},
			{"ChaosEvent": {"Kind": "Waiting", "TimeStampUtc": "2024-03-01T09:02:00Z", "Reason": "stabilizing"}},
			{"ChaosEvent": {"Kind": "Stopped", "TimeStampUtc": "2024-03-01T09:10:00Z", "Reason": "TimeToRun elapsed"}}
		]
	}`), &segment)

	require.NoError(t, err)
	assert.True(t, segment.HasMore())
	require.Len(t, segment.History, 4)

	started := segment.History[0].ChaosEvent.(*StartedChaosEvent)
	assert.Equal(t, int64(2), *started.ChaosParameters.MaxConcurrentFaults)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), started.GetTimeStampUtc())

	faults := segment.History[1].ChaosEvent.(*ExecutingFaultsChaosEvent)
	assert.Equal(t, []string{"RestartNode _Node_0"}, faults.Faults)

	assert.Equal(t, ChaosEventKindWaiting, segment.History[2].ChaosEvent.ChaosEventKind())
	assert.Equal(t, ChaosEventKindStopped, segment.History[3].ChaosEvent.ChaosEventKind())
}

func TestChaosEventConstructors(t *testing.T) {
	_, err := NewTestErrorChaosEvent(time.Time{}, ptr.To("boom"))
	var nullError *validation.ArgumentNullError
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "timeStampUtc", nullError.Param)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	failed, err := NewValidationFailedChaosEvent(now, ptr.To("cluster unhealthy"))
	require.NoError(t, err)
	assert.Equal(t, ChaosEventKindValidationFailed, failed.ChaosEventKind())

	body, err := json.Marshal(ChaosEventWrapper{ChaosEvent: failed})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ChaosEvent":{"Kind":"ValidationFailed","TimeStampUtc":"2024-03-01T12:00:00Z","Reason":"cluster unhealthy"}}`, string(body))
}

func TestChaosParametersRanges(t *testing.T) {
	assert.NoError(t, ChaosParameters{MaxConcurrentFaults: ptr.To(MaxChaosSeconds)}.Validate())

	err := ChaosParameters{WaitTimeBetweenFaultsInSeconds: ptr.To(MaxChaosSeconds + 1)}.Validate()
	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "waitTimeBetweenFaultsInSeconds", rangeError.Param)

	err = ChaosParameters{ClusterHealthPolicy: &ClusterHealthPolicy{MaxPercentUnhealthyNodes: ptr.To[int32](-5)}}.Validate()
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))
}

func TestSafetyCheckKinds(t *testing.T) {
	partitionId := uuid.New()

	checks := []SafetyCheck{
		NewSeedNodeSafetyCheck(),
		NewEnsurePartitionQuorumSafetyCheck(&partitionId),
		NewWaitForInbuildReplicaSafetyCheck(&partitionId),
		NewWaitForPrimaryPlacementSafetyCheck(&partitionId),
		NewWaitForPrimarySwapSafetyCheck(&partitionId),
		NewWaitForReconfigurationSafetyCheck(&partitionId),
		NewEnsureAvailabilitySafetyCheck(&partitionId),
	}

	for _, check := range checks {
		body, err := json.Marshal(SafetyCheckWrapper{SafetyCheck: check})
		require.NoError(t, err)

		decoded := SafetyCheckWrapper{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, check.SafetyCheckKind(), decoded.SafetyCheck.SafetyCheckKind())

		if partitionCheck, ok := decoded.SafetyCheck.(PartitionSafetyCheck); ok {
			assert.Equal(t, partitionId, *partitionCheck.GetPartitionId())
		}
	}
}
