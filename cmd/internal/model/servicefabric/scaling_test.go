package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAddRemoveReplicaScalingMechanismKind(t *testing.T) {
	for _, counts := range [][3]int32{{1, 5, 1}, {0, 0, 2}, {3, 30, 3}} {
		mechanism, err := NewAddRemoveReplicaScalingMechanism(counts[0], counts[1], counts[2])

		require.NoError(t, err)
		assert.Equal(t, AutoScalingMechanismKindAddRemoveReplica, mechanism.AutoScalingMechanismKind())
		assert.Equal(t, counts[0], mechanism.MinCount)
		assert.Equal(t, counts[1], mechanism.MaxCount)
		assert.Equal(t, counts[2], mechanism.ScaleIncrement)
	}
}

func TestAddRemoveReplicaScalingMechanismBounds(t *testing.T) {
	_, err := NewAddRemoveReplicaScalingMechanism(-1, 5, 1)
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))

	_, err = NewAddRemoveReplicaScalingMechanism(0, -1, 1)
	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "maxCount", rangeError.Param)

	// count ordering and the increment are left to the cluster
	mechanism, err := NewAddRemoveReplicaScalingMechanism(5, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), mechanism.MinCount)
	assert.Equal(t, int32(4), mechanism.MaxCount)

	named, err := NewAddRemoveIncrementalNamedPartitionScalingMechanism(3, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), named.MaxPartitionCount)

	_, err = NewAddRemoveIncrementalNamedPartitionScalingMechanism(0, 2, 1)
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "minPartitionCount", rangeError.Param)

	metric, err := NewAutoScalingResourceMetric(AutoScalingResourceMetricNameCpu)
	require.NoError(t, err)

	trigger, err := NewAverageLoadScalingTrigger(metric, 0.8, 0.2, 60)
	require.NoError(t, err)
	assert.Equal(t, 0.8, trigger.LowerLoadThreshold)
}

func TestAutoScalingPolicyJSON(t *testing.T) {
	metric, err := NewAutoScalingResourceMetric(AutoScalingResourceMetricNameCpu)
	require.NoError(t, err)

	trigger, err := NewAverageLoadScalingTrigger(metric, 0.2, 0.8, 60)
	require.NoError(t, err)

	mechanism, err := NewAddRemoveReplicaScalingMechanism(1, 10, 1)
	require.NoError(t, err)

	policy, err := NewAutoScalingPolicy("cpu", trigger, mechanism)
	require.NoError(t, err)

	body, err := json.Marshal(policy)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "cpu",
		"trigger": {
			"kind": "AverageLoad",
			"metric": {"kind": "Resource", "name": "cpu"},
			"lowerLoadThreshold": 0.2,
			"upperLoadThreshold": 0.8,
			"scaleIntervalInSeconds": 60
		},
		"mechanism": {"kind": "AddRemoveReplica", "minCount": 1, "maxCount": 10, "scaleIncrement": 1}
	}`, string(body))

	decoded := AutoScalingPolicy{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, *policy, decoded)
}

func TestAutoScalingPolicyValidation(t *testing.T) {
	mechanism, err := NewAddRemoveReplicaScalingMechanism(1, 10, 1)
	require.NoError(t, err)

	_, err = NewAutoScalingPolicy("cpu", nil, mechanism)
	var nullError *validation.ArgumentNullError
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "trigger", nullError.Param)

	_, err = NewAverageLoadScalingTrigger(nil, 0.1, 0.5, 60)
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))

	metric, err := NewAutoScalingResourceMetric(AutoScalingResourceMetricNameMemoryInGB)
	require.NoError(t, err)

	_, err = NewAverageLoadScalingTrigger(metric, 0.1, 0.5, 59)
	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "scaleIntervalInSeconds", rangeError.Param)
}

func TestScalingPolicyDescriptionJSON(t *testing.T) {
	trigger, err := NewAverageServiceLoadScalingTrigger("servicefabric:/_CpuCores", "0.25", "0.75", 600, true)
	require.NoError(t, err)

	mechanism, err := NewAddRemoveIncrementalNamedPartitionScalingMechanism(1, 5, 1)
	require.NoError(t, err)

	policy, err := NewScalingPolicyDescription(trigger, mechanism)
	require.NoError(t, err)

	body, err := json.Marshal(policy)
	require.NoError(t, err)

	decoded := ScalingPolicyDescription{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, *policy, decoded)
	assert.Equal(t, ScalingTriggerKindAverageServiceLoad, decoded.ScalingTrigger.ScalingTriggerKind())
	assert.Equal(t, ScalingMechanismKindAddRemoveIncrementalNamedPartition, decoded.ScalingMechanism.ScalingMechanismKind())

	_, err = NewAveragePartitionLoadScalingTrigger("metric", "1", "2", 4294967296)
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))

	_, err = NewPartitionInstanceCountScaleMechanism(1, -2, 1)
	assert.True(t, errors.Is(err, validation.ErrArgumentOutOfRange))

	unbounded, err := NewPartitionInstanceCountScaleMechanism(1, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), unbounded.MaxInstanceCount)
}
