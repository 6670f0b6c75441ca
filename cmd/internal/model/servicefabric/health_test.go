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

func TestHealthStateCountNegativeOk(t *testing.T) {
	count, err := NewHealthStateCount(-1, 0, 0)

	assert.Nil(t, count)

	var rangeError *validation.ArgumentOutOfRangeError
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, "okCount", rangeError.Param)
}

func TestHealthStateCountBounds(t *testing.T) {
	tests := []struct {
		ok, warning, errorCount int64
		wantParam               string
	}{
		{0, 0, 0, ""},
		{10, 2, 1, ""},
		{0, -1, 0, "warningCount"},
		{0, 0, -1, "errorCount"},
	}

	for _, tt := range tests {
		count, err := NewHealthStateCount(tt.ok, tt.warning, tt.errorCount)

		if tt.wantParam == "" {
			require.NoError(t, err)
			assert.Equal(t, tt.ok, count.OkCount)
			assert.Equal(t, tt.warning, count.WarningCount)
			assert.Equal(t, tt.errorCount, count.ErrorCount)
			assert.Equal(t, tt.ok+tt.warning+tt.errorCount, count.Total())
			continue
		}

		var rangeError *validation.ArgumentOutOfRangeError
		require.True(t, errors.As(err, &rangeError))
		assert.Equal(t, tt.wantParam, rangeError.Param)
	}
}

func TestHealthInformationRequired(t *testing.T) {
	_, err := NewHealthInformation("", "Availability", HealthStateWarning)
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))

	information, err := NewHealthInformation("watchdog", "Availability", HealthStateWarning)
	require.NoError(t, err)
	assert.Equal(t, "watchdog", information.SourceId)
}

func TestClusterHealthPolicyValidate(t *testing.T) {
	assert.NoError(t, ClusterHealthPolicy{MaxPercentUnhealthyNodes: ptr.To[int32](100)}.Validate())
	assert.Error(t, ClusterHealthPolicy{MaxPercentUnhealthyApplications: ptr.To[int32](101)}.Validate())
	assert.Error(t, ClusterHealthPolicy{
		ApplicationTypeHealthPolicyMap: []ApplicationTypeHealthPolicyMapItem{{Key: "", Value: 5}},
	}.Validate())
}

func TestClusterHealthDecode(t *testing.T) {
	health := ClusterHealth{}
	err := json.Unmarshal([]byte(`{
		"AggregatedHealthState": "Error",
		"HealthEvents": [],
		"UnhealthyEvaluations": [
			{
				"HealthEvaluation": {
					"Kind": "Nodes",
					"AggregatedHealthState": "Error",
					"MaxPercentUnhealthyNodes": 0,
					"TotalCount": 3,
					"UnhealthyEvaluations": [
						{
							"HealthEvaluation": {
								"Kind": "Node",
								"NodeName": "_Node_1",
								"AggregatedHealthState": "Error",
								"UnhealthyEvaluations": [
									{
										"HealthEvaluation": {
											"Kind": "Event",
											"AggregatedHealthState": "Error",
											"ConsiderWarningAsError": false,
											"UnhealthyEvent": {
												"SourceId": "System.FM",
												"Property": "State",
												"HealthState": "Error",
												"IsExpired": false
											}
										}
									}
								]
							}
						}
					]
				}
			}
		],
		"HealthStatistics": {
			"HealthStateCountList": [
				{"EntityKind": "Node", "HealthStateCount": {"OkCount": 2, "WarningCount": 0, "ErrorCount": 1}}
			]
		},
		"NodeHealthStates": [{"Name": "_Node_1", "AggregatedHealthState": "Error", "Id": {"Id": "abc"}}]
	}`), &health)

	require.NoError(t, err)
	assert.Equal(t, HealthStateError, *health.AggregatedHealthState)
	require.Len(t, health.UnhealthyEvaluations, 1)

	nodes := health.UnhealthyEvaluations[0].HealthEvaluation.(*NodesHealthEvaluation)
	assert.Equal(t, int64(3), *nodes.TotalCount)

	node := nodes.UnhealthyEvaluations[0].HealthEvaluation.(*NodeHealthEvaluation)
	assert.Equal(t, "_Node_1", *node.NodeName)

	event := node.UnhealthyEvaluations[0].HealthEvaluation.(*EventHealthEvaluation)
	assert.Equal(t, HealthEvaluationKindEvent, event.HealthEvaluationKind())
	assert.Equal(t, "System.FM", event.UnhealthyEvent.SourceId)

	nodeCount := health.HealthStatistics.CountFor(EntityKindNode)
	require.NotNil(t, nodeCount)
	assert.Equal(t, int64(1), nodeCount.ErrorCount)
	assert.Nil(t, health.HealthStatistics.CountFor(EntityKindReplica))
}

func TestHealthEvaluationRoundTrip(t *testing.T) {
	wrapper := HealthEvaluationWrapper{HealthEvaluation: &ApplicationsHealthEvaluation{
		HealthEvaluationBase:            HealthEvaluationBase{AggregatedHealthState: ptr.To(HealthStateWarning)},
		MaxPercentUnhealthyApplications: ptr.To[int32](0),
		TotalCount:                      ptr.To[int64](4),
	}}

	body, err := json.Marshal(wrapper)
	require.NoError(t, err)

	decoded := HealthEvaluationWrapper{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, wrapper, decoded)
}
