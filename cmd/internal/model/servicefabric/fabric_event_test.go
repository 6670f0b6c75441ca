package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

const clusterEvents = `[
	{
		"Kind": "NodeDown",
		"EventInstanceId": "1d5b1e2c-3f4a-4b5c-8d6e-7f8091a2b3c4",
		"TimeStamp": "2024-03-01T10:15:00Z",
		"Category": "StateTransition",
		"HasCorrelatedEvents": false,
		"NodeName": "_Node_0",
		"NodeInstance": 131738476284215180,
		"LastNodeUpAt": "2024-02-28T08:00:00Z"
	},
	{
		"Kind": "ClusterNewHealthReport",
		"EventInstanceId": "2e6c2f3d-4a5b-4c6d-9e7f-8091a2b3c4d5",
		"TimeStamp": "2024-03-01T10:16:00Z",
		"SourceId": "System.FM",
		"Property": "Nodes",
		"HealthState": "Warning",
		"TimeToLiveMs": 3600000,
		"SequenceNumber": 17,
		"Description": "node down",
		"RemoveWhenExpired": true,
		"SourceUtcTimestamp": "2024-03-01T10:16:00Z"
	},
	{
		"Kind": "ChaosReplicaRestartScheduled",
		"EventInstanceId": "3f7d3a4e-5b6c-4d7e-8f80-91a2b3c4d5e6",
		"TimeStamp": "2024-03-01T10:17:00Z",
		"PartitionId": "0e0c5c1a-5d1b-4f2a-8a55-6f70b3f0e9a1",
		"ReplicaId": 131738476284215181,
		"FaultGroupId": "4a8e4b5f-6c7d-4e8f-9091-a2b3c4d5e6f7",
		"FaultId": "5b9f5c60-7d8e-4f90-a1a2-b3c4d5e6f708",
		"ServiceUri": "fabric:/shop/cart"
	}
]`

func TestUnmarshalFabricEventList(t *testing.T) {
	events, err := UnmarshalFabricEventList([]byte(clusterEvents))

	require.NoError(t, err)
	require.Len(t, events, 3)

	nodeDown, ok := events[0].(*NodeDownEvent)
	require.True(t, ok)
	assert.Equal(t, FabricEventKindNodeDown, nodeDown.FabricEventKind())
	assert.Equal(t, "_Node_0", nodeDown.GetNodeName())
	assert.Equal(t, int64(131738476284215180), nodeDown.NodeInstance)
	assert.Equal(t, time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC), nodeDown.LastNodeUpAt)
	assert.NoError(t, nodeDown.Validate())

	report, ok := events[1].(ClusterEvent)
	require.True(t, ok)
	assert.Equal(t, FabricEventKindClusterNewHealthReport, report.FabricEventKind())
	assert.Equal(t, "Nodes", report.(*ClusterNewHealthReportEvent).Property)

	restart, ok := events[2].(ReplicaEvent)
	require.True(t, ok)
	assert.Equal(t, int64(131738476284215181), restart.GetReplicaId())
	assert.Equal(t, uuid.MustParse("0e0c5c1a-5d1b-4f2a-8a55-6f70b3f0e9a1"), restart.GetPartitionId())
	assert.NoError(t, restart.Validate())
}

func TestFabricEventRoundTrip(t *testing.T) {
	events, err := UnmarshalFabricEventList([]byte(clusterEvents))
	require.NoError(t, err)

	for _, event := range events {
		body, err := json.Marshal(event)
		require.NoError(t, err)

		decoded, err := UnmarshalFabricEvent(body)
		require.NoError(t, err)
		assert.Equal(t, event, decoded)
	}
}

func TestNewFabricEventValidates(t *testing.T) {
	base := FabricEventBase{EventInstanceId: uuid.New(), TimeStamp: time.Now().UTC()}

	_, err := NewFabricEvent(&ApplicationCreatedEvent{
		ApplicationEventBase: ApplicationEventBase{FabricEventBase: base},
		ApplicationTypeName:  "ShopType",
	})
	var nullError *validation.ArgumentNullError
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "applicationId", nullError.Param)

	_, err = NewFabricEvent(&NodeUpEvent{NodeEventBase: NodeEventBase{NodeName: "_Node_0"}})
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "eventInstanceId", nullError.Param)

	_, err = NewFabricEvent(&PartitionNewHealthReportEvent{
		PartitionEventBase: PartitionEventBase{FabricEventBase: base, PartitionId: uuid.New()},
		HealthReportFields: HealthReportFields{SourceId: "watchdog", HealthState: "Ok"},
	})
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "property", nullError.Param)

	_, err = NewFabricEvent(&ChaosNodeRestartScheduledEvent{
		NodeEventBase: NodeEventBase{FabricEventBase: base, NodeName: "_Node_1"},
	})
	require.True(t, errors.As(err, &nullError))
	assert.Equal(t, "faultGroupId", nullError.Param)

	var missing *ServiceCreatedEvent
	_, err = NewFabricEvent(missing)
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))

	created, err := NewFabricEvent(&ServiceCreatedEvent{
		ServiceEventBase:      ServiceEventBase{FabricEventBase: base, ServiceId: "shop~cart"},
		ServiceTypeName:       "CartType",
		ApplicationName:       "fabric:/shop",
		ApplicationTypeName:   "ShopType",
		ServicePackageVersion: "1.0.0",
		PartitionId:           uuid.New(),
		IsStateful:            true,
		PartitionCount:        3,
	})
	require.NoError(t, err)
	assert.Equal(t, "shop~cart", created.GetServiceId())
	assert.Equal(t, FabricEventKindServiceCreated, created.FabricEventKind())
}

func TestFabricEventFamilyCoversEveryLeafKind(t *testing.T) {
	bases := []FabricEventKind{
		FabricEventKindApplicationEvent,
		FabricEventKindClusterEvent,
		FabricEventKindContainerInstanceEvent,
		FabricEventKindNodeEvent,
		FabricEventKindPartitionEvent,
		FabricEventKindReplicaEvent,
		FabricEventKindServiceEvent,
	}

	for _, kind := range PossibleFabricEventKindValues() {
		factory, ok := fabricEventFamily.variants[string(kind)]
		if lo.Contains(bases, kind) {
			assert.False(t, ok, "base kind %s must not decode", kind)
			continue
		}

		if assert.True(t, ok, "no variant for %s", kind) {
			assert.Equal(t, kind, factory().FabricEventKind())
		}
	}
}

// eventRequiredProperties lists the kind specific properties every event kind must carry, on top of
// the properties of its subject base.
var eventRequiredProperties = map[FabricEventKind][]string{
	FabricEventKindApplicationCreated:                   {"applicationTypeName", "applicationTypeVersion", "applicationDefinitionKind"},
	FabricEventKindApplicationDeleted:                   {"applicationTypeName", "applicationTypeVersion"},
	FabricEventKindApplicationNewHealthReport:           {"sourceId", "property", "healthState"},
	FabricEventKindApplicationHealthReportExpired:       {"sourceId", "property", "healthState"},
	FabricEventKindApplicationUpgradeStarted:            {"applicationTypeName", "currentApplicationTypeVersion", "applicationTypeVersion", "upgradeType", "rollingUpgradeMode", "failureAction"},
	FabricEventKindApplicationUpgradeCompleted:          {"applicationTypeName", "applicationTypeVersion"},
	FabricEventKindApplicationUpgradeRollbackStarted:    {"applicationTypeName", "currentApplicationTypeVersion", "applicationTypeVersion", "failureReason"},
	FabricEventKindApplicationProcessExited:             {"serviceName", "servicePackageName", "codePackageName", "entryPointType", "hostId", "exeName"},
	FabricEventKindApplicationContainerInstanceExited:   {"serviceName", "servicePackageName", "codePackageName", "entryPointType", "hostId", "imageName", "containerName"},
	FabricEventKindChaosCodePackageRestartScheduled:     {"faultGroupId", "faultId", "nodeName", "serviceManifestName", "codePackageName"},
	FabricEventKindClusterNewHealthReport:               {"sourceId", "property", "healthState"},
	FabricEventKindClusterHealthReportExpired:           {"sourceId", "property", "healthState"},
	FabricEventKindClusterUpgradeStarted:                {"currentClusterVersion", "targetClusterVersion", "upgradeType", "rollingUpgradeMode", "failureAction"},
	FabricEventKindClusterUpgradeCompleted:              {"targetClusterVersion"},
	FabricEventKindClusterUpgradeRollbackStarted:        {"targetClusterVersion", "failureReason"},
	FabricEventKindChaosStarted:                         {"clusterHealthPolicy"},
	FabricEventKindChaosStopped:                         {"reason"},
	FabricEventKindNodeAdded:                            {"nodeId", "nodeType", "fabricVersion", "ipAddressOrFQDN"},
	FabricEventKindNodeRemoved:                          {"nodeId", "nodeType", "fabricVersion", "ipAddressOrFQDN"},
	FabricEventKindNodeDown:                             {},
	FabricEventKindNodeUp:                               {},
	FabricEventKindNodeNewHealthReport:                  {"sourceId", "property", "healthState"},
	FabricEventKindNodeHealthReportExpired:              {"sourceId", "property", "healthState"},
	FabricEventKindNodeOpenSucceeded:                    {"nodeId", "upgradeDomain", "faultDomain", "ipAddressOrFQDN", "hostname", "nodeVersion"},
	FabricEventKindNodeOpenFailed:                       {"nodeId", "upgradeDomain", "faultDomain", "ipAddressOrFQDN", "hostname", "nodeVersion", "error"},
	FabricEventKindNodeDeactivateStarted:                {"batchId", "deactivateIntent"},
	FabricEventKindNodeDeactivateCompleted:              {"effectiveDeactivateIntent"},
	FabricEventKindChaosNodeRestartScheduled:            {"faultGroupId", "faultId"},
	FabricEventKindPartitionNewHealthReport:             {"sourceId", "property", "healthState"},
	FabricEventKindPartitionHealthReportExpired:         {"sourceId", "property", "healthState"},
	FabricEventKindPartitionReconfigured:                {"nodeName", "nodeInstanceId", "serviceType", "reconfigType", "result"},
	FabricEventKindPartitionPrimaryMoveAnalysis:         {"previousNode", "currentNode", "moveReason"},
	FabricEventKindChaosPartitionPrimaryMoveScheduled:   {"faultGroupId", "faultId", "serviceName", "nodeTo"},
	FabricEventKindChaosPartitionSecondaryMoveScheduled: {"faultGroupId", "faultId", "serviceName", "sourceNode", "destinationNode"},
	FabricEventKindStatefulReplicaNewHealthReport:       {"sourceId", "property", "healthState"},
	FabricEventKindStatefulReplicaHealthReportExpired:   {"sourceId", "property", "healthState"},
	FabricEventKindStatelessReplicaNewHealthReport:      {"sourceId", "property", "healthState"},
	FabricEventKindStatelessReplicaHealthReportExpired:  {"sourceId", "property", "healthState"},
	FabricEventKindChaosReplicaRemovalScheduled:         {"faultGroupId", "faultId", "serviceUri"},
	FabricEventKindChaosReplicaRestartScheduled:         {"faultGroupId", "faultId", "serviceUri"},
	FabricEventKindServiceCreated:                       {"serviceTypeName", "applicationName", "applicationTypeName", "servicePackageVersion", "partitionId"},
	FabricEventKindServiceDeleted:                       {"serviceTypeName", "applicationName", "applicationTypeName", "servicePackageVersion"},
	FabricEventKindServiceNewHealthReport:               {"sourceId", "property", "healthState"},
	FabricEventKindServiceHealthReportExpired:           {"sourceId", "property", "healthState"},
}

// completeEventPayload returns a payload carrying every subject property plus the named properties
// of kind.
func completeEventPayload(kind FabricEventKind, properties []string) map[string]any {
	guids := []string{"partitionId", "faultGroupId", "faultId"}

	payload := map[string]any{
		"Kind":            string(kind),
		"EventInstanceId": uuid.NewString(),
		"TimeStamp":       "2024-03-01T10:15:00Z",
		"NodeName":        "_Node_0",
		"ApplicationId":   "shop",
		"ServiceId":       "shop~cart",
		"PartitionId":     uuid.NewString(),
		"ReplicaId":       131738476284215181,
	}

	for _, property := range properties {
		name := jsonPropertyName(property)
		if _, ok := payload[name]; ok {
			continue
		}

		if lo.Contains(guids, property) {
			payload[name] = uuid.NewString()
		} else {
			payload[name] = property + "-value"
		}
	}

	return payload
}

func jsonPropertyName(property string) string {
	return strings.ToUpper(property[:1]) + property[1:]
}

func TestEveryEventKindRequiresItsProperties(t *testing.T) {
	require.Len(t, eventRequiredProperties, len(fabricEventFamily.variants))

	for kind, properties := range eventRequiredProperties {
		payload := completeEventPayload(kind, properties)

		body, err := json.Marshal(payload)
		require.NoError(t, err)

		event, err := UnmarshalFabricEvent(body)
		require.NoError(t, err, "complete %s event", kind)
		assert.Equal(t, kind, event.FabricEventKind())

		_, err = NewFabricEvent(event)
		require.NoError(t, err)

		for _, property := range properties {
			incomplete := lo.OmitByKeys(payload, []string{jsonPropertyName(property)})

			body, err := json.Marshal(incomplete)
			require.NoError(t, err)

			_, err = UnmarshalFabricEvent(body)
			var nullError *validation.ArgumentNullError
			if assert.True(t, errors.As(err, &nullError), "%s decoded without %s", kind, property) {
				assert.Equal(t, property, nullError.Param)
			}

			built := fabricEventFamily.variants[string(kind)]()
			require.NoError(t, json.Unmarshal(body, built))

			_, err = NewFabricEvent(built)
			if assert.True(t, errors.As(err, &nullError), "%s built without %s", kind, property) {
				assert.Equal(t, property, nullError.Param)
			}
		}
	}
}
