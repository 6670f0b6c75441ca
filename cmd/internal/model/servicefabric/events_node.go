package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// NodeAddedEvent describes the Node Added event.
type NodeAddedEvent struct {
	NodeEventBase

	// Id of Node.
	NodeId string `json:"NodeId"`

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Type of Node.
	NodeType string `json:"NodeType"`

	// Fabric version.
	FabricVersion string `json:"FabricVersion"`

	// IP address or FQDN.
	IpAddressOrFQDN string `json:"IpAddressOrFQDN"`

	// Capacities.
	NodeCapacities string `json:"NodeCapacities"`
}

func (e NodeAddedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeAdded
}

func (e NodeAddedEvent) Validate() error {
	return validation.First(
		e.NodeEventBase.Validate(),
		validation.RequiredString("nodeId", e.NodeId),
		validation.RequiredString("nodeType", e.NodeType),
		validation.RequiredString("fabricVersion", e.FabricVersion),
		validation.RequiredString("ipAddressOrFQDN", e.IpAddressOrFQDN))
}

func (e NodeAddedEvent) MarshalJSON() ([]byte, error) {
	type alias NodeAddedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeRemovedEvent describes the Node Removed event.
type NodeRemovedEvent struct {
	NodeEventBase

	// Id of Node.
	NodeId string `json:"NodeId"`

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Type of Node.
	NodeType string `json:"NodeType"`

	// Fabric version.
	FabricVersion string `json:"FabricVersion"`

	// IP address or FQDN.
	IpAddressOrFQDN string `json:"IpAddressOrFQDN"`

	// Capacities.
	NodeCapacities string `json:"NodeCapacities"`
}

func (e NodeRemovedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeRemoved
}

func (e NodeRemovedEvent) Validate() error {
	return validation.First(
		e.NodeEventBase.Validate(),
		validation.RequiredString("nodeId", e.NodeId),
		validation.RequiredString("nodeType", e.NodeType),
		validation.RequiredString("fabricVersion", e.FabricVersion),
		validation.RequiredString("ipAddressOrFQDN", e.IpAddressOrFQDN))
}

func (e NodeRemovedEvent) MarshalJSON() ([]byte, error) {
	type alias NodeRemovedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeDownEvent describes the Node Down event.
type NodeDownEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Time when Node was last up.
	LastNodeUpAt time.Time `json:"LastNodeUpAt"`
}

func (e NodeDownEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeDown
}

func (e NodeDownEvent) MarshalJSON() ([]byte, error) {
	type alias NodeDownEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeUpEvent describes the Node Up event.
type NodeUpEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Time when Node was last down.
	LastNodeDownAt time.Time `json:"LastNodeDownAt"`
}

func (e NodeUpEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeUp
}

func (e NodeUpEvent) MarshalJSON() ([]byte, error) {
	type alias NodeUpEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeNewHealthReportEvent describes the Node Health Report Created event.
type NodeNewHealthReportEvent struct {
	NodeEventBase
	HealthReportFields

	// Id of Node instance.
	NodeInstanceId int64 `json:"NodeInstanceId"`
}

func (e NodeNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeNewHealthReport
}

func (e NodeNewHealthReportEvent) Validate() error {
	return validation.First(e.NodeEventBase.Validate(), e.validateReport())
}

func (e NodeNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias NodeNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeHealthReportExpiredEvent describes the Node Health Report Expired event.
type NodeHealthReportExpiredEvent struct {
	NodeEventBase
	HealthReportFields

	// Id of Node instance.
	NodeInstanceId int64 `json:"NodeInstanceId"`
}

func (e NodeHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeHealthReportExpired
}

func (e NodeHealthReportExpiredEvent) Validate() error {
	return validation.First(e.NodeEventBase.Validate(), e.validateReport())
}

func (e NodeHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias NodeHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeOpenSucceededEvent describes the Node Opened Succeeded event.
type NodeOpenSucceededEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Id of Node.
	NodeId string `json:"NodeId"`

	// Upgrade domain of Node.
	UpgradeDomain string `json:"UpgradeDomain"`

	// Fault domain of Node.
	FaultDomain string `json:"FaultDomain"`

	// IP address or FQDN.
	IpAddressOrFQDN string `json:"IpAddressOrFQDN"`

	// Name of Host.
	Hostname string `json:"Hostname"`

	// Indicates if it is seed node.
	IsSeedNode bool `json:"IsSeedNode"`

	// Version of Node.
	NodeVersion string `json:"NodeVersion"`
}

func (e NodeOpenSucceededEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeOpenSucceeded
}

func (e NodeOpenSucceededEvent) Validate() error {
	return validation.First(e.NodeEventBase.Validate(), validateNodeOpen(e.NodeId, e.UpgradeDomain, e.FaultDomain,
		e.IpAddressOrFQDN, e.Hostname, e.NodeVersion))
}

func (e NodeOpenSucceededEvent) MarshalJSON() ([]byte, error) {
	type alias NodeOpenSucceededEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeOpenFailedEvent describes the Node Open Failed event.
type NodeOpenFailedEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Id of Node.
	NodeId string `json:"NodeId"`

	// Upgrade domain of Node.
	UpgradeDomain string `json:"UpgradeDomain"`

	// Fault domain of Node.
	FaultDomain string `json:"FaultDomain"`

	// IP address or FQDN.
	IpAddressOrFQDN string `json:"IpAddressOrFQDN"`

	// Name of Host.
	Hostname string `json:"Hostname"`

	// Indicates if it is seed node.
	IsSeedNode bool `json:"IsSeedNode"`

	// Version of Node.
	NodeVersion string `json:"NodeVersion"`

	// Describes the error.
	Error string `json:"Error"`
}

func (e NodeOpenFailedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeOpenFailed
}

func (e NodeOpenFailedEvent) Validate() error {
	return validation.First(
		e.NodeEventBase.Validate(),
		validateNodeOpen(e.NodeId, e.UpgradeDomain, e.FaultDomain, e.IpAddressOrFQDN, e.Hostname, e.NodeVersion),
		validation.RequiredString("error", e.Error))
}

func (e NodeOpenFailedEvent) MarshalJSON() ([]byte, error) {
	type alias NodeOpenFailedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

func validateNodeOpen(nodeId, upgradeDomain, faultDomain, ipAddressOrFQDN, hostname, nodeVersion string) error {
	return validation.First(
		validation.RequiredString("nodeId", nodeId),
		validation.RequiredString("upgradeDomain", upgradeDomain),
		validation.RequiredString("faultDomain", faultDomain),
		validation.RequiredString("ipAddressOrFQDN", ipAddressOrFQDN),
		validation.RequiredString("hostname", hostname),
		validation.RequiredString("nodeVersion", nodeVersion))
}

// NodeDeactivateStartedEvent describes the Node Deactivate Started event.
type NodeDeactivateStartedEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Batch Id.
	BatchId string `json:"BatchId"`

	// Describes deactivate intent.
	DeactivateIntent string `json:"DeactivateIntent"`
}

func (e NodeDeactivateStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeDeactivateStarted
}

func (e NodeDeactivateStartedEvent) Validate() error {
	return validation.First(
		e.NodeEventBase.Validate(),
		validation.RequiredString("batchId", e.BatchId),
		validation.RequiredString("deactivateIntent", e.DeactivateIntent))
}

func (e NodeDeactivateStartedEvent) MarshalJSON() ([]byte, error) {
	type alias NodeDeactivateStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// NodeDeactivateCompletedEvent describes the Node Deactivate Completed event.
type NodeDeactivateCompletedEvent struct {
	NodeEventBase

	// Id of Node instance.
	NodeInstance int64 `json:"NodeInstance"`

	// Describes deactivate intent.
	EffectiveDeactivateIntent string `json:"EffectiveDeactivateIntent"`

	// Batch Ids. Empty when no batch is still deactivating the node.
	BatchIdsWithDeactivateIntent string `json:"BatchIdsWithDeactivateIntent"`

	// Start time.
	StartTime time.Time `json:"StartTime"`
}

func (e NodeDeactivateCompletedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindNodeDeactivateCompleted
}

func (e NodeDeactivateCompletedEvent) Validate() error {
	return validation.First(
		e.NodeEventBase.Validate(),
		validation.RequiredString("effectiveDeactivateIntent", e.EffectiveDeactivateIntent))
}

func (e NodeDeactivateCompletedEvent) MarshalJSON() ([]byte, error) {
	type alias NodeDeactivateCompletedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosNodeRestartScheduledEvent describes the Chaos Restart Node Fault Scheduled event.
type ChaosNodeRestartScheduledEvent struct {
	NodeEventBase
	ChaosFaultFields

	// Id of Node instance.
	NodeInstanceId int64 `json:"NodeInstanceId"`
}

func (e ChaosNodeRestartScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosNodeRestartScheduled
}

func (e ChaosNodeRestartScheduledEvent) Validate() error {
	return validation.First(e.NodeEventBase.Validate(), e.validateFault())
}

func (e ChaosNodeRestartScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosNodeRestartScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
