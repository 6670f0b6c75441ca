package servicefabric

import "github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"

// ClusterNewHealthReportEvent describes the Cluster Health Report Created event.
type ClusterNewHealthReportEvent struct {
	ClusterEventBase
	HealthReportFields
}

func (e ClusterNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindClusterNewHealthReport
}

func (e ClusterNewHealthReportEvent) Validate() error {
	return validation.First(e.ClusterEventBase.Validate(), e.validateReport())
}

func (e ClusterNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias ClusterNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ClusterHealthReportExpiredEvent describes the Cluster Health Report Expired event.
type ClusterHealthReportExpiredEvent struct {
	ClusterEventBase
	HealthReportFields
}

func (e ClusterHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindClusterHealthReportExpired
}

func (e ClusterHealthReportExpiredEvent) Validate() error {
	return validation.First(e.ClusterEventBase.Validate(), e.validateReport())
}

func (e ClusterHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias ClusterHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ClusterUpgradeStartedEvent describes the Cluster Upgrade Started event.
type ClusterUpgradeStartedEvent struct {
	ClusterEventBase

	// Current Cluster version.
	CurrentClusterVersion string `json:"CurrentClusterVersion"`

	// Target Cluster version.
	TargetClusterVersion string `json:"TargetClusterVersion"`

	// Type of upgrade.
	UpgradeType string `json:"UpgradeType"`

	// Mode of upgrade.
	RollingUpgradeMode string `json:"RollingUpgradeMode"`

	// Action if failed.
	FailureAction string `json:"FailureAction"`
}

func (e ClusterUpgradeStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindClusterUpgradeStarted
}

func (e ClusterUpgradeStartedEvent) Validate() error {
	return validation.First(
		e.ClusterEventBase.Validate(),
		validation.RequiredString("currentClusterVersion", e.CurrentClusterVersion),
		validation.RequiredString("targetClusterVersion", e.TargetClusterVersion),
		validation.RequiredString("upgradeType", e.UpgradeType),
		validation.RequiredString("rollingUpgradeMode", e.RollingUpgradeMode),
		validation.RequiredString("failureAction", e.FailureAction))
}

func (e ClusterUpgradeStartedEvent) MarshalJSON() ([]byte, error) {
	type alias ClusterUpgradeStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ClusterUpgradeCompletedEvent describes the Cluster Upgrade Completed event.
type ClusterUpgradeCompletedEvent struct {
	ClusterEventBase

	// Target Cluster version.
	TargetClusterVersion string `json:"TargetClusterVersion"`

	// Overall duration of upgrade in milli-seconds.
	OverallUpgradeElapsedTimeInMs float64 `json:"OverallUpgradeElapsedTimeInMs"`
}

func (e ClusterUpgradeCompletedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindClusterUpgradeCompleted
}

func (e ClusterUpgradeCompletedEvent) Validate() error {
	return validation.First(
		e.ClusterEventBase.Validate(),
		validation.RequiredString("targetClusterVersion", e.TargetClusterVersion))
}

func (e ClusterUpgradeCompletedEvent) MarshalJSON() ([]byte, error) {
	type alias ClusterUpgradeCompletedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ClusterUpgradeRollbackStartedEvent describes the Cluster Upgrade Rollback Started event.
type ClusterUpgradeRollbackStartedEvent struct {
	ClusterEventBase

	// Target Cluster version.
	TargetClusterVersion string `json:"TargetClusterVersion"`

	// Describes failure.
	FailureReason string `json:"FailureReason"`

	// Overall duration of upgrade in milli-seconds.
	OverallUpgradeElapsedTimeInMs float64 `json:"OverallUpgradeElapsedTimeInMs"`
}

func (e ClusterUpgradeRollbackStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindClusterUpgradeRollbackStarted
}

func (e ClusterUpgradeRollbackStartedEvent) Validate() error {
	return validation.First(
		e.ClusterEventBase.Validate(),
		validation.RequiredString("targetClusterVersion", e.TargetClusterVersion),
		validation.RequiredString("failureReason", e.FailureReason))
}

func (e ClusterUpgradeRollbackStartedEvent) MarshalJSON() ([]byte, error) {
	type alias ClusterUpgradeRollbackStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosStartedEvent describes the Chaos Started event.
type ChaosStartedEvent struct {
	ClusterEventBase

	// Maximum number of concurrent faults.
	MaxConcurrentFaults int64 `json:"MaxConcurrentFaults"`

	// Time to run in seconds.
	TimeToRunInSeconds float64 `json:"TimeToRunInSeconds"`

	// Maximum timeout for cluster stabilization in seconds.
	MaxClusterStabilizationTimeoutInSeconds float64 `json:"MaxClusterStabilizationTimeoutInSeconds"`

	// Wait time between iterations in seconds.
	WaitTimeBetweenIterationsInSeconds float64 `json:"WaitTimeBetweenIterationsInSeconds"`

	// Wait time between faults in seconds.
	WaitTimeBetweenFaultsInSeconds float64 `json:"WaitTimeBetweenFaultsInSeconds"`

	// Indicates MoveReplica fault is enabled.
	MoveReplicaFaultEnabled bool `json:"MoveReplicaFaultEnabled"`

	// List of included Node types. Empty when every node type is included.
	IncludedNodeTypeList string `json:"IncludedNodeTypeList"`

	// List of included Applications. Empty when every application is included.
	IncludedApplicationList string `json:"IncludedApplicationList"`

	// Health policy.
	ClusterHealthPolicy string `json:"ClusterHealthPolicy"`

	// Chaos Context.
	ChaosContext string `json:"ChaosContext"`
}

func (e ChaosStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosStarted
}

func (e ChaosStartedEvent) Validate() error {
	return validation.First(
		e.ClusterEventBase.Validate(),
		validation.RequiredString("clusterHealthPolicy", e.ClusterHealthPolicy))
}

func (e ChaosStartedEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosStoppedEvent describes the Chaos Stopped event.
type ChaosStoppedEvent struct {
	ClusterEventBase

	// Describes reason.
	Reason string `json:"Reason"`
}

func (e ChaosStoppedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosStopped
}

func (e ChaosStoppedEvent) Validate() error {
	return validation.First(e.ClusterEventBase.Validate(), validation.RequiredString("reason", e.Reason))
}

func (e ChaosStoppedEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosStoppedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
