package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// PartitionNewHealthReportEvent describes the Partition Health Report Created event.
type PartitionNewHealthReportEvent struct {
	PartitionEventBase
	HealthReportFields
}

func (e PartitionNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindPartitionNewHealthReport
}

func (e PartitionNewHealthReportEvent) Validate() error {
	return validation.First(e.PartitionEventBase.Validate(), e.validateReport())
}

func (e PartitionNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias PartitionNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// PartitionHealthReportExpiredEvent describes the Partition Health Report Expired event.
type PartitionHealthReportExpiredEvent struct {
	PartitionEventBase
	HealthReportFields
}

func (e PartitionHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindPartitionHealthReportExpired
}

func (e PartitionHealthReportExpiredEvent) Validate() error {
	return validation.First(e.PartitionEventBase.Validate(), e.validateReport())
}

func (e PartitionHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias PartitionHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// PartitionReconfiguredEvent describes the Partition Reconfiguration event.
type PartitionReconfiguredEvent struct {
	PartitionEventBase

	// The name of a Service Fabric node.
	NodeName string `json:"NodeName"`

	// Id of Node instance.
	NodeInstanceId string `json:"NodeInstanceId"`

	// Type of Service.
	ServiceType string `json:"ServiceType"`

	// CcEpochDataLoss version.
	CcEpochDataLossVersion int64 `json:"CcEpochDataLossVersion"`

	// CcEpochConfig version.
	CcEpochConfigVersion int64 `json:"CcEpochConfigVersion"`

	// Type of reconfiguration.
	ReconfigType string `json:"ReconfigType"`

	// Describes reconfiguration result.
	Result string `json:"Result"`

	// Duration of Phase0 in milli-seconds.
	Phase0DurationMs float64 `json:"Phase0DurationMs"`

	// Duration of Phase1 in milli-seconds.
	Phase1DurationMs float64 `json:"Phase1DurationMs"`

	// Duration of Phase2 in milli-seconds.
	Phase2DurationMs float64 `json:"Phase2DurationMs"`

	// Duration of Phase3 in milli-seconds.
	Phase3DurationMs float64 `json:"Phase3DurationMs"`

	// Duration of Phase4 in milli-seconds.
	Phase4DurationMs float64 `json:"Phase4DurationMs"`

	// Total duration in milli-seconds.
	TotalDurationMs float64 `json:"TotalDurationMs"`
}

func (e PartitionReconfiguredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindPartitionReconfigured
}

func (e PartitionReconfiguredEvent) Validate() error {
	return validation.First(
		e.PartitionEventBase.Validate(),
		validation.RequiredString("nodeName", e.NodeName),
		validation.RequiredString("nodeInstanceId", e.NodeInstanceId),
		validation.RequiredString("serviceType", e.ServiceType),
		validation.RequiredString("reconfigType", e.ReconfigType),
		validation.RequiredString("result", e.Result))
}

func (e PartitionReconfiguredEvent) MarshalJSON() ([]byte, error) {
	type alias PartitionReconfiguredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// PartitionPrimaryMoveAnalysisEvent describes the Partition Primary Move Analysis event.
type PartitionPrimaryMoveAnalysisEvent struct {
	PartitionEventBase

	// Time when the move was completed.
	WhenMoveCompleted time.Time `json:"WhenMoveCompleted"`

	// The name of a Service Fabric node.
	PreviousNode string `json:"PreviousNode"`

	// The name of a Service Fabric node.
	CurrentNode string `json:"CurrentNode"`

	// Move reason.
	MoveReason string `json:"MoveReason"`

	// Relevant traces.
	RelevantTraces string `json:"RelevantTraces"`
}

func (e PartitionPrimaryMoveAnalysisEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindPartitionPrimaryMoveAnalysis
}

func (e PartitionPrimaryMoveAnalysisEvent) Validate() error {
	return validation.First(
		e.PartitionEventBase.Validate(),
		validation.RequiredString("previousNode", e.PreviousNode),
		validation.RequiredString("currentNode", e.CurrentNode),
		validation.RequiredString("moveReason", e.MoveReason))
}

func (e PartitionPrimaryMoveAnalysisEvent) MarshalJSON() ([]byte, error) {
	type alias PartitionPrimaryMoveAnalysisEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosPartitionPrimaryMoveScheduledEvent describes the Chaos Move Primary Fault Scheduled event.
type ChaosPartitionPrimaryMoveScheduledEvent struct {
	PartitionEventBase
	ChaosFaultFields

	// Service name.
	ServiceName string `json:"ServiceName"`

	// The name of a Service Fabric node.
	NodeTo string `json:"NodeTo"`

	// Indicates a forced move.
	ForcedMove bool `json:"ForcedMove"`
}

func (e ChaosPartitionPrimaryMoveScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosPartitionPrimaryMoveScheduled
}

func (e ChaosPartitionPrimaryMoveScheduledEvent) Validate() error {
	return validation.First(
		e.PartitionEventBase.Validate(),
		e.validateFault(),
		validation.RequiredString("serviceName", e.ServiceName),
		validation.RequiredString("nodeTo", e.NodeTo))
}

func (e ChaosPartitionPrimaryMoveScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosPartitionPrimaryMoveScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosPartitionSecondaryMoveScheduledEvent describes the Chaos Move Secondary Fault Scheduled event.
type ChaosPartitionSecondaryMoveScheduledEvent struct {
	PartitionEventBase
	ChaosFaultFields

	// Service name.
	ServiceName string `json:"ServiceName"`

	// The name of a Service Fabric node.
	SourceNode string `json:"SourceNode"`

	// The name of a Service Fabric node.
	DestinationNode string `json:"DestinationNode"`

	// Indicates a forced move.
	ForcedMove bool `json:"ForcedMove"`
}

func (e ChaosPartitionSecondaryMoveScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosPartitionSecondaryMoveScheduled
}

func (e ChaosPartitionSecondaryMoveScheduledEvent) Validate() error {
	return validation.First(
		e.PartitionEventBase.Validate(),
		e.validateFault(),
		validation.RequiredString("serviceName", e.ServiceName),
		validation.RequiredString("sourceNode", e.SourceNode),
		validation.RequiredString("destinationNode", e.DestinationNode))
}

func (e ChaosPartitionSecondaryMoveScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosPartitionSecondaryMoveScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
