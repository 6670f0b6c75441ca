package servicefabric

import (
	"encoding/json"
	"github.com/google/uuid"
)

// HealthEvaluation represents a health evaluation which describes the data and the algorithm used by
// health manager to evaluate the health of an entity.
type HealthEvaluation interface {
	HealthEvaluationKind() HealthEvaluationKind
	GetAggregatedHealthState() *HealthState
	GetDescription() *string
}

// HealthEvaluationBase holds the properties shared by every health evaluation.
type HealthEvaluationBase struct {
	// The health state of a Service Fabric entity such as Cluster, Node, Application, Service,
	// Partition, Replica etc.
	AggregatedHealthState *HealthState `json:"AggregatedHealthState,omitempty"`

	// Description of the health evaluation, which represents a summary of the evaluation process.
	Description *string `json:"Description,omitempty"`
}

func (e HealthEvaluationBase) GetAggregatedHealthState() *HealthState {
	return e.AggregatedHealthState
}

func (e HealthEvaluationBase) GetDescription() *string {
	return e.Description
}

// EventHealthEvaluation represents health evaluation of a HealthEvent that was reported on the entity.
// The health evaluation is returned when evaluating health of an entity results in Error or Warning.
type EventHealthEvaluation struct {
	HealthEvaluationBase

	// Indicates whether warnings are treated with the same severity as errors. The field is specified
	// in the health policy used to evaluate the entity.
	ConsiderWarningAsError *bool `json:"ConsiderWarningAsError,omitempty"`

	// Represents health information reported on a health entity, such as cluster, application or
	// node, with additional metadata added by the Health Manager.
	UnhealthyEvent *HealthEvent `json:"UnhealthyEvent,omitempty"`
}

func (e EventHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindEvent
}

func (e EventHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias EventHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// NodeHealthEvaluation represents health evaluation for a node, containing information about the data
// and the algorithm used by health store to evaluate health.
type NodeHealthEvaluation struct {
	HealthEvaluationBase

	// The name of a Service Fabric node.
	NodeName *string `json:"NodeName,omitempty"`

	// List of unhealthy evaluations that led to the current aggregated health state of the node.
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e NodeHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindNode
}

func (e NodeHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias NodeHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// NodesHealthEvaluation represents health evaluation for nodes, containing health evaluations for each
// unhealthy node that impacted current aggregated health state.
type NodesHealthEvaluation struct {
	HealthEvaluationBase

	// Maximum allowed percentage of unhealthy nodes from the ClusterHealthPolicy.
	MaxPercentUnhealthyNodes *int32 `json:"MaxPercentUnhealthyNodes,omitempty"`

	// Total number of nodes found in the health store.
	TotalCount *int64 `json:"TotalCount,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e NodesHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindNodes
}

func (e NodesHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias NodesHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// ApplicationHealthEvaluation represents health evaluation for an application, containing information
// about the data and the algorithm used by the health store to evaluate health.
type ApplicationHealthEvaluation struct {
	HealthEvaluationBase

	// The name of the application, including the 'fabric:' URI scheme.
	ApplicationName *string `json:"ApplicationName,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e ApplicationHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindApplication
}

func (e ApplicationHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ApplicationHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// ApplicationsHealthEvaluation represents health evaluation for applications, containing health
// evaluations for each unhealthy application that impacted current aggregated health state.
type ApplicationsHealthEvaluation struct {
	HealthEvaluationBase

	// Maximum allowed percentage of unhealthy applications from the ClusterHealthPolicy.
	MaxPercentUnhealthyApplications *int32 `json:"MaxPercentUnhealthyApplications,omitempty"`

	// Total number of applications from the health store.
	TotalCount *int64 `json:"TotalCount,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e ApplicationsHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindApplications
}

func (e ApplicationsHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ApplicationsHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// PartitionHealthEvaluation represents health evaluation for a partition, containing information about
// the data and the algorithm used by health store to evaluate health.
type PartitionHealthEvaluation struct {
	HealthEvaluationBase

	// Id of the partition whose health evaluation is described by this object.
	PartitionId *uuid.UUID `json:"PartitionId,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e PartitionHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindPartition
}

func (e PartitionHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias PartitionHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// ReplicaHealthEvaluation represents health evaluation for a replica, containing information about
// the data and the algorithm used by health store to evaluate health.
type ReplicaHealthEvaluation struct {
	HealthEvaluationBase

	// Id of the partition to which the replica belongs.
	PartitionId *uuid.UUID `json:"PartitionId,omitempty"`

	// Id of a stateful service replica or a stateless service instance.
	ReplicaOrInstanceId *string `json:"ReplicaOrInstanceId,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e ReplicaHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindReplica
}

func (e ReplicaHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ReplicaHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

// ServiceHealthEvaluation represents health evaluation for a service, containing information about
// the data and the algorithm used by health store to evaluate health.
type ServiceHealthEvaluation struct {
	HealthEvaluationBase

	// The full name of the service with 'fabric:' URI scheme.
	ServiceName *string `json:"ServiceName,omitempty"`

	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`
}

func (e ServiceHealthEvaluation) HealthEvaluationKind() HealthEvaluationKind {
	return HealthEvaluationKindService
}

func (e ServiceHealthEvaluation) MarshalJSON() ([]byte, error) {
	type alias ServiceHealthEvaluation
	return marshalKinded("Kind", string(e.HealthEvaluationKind()), alias(e))
}

var healthEvaluationFamily = family[HealthEvaluation]{
	name:          "HealthEvaluation",
	discriminator: "Kind",
	variants: map[string]func() HealthEvaluation{
		string(HealthEvaluationKindEvent):        func() HealthEvaluation { return &EventHealthEvaluation{} },
		string(HealthEvaluationKindNode):         func() HealthEvaluation { return &NodeHealthEvaluation{} },
		string(HealthEvaluationKindNodes):        func() HealthEvaluation { return &NodesHealthEvaluation{} },
		string(HealthEvaluationKindApplication):  func() HealthEvaluation { return &ApplicationHealthEvaluation{} },
		string(HealthEvaluationKindApplications): func() HealthEvaluation { return &ApplicationsHealthEvaluation{} },
		string(HealthEvaluationKindPartition):    func() HealthEvaluation { return &PartitionHealthEvaluation{} },
		string(HealthEvaluationKindReplica):      func() HealthEvaluation { return &ReplicaHealthEvaluation{} },
		string(HealthEvaluationKindService):      func() HealthEvaluation { return &ServiceHealthEvaluation{} },
	},
}

// UnmarshalHealthEvaluation decodes a health evaluation payload into its concrete variant.
func UnmarshalHealthEvaluation(data []byte) (HealthEvaluation, error) {
	return healthEvaluationFamily.decode(data)
}

// HealthEvaluationWrapper wraps a health evaluation object, containing information about the data
// and the algorithm used by health store to evaluate health.
type HealthEvaluationWrapper struct {
	HealthEvaluation HealthEvaluation `json:"HealthEvaluation,omitempty"`
}

func (w *HealthEvaluationWrapper) UnmarshalJSON(data []byte) error {
	aux := struct {
		HealthEvaluation json.RawMessage `json:"HealthEvaluation"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	evaluation, err := UnmarshalHealthEvaluation(aux.HealthEvaluation)
	if err != nil {
		return err
	}

	w.HealthEvaluation = evaluation

	return nil
}
