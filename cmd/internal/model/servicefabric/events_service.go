package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
)

// ServiceCreatedEvent describes the Service Created event.
type ServiceCreatedEvent struct {
	ServiceEventBase

	// Service type name.
	ServiceTypeName string `json:"ServiceTypeName"`

	// Application name.
	ApplicationName string `json:"ApplicationName"`

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Id of Service instance.
	ServiceInstance int64 `json:"ServiceInstance"`

	// Indicates if Service is stateful.
	IsStateful bool `json:"IsStateful"`

	// Number of partitions.
	PartitionCount int32 `json:"PartitionCount"`

	// Size of target replicas set.
	TargetReplicaSetSize int32 `json:"TargetReplicaSetSize"`

	// Minimum size of replicas set.
	MinReplicaSetSize int32 `json:"MinReplicaSetSize"`

	// Version of Service package.
	ServicePackageVersion string `json:"ServicePackageVersion"`

	// An internal ID used by Service Fabric to uniquely identify a partition.
	PartitionId uuid.UUID `json:"PartitionId"`
}

func (e ServiceCreatedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindServiceCreated
}

func (e ServiceCreatedEvent) Validate() error {
	return validation.First(
		e.ServiceEventBase.Validate(),
		validateServiceLifecycle(e.ServiceTypeName, e.ApplicationName, e.ApplicationTypeName, e.ServicePackageVersion),
		requiredGuid("partitionId", e.PartitionId))
}

func (e ServiceCreatedEvent) MarshalJSON() ([]byte, error) {
	type alias ServiceCreatedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ServiceDeletedEvent describes the Service Deleted event.
type ServiceDeletedEvent struct {
	ServiceEventBase

	// Service type name.
	ServiceTypeName string `json:"ServiceTypeName"`

	// Application name.
	ApplicationName string `json:"ApplicationName"`

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Id of Service instance.
	ServiceInstance int64 `json:"ServiceInstance"`

	// Indicates if Service is stateful.
	IsStateful bool `json:"IsStateful"`

	// Number of partitions.
	PartitionCount int32 `json:"PartitionCount"`

	// Size of target replicas set.
	TargetReplicaSetSize int32 `json:"TargetReplicaSetSize"`

	// Minimum size of replicas set.
	MinReplicaSetSize int32 `json:"MinReplicaSetSize"`

	// Version of Service package.
	ServicePackageVersion string `json:"ServicePackageVersion"`
}

func (e ServiceDeletedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindServiceDeleted
}

func (e ServiceDeletedEvent) Validate() error {
	return validation.First(
		e.ServiceEventBase.Validate(),
		validateServiceLifecycle(e.ServiceTypeName, e.ApplicationName, e.ApplicationTypeName, e.ServicePackageVersion))
}

func (e ServiceDeletedEvent) MarshalJSON() ([]byte, error) {
	type alias ServiceDeletedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

func validateServiceLifecycle(serviceTypeName, applicationName, applicationTypeName, servicePackageVersion string) error {
	return validation.First(
		validation.RequiredString("serviceTypeName", serviceTypeName),
		validation.RequiredString("applicationName", applicationName),
		validation.RequiredString("applicationTypeName", applicationTypeName),
		validation.RequiredString("servicePackageVersion", servicePackageVersion))
}

// ServiceNewHealthReportEvent describes the Service Health Report Created event.
type ServiceNewHealthReportEvent struct {
	ServiceEventBase
	HealthReportFields

	// Id of Service instance.
	InstanceId int64 `json:"InstanceId"`
}

func (e ServiceNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindServiceNewHealthReport
}

func (e ServiceNewHealthReportEvent) Validate() error {
	return validation.First(e.ServiceEventBase.Validate(), e.validateReport())
}

func (e ServiceNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias ServiceNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ServiceHealthReportExpiredEvent describes the Service Health Report Expired event.
type ServiceHealthReportExpiredEvent struct {
	ServiceEventBase
	HealthReportFields

	// Id of Service instance.
	InstanceId int64 `json:"InstanceId"`
}

func (e ServiceHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindServiceHealthReportExpired
}

func (e ServiceHealthReportExpiredEvent) Validate() error {
	return validation.First(e.ServiceEventBase.Validate(), e.validateReport())
}

func (e ServiceHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias ServiceHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
