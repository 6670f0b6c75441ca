package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
	"time"
)

// FabricEvent represents the base for all Fabric Events.
type FabricEvent interface {
	FabricEventKind() FabricEventKind
	GetEventInstanceId() uuid.UUID
	GetTimeStamp() time.Time
	Validate() error
}

// ApplicationEvent is implemented by the events whose subject is an application.
type ApplicationEvent interface {
	FabricEvent
	GetApplicationId() string
}

// ClusterEvent is implemented by the events whose subject is the cluster.
type ClusterEvent interface {
	FabricEvent
	isClusterEvent()
}

// NodeEvent is implemented by the events whose subject is a node.
type NodeEvent interface {
	FabricEvent
	GetNodeName() string
}

// PartitionEvent is implemented by the events whose subject is a partition.
type PartitionEvent interface {
	FabricEvent
	GetPartitionId() uuid.UUID
}

// ReplicaEvent is implemented by the events whose subject is a replica.
type ReplicaEvent interface {
	FabricEvent
	GetPartitionId() uuid.UUID
	GetReplicaId() int64
}

// ServiceEvent is implemented by the events whose subject is a service.
type ServiceEvent interface {
	FabricEvent
	GetServiceId() string
}

// FabricEventBase holds the properties reported with every event.
type FabricEventBase struct {
	// The identifier for the FabricEvent instance.
	EventInstanceId uuid.UUID `json:"EventInstanceId"`

	// The category of event.
	Category *string `json:"Category,omitempty"`

	// The time event was logged.
	TimeStamp time.Time `json:"TimeStamp"`

	// Shows there is existing related events available.
	HasCorrelatedEvents *bool `json:"HasCorrelatedEvents,omitempty"`
}

func (e FabricEventBase) GetEventInstanceId() uuid.UUID {
	return e.EventInstanceId
}

func (e FabricEventBase) GetTimeStamp() time.Time {
	return e.TimeStamp
}

func (e FabricEventBase) validateBase() error {
	if e.EventInstanceId == uuid.Nil {
		return &validation.ArgumentNullError{Param: "eventInstanceId"}
	}

	if e.TimeStamp.IsZero() {
		return &validation.ArgumentNullError{Param: "timeStamp"}
	}

	return nil
}

// ApplicationEventBase is the base for the application events.
type ApplicationEventBase struct {
	FabricEventBase

	// The identity of the application. This is an encoded representation of the application name. This
	// is used in the REST APIs to identify the application resource.
	ApplicationId string `json:"ApplicationId"`
}

func (e ApplicationEventBase) GetApplicationId() string {
	return e.ApplicationId
}

func (e ApplicationEventBase) Validate() error {
	return validation.First(e.validateBase(), validation.RequiredString("applicationId", e.ApplicationId))
}

// ClusterEventBase is the base for the cluster events.
type ClusterEventBase struct {
	FabricEventBase
}

func (e ClusterEventBase) isClusterEvent() {}

func (e ClusterEventBase) Validate() error {
	return e.validateBase()
}

// NodeEventBase is the base for the node events.
type NodeEventBase struct {
	FabricEventBase

	// The name of a Service Fabric node.
	NodeName string `json:"NodeName"`
}

func (e NodeEventBase) GetNodeName() string {
	return e.NodeName
}

func (e NodeEventBase) Validate() error {
	return validation.First(e.validateBase(), validation.RequiredString("nodeName", e.NodeName))
}

// PartitionEventBase is the base for the partition events.
type PartitionEventBase struct {
	FabricEventBase

	// An internal ID used by Service Fabric to uniquely identify a partition.
	PartitionId uuid.UUID `json:"PartitionId"`
}

func (e PartitionEventBase) GetPartitionId() uuid.UUID {
	return e.PartitionId
}

func (e PartitionEventBase) Validate() error {
	return validation.First(e.validateBase(), requiredGuid("partitionId", e.PartitionId))
}

// ReplicaEventBase is the base for the replica events.
type ReplicaEventBase struct {
	FabricEventBase

	// An internal ID used by Service Fabric to uniquely identify a partition.
	PartitionId uuid.UUID `json:"PartitionId"`

	// Id of a stateful service replica. ReplicaId is used by Service Fabric to uniquely identify a
	// replica of a partition. It is unique within a partition and does not change for the lifetime of
	// the replica.
	ReplicaId int64 `json:"ReplicaId"`
}

func (e ReplicaEventBase) GetPartitionId() uuid.UUID {
	return e.PartitionId
}

func (e ReplicaEventBase) GetReplicaId() int64 {
	return e.ReplicaId
}

func (e ReplicaEventBase) Validate() error {
	return validation.First(e.validateBase(), requiredGuid("partitionId", e.PartitionId))
}

// ServiceEventBase is the base for the service events.
type ServiceEventBase struct {
	FabricEventBase

	// The identity of the service. This ID is an encoded representation of the service name.
	ServiceId string `json:"ServiceId"`
}

func (e ServiceEventBase) GetServiceId() string {
	return e.ServiceId
}

func (e ServiceEventBase) Validate() error {
	return validation.First(e.validateBase(), validation.RequiredString("serviceId", e.ServiceId))
}

// HealthReportFields holds the properties shared by the new health report and health report expired
// events.
type HealthReportFields struct {
	// Id of report source.
	SourceId string `json:"SourceId"`

	// Describes the property.
	Property string `json:"Property"`

	// Describes the property health state.
	HealthState string `json:"HealthState"`

	// Time to live in milli-seconds.
	TimeToLiveMs int64 `json:"TimeToLiveMs"`

	// Sequence number of report.
	SequenceNumber int64 `json:"SequenceNumber"`

	// Description of report.
	Description string `json:"Description"`

	// Indicates the removal when it expires.
	RemoveWhenExpired bool `json:"RemoveWhenExpired"`

	// Source time.
	SourceUtcTimestamp time.Time `json:"SourceUtcTimestamp"`
}

func (h HealthReportFields) validateReport() error {
	return validation.First(
		validation.RequiredString("sourceId", h.SourceId),
		validation.RequiredString("property", h.Property),
		validation.RequiredString("healthState", h.HealthState))
}

// ChaosFaultFields identifies the fault a chaos scheduled event belongs to.
type ChaosFaultFields struct {
	// Id of fault group.
	FaultGroupId uuid.UUID `json:"FaultGroupId"`

	// Id of fault.
	FaultId uuid.UUID `json:"FaultId"`
}

func (c ChaosFaultFields) validateFault() error {
	return validation.First(requiredGuid("faultGroupId", c.FaultGroupId), requiredGuid("faultId", c.FaultId))
}

func requiredGuid(param string, value uuid.UUID) error {
	if value == uuid.Nil {
		return &validation.ArgumentNullError{Param: param}
	}

	return nil
}

// NewFabricEvent validates event and returns it. It is the constructor shared by every event kind, as
// the events are built from their embedded base plus the kind specific properties.
func NewFabricEvent[T FabricEvent](event T) (T, error) {
	var zero T

	if err := validation.Required("event", event); err != nil {
		return zero, err
	}

	if err := event.Validate(); err != nil {
		return zero, err
	}

	return event, nil
}

// UnmarshalFabricEvent decodes an event payload into its concrete kind.
func UnmarshalFabricEvent(data []byte) (FabricEvent, error) {
	return fabricEventFamily.decode(data)
}

// UnmarshalFabricEventList decodes a list of events as returned by the EventsStore queries.
func UnmarshalFabricEventList(data []byte) ([]FabricEvent, error) {
	return fabricEventFamily.decodeList(data)
}
