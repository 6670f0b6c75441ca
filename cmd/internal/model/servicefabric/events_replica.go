package servicefabric

import "github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"

// StatefulReplicaNewHealthReportEvent describes the Stateful Replica Health Report Created event.
type StatefulReplicaNewHealthReportEvent struct {
	ReplicaEventBase
	HealthReportFields

	// Id of Replica instance.
	ReplicaInstanceId int64 `json:"ReplicaInstanceId"`
}

func (e StatefulReplicaNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindStatefulReplicaNewHealthReport
}

func (e StatefulReplicaNewHealthReportEvent) Validate() error {
	return validation.First(e.ReplicaEventBase.Validate(), e.validateReport())
}

func (e StatefulReplicaNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias StatefulReplicaNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// StatefulReplicaHealthReportExpiredEvent describes the Stateful Replica Health Report Expired event.
type StatefulReplicaHealthReportExpiredEvent struct {
	ReplicaEventBase
	HealthReportFields

	// Id of Replica instance.
	ReplicaInstanceId int64 `json:"ReplicaInstanceId"`
}

func (e StatefulReplicaHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindStatefulReplicaHealthReportExpired
}

func (e StatefulReplicaHealthReportExpiredEvent) Validate() error {
	return validation.First(e.ReplicaEventBase.Validate(), e.validateReport())
}

func (e StatefulReplicaHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias StatefulReplicaHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// StatelessReplicaNewHealthReportEvent describes the Stateless Replica Health Report Created event.
type StatelessReplicaNewHealthReportEvent struct {
	ReplicaEventBase
	HealthReportFields
}

func (e StatelessReplicaNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindStatelessReplicaNewHealthReport
}

func (e StatelessReplicaNewHealthReportEvent) Validate() error {
	return validation.First(e.ReplicaEventBase.Validate(), e.validateReport())
}

func (e StatelessReplicaNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias StatelessReplicaNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// StatelessReplicaHealthReportExpiredEvent describes the Stateless Replica Health Report Expired event.
type StatelessReplicaHealthReportExpiredEvent struct {
	ReplicaEventBase
	HealthReportFields
}

func (e StatelessReplicaHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindStatelessReplicaHealthReportExpired
}

func (e StatelessReplicaHealthReportExpiredEvent) Validate() error {
	return validation.First(e.ReplicaEventBase.Validate(), e.validateReport())
}

func (e StatelessReplicaHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias StatelessReplicaHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosReplicaRemovalScheduledEvent describes the Chaos Remove Replica Fault Scheduled event.
type ChaosReplicaRemovalScheduledEvent struct {
	ReplicaEventBase
	ChaosFaultFields

	// Service name.
	ServiceUri string `json:"ServiceUri"`
}

func (e ChaosReplicaRemovalScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosReplicaRemovalScheduled
}

func (e ChaosReplicaRemovalScheduledEvent) Validate() error {
	return validation.First(
		e.ReplicaEventBase.Validate(),
		e.validateFault(),
		validation.RequiredString("serviceUri", e.ServiceUri))
}

func (e ChaosReplicaRemovalScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosReplicaRemovalScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ChaosReplicaRestartScheduledEvent describes the Chaos Restart Replica Fault Scheduled event.
type ChaosReplicaRestartScheduledEvent struct {
	ReplicaEventBase
	ChaosFaultFields

	// Service name.
	ServiceUri string `json:"ServiceUri"`
}

func (e ChaosReplicaRestartScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosReplicaRestartScheduled
}

func (e ChaosReplicaRestartScheduledEvent) Validate() error {
	return validation.First(
		e.ReplicaEventBase.Validate(),
		e.validateFault(),
		validation.RequiredString("serviceUri", e.ServiceUri))
}

func (e ChaosReplicaRestartScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosReplicaRestartScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
