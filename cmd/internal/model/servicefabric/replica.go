package servicefabric

// ReplicaInfo is information about the identity, status, health, node name, uptime, and other details
// about the replica.
type ReplicaInfo interface {
	ServiceKind() ServiceKind
	GetNodeName() *string
}

// ReplicaInfoBase holds the properties shared by stateful replicas and stateless instances.
type ReplicaInfoBase struct {
	// The status of a replica of a service.
	ReplicaStatus *ReplicaStatus `json:"ReplicaStatus,omitempty"`

	// The health state of a Service Fabric entity.
	HealthState *HealthState `json:"HealthState,omitempty"`

	// The name of a Service Fabric node.
	NodeName *string `json:"NodeName,omitempty"`

	// The address the replica is listening on.
	Address *string `json:"Address,omitempty"`

	// The last in build duration of the replica in seconds.
	LastInBuildDurationInSeconds *string `json:"LastInBuildDurationInSeconds,omitempty"`
}

func (r ReplicaInfoBase) GetNodeName() *string {
	return r.NodeName
}

// StatefulServiceReplicaInfo represents a stateful service replica. This includes information about
// the identity, role, status, health, node name, uptime, and other details about the replica.
type StatefulServiceReplicaInfo struct {
	ReplicaInfoBase

	// The role of a replica of a stateful service.
	ReplicaRole *ReplicaRole `json:"ReplicaRole,omitempty"`

	// Id of a stateful service replica.
	ReplicaId *string `json:"ReplicaId,omitempty"`
}

func (r StatefulServiceReplicaInfo) ServiceKind() ServiceKind {
	return ServiceKindStateful
}

func (r StatefulServiceReplicaInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceReplicaInfo
	return marshalKinded("ServiceKind", string(r.ServiceKind()), alias(r))
}

// StatelessServiceInstanceInfo represents a stateless service instance. This includes information
// about the identity, status, health, node name, uptime, and other details about the instance.
type StatelessServiceInstanceInfo struct {
	ReplicaInfoBase

	// Id of a stateless service instance.
	InstanceId *string `json:"InstanceId,omitempty"`
}

func (r StatelessServiceInstanceInfo) ServiceKind() ServiceKind {
	return ServiceKindStateless
}

func (r StatelessServiceInstanceInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceInstanceInfo
	return marshalKinded("ServiceKind", string(r.ServiceKind()), alias(r))
}

var replicaInfoFamily = family[ReplicaInfo]{
	name:          "ReplicaInfo",
	discriminator: "ServiceKind",
	variants: map[string]func() ReplicaInfo{
		string(ServiceKindStateful):  func() ReplicaInfo { return &StatefulServiceReplicaInfo{} },
		string(ServiceKindStateless): func() ReplicaInfo { return &StatelessServiceInstanceInfo{} },
	},
}

// UnmarshalReplicaInfo decodes a replica payload into its stateful or stateless variant.
func UnmarshalReplicaInfo(data []byte) (ReplicaInfo, error) {
	return replicaInfoFamily.decode(data)
}

// UnmarshalPagedReplicaInfoList decodes a page of replicas.
func UnmarshalPagedReplicaInfoList(data []byte) (PagedList[ReplicaInfo], error) {
	return decodePagedList(data, replicaInfoFamily)
}
