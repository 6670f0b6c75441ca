package servicefabric

import (
	"encoding/json"
	"github.com/google/uuid"
)

// ServicePartitionInfo is information about a partition of a Service Fabric service.
type ServicePartitionInfo interface {
	ServiceKind() ServiceKind
	GetPartitionInformation() PartitionInformation
}

// ServicePartitionInfoBase holds the properties shared by stateful and stateless partitions.
type ServicePartitionInfoBase struct {
	// The health state of a Service Fabric entity.
	HealthState *HealthState `json:"HealthState,omitempty"`

	// The status of the service fabric service partition.
	PartitionStatus *ServicePartitionStatus `json:"PartitionStatus,omitempty"`

	// Information about the partition identity, partitioning scheme and keys supported by it.
	PartitionInformation PartitionInformation `json:"PartitionInformation,omitempty"`
}

func (p ServicePartitionInfoBase) GetPartitionInformation() PartitionInformation {
	return p.PartitionInformation
}

// StatefulServicePartitionInfo is information about a partition of a stateful Service Fabric service.
type StatefulServicePartitionInfo struct {
	ServicePartitionInfoBase

	// The target replica set size as a number.
	TargetReplicaSetSize *int64 `json:"TargetReplicaSetSize,omitempty"`

	// The minimum replica set size as a number.
	MinReplicaSetSize *int64 `json:"MinReplicaSetSize,omitempty"`

	// The duration for which this partition was in quorum loss. If the partition is currently in
	// quorum loss, it returns the duration since it has been in that state. This field is using ISO8601
	// format for specifying the duration.
	LastQuorumLossDuration *string `json:"LastQuorumLossDuration,omitempty"`

	// Contains the epoch of the primary replica.
	PrimaryEpoch *Epoch `json:"PrimaryEpoch,omitempty"`
}

func (p StatefulServicePartitionInfo) ServiceKind() ServiceKind {
	return ServiceKindStateful
}

func (p StatefulServicePartitionInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServicePartitionInfo
	return marshalKinded("ServiceKind", string(p.ServiceKind()), alias(p))
}

func (p *StatefulServicePartitionInfo) UnmarshalJSON(data []byte) error {
	type alias StatefulServicePartitionInfo
	aux := struct {
		*alias
		PartitionInformation json.RawMessage `json:"PartitionInformation"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	information, err := UnmarshalPartitionInformation(aux.PartitionInformation)
	if err != nil {
		return err
	}

	p.PartitionInformation = information

	return nil
}

// StatelessServicePartitionInfo is information about a partition of a stateless Service Fabric
// service.
type StatelessServicePartitionInfo struct {
	ServicePartitionInfoBase

	// Number of instances of this partition.
	InstanceCount *int64 `json:"InstanceCount,omitempty"`

	// MinInstanceCount is the minimum number of instances that must be up to meet the EnsureAvailability
	// safety check during operations like upgrade or deactivate node.
	MinInstanceCount *int32 `json:"MinInstanceCount,omitempty"`

	// MinInstancePercentage is the minimum percentage of InstanceCount that must be up to meet the
	// EnsureAvailability safety check during operations like upgrade or deactivate node.
	MinInstancePercentage *int32 `json:"MinInstancePercentage,omitempty"`
}

func (p StatelessServicePartitionInfo) ServiceKind() ServiceKind {
	return ServiceKindStateless
}

func (p StatelessServicePartitionInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServicePartitionInfo
	return marshalKinded("ServiceKind", string(p.ServiceKind()), alias(p))
}

func (p *StatelessServicePartitionInfo) UnmarshalJSON(data []byte) error {
	type alias StatelessServicePartitionInfo
	aux := struct {
		*alias
		PartitionInformation json.RawMessage `json:"PartitionInformation"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	information, err := UnmarshalPartitionInformation(aux.PartitionInformation)
	if err != nil {
		return err
	}

	p.PartitionInformation = information

	return nil
}

var servicePartitionInfoFamily = family[ServicePartitionInfo]{
	name:          "ServicePartitionInfo",
	discriminator: "ServiceKind",
	variants: map[string]func() ServicePartitionInfo{
		string(ServiceKindStateful):  func() ServicePartitionInfo { return &StatefulServicePartitionInfo{} },
		string(ServiceKindStateless): func() ServicePartitionInfo { return &StatelessServicePartitionInfo{} },
	},
}

// UnmarshalServicePartitionInfo decodes a partition payload into its stateful or stateless variant.
func UnmarshalServicePartitionInfo(data []byte) (ServicePartitionInfo, error) {
	return servicePartitionInfoFamily.decode(data)
}

// UnmarshalPagedServicePartitionInfoList decodes a page of partitions.
func UnmarshalPagedServicePartitionInfoList(data []byte) (PagedList[ServicePartitionInfo], error) {
	return decodePagedList(data, servicePartitionInfoFamily)
}

// PartitionId returns the id of the partition described by info, or uuid.Nil when it is unknown.
func PartitionId(info ServicePartitionInfo) uuid.UUID {
	if info == nil || info.GetPartitionInformation() == nil || info.GetPartitionInformation().GetPartitionId() == nil {
		return uuid.Nil
	}

	return *info.GetPartitionInformation().GetPartitionId()
}
