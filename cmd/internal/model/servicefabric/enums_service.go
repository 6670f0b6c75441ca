package servicefabric

// ServiceKind - The kind of service (Stateless or Stateful).
type ServiceKind string

const (
	// ServiceKindInvalid - Indicates the service kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ServiceKindInvalid ServiceKind = "Invalid"
	// ServiceKindStateless - Does not use Service Fabric to make its state highly available or reliable. The value is 1.
	ServiceKindStateless ServiceKind = "Stateless"
	// ServiceKindStateful - Uses Service Fabric to make its state or part of its state highly available and reliable. The value is 2.
	ServiceKindStateful ServiceKind = "Stateful"
)

// PossibleServiceKindValues returns the possible values for the ServiceKind const type.
func PossibleServiceKindValues() []ServiceKind {
	return []ServiceKind{
		ServiceKindInvalid,
		ServiceKindStateless,
		ServiceKindStateful,
	}
}

// ServiceStatus - The status of the application.
type ServiceStatus string

const (
	// ServiceStatusUnknown - Indicates the service status is unknown. The value is 0.
	ServiceStatusUnknown ServiceStatus = "Unknown"
	// ServiceStatusActive - Indicates the service status is active. The value is 1.
	ServiceStatusActive ServiceStatus = "Active"
	// ServiceStatusUpgrading - Indicates the service is upgrading. The value is 2.
	ServiceStatusUpgrading ServiceStatus = "Upgrading"
	// ServiceStatusDeleting - Indicates the service is being deleted. The value is 3.
	ServiceStatusDeleting ServiceStatus = "Deleting"
	// ServiceStatusCreating - Indicates the service is being created. The value is 4.
	ServiceStatusCreating ServiceStatus = "Creating"
	// ServiceStatusFailed - Indicates creation or deletion was terminated due to persistent failures. Another create/delete request can be accepted. The value is 5.
	ServiceStatusFailed ServiceStatus = "Failed"
)

// PossibleServiceStatusValues returns the possible values for the ServiceStatus const type.
func PossibleServiceStatusValues() []ServiceStatus {
	return []ServiceStatus{
		ServiceStatusUnknown,
		ServiceStatusActive,
		ServiceStatusUpgrading,
		ServiceStatusDeleting,
		ServiceStatusCreating,
		ServiceStatusFailed,
	}
}

// ServicePartitionKind - The kind of partitioning scheme used to partition the service.
type ServicePartitionKind string

const (
	// ServicePartitionKindInvalid - Indicates the partition kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ServicePartitionKindInvalid ServicePartitionKind = "Invalid"
	// ServicePartitionKindSingleton - Indicates that there is only one partition, and SingletonPartitionSchemeDescription was specified while creating the service. The value is 1.
	ServicePartitionKindSingleton ServicePartitionKind = "Singleton"
	// ServicePartitionKindInt64Range - Indicates that the partition is based on Int64 key ranges, and UniformInt64RangePartitionSchemeDescription was specified while creating the service. The value is 2.
	ServicePartitionKindInt64Range ServicePartitionKind = "Int64Range"
	// ServicePartitionKindNamed - Indicates that the partition is based on string names, and NamedPartitionInformation was specified while creating the service. The value is 3.
	ServicePartitionKindNamed ServicePartitionKind = "Named"
)

// PossibleServicePartitionKindValues returns the possible values for the ServicePartitionKind const type.
func PossibleServicePartitionKindValues() []ServicePartitionKind {
	return []ServicePartitionKind{
		ServicePartitionKindInvalid,
		ServicePartitionKindSingleton,
		ServicePartitionKindInt64Range,
		ServicePartitionKindNamed,
	}
}

// PartitionScheme - Enumerates the ways that a service can be partitioned.
type PartitionScheme string

const (
	// PartitionSchemeInvalid - Indicates the partition kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	PartitionSchemeInvalid PartitionScheme = "Invalid"
	// PartitionSchemeSingleton - Indicates that the partition is based on string names, and is a SingletonPartitionSchemeDescription object. The value is 1.
	PartitionSchemeSingleton PartitionScheme = "Singleton"
	// PartitionSchemeUniformInt64Range - Indicates that the partition is based on Int64 key ranges, and is a UniformInt64RangePartitionSchemeDescription object. The value is 2.
	PartitionSchemeUniformInt64Range PartitionScheme = "UniformInt64Range"
	// PartitionSchemeNamed - Indicates that the partition is based on string names, and is a NamedPartitionSchemeDescription object. The value is 3.
	PartitionSchemeNamed PartitionScheme = "Named"
)

// PossiblePartitionSchemeValues returns the possible values for the PartitionScheme const type.
func PossiblePartitionSchemeValues() []PartitionScheme {
	return []PartitionScheme{
		PartitionSchemeInvalid,
		PartitionSchemeSingleton,
		PartitionSchemeUniformInt64Range,
		PartitionSchemeNamed,
	}
}

// ServicePartitionStatus - The status of the service fabric service partition.
type ServicePartitionStatus string

const (
	// ServicePartitionStatusInvalid - Indicates the partition status is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ServicePartitionStatusInvalid ServicePartitionStatus = "Invalid"
	// ServicePartitionStatusReady - Indicates that the partition is ready. The value is 1.
	ServicePartitionStatusReady ServicePartitionStatus = "Ready"
	// ServicePartitionStatusNotReady - Indicates that the partition is not ready. The value is 2.
	ServicePartitionStatusNotReady ServicePartitionStatus = "NotReady"
	// ServicePartitionStatusInQuorumLoss - Indicates that the partition is in quorum loss. This means that number of replicas that are up and participating in a replica set is less than MinReplicaSetSize for this partition. The value is 3.
	ServicePartitionStatusInQuorumLoss ServicePartitionStatus = "InQuorumLoss"
	// ServicePartitionStatusReconfiguring - Indicates that the partition is undergoing reconfiguration of its replica sets. This can happen due to failover, upgrade, load balancing or addition or removal of replicas from the replica set. The value is 4.
	ServicePartitionStatusReconfiguring ServicePartitionStatus = "Reconfiguring"
	// ServicePartitionStatusDeleting - Indicates that the partition is being deleted. The value is 5.
	ServicePartitionStatusDeleting ServicePartitionStatus = "Deleting"
)

// PossibleServicePartitionStatusValues returns the possible values for the ServicePartitionStatus const type.
func PossibleServicePartitionStatusValues() []ServicePartitionStatus {
	return []ServicePartitionStatus{
		ServicePartitionStatusInvalid,
		ServicePartitionStatusReady,
		ServicePartitionStatusNotReady,
		ServicePartitionStatusInQuorumLoss,
		ServicePartitionStatusReconfiguring,
		ServicePartitionStatusDeleting,
	}
}

// ServicePlacementPolicyType - The type of placement policy for a service fabric service.
type ServicePlacementPolicyType string

const (
	// ServicePlacementPolicyTypeInvalid - Indicates the type of the placement policy is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ServicePlacementPolicyTypeInvalid ServicePlacementPolicyType = "Invalid"
	// ServicePlacementPolicyTypeInvalidDomain - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementInvalidDomainPolicyDescription, which indicates that a particular fault or upgrade domain cannot be used for placement of this service. The value is 1.
	ServicePlacementPolicyTypeInvalidDomain ServicePlacementPolicyType = "InvalidDomain"
	// ServicePlacementPolicyTypeRequireDomain - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementRequireDomainDistributionPolicyDescription indicating that the replicas of the service must be placed in a specific domain. The value is 2.
	ServicePlacementPolicyTypeRequireDomain ServicePlacementPolicyType = "RequireDomain"
	// ServicePlacementPolicyTypePreferPrimaryDomain - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementPreferPrimaryDomainPolicyDescription, which indicates that if possible the Primary replica for the partitions of the service should be located in a particular domain as an optimization. The value is 3.
	ServicePlacementPolicyTypePreferPrimaryDomain ServicePlacementPolicyType = "PreferPrimaryDomain"
	// ServicePlacementPolicyTypeRequireDomainDistribution - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementRequireDomainDistributionPolicyDescription, indicating that the system will disallow placement of any two replicas from the same partition in the same domain at any time. The value is 4.
	ServicePlacementPolicyTypeRequireDomainDistribution ServicePlacementPolicyType = "RequireDomainDistribution"
	// ServicePlacementPolicyTypeNonPartiallyPlaceService - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementNonPartiallyPlaceServicePolicyDescription, which indicates that if possible all replicas of a particular partition of the service should be placed atomically. The value is 5.
	ServicePlacementPolicyTypeNonPartiallyPlaceService ServicePlacementPolicyType = "NonPartiallyPlaceService"
	// ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode - Indicates that the ServicePlacementPolicyDescription is of type ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription, which indicates that multiple stateless instances of a particular partition of the service can be placed on a node. The value is 6.
	ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode ServicePlacementPolicyType = "AllowMultipleStatelessInstancesOnNode"
)

// PossibleServicePlacementPolicyTypeValues returns the possible values for the ServicePlacementPolicyType const type.
func PossibleServicePlacementPolicyTypeValues() []ServicePlacementPolicyType {
	return []ServicePlacementPolicyType{
		ServicePlacementPolicyTypeInvalid,
		ServicePlacementPolicyTypeInvalidDomain,
		ServicePlacementPolicyTypeRequireDomain,
		ServicePlacementPolicyTypePreferPrimaryDomain,
		ServicePlacementPolicyTypeRequireDomainDistribution,
		ServicePlacementPolicyTypeNonPartiallyPlaceService,
		ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode,
	}
}

// MoveCost - Specifies the move cost for the service.
type MoveCost string

const (
	// MoveCostZero - Zero move cost. This value is zero. The value is 0.
	MoveCostZero MoveCost = "Zero"
	// MoveCostLow - Specifies the move cost of the service as Low. The value is 1.
	MoveCostLow MoveCost = "Low"
	// MoveCostMedium - Specifies the move cost of the service as Medium. The value is 2.
	MoveCostMedium MoveCost = "Medium"
	// MoveCostHigh - Specifies the move cost of the service as High. The value is 3.
	MoveCostHigh MoveCost = "High"
	// MoveCostVeryHigh - Specifies the move cost of the service as VeryHigh. The value is 4.
	MoveCostVeryHigh MoveCost = "VeryHigh"
)

// PossibleMoveCostValues returns the possible values for the MoveCost const type.
func PossibleMoveCostValues() []MoveCost {
	return []MoveCost{
		MoveCostZero,
		MoveCostLow,
		MoveCostMedium,
		MoveCostHigh,
		MoveCostVeryHigh,
	}
}

// ServiceLoadMetricWeight - Determines the metric weight relative to the other metrics that are configured for this service. During runtime, if two metrics end up in conflict, the Cluster Resource Manager prefers the metric with the higher weight.
type ServiceLoadMetricWeight string

const (
	// ServiceLoadMetricWeightZero - Disables resource balancing for this metric. This value is zero. The value is 0.
	ServiceLoadMetricWeightZero ServiceLoadMetricWeight = "Zero"
	// ServiceLoadMetricWeightLow - Specifies the metric weight of the service load as Low. The value is 1.
	ServiceLoadMetricWeightLow ServiceLoadMetricWeight = "Low"
	// ServiceLoadMetricWeightMedium - Specifies the metric weight of the service load as Medium. The value is 2.
	ServiceLoadMetricWeightMedium ServiceLoadMetricWeight = "Medium"
	// ServiceLoadMetricWeightHigh - Specifies the metric weight of the service load as High. The value is 3.
	ServiceLoadMetricWeightHigh ServiceLoadMetricWeight = "High"
)

// PossibleServiceLoadMetricWeightValues returns the possible values for the ServiceLoadMetricWeight const type.
func PossibleServiceLoadMetricWeightValues() []ServiceLoadMetricWeight {
	return []ServiceLoadMetricWeight{
		ServiceLoadMetricWeightZero,
		ServiceLoadMetricWeightLow,
		ServiceLoadMetricWeightMedium,
		ServiceLoadMetricWeightHigh,
	}
}

// ServiceCorrelationScheme - The service correlation scheme.
type ServiceCorrelationScheme string

const (
	// ServiceCorrelationSchemeInvalid - An invalid correlation scheme. Cannot be used. The value is 0.
	ServiceCorrelationSchemeInvalid ServiceCorrelationScheme = "Invalid"
	// ServiceCorrelationSchemeAffinity - Indicates that this service has an affinity relationship with another service. Provided for backwards compatibility, consider preferring the Aligned or NonAlignedAffinity options. The value is 1.
	ServiceCorrelationSchemeAffinity ServiceCorrelationScheme = "Affinity"
	// ServiceCorrelationSchemeAlignedAffinity - Aligned affinity ensures that the primaries of the partitions of the affinitized services are collocated on the same nodes. The value is 2.
	ServiceCorrelationSchemeAlignedAffinity ServiceCorrelationScheme = "AlignedAffinity"
	// ServiceCorrelationSchemeNonAlignedAffinity - Non-Aligned affinity guarantees that all replicas of each service will be placed on the same nodes. Unlike Aligned Affinity, Non-Aligned Affinity does not guarantee that replicas of particular role will be collocated. The value is 3.
	ServiceCorrelationSchemeNonAlignedAffinity ServiceCorrelationScheme = "NonAlignedAffinity"
)

// PossibleServiceCorrelationSchemeValues returns the possible values for the ServiceCorrelationScheme const type.
func PossibleServiceCorrelationSchemeValues() []ServiceCorrelationScheme {
	return []ServiceCorrelationScheme{
		ServiceCorrelationSchemeInvalid,
		ServiceCorrelationSchemeAffinity,
		ServiceCorrelationSchemeAlignedAffinity,
		ServiceCorrelationSchemeNonAlignedAffinity,
	}
}

// ReplicaRole - The role of a replica of a stateful service.
type ReplicaRole string

const (
	// ReplicaRoleUnknown - Indicates the initial role that a replica is created in. The value is 0.
	ReplicaRoleUnknown ReplicaRole = "Unknown"
	// ReplicaRoleNone - Specifies that the replica has no responsibility in regard to the replica set. The value is 1.
	ReplicaRoleNone ReplicaRole = "None"
	// ReplicaRolePrimary - Refers to the replica in the set on which all read and write operations are complete in order to enforce strong consistency semantics. The value is 2.
	ReplicaRolePrimary ReplicaRole = "Primary"
	// ReplicaRoleIdleSecondary - Refers to a replica in the set that receives a state transfer from the Primary replica to prepare for becoming an active Secondary replica. The value is 3.
	ReplicaRoleIdleSecondary ReplicaRole = "IdleSecondary"
	// ReplicaRoleActiveSecondary - Refers to a replica in the set that receives state updates from the Primary replica, applies them, and sends acknowledgements back. The value is 4.
	ReplicaRoleActiveSecondary ReplicaRole = "ActiveSecondary"
	// ReplicaRoleIdleAuxiliary - Refers to a replica in the set that receives a state transfer from the Primary replica to prepare for becoming an ActiveAuxiliary replica. The value is 5.
	ReplicaRoleIdleAuxiliary ReplicaRole = "IdleAuxiliary"
	// ReplicaRoleActiveAuxiliary - Refers to a replica in the set that receives state updates from the Primary replica, applies them, and sends acknowledgements back. The value is 6.
	ReplicaRoleActiveAuxiliary ReplicaRole = "ActiveAuxiliary"
	// ReplicaRolePrimaryAuxiliary - Refers to a replica in the set on which all read and write operations are complete in order to enforce strong consistency semantics, while the Primary replica is unavailable. The value is 7.
	ReplicaRolePrimaryAuxiliary ReplicaRole = "PrimaryAuxiliary"
)

// PossibleReplicaRoleValues returns the possible values for the ReplicaRole const type.
func PossibleReplicaRoleValues() []ReplicaRole {
	return []ReplicaRole{
		ReplicaRoleUnknown,
		ReplicaRoleNone,
		ReplicaRolePrimary,
		ReplicaRoleIdleSecondary,
		ReplicaRoleActiveSecondary,
		ReplicaRoleIdleAuxiliary,
		ReplicaRoleActiveAuxiliary,
		ReplicaRolePrimaryAuxiliary,
	}
}

// ReplicaStatus - The status of a replica of a service.
type ReplicaStatus string

const (
	// ReplicaStatusInvalid - Indicates the replica status is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ReplicaStatusInvalid ReplicaStatus = "Invalid"
	// ReplicaStatusInBuild - The replica is being built. This means that a primary replica is seeding this replica. The value is 1.
	ReplicaStatusInBuild ReplicaStatus = "InBuild"
	// ReplicaStatusStandby - The replica is in standby. The value is 2.
	ReplicaStatusStandby ReplicaStatus = "Standby"
	// ReplicaStatusReady - The replica is ready. The value is 3.
	ReplicaStatusReady ReplicaStatus = "Ready"
	// ReplicaStatusDown - The replica is down. The value is 4.
	ReplicaStatusDown ReplicaStatus = "Down"
	// ReplicaStatusDropped - Replica is dropped. This means that the replica has been removed from the replica set. If it is persisted, its state has been deleted. The value is 5.
	ReplicaStatusDropped ReplicaStatus = "Dropped"
)

// PossibleReplicaStatusValues returns the possible values for the ReplicaStatus const type.
func PossibleReplicaStatusValues() []ReplicaStatus {
	return []ReplicaStatus{
		ReplicaStatusInvalid,
		ReplicaStatusInBuild,
		ReplicaStatusStandby,
		ReplicaStatusReady,
		ReplicaStatusDown,
		ReplicaStatusDropped,
	}
}

// DataLossMode - The kind of data loss to induce on a partition.
type DataLossMode string

const (
	// DataLossModeInvalid - Reserved. Do not pass into API. The value is 0.
	DataLossModeInvalid DataLossMode = "Invalid"
	// DataLossModePartialDataLoss - PartialDataLoss option will cause a quorum of replicas to go down, triggering an OnDataLoss event in the system for the given partition. The value is 1.
	DataLossModePartialDataLoss DataLossMode = "PartialDataLoss"
	// DataLossModeFullDataLoss - FullDataLoss option will drop all the replicas which means that all the data will be lost. The value is 2.
	DataLossModeFullDataLoss DataLossMode = "FullDataLoss"
)

// PossibleDataLossModeValues returns the possible values for the DataLossMode const type.
func PossibleDataLossModeValues() []DataLossMode {
	return []DataLossMode{
		DataLossModeInvalid,
		DataLossModePartialDataLoss,
		DataLossModeFullDataLoss,
	}
}
