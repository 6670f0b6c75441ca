package servicefabric

// HealthState - The health state of a Service Fabric entity such as Cluster, Node, Application, Service, Partition, Replica etc.
type HealthState string

const (
	// HealthStateInvalid - Indicates an invalid health state. All Service Fabric enumerations have the invalid type. The value is 0.
	HealthStateInvalid HealthState = "Invalid"
	// HealthStateOk - Indicates the health state is okay. The value is 1.
	HealthStateOk HealthState = "Ok"
	// HealthStateWarning - Indicates the health state is at a warning level. The value is 2.
	HealthStateWarning HealthState = "Warning"
	// HealthStateError - Indicates the health state is at an error level. Error health state should be investigated, as they can impact the correct functionality of the cluster. The value is 3.
	HealthStateError HealthState = "Error"
	// HealthStateUnknown - Indicates an unknown health status. The value is 65535.
	HealthStateUnknown HealthState = "Unknown"
)

// PossibleHealthStateValues returns the possible values for the HealthState const type.
func PossibleHealthStateValues() []HealthState {
	return []HealthState{
		HealthStateInvalid,
		HealthStateOk,
		HealthStateWarning,
		HealthStateError,
		HealthStateUnknown,
	}
}

// EntityKind - The entity type of a Service Fabric entity such as Cluster, Node, Application, Service, Partition, Replica etc.
type EntityKind string

const (
	// EntityKindInvalid - Indicates an invalid entity kind. All Service Fabric enumerations have the invalid type. The value is 0.
	EntityKindInvalid EntityKind = "Invalid"
	// EntityKindNode - Indicates the entity is a Service Fabric node. The value is 1.
	EntityKindNode EntityKind = "Node"
	// EntityKindPartition - Indicates the entity is a Service Fabric partition. The value is 2.
	EntityKindPartition EntityKind = "Partition"
	// EntityKindService - Indicates the entity is a Service Fabric service. The value is 3.
	EntityKindService EntityKind = "Service"
	// EntityKindApplication - Indicates the entity is a Service Fabric application. The value is 4.
	EntityKindApplication EntityKind = "Application"
	// EntityKindReplica - Indicates the entity is a Service Fabric replica. The value is 5.
	EntityKindReplica EntityKind = "Replica"
	// EntityKindDeployedApplication - Indicates the entity is a Service Fabric deployed application. The value is 6.
	EntityKindDeployedApplication EntityKind = "DeployedApplication"
	// EntityKindDeployedServicePackage - Indicates the entity is a Service Fabric deployed service package. The value is 7.
	EntityKindDeployedServicePackage EntityKind = "DeployedServicePackage"
	// EntityKindCluster - Indicates the entity is a Service Fabric cluster. The value is 8.
	EntityKindCluster EntityKind = "Cluster"
)

// PossibleEntityKindValues returns the possible values for the EntityKind const type.
func PossibleEntityKindValues() []EntityKind {
	return []EntityKind{
		EntityKindInvalid,
		EntityKindNode,
		EntityKindPartition,
		EntityKindService,
		EntityKindApplication,
		EntityKindReplica,
		EntityKindDeployedApplication,
		EntityKindDeployedServicePackage,
		EntityKindCluster,
	}
}

// HealthEvaluationKind - The health manager in the cluster performs health evaluations in determining the aggregated health state of an entity.
type HealthEvaluationKind string

const (
	// HealthEvaluationKindInvalid - Indicates that the health evaluation is invalid. The value is 0.
	HealthEvaluationKindInvalid HealthEvaluationKind = "Invalid"
	// HealthEvaluationKindEvent - Indicates that the health evaluation is for a health event. The value is 1.
	HealthEvaluationKindEvent HealthEvaluationKind = "Event"
	// HealthEvaluationKindReplicas - Indicates that the health evaluation is for the replicas of a partition. The value is 2.
	HealthEvaluationKindReplicas HealthEvaluationKind = "Replicas"
	// HealthEvaluationKindPartitions - Indicates that the health evaluation is for the partitions of a service. The value is 3.
	HealthEvaluationKindPartitions HealthEvaluationKind = "Partitions"
	// HealthEvaluationKindDeployedServicePackages - Indicates that the health evaluation is for the deployed service packages of a deployed application. The value is 4.
	HealthEvaluationKindDeployedServicePackages HealthEvaluationKind = "DeployedServicePackages"
	// HealthEvaluationKindDeployedApplications - Indicates that the health evaluation is for the deployed applications of an application. The value is 5.
	HealthEvaluationKindDeployedApplications HealthEvaluationKind = "DeployedApplications"
	// HealthEvaluationKindServices - Indicates that the health evaluation is for services of an application. The value is 6.
	HealthEvaluationKindServices HealthEvaluationKind = "Services"
	// HealthEvaluationKindNodes - Indicates that the health evaluation is for the cluster nodes. The value is 7.
	HealthEvaluationKindNodes HealthEvaluationKind = "Nodes"
	// HealthEvaluationKindApplications - Indicates that the health evaluation is for the cluster applications. The value is 8.
	HealthEvaluationKindApplications HealthEvaluationKind = "Applications"
	// HealthEvaluationKindSystemApplication - Indicates that the health evaluation is for the system application. The value is 9.
	HealthEvaluationKindSystemApplication HealthEvaluationKind = "SystemApplication"
	// HealthEvaluationKindUpgradeDomainDeployedApplications - Indicates that the health evaluation is for the deployed applications of an application in an upgrade domain. The value is 10.
	HealthEvaluationKindUpgradeDomainDeployedApplications HealthEvaluationKind = "UpgradeDomainDeployedApplications"
	// HealthEvaluationKindUpgradeDomainNodes - Indicates that the health evaluation is for the cluster nodes in an upgrade domain. The value is 11.
	HealthEvaluationKindUpgradeDomainNodes HealthEvaluationKind = "UpgradeDomainNodes"
	// HealthEvaluationKindReplica - Indicates that the health evaluation is for a replica. The value is 13.
	HealthEvaluationKindReplica HealthEvaluationKind = "Replica"
	// HealthEvaluationKindPartition - Indicates that the health evaluation is for a partition. The value is 14.
	HealthEvaluationKindPartition HealthEvaluationKind = "Partition"
	// HealthEvaluationKindService - Indicates that the health evaluation is for a service. The value is 15.
	HealthEvaluationKindService HealthEvaluationKind = "Service"
	// HealthEvaluationKindDeployedServicePackage - Indicates that the health evaluation is for a deployed service package. The value is 16.
	HealthEvaluationKindDeployedServicePackage HealthEvaluationKind = "DeployedServicePackage"
	// HealthEvaluationKindDeployedApplication - Indicates that the health evaluation is for a deployed application. The value is 17.
	HealthEvaluationKindDeployedApplication HealthEvaluationKind = "DeployedApplication"
	// HealthEvaluationKindNode - Indicates that the health evaluation is for a node. The value is 12.
	HealthEvaluationKindNode HealthEvaluationKind = "Node"
	// HealthEvaluationKindApplication - Indicates that the health evaluation is for an application. The value is 18.
	HealthEvaluationKindApplication HealthEvaluationKind = "Application"
	// HealthEvaluationKindDeltaNodesCheck - Indicates that the health evaluation is for the delta of unhealthy cluster nodes. The value is 19.
	HealthEvaluationKindDeltaNodesCheck HealthEvaluationKind = "DeltaNodesCheck"
	// HealthEvaluationKindUpgradeDomainDeltaNodesCheck - Indicates that the health evaluation is for the delta of unhealthy upgrade domain cluster nodes. The value is 20.
	HealthEvaluationKindUpgradeDomainDeltaNodesCheck HealthEvaluationKind = "UpgradeDomainDeltaNodesCheck"
	// HealthEvaluationKindApplicationTypeApplications - Indicates that the health evaluation is for applications of an application type. The value is 21.
	HealthEvaluationKindApplicationTypeApplications HealthEvaluationKind = "ApplicationTypeApplications"
	// HealthEvaluationKindNodeTypeNodes - Indicates that the health evaluation is for nodes of a node type. The value is 22.
	HealthEvaluationKindNodeTypeNodes HealthEvaluationKind = "NodeTypeNodes"
)

// PossibleHealthEvaluationKindValues returns the possible values for the HealthEvaluationKind const type.
func PossibleHealthEvaluationKindValues() []HealthEvaluationKind {
	return []HealthEvaluationKind{
		HealthEvaluationKindInvalid,
		HealthEvaluationKindEvent,
		HealthEvaluationKindReplicas,
		HealthEvaluationKindPartitions,
		HealthEvaluationKindDeployedServicePackages,
		HealthEvaluationKindDeployedApplications,
		HealthEvaluationKindServices,
		HealthEvaluationKindNodes,
		HealthEvaluationKindApplications,
		HealthEvaluationKindSystemApplication,
		HealthEvaluationKindUpgradeDomainDeployedApplications,
		HealthEvaluationKindUpgradeDomainNodes,
		HealthEvaluationKindReplica,
		HealthEvaluationKindPartition,
		HealthEvaluationKindService,
		HealthEvaluationKindDeployedServicePackage,
		HealthEvaluationKindDeployedApplication,
		HealthEvaluationKindNode,
		HealthEvaluationKindApplication,
		HealthEvaluationKindDeltaNodesCheck,
		HealthEvaluationKindUpgradeDomainDeltaNodesCheck,
		HealthEvaluationKindApplicationTypeApplications,
		HealthEvaluationKindNodeTypeNodes,
	}
}
