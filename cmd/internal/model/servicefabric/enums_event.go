package servicefabric

// FabricEventKind - The kind of FabricEvent.
type FabricEventKind string

const (
	// FabricEventKindApplicationEvent - Base kind for events whose subject is an application.
	FabricEventKindApplicationEvent FabricEventKind = "ApplicationEvent"
	// FabricEventKindClusterEvent - Base kind for events whose subject is the cluster.
	FabricEventKindClusterEvent FabricEventKind = "ClusterEvent"
	// FabricEventKindContainerInstanceEvent - Base kind for events whose subject is a container instance.
	FabricEventKindContainerInstanceEvent FabricEventKind = "ContainerInstanceEvent"
	// FabricEventKindNodeEvent - Base kind for events whose subject is a node.
	FabricEventKindNodeEvent FabricEventKind = "NodeEvent"
	// FabricEventKindPartitionEvent - Base kind for events whose subject is a partition.
	FabricEventKindPartitionEvent FabricEventKind = "PartitionEvent"
	// FabricEventKindReplicaEvent - Base kind for events whose subject is a replica.
	FabricEventKindReplicaEvent FabricEventKind = "ReplicaEvent"
	// FabricEventKindServiceEvent - Base kind for events whose subject is a service.
	FabricEventKindServiceEvent FabricEventKind = "ServiceEvent"
	// FabricEventKindApplicationCreated - Application Created event.
	FabricEventKindApplicationCreated FabricEventKind = "ApplicationCreated"
	// FabricEventKindApplicationDeleted - Application Deleted event.
	FabricEventKindApplicationDeleted FabricEventKind = "ApplicationDeleted"
	// FabricEventKindApplicationNewHealthReport - Application Health Report Created event.
	FabricEventKindApplicationNewHealthReport FabricEventKind = "ApplicationNewHealthReport"
	// FabricEventKindApplicationHealthReportExpired - Application Health Report Expired event.
	FabricEventKindApplicationHealthReportExpired FabricEventKind = "ApplicationHealthReportExpired"
	// FabricEventKindApplicationUpgradeStarted - Application Upgrade Started event.
	FabricEventKindApplicationUpgradeStarted FabricEventKind = "ApplicationUpgradeStarted"
	// FabricEventKindApplicationUpgradeCompleted - Application Upgrade Completed event.
	FabricEventKindApplicationUpgradeCompleted FabricEventKind = "ApplicationUpgradeCompleted"
	// FabricEventKindApplicationUpgradeRollbackStarted - Application Upgrade Rollback Started event.
	FabricEventKindApplicationUpgradeRollbackStarted FabricEventKind = "ApplicationUpgradeRollbackStarted"
	// FabricEventKindApplicationProcessExited - Process Exited event.
	FabricEventKindApplicationProcessExited FabricEventKind = "ApplicationProcessExited"
	// FabricEventKindApplicationContainerInstanceExited - Container Exited event.
	FabricEventKindApplicationContainerInstanceExited FabricEventKind = "ApplicationContainerInstanceExited"
	// FabricEventKindClusterNewHealthReport - Cluster Health Report Created event.
	FabricEventKindClusterNewHealthReport FabricEventKind = "ClusterNewHealthReport"
	// FabricEventKindClusterHealthReportExpired - Cluster Health Report Expired event.
	FabricEventKindClusterHealthReportExpired FabricEventKind = "ClusterHealthReportExpired"
	// FabricEventKindClusterUpgradeStarted - Cluster Upgrade Started event.
	FabricEventKindClusterUpgradeStarted FabricEventKind = "ClusterUpgradeStarted"
	// FabricEventKindClusterUpgradeCompleted - Cluster Upgrade Completed event.
	FabricEventKindClusterUpgradeCompleted FabricEventKind = "ClusterUpgradeCompleted"
	// FabricEventKindClusterUpgradeRollbackStarted - Cluster Upgrade Rollback Started event.
	FabricEventKindClusterUpgradeRollbackStarted FabricEventKind = "ClusterUpgradeRollbackStarted"
	// FabricEventKindNodeAdded - Node Added event.
	FabricEventKindNodeAdded FabricEventKind = "NodeAdded"
	// FabricEventKindNodeRemoved - Node Removed event.
	FabricEventKindNodeRemoved FabricEventKind = "NodeRemoved"
	// FabricEventKindNodeDown - Node Down event.
	FabricEventKindNodeDown FabricEventKind = "NodeDown"
	// FabricEventKindNodeUp - Node Up event.
	FabricEventKindNodeUp FabricEventKind = "NodeUp"
	// FabricEventKindNodeNewHealthReport - Node Health Report Created event.
	FabricEventKindNodeNewHealthReport FabricEventKind = "NodeNewHealthReport"
	// FabricEventKindNodeHealthReportExpired - Node Health Report Expired event.
	FabricEventKindNodeHealthReportExpired FabricEventKind = "NodeHealthReportExpired"
	// FabricEventKindNodeOpenSucceeded - Node Open Succeeded event.
	FabricEventKindNodeOpenSucceeded FabricEventKind = "NodeOpenSucceeded"
	// FabricEventKindNodeOpenFailed - Node Open Failed event.
	FabricEventKindNodeOpenFailed FabricEventKind = "NodeOpenFailed"
	// FabricEventKindNodeDeactivateStarted - Node Deactivate Started event.
	FabricEventKindNodeDeactivateStarted FabricEventKind = "NodeDeactivateStarted"
	// FabricEventKindNodeDeactivateCompleted - Node Deactivate Completed event.
	FabricEventKindNodeDeactivateCompleted FabricEventKind = "NodeDeactivateCompleted"
	// FabricEventKindPartitionNewHealthReport - Partition Health Report Created event.
	FabricEventKindPartitionNewHealthReport FabricEventKind = "PartitionNewHealthReport"
	// FabricEventKindPartitionHealthReportExpired - Partition Health Report Expired event.
	FabricEventKindPartitionHealthReportExpired FabricEventKind = "PartitionHealthReportExpired"
	// FabricEventKindPartitionReconfigured - Partition Reconfiguration event.
	FabricEventKindPartitionReconfigured FabricEventKind = "PartitionReconfigured"
	// FabricEventKindPartitionPrimaryMoveAnalysis - Partition Primary Move Analysis event.
	FabricEventKindPartitionPrimaryMoveAnalysis FabricEventKind = "PartitionPrimaryMoveAnalysis"
	// FabricEventKindStatefulReplicaNewHealthReport - Stateful Replica Health Report Created event.
	FabricEventKindStatefulReplicaNewHealthReport FabricEventKind = "StatefulReplicaNewHealthReport"
	// FabricEventKindStatefulReplicaHealthReportExpired - Stateful Replica Health Report Expired event.
	FabricEventKindStatefulReplicaHealthReportExpired FabricEventKind = "StatefulReplicaHealthReportExpired"
	// FabricEventKindStatelessReplicaNewHealthReport - Stateless Replica Health Report Created event.
	FabricEventKindStatelessReplicaNewHealthReport FabricEventKind = "StatelessReplicaNewHealthReport"
	// FabricEventKindStatelessReplicaHealthReportExpired - Stateless Replica Health Report Expired event.
	FabricEventKindStatelessReplicaHealthReportExpired FabricEventKind = "StatelessReplicaHealthReportExpired"
	// FabricEventKindServiceCreated - Service Created event.
	FabricEventKindServiceCreated FabricEventKind = "ServiceCreated"
	// FabricEventKindServiceDeleted - Service Deleted event.
	FabricEventKindServiceDeleted FabricEventKind = "ServiceDeleted"
	// FabricEventKindServiceNewHealthReport - Service Health Report Created event.
	FabricEventKindServiceNewHealthReport FabricEventKind = "ServiceNewHealthReport"
	// FabricEventKindServiceHealthReportExpired - Service Health Report Expired event.
	FabricEventKindServiceHealthReportExpired FabricEventKind = "ServiceHealthReportExpired"
	// FabricEventKindChaosStarted - Chaos Started event.
	FabricEventKindChaosStarted FabricEventKind = "ChaosStarted"
	// FabricEventKindChaosStopped - Chaos Stopped event.
	FabricEventKindChaosStopped FabricEventKind = "ChaosStopped"
	// FabricEventKindChaosNodeRestartScheduled - Chaos Restart Node Fault Scheduled event.
	FabricEventKindChaosNodeRestartScheduled FabricEventKind = "ChaosNodeRestartScheduled"
	// FabricEventKindChaosCodePackageRestartScheduled - Chaos Restart Code Package Fault Scheduled event.
	FabricEventKindChaosCodePackageRestartScheduled FabricEventKind = "ChaosCodePackageRestartScheduled"
	// FabricEventKindChaosPartitionPrimaryMoveScheduled - Chaos Move Primary Fault Scheduled event.
	FabricEventKindChaosPartitionPrimaryMoveScheduled FabricEventKind = "ChaosPartitionPrimaryMoveScheduled"
	// FabricEventKindChaosPartitionSecondaryMoveScheduled - Chaos Move Secondary Fault Scheduled event.
	FabricEventKindChaosPartitionSecondaryMoveScheduled FabricEventKind = "ChaosPartitionSecondaryMoveScheduled"
	// FabricEventKindChaosReplicaRemovalScheduled - Chaos Remove Replica Fault Scheduled event.
	FabricEventKindChaosReplicaRemovalScheduled FabricEventKind = "ChaosReplicaRemovalScheduled"
	// FabricEventKindChaosReplicaRestartScheduled - Chaos Restart Replica Fault Scheduled event.
	FabricEventKindChaosReplicaRestartScheduled FabricEventKind = "ChaosReplicaRestartScheduled"
)

// PossibleFabricEventKindValues returns the possible values for the FabricEventKind const type.
func PossibleFabricEventKindValues() []FabricEventKind {
	return []FabricEventKind{
		FabricEventKindApplicationEvent,
		FabricEventKindClusterEvent,
		FabricEventKindContainerInstanceEvent,
		FabricEventKindNodeEvent,
		FabricEventKindPartitionEvent,
		FabricEventKindReplicaEvent,
		FabricEventKindServiceEvent,
		FabricEventKindApplicationCreated,
		FabricEventKindApplicationDeleted,
		FabricEventKindApplicationNewHealthReport,
		FabricEventKindApplicationHealthReportExpired,
		FabricEventKindApplicationUpgradeStarted,
		FabricEventKindApplicationUpgradeCompleted,
		FabricEventKindApplicationUpgradeRollbackStarted,
		FabricEventKindApplicationProcessExited,
		FabricEventKindApplicationContainerInstanceExited,
		FabricEventKindClusterNewHealthReport,
		FabricEventKindClusterHealthReportExpired,
		FabricEventKindClusterUpgradeStarted,
		FabricEventKindClusterUpgradeCompleted,
		FabricEventKindClusterUpgradeRollbackStarted,
		FabricEventKindNodeAdded,
		FabricEventKindNodeRemoved,
		FabricEventKindNodeDown,
		FabricEventKindNodeUp,
		FabricEventKindNodeNewHealthReport,
		FabricEventKindNodeHealthReportExpired,
		FabricEventKindNodeOpenSucceeded,
		FabricEventKindNodeOpenFailed,
		FabricEventKindNodeDeactivateStarted,
		FabricEventKindNodeDeactivateCompleted,
		FabricEventKindPartitionNewHealthReport,
		FabricEventKindPartitionHealthReportExpired,
		FabricEventKindPartitionReconfigured,
		FabricEventKindPartitionPrimaryMoveAnalysis,
		FabricEventKindStatefulReplicaNewHealthReport,
		FabricEventKindStatefulReplicaHealthReportExpired,
		FabricEventKindStatelessReplicaNewHealthReport,
		FabricEventKindStatelessReplicaHealthReportExpired,
		FabricEventKindServiceCreated,
		FabricEventKindServiceDeleted,
		FabricEventKindServiceNewHealthReport,
		FabricEventKindServiceHealthReportExpired,
		FabricEventKindChaosStarted,
		FabricEventKindChaosStopped,
		FabricEventKindChaosNodeRestartScheduled,
		FabricEventKindChaosCodePackageRestartScheduled,
		FabricEventKindChaosPartitionPrimaryMoveScheduled,
		FabricEventKindChaosPartitionSecondaryMoveScheduled,
		FabricEventKindChaosReplicaRemovalScheduled,
		FabricEventKindChaosReplicaRestartScheduled,
	}
}
