package servicefabric

var fabricEventFamily = family[FabricEvent]{
	name:          "FabricEvent",
	discriminator: "Kind",
	variants: map[string]func() FabricEvent{
		string(FabricEventKindApplicationCreated):                   func() FabricEvent { return &ApplicationCreatedEvent{} },
		string(FabricEventKindApplicationDeleted):                   func() FabricEvent { return &ApplicationDeletedEvent{} },
		string(FabricEventKindApplicationNewHealthReport):           func() FabricEvent { return &ApplicationNewHealthReportEvent{} },
		string(FabricEventKindApplicationHealthReportExpired):       func() FabricEvent { return &ApplicationHealthReportExpiredEvent{} },
		string(FabricEventKindApplicationUpgradeStarted):            func() FabricEvent { return &ApplicationUpgradeStartedEvent{} },
		string(FabricEventKindApplicationUpgradeCompleted):          func() FabricEvent { return &ApplicationUpgradeCompletedEvent{} },
		string(FabricEventKindApplicationUpgradeRollbackStarted):    func() FabricEvent { return &ApplicationUpgradeRollbackStartedEvent{} },
		string(FabricEventKindApplicationProcessExited):             func() FabricEvent { return &ApplicationProcessExitedEvent{} },
		string(FabricEventKindApplicationContainerInstanceExited):   func() FabricEvent { return &ApplicationContainerInstanceExitedEvent{} },
		string(FabricEventKindChaosCodePackageRestartScheduled):     func() FabricEvent { return &ChaosCodePackageRestartScheduledEvent{} },
		string(FabricEventKindClusterNewHealthReport):               func() FabricEvent { return &ClusterNewHealthReportEvent{} },
		string(FabricEventKindClusterHealthReportExpired):           func() FabricEvent { return &ClusterHealthReportExpiredEvent{} },
		string(FabricEventKindClusterUpgradeStarted):                func() FabricEvent { return &ClusterUpgradeStartedEvent{} },
		string(FabricEventKindClusterUpgradeCompleted):              func() FabricEvent { return &ClusterUpgradeCompletedEvent{} },
		string(FabricEventKindClusterUpgradeRollbackStarted):        func() FabricEvent { return &ClusterUpgradeRollbackStartedEvent{} },
		string(FabricEventKindChaosStarted):                         func() FabricEvent { return &ChaosStartedEvent{} },
		string(FabricEventKindChaosStopped):                         func() FabricEvent { return &ChaosStoppedEvent{} },
		string(FabricEventKindNodeAdded):                            func() FabricEvent { return &NodeAddedEvent{} },
		string(FabricEventKindNodeRemoved):                          func() FabricEvent { return &NodeRemovedEvent{} },
		string(FabricEventKindNodeDown):                             func() FabricEvent { return &NodeDownEvent{} },
		string(FabricEventKindNodeUp):                               func() FabricEvent { return &NodeUpEvent{} },
		string(FabricEventKindNodeNewHealthReport):                  func() FabricEvent { return &NodeNewHealthReportEvent{} },
		string(FabricEventKindNodeHealthReportExpired):              func() FabricEvent { return &NodeHealthReportExpiredEvent{} },
		string(FabricEventKindNodeOpenSucceeded):                    func() FabricEvent { return &NodeOpenSucceededEvent{} },
		string(FabricEventKindNodeOpenFailed):                       func() FabricEvent { return &NodeOpenFailedEvent{} },
		string(FabricEventKindNodeDeactivateStarted):                func() FabricEvent { return &NodeDeactivateStartedEvent{} },
		string(FabricEventKindNodeDeactivateCompleted):              func() FabricEvent { return &NodeDeactivateCompletedEvent{} },
		string(FabricEventKindChaosNodeRestartScheduled):            func() FabricEvent { return &ChaosNodeRestartScheduledEvent{} },
		string(FabricEventKindPartitionNewHealthReport):             func() FabricEvent { return &PartitionNewHealthReportEvent{} },
		string(FabricEventKindPartitionHealthReportExpired):         func() FabricEvent { return &PartitionHealthReportExpiredEvent{} },
		string(FabricEventKindPartitionReconfigured):                func() FabricEvent { return &PartitionReconfiguredEvent{} },
		string(FabricEventKindPartitionPrimaryMoveAnalysis):         func() FabricEvent { return &PartitionPrimaryMoveAnalysisEvent{} },
		string(FabricEventKindChaosPartitionPrimaryMoveScheduled):   func() FabricEvent { return &ChaosPartitionPrimaryMoveScheduledEvent{} },
		string(FabricEventKindChaosPartitionSecondaryMoveScheduled): func() FabricEvent { return &ChaosPartitionSecondaryMoveScheduledEvent{} },
		string(FabricEventKindStatefulReplicaNewHealthReport):       func() FabricEvent { return &StatefulReplicaNewHealthReportEvent{} },
		string(FabricEventKindStatefulReplicaHealthReportExpired):   func() FabricEvent { return &StatefulReplicaHealthReportExpiredEvent{} },
		string(FabricEventKindStatelessReplicaNewHealthReport):      func() FabricEvent { return &StatelessReplicaNewHealthReportEvent{} },
		string(FabricEventKindStatelessReplicaHealthReportExpired):  func() FabricEvent { return &StatelessReplicaHealthReportExpiredEvent{} },
		string(FabricEventKindChaosReplicaRemovalScheduled):         func() FabricEvent { return &ChaosReplicaRemovalScheduledEvent{} },
		string(FabricEventKindChaosReplicaRestartScheduled):         func() FabricEvent { return &ChaosReplicaRestartScheduledEvent{} },
		string(FabricEventKindServiceCreated):                       func() FabricEvent { return &ServiceCreatedEvent{} },
		string(FabricEventKindServiceDeleted):                       func() FabricEvent { return &ServiceDeletedEvent{} },
		string(FabricEventKindServiceNewHealthReport):               func() FabricEvent { return &ServiceNewHealthReportEvent{} },
		string(FabricEventKindServiceHealthReportExpired):           func() FabricEvent { return &ServiceHealthReportExpiredEvent{} },
	},
}
