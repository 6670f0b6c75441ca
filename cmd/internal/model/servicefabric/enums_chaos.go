package servicefabric

// ChaosStatus - Current status of the Chaos run.
type ChaosStatus string

const (
	// ChaosStatusInvalid - Indicates an invalid Chaos status. All Service Fabric enumerations have the invalid type. The value is 0.
	ChaosStatusInvalid ChaosStatus = "Invalid"
	// ChaosStatusRunning - Indicates that Chaos is not stopped. The value is 1.
	ChaosStatusRunning ChaosStatus = "Running"
	// ChaosStatusStopped - Indicates that Chaos is not scheduling further faults. The value is 2.
	ChaosStatusStopped ChaosStatus = "Stopped"
)

// PossibleChaosStatusValues returns the possible values for the ChaosStatus const type.
func PossibleChaosStatusValues() []ChaosStatus {
	return []ChaosStatus{
		ChaosStatusInvalid,
		ChaosStatusRunning,
		ChaosStatusStopped,
	}
}

// ChaosScheduleStatus - Current status of the schedule.
type ChaosScheduleStatus string

const (
	// ChaosScheduleStatusInvalid - Indicates an invalid Chaos Schedule status. All Service Fabric enumerations have the invalid type. The value is 0.
	ChaosScheduleStatusInvalid ChaosScheduleStatus = "Invalid"
	// ChaosScheduleStatusStopped - Indicates that the schedule is stopped and not being used to schedule runs of chaos. The value is 1.
	ChaosScheduleStatusStopped ChaosScheduleStatus = "Stopped"
	// ChaosScheduleStatusActive - Indicates that the schedule is active and is being used to schedule runs of Chaos. The value is 2.
	ChaosScheduleStatusActive ChaosScheduleStatus = "Active"
	// ChaosScheduleStatusExpired - Indicates that the schedule is expired and will no longer be used to schedule runs of Chaos. The value is 3.
	ChaosScheduleStatusExpired ChaosScheduleStatus = "Expired"
	// ChaosScheduleStatusPending - Indicates that the schedule is pending and is not yet being used to schedule runs of Chaos but will be used when the start time is passed. The value is 4.
	ChaosScheduleStatusPending ChaosScheduleStatus = "Pending"
)

// PossibleChaosScheduleStatusValues returns the possible values for the ChaosScheduleStatus const type.
func PossibleChaosScheduleStatusValues() []ChaosScheduleStatus {
	return []ChaosScheduleStatus{
		ChaosScheduleStatusInvalid,
		ChaosScheduleStatusStopped,
		ChaosScheduleStatusActive,
		ChaosScheduleStatusExpired,
		ChaosScheduleStatusPending,
	}
}

// ChaosEventKind - The kind of Chaos event.
type ChaosEventKind string

const (
	// ChaosEventKindInvalid - Indicates an invalid Chaos event kind. All Service Fabric enumerations have the invalid type. The value is 0.
	ChaosEventKindInvalid ChaosEventKind = "Invalid"
	// ChaosEventKindStarted - Indicates a Chaos event that gets generated when Chaos is started. The value is 1.
	ChaosEventKindStarted ChaosEventKind = "Started"
	// ChaosEventKindExecutingFaults - Indicates a Chaos event that gets generated when Chaos has decided on the faults for an iteration. The value is 2.
	ChaosEventKindExecutingFaults ChaosEventKind = "ExecutingFaults"
	// ChaosEventKindWaiting - Indicates a Chaos event that gets generated when Chaos is waiting for the cluster to become ready for faulting. The value is 3.
	ChaosEventKindWaiting ChaosEventKind = "Waiting"
	// ChaosEventKindValidationFailed - Indicates a Chaos event that gets generated when the cluster entities do not become stable and healthy within ChaosParameters.MaxClusterStabilizationTimeoutInSeconds. The value is 4.
	ChaosEventKindValidationFailed ChaosEventKind = "ValidationFailed"
	// ChaosEventKindTestError - Indicates a Chaos event that gets generated when an unexpected event has occurred in the Chaos engine. The value is 5.
	ChaosEventKindTestError ChaosEventKind = "TestError"
	// ChaosEventKindStopped - Indicates a Chaos event that gets generated when Chaos stops because either the user issued a stop or the time to run was up. The value is 6.
	ChaosEventKindStopped ChaosEventKind = "Stopped"
)

// PossibleChaosEventKindValues returns the possible values for the ChaosEventKind const type.
func PossibleChaosEventKindValues() []ChaosEventKind {
	return []ChaosEventKind{
		ChaosEventKindInvalid,
		ChaosEventKindStarted,
		ChaosEventKindExecutingFaults,
		ChaosEventKindWaiting,
		ChaosEventKindValidationFailed,
		ChaosEventKindTestError,
		ChaosEventKindStopped,
	}
}

// SafetyCheckKind - The kind of safety check performed by service fabric before continuing with the operations.
type SafetyCheckKind string

const (
	// SafetyCheckKindInvalid - Indicates that the upgrade safety check kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	SafetyCheckKindInvalid SafetyCheckKind = "Invalid"
	// SafetyCheckKindEnsureSeedNodeQuorum - Indicates that if we bring down the node then this will result in global seed node quorum loss. The value is 1.
	SafetyCheckKindEnsureSeedNodeQuorum SafetyCheckKind = "EnsureSeedNodeQuorum"
	// SafetyCheckKindEnsurePartitionQuorum - Indicates that there is some partition for which if we bring down the replica on the node, it will result in quorum loss for that partition. The value is 2.
	SafetyCheckKindEnsurePartitionQuorum SafetyCheckKind = "EnsurePartitionQuorum"
	// SafetyCheckKindWaitForPrimaryPlacement - Indicates that there is some replica on the node that was moved out of this node due to upgrade. Service Fabric is now waiting for the primary to be moved back to this node. The value is 3.
	SafetyCheckKindWaitForPrimaryPlacement SafetyCheckKind = "WaitForPrimaryPlacement"
	// SafetyCheckKindWaitForPrimarySwap - Indicates that Service Fabric is waiting for a primary replica to be moved out of the node before starting upgrade on that node. The value is 4.
	SafetyCheckKindWaitForPrimarySwap SafetyCheckKind = "WaitForPrimarySwap"
	// SafetyCheckKindWaitForReconfiguration - Indicates that there is some replica on the node that is involved in a reconfiguration. Service Fabric is waiting for the reconfiguration to be complete before staring upgrade on that node. The value is 5.
	SafetyCheckKindWaitForReconfiguration SafetyCheckKind = "WaitForReconfiguration"
	// SafetyCheckKindWaitForInbuildReplica - Indicates that there is either a replica on the node that is going through copy, or there is a primary replica on the node that is copying data to some other replica. The value is 6.
	SafetyCheckKindWaitForInbuildReplica SafetyCheckKind = "WaitForInbuildReplica"
	// SafetyCheckKindEnsureAvailability - Indicates that there is either a stateless service partition on the node having all its instances down or a stateful service partition on the node having all its replicas down. The value is 7.
	SafetyCheckKindEnsureAvailability SafetyCheckKind = "EnsureAvailability"
)

// PossibleSafetyCheckKindValues returns the possible values for the SafetyCheckKind const type.
func PossibleSafetyCheckKindValues() []SafetyCheckKind {
	return []SafetyCheckKind{
		SafetyCheckKindInvalid,
		SafetyCheckKindEnsureSeedNodeQuorum,
		SafetyCheckKindEnsurePartitionQuorum,
		SafetyCheckKindWaitForPrimaryPlacement,
		SafetyCheckKindWaitForPrimarySwap,
		SafetyCheckKindWaitForReconfiguration,
		SafetyCheckKindWaitForInbuildReplica,
		SafetyCheckKindEnsureAvailability,
	}
}
