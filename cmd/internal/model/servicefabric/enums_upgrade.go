package servicefabric

// UpgradeState - The state of the upgrade domain.
type UpgradeState string

const (
	// UpgradeStateInvalid - Indicates the upgrade state is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	UpgradeStateInvalid UpgradeState = "Invalid"
	// UpgradeStateRollingBackInProgress - The upgrade is rolling back to the previous version but is not complete yet. The value is 1.
	UpgradeStateRollingBackInProgress UpgradeState = "RollingBackInProgress"
	// UpgradeStateRollingBackCompleted - The upgrade has finished rolling back. The value is 2.
	UpgradeStateRollingBackCompleted UpgradeState = "RollingBackCompleted"
	// UpgradeStateRollingForwardPending - The current upgrade domain has finished upgrading. The overall upgrade is waiting for an explicit move next request in UnmonitoredManual mode or performing health checks in Monitored mode. The value is 3.
	UpgradeStateRollingForwardPending UpgradeState = "RollingForwardPending"
	// UpgradeStateRollingForwardInProgress - The upgrade is rolling forward to the target version but is not complete yet. The value is 4.
	UpgradeStateRollingForwardInProgress UpgradeState = "RollingForwardInProgress"
	// UpgradeStateRollingForwardCompleted - The upgrade has finished rolling forward. The value is 5.
	UpgradeStateRollingForwardCompleted UpgradeState = "RollingForwardCompleted"
	// UpgradeStateFailed - The upgrade has failed and is unable to execute FailureAction. The value is 6.
	UpgradeStateFailed UpgradeState = "Failed"
)

// PossibleUpgradeStateValues returns the possible values for the UpgradeState const type.
func PossibleUpgradeStateValues() []UpgradeState {
	return []UpgradeState{
		UpgradeStateInvalid,
		UpgradeStateRollingBackInProgress,
		UpgradeStateRollingBackCompleted,
		UpgradeStateRollingForwardPending,
		UpgradeStateRollingForwardInProgress,
		UpgradeStateRollingForwardCompleted,
		UpgradeStateFailed,
	}
}

// UpgradeMode - The mode used to monitor health during a rolling upgrade. The values are UnmonitoredAuto, UnmonitoredManual, Monitored, and UnmonitoredDeferred.
type UpgradeMode string

const (
	// UpgradeModeInvalid - Indicates the upgrade mode is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	UpgradeModeInvalid UpgradeMode = "Invalid"
	// UpgradeModeUnmonitoredAuto - The upgrade will proceed automatically without performing any health monitoring. The value is 1.
	UpgradeModeUnmonitoredAuto UpgradeMode = "UnmonitoredAuto"
	// UpgradeModeUnmonitoredManual - The upgrade will stop after completing each upgrade domain, giving the opportunity to manually monitor health before proceeding. The value is 2.
	UpgradeModeUnmonitoredManual UpgradeMode = "UnmonitoredManual"
	// UpgradeModeMonitored - The upgrade will stop after completing each upgrade domain and automatically monitor health before proceeding. The value is 3.
	UpgradeModeMonitored UpgradeMode = "Monitored"
	// UpgradeModeUnmonitoredDeferred - Perform a node-by-node upgrade. No action is performed when upgrade starts; upgrade is applied on each node when it is deactivated with intent restart or higher. The value is 4.
	UpgradeModeUnmonitoredDeferred UpgradeMode = "UnmonitoredDeferred"
)

// PossibleUpgradeModeValues returns the possible values for the UpgradeMode const type.
func PossibleUpgradeModeValues() []UpgradeMode {
	return []UpgradeMode{
		UpgradeModeInvalid,
		UpgradeModeUnmonitoredAuto,
		UpgradeModeUnmonitoredManual,
		UpgradeModeMonitored,
		UpgradeModeUnmonitoredDeferred,
	}
}

// UpgradeKind - The kind of upgrade out of the following possible values.
type UpgradeKind string

const (
	// UpgradeKindInvalid - Indicates the upgrade kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	UpgradeKindInvalid UpgradeKind = "Invalid"
	// UpgradeKindRolling - The upgrade progresses one upgrade domain at a time. The value is 1.
	UpgradeKindRolling UpgradeKind = "Rolling"
)

// PossibleUpgradeKindValues returns the possible values for the UpgradeKind const type.
func PossibleUpgradeKindValues() []UpgradeKind {
	return []UpgradeKind{
		UpgradeKindInvalid,
		UpgradeKindRolling,
	}
}

// FailureAction - The compensating action to perform when a Monitored upgrade encounters monitoring policy or health policy violations.
type FailureAction string

const (
	// FailureActionInvalid - Indicates the failure action is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	FailureActionInvalid FailureAction = "Invalid"
	// FailureActionRollback - The upgrade will start rolling back automatically. The value is 1.
	FailureActionRollback FailureAction = "Rollback"
	// FailureActionManual - The upgrade will switch to UnmonitoredManual upgrade mode. The value is 2.
	FailureActionManual FailureAction = "Manual"
)

// PossibleFailureActionValues returns the possible values for the FailureAction const type.
func PossibleFailureActionValues() []FailureAction {
	return []FailureAction{
		FailureActionInvalid,
		FailureActionRollback,
		FailureActionManual,
	}
}

// FailureReason - The cause of an upgrade failure that resulted in FailureAction being executed.
type FailureReason string

const (
	// FailureReasonNone - Indicates the reason is invalid or unknown. All Service Fabric enumerations have the invalid type. The value is 0.
	FailureReasonNone FailureReason = "None"
	// FailureReasonInterrupted - There was an external request to roll back the upgrade. The value is 1.
	FailureReasonInterrupted FailureReason = "Interrupted"
	// FailureReasonHealthCheck - The upgrade failed due to health policy violations. The value is 2.
	FailureReasonHealthCheck FailureReason = "HealthCheck"
	// FailureReasonUpgradeDomainTimeout - An upgrade domain took longer than the allowed upgrade domain timeout to process. The value is 3.
	FailureReasonUpgradeDomainTimeout FailureReason = "UpgradeDomainTimeout"
	// FailureReasonOverallUpgradeTimeout - The overall upgrade took longer than the allowed upgrade timeout to process. The value is 4.
	FailureReasonOverallUpgradeTimeout FailureReason = "OverallUpgradeTimeout"
)

// PossibleFailureReasonValues returns the possible values for the FailureReason const type.
func PossibleFailureReasonValues() []FailureReason {
	return []FailureReason{
		FailureReasonNone,
		FailureReasonInterrupted,
		FailureReasonHealthCheck,
		FailureReasonUpgradeDomainTimeout,
		FailureReasonOverallUpgradeTimeout,
	}
}

// UpgradeDomainState - The state of the upgrade domain.
type UpgradeDomainState string

const (
	// UpgradeDomainStateInvalid - Indicates the upgrade domain state is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	UpgradeDomainStateInvalid UpgradeDomainState = "Invalid"
	// UpgradeDomainStatePending - The upgrade domain has not started upgrading yet. The value is 1.
	UpgradeDomainStatePending UpgradeDomainState = "Pending"
	// UpgradeDomainStateInProgress - The upgrade domain is being upgraded but is not complete yet. The value is 2.
	UpgradeDomainStateInProgress UpgradeDomainState = "InProgress"
	// UpgradeDomainStateCompleted - The upgrade domain has completed upgrade. The value is 3.
	UpgradeDomainStateCompleted UpgradeDomainState = "Completed"
)

// PossibleUpgradeDomainStateValues returns the possible values for the UpgradeDomainState const type.
func PossibleUpgradeDomainStateValues() []UpgradeDomainState {
	return []UpgradeDomainState{
		UpgradeDomainStateInvalid,
		UpgradeDomainStatePending,
		UpgradeDomainStateInProgress,
		UpgradeDomainStateCompleted,
	}
}

// NodeUpgradePhase - The state of the upgrading node.
type NodeUpgradePhase string

const (
	// NodeUpgradePhaseInvalid - Indicates the upgrade state is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	NodeUpgradePhaseInvalid NodeUpgradePhase = "Invalid"
	// NodeUpgradePhasePreUpgradeSafetyCheck - The upgrade has not started yet due to pending safety checks. The value is 1.
	NodeUpgradePhasePreUpgradeSafetyCheck NodeUpgradePhase = "PreUpgradeSafetyCheck"
	// NodeUpgradePhaseUpgrading - The upgrade is in progress. The value is 2.
	NodeUpgradePhaseUpgrading NodeUpgradePhase = "Upgrading"
	// NodeUpgradePhasePostUpgradeSafetyCheck - The upgrade has completed and post upgrade safety checks are being performed. The value is 3.
	NodeUpgradePhasePostUpgradeSafetyCheck NodeUpgradePhase = "PostUpgradeSafetyCheck"
)

// PossibleNodeUpgradePhaseValues returns the possible values for the NodeUpgradePhase const type.
func PossibleNodeUpgradePhaseValues() []NodeUpgradePhase {
	return []NodeUpgradePhase{
		NodeUpgradePhaseInvalid,
		NodeUpgradePhasePreUpgradeSafetyCheck,
		NodeUpgradePhaseUpgrading,
		NodeUpgradePhasePostUpgradeSafetyCheck,
	}
}

// UpgradeSortOrder - Defines the order in which an upgrade proceeds through the cluster.
type UpgradeSortOrder string

const (
	// UpgradeSortOrderInvalid - Indicates that this sort order is not valid. All Service Fabric enumerations have the invalid type. The value is 0.
	UpgradeSortOrderInvalid UpgradeSortOrder = "Invalid"
	// UpgradeSortOrderDefault - Indicates that the default sort order (as specified in cluster manifest) will be used. The value is 1.
	UpgradeSortOrderDefault UpgradeSortOrder = "Default"
	// UpgradeSortOrderNumeric - Indicates that forward numeric sort order (UD names sorted as numbers) will be used. The value is 2.
	UpgradeSortOrderNumeric UpgradeSortOrder = "Numeric"
	// UpgradeSortOrderLexicographical - Indicates that forward lexicographical sort order (UD names sorted as strings) will be used. The value is 3.
	UpgradeSortOrderLexicographical UpgradeSortOrder = "Lexicographical"
	// UpgradeSortOrderReverseNumeric - Indicates that reverse numeric sort order (UD names sorted as numbers) will be used. The value is 4.
	UpgradeSortOrderReverseNumeric UpgradeSortOrder = "ReverseNumeric"
	// UpgradeSortOrderReverseLexicographical - Indicates that reverse lexicographical sort order (UD names sorted as strings) will be used. The value is 5.
	UpgradeSortOrderReverseLexicographical UpgradeSortOrder = "ReverseLexicographical"
)

// PossibleUpgradeSortOrderValues returns the possible values for the UpgradeSortOrder const type.
func PossibleUpgradeSortOrderValues() []UpgradeSortOrder {
	return []UpgradeSortOrder{
		UpgradeSortOrderInvalid,
		UpgradeSortOrderDefault,
		UpgradeSortOrderNumeric,
		UpgradeSortOrderLexicographical,
		UpgradeSortOrderReverseNumeric,
		UpgradeSortOrderReverseLexicographical,
	}
}
