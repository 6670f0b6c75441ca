package servicefabric

// NodeStatus - The status of the node.
type NodeStatus string

const (
	// NodeStatusInvalid - Indicates the node status is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	NodeStatusInvalid NodeStatus = "Invalid"
	// NodeStatusUp - Indicates the node is up. The value is 1.
	NodeStatusUp NodeStatus = "Up"
	// NodeStatusDown - Indicates the node is down. The value is 2.
	NodeStatusDown NodeStatus = "Down"
	// NodeStatusEnabling - Indicates the node is in process of being enabled. The value is 3.
	NodeStatusEnabling NodeStatus = "Enabling"
	// NodeStatusDisabling - Indicates the node is in the process of being disabled. The value is 4.
	NodeStatusDisabling NodeStatus = "Disabling"
	// NodeStatusDisabled - Indicates the node is disabled. The value is 5.
	NodeStatusDisabled NodeStatus = "Disabled"
	// NodeStatusUnknown - Indicates the node is unknown. A node would be in Unknown state if Service Fabric does not have authoritative information about that node. The value is 6.
	NodeStatusUnknown NodeStatus = "Unknown"
	// NodeStatusRemoved - Indicates the node is removed. A node would be in Removed state if NodeStateRemoved API has been called for this node. The value is 7.
	NodeStatusRemoved NodeStatus = "Removed"
)

// PossibleNodeStatusValues returns the possible values for the NodeStatus const type.
func PossibleNodeStatusValues() []NodeStatus {
	return []NodeStatus{
		NodeStatusInvalid,
		NodeStatusUp,
		NodeStatusDown,
		NodeStatusEnabling,
		NodeStatusDisabling,
		NodeStatusDisabled,
		NodeStatusUnknown,
		NodeStatusRemoved,
	}
}

// NodeDeactivationIntent - The intent or the reason for deactivating the node.
type NodeDeactivationIntent string

const (
	// NodeDeactivationIntentInvalid - Indicates the node deactivation intent is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	NodeDeactivationIntentInvalid NodeDeactivationIntent = "Invalid"
	// NodeDeactivationIntentPause - Indicates that the node should be paused. The value is 1.
	NodeDeactivationIntentPause NodeDeactivationIntent = "Pause"
	// NodeDeactivationIntentRestart - Indicates that the intent is for the node to be restarted after a short period of time. The value is 2.
	NodeDeactivationIntentRestart NodeDeactivationIntent = "Restart"
	// NodeDeactivationIntentRemoveData - Indicates that the intent is to reimage the node. The value is 3.
	NodeDeactivationIntentRemoveData NodeDeactivationIntent = "RemoveData"
	// NodeDeactivationIntentRemoveNode - Indicates that the node is being decommissioned and is not expected to return. The value is 4.
	NodeDeactivationIntentRemoveNode NodeDeactivationIntent = "RemoveNode"
)

// PossibleNodeDeactivationIntentValues returns the possible values for the NodeDeactivationIntent const type.
func PossibleNodeDeactivationIntentValues() []NodeDeactivationIntent {
	return []NodeDeactivationIntent{
		NodeDeactivationIntentInvalid,
		NodeDeactivationIntentPause,
		NodeDeactivationIntentRestart,
		NodeDeactivationIntentRemoveData,
		NodeDeactivationIntentRemoveNode,
	}
}

// NodeDeactivationStatus - The status of node deactivation operation.
type NodeDeactivationStatus string

const (
	// NodeDeactivationStatusNone - No status is associated with the task. The value is 0.
	NodeDeactivationStatusNone NodeDeactivationStatus = "None"
	// NodeDeactivationStatusSafetyCheckInProgress - When a node is deactivated Service Fabric performs checks to ensure that the operation is safe to proceed to ensure availability of the service and reliability of the state. The value is 1.
	NodeDeactivationStatusSafetyCheckInProgress NodeDeactivationStatus = "SafetyCheckInProgress"
	// NodeDeactivationStatusSafetyCheckComplete - When this value is set, the safety checks have completed. The value is 2.
	NodeDeactivationStatusSafetyCheckComplete NodeDeactivationStatus = "SafetyCheckComplete"
	// NodeDeactivationStatusCompleted - When this value is set, the node deactivation has completed. The value is 3.
	NodeDeactivationStatusCompleted NodeDeactivationStatus = "Completed"
)

// PossibleNodeDeactivationStatusValues returns the possible values for the NodeDeactivationStatus const type.
func PossibleNodeDeactivationStatusValues() []NodeDeactivationStatus {
	return []NodeDeactivationStatus{
		NodeDeactivationStatusNone,
		NodeDeactivationStatusSafetyCheckInProgress,
		NodeDeactivationStatusSafetyCheckComplete,
		NodeDeactivationStatusCompleted,
	}
}
