package servicefabric

import "time"

// NodeId is an internal ID used by Service Fabric to uniquely identify a node. Node Id is
// deterministically generated from node name.
type NodeId struct {
	// Value of the node Id. This is a 128 bit integer.
	Id *string `json:"Id,omitempty"`
}

// NodeDeactivationTaskId identifies the task performing the node deactivation.
type NodeDeactivationTaskId struct {
	Id   *string `json:"Id,omitempty"`
	Type *string `json:"Type,omitempty"`
}

// NodeDeactivationTask is the task representing the deactivation operation on the node.
type NodeDeactivationTask struct {
	NodeDeactivationTaskId *NodeDeactivationTaskId `json:"NodeDeactivationTaskId,omitempty"`
	NodeDeactivationIntent *NodeDeactivationIntent `json:"NodeDeactivationIntent,omitempty"`
}

// NodeDeactivationInfo is information about the node deactivation. This information is valid for a
// node that is undergoing deactivation or has already been deactivated.
type NodeDeactivationInfo struct {
	// The intent or the reason for deactivating the node.
	NodeDeactivationIntent *NodeDeactivationIntent `json:"NodeDeactivationIntent,omitempty"`

	// The status of node deactivation operation.
	NodeDeactivationStatus *NodeDeactivationStatus `json:"NodeDeactivationStatus,omitempty"`

	// List of tasks representing the deactivation operation on the node.
	NodeDeactivationTask []NodeDeactivationTask `json:"NodeDeactivationTask,omitempty"`

	// List of pending safety checks
	PendingSafetyChecks []SafetyCheckWrapper `json:"PendingSafetyChecks,omitempty"`
}

// NodeInfo is information about a node in Service Fabric cluster.
type NodeInfo struct {
	// The name of a Service Fabric node.
	Name *string `json:"Name,omitempty"`

	// The IP address or fully qualified domain name of the node.
	IpAddressOrFQDN *string `json:"IpAddressOrFQDN,omitempty"`

	// The type of the node.
	Type *string `json:"Type,omitempty"`

	// The version of Service Fabric binaries that the node is running.
	CodeVersion *string `json:"CodeVersion,omitempty"`

	// The version of Service Fabric cluster manifest that the node is using.
	ConfigVersion *string `json:"ConfigVersion,omitempty"`

	// The status of the node.
	NodeStatus *NodeStatus `json:"NodeStatus,omitempty"`

	// Time in seconds since the node has been in NodeStatus Up. Value zero indicates that the node is
	// not Up.
	NodeUpTimeInSeconds *string `json:"NodeUpTimeInSeconds,omitempty"`

	// The health state of a Service Fabric entity.
	HealthState *HealthState `json:"HealthState,omitempty"`

	// Indicates if the node is a seed node or not. Returns true if the node is a seed node, otherwise
	// false. A quorum of seed nodes are required for proper operation of Service Fabric cluster.
	IsSeedNode *bool `json:"IsSeedNode,omitempty"`

	// The upgrade domain of the node.
	UpgradeDomain *string `json:"UpgradeDomain,omitempty"`

	// The fault domain of the node.
	FaultDomain *string `json:"FaultDomain,omitempty"`

	// An internal ID used by Service Fabric to uniquely identify a node.
	Id *NodeId `json:"Id,omitempty"`

	// The ID representing the node instance. While the ID of the node is deterministically generated
	// from the node name and remains same across restarts, the InstanceId changes every time node
	// restarts.
	InstanceId *string `json:"InstanceId,omitempty"`

	// Information about the node deactivation.
	NodeDeactivationInfo *NodeDeactivationInfo `json:"NodeDeactivationInfo,omitempty"`

	// Indicates if the node is stopped by calling stop node API or not.
	IsStopped *bool `json:"IsStopped,omitempty"`

	// Time in seconds since the node has been in NodeStatus Down.
	NodeDownTimeInSeconds *string `json:"NodeDownTimeInSeconds,omitempty"`

	// Date time in UTC when the node came up.
	NodeUpAt *time.Time `json:"NodeUpAt,omitempty"`

	// Date time in UTC when the node went down.
	NodeDownAt *time.Time `json:"NodeDownAt,omitempty"`
}

// PagedNodeInfoList is the list of nodes in the cluster.
type PagedNodeInfoList = PagedList[NodeInfo]
