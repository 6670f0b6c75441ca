package servicefabric

// UpgradeDomainInfo is information about an upgrade domain.
type UpgradeDomainInfo struct {
	// The name of the upgrade domain
	Name *string `json:"Name,omitempty"`

	// The state of the upgrade domain.
	State *UpgradeDomainState `json:"State,omitempty"`
}

// NodeUpgradeProgressInfo is information about the upgrading node and its status
type NodeUpgradeProgressInfo struct {
	// The name of a Service Fabric node.
	NodeName *string `json:"NodeName,omitempty"`

	// The state of the upgrading node.
	UpgradePhase *NodeUpgradePhase `json:"UpgradePhase,omitempty"`

	// List of pending safety checks
	PendingSafetyChecks []SafetyCheckWrapper `json:"PendingSafetyChecks,omitempty"`
}

// CurrentUpgradeDomainProgressInfo is information about the current in-progress upgrade domain.
type CurrentUpgradeDomainProgressInfo struct {
	// The name of the upgrade domain
	DomainName *string `json:"DomainName,omitempty"`

	// List of upgrading nodes and their statuses
	NodeUpgradeProgressList []NodeUpgradeProgressInfo `json:"NodeUpgradeProgressList,omitempty"`
}

// MonitoringPolicyDescription describes the parameters for monitoring an upgrade in Monitored mode.
type MonitoringPolicyDescription struct {
	// The compensating action to perform when a Monitored upgrade encounters monitoring policy or
	// health policy violations.
	FailureAction *FailureAction `json:"FailureAction,omitempty"`

	// The amount of time to wait after completing an upgrade domain before applying health policies.
	// It is first interpreted as a string representing an ISO 8601 duration. If that fails, then it is
	// interpreted as a number representing the total number of milliseconds.
	HealthCheckWaitDurationInMilliseconds *string `json:"HealthCheckWaitDurationInMilliseconds,omitempty"`

	// The amount of time that the application or cluster must remain healthy before the upgrade
	// proceeds to the next upgrade domain.
	HealthCheckStableDurationInMilliseconds *string `json:"HealthCheckStableDurationInMilliseconds,omitempty"`

	// The amount of time to retry health evaluation when the application or cluster is unhealthy
	// before FailureAction is executed.
	HealthCheckRetryTimeoutInMilliseconds *string `json:"HealthCheckRetryTimeoutInMilliseconds,omitempty"`

	// The amount of time the overall upgrade has to complete before FailureAction is executed.
	UpgradeTimeoutInMilliseconds *string `json:"UpgradeTimeoutInMilliseconds,omitempty"`

	// The amount of time each upgrade domain has to complete before FailureAction is executed.
	UpgradeDomainTimeoutInMilliseconds *string `json:"UpgradeDomainTimeoutInMilliseconds,omitempty"`
}

// PendingUpgradeDomains filters domains down to the ones that have not completed.
func PendingUpgradeDomains(domains []UpgradeDomainInfo) []UpgradeDomainInfo {
	pending := []UpgradeDomainInfo{}
	for _, domain := range domains {
		if domain.State == nil || *domain.State != UpgradeDomainStateCompleted {
			pending = append(pending, domain)
		}
	}

	return pending
}
