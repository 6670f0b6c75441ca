package servicefabric

// NetworkKind - The type of a Service Fabric container network.
type NetworkKind string

const (
	// NetworkKindLocal - Indicates a container network local to a single Service Fabric cluster.
	NetworkKindLocal NetworkKind = "Local"
)

// PossibleNetworkKindValues returns the possible values for the NetworkKind const type.
func PossibleNetworkKindValues() []NetworkKind {
	return []NetworkKind{
		NetworkKindLocal,
	}
}

// ResourceStatus - Status of the resource.
type ResourceStatus string

const (
	// ResourceStatusUnknown - Indicates the resource status is unknown.
	ResourceStatusUnknown ResourceStatus = "Unknown"
	// ResourceStatusReady - Indicates the resource is ready.
	ResourceStatusReady ResourceStatus = "Ready"
	// ResourceStatusUpgrading - Indicates the resource is upgrading.
	ResourceStatusUpgrading ResourceStatus = "Upgrading"
	// ResourceStatusCreating - Indicates the resource is being created.
	ResourceStatusCreating ResourceStatus = "Creating"
	// ResourceStatusDeleting - Indicates the resource is being deleted.
	ResourceStatusDeleting ResourceStatus = "Deleting"
	// ResourceStatusFailed - Indicates the resource is not functional due to persistent failures. See statusDetails property for more details.
	ResourceStatusFailed ResourceStatus = "Failed"
)

// PossibleResourceStatusValues returns the possible values for the ResourceStatus const type.
func PossibleResourceStatusValues() []ResourceStatus {
	return []ResourceStatus{
		ResourceStatusUnknown,
		ResourceStatusReady,
		ResourceStatusUpgrading,
		ResourceStatusCreating,
		ResourceStatusDeleting,
		ResourceStatusFailed,
	}
}

// SecretKind - Describes the kind of secret.
type SecretKind string

const (
	// SecretKindInlinedValue - A simple secret resource whose value is provided by the user.
	SecretKindInlinedValue SecretKind = "inlinedValue"
	// SecretKindKeyVaultVersionedReference - A secret resource that references a specific version of a secret stored in Azure Key Vault; the expected value is a versioned KeyVault URI corresponding to the version of the secret being referenced.
	SecretKindKeyVaultVersionedReference SecretKind = "keyVaultVersionedReference"
)

// PossibleSecretKindValues returns the possible values for the SecretKind const type.
func PossibleSecretKindValues() []SecretKind {
	return []SecretKind{
		SecretKindInlinedValue,
		SecretKindKeyVaultVersionedReference,
	}
}

// RestartPolicy - Enumerates the restart policy for RunToCompletionExecutionPolicy.
type RestartPolicy string

const (
	// RestartPolicyOnFailure - Service will be restarted when it encounters a failure.
	RestartPolicyOnFailure RestartPolicy = "OnFailure"
	// RestartPolicyNever - Service will never be restarted. If the service encounters a failure, it will move to Failed state.
	RestartPolicyNever RestartPolicy = "Never"
)

// PossibleRestartPolicyValues returns the possible values for the RestartPolicy const type.
func PossibleRestartPolicyValues() []RestartPolicy {
	return []RestartPolicy{
		RestartPolicyOnFailure,
		RestartPolicyNever,
	}
}

// ExecutionPolicyType - Enumerates the execution policy types for services.
type ExecutionPolicyType string

const (
	// ExecutionPolicyTypeDefault - Indicates the default execution policy. Always restart the service if an exit occurs.
	ExecutionPolicyTypeDefault ExecutionPolicyType = "Default"
	// ExecutionPolicyTypeRunToCompletion - Indicates that the service will perform its desired operation and complete successfully. If the service encounters failure, it will restarted based on restart policy specified. If the service completes its operation successfully, it will not be restarted again.
	ExecutionPolicyTypeRunToCompletion ExecutionPolicyType = "RunToCompletion"
)

// PossibleExecutionPolicyTypeValues returns the possible values for the ExecutionPolicyType const type.
func PossibleExecutionPolicyTypeValues() []ExecutionPolicyType {
	return []ExecutionPolicyType{
		ExecutionPolicyTypeDefault,
		ExecutionPolicyTypeRunToCompletion,
	}
}
