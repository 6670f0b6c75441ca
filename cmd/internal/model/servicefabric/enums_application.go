package servicefabric

// ApplicationStatus - The status of the application.
type ApplicationStatus string

const (
	// ApplicationStatusInvalid - Indicates the application status is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ApplicationStatusInvalid ApplicationStatus = "Invalid"
	// ApplicationStatusReady - Indicates the application status is ready. The value is 1.
	ApplicationStatusReady ApplicationStatus = "Ready"
	// ApplicationStatusUpgrading - Indicates the application status is upgrading. The value is 2.
	ApplicationStatusUpgrading ApplicationStatus = "Upgrading"
	// ApplicationStatusCreating - Indicates the application status is creating. The value is 3.
	ApplicationStatusCreating ApplicationStatus = "Creating"
	// ApplicationStatusDeleting - Indicates the application status is deleting. The value is 4.
	ApplicationStatusDeleting ApplicationStatus = "Deleting"
	// ApplicationStatusFailed - Indicates the creation or deletion of application was terminated due to persistent failures. Another create/delete request can be accepted to resume a failed application. The value is 5.
	ApplicationStatusFailed ApplicationStatus = "Failed"
)

// PossibleApplicationStatusValues returns the possible values for the ApplicationStatus const type.
func PossibleApplicationStatusValues() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusInvalid,
		ApplicationStatusReady,
		ApplicationStatusUpgrading,
		ApplicationStatusCreating,
		ApplicationStatusDeleting,
		ApplicationStatusFailed,
	}
}

// ApplicationDefinitionKind - The mechanism used to define a Service Fabric application.
type ApplicationDefinitionKind string

const (
	// ApplicationDefinitionKindInvalid - Indicates the application definition kind is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ApplicationDefinitionKindInvalid ApplicationDefinitionKind = "Invalid"
	// ApplicationDefinitionKindServiceFabricApplicationDescription - Indicates the application is defined by a Service Fabric application description. The value is 1.
	ApplicationDefinitionKindServiceFabricApplicationDescription ApplicationDefinitionKind = "ServiceFabricApplicationDescription"
	// ApplicationDefinitionKindCompose - Indicates the application is defined by compose file(s). The value is 2.
	ApplicationDefinitionKindCompose ApplicationDefinitionKind = "Compose"
)

// PossibleApplicationDefinitionKindValues returns the possible values for the ApplicationDefinitionKind const type.
func PossibleApplicationDefinitionKindValues() []ApplicationDefinitionKind {
	return []ApplicationDefinitionKind{
		ApplicationDefinitionKindInvalid,
		ApplicationDefinitionKindServiceFabricApplicationDescription,
		ApplicationDefinitionKindCompose,
	}
}

// ApplicationPackageCleanupPolicy - The kind of action that needs to be taken for cleaning up the application package after successful provision.
type ApplicationPackageCleanupPolicy string

const (
	// ApplicationPackageCleanupPolicyInvalid - Indicates that the application package cleanup policy is invalid. The value is 0.
	ApplicationPackageCleanupPolicyInvalid ApplicationPackageCleanupPolicy = "Invalid"
	// ApplicationPackageCleanupPolicyDefault - Indicates that the cleanup policy of application packages is based on the cluster setting "CleanupApplicationPackageOnProvisionSuccess." The value is 1.
	ApplicationPackageCleanupPolicyDefault ApplicationPackageCleanupPolicy = "Default"
	// ApplicationPackageCleanupPolicyAutomatic - Indicates that the service fabric runtime determines when to do the application package cleanup. The value is 2.
	ApplicationPackageCleanupPolicyAutomatic ApplicationPackageCleanupPolicy = "Automatic"
	// ApplicationPackageCleanupPolicyManual - Indicates that the user has to explicitly clean up the application package. The value is 3.
	ApplicationPackageCleanupPolicyManual ApplicationPackageCleanupPolicy = "Manual"
)

// PossibleApplicationPackageCleanupPolicyValues returns the possible values for the ApplicationPackageCleanupPolicy const type.
func PossibleApplicationPackageCleanupPolicyValues() []ApplicationPackageCleanupPolicy {
	return []ApplicationPackageCleanupPolicy{
		ApplicationPackageCleanupPolicyInvalid,
		ApplicationPackageCleanupPolicyDefault,
		ApplicationPackageCleanupPolicyAutomatic,
		ApplicationPackageCleanupPolicyManual,
	}
}

// ProvisionApplicationTypeKind - The kind of application type registration or provision requested.
type ProvisionApplicationTypeKind string

const (
	// ProvisionApplicationTypeKindInvalid - Indicates that the provision kind is invalid. The value is 0.
	ProvisionApplicationTypeKindInvalid ProvisionApplicationTypeKind = "Invalid"
	// ProvisionApplicationTypeKindImageStorePath - Indicates that the provision is for a package that was previously uploaded to the image store. The value is 1.
	ProvisionApplicationTypeKindImageStorePath ProvisionApplicationTypeKind = "ImageStorePath"
	// ProvisionApplicationTypeKindExternalStore - Indicates that the provision is for an application package that was previously uploaded to an external store. The value is 2.
	ProvisionApplicationTypeKindExternalStore ProvisionApplicationTypeKind = "ExternalStore"
)

// PossibleProvisionApplicationTypeKindValues returns the possible values for the ProvisionApplicationTypeKind const type.
func PossibleProvisionApplicationTypeKindValues() []ProvisionApplicationTypeKind {
	return []ProvisionApplicationTypeKind{
		ProvisionApplicationTypeKindInvalid,
		ProvisionApplicationTypeKindImageStorePath,
		ProvisionApplicationTypeKindExternalStore,
	}
}
