package servicefabric

import "github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"

// ApplicationParameter describes an application parameter override to be applied when creating or
// upgrading an application.
type ApplicationParameter struct {
	// The name of the parameter.
	Key string `json:"Key"`

	// The value of the parameter.
	Value string `json:"Value"`
}

func NewApplicationParameter(key string, value string) (*ApplicationParameter, error) {
	err := validation.First(
		validation.RequiredString("key", key),
		validation.RequiredString("value", value))

	if err != nil {
		return nil, err
	}

	return &ApplicationParameter{Key: key, Value: value}, nil
}

// ApplicationInfo is information about a Service Fabric application.
type ApplicationInfo struct {
	// The identity of the application. This is an encoded representation of the application name.
	// This is used in the REST APIs to identify the application resource. Starting in version 6.0,
	// hierarchical names are delimited with the "~" character.
	Id *string `json:"Id,omitempty"`

	// The name of the application, including the 'fabric:' URI scheme.
	Name *string `json:"Name,omitempty"`

	// The application type name as defined in the application manifest.
	TypeName *string `json:"TypeName,omitempty"`

	// The version of the application type as defined in the application manifest.
	TypeVersion *string `json:"TypeVersion,omitempty"`

	// The status of the application.
	Status *ApplicationStatus `json:"Status,omitempty"`

	// List of application parameters with overridden values from their default values specified in
	// the application manifest.
	Parameters []ApplicationParameter `json:"Parameters,omitempty"`

	// The health state of a Service Fabric entity.
	HealthState *HealthState `json:"HealthState,omitempty"`

	// The mechanism used to define a Service Fabric application.
	ApplicationDefinitionKind *ApplicationDefinitionKind `json:"ApplicationDefinitionKind,omitempty"`
}

// PagedApplicationInfoList is the list of applications in the cluster.
type PagedApplicationInfoList = PagedList[ApplicationInfo]
