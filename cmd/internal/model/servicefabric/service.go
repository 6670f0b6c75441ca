package servicefabric

// ServiceInfo is information about a Service Fabric service.
type ServiceInfo interface {
	ServiceKind() ServiceKind
	GetId() *string
	GetName() *string
}

// ServiceInfoBase holds the properties shared by stateful and stateless services.
type ServiceInfoBase struct {
	// The identity of the service. This ID is an encoded representation of the service name. This is
	// used in the REST APIs to identify the service resource. Starting in version 6.0, hierarchical
	// names are delimited with the "~" character.
	Id *string `json:"Id,omitempty"`

	// The full name of the service with 'fabric:' URI scheme.
	Name *string `json:"Name,omitempty"`

	// Name of the service type as specified in the service manifest.
	TypeName *string `json:"TypeName,omitempty"`

	// The version of the service manifest.
	ManifestVersion *string `json:"ManifestVersion,omitempty"`

	// The health state of a Service Fabric entity.
	HealthState *HealthState `json:"HealthState,omitempty"`

	// The status of the application.
	ServiceStatus *ServiceStatus `json:"ServiceStatus,omitempty"`

	// Whether the service is in a service group.
	IsServiceGroup *bool `json:"IsServiceGroup,omitempty"`
}

func (s ServiceInfoBase) GetId() *string {
	return s.Id
}

func (s ServiceInfoBase) GetName() *string {
	return s.Name
}

// StatefulServiceInfo is information about a stateful Service Fabric service.
type StatefulServiceInfo struct {
	ServiceInfoBase

	// Whether the service has persisted state.
	HasPersistedState *bool `json:"HasPersistedState,omitempty"`
}

func (s StatefulServiceInfo) ServiceKind() ServiceKind {
	return ServiceKindStateful
}

func (s StatefulServiceInfo) MarshalJSON() ([]byte, error) {
	type alias StatefulServiceInfo
	return marshalKinded("ServiceKind", string(s.ServiceKind()), alias(s))
}

// StatelessServiceInfo is information about a stateless Service Fabric service.
type StatelessServiceInfo struct {
	ServiceInfoBase
}

func (s StatelessServiceInfo) ServiceKind() ServiceKind {
	return ServiceKindStateless
}

func (s StatelessServiceInfo) MarshalJSON() ([]byte, error) {
	type alias StatelessServiceInfo
	return marshalKinded("ServiceKind", string(s.ServiceKind()), alias(s))
}

var serviceInfoFamily = family[ServiceInfo]{
	name:          "ServiceInfo",
	discriminator: "ServiceKind",
	variants: map[string]func() ServiceInfo{
		string(ServiceKindStateful):  func() ServiceInfo { return &StatefulServiceInfo{} },
		string(ServiceKindStateless): func() ServiceInfo { return &StatelessServiceInfo{} },
	},
}

// UnmarshalServiceInfo decodes a service payload into its stateful or stateless variant.
func UnmarshalServiceInfo(data []byte) (ServiceInfo, error) {
	return serviceInfoFamily.decode(data)
}

// UnmarshalPagedServiceInfoList decodes a page of services.
func UnmarshalPagedServiceInfoList(data []byte) (PagedList[ServiceInfo], error) {
	return decodePagedList(data, serviceInfoFamily)
}
