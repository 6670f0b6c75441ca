package servicefabric

// ServicePlacementPolicyDescription describes a placement policy applied to a Service Fabric service.
type ServicePlacementPolicyDescription interface {
	PolicyType() ServicePlacementPolicyType
}

// ServicePlacementInvalidDomainPolicyDescription describes the policy to be used for placement of a
// Service Fabric service where a particular fault or upgrade domain should not be used for placement
// of the instances or replicas of that service.
type ServicePlacementInvalidDomainPolicyDescription struct {
	// The name of the domain that should not be used for placement.
	DomainName *string `json:"DomainName,omitempty"`
}

func NewServicePlacementInvalidDomainPolicyDescription(domainName *string) *ServicePlacementInvalidDomainPolicyDescription {
	return &ServicePlacementInvalidDomainPolicyDescription{DomainName: domainName}
}

func (p ServicePlacementInvalidDomainPolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypeInvalidDomain
}

func (p ServicePlacementInvalidDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementInvalidDomainPolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

// ServicePlacementNonPartiallyPlaceServicePolicyDescription describes the policy to be used for
// placement of a Service Fabric service where all replicas must be able to be placed in order for any
// replicas to be created.
type ServicePlacementNonPartiallyPlaceServicePolicyDescription struct {
}

func NewServicePlacementNonPartiallyPlaceServicePolicyDescription() *ServicePlacementNonPartiallyPlaceServicePolicyDescription {
	return &ServicePlacementNonPartiallyPlaceServicePolicyDescription{}
}

func (p ServicePlacementNonPartiallyPlaceServicePolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypeNonPartiallyPlaceService
}

func (p ServicePlacementNonPartiallyPlaceServicePolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementNonPartiallyPlaceServicePolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

// ServicePlacementPreferPrimaryDomainPolicyDescription describes the policy to be used for placement
// of a Service Fabric service where the service's Primary replicas should optimally be placed in a
// particular domain.
type ServicePlacementPreferPrimaryDomainPolicyDescription struct {
	// The name of the domain that should used for placement as per this policy.
	DomainName *string `json:"DomainName,omitempty"`
}

func NewServicePlacementPreferPrimaryDomainPolicyDescription(domainName *string) *ServicePlacementPreferPrimaryDomainPolicyDescription {
	return &ServicePlacementPreferPrimaryDomainPolicyDescription{DomainName: domainName}
}

func (p ServicePlacementPreferPrimaryDomainPolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypePreferPrimaryDomain
}

func (p ServicePlacementPreferPrimaryDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementPreferPrimaryDomainPolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

// ServicePlacementRequiredDomainPolicyDescription describes the policy to be used for placement of a
// Service Fabric service where the instances or replicas of that service must be placed in a
// particular domain.
type ServicePlacementRequiredDomainPolicyDescription struct {
	// The name of the domain that should used for placement as per this policy.
	DomainName *string `json:"DomainName,omitempty"`
}

func NewServicePlacementRequiredDomainPolicyDescription(domainName *string) *ServicePlacementRequiredDomainPolicyDescription {
	return &ServicePlacementRequiredDomainPolicyDescription{DomainName: domainName}
}

func (p ServicePlacementRequiredDomainPolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypeRequireDomain
}

func (p ServicePlacementRequiredDomainPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementRequiredDomainPolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

// ServicePlacementRequireDomainDistributionPolicyDescription describes the policy to be used for
// placement of a Service Fabric service where two replicas from the same partition should never be
// placed in the same fault or upgrade domain.
type ServicePlacementRequireDomainDistributionPolicyDescription struct {
	// The name of the domain that should used for placement as per this policy.
	DomainName *string `json:"DomainName,omitempty"`
}

func NewServicePlacementRequireDomainDistributionPolicyDescription(domainName *string) *ServicePlacementRequireDomainDistributionPolicyDescription {
	return &ServicePlacementRequireDomainDistributionPolicyDescription{DomainName: domainName}
}

func (p ServicePlacementRequireDomainDistributionPolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypeRequireDomainDistribution
}

func (p ServicePlacementRequireDomainDistributionPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementRequireDomainDistributionPolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

// ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription describes the policy to be
// used for placement of a Service Fabric service allowing multiple stateless instances of a partition
// of the service to be placed on a node.
type ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription struct {
	// Holdover from other policy descriptions, not used for this policy, values are ignored by runtime.
	DomainName *string `json:"DomainName,omitempty"`
}

func NewServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription(domainName *string) *ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription {
	return &ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription{DomainName: domainName}
}

func (p ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription) PolicyType() ServicePlacementPolicyType {
	return ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode
}

func (p ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription) MarshalJSON() ([]byte, error) {
	type alias ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription
	return marshalKinded("Type", string(p.PolicyType()), alias(p))
}

var servicePlacementPolicyFamily = family[ServicePlacementPolicyDescription]{
	name:          "ServicePlacementPolicyDescription",
	discriminator: "Type",
	variants: map[string]func() ServicePlacementPolicyDescription{
		string(ServicePlacementPolicyTypeInvalidDomain): func() ServicePlacementPolicyDescription {
			return &ServicePlacementInvalidDomainPolicyDescription{}
		},
		string(ServicePlacementPolicyTypeNonPartiallyPlaceService): func() ServicePlacementPolicyDescription {
			return &ServicePlacementNonPartiallyPlaceServicePolicyDescription{}
		},
		string(ServicePlacementPolicyTypePreferPrimaryDomain): func() ServicePlacementPolicyDescription {
			return &ServicePlacementPreferPrimaryDomainPolicyDescription{}
		},
		string(ServicePlacementPolicyTypeRequireDomain): func() ServicePlacementPolicyDescription {
			return &ServicePlacementRequiredDomainPolicyDescription{}
		},
		string(ServicePlacementPolicyTypeRequireDomainDistribution): func() ServicePlacementPolicyDescription {
			return &ServicePlacementRequireDomainDistributionPolicyDescription{}
		},
		string(ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode): func() ServicePlacementPolicyDescription {
			return &ServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription{}
		},
	},
}

// UnmarshalServicePlacementPolicyDescription decodes a placement policy payload into its concrete variant.
func UnmarshalServicePlacementPolicyDescription(data []byte) (ServicePlacementPolicyDescription, error) {
	return servicePlacementPolicyFamily.decode(data)
}

// UnmarshalServicePlacementPolicyDescriptionList decodes a JSON array of placement policies.
func UnmarshalServicePlacementPolicyDescriptionList(data []byte) ([]ServicePlacementPolicyDescription, error) {
	return servicePlacementPolicyFamily.decodeList(data)
}
