package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/google/uuid"
)

// PartitionInformation describes the partitioning scheme and the key range or name of a partition.
// The concrete type is one of Int64RangePartitionInformation, NamedPartitionInformation or
// SingletonPartitionInformation.
type PartitionInformation interface {
	ServicePartitionKind() ServicePartitionKind
	GetPartitionId() *uuid.UUID
}

// PartitionInformationBase holds the fields shared by every PartitionInformation variant.
type PartitionInformationBase struct {
	// An internal ID used by Service Fabric to uniquely identify a partition. This is a randomly
	// generated GUID when the service was created.
	Id *uuid.UUID `json:"Id,omitempty"`
}

func (p PartitionInformationBase) GetPartitionId() *uuid.UUID {
	return p.Id
}

// Int64RangePartitionInformation describes a partition that covers an Int64 key range.
type Int64RangePartitionInformation struct {
	PartitionInformationBase

	// Specifies the minimum key value handled by this partition.
	LowKey *int64 `json:"LowKey,string,omitempty"`

	// Specifies the maximum key value handled by this partition.
	HighKey *int64 `json:"HighKey,string,omitempty"`
}

func NewInt64RangePartitionInformation(id *uuid.UUID, lowKey *int64, highKey *int64) *Int64RangePartitionInformation {
	return &Int64RangePartitionInformation{
		PartitionInformationBase: PartitionInformationBase{Id: id},
		LowKey:                   lowKey,
		HighKey:                  highKey,
	}
}

func (p Int64RangePartitionInformation) ServicePartitionKind() ServicePartitionKind {
	return ServicePartitionKindInt64Range
}

func (p Int64RangePartitionInformation) MarshalJSON() ([]byte, error) {
	type alias Int64RangePartitionInformation
	return marshalKinded("ServicePartitionKind", string(p.ServicePartitionKind()), alias(p))
}

// NamedPartitionInformation describes a partition identified by a name.
type NamedPartitionInformation struct {
	PartitionInformationBase

	// Name of the partition.
	Name *string `json:"Name,omitempty"`
}

func NewNamedPartitionInformation(id *uuid.UUID, name *string) *NamedPartitionInformation {
	return &NamedPartitionInformation{
		PartitionInformationBase: PartitionInformationBase{Id: id},
		Name:                     name,
	}
}

func (p NamedPartitionInformation) ServicePartitionKind() ServicePartitionKind {
	return ServicePartitionKindNamed
}

func (p NamedPartitionInformation) MarshalJSON() ([]byte, error) {
	type alias NamedPartitionInformation
	return marshalKinded("ServicePartitionKind", string(p.ServicePartitionKind()), alias(p))
}

// SingletonPartitionInformation describes the only partition of a singleton partitioned service.
type SingletonPartitionInformation struct {
	PartitionInformationBase
}

func NewSingletonPartitionInformation(id *uuid.UUID) *SingletonPartitionInformation {
	return &SingletonPartitionInformation{
		PartitionInformationBase: PartitionInformationBase{Id: id},
	}
}

func (p SingletonPartitionInformation) ServicePartitionKind() ServicePartitionKind {
	return ServicePartitionKindSingleton
}

func (p SingletonPartitionInformation) MarshalJSON() ([]byte, error) {
	type alias SingletonPartitionInformation
	return marshalKinded("ServicePartitionKind", string(p.ServicePartitionKind()), alias(p))
}

var partitionInformationFamily = family[PartitionInformation]{
	name:          "PartitionInformation",
	discriminator: "ServicePartitionKind",
	variants: map[string]func() PartitionInformation{
		string(ServicePartitionKindInt64Range): func() PartitionInformation { return &Int64RangePartitionInformation{} },
		string(ServicePartitionKindNamed):      func() PartitionInformation { return &NamedPartitionInformation{} },
		string(ServicePartitionKindSingleton):  func() PartitionInformation { return &SingletonPartitionInformation{} },
	},
}

// UnmarshalPartitionInformation decodes a PartitionInformation payload into its concrete variant.
func UnmarshalPartitionInformation(data []byte) (PartitionInformation, error) {
	return partitionInformationFamily.decode(data)
}

// PartitionSchemeDescription describes how a service is partitioned when it is created.
type PartitionSchemeDescription interface {
	PartitionScheme() PartitionScheme
	Validate() error
}

// SingletonPartitionSchemeDescription describes a service with a single partition.
type SingletonPartitionSchemeDescription struct {
}

func NewSingletonPartitionSchemeDescription() *SingletonPartitionSchemeDescription {
	return &SingletonPartitionSchemeDescription{}
}

func (d SingletonPartitionSchemeDescription) PartitionScheme() PartitionScheme {
	return PartitionSchemeSingleton
}

func (d SingletonPartitionSchemeDescription) Validate() error {
	return nil
}

func (d SingletonPartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias SingletonPartitionSchemeDescription
	return marshalKinded("PartitionScheme", string(d.PartitionScheme()), alias(d))
}

// UniformInt64RangePartitionSchemeDescription describes a partitioning scheme where an integer range is
// allocated evenly across a number of partitions.
type UniformInt64RangePartitionSchemeDescription struct {
	// The number of partitions.
	Count int32 `json:"Count"`

	// String indicating the lower bound of the partition key range that should be split between the
	// partitions.
	LowKey string `json:"LowKey"`

	// String indicating the upper bound of the partition key range that should be split between the
	// partitions.
	HighKey string `json:"HighKey"`
}

func NewUniformInt64RangePartitionSchemeDescription(count int32, lowKey string, highKey string) (*UniformInt64RangePartitionSchemeDescription, error) {
	description := UniformInt64RangePartitionSchemeDescription{
		Count:   count,
		LowKey:  lowKey,
		HighKey: highKey,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d UniformInt64RangePartitionSchemeDescription) PartitionScheme() PartitionScheme {
	return PartitionSchemeUniformInt64Range
}

func (d UniformInt64RangePartitionSchemeDescription) Validate() error {
	return validation.First(
		validation.RequiredString("lowKey", d.LowKey),
		validation.RequiredString("highKey", d.HighKey))
}

func (d UniformInt64RangePartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias UniformInt64RangePartitionSchemeDescription
	return marshalKinded("PartitionScheme", string(d.PartitionScheme()), alias(d))
}

// NamedPartitionSchemeDescription describes the named partition scheme of the service.
type NamedPartitionSchemeDescription struct {
	// The number of partitions.
	Count int32 `json:"Count"`

	// Array of size specified by the Count parameter, for the names of the partitions.
	Names []string `json:"Names"`
}

func NewNamedPartitionSchemeDescription(count int32, names []string) (*NamedPartitionSchemeDescription, error) {
	description := NamedPartitionSchemeDescription{
		Count: count,
		Names: names,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d NamedPartitionSchemeDescription) PartitionScheme() PartitionScheme {
	return PartitionSchemeNamed
}

func (d NamedPartitionSchemeDescription) Validate() error {
	return validation.RequiredSlice("names", d.Names)
}

func (d NamedPartitionSchemeDescription) MarshalJSON() ([]byte, error) {
	type alias NamedPartitionSchemeDescription
	return marshalKinded("PartitionScheme", string(d.PartitionScheme()), alias(d))
}

var partitionSchemeDescriptionFamily = family[PartitionSchemeDescription]{
	name:          "PartitionSchemeDescription",
	discriminator: "PartitionScheme",
	variants: map[string]func() PartitionSchemeDescription{
		string(PartitionSchemeSingleton):         func() PartitionSchemeDescription { return &SingletonPartitionSchemeDescription{} },
		string(PartitionSchemeUniformInt64Range): func() PartitionSchemeDescription { return &UniformInt64RangePartitionSchemeDescription{} },
		string(PartitionSchemeNamed):             func() PartitionSchemeDescription { return &NamedPartitionSchemeDescription{} },
	},
}

// UnmarshalPartitionSchemeDescription decodes a PartitionSchemeDescription payload into its concrete variant.
func UnmarshalPartitionSchemeDescription(data []byte) (PartitionSchemeDescription, error) {
	return partitionSchemeDescriptionFamily.decode(data)
}
