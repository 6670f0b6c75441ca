package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// RetentionPolicyDescription describes the retention policy configured.
type RetentionPolicyDescription interface {
	RetentionPolicyType() RetentionPolicyType
	Validate() error
}

// BasicRetentionPolicyDescription describes basic retention policy.
type BasicRetentionPolicyDescription struct {
	// It is the minimum duration for which a backup created, will remain stored in the storage and
	// might get deleted after that span of time. It should be specified in ISO8601 format.
	RetentionDuration string `json:"RetentionDuration"`

	// It is the minimum number of backups to be retained at any point of time. If specified with a non
	// zero value, backups will not be deleted even if the backups have gone past retention duration and
	// have number of backups less than or equal to it.
	MinimumNumberOfBackups *int32 `json:"MinimumNumberOfBackups,omitempty"`
}

func NewBasicRetentionPolicyDescription(retentionDuration string, minimumNumberOfBackups *int32) (*BasicRetentionPolicyDescription, error) {
	description := BasicRetentionPolicyDescription{
		RetentionDuration:      retentionDuration,
		MinimumNumberOfBackups: minimumNumberOfBackups,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d BasicRetentionPolicyDescription) RetentionPolicyType() RetentionPolicyType {
	return RetentionPolicyTypeBasic
}

func (d BasicRetentionPolicyDescription) Validate() error {
	return validation.First(
		validation.RequiredString("retentionDuration", d.RetentionDuration),
		validation.AtLeastIfSet("minimumNumberOfBackups", d.MinimumNumberOfBackups, 0))
}

func (d BasicRetentionPolicyDescription) MarshalJSON() ([]byte, error) {
	type alias BasicRetentionPolicyDescription
	return marshalKinded("RetentionPolicyType", string(d.RetentionPolicyType()), alias(d))
}

var retentionPolicyFamily = family[RetentionPolicyDescription]{
	name:          "RetentionPolicyDescription",
	discriminator: "RetentionPolicyType",
	variants: map[string]func() RetentionPolicyDescription{
		string(RetentionPolicyTypeBasic): func() RetentionPolicyDescription { return &BasicRetentionPolicyDescription{} },
	},
}

// UnmarshalRetentionPolicyDescription decodes a retention policy payload into its concrete variant.
func UnmarshalRetentionPolicyDescription(data []byte) (RetentionPolicyDescription, error) {
	return retentionPolicyFamily.decode(data)
}
