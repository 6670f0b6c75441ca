package servicefabric

import (
	"encoding/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
	"testing"
)

// assertDiscriminator checks the serialized discriminator of value and that decoding it returns an
// equal value.
func assertDiscriminator[T any](t *testing.T, discriminator string, kind string, value T, decode func([]byte) (T, error)) {
	body, err := json.Marshal(value)
	require.NoError(t, err)

	fields := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, kind, fields[discriminator], "discriminator of %T", value)

	decoded, err := decode(body)
	require.NoError(t, err)
	assert.Equal(t, value, decoded)
}

func TestBackupEntityKindsAreFixed(t *testing.T) {
	id := uuid.New()

	kinds := map[BackupEntityKind]BackupEntity{
		BackupEntityKindApplication: NewApplicationBackupEntity(ptr.To("fabric:/shop")),
		BackupEntityKindService:     NewServiceBackupEntity(ptr.To("fabric:/shop/cart")),
		BackupEntityKindPartition:   NewPartitionBackupEntity(ptr.To("fabric:/shop/cart"), &id),
	}

	require.Len(t, kinds, len(backupEntityFamily.variants))

	for kind, entity := range kinds {
		assert.Equal(t, kind, entity.EntityKind())
		assertDiscriminator(t, "EntityKind", string(kind), entity, UnmarshalBackupEntity)
	}
}

func TestBackupConfigurationInfoKindsAreFixed(t *testing.T) {
	id := uuid.New()
	base := BackupConfigurationInfoBase{PolicyName: ptr.To("nightly"), PolicyInheritedFrom: ptr.To(BackupPolicyScopeApplication)}

	kinds := map[BackupEntityKind]BackupConfigurationInfo{
		BackupEntityKindApplication: &ApplicationBackupConfigurationInfo{BackupConfigurationInfoBase: base, ApplicationName: ptr.To("fabric:/shop")},
		BackupEntityKindService:     &ServiceBackupConfigurationInfo{BackupConfigurationInfoBase: base, ServiceName: ptr.To("fabric:/shop/cart")},
		BackupEntityKindPartition:   &PartitionBackupConfigurationInfo{BackupConfigurationInfoBase: base, ServiceName: ptr.To("fabric:/shop/cart"), PartitionId: &id},
	}

	require.Len(t, kinds, len(backupConfigurationInfoFamily.variants))

	for kind, info := range kinds {
		assert.Equal(t, kind, info.ConfigurationKind())
		assertDiscriminator(t, "Kind", string(kind), info, UnmarshalBackupConfigurationInfo)
	}
}

func TestServicePlacementPolicyKindsAreFixed(t *testing.T) {
	kinds := map[ServicePlacementPolicyType]ServicePlacementPolicyDescription{
		ServicePlacementPolicyTypeInvalidDomain:                         NewServicePlacementInvalidDomainPolicyDescription(ptr.To("fd:/dc9")),
		ServicePlacementPolicyTypeNonPartiallyPlaceService:              NewServicePlacementNonPartiallyPlaceServicePolicyDescription(),
		ServicePlacementPolicyTypePreferPrimaryDomain:                   NewServicePlacementPreferPrimaryDomainPolicyDescription(ptr.To("fd:/dc1")),
		ServicePlacementPolicyTypeRequireDomain:                         NewServicePlacementRequiredDomainPolicyDescription(ptr.To("fd:/dc2")),
		ServicePlacementPolicyTypeRequireDomainDistribution:             NewServicePlacementRequireDomainDistributionPolicyDescription(ptr.To("fd:/dc3")),
		ServicePlacementPolicyTypeAllowMultipleStatelessInstancesOnNode: NewServicePlacementAllowMultipleStatelessInstancesOnNodePolicyDescription(ptr.To("fd:/dc4")),
	}

	require.Len(t, kinds, len(servicePlacementPolicyFamily.variants))

	for kind, policy := range kinds {
		assert.Equal(t, kind, policy.PolicyType())
		assertDiscriminator(t, "Type", string(kind), policy, UnmarshalServicePlacementPolicyDescription)
	}
}

func TestBackupStorageKindsAreFixed(t *testing.T) {
	azureBlob, err := NewAzureBlobBackupStorageDescription("DefaultEndpointsProtocol=https", "backups", ptr.To("blob"))
	require.NoError(t, err)
	fileShare, err := NewFileShareBackupStorageDescription(`\\backups\share`, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	dsms, err := NewDsmsAzureBlobBackupStorageDescription("https://dsms/credentials", "backups", nil)
	require.NoError(t, err)
	managedIdentity, err := NewManagedIdentityAzureBlobBackupStorageDescription(ManagedIdentityTypeCluster, "https://shop.blob.core.windows.net", "backups", ptr.To("mi"))
	require.NoError(t, err)

	kinds := map[BackupStorageKind]BackupStorageDescription{
		BackupStorageKindAzureBlobStore:                azureBlob,
		BackupStorageKindFileShare:                     fileShare,
		BackupStorageKindDsmsAzureBlobStore:            dsms,
		BackupStorageKindManagedIdentityAzureBlobStore: managedIdentity,
	}

	require.Len(t, kinds, len(backupStorageFamily.variants))

	for kind, storage := range kinds {
		assert.Equal(t, kind, storage.StorageKind())
		assertDiscriminator(t, "StorageKind", string(kind), storage, UnmarshalBackupStorageDescription)
	}
}
