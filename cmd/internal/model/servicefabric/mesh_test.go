package servicefabric

import (
	"encoding/json"
	"errors"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
	"testing"
)

func TestSecretResourceDescriptionJSON(t *testing.T) {
	description, err := NewSecretResourceDescription(
		NewKeyVaultVersionedReferenceSecretResourceProperties(ptr.To("tls cert"), ptr.To("application/x-pkcs12")),
		"shop-cert")
	require.NoError(t, err)

	body, err := json.Marshal(description)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "shop-cert",
		"properties": {"kind": "keyVaultVersionedReference", "description": "tls cert", "contentType": "application/x-pkcs12"}
	}`, string(body))

	decoded := SecretResourceDescription{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, *description, decoded)
	assert.Equal(t, SecretKindKeyVaultVersionedReference, decoded.Properties.SecretKind())
}

func TestSecretResourceDescriptionRequired(t *testing.T) {
	_, err := NewSecretResourceDescription(nil, "name")
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))

	_, err = NewSecretResourceDescription(NewInlinedValueSecretResourceProperties(nil, nil), "")
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))
}

func TestLocalNetworkSetStatus(t *testing.T) {
	properties := NewLocalNetworkResourceProperties(ptr.To("backend"), ptr.To("10.0.0.0/22"))
	assert.Nil(t, properties.GetStatus())

	properties.SetStatus(ResourceStatusReady, nil)
	assert.Equal(t, ResourceStatusReady, *properties.GetStatus())

	description, err := NewNetworkResourceDescription("backend", properties)
	require.NoError(t, err)

	body, err := json.Marshal(description)
	require.NoError(t, err)

	decoded := NetworkResourceDescription{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, NetworkKindLocal, decoded.Properties.NetworkKind())
	assert.Equal(t, ResourceStatusReady, *decoded.Properties.GetStatus())
}

func TestExecutionPolicyDecode(t *testing.T) {
	policy, err := UnmarshalExecutionPolicy([]byte(`{"type":"RunToCompletion","restart":"Never"}`))
	require.NoError(t, err)
	assert.Equal(t, RestartPolicyNever, policy.(*RunToCompletionExecutionPolicy).Restart)

	_, err = NewRunToCompletionExecutionPolicy("")
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))
}

func TestProvisionApplicationTypeDescriptions(t *testing.T) {
	_, err := NewExternalStoreProvisionApplicationTypeDescription(false, "https://packages/shop.sfpkg", "ShopType", "")
	assert.True(t, errors.Is(err, validation.ErrArgumentNull))

	description, err := NewImageStorePathProvisionDescription(true, "ShopPkg", ptr.To(ApplicationPackageCleanupPolicyAutomatic))
	require.NoError(t, err)

	body, err := json.Marshal(description)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Kind":"ImageStorePath","Async":true,"ApplicationTypeBuildPath":"ShopPkg","ApplicationPackageCleanupPolicy":"Automatic"}`, string(body))

	decoded, err := UnmarshalProvisionApplicationTypeDescription(body)
	require.NoError(t, err)
	assert.Equal(t, description, decoded)
	assert.True(t, decoded.IsAsync())
}
