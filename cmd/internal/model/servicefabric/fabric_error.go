package servicefabric

// FabricErrorCodes are the FABRIC_E_* strings the cluster returns in an error envelope. Only the codes
// the client reacts to are listed.
const (
	FabricErrorCodeTimeout                     = "FABRIC_E_TIMEOUT"
	FabricErrorCodeNotReady                    = "FABRIC_E_NOT_READY"
	FabricErrorCodeServiceTooBusy              = "FABRIC_E_SERVICE_TOO_BUSY"
	FabricErrorCodeNotPrimary                  = "FABRIC_E_NOT_PRIMARY"
	FabricErrorCodeReconfigurationPending      = "FABRIC_E_RECONFIGURATION_PENDING"
	FabricErrorCodeApplicationNotFound         = "FABRIC_E_APPLICATION_NOT_FOUND"
	FabricErrorCodeServiceDoesNotExist         = "FABRIC_E_SERVICE_DOES_NOT_EXIST"
	FabricErrorCodePartitionNotFound           = "FABRIC_E_PARTITION_NOT_FOUND"
	FabricErrorCodeNodeNotFound                = "FABRIC_E_NODE_NOT_FOUND"
	FabricErrorCodeBackupPolicyNotExisting     = "FABRIC_E_BACKUP_POLICY_NOT_EXISTING"
	FabricErrorCodeBackupPolicyAlreadyExisting = "FABRIC_E_BACKUP_POLICY_ALREADY_EXISTING"
	FabricErrorCodeInvalidAddress              = "FABRIC_E_INVALID_ADDRESS"
	FabricErrorCodeInvalidArgument             = "E_INVALIDARG"
)

// FabricErrorBody is the payload of the error envelope returned for non 2xx responses.
type FabricErrorBody struct {
	Code    string `json:"Code"`
	Message string `json:"Message,omitempty"`
}

// FabricErrorEnvelope is the error response body, {"Error": {"Code": ..., "Message": ...}}.
type FabricErrorEnvelope struct {
	Error FabricErrorBody `json:"Error"`
}
