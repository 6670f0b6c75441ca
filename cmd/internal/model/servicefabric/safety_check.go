package servicefabric

import (
	"encoding/json"
	"github.com/google/uuid"
)

// SafetyCheck represents a safety check performed by Service Fabric before continuing with the
// operations. These checks ensure the availability of the service and the reliability of the state.
type SafetyCheck interface {
	SafetyCheckKind() SafetyCheckKind
}

// PartitionSafetyCheck is implemented by the safety checks that are related to a specific partition.
type PartitionSafetyCheck interface {
	SafetyCheck
	GetPartitionId() *uuid.UUID
}

// SeedNodeSafetyCheck represents a safety check for the seed nodes being performed by service fabric
// before continuing with node level operations.
type SeedNodeSafetyCheck struct {
}

func NewSeedNodeSafetyCheck() *SeedNodeSafetyCheck {
	return &SeedNodeSafetyCheck{}
}

func (c SeedNodeSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindEnsureSeedNodeQuorum
}

func (c SeedNodeSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias SeedNodeSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// PartitionSafetyCheckBase holds the partition id shared by the partition safety checks.
type PartitionSafetyCheckBase struct {
	// Id of the partition which is undergoing the safety check.
	PartitionId *uuid.UUID `json:"PartitionId,omitempty"`
}

func (c PartitionSafetyCheckBase) GetPartitionId() *uuid.UUID {
	return c.PartitionId
}

// EnsurePartitionQuorumSafetyCheck is a safety check that ensures that a quorum of replicas are not
// lost for a partition.
type EnsurePartitionQuorumSafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewEnsurePartitionQuorumSafetyCheck(partitionId *uuid.UUID) *EnsurePartitionQuorumSafetyCheck {
	return &EnsurePartitionQuorumSafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c EnsurePartitionQuorumSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindEnsurePartitionQuorum
}

func (c EnsurePartitionQuorumSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias EnsurePartitionQuorumSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// WaitForInbuildReplicaSafetyCheck is a safety check that waits for the replica build operation to
// finish. This indicates that there is a replica that is going through the copy or is providing data
// for building another replica. Bring the node down will abort this copy operation which are typically
// expensive involving data movements.
type WaitForInbuildReplicaSafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewWaitForInbuildReplicaSafetyCheck(partitionId *uuid.UUID) *WaitForInbuildReplicaSafetyCheck {
	return &WaitForInbuildReplicaSafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c WaitForInbuildReplicaSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindWaitForInbuildReplica
}

func (c WaitForInbuildReplicaSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias WaitForInbuildReplicaSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// WaitForPrimaryPlacementSafetyCheck is a safety check that waits for the primary replica that was
// moved out of the node due to upgrade to be placed back again on that node.
type WaitForPrimaryPlacementSafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewWaitForPrimaryPlacementSafetyCheck(partitionId *uuid.UUID) *WaitForPrimaryPlacementSafetyCheck {
	return &WaitForPrimaryPlacementSafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c WaitForPrimaryPlacementSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindWaitForPrimaryPlacement
}

func (c WaitForPrimaryPlacementSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias WaitForPrimaryPlacementSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// WaitForPrimarySwapSafetyCheck is a safety check that waits for the primary replica to be moved out
// of the node before starting an upgrade to ensure the availability of the primary replica for the
// partition.
type WaitForPrimarySwapSafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewWaitForPrimarySwapSafetyCheck(partitionId *uuid.UUID) *WaitForPrimarySwapSafetyCheck {
	return &WaitForPrimarySwapSafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c WaitForPrimarySwapSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindWaitForPrimarySwap
}

func (c WaitForPrimarySwapSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias WaitForPrimarySwapSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// WaitForReconfigurationSafetyCheck is a safety check that waits for the current reconfiguration of
// the partition to be completed before starting an upgrade.
type WaitForReconfigurationSafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewWaitForReconfigurationSafetyCheck(partitionId *uuid.UUID) *WaitForReconfigurationSafetyCheck {
	return &WaitForReconfigurationSafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c WaitForReconfigurationSafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindWaitForReconfiguration
}

func (c WaitForReconfigurationSafetyCheck) MarshalJSON() ([]byte, error) {
	type alias WaitForReconfigurationSafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

// EnsureAvailabilitySafetyCheck is a safety check that waits to ensure the availability of the
// partition. It waits until there are replicas available such that bringing down this replica will not
// cause availability loss for the partition.
type EnsureAvailabilitySafetyCheck struct {
	PartitionSafetyCheckBase
}

func NewEnsureAvailabilitySafetyCheck(partitionId *uuid.UUID) *EnsureAvailabilitySafetyCheck {
	return &EnsureAvailabilitySafetyCheck{PartitionSafetyCheckBase{PartitionId: partitionId}}
}

func (c EnsureAvailabilitySafetyCheck) SafetyCheckKind() SafetyCheckKind {
	return SafetyCheckKindEnsureAvailability
}

func (c EnsureAvailabilitySafetyCheck) MarshalJSON() ([]byte, error) {
	type alias EnsureAvailabilitySafetyCheck
	return marshalKinded("Kind", string(c.SafetyCheckKind()), alias(c))
}

var safetyCheckFamily = family[SafetyCheck]{
	name:          "SafetyCheck",
	discriminator: "Kind",
	variants: map[string]func() SafetyCheck{
		string(SafetyCheckKindEnsureSeedNodeQuorum):    func() SafetyCheck { return &SeedNodeSafetyCheck{} },
		string(SafetyCheckKindEnsurePartitionQuorum):   func() SafetyCheck { return &EnsurePartitionQuorumSafetyCheck{} },
		string(SafetyCheckKindWaitForInbuildReplica):   func() SafetyCheck { return &WaitForInbuildReplicaSafetyCheck{} },
		string(SafetyCheckKindWaitForPrimaryPlacement): func() SafetyCheck { return &WaitForPrimaryPlacementSafetyCheck{} },
		string(SafetyCheckKindWaitForPrimarySwap):      func() SafetyCheck { return &WaitForPrimarySwapSafetyCheck{} },
		string(SafetyCheckKindWaitForReconfiguration):  func() SafetyCheck { return &WaitForReconfigurationSafetyCheck{} },
		string(SafetyCheckKindEnsureAvailability):      func() SafetyCheck { return &EnsureAvailabilitySafetyCheck{} },
	},
}

// UnmarshalSafetyCheck decodes a safety check payload into its concrete variant.
func UnmarshalSafetyCheck(data []byte) (SafetyCheck, error) {
	return safetyCheckFamily.decode(data)
}

// SafetyCheckWrapper is a wrapper for the safety check object. Safety checks are performed by service
// fabric before continuing with the operations.
type SafetyCheckWrapper struct {
	SafetyCheck SafetyCheck `json:"SafetyCheck,omitempty"`
}

func (w *SafetyCheckWrapper) UnmarshalJSON(data []byte) error {
	aux := struct {
		SafetyCheck json.RawMessage `json:"SafetyCheck"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	safetyCheck, err := UnmarshalSafetyCheck(aux.SafetyCheck)
	if err != nil {
		return err
	}

	w.SafetyCheck = safetyCheck

	return nil
}
