// Package accounts models Starknet account contracts across wallet
// implementation families (OpenZeppelin, Argent, Braavos): their persisted
// configuration files, their counterfactual deployment addresses, and the
// execution encoding their deployed contracts expect.
package accounts

import (
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
)

// ConfigVersion is the only account file format version this build reads and
// writes.
const ConfigVersion = 1

// Variant type tags as persisted in the account file.
const (
	VariantOpenZeppelin = "openzeppelin"
	VariantArgent       = "argent"
	VariantBraavos      = "braavos"
)

// AccountConfig is one account file: exactly one variant plus its deployment
// state. Deployment moves from Undeployed to Deployed exactly once and never
// back.
type AccountConfig struct {
	Version    uint64
	Variant    AccountVariant
	Deployment DeploymentStatus
}

// AccountVariant is one wallet implementation family. The set is closed:
// every consumer type-switches over the three concrete variants, so adding a
// family means touching every switch, deliberately.
type AccountVariant interface {
	Type() string
}

// OzVariant is a plain OpenZeppelin account holding a single Stark key.
type OzVariant struct {
	Version   uint64
	PublicKey *felt.Felt

	// Older account files predate Cairo 1 contracts and always used the
	// legacy transaction encoding, so a file without the field means true.
	Legacy bool
}

func (v *OzVariant) Type() string { return VariantOpenZeppelin }

// ArgentVariant is an Argent X account. Implementation is set only for the
// old proxy-based contracts; current contracts deploy the class directly.
type ArgentVariant struct {
	Version        uint64
	Implementation *felt.Felt
	Owner          *felt.Felt
	Guardian       *felt.Felt
}

func (v *ArgentVariant) Type() string { return VariantArgent }

// BraavosVariant is a Braavos account. Braavos deploys through a proxy and
// supports hardware-bound extra signers and on-chain multisig, most of which
// this tool only models far enough to refuse.
type BraavosVariant struct {
	Version        uint64
	Implementation *felt.Felt
	Multisig       MultisigConfig
	Signers        []BraavosSigner
}

func (v *BraavosVariant) Type() string { return VariantBraavos }

// MultisigConfig mirrors the on-chain multisig state of a Braavos account.
type MultisigConfig struct {
	Status     string `json:"status"`
	NumSigners uint64 `json:"num_signers,omitempty"`
}

func (m MultisigConfig) On() bool { return m.Status == "on" }

// Braavos signer type tags.
const (
	BraavosSignerStark = "stark"
)

// BraavosSigner is one signer slot of a Braavos account. Only the Stark-curve
// kind is implemented; other kinds round-trip through the file untouched but
// cannot be deployed or signed with.
type BraavosSigner struct {
	Type      string     `json:"type"`
	PublicKey *felt.Felt `json:"public_key"`
}

// Deployment status tags as persisted in the account file.
const (
	StatusUndeployed = "undeployed"
	StatusDeployed   = "deployed"
)

// DeploymentStatus is either Undeployed or Deployed.
type DeploymentStatus interface {
	Status() string
}

// Undeployed carries everything needed to derive the counterfactual address.
// Context holds variant-specific bootstrap data and must not be consulted
// once the account is deployed.
type Undeployed struct {
	ClassHash *felt.Felt
	Salt      *felt.Felt
	Context   *DeploymentContext
}

func (d *Undeployed) Status() string { return StatusUndeployed }

// Deployed pins the on-chain address and the class it was deployed with.
type Deployed struct {
	ClassHash *felt.Felt
	Address   *felt.Felt
}

func (d *Deployed) Status() string { return StatusDeployed }

// Deployment context type tags.
const (
	ContextBraavos = "braavos"
)

// DeploymentContext holds pre-deployment auxiliary data. Braavos accounts
// bootstrap through a mock implementation class before the real one
// activates, and the mock class hash feeds the address derivation.
type DeploymentContext struct {
	Type               string     `json:"type"`
	MockImplementation *felt.Felt `json:"mock_implementation"`
}

// ExecutionEncoding says how invoke-transaction calldata must be framed for
// this account's contract.
type ExecutionEncoding int

const (
	EncodingLegacy ExecutionEncoding = iota
	EncodingCurrent
)

func (e ExecutionEncoding) String() string {
	if e == EncodingLegacy {
		return "legacy"
	}
	return "current"
}

// ExecutionEncoding classifies the calldata framing the account's deployed
// contract expects. OZ accounts carry an explicit flag, Argent is legacy
// exactly when proxy-based, Braavos has never left the legacy framing.
func (c *AccountConfig) ExecutionEncoding() ExecutionEncoding {
	switch v := c.Variant.(type) {
	case *OzVariant:
		if v.Legacy {
			return EncodingLegacy
		}
		return EncodingCurrent
	case *ArgentVariant:
		if v.Implementation != nil {
			return EncodingLegacy
		}
		return EncodingCurrent
	case *BraavosVariant:
		return EncodingLegacy
	}
	return EncodingCurrent
}

// JSON layer. The file format uses tagged objects:
//
//	{"version":1,
//	 "variant":{"type":"openzeppelin",...},
//	 "deployment":{"status":"undeployed",...}}

type configJSON struct {
	Version    uint64          `json:"version"`
	Variant    json.RawMessage `json:"variant"`
	Deployment json.RawMessage `json:"deployment"`
}

type ozVariantJSON struct {
	Type      string     `json:"type"`
	Version   uint64     `json:"version"`
	PublicKey *felt.Felt `json:"public_key"`
	Legacy    *bool      `json:"legacy,omitempty"`
}

type argentVariantJSON struct {
	Type           string     `json:"type"`
	Version        uint64     `json:"version"`
	Implementation *felt.Felt `json:"implementation,omitempty"`
	Owner          *felt.Felt `json:"owner"`
	Guardian       *felt.Felt `json:"guardian"`
}

type braavosVariantJSON struct {
	Type           string          `json:"type"`
	Version        uint64          `json:"version"`
	Implementation *felt.Felt      `json:"implementation"`
	Multisig       MultisigConfig  `json:"multisig"`
	Signers        []BraavosSigner `json:"signers"`
}

type deploymentJSON struct {
	Status    string             `json:"status"`
	ClassHash *felt.Felt         `json:"class_hash"`
	Salt      *felt.Felt         `json:"salt,omitempty"`
	Context   *DeploymentContext `json:"context,omitempty"`
	Address   *felt.Felt         `json:"address,omitempty"`
}

func (c *AccountConfig) MarshalJSON() ([]byte, error) {
	var variant any
	switch v := c.Variant.(type) {
	case *OzVariant:
		legacy := v.Legacy
		variant = ozVariantJSON{
			Type:      VariantOpenZeppelin,
			Version:   v.Version,
			PublicKey: v.PublicKey,
			Legacy:    &legacy,
		}
	case *ArgentVariant:
		variant = argentVariantJSON{
			Type:           VariantArgent,
			Version:        v.Version,
			Implementation: v.Implementation,
			Owner:          v.Owner,
			Guardian:       v.Guardian,
		}
	case *BraavosVariant:
		variant = braavosVariantJSON{
			Type:           VariantBraavos,
			Version:        v.Version,
			Implementation: v.Implementation,
			Multisig:       v.Multisig,
			Signers:        v.Signers,
		}
	default:
		return nil, fmt.Errorf("unknown account variant %T", c.Variant)
	}

	var deployment deploymentJSON
	switch d := c.Deployment.(type) {
	case *Undeployed:
		deployment = deploymentJSON{
			Status:    StatusUndeployed,
			ClassHash: d.ClassHash,
			Salt:      d.Salt,
			Context:   d.Context,
		}
	case *Deployed:
		deployment = deploymentJSON{
			Status:    StatusDeployed,
			ClassHash: d.ClassHash,
			Address:   d.Address,
		}
	default:
		return nil, fmt.Errorf("unknown deployment status %T", c.Deployment)
	}

	variantRaw, err := json.Marshal(variant)
	if err != nil {
		return nil, err
	}
	deploymentRaw, err := json.Marshal(deployment)
	if err != nil {
		return nil, err
	}
	return json.Marshal(configJSON{
		Version:    c.Version,
		Variant:    variantRaw,
		Deployment: deploymentRaw,
	})
}

func (c *AccountConfig) UnmarshalJSON(data []byte) error {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw.Variant, &tag); err != nil {
		return err
	}
	switch tag.Type {
	case VariantOpenZeppelin:
		var v ozVariantJSON
		if err := json.Unmarshal(raw.Variant, &v); err != nil {
			return err
		}
		legacy := true
		if v.Legacy != nil {
			legacy = *v.Legacy
		}
		c.Variant = &OzVariant{Version: v.Version, PublicKey: v.PublicKey, Legacy: legacy}
	case VariantArgent:
		var v argentVariantJSON
		if err := json.Unmarshal(raw.Variant, &v); err != nil {
			return err
		}
		c.Variant = &ArgentVariant{
			Version:        v.Version,
			Implementation: v.Implementation,
			Owner:          v.Owner,
			Guardian:       v.Guardian,
		}
	case VariantBraavos:
		var v braavosVariantJSON
		if err := json.Unmarshal(raw.Variant, &v); err != nil {
			return err
		}
		c.Variant = &BraavosVariant{
			Version:        v.Version,
			Implementation: v.Implementation,
			Multisig:       v.Multisig,
			Signers:        v.Signers,
		}
	default:
		return fmt.Errorf("unknown account variant tag '%s'", tag.Type)
	}

	var deployment deploymentJSON
	if err := json.Unmarshal(raw.Deployment, &deployment); err != nil {
		return err
	}
	switch deployment.Status {
	case StatusUndeployed:
		c.Deployment = &Undeployed{
			ClassHash: deployment.ClassHash,
			Salt:      deployment.Salt,
			Context:   deployment.Context,
		}
	case StatusDeployed:
		c.Deployment = &Deployed{
			ClassHash: deployment.ClassHash,
			Address:   deployment.Address,
		}
	default:
		return fmt.Errorf("unknown deployment status tag '%s'", deployment.Status)
	}

	c.Version = raw.Version
	return nil
}
