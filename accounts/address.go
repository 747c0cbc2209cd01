package accounts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/NethermindEth/juno/core/felt"

	"github.com/starkctl/starkctl/common"
)

var (
	ErrAlreadyDeployed = errors.New("account is already deployed")
	ErrMultisigNotSupported = errors.New(
		"deploying Braavos accounts with multisig on is not supported",
	)
	ErrMultipleSeedSigners = errors.New(
		"deploying Braavos accounts with more than one seed signer is not supported",
	)
	ErrMissingDeploymentContext = errors.New(
		"account file lacks the Braavos deployment context needed for address derivation",
	)
	ErrUnsupportedSignerKind = errors.New(
		"only Stark-curve Braavos signers are supported",
	)
	ErrUnknownSignerType = errors.New("unknown Braavos signer type discriminant")
)

var (
	initializeSelector  = common.Selector("initialize")
	initializerSelector = common.Selector("initializer")
)

// Deploy-account transactions carry no deployer address.
var zeroDeployer = new(felt.Felt)

// Swappable for call-argument assertions in tests.
var computeAddress = common.ContractAddress

// DeployAccountAddress derives the deterministic address the account will
// occupy once deployed. Purely functional over the config: no I/O, safe to
// call concurrently.
func (c *AccountConfig) DeployAccountAddress() (*felt.Felt, error) {
	undeployed, ok := c.Deployment.(*Undeployed)
	if !ok {
		return nil, ErrAlreadyDeployed
	}
	calldata, err := deployCalldata(c.Variant, undeployed)
	if err != nil {
		return nil, err
	}
	return computeAddress(undeployed.Salt, undeployed.ClassHash, calldata, zeroDeployer), nil
}

// deployCalldata builds the constructor calldata the account class expects,
// which is what makes the derived address variant-specific.
func deployCalldata(variant AccountVariant, undeployed *Undeployed) ([]*felt.Felt, error) {
	switch v := variant.(type) {
	case *OzVariant:
		return []*felt.Felt{v.PublicKey}, nil

	case *ArgentVariant:
		if v.Implementation != nil {
			// Legacy proxy constructor: implementation, initializer
			// selector, then the initializer calldata with its length.
			return []*felt.Felt{
				v.Implementation,
				initializeSelector,
				new(felt.Felt).SetUint64(2),
				v.Owner,
				v.Guardian,
			}, nil
		}
		return []*felt.Felt{v.Owner, v.Guardian}, nil

	case *BraavosVariant:
		if v.Multisig.On() {
			return nil, ErrMultisigNotSupported
		}
		if len(v.Signers) != 1 {
			return nil, ErrMultipleSeedSigners
		}
		if undeployed.Context == nil || undeployed.Context.Type != ContextBraavos ||
			undeployed.Context.MockImplementation == nil {
			return nil, ErrMissingDeploymentContext
		}
		seed := v.Signers[0]
		if seed.Type != BraavosSignerStark {
			return nil, ErrUnsupportedSignerKind
		}
		return []*felt.Felt{
			undeployed.Context.MockImplementation,
			initializerSelector,
			new(felt.Felt).SetUint64(1),
			seed.PublicKey,
		}, nil
	}
	return nil, fmt.Errorf("unknown account variant %T", variant)
}

// DecodeBraavosSigner reconstructs a typed signer record from the raw felt
// tuple Braavos contracts store per signer slot. Index 4 holds the signer
// type discriminant, index 0 the public key.
func DecodeBraavosSigner(raw []*felt.Felt) (*BraavosSigner, error) {
	if len(raw) < 5 {
		return nil, fmt.Errorf("braavos signer storage tuple needs at least 5 elements, got %d", len(raw))
	}
	if !raw[4].Equal(new(felt.Felt).SetUint64(1)) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerType, raw[4])
	}
	return &BraavosSigner{Type: BraavosSignerStark, PublicKey: raw[0]}, nil
}

// DecodeBraavosSigners reconstructs the full signer list from a raw
// get_signers reply: a count followed by 8 felts per signer, the slot index
// and then the 7-felt storage tuple.
func DecodeBraavosSigners(raw []*felt.Felt) ([]BraavosSigner, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty braavos signer list")
	}
	count := raw[0].BigInt(new(big.Int))
	if !count.IsUint64() {
		return nil, fmt.Errorf("braavos signer count overflow: %s", raw[0])
	}
	n := count.Uint64()
	if uint64(len(raw)) < 1+n*8 {
		return nil, fmt.Errorf("braavos signer list of %d felts is too short for %d signers", len(raw), n)
	}
	signers := make([]BraavosSigner, 0, n)
	for i := uint64(0); i < n; i++ {
		base := i*8 + 1
		if !raw[base].Equal(new(felt.Felt).SetUint64(i)) {
			return nil, fmt.Errorf("braavos signer list slot %d carries index %s", i, raw[base])
		}
		signer, err := DecodeBraavosSigner(raw[base+1 : base+8])
		if err != nil {
			return nil, err
		}
		signers = append(signers, *signer)
	}
	return signers, nil
}

// DecodeBraavosMultisig interprets a raw get_multisig reply: zero means
// multisig is off, any other value is the required signer count.
func DecodeBraavosMultisig(raw *felt.Felt) (MultisigConfig, error) {
	if raw.IsZero() {
		return MultisigConfig{Status: "off"}, nil
	}
	num := raw.BigInt(new(big.Int))
	if !num.IsUint64() {
		return MultisigConfig{}, fmt.Errorf("braavos multisig signer count overflow: %s", raw)
	}
	return MultisigConfig{Status: "on", NumSigners: num.Uint64()}, nil
}
