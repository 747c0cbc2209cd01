// Package ledgerstark talks to the Starknet app on Ledger hardware wallets
// over USB HID.
package ledgerstark

import (
	"context"
	"fmt"
	"sync"

	"github.com/NethermindEth/juno/core/felt"
	gethaccounts "github.com/ethereum/go-ethereum/accounts"
	kusb "github.com/karalabe/usb"
)

const (
	LEDGER_VENDOR_ID   uint16 = 0x2c97
	LEDGER_USAGE_ID    uint16 = 0xffa0
	LEDGER_ENDPOINT_ID int    = 0
)

var LEDGER_PRODUCT_IDS []uint16 = []uint16{
	// Original product IDs
	0x0000, /* Ledger Blue */
	0x0001, /* Ledger Nano S */
	0x0004, /* Ledger Nano X */
	0x0005, /* Ledger Nano S Plus */
	0x0006, /* Ledger Stax */
	0x0007, /* Ledger Flex */

	// Composite product IDs
	0x0015, /* HID + U2F + WebUSB Ledger Blue */
	0x1015, /* HID + U2F + WebUSB Ledger Nano S */
	0x4015, /* HID + U2F + WebUSB Ledger Nano X */
	0x0011, /* HID + WebUSB Ledger Blue */
	0x1011, /* HID + WebUSB Ledger Nano S */
	0x4011, /* HID + WebUSB Ledger Nano X */
	0x5011, /* HID + WebUSB Ledger Nano S Plus */
	0x6011, /* HID + WebUSB Ledger Stax */
	0x7011, /* HID + WebUSB Ledger Flex */
}

// Ledgerstark wraps one connected Ledger device running the Starknet app.
type Ledgerstark struct {
	driver         *ledgerDriver
	device         kusb.Device
	devmu          sync.Mutex
	deviceUnlocked bool
}

func NewLedgerstark() (*Ledgerstark, error) {
	return &Ledgerstark{
		driver: newLedgerDriver(),
	}, nil
}

// Unlock finds the first attached Ledger and opens a session with the
// Starknet app. The device must be plugged in, unlocked, and have the
// Starknet app open.
func (l *Ledgerstark) Unlock() error {
	l.devmu.Lock()
	defer l.devmu.Unlock()
	if l.deviceUnlocked {
		return nil
	}
	infos, err := kusb.Enumerate(LEDGER_VENDOR_ID, 0)
	if err != nil {
		return err
	}
	for _, info := range infos {
		for _, id := range LEDGER_PRODUCT_IDS {
			// Windows and Macos use UsageID matching, Linux uses Interface matching
			if info.ProductID == id && (info.UsagePage == LEDGER_USAGE_ID || info.Interface == LEDGER_ENDPOINT_ID) {
				l.device, err = info.Open()
				if err != nil {
					return err
				}
				l.driver.Open(l.device)
				l.deviceUnlocked = true
				return nil
			}
		}
	}
	return fmt.Errorf("no Ledger device found: is it plugged in and unlocked?")
}

// Close releases the USB handle. The Ledgerstark can be unlocked again
// afterwards.
func (l *Ledgerstark) Close() error {
	l.devmu.Lock()
	defer l.devmu.Unlock()
	if !l.deviceUnlocked {
		return nil
	}
	l.deviceUnlocked = false
	l.driver.Close()
	return l.device.Close()
}

// AppVersion returns the version of the Starknet app currently open on the
// device.
func (l *Ledgerstark) AppVersion(ctx context.Context) (string, error) {
	if err := l.Unlock(); err != nil {
		return "", err
	}
	l.devmu.Lock()
	defer l.devmu.Unlock()
	return l.driver.Version(ctx)
}

// PublicKey derives the Stark public key at path without user interaction.
func (l *Ledgerstark) PublicKey(ctx context.Context, path gethaccounts.DerivationPath) (*felt.Felt, error) {
	if err := l.Unlock(); err != nil {
		return nil, err
	}
	l.devmu.Lock()
	defer l.devmu.Unlock()
	return l.driver.PublicKey(ctx, path, false)
}

// ConfirmPublicKey derives the Stark public key at path and has the device
// display it for on-screen verification. Blocks until the user acts.
func (l *Ledgerstark) ConfirmPublicKey(ctx context.Context, path gethaccounts.DerivationPath) (*felt.Felt, error) {
	if err := l.Unlock(); err != nil {
		return nil, err
	}
	l.devmu.Lock()
	defer l.devmu.Unlock()
	return l.driver.PublicKey(ctx, path, true)
}

// SignHash signs a raw field element with the key at path. The device shows
// the hash and blocks until the user approves or rejects.
func (l *Ledgerstark) SignHash(ctx context.Context, path gethaccounts.DerivationPath, hash *felt.Felt) (r, s *felt.Felt, err error) {
	if err := l.Unlock(); err != nil {
		return nil, nil, err
	}
	l.devmu.Lock()
	defer l.devmu.Unlock()
	return l.driver.SignHash(ctx, path, hash)
}
