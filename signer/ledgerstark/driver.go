package ledgerstark

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/NethermindEth/juno/core/felt"
	gethaccounts "github.com/ethereum/go-ethereum/accounts"
)

// Starknet app APDU instruction set.
const (
	claStarknet byte = 0x5a

	insGetVersion   byte = 0x00
	insGetPublicKey byte = 0x01
	insSignHash     byte = 0x02
)

// Status words returned in the last two bytes of every APDU response.
const (
	swOK         uint16 = 0x9000
	swUserDenied uint16 = 0x6985
	swWrongApp   uint16 = 0x6e00
)

var (
	ErrUserDenied = errors.New("request denied on the device")
	ErrWrongApp   = errors.New("the Starknet app is not open on the device")
)

// ledgerDriver implements the Ledger HID transport and the Starknet app
// protocol on top of it.
type ledgerDriver struct {
	device io.ReadWriter
}

func newLedgerDriver() *ledgerDriver {
	return &ledgerDriver{}
}

func (d *ledgerDriver) Open(device io.ReadWriter) {
	d.device = device
}

func (d *ledgerDriver) Close() {
	d.device = nil
}

// Version asks the app for its version triple.
func (d *ledgerDriver) Version(ctx context.Context) (string, error) {
	reply, err := d.exchange(ctx, insGetVersion, 0, 0, nil)
	if err != nil {
		return "", err
	}
	if len(reply) < 3 {
		return "", fmt.Errorf("malformed version reply of %d bytes", len(reply))
	}
	return fmt.Sprintf("%d.%d.%d", reply[0], reply[1], reply[2]), nil
}

// PublicKey derives the Stark public key at path. With confirm set, the
// device displays the key and waits for user approval before replying.
func (d *ledgerDriver) PublicKey(ctx context.Context, path gethaccounts.DerivationPath, confirm bool) (*felt.Felt, error) {
	var p1 byte
	if confirm {
		p1 = 1
	}
	reply, err := d.exchange(ctx, insGetPublicKey, p1, 0, encodePath(path))
	if err != nil {
		return nil, err
	}
	// Uncompressed point: 0x04 || x (32 bytes) || y (32 bytes).
	if len(reply) < 65 || reply[0] != 0x04 {
		return nil, fmt.Errorf("malformed public key reply of %d bytes", len(reply))
	}
	return new(felt.Felt).SetBytes(reply[1:33]), nil
}

// SignHash signs a field element with the key at path. The hash travels in a
// second APDU after the path so the device can render it while the first is
// still on screen.
func (d *ledgerDriver) SignHash(ctx context.Context, path gethaccounts.DerivationPath, hash *felt.Felt) (r, s *felt.Felt, err error) {
	if _, err = d.exchange(ctx, insSignHash, 0, 0, encodePath(path)); err != nil {
		return nil, nil, err
	}
	hashBytes := hash.Bytes()
	reply, err := d.exchange(ctx, insSignHash, 1, 0, hashBytes[:])
	if err != nil {
		return nil, nil, err
	}
	// r (32 bytes) || s (32 bytes) || v (1 byte); v is irrelevant on Stark.
	if len(reply) < 64 {
		return nil, nil, fmt.Errorf("malformed signature reply of %d bytes", len(reply))
	}
	return new(felt.Felt).SetBytes(reply[:32]), new(felt.Felt).SetBytes(reply[32:64]), nil
}

// encodePath serializes a BIP-32 path into the app's wire form: a level
// count byte followed by each level as a big endian uint32.
func encodePath(path gethaccounts.DerivationPath) []byte {
	buf := make([]byte, 1+4*len(path))
	buf[0] = byte(len(path))
	for i, level := range path {
		binary.BigEndian.PutUint32(buf[1+4*i:], level)
	}
	return buf
}

// exchange sends one APDU and reads its reply, honoring ctx while the device
// waits for user input. USB reads have no native cancellation, so the I/O
// runs in a goroutine and a cancelled ctx abandons it; the stale reply is
// discarded when it eventually arrives.
func (d *ledgerDriver) exchange(ctx context.Context, ins, p1, p2 byte, data []byte) ([]byte, error) {
	if d.device == nil {
		return nil, fmt.Errorf("device not opened")
	}
	apdu := make([]byte, 5+len(data))
	apdu[0] = claStarknet
	apdu[1] = ins
	apdu[2] = p1
	apdu[3] = p2
	apdu[4] = byte(len(data))
	copy(apdu[5:], data)

	type result struct {
		reply []byte
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		reply, err := hidExchange(d.device, apdu)
		ch <- result{reply, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		return checkStatus(res.reply)
	}
}

func checkStatus(reply []byte) ([]byte, error) {
	if len(reply) < 2 {
		return nil, fmt.Errorf("truncated reply of %d bytes", len(reply))
	}
	sw := binary.BigEndian.Uint16(reply[len(reply)-2:])
	switch sw {
	case swOK:
		return reply[:len(reply)-2], nil
	case swUserDenied:
		return nil, ErrUserDenied
	case swWrongApp:
		return nil, ErrWrongApp
	default:
		return nil, fmt.Errorf("device returned status %#04x", sw)
	}
}

// Ledger HID framing: every report is 64 bytes, carrying a channel id, a
// command tag, a frame sequence index and then payload. The first frame also
// carries the total payload length.
const (
	hidChannel    uint16 = 0x0101
	hidTagAPDU    byte   = 0x05
	hidReportSize        = 64
)

func hidExchange(device io.ReadWriter, apdu []byte) ([]byte, error) {
	// Prefix the APDU with its length, then chunk into reports.
	payload := make([]byte, 2+len(apdu))
	binary.BigEndian.PutUint16(payload, uint16(len(apdu)))
	copy(payload[2:], apdu)

	frame := make([]byte, hidReportSize)
	for seq := uint16(0); len(payload) > 0; seq++ {
		binary.BigEndian.PutUint16(frame, hidChannel)
		frame[2] = hidTagAPDU
		binary.BigEndian.PutUint16(frame[3:], seq)
		n := copy(frame[5:], payload)
		payload = payload[n:]
		for i := 5 + n; i < hidReportSize; i++ {
			frame[i] = 0
		}
		if _, err := device.Write(frame); err != nil {
			return nil, err
		}
	}

	var reply []byte
	var total int
	for seq := uint16(0); ; seq++ {
		if _, err := io.ReadFull(device, frame); err != nil {
			return nil, err
		}
		if binary.BigEndian.Uint16(frame) != hidChannel || frame[2] != hidTagAPDU {
			return nil, fmt.Errorf("unexpected reply header % x", frame[:3])
		}
		if binary.BigEndian.Uint16(frame[3:]) != seq {
			return nil, fmt.Errorf("out of order reply frame")
		}
		chunk := frame[5:]
		if seq == 0 {
			total = int(binary.BigEndian.Uint16(chunk))
			chunk = chunk[2:]
		}
		need := total - len(reply)
		if need < len(chunk) {
			chunk = chunk[:need]
		}
		reply = append(reply, chunk...)
		if len(reply) >= total {
			return reply, nil
		}
	}
}
