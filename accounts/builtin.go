package accounts

import (
	"github.com/NethermindEth/juno/core/felt"
)

// BuiltinAccount is a pre-funded development-network account shipped with the
// tool so devnet workflows need neither a keystore nor an account file. The
// private keys are public knowledge; they must never hold real funds.
type BuiltinAccount struct {
	Name       string
	Aliases    []string
	Network    string
	Address    *felt.Felt
	PrivateKey *felt.Felt
}

// BuiltinAccounts lists the katana seed-0 pre-funded accounts. Loaded once,
// read-only.
var BuiltinAccounts = []BuiltinAccount{
	{
		Name:       "katana-0",
		Aliases:    []string{"katana0", "katana"},
		Network:    "katana",
		Address:    mustFelt("0xb3ff441a68610b30fd5e2abbf3a1548eb6ba6f3559f2862bf2dc757e5828ca"),
		PrivateKey: mustFelt("0x2bbf4f9fd0bbb2e60b0316c1fe0b76cf7a4d0198bd493ced9b8df2a3a24d68a"),
	},
}

// FindBuiltinAccount resolves a builtin account by name or alias. Builtin
// names take precedence over account files, so callers consult this before
// hitting the filesystem.
func FindBuiltinAccount(name string) (*BuiltinAccount, bool) {
	for i := range BuiltinAccounts {
		if BuiltinAccounts[i].Name == name {
			return &BuiltinAccounts[i], true
		}
		for _, alias := range BuiltinAccounts[i].Aliases {
			if alias == name {
				return &BuiltinAccounts[i], true
			}
		}
	}
	return nil, false
}
