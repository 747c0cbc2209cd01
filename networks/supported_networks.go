package networks

var SupportedNetworks = []Network{
	Mainnet,
	Sepolia,
	SepoliaIntegration,
	Katana,
}
