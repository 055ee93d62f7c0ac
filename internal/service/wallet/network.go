package wallet

import (
	"fmt"
	"math/big"
)

const balanceDecimals = 4

var networkNames = map[uint64]string{
	1:        "Ethereum Mainnet",
	5:        "Goerli Testnet",
	56:       "BNB Smart Chain",
	137:      "Polygon Mainnet",
	1337:     "Localhost",
	31337:    "Hardhat",
	11155111: "Sepolia Testnet",
}

// NetworkName человекочитаемое имя сети по chain id.
func NetworkName(chainID uint64) string {
	if name, ok := networkNames[chainID]; ok {
		return name
	}
	return fmt.Sprintf("Unknown network (%d)", chainID)
}

var weiPerEther = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// FormatEther wei -> ETH с фиксированной точностью.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0." + fmt.Sprintf("%0*d", balanceDecimals, 0)
	}
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther)
	return eth.Text('f', balanceDecimals)
}
