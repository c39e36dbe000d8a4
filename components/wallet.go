package components

import "github.com/yohamta/donburi"

type WalletData struct {
	Money int
}

var Wallet = donburi.NewComponentType[WalletData]()
