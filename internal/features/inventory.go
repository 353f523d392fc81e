package features

import (
	"errors"
	"fmt"
)

// InventoryItem は決められた3種類だけを取る型です。
type InventoryItem string

const (
	Nappies    InventoryItem = "nappies"
	Wipes      InventoryItem = "wipes"
	NappySacks InventoryItem = "nappy sacks"
)

var ErrUnknownInventoryItem = errors.New("unknown inventory item")

// ParseInventoryItem は s を InventoryItem に変換します。
func ParseInventoryItem(s string) (InventoryItem, error) {
	switch item := InventoryItem(s); item {
	case Nappies, Wipes, NappySacks:
		return item, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInventoryItem, s)
	}
}

func StockMessage(item InventoryItem, stock int) string {
	return fmt.Sprintf("You have %d %s left in stock", stock, item)
}
