// Package xchain describes assets moved across a cross-chain bridge.
package xchain

import (
	"fmt"

	"github.com/LeJamon/xrpl-testkit/internal/amount"
)

// Asset is the pairing of a mainchain asset with its sidechain
// equivalent, each with its refund penalty in the same currency.
type Asset struct {
	MainAsset         amount.Amount
	SideAsset         amount.Amount
	MainRefundPenalty amount.Amount
	SideRefundPenalty amount.Amount
}

// NewAsset builds an Asset. mainAsset and sideAsset are templates: only
// their currency and issuer are kept, and each value is placed on the
// template of its chain. Values are not checked for sign or against each
// other.
func NewAsset(mainAsset, sideAsset, mainValue, sideValue, mainRefundPenalty, sideRefundPenalty any) (*Asset, error) {
	main, err := amount.SameAmountNewValue(mainAsset, mainValue)
	if err != nil {
		return nil, fmt.Errorf("main asset: %w", err)
	}
	side, err := amount.SameAmountNewValue(sideAsset, sideValue)
	if err != nil {
		return nil, fmt.Errorf("side asset: %w", err)
	}
	mainPenalty, err := amount.SameAmountNewValue(mainAsset, mainRefundPenalty)
	if err != nil {
		return nil, fmt.Errorf("main refund penalty: %w", err)
	}
	sidePenalty, err := amount.SameAmountNewValue(sideAsset, sideRefundPenalty)
	if err != nil {
		return nil, fmt.Errorf("side refund penalty: %w", err)
	}

	return &Asset{
		MainAsset:         main,
		SideAsset:         side,
		MainRefundPenalty: mainPenalty,
		SideRefundPenalty: sidePenalty,
	}, nil
}

// Bridge returns the bridge descriptor carrying this asset between the
// two door accounts.
func (a *Asset) Bridge(lockingDoor, issuingDoor string) Bridge {
	return Bridge{
		LockingChainDoor:  lockingDoor,
		LockingChainIssue: a.MainAsset.Issue(),
		IssuingChainDoor:  issuingDoor,
		IssuingChainIssue: a.SideAsset.Issue(),
	}
}
