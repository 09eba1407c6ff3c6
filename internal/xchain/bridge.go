package xchain

import "github.com/LeJamon/xrpl-testkit/internal/amount"

// Bridge identifies a cross-chain bridge by its door accounts and the
// asset issued on each chain.
type Bridge struct {
	LockingChainDoor  string       `json:"LockingChainDoor"`
	LockingChainIssue amount.Issue `json:"LockingChainIssue"`
	IssuingChainDoor  string       `json:"IssuingChainDoor"`
	IssuingChainIssue amount.Issue `json:"IssuingChainIssue"`
}

// IsNative reports whether the bridge moves the native currency on both
// chains.
func (b Bridge) IsNative() bool {
	return b.LockingChainIssue.IsNative() && b.IssuingChainIssue.IsNative()
}
