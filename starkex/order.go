package starkex

import (
	"github.com/modchain/starkcurve"
	"github.com/modchain/starkcurve/pedersen"
)

// Limits each packed order tuple field must satisfy, named after the
// ASSERTs in original_source/src/starkware/starkex/order.cc.
const (
	orderTypeLimit            = uint64(3)
	vaultIDLimit              = uint64(1) << 31
	amountLimit               = uint64(1) << 63
	nonceLimit                = uint64(1) << 31
	expirationTimestampLimit  = uint64(1) << 22
	orderIDMessageLimbBits    = 59 // GetOrderIdFromMessage requires limb 3 < 2^59
)

// getOrderPackedMessage packs an order tuple into a single field element,
// most significant field first: packed = order_type, then repeatedly
// packed = packed*limit + field for each remaining field in order.
func getOrderPackedMessage(orderType, vaultA, vaultB, amountA, amountB, nonce, expirationTimestamp uint64) (starkcurve.FieldElement, error) {
	if orderType >= orderTypeLimit {
		return starkcurve.FieldElement{}, ErrInvalidOrderType
	}
	fields := []struct {
		value uint64
		limit uint64
	}{
		{vaultA, vaultIDLimit},
		{vaultB, vaultIDLimit},
		{amountA, amountLimit},
		{amountB, amountLimit},
		{nonce, nonceLimit},
		{expirationTimestamp, expirationTimestampLimit},
	}

	packed := starkcurve.FromUint64(orderType)
	for _, f := range fields {
		if f.value >= f.limit {
			return starkcurve.FieldElement{}, ErrFieldOutOfRange
		}
		packed = packed.Mul(starkcurve.FromUint64(f.limit)).Add(starkcurve.FromUint64(f.value))
	}
	return packed, nil
}

// GetSettlementOrderMessage builds the canonical message for a settlement
// order (order_type 0): PedersenHash(PedersenHash(tokenSell, tokenBuy),
// GetOrderPackedMessage(0, vaultIdSell, vaultIdBuy, amountSell, amountBuy,
// nonce, expirationTimestamp)).
func GetSettlementOrderMessage(consts *pedersen.Constants, vaultIDSell, vaultIDBuy, amountSell, amountBuy, nonce, expirationTimestamp uint64, tokenSell, tokenBuy starkcurve.FieldElement) (starkcurve.FieldElement, error) {
	packed, err := getOrderPackedMessage(0, vaultIDSell, vaultIDBuy, amountSell, amountBuy, nonce, expirationTimestamp)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	tokenHash, err := consts.Hash(tokenSell, tokenBuy)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	return consts.Hash(tokenHash, packed)
}

// GetTransferOrderMessage builds the canonical message for a transfer order
// (order_type 1): PedersenHash(PedersenHash(token, targetPublicKey),
// GetOrderPackedMessage(1, senderVaultId, targetVaultId, amount, 0, nonce,
// expirationTimestamp)).
func GetTransferOrderMessage(consts *pedersen.Constants, senderVaultID, targetVaultID, amount, nonce, expirationTimestamp uint64, token, targetPublicKey starkcurve.FieldElement) (starkcurve.FieldElement, error) {
	packed, err := getOrderPackedMessage(1, senderVaultID, targetVaultID, amount, 0, nonce, expirationTimestamp)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	tokenHash, err := consts.Hash(token, targetPublicKey)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	return consts.Hash(tokenHash, packed)
}

// GetConditionalTransferOrderMessage builds the canonical message for a
// conditional transfer order (order_type 2):
// PedersenHash(PedersenHash(PedersenHash(token, targetPublicKey),
// condition), GetOrderPackedMessage(2, senderVaultId, targetVaultId,
// amount, 0, nonce, expirationTimestamp)).
func GetConditionalTransferOrderMessage(consts *pedersen.Constants, senderVaultID, targetVaultID, amount, nonce, expirationTimestamp uint64, token, targetPublicKey, condition starkcurve.FieldElement) (starkcurve.FieldElement, error) {
	packed, err := getOrderPackedMessage(2, senderVaultID, targetVaultID, amount, 0, nonce, expirationTimestamp)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	tokenHash, err := consts.Hash(token, targetPublicKey)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	conditionHash, err := consts.Hash(tokenHash, condition)
	if err != nil {
		return starkcurve.FieldElement{}, err
	}
	return consts.Hash(conditionHash, packed)
}

// GetOrderIdFromMessage extracts the order id a message commits to: the
// message's standard-form integer must fit in 251 bits (its top limb below
// 2^59), and the id is the 63-bit value formed by that limb's 59 bits
// shifted up by four, combined with the top four bits of the limb below it.
func GetOrderIdFromMessage(message starkcurve.FieldElement) (uint64, error) {
	std := message.ToStandardForm()
	limb3 := std.Limb(3)
	if limb3>>orderIDMessageLimbBits != 0 {
		return 0, ErrMessageOutOfRange
	}
	limb2 := std.Limb(2)
	return (limb3 << 4) | (limb2 >> 60), nil
}

// SettlementOrder bundles a settlement order's fields so callers build one
// value instead of passing seven positional arguments.
type SettlementOrder struct {
	VaultIDSell          uint64
	VaultIDBuy           uint64
	AmountSell           uint64
	AmountBuy            uint64
	Nonce                uint64
	ExpirationTimestamp  uint64
	TokenSell            starkcurve.FieldElement
	TokenBuy             starkcurve.FieldElement
}

// Message computes the canonical message for o.
func (o SettlementOrder) Message(consts *pedersen.Constants) (starkcurve.FieldElement, error) {
	return GetSettlementOrderMessage(consts, o.VaultIDSell, o.VaultIDBuy, o.AmountSell, o.AmountBuy, o.Nonce, o.ExpirationTimestamp, o.TokenSell, o.TokenBuy)
}

// TransferOrder bundles a transfer order's fields.
type TransferOrder struct {
	SenderVaultID       uint64
	TargetVaultID       uint64
	Amount              uint64
	Nonce               uint64
	ExpirationTimestamp uint64
	Token               starkcurve.FieldElement
	TargetPublicKey     starkcurve.FieldElement
}

// Message computes the canonical message for o.
func (o TransferOrder) Message(consts *pedersen.Constants) (starkcurve.FieldElement, error) {
	return GetTransferOrderMessage(consts, o.SenderVaultID, o.TargetVaultID, o.Amount, o.Nonce, o.ExpirationTimestamp, o.Token, o.TargetPublicKey)
}

// ConditionalTransferOrder bundles a conditional transfer order's fields.
type ConditionalTransferOrder struct {
	SenderVaultID       uint64
	TargetVaultID       uint64
	Amount              uint64
	Nonce               uint64
	ExpirationTimestamp uint64
	Token               starkcurve.FieldElement
	TargetPublicKey     starkcurve.FieldElement
	Condition           starkcurve.FieldElement
}

// Message computes the canonical message for o.
func (o ConditionalTransferOrder) Message(consts *pedersen.Constants) (starkcurve.FieldElement, error) {
	return GetConditionalTransferOrderMessage(consts, o.SenderVaultID, o.TargetVaultID, o.Amount, o.Nonce, o.ExpirationTimestamp, o.Token, o.TargetPublicKey, o.Condition)
}
