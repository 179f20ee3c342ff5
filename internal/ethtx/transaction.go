// Package ethtx builds, signs, and parses legacy (pre-EIP-1559) Ethereum
// transactions with EIP-155 replay protection.
package ethtx

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/avalanche-wallets/hd-multichain/internal/address"
)

// Params holds the mutable fields of a legacy transaction besides the
// receiver and value.
type Params struct {
	Nonce    *big.Int
	GasPrice *big.Int
	Gas      *big.Int
	Data     []byte
}

// Signature is the (v, r, s) triple once a transaction has been signed,
// v already EIP-155-encoded.
type Signature struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// Transaction is a legacy Ethereum transaction in one of two states:
// Raw (Signature nil, Sender empty) or Signed (both populated). A value
// with exactly one of the two set is inconsistent, and Sign rejects it.
type Transaction struct {
	Receiver  [20]byte
	Amount    *big.Int
	Params    Params
	ChainID   int64
	Signature *Signature
	Sender    string // lowercase 0x-address, populated only once Signed
}

// New returns an unsigned (Raw) transaction.
func New(receiver [20]byte, amount *big.Int, params Params, chainID int64) *Transaction {
	return &Transaction{Receiver: receiver, Amount: amount, Params: params, ChainID: chainID}
}

func (tx *Transaction) encode(v, r, s *big.Int) []byte {
	items := [][]byte{
		rlpEncodeUint(tx.Params.Nonce),
		rlpEncodeUint(tx.Params.GasPrice),
		rlpEncodeUint(tx.Params.Gas),
		rlpEncodeBytes(tx.Receiver[:]),
		rlpEncodeUint(tx.Amount),
		rlpEncodeBytes(tx.Params.Data),
		rlpEncodeUint(v),
		rlpEncodeUint(r),
		rlpEncodeUint(s),
	}
	return rlpEncodeList(items...)
}

// Bytes returns the RLP encoding: the signed form if Signature is set,
// otherwise the EIP-155 raw form (chain_id, 0, 0) used as the signing
// preimage.
func (tx *Transaction) Bytes() []byte {
	if tx.Signature != nil {
		return tx.encode(tx.Signature.V, tx.Signature.R, tx.Signature.S)
	}
	return tx.encode(big.NewInt(tx.ChainID), big.NewInt(0), big.NewInt(0))
}

// Hash returns Keccak-256 of the current encoding (raw preimage hash
// before signing, or the signed transaction's hash after).
func (tx *Transaction) Hash() []byte {
	return address.Keccak256(tx.Bytes())
}

// Sign signs the transaction's raw hash with sk and returns a new Signed
// transaction. Signing an already-Signed transaction is a no-op that
// returns the transaction unchanged; only a transaction with exactly
// one of Signature/Sender set (an invalid, inconsistent state) errors.
func (tx *Transaction) Sign(sk *btcec.PrivateKey) (*Transaction, error) {
	if tx.Signature != nil && tx.Sender != "" {
		return tx, nil
	}
	if tx.Signature != nil || tx.Sender != "" {
		return nil, &Error{Kind: InconsistentSignature}
	}

	hash := tx.Hash()
	compact := btcecdsa.SignCompact(sk, hash, false)
	if len(compact) != 65 {
		return nil, &Error{Kind: DomainError, Err: errShortSignature}
	}
	recID := int64(compact[0] - 27)
	r := new(big.Int).SetBytes(compact[1:33])
	s := new(big.Int).SetBytes(compact[33:65])
	v := new(big.Int).Add(big.NewInt(recID+35), big.NewInt(tx.ChainID*2))

	pub := sk.PubKey()
	senderAddr := address.Ethereum(pub.SerializeUncompressed())

	signed := *tx
	signed.Signature = &Signature{V: v, R: r, S: s}
	signed.Sender = senderAddr
	return &signed, nil
}

// Decode parses a 9-field RLP transaction list, recovering the sender
// from the signature when one is present.
func Decode(data []byte) (*Transaction, error) {
	list, err := rlpDecodeList(data)
	if err != nil {
		return nil, err
	}
	if len(list) != 9 {
		return nil, &Error{Kind: InvalidFieldCount}
	}

	nonce := bigFromRLP(list[0])
	gasPrice := bigFromRLP(list[1])
	gas := bigFromRLP(list[2])
	if len(list[3]) != 20 {
		return nil, &Error{Kind: DomainError, Err: errBadReceiver}
	}
	var receiver [20]byte
	copy(receiver[:], list[3])
	amount := bigFromRLP(list[4])
	data6 := append([]byte(nil), list[5]...)
	v := bigFromRLP(list[6])
	r := bigFromRLP(list[7])
	s := bigFromRLP(list[8])

	var chainID int64
	if r.Sign() == 0 && s.Sign() == 0 {
		// Raw transaction: v carries the chain id directly.
		chainID = v.Int64()
		return &Transaction{
			Receiver: receiver,
			Amount:   amount,
			Params:   Params{Nonce: nonce, GasPrice: gasPrice, Gas: gas, Data: data6},
			ChainID:  chainID,
		}, nil
	}
	chainID = deriveChainIDFromV(v)
	tx := &Transaction{
		Receiver: receiver,
		Amount:   amount,
		Params:   Params{Nonce: nonce, GasPrice: gasPrice, Gas: gas, Data: data6},
		ChainID:  chainID,
	}

	recID := new(big.Int).Sub(v, big.NewInt(35+chainID*2)).Int64()
	compact := make([]byte, 65)
	compact[0] = byte(recID + 27)
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	copy(compact[1+32-len(rBytes):33], rBytes)
	copy(compact[33+32-len(sBytes):65], sBytes)

	preimage := tx.encode(big.NewInt(chainID), big.NewInt(0), big.NewInt(0))
	hash := address.Keccak256(preimage)

	pub, _, err := btcecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, &Error{Kind: RecoveryError, Err: err}
	}

	tx.Signature = &Signature{V: v, R: r, S: s}
	tx.Sender = address.Ethereum(pub.SerializeUncompressed())
	return tx, nil
}

func bigFromRLP(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(b)
}

// deriveChainIDFromV recovers EIP-155's embedded chain id from v: v is
// either a bare recovery id (0/1, pre-155, unsigned placeholder) or
// recid + chain_id*2 + 35.
func deriveChainIDFromV(v *big.Int) int64 {
	vi := v.Int64()
	if vi < 35 {
		return 0
	}
	return (vi - 35) / 2
}
