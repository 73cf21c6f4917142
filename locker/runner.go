package locker

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirmtransaction "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"

	solanago "github.com/krazyTry/liqlock-go/solana"
)

// TxRunner is the execution seam between the orchestrator and the chain.
// Run submits one atomic transaction; the signers callback resolves private
// keys the same way tx.Sign does.
type TxRunner interface {
	// AccountExists reports whether an account is present on chain.
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)

	// Account returns the raw data of an account, or an error when missing.
	Account(ctx context.Context, account solana.PublicKey) ([]byte, error)

	// Run signs, submits and confirms a single transaction.
	Run(ctx context.Context, instructions []solana.Instruction, payer solana.PublicKey, signers func(key solana.PublicKey) *solana.PrivateKey) (solana.Signature, error)
}

// rpcRunner drives transactions through an RPC and a websocket client.
type rpcRunner struct {
	rpcClient *rpc.Client
	wsClient  *ws.Client
	bSimulate bool
}

func (r *rpcRunner) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	out, err := solanago.GetAccountInfo(ctx, r.rpcClient, account)
	if err != nil {
		if err == rpc.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return out != nil, nil
}

func (r *rpcRunner) Account(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	out, err := solanago.GetAccountInfo(ctx, r.rpcClient, account)
	if err != nil {
		return nil, err
	}
	return out.GetBinary(), nil
}

func (r *rpcRunner) Run(ctx context.Context, instructions []solana.Instruction, payer solana.PublicKey, signers func(key solana.PublicKey) *solana.PrivateKey) (solana.Signature, error) {
	latestBlockhash, err := solanago.GetLatestBlockhash(ctx, r.rpcClient)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := solana.NewTransaction(instructions, latestBlockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, err
	}

	if _, err = tx.Sign(signers); err != nil {
		return solana.Signature{}, err
	}

	if r.bSimulate {
		if _, err = r.rpcClient.SimulateTransactionWithOpts(
			ctx,
			tx,
			&rpc.SimulateTransactionOpts{
				SigVerify:  false,
				Commitment: rpc.CommitmentFinalized,
			}); err != nil {
			return solana.Signature{}, err
		}
		return solana.Signature{}, nil
	}

	sig, err := r.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return solana.Signature{}, err
	}

	if _, err = sendandconfirmtransaction.WaitForConfirmation(ctx, r.wsClient, sig, nil); err != nil {
		return solana.Signature{}, err
	}
	return sig, nil
}
