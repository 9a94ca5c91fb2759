// Package transfer implements the peer-to-peer transfer engine: one
// user-visible operation composed of a debit, a credit and two wallet
// log entries committed atomically, followed by best-effort ledger
// mirroring and notification.
package transfer

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	identity Identity
	wallets  repositories.WalletRepository
	pin      PinGuard
	mirror   Mirror
	cache    Cache
	notifier Notifier
}

// NewService creates the transfer engine with its collaborators.
// Mirror, cache and notifier are optional; nil disables them.
func NewService(
	identity Identity,
	wallets repositories.WalletRepository,
	pin PinGuard,
	mirror Mirror,
	cache Cache,
	notifier Notifier,
) Service {
	if identity == nil {
		panic("identity directory is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if pin == nil {
		panic("pin guard is required")
	}
	return &service{
		identity: identity,
		wallets:  wallets,
		pin:      pin,
		mirror:   mirror,
		cache:    cache,
		notifier: notifier,
	}
}

// Transfer moves funds from the sender to the user holding the given
// phone number.
//
// All validation (amount, self-transfer, PIN, recipient lookup) runs
// before any write; a failure there has zero side effects. The debit,
// credit and both wallet log entries commit in one database
// transaction, debit first: the conditional debit is the only step
// that can fail on balance, and it fails before any money appears on
// the recipient side. Ledger mirroring and notification run after
// commit and never undo a committed transfer.
func (s *service) Transfer(ctx context.Context, senderID uint, req Request) (*Result, error) {
	if req.Amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	sender, err := s.identity.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	if req.RecipientPhone == sender.Phone {
		return nil, errors.ErrSelfTransfer
	}

	if err := s.pin.Verify(senderID, req.Pin); err != nil {
		return nil, err
	}

	recipient, err := s.identity.GetByPhone(req.RecipientPhone)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return nil, errors.ErrRecipientNotFound
		}
		return nil, err
	}

	senderWallet, err := s.wallets.GetOrCreate(senderID)
	if err != nil {
		return nil, err
	}
	if senderWallet.Locked {
		return nil, errors.ErrWalletLocked
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Transferred to %s", recipient.Name)
	}

	reference := uuid.NewString()
	var newBalance int64
	err = s.wallets.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		debited, err := tx.DebitIfSufficient(senderID, req.Amount)
		if err != nil {
			return err
		}
		newBalance = debited.Balance

		credited, err := tx.Credit(recipient.ID, req.Amount)
		if err != nil {
			return err
		}

		recipientID := recipient.ID
		if err := tx.CreateTransaction(&models.WalletTransaction{
			WalletID:       debited.ID,
			UserID:         senderID,
			Kind:           models.WalletTxTransfer,
			Amount:         -req.Amount,
			CounterpartyID: &recipientID,
			Description:    description,
			Status:         models.WalletTxSuccess,
			Reference:      reference,
		}); err != nil {
			return err
		}

		return tx.CreateTransaction(&models.WalletTransaction{
			WalletID:       credited.ID,
			UserID:         recipient.ID,
			Kind:           models.WalletTxReceived,
			Amount:         req.Amount,
			CounterpartyID: &senderID,
			Description:    fmt.Sprintf("Received from %s", sender.Name),
			Status:         models.WalletTxSuccess,
			Reference:      uuid.NewString(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, senderID)
	s.invalidate(ctx, recipient.ID)

	// Past this point the transfer is committed. Mirror and notify
	// failures degrade analytics, never the balance.
	if s.mirror != nil {
		if err := s.mirror.RecordTransferExpense(ctx, senderID, recipient.Name, req.Description, req.Amount); err != nil {
			log.Printf("transfer %s: sender ledger mirror failed: %v", reference, err)
		}
		if err := s.mirror.RecordTransferIncome(ctx, recipient.ID, sender.Name, req.Amount); err != nil {
			log.Printf("transfer %s: recipient ledger mirror failed: %v", reference, err)
		}
	}

	if s.notifier != nil {
		s.notifier.TransferReceived(recipient.ID, sender.Name, req.Amount)
	}

	return &Result{Reference: reference, SenderBalance: newBalance}, nil
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
		log.Printf("transfer: failed to invalidate wallet cache for user %d: %v", userID, err)
	}
}
