// Package commands contains the order lifecycle engine: business operations
// that modify system state. Implements the Command pattern for write
// operations in the CQRS architecture. All commands follow a consistent
// pattern: constructor validation, transaction management, persistence, and
// notification dispatch as a side effect of a successful transition.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// DeliveryManRepoFactory provides access to the delivery man repository within a transaction.
	DeliveryManRepoFactory interface {
		DeliveryManRepository() ports.DeliveryManRepository
	}

	// ProblemRepoFactory provides access to the delivery problem repository within a transaction.
	ProblemRepoFactory interface {
		DeliveryProblemRepository() ports.DeliveryProblemRepository
	}

	// FileRepoFactory provides access to the file repository within a transaction.
	FileRepoFactory interface {
		FileRepository() ports.FileRepository
	}

	// RecipientUoW manages transactions for recipient-only operations.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	// RecipientUoWFactory creates new recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// DeliveryManUoW manages transactions for operations touching delivery men
	// and the files their avatars reference.
	DeliveryManUoW interface {
		TxManager
		DeliveryManRepoFactory
		FileRepoFactory
	}

	// DeliveryManUoWFactory creates new delivery man unit of work instances.
	DeliveryManUoWFactory interface {
		Create() DeliveryManUoW
	}

	// FileUoW manages transactions for file metadata operations.
	FileUoW interface {
		TxManager
		FileRepoFactory
	}

	// FileUoWFactory creates new file unit of work instances.
	FileUoWFactory interface {
		Create() FileUoW
	}

	// UoW manages transactions across the full aggregate set. Used by the
	// order lifecycle handlers, which read recipients, delivery men, files
	// and problems while mutating orders.
	UoW interface {
		TxManager
		OrderRepoFactory
		RecipientRepoFactory
		DeliveryManRepoFactory
		ProblemRepoFactory
		FileRepoFactory
	}

	// UoWFactory creates new unit of work instances for lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
