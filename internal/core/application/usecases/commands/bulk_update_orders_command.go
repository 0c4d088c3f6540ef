package commands

import (
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrBulkUpdateOrdersCommandIsNotConstructed = errors.New(
		"BulkUpdateOrdersCommand must be created via NewBulkUpdateOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errs.NewValueIsRequiredError("order ids")
	ErrBulkPatchIsEmpty    = errs.NewValueIsRequiredError("status or payment status")
)

// BulkPatch is the change applied to every order of a batch. Nil fields are left alone.
type BulkPatch struct {
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
}

// BulkUpdateOrdersCommand applies one patch to a set of orders, best effort.
//
// Example:
//
//	paid := order.Paid
//	cmd, _ := NewBulkUpdateOrdersCommand([]int64{4, 8, 15}, BulkPatch{PaymentStatus: &paid})
//	result, err := handler.Handle(ctx, cmd)
//	for _, s := range result.Skipped {
//	    fmt.Printf("order %d skipped: %s\n", s.ID, s.Reason)
//	}
type BulkUpdateOrdersCommand struct { //nolint:recvcheck //using for validation
	ids                []int64
	patch              BulkPatch
	requireUniformType bool

	guard guard.ConstructorGuard
}

// NewBulkUpdateOrdersCommand deduplicates ids, keeping their first occurrence order.
func NewBulkUpdateOrdersCommand(ids []int64, patch BulkPatch) (BulkUpdateOrdersCommand, error) {
	cmd := BulkUpdateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(ids),
		cmd.setPatch(patch),
	); err != nil {
		return BulkUpdateOrdersCommand{}, err
	}

	return cmd, nil
}

// RequiringUniformType returns a copy of the command that rejects the whole batch when
// its orders are not all of the same type.
func (c BulkUpdateOrdersCommand) RequiringUniformType() BulkUpdateOrdersCommand {
	c.requireUniformType = true
	return c
}

func (c BulkUpdateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateOrdersCommandIsNotConstructed)
}

func (c BulkUpdateOrdersCommand) IDs() []int64 {
	return c.ids
}

func (c BulkUpdateOrdersCommand) Patch() BulkPatch {
	return c.patch
}

func (c BulkUpdateOrdersCommand) RequireUniformType() bool {
	return c.requireUniformType
}

func (c *BulkUpdateOrdersCommand) setIDs(ids []int64) error {
	if len(ids) == 0 {
		return ErrOrderIDsAreRequired
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	var problems []error
	for _, id := range ids {
		if err := validateID("order id", id); err != nil {
			problems = append(problems, err)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	c.ids = unique
	return nil
}

func (c *BulkUpdateOrdersCommand) setPatch(patch BulkPatch) error {
	if patch.Status == nil && patch.PaymentStatus == nil {
		return ErrBulkPatchIsEmpty
	}

	var errStatus, errPayment error
	if patch.Status != nil {
		errStatus = patch.Status.Validate()
	}
	if patch.PaymentStatus != nil {
		errPayment = patch.PaymentStatus.Validate()
	}
	if err := errors.Join(errStatus, errPayment); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
