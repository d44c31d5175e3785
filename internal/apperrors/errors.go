package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateProductCode indicates an attempt to create or rename a product
// with a code that is already in use. Product codes are globally unique.
var ErrDuplicateProductCode = errors.New("product code already exists")

// ErrInvalidConsumption indicates a request to consume more units from an
// inventory batch than it has remaining. This should never happen when a
// costing plan is followed exactly; it means a caller bypassed the engine.
var ErrInvalidConsumption = errors.New("consumption exceeds batch remaining quantity")

// ErrInsufficientStock indicates that the total available quantity across all
// eligible batches is less than the quantity requested by a sale.
var ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

// ErrOverpayment indicates a payment larger than the debt's remaining balance.
var ErrOverpayment = errors.New("payment exceeds remaining balance")

// ErrOverallocation indicates a combined payment larger than the summed
// remaining balances of the debts it is allocated across.
var ErrOverallocation = errors.New("payment exceeds combined remaining balance")

// ErrCrossCustomerAllocation indicates a combined payment spanning debts that
// belong to different counterparties.
var ErrCrossCustomerAllocation = errors.New("debts belong to different counterparties")
