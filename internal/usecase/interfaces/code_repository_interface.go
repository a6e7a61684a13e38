package interfaces

import "context"

// ICodeRepository abstracts DynamoDB persistence for RedemptionCode.
//
// Code rows are inserted by IOrderRepository.MarkPaid as part of the
// fulfillment transaction; this interface only covers the uniqueness
// pre-check used by the bounded mint-retry loop.

type ICodeRepository interface {
	Exists(ctx context.Context, code string) (bool, error)
}
