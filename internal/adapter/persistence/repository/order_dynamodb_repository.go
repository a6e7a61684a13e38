package repository

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "pix_orders"
	ordersPaymentIDIndex   = "payment_id-index"
	ordersStatusIndex      = "status-created_at-index"
)

type orderItem struct {
	ID                string  `dynamodbav:"id"`
	PackageType       string  `dynamodbav:"package_type"`
	CustomerName      string  `dynamodbav:"customer_name"`
	CustomerEmail     string  `dynamodbav:"customer_email"`
	PurpleCoinsAmount int     `dynamodbav:"purple_coins_amount"`
	PriceBRL          float64 `dynamodbav:"price_brl"`
	PaymentID         string  `dynamodbav:"payment_id"`
	PixCode           string  `dynamodbav:"pix_code,omitempty"`
	PurpleCoinCode    string  `dynamodbav:"purple_coin_code,omitempty"`
	Status            string  `dynamodbav:"status"`
	CreatedAt         string  `dynamodbav:"created_at"`
	PaidAt            string  `dynamodbav:"paid_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
//
// MarkPaid spans the orders and codes tables in a single transaction: the
// conditional status update plus the conditional code insert is the
// at-most-once fulfillment guarantee, so the repository owns both table
// names.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	codesTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		codesTableName: getenvDefault("CODES_TABLE", defaultCodesTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// MarkPaid performs the pending→paid transition and the code insert as one
// TransactWriteItems call. The order update is guarded on status=pending and
// the code put on attribute_not_exists(code): whichever guard trips cancels
// the whole transaction and nothing is written.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, orderID string, code entities.RedemptionCode, paidAt time.Time) error {
	codeAV, err := marshalCodeItem(code)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: orderID},
					},
					ConditionExpression: aws.String("#status = :pending"),
					UpdateExpression:    aws.String("SET #status = :paid, #code = :code, #paid_at = :paid_at"),
					ExpressionAttributeNames: map[string]string{
						"#status":  "status",
						"#code":    "purple_coin_code",
						"#paid_at": "paid_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
						":paid":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
						":code":    &types.AttributeValueMemberS{Value: code.Code},
						":paid_at": &types.AttributeValueMemberS{Value: formatTime(paidAt)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.codesTableName),
					Item:                codeAV,
					ConditionExpression: aws.String("attribute_not_exists(#code)"),
					ExpressionAttributeNames: map[string]string{
						"#code": "code",
					},
				},
			},
		},
	})
	if err != nil {
		return mapMarkPaidError(err)
	}
	return nil
}

// mapMarkPaidError unpacks a cancelled fulfillment transaction into the
// sentinel the use case branches on: element 0 is the order update (lost the
// status race), element 1 the code insert (collision).
func mapMarkPaidError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return interfaces.ErrOrderNotPending
		}
		return interfaces.ErrCodeAlreadyExists
	}
	return err
}

func (r *OrderDynamoRepository) Expire(ctx context.Context, orderID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :expired REMOVE #pix_code"),
		ExpressionAttributeNames: map[string]string{
			"#status":   "status",
			"#pix_code": "pix_code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":expired": &types.AttributeValueMemberS{Value: string(entities.OrderStatusExpired)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrOrderNotPending
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersStatusIndex),
			KeyConditionExpression: aws.String("#status = :pending AND #created_at < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#created_at": "created_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
				":cutoff":  &types.AttributeValueMemberS{Value: formatTime(cutoff)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return orders, nil
}

// Stats folds the whole orders table in the application; DynamoDB has no
// server-side aggregation. The table is storefront-sized, so a paginated
// scan is acceptable.
func (r *OrderDynamoRepository) Stats(ctx context.Context) (entities.SalesStats, error) {
	var stats entities.SalesStats
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#status, price_brl, purple_coins_amount"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.SalesStats{}, err
		}

		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return entities.SalesStats{}, err
			}
			stats.TotalOrders++
			if it.Status == string(entities.OrderStatusPaid) {
				stats.PaidOrders++
				stats.TotalRevenue += it.PriceBRL
				stats.TotalCoinsSold += it.PurpleCoinsAmount
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return stats, nil
}

func (r *OrderDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		PackageType:       o.PackageType,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		PurpleCoinsAmount: o.PurpleCoinsAmount,
		PriceBRL:          o.PriceBRL,
		PaymentID:         o.PaymentID,
		PixCode:           o.PixCode,
		PurpleCoinCode:    o.PurpleCoinCode,
		Status:            string(o.Status),
		CreatedAt:         formatTime(o.CreatedAt),
	}
	if o.PaidAt != nil {
		it.PaidAt = formatTime(*o.PaidAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                it.ID,
		PackageType:       it.PackageType,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		PurpleCoinsAmount: it.PurpleCoinsAmount,
		PriceBRL:          it.PriceBRL,
		PaymentID:         it.PaymentID,
		PixCode:           it.PixCode,
		PurpleCoinCode:    it.PurpleCoinCode,
		Status:            entities.OrderStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		o.PaidAt = &paidAt
	}
	return o
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
