package repository

import (
	"context"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCodesTableName = "purple_coin_codes"

type codeItem struct {
	Code             string `dynamodbav:"code"`
	PurpleCoinsValue int    `dynamodbav:"purple_coins_value"`
	CreatedBy        string `dynamodbav:"created_by"`
	Description      string `dynamodbav:"description,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	ExpiresAt        string `dynamodbav:"expires_at"`
	UsedByDiscordID  string `dynamodbav:"used_by_discord_id,omitempty"`
	UsedAt           string `dynamodbav:"used_at,omitempty"`
}

// CodeDynamoRepository reads RedemptionCode rows from DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//
// Code rows are written by the fulfillment transaction in
// OrderDynamoRepository.MarkPaid and redeemed by the external bot; this
// repository only serves the uniqueness pre-check.

type CodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICodeRepository = (*CodeDynamoRepository)(nil)

func NewCodeDynamoRepository(ddb *dynamodb.Client) *CodeDynamoRepository {
	return &CodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CODES_TABLE", defaultCodesTableName),
	}
}

func (r *CodeDynamoRepository) Exists(ctx context.Context, code string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		// "code" is a DynamoDB reserved word.
		ProjectionExpression:     aws.String("#code"),
		ExpressionAttributeNames: map[string]string{"#code": "code"},
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func toCodeItem(c entities.RedemptionCode) codeItem {
	it := codeItem{
		Code:             c.Code,
		PurpleCoinsValue: c.PurpleCoinsValue,
		CreatedBy:        c.CreatedBy,
		Description:      c.Description,
		CreatedAt:        formatTime(c.CreatedAt),
		ExpiresAt:        formatTime(c.ExpiresAt),
		UsedByDiscordID:  c.UsedByDiscordID,
	}
	if c.UsedAt != nil {
		it.UsedAt = formatTime(*c.UsedAt)
	}
	return it
}

func marshalCodeItem(c entities.RedemptionCode) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(toCodeItem(c))
}

// formatTime stores timestamps as fixed-width UTC RFC 3339 strings so the
// created_at GSI range key sorts lexicographically in time order.
func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
