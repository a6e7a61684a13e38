package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/adapter/persistence/repository"
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
)

const (
	ordersTableName = "pix_orders"
	codesTableName  = "purple_coin_codes"

	tableWaitTimeout = 2 * time.Minute
)

// One-shot bootstrap: creates the storefront tables, seeds a sample paid
// order + code, and prints current sales stats. Safe to rerun.
func main() {
	ctx := context.Background()
	log.Printf("[setup] configuring DynamoDB for JojoVendas...")

	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Fatalf("[setup] failed to create dynamodb client: %v", err)
	}

	if err := createOrdersTable(ctx, ddb); err != nil {
		log.Fatalf("[setup] %s: %v", ordersTableName, err)
	}
	if err := createCodesTable(ctx, ddb); err != nil {
		log.Fatalf("[setup] %s: %v", codesTableName, err)
	}

	seedSampleData(ctx, ddb)

	stats, err := repository.NewOrderDynamoRepository(ddb).Stats(ctx)
	if err != nil {
		log.Fatalf("[setup] stats failed: %v", err)
	}
	log.Printf("[setup] total_orders=%d paid_orders=%d total_revenue=%.2f total_coins_sold=%d",
		stats.TotalOrders, stats.PaidOrders, stats.TotalRevenue, stats.TotalCoinsSold)
	log.Printf("[setup] done")
}

func createOrdersTable(ctx context.Context, ddb *dynamodb.Client) error {
	_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(ordersTableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("payment_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("status"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String("payment_id-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("payment_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
			{
				IndexName: aws.String("status-created_at-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("status"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	return waitUnlessExists(ctx, ddb, ordersTableName, err)
}

func createCodesTable(ctx context.Context, ddb *dynamodb.Client) error {
	_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(codesTableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("code"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("code"), KeyType: types.KeyTypeHash},
		},
	})
	return waitUnlessExists(ctx, ddb, codesTableName, err)
}

func waitUnlessExists(ctx context.Context, ddb *dynamodb.Client, table string, err error) error {
	if err != nil {
		var riu *types.ResourceInUseException
		if errors.As(err, &riu) {
			log.Printf("[setup] table %s already exists", table)
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableWaitTimeout); err != nil {
		return err
	}
	log.Printf("[setup] table %s created", table)
	return nil
}

// seedSampleData inserts one paid order and its code so the admin panel and
// the bot have something to show right after bootstrap. The fixed payment id
// keeps reruns from piling up sample rows.
func seedSampleData(ctx context.Context, ddb *dynamodb.Client) {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(codesTableName),
		Item: map[string]types.AttributeValue{
			"code":               &types.AttributeValueMemberS{Value: "PC100_TESTE123"},
			"purple_coins_value": &types.AttributeValueMemberN{Value: "100"},
			"created_by":         &types.AttributeValueMemberS{Value: entities.CodeIssuer},
			"description":        &types.AttributeValueMemberS{Value: "Pedido de teste"},
			"created_at":         &types.AttributeValueMemberS{Value: now},
			"expires_at":         &types.AttributeValueMemberS{Value: time.Now().UTC().Add(entities.CodeValidity).Format(time.RFC3339)},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{"#code": "code"},
	})
	if isConditionalCheckFailed(err) {
		log.Printf("[setup] sample data already present")
		return
	}
	if err != nil {
		log.Printf("[setup] sample code insert failed err=%v", err)
		return
	}

	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ordersTableName),
		Item: map[string]types.AttributeValue{
			"id":                  &types.AttributeValueMemberS{Value: uuid.NewString()},
			"package_type":        &types.AttributeValueMemberS{Value: "starter"},
			"customer_name":       &types.AttributeValueMemberS{Value: "João Teste"},
			"customer_email":      &types.AttributeValueMemberS{Value: "joao@teste.com"},
			"purple_coins_amount": &types.AttributeValueMemberN{Value: "100"},
			"price_brl":           &types.AttributeValueMemberN{Value: "5"},
			"payment_id":          &types.AttributeValueMemberS{Value: "TEST_SAMPLE"},
			"purple_coin_code":    &types.AttributeValueMemberS{Value: "PC100_TESTE123"},
			"status":              &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			"created_at":          &types.AttributeValueMemberS{Value: now},
			"paid_at":             &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		log.Printf("[setup] sample order insert failed err=%v", err)
		return
	}
	log.Printf("[setup] sample order inserted")
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
