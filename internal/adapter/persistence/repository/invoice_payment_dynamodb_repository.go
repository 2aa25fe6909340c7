package repository

import (
	"context"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "invoice_payments"
	paymentsRepairOrderIDIndex = "repair_order_id-index"
)

type invoicePaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	RepairOrderID string                 `dynamodbav:"repair_order_id"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists InvoicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: repair_order_id-index (PK: repair_order_id)

type InvoicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb *dynamodb.Client) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	av, err := attributevalue.MarshalMap(toInvoicePaymentItem(p))
	if err != nil {
		return entities.InvoicePayment{}, err
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
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvoicePayment{}, nil
	}

	var it invoicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoicePayment{}, err
	}
	return fromInvoicePaymentItem(it), nil
}

func (r *InvoicePaymentDynamoRepository) ListByRepairOrderID(ctx context.Context, repairOrderID string) ([]entities.InvoicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRepairOrderIDIndex),
		KeyConditionExpression: aws.String("repair_order_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: repairOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoicePaymentItem(it))
	}
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:            p.ID,
		RepairOrderID: p.RepairOrderID,
		Date:          p.Date.UTC().Format(time.RFC3339Nano),
		Status:        string(p.Status),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) entities.InvoicePayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.InvoicePayment{
		ID:            it.ID,
		RepairOrderID: it.RepairOrderID,
		Date:          dt,
		Status:        entities.PaymentStatus(it.Status),
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}
}
