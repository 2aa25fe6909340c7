package repository

import (
	"context"
	"strconv"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRepairOrdersTableName = "repair_orders"
	repairOrdersVehicleIDIndex   = "vehicle_id-index"
)

type serviceLineItem struct {
	Name           string  `dynamodbav:"name"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	Taxable        bool    `dynamodbav:"taxable"`
	WarrantyMonths int     `dynamodbav:"warranty_months,omitempty"`
}

type partLineItem struct {
	Name           string  `dynamodbav:"name"`
	UnitPrice      float64 `dynamodbav:"unit_price"`
	Quantity       int     `dynamodbav:"quantity"`
	Taxable        bool    `dynamodbav:"taxable"`
	WarrantyMonths int     `dynamodbav:"warranty_months,omitempty"`
}

type repairOrderItem struct {
	ID              string            `dynamodbav:"id"`
	VehicleID       string            `dynamodbav:"vehicle_id"`
	Services        []serviceLineItem `dynamodbav:"services,omitempty"`
	Parts           []partLineItem    `dynamodbav:"parts,omitempty"`
	DiscountAmount  string            `dynamodbav:"discount_amount,omitempty"`
	DiscountPercent string            `dynamodbav:"discount_percent,omitempty"`
	TaxPercent      string            `dynamodbav:"tax_percent,omitempty"`
	TotalCost       string            `dynamodbav:"total_cost"`
	Notes           string            `dynamodbav:"notes,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
}

// RepairOrderDynamoRepository persists RepairOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//
// Orders never carry a status attribute; status is derived from the vehicle's
// appointments at read time by the use case.

type RepairOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairOrderRepository = (*RepairOrderDynamoRepository)(nil)

func NewRepairOrderDynamoRepository(ddb *dynamodb.Client) *RepairOrderDynamoRepository {
	return &RepairOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPAIR_ORDERS_TABLE", defaultRepairOrdersTableName),
	}
}

func (r *RepairOrderDynamoRepository) Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	av, err := attributevalue.MarshalMap(toRepairOrderItem(o))
	if err != nil {
		return entities.RepairOrder{}, err
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
		return entities.RepairOrder{}, err
	}
	return o, nil
}

func (r *RepairOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it repairOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromRepairOrderItem(it), nil
}

func (r *RepairOrderDynamoRepository) List(ctx context.Context) ([]entities.RepairOrder, error) {
	var (
		items    []entities.RepairOrder
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it repairOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRepairOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *RepairOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RepairOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(repairOrdersVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RepairOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRepairOrderItem(it))
	}
	return items, nil
}

func toRepairOrderItem(o entities.RepairOrder) repairOrderItem {
	it := repairOrderItem{
		ID:        o.ID,
		VehicleID: o.VehicleID,
		TotalCost: floatToString(o.TotalCost),
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.DiscountAmount != 0 {
		it.DiscountAmount = floatToString(o.DiscountAmount)
	}
	if o.DiscountPercent != 0 {
		it.DiscountPercent = floatToString(o.DiscountPercent)
	}
	if o.TaxPercent != 0 {
		it.TaxPercent = floatToString(o.TaxPercent)
	}
	for _, s := range o.Services {
		it.Services = append(it.Services, serviceLineItem{
			Name:           s.Name,
			LaborCost:      s.LaborCost,
			Taxable:        s.Taxable,
			WarrantyMonths: s.WarrantyMonths,
		})
	}
	for _, p := range o.Parts {
		it.Parts = append(it.Parts, partLineItem{
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			Quantity:       p.Quantity,
			Taxable:        p.Taxable,
			WarrantyMonths: p.WarrantyMonths,
		})
	}
	return it
}

func fromRepairOrderItem(it repairOrderItem) entities.RepairOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	totalCost, _ := strconv.ParseFloat(it.TotalCost, 64)
	discountAmount, _ := strconv.ParseFloat(it.DiscountAmount, 64)
	discountPercent, _ := strconv.ParseFloat(it.DiscountPercent, 64)
	taxPercent, _ := strconv.ParseFloat(it.TaxPercent, 64)

	o := entities.RepairOrder{
		ID:              it.ID,
		VehicleID:       it.VehicleID,
		DiscountAmount:  discountAmount,
		DiscountPercent: discountPercent,
		TaxPercent:      taxPercent,
		TotalCost:       totalCost,
		Notes:           it.Notes,
		CreatedAt:       createdAt,
	}
	for _, s := range it.Services {
		o.Services = append(o.Services, entities.ServiceLine{
			Name:           s.Name,
			LaborCost:      s.LaborCost,
			Taxable:        s.Taxable,
			WarrantyMonths: s.WarrantyMonths,
		})
	}
	for _, p := range it.Parts {
		o.Parts = append(o.Parts, entities.PartLine{
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			Quantity:       p.Quantity,
			Taxable:        p.Taxable,
			WarrantyMonths: p.WarrantyMonths,
		})
	}
	return o
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
