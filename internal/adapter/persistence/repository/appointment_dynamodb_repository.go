package repository

import (
	"context"
	"errors"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAppointmentsTableName = "appointments"
	appointmentsVehicleIDIndex   = "vehicle_id-index"
	appointmentsTechnicianIndex  = "assigned_technician_id-index"
)

type appointmentItem struct {
	ID                   string `dynamodbav:"id"`
	VehicleID            string `dynamodbav:"vehicle_id"`
	CustomerID           string `dynamodbav:"customer_id"`
	Description          string `dynamodbav:"description,omitempty"`
	ScheduledDate        string `dynamodbav:"scheduled_date"`
	Status               string `dynamodbav:"status"`
	AssignedTechnicianID string `dynamodbav:"assigned_technician_id,omitempty"`
	AssignedAt           string `dynamodbav:"assigned_at,omitempty"`
	StartedAt            string `dynamodbav:"started_at,omitempty"`
	CompletedAt          string `dynamodbav:"completed_at,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//   - GSI: assigned_technician_id-index (PK: assigned_technician_id)
//
// Every workflow transition is a single UpdateItem with a ConditionExpression
// on the current status. Two racing transitions on the same appointment hit
// the same condition; DynamoDB lets exactly one through and the loser gets a
// ConditionalCheckFailedException, surfaced here as a zero-value Appointment.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	var (
		items    []entities.Appointment
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
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromAppointmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AppointmentDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Appointment, error) {
	return r.queryIndex(ctx, appointmentsVehicleIDIndex, "vehicle_id = :v", vehicleID)
}

func (r *AppointmentDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.Appointment, error) {
	return r.queryIndex(ctx, appointmentsTechnicianIndex, "assigned_technician_id = :v", technicianID)
}

func (r *AppointmentDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Appointment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Appointment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAppointmentItem(it))
	}
	return items, nil
}

func (r *AppointmentDynamoRepository) Assign(ctx context.Context, id, technicianID string, at time.Time) (entities.Appointment, error) {
	return r.transition(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next, #tech = :tech, #assigned_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#tech":        "assigned_technician_id",
			"#assigned_at": "assigned_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusPending)},
			":next":     &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusAssigned)},
			":tech":     &types.AttributeValueMemberS{Value: technicianID},
			":at":       &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *AppointmentDynamoRepository) Start(ctx context.Context, id string, at time.Time) (entities.Appointment, error) {
	return r.transition(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next, #started_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#started_at": "started_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusAssigned)},
			":next":     &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusInProgress)},
			":at":       &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *AppointmentDynamoRepository) Complete(ctx context.Context, id string, at time.Time) (entities.Appointment, error) {
	return r.transition(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next, #completed_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#completed_at": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusInProgress)},
			":next":     &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusCompleted)},
			":at":       &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
}

func (r *AppointmentDynamoRepository) Unassign(ctx context.Context, id string) (entities.Appointment, error) {
	return r.transition(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next REMOVE #tech, #assigned_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#tech":        "assigned_technician_id",
			"#assigned_at": "assigned_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusAssigned)},
			":next":     &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusPending)},
		},
	})
}

func (r *AppointmentDynamoRepository) Cancel(ctx context.Context, id string) (entities.Appointment, error) {
	return r.transition(ctx, id, &dynamodb.UpdateItemInput{
		UpdateExpression:    aws.String("SET #status = :next"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:pending, :assigned, :in_progress)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusPending)},
			":assigned":    &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusAssigned)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusInProgress)},
			":next":        &types.AttributeValueMemberS{Value: string(entities.AppointmentStatusCancelled)},
		},
	})
}

func (r *AppointmentDynamoRepository) transition(ctx context.Context, id string, in *dynamodb.UpdateItemInput) (entities.Appointment, error) {
	in.TableName = aws.String(r.tableName)
	in.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	in.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	it := appointmentItem{
		ID:                   a.ID,
		VehicleID:            a.VehicleID,
		CustomerID:           a.CustomerID,
		Description:          a.Description,
		ScheduledDate:        a.ScheduledDate.UTC().Format(time.RFC3339Nano),
		Status:               string(a.Status),
		AssignedTechnicianID: a.AssignedTechnicianID,
		CreatedAt:            a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.AssignedAt != nil {
		it.AssignedAt = a.AssignedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.StartedAt != nil {
		it.StartedAt = a.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if a.CompletedAt != nil {
		it.CompletedAt = a.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	scheduledDate, _ := time.Parse(time.RFC3339Nano, it.ScheduledDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	a := entities.Appointment{
		ID:                   it.ID,
		VehicleID:            it.VehicleID,
		CustomerID:           it.CustomerID,
		Description:          it.Description,
		ScheduledDate:        scheduledDate,
		Status:               entities.AppointmentStatus(it.Status),
		AssignedTechnicianID: it.AssignedTechnicianID,
		CreatedAt:            createdAt,
	}
	a.AssignedAt = parseOptionalTime(it.AssignedAt)
	a.StartedAt = parseOptionalTime(it.StartedAt)
	a.CompletedAt = parseOptionalTime(it.CompletedAt)
	return a
}

func parseOptionalTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	return &t
}
