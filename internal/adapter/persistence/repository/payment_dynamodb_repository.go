package repository

import (
	"context"

	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsRequestIDIndex = "request_id-index"

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	RequestID     string `dynamodbav:"request_id"`
	RequestKind   string `dynamodbav:"request_kind"`
	Amount        string `dynamodbav:"amount"`
	Currency      string `dynamodbav:"currency"`
	Status        string `dynamodbav:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerEmail string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists payment attempt records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id, SK: created_at)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ListByRequestID returns every attempt recorded for a request, newest first.
func (r *PaymentDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItem(it))
		}
	}
	return items, nil
}

// Settle moves a pending record to a terminal status. The condition makes settlement happen once.
func (r *PaymentDynamoRepository) Settle(ctx context.Context, id string, status entities.PaymentStatus, transactionID string) (entities.Payment, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if transactionID != "" {
		expr += ", #transaction_id = :transaction_id"
		values[":transaction_id"] = &types.AttributeValueMemberS{Value: transactionID}
		names["#transaction_id"] = "transaction_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		RequestID:     p.RequestID,
		RequestKind:   string(p.RequestKind),
		Amount:        floatToString(p.Amount),
		Currency:      p.Currency,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		RequestID:     it.RequestID,
		RequestKind:   entities.RequestKind(it.RequestKind),
		Amount:        parseFloat(it.Amount),
		Currency:      it.Currency,
		Status:        entities.PaymentStatus(it.Status),
		TransactionID: it.TransactionID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
