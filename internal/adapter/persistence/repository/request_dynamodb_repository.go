package repository

import (
	"context"
	"fmt"
	"sort"

	"dossier_service/internal/domain/entities"
	"dossier_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	requestsPhoneIndex  = "contact_phone-index"
	requestsUserIDIndex = "user_id-index"
)

type requestItem struct {
	ID             string `dynamodbav:"id"`
	Kind           string `dynamodbav:"kind"`
	TrackingNumber string `dynamodbav:"tracking_number"`
	UserID         string `dynamodbav:"user_id"`
	ContactName    string `dynamodbav:"contact_name"`
	ContactPhone   string `dynamodbav:"contact_phone"`
	ContactEmail   string `dynamodbav:"contact_email,omitempty"`
	CompanyName    string `dynamodbav:"company_name,omitempty"`
	LegalForm      string `dynamodbav:"legal_form,omitempty"`
	ServiceType    string `dynamodbav:"service_type,omitempty"`
	Description    string `dynamodbav:"description,omitempty"`
	Status         string `dynamodbav:"status"`
	PaymentStatus  string `dynamodbav:"payment_status"`
	EstimatedPrice string `dynamodbav:"estimated_price"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// RequestTables maps each request kind to its table.
type RequestTables struct {
	Company string
	Service string
}

// RequestDynamoRepository persists company and service requests, one table per kind.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: contact_phone-index (PK: contact_phone, SK: created_at)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Rows may have been written by other clients, so status values are stored raw
// and only interpreted by the domain.
type RequestDynamoRepository struct {
	ddb    DynamoAPI
	tables map[entities.RequestKind]string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb DynamoAPI, tables RequestTables) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb: ddb,
		tables: map[entities.RequestKind]string{
			entities.RequestKindCompany: tables.Company,
			entities.RequestKindService: tables.Service,
		},
	}
}

func (r *RequestDynamoRepository) table(kind entities.RequestKind) (string, error) {
	t, ok := r.tables[kind]
	if !ok || t == "" {
		return "", fmt.Errorf("no table configured for request kind %q", kind)
	}
	return t, nil
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	table, err := r.table(req.Kind)
	if err != nil {
		return entities.Request{}, err
	}
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.Request{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, kind entities.RequestKind, id string) (entities.Request, error) {
	table, err := r.table(kind)
	if err != nil {
		return entities.Request{}, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it, kind), nil
}

// ListByPhone returns the requests of one kind attached to a normalized phone, newest first.
func (r *RequestDynamoRepository) ListByPhone(ctx context.Context, kind entities.RequestKind, phone string) ([]entities.Request, error) {
	return r.queryIndex(ctx, kind, requestsPhoneIndex, "contact_phone", phone)
}

func (r *RequestDynamoRepository) ListByUserID(ctx context.Context, kind entities.RequestKind, userID string) ([]entities.Request, error) {
	return r.queryIndex(ctx, kind, requestsUserIDIndex, "user_id", userID)
}

func (r *RequestDynamoRepository) List(ctx context.Context, kind entities.RequestKind) ([]entities.Request, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Request, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRequestItem(it, kind))
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, kind entities.RequestKind, id string, status entities.LifecycleStatus) (entities.Request, error) {
	return r.setField(ctx, kind, id, "status", &types.AttributeValueMemberS{Value: string(status)})
}

func (r *RequestDynamoRepository) UpdateEstimatedPrice(ctx context.Context, kind entities.RequestKind, id string, price float64) (entities.Request, error) {
	return r.setField(ctx, kind, id, "estimated_price", &types.AttributeValueMemberS{Value: floatToString(price)})
}

func (r *RequestDynamoRepository) UpdatePaymentStatus(ctx context.Context, kind entities.RequestKind, id string, status entities.PaymentStatus) (entities.Request, error) {
	return r.setField(ctx, kind, id, "payment_status", &types.AttributeValueMemberS{Value: string(status)})
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, kind entities.RequestKind, index, attr, value string) ([]entities.Request, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Request, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRequestItem(it, kind))
		}
	}
	return items, nil
}

// setField updates one attribute and returns the new row, or a zero Request when the id is unknown.
func (r *RequestDynamoRepository) setField(ctx context.Context, kind entities.RequestKind, id, attr string, value types.AttributeValue) (entities.Request, error) {
	table, err := r.table(kind)
	if err != nil {
		return entities.Request{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #field = :value, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      value,
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#field":      attr,
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Request{}, nil
		}
		return entities.Request{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Request{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it, kind), nil
}

func toRequestItem(r entities.Request) requestItem {
	return requestItem{
		ID:             r.ID,
		Kind:           string(r.Kind),
		TrackingNumber: r.TrackingNumber,
		UserID:         r.UserID,
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		CompanyName:    r.CompanyName,
		LegalForm:      r.LegalForm,
		ServiceType:    r.ServiceType,
		Description:    r.Description,
		Status:         string(r.Status),
		PaymentStatus:  r.PaymentStatus,
		EstimatedPrice: floatToString(r.EstimatedPrice),
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

// fromRequestItem trusts the table over the stored kind attribute, which older rows lack.
func fromRequestItem(it requestItem, kind entities.RequestKind) entities.Request {
	return entities.Request{
		ID:             it.ID,
		Kind:           kind,
		TrackingNumber: it.TrackingNumber,
		UserID:         it.UserID,
		ContactName:    it.ContactName,
		ContactPhone:   it.ContactPhone,
		ContactEmail:   it.ContactEmail,
		CompanyName:    it.CompanyName,
		LegalForm:      it.LegalForm,
		ServiceType:    it.ServiceType,
		Description:    it.Description,
		Status:         entities.LifecycleStatus(it.Status),
		PaymentStatus:  it.PaymentStatus,
		EstimatedPrice: parseFloat(it.EstimatedPrice),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
