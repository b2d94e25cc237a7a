package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records inputs and replays canned outputs page by page.
type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	putErr  error
	gets    []*dynamodb.GetItemInput
	getItem map[string]types.AttributeValue
	queries []*dynamodb.QueryInput
	qPages  []*dynamodb.QueryOutput
	scans   []*dynamodb.ScanInput
	sPages  []*dynamodb.ScanOutput
	updates []*dynamodb.UpdateItemInput
	upOut   *dynamodb.UpdateItemOutput
	upErr   error
	err     error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.queries) - 1
	if i >= len(f.qPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.qPages[i], nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.scans) - 1
	if i >= len(f.sPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.sPages[i], nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.upErr != nil {
		return nil, f.upErr
	}
	if f.upOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.upOut, nil
}

func s(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func lastKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": s(id)}
}
