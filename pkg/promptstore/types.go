package promptstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	// ErrPromptNotFound indicates the prompt id has no item in the table
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrInvalidPrompt indicates the stored item has no usable content attribute
	ErrInvalidPrompt = errors.New("invalid prompt content")
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// promptItem is the stored table item shape.
type promptItem struct {
	PromptID string `dynamodbav:"prompt_id"`
	Content  string `dynamodbav:"content"`
}
