package promptstore

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Store loads system prompt templates from DynamoDB with a read-mostly
// LRU cache in front. The cache is owned by the store, not ambient state;
// callers invalidate explicitly when a prompt is redeployed.
type Store struct {
	db        DynamoDBAPI
	tableName string
	cache     *lru.Cache[string, string]
}

// New creates a Store backed by a real DynamoDB client.
func New(ctx context.Context, tableName, region string, cacheSize int) (*Store, error) {
	if tableName == "" {
		return nil, fmt.Errorf("promptstore: table name is required")
	}

	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("promptstore: failed to load AWS config: %w", err)
	}

	return NewWithClient(dynamodb.NewFromConfig(awsCfg), tableName, cacheSize)
}

// NewWithClient creates a Store with an injected DynamoDB client.
func NewWithClient(db DynamoDBAPI, tableName string, cacheSize int) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = 8
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("promptstore: failed to create cache: %w", err)
	}

	return &Store{
		db:        db,
		tableName: tableName,
		cache:     cache,
	}, nil
}

// Load returns the raw prompt template for the given prompt id.
// The returned template still carries its reference-date placeholder;
// substitution is the caller's job.
func (s *Store) Load(ctx context.Context, promptID string) (string, error) {
	if cached, ok := s.cache.Get(promptID); ok {
		return cached, nil
	}

	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"prompt_id": &types.AttributeValueMemberS{Value: promptID},
		},
	})
	if err != nil {
		return "", fmt.Errorf("promptstore: failed to load prompt %s: %w", promptID, err)
	}

	if out.Item == nil {
		return "", fmt.Errorf("promptstore: prompt_id=%s: %w", promptID, ErrPromptNotFound)
	}

	var item promptItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return "", fmt.Errorf("promptstore: failed to unmarshal prompt %s: %w", promptID, err)
	}

	content := strings.TrimSpace(item.Content)
	if content == "" {
		return "", fmt.Errorf("promptstore: prompt_id=%s: %w", promptID, ErrInvalidPrompt)
	}

	s.cache.Add(promptID, content)
	return content, nil
}

// Invalidate drops the cached template for the given prompt id.
func (s *Store) Invalidate(promptID string) {
	s.cache.Remove(promptID)
}
