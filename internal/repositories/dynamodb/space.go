package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"space-finder-api/internal/models"
	"space-finder-api/internal/repositories"
)

const entity = "space"

// API is the subset of the DynamoDB client used by SpaceRepository
type API interface {
	GetItem(ctx context.Context, params *ddb.GetItemInput, optFns ...func(*ddb.Options)) (*ddb.GetItemOutput, error)
	PutItem(ctx context.Context, params *ddb.PutItemInput, optFns ...func(*ddb.Options)) (*ddb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *ddb.UpdateItemInput, optFns ...func(*ddb.Options)) (*ddb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *ddb.DeleteItemInput, optFns ...func(*ddb.Options)) (*ddb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *ddb.ScanInput, optFns ...func(*ddb.Options)) (*ddb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *ddb.DescribeTableInput, optFns ...func(*ddb.Options)) (*ddb.DescribeTableOutput, error)
}

// SpaceRepository stores spaces in a DynamoDB table keyed by "id"
type SpaceRepository struct {
	client    API
	tableName string
	logger    *logrus.Logger
}

// NewSpaceRepository creates a new DynamoDB space repository
func NewSpaceRepository(client API, tableName string, logger *logrus.Logger) *SpaceRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &SpaceRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Get retrieves a space by its ID
func (r *SpaceRepository) Get(ctx context.Context, id string) (*models.Space, error) {
	out, err := r.client.GetItem(ctx, &ddb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key(id),
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", entity, id, err)
	}

	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError(entity, id)
	}

	var space models.Space
	if err := attributevalue.UnmarshalMap(out.Item, &space); err != nil {
		return nil, repositories.NewRepositoryError("get", entity, id, fmt.Errorf("failed to decode item: %w", err))
	}

	return &space, nil
}

// List scans the whole table
func (r *SpaceRepository) List(ctx context.Context) ([]*models.Space, error) {
	spaces := make([]*models.Space, 0)

	paginator := ddb.NewScanPaginator(r.client, &ddb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", entity, "", err)
		}
		pages++

		var batch []*models.Space
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, repositories.NewRepositoryError("list", entity, "", fmt.Errorf("failed to decode items: %w", err))
		}
		spaces = append(spaces, batch...)
	}

	r.logger.WithFields(logrus.Fields{
		"table": r.tableName,
		"pages": pages,
		"count": len(spaces),
	}).Debug("Scanned spaces")

	return spaces, nil
}

// Put creates or replaces a space
func (r *SpaceRepository) Put(ctx context.Context, space *models.Space) error {
	item, err := attributevalue.MarshalMap(space)
	if err != nil {
		return repositories.NewRepositoryError("put", entity, space.ID, fmt.Errorf("failed to encode item: %w", err))
	}

	if _, err := r.client.PutItem(ctx, &ddb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	}); err != nil {
		return repositories.NewRepositoryError("put", entity, space.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"table":    r.tableName,
		"space_id": space.ID,
	}).Info("DynamoDB PutItem succeeded")

	return nil
}

// Update sets the given attributes and returns all attributes after the update.
// DynamoDB creates the item when it does not exist yet.
func (r *SpaceRepository) Update(ctx context.Context, id string, attrs map[string]string) (*models.Space, error) {
	var update expression.UpdateBuilder
	set := 0
	for _, name := range models.UpdatableAttributes {
		value, ok := attrs[name]
		if !ok {
			continue
		}
		update = update.Set(expression.Name(name), expression.Value(value))
		set++
	}
	if set == 0 {
		return nil, repositories.NewRepositoryError("update", entity, id, repositories.ErrNoAttributes)
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, repositories.NewRepositoryError("update", entity, id, fmt.Errorf("failed to build update expression: %w", err))
	}

	out, err := r.client.UpdateItem(ctx, &ddb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       key(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("update", entity, id, err)
	}

	var space models.Space
	if err := attributevalue.UnmarshalMap(out.Attributes, &space); err != nil {
		return nil, repositories.NewRepositoryError("update", entity, id, fmt.Errorf("failed to decode attributes: %w", err))
	}

	return &space, nil
}

// Delete deletes a space by its ID. Deleting a missing space is not an error.
func (r *SpaceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.DeleteItem(ctx, &ddb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       key(id),
	}); err != nil {
		return repositories.NewRepositoryError("delete", entity, id, err)
	}
	return nil
}

// Ping checks that the table exists
func (r *SpaceRepository) Ping(ctx context.Context) error {
	if _, err := r.client.DescribeTable(ctx, &ddb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}); err != nil {
		return repositories.ConnectionError("dynamodb", err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no resources that need releasing
func (r *SpaceRepository) Close() error {
	return nil
}
