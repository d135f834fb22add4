package dynamodb

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"space-finder-api/internal/models"
	"space-finder-api/internal/repositories"
)

// fakeTable is an in-memory table keyed by the "id" string attribute
type fakeTable struct {
	name     string
	items    map[string]map[string]types.AttributeValue
	pageSize int
	err      error
	scans    int
}

func newFakeTable() *fakeTable {
	return &fakeTable{
		name:     "SpacesTable",
		items:    make(map[string]map[string]types.AttributeValue),
		pageSize: 2,
	}
}

func idOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeTable) GetItem(ctx context.Context, params *ddb.GetItemInput, optFns ...func(*ddb.Options)) (*ddb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ddb.GetItemOutput{Item: f.items[idOf(params.Key)]}, nil
}

func (f *fakeTable) PutItem(ctx context.Context, params *ddb.PutItemInput, optFns ...func(*ddb.Options)) (*ddb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[idOf(params.Item)] = params.Item
	return &ddb.PutItemOutput{}, nil
}

func (f *fakeTable) UpdateItem(ctx context.Context, params *ddb.UpdateItemInput, optFns ...func(*ddb.Options)) (*ddb.UpdateItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if params.ReturnValues != types.ReturnValueAllNew {
		return nil, errors.New("expected ReturnValues ALL_NEW")
	}

	id := idOf(params.Key)
	item, ok := f.items[id]
	if !ok {
		item = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	}

	expr := strings.TrimSpace(aws.ToString(params.UpdateExpression))
	if !strings.HasPrefix(expr, "SET ") {
		return nil, errors.New("unsupported update expression: " + expr)
	}
	for _, clause := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
		parts := strings.Split(strings.TrimSpace(clause), " = ")
		if len(parts) != 2 {
			return nil, errors.New("malformed clause: " + clause)
		}
		item[params.ExpressionAttributeNames[parts[0]]] = params.ExpressionAttributeValues[parts[1]]
	}

	f.items[id] = item
	return &ddb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeTable) DeleteItem(ctx context.Context, params *ddb.DeleteItemInput, optFns ...func(*ddb.Options)) (*ddb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, idOf(params.Key))
	return &ddb.DeleteItemOutput{}, nil
}

func (f *fakeTable) Scan(ctx context.Context, params *ddb.ScanInput, optFns ...func(*ddb.Options)) (*ddb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.scans++

	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if params.ExclusiveStartKey != nil {
		after := idOf(params.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}

	out := &ddb.ScanOutput{}
	for i := start; i < len(ids) && len(out.Items) < f.pageSize; i++ {
		out.Items = append(out.Items, f.items[ids[i]])
	}
	if end := start + len(out.Items); end < len(ids) {
		out.LastEvaluatedKey = key(ids[end-1])
	}
	return out, nil
}

func (f *fakeTable) DescribeTable(ctx context.Context, params *ddb.DescribeTableInput, optFns ...func(*ddb.Options)) (*ddb.DescribeTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if aws.ToString(params.TableName) != f.name {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &ddb.DescribeTableOutput{Table: &types.TableDescription{TableName: params.TableName}}, nil
}

func newTestRepo(table *fakeTable) *SpaceRepository {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewSpaceRepository(table, table.name, logger)
}

func TestSpaceRepository_PutAndGet(t *testing.T) {
	table := newFakeTable()
	repo := newTestRepo(table)
	ctx := context.Background()

	space := &models.Space{ID: "abc", Location: "Mitte", Ward: "North", PhotoURL: "https://x.io/a.png"}
	if err := repo.Put(ctx, space); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := repo.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if *got != *space {
		t.Errorf("Get() = %+v, want %+v", got, space)
	}

	if _, ok := table.items["abc"]["photoUrl"]; !ok {
		t.Error("Expected photoUrl attribute to be stored")
	}
}

func TestSpaceRepository_PutOmitsEmptyPhoto(t *testing.T) {
	table := newFakeTable()
	repo := newTestRepo(table)

	if err := repo.Put(context.Background(), &models.Space{ID: "abc", Location: "Mitte", Ward: "North"}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if _, ok := table.items["abc"]["photoUrl"]; ok {
		t.Error("Expected empty photoUrl to be omitted")
	}
}

func TestSpaceRepository_GetNotFound(t *testing.T) {
	repo := newTestRepo(newFakeTable())

	_, err := repo.Get(context.Background(), "missing")
	if !repositories.IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestSpaceRepository_List(t *testing.T) {
	table := newFakeTable()
	repo := newTestRepo(table)
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		spaces, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() failed: %v", err)
		}
		if spaces == nil || len(spaces) != 0 {
			t.Errorf("Expected empty non-nil list, got %v", spaces)
		}
	})

	t.Run("Paginated", func(t *testing.T) {
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			if err := repo.Put(ctx, &models.Space{ID: id, Location: "L" + id, Ward: "W"}); err != nil {
				t.Fatalf("Put() failed: %v", err)
			}
		}
		table.scans = 0

		spaces, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() failed: %v", err)
		}
		if len(spaces) != 5 {
			t.Errorf("Expected 5 spaces, got %d", len(spaces))
		}
		if table.scans != 3 {
			t.Errorf("Expected 3 scan pages, got %d", table.scans)
		}
	})
}

func TestSpaceRepository_Update(t *testing.T) {
	table := newFakeTable()
	repo := newTestRepo(table)
	ctx := context.Background()

	if err := repo.Put(ctx, &models.Space{ID: "abc", Location: "Mitte", Ward: "North"}); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := repo.Update(ctx, "abc", map[string]string{"ward": "South", "photoUrl": "https://x.io/p.webp"})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	want := models.Space{ID: "abc", Location: "Mitte", Ward: "South", PhotoURL: "https://x.io/p.webp"}
	if *got != want {
		t.Errorf("Update() = %+v, want %+v", got, want)
	}

	if _, err := repo.Update(ctx, "abc", map[string]string{"id": "other"}); err == nil {
		t.Error("Expected error when no updatable attribute is given")
	}
}

func TestSpaceRepository_Delete(t *testing.T) {
	table := newFakeTable()
	repo := newTestRepo(table)
	ctx := context.Background()

	_ = repo.Put(ctx, &models.Space{ID: "abc", Location: "Mitte", Ward: "North"})
	if err := repo.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok := table.items["abc"]; ok {
		t.Error("Expected item to be deleted")
	}
	if err := repo.Delete(ctx, "abc"); err != nil {
		t.Errorf("Deleting a missing item should succeed, got %v", err)
	}
}

func TestSpaceRepository_Errors(t *testing.T) {
	table := newFakeTable()
	table.err = errors.New("AccessDeniedException")
	repo := newTestRepo(table)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "abc"); err == nil || repositories.IsNotFound(err) {
		t.Errorf("Expected store error from Get, got %v", err)
	}
	if _, err := repo.List(ctx); err == nil {
		t.Error("Expected store error from List")
	}
	if err := repo.Ping(ctx); !repositories.IsConnection(err) {
		t.Errorf("Expected connection error from Ping, got %v", err)
	}
}

func TestSpaceRepository_Ping(t *testing.T) {
	table := newFakeTable()
	if err := newTestRepo(table).Ping(context.Background()); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}

	other := NewSpaceRepository(table, "OtherTable", nil)
	if err := other.Ping(context.Background()); err == nil {
		t.Error("Expected Ping() to fail for a missing table")
	}
}
