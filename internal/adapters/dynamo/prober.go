package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"space-finder-api/internal/config"
	"space-finder-api/internal/hello"
)

// DescribeTableAPI is the part of the DynamoDB client used by the prober
type DescribeTableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// ClientFactory builds a client for a single probe
type ClientFactory func(ctx context.Context) (DescribeTableAPI, error)

// TableProber checks that a table exists and is reachable
type TableProber struct {
	newClient ClientFactory
}

// NewTableProber creates a prober that builds its client from cfg
func NewTableProber(cfg config.AWSConfig) *TableProber {
	return NewTableProberWithFactory(func(ctx context.Context) (DescribeTableAPI, error) {
		return NewClient(ctx, cfg)
	})
}

// NewTableProberWithFactory creates a prober with a custom client factory
func NewTableProberWithFactory(factory ClientFactory) *TableProber {
	return &TableProber{newClient: factory}
}

// Probe implements hello.Prober. A new client is built for every call, so a
// probe never depends on state left by an earlier invocation.
func (p *TableProber) Probe(ctx context.Context, tableName string) hello.ProbeResult {
	client, err := p.newClient(ctx)
	if err != nil {
		return hello.ProbeResult{Err: err}
	}

	out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return hello.ProbeResult{Err: fmt.Errorf("describe table %s: %w", tableName, err)}
	}

	return hello.ProbeResult{Handle: describeHandle(tableName, out)}
}

func describeHandle(tableName string, out *dynamodb.DescribeTableOutput) string {
	status, arn := "UNKNOWN", ""
	if out != nil && out.Table != nil {
		if out.Table.TableStatus != "" {
			status = string(out.Table.TableStatus)
		}
		arn = aws.ToString(out.Table.TableArn)
	}
	return fmt.Sprintf("dynamodb.Table(name=%s, status=%s, arn=%s)", tableName, status, arn)
}
