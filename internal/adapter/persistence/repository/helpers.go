package repository

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"gestao_os/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// scanAll drains a table following LastEvaluatedKey. Listings filter, sort
// and slice in memory; the tables here stay small enough for that.
func scanAll(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// matchFilter is the case- and accent-insensitive substring match applied
// across an entity's searchable text fields. An empty filter matches
// everything.
func matchFilter(filter string, fields ...string) bool {
	needle := foldLower(strings.TrimSpace(filter))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(foldLower(field), needle) {
			return true
		}
	}
	return false
}

func foldLower(s string) string {
	return strings.ToLower(entities.FoldAccents(s))
}

// pageBounds computes the slice window: skip = (page-1)*pageSize.
func pageBounds(page, pageSize, total int) (start, end int) {
	start = (page - 1) * pageSize
	if start >= total {
		return 0, 0
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
