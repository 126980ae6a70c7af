package dynamodb

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UpdateExpression is the result of translating a partial field map into a
// parameterized DynamoDB SET expression.
type UpdateExpression struct {
	Expression string
	Names      map[string]string
	Values     map[string]types.AttributeValue
}

// BuildUpdateExpression translates a field-to-value map into a SET expression
// with synthetic name and value placeholders. Placeholders are generated per
// field so attribute names never appear literally in the expression, which
// keeps fields named after DynamoDB reserved words (name, status, ttl, ...)
// safe to update. Field order in the expression is deterministic.
func BuildUpdateExpression(fields map[string]interface{}) (*UpdateExpression, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expr := &UpdateExpression{
		Names:  make(map[string]string, len(keys)),
		Values: make(map[string]types.AttributeValue, len(keys)),
	}

	for i, field := range keys {
		av, err := attributevalue.Marshal(fields[field])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for field %q: %w", field, err)
		}

		namePlaceholder := fmt.Sprintf("#n%d", i)
		valuePlaceholder := fmt.Sprintf(":v%d", i)

		if i == 0 {
			expr.Expression = "SET "
		} else {
			expr.Expression += ", "
		}
		expr.Expression += namePlaceholder + " = " + valuePlaceholder

		expr.Names[namePlaceholder] = field
		expr.Values[valuePlaceholder] = av
	}

	return expr, nil
}
