// Package query runs JSONPath expressions against AsyncAPI documents.
package query

import (
	"context"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

const (
	// ErrInvalidExpression is returned when an expression can't be parsed.
	ErrInvalidExpression = errors.Error("invalid jsonpath expression")
)

// Dialect selects the JSONPath implementation used by a Query.
type Dialect string

const (
	// DialectRFC9535 follows RFC 9535. This is the default.
	DialectRFC9535 Dialect = "rfc9535"
	// DialectLegacy follows the yaml-jsonpath syntax, which allows some expressions RFC 9535 rejects.
	DialectLegacy Dialect = "legacy"
)

type options struct {
	dialect Dialect
}

type Option func(o *options)

// WithDialect selects the JSONPath implementation.
func WithDialect(dialect Dialect) Option {
	return func(o *options) {
		o.dialect = dialect
	}
}

// Queryable finds the nodes matching a path below root.
type Queryable interface {
	Query(root *yaml.Node) []*yaml.Node
}

type rfcJSONPathQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcJSONPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	return r.path.Query(root)
}

type yamlPathQueryable struct {
	path *yamlpath.Path
}

func (y yamlPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	if y.path == nil {
		return []*yaml.Node{}
	}
	// errors aren't actually possible from yamlpath.
	result, _ := y.path.Find(root)
	return result
}

// Query is a compiled JSONPath expression.
type Query struct {
	expression string
	dialect    Dialect
	queryable  Queryable
}

// New compiles expression.
func New(expression string, opts ...Option) (*Query, error) {
	o := options{dialect: DialectRFC9535}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Query{expression: expression, dialect: o.dialect}

	switch o.dialect {
	case DialectLegacy:
		path, err := yamlpath.NewPath(expression)
		if err != nil {
			return nil, ErrInvalidExpression.Wrap(err)
		}
		q.queryable = yamlPathQueryable{path: path}
	case DialectRFC9535:
		path, err := jsonpath.NewPath(expression, config.WithPropertyNameExtension())
		if err != nil {
			return nil, ErrInvalidExpression.Wrap(err)
		}
		q.queryable = rfcJSONPathQueryable{path: path}
	default:
		return nil, ErrInvalidExpression.Wrapf("unknown dialect %q", o.dialect)
	}

	return q, nil
}

// String returns the source expression.
func (q *Query) String() string {
	return q.expression
}

// Dialect returns the JSONPath implementation used by the query.
func (q *Query) Dialect() Dialect {
	return q.dialect
}

// Find returns the nodes of the serialized document that match the query, in document order.
// The nodes are built from the document and changing them does not change the document.
func (q *Query) Find(ctx context.Context, doc *asyncapi.Document) []*yaml.Node {
	if doc == nil {
		return nil
	}
	return q.FindNode(asyncapi.MarshalNode(ctx, doc))
}

// FindNode returns the nodes below root that match the query.
func (q *Query) FindNode(root *yaml.Node) []*yaml.Node {
	if root == nil {
		return nil
	}

	if root.Kind != yaml.DocumentNode {
		root = &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	}

	return q.queryable.Query(root)
}

// Values decodes matched scalar nodes into their string values, skipping non scalar matches.
func Values(nodes []*yaml.Node) []string {
	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n = yml.ResolveAlias(n); n != nil && n.Kind == yaml.ScalarNode {
			values = append(values, n.Value)
		}
	}
	return values
}
