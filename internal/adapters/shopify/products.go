package shopify

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"delivery-profile-assigner/internal/adapters/shopify/dto"
	"delivery-profile-assigner/internal/domain/model"
)

const productsPageSize = 250

var searchIdentifier = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Full scan; every product is filtered client-side.
const productsScanQuery = `
query productsByMetafield($first: Int!, $after: String, $namespace: String!, $key: String!) {
	products(first: $first, after: $after) {
		edges {
			cursor
			node {
				id
				title
				variants(first: 250) { edges { node { id } } }
				metafield(namespace: $namespace, key: $key) { value }
			}
		}
		pageInfo { hasNextPage endCursor }
	}
}`

// Indexed search; needs the metafield definition to be filterable in admin.
// Results are still re-checked client-side.
const productsSearchQuery = `
query productsByMetafieldSearch($first: Int!, $after: String, $query: String!, $namespace: String!, $key: String!) {
	products(first: $first, after: $after, query: $query) {
		edges {
			cursor
			node {
				id
				title
				variants(first: 250) { edges { node { id } } }
				metafield(namespace: $namespace, key: $key) { value }
			}
		}
		pageInfo { hasNextPage endCursor }
	}
}`

type VariantCollector interface {
	CollectVariantIDsByMetafield(ctx context.Context, filter MetafieldFilter) ([]string, error)
}

type MetafieldFilter struct {
	Namespace string
	Key       string
	Value     string
	UseSearch bool
}

func (f MetafieldFilter) validate() error {
	if strings.TrimSpace(f.Namespace) == "" || strings.TrimSpace(f.Key) == "" {
		return errors.New("shopify metafield namespace and key are required")
	}
	if f.UseSearch {
		// Field names cannot be quoted in search syntax.
		if !searchIdentifier.MatchString(f.Namespace) || !searchIdentifier.MatchString(f.Key) {
			return fmt.Errorf("shopify metafield %q.%q cannot be used in a search filter", f.Namespace, f.Key)
		}
	}
	return nil
}

// CollectVariantIDsByMetafield pages through products and returns the unique
// variant ids of every product whose metafield value equals filter.Value.
func (c *Client) CollectVariantIDsByMetafield(ctx context.Context, filter MetafieldFilter) ([]string, error) {
	if c == nil {
		return nil, errors.New("shopify client is nil")
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}

	query := productsScanQuery
	baseVariables := map[string]any{
		"first":     productsPageSize,
		"namespace": filter.Namespace,
		"key":       filter.Key,
	}
	if filter.UseSearch {
		query = productsSearchQuery
		baseVariables["query"] = metafieldSearchQuery(filter)
	}

	var (
		variantIDs []string
		after      string
		page       int
		matched    int
	)
	for {
		variables := make(map[string]any, len(baseVariables)+1)
		for k, v := range baseVariables {
			variables[k] = v
		}
		if after != "" {
			variables["after"] = after
		}

		var data dto.ProductsQueryData
		if err := c.graphqlRequest(ctx, query, variables, &data); err != nil {
			return nil, fmt.Errorf("products page %d: %w", page+1, err)
		}
		page++
		products := data.Products
		if products == nil {
			return nil, fmt.Errorf("products page %d: response has no products connection", page)
		}

		for _, edge := range products.Edges {
			product := mapShopifyProduct(edge.Node)
			if !product.MatchesMetafield(filter.Value) {
				continue
			}
			matched++
			variantIDs = append(variantIDs, product.VariantIDs...)
		}
		c.logInfo(fmt.Sprintf("shopify products page=%d size=%d matched_total=%d", page, len(products.Edges), matched))

		if !products.PageInfo.HasNextPage {
			break
		}
		if strings.TrimSpace(products.PageInfo.EndCursor) == "" {
			return nil, fmt.Errorf("products page %d: hasNextPage without endCursor", page)
		}
		after = products.PageInfo.EndCursor
	}

	return model.UniqueStrings(variantIDs), nil
}

func mapShopifyProduct(p dto.ShopifyProduct) model.Product {
	ids := make([]string, 0, len(p.Variants.Edges))
	for _, edge := range p.Variants.Edges {
		if id := strings.TrimSpace(edge.Node.ID); id != "" {
			ids = append(ids, id)
		}
	}
	product := model.Product{
		ID:         p.ID,
		Title:      p.Title,
		VariantIDs: ids,
	}
	if p.Metafield != nil {
		product.MetafieldValue = p.Metafield.Value
	}
	return product
}

func metafieldSearchQuery(filter MetafieldFilter) string {
	return fmt.Sprintf("metafield:%s.%s=%s", filter.Namespace, filter.Key, quoteSearchValue(filter.Value))
}

// quoteSearchValue keeps the value byte for byte so the server filter
// selects the same products as the client-side comparison.
func quoteSearchValue(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\r\n\"\\:()") {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return `"` + value + `"`
}
